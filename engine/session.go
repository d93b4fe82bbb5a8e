// Package engine implements a falling-block puzzle simulation.
//
// The package is a pure state machine: an external driver advances
// gravity by calling Tick on a cadence of the session's choosing and
// feeds input events through ApplyCommand. There is no internal clock,
// no goroutine, and no allocation on the hot path — Session is a flat
// value type suitable for cheap copying and deterministic replay.
package engine

// Spawn position of a new piece's top-left cell.
const (
	SpawnX = 4
	SpawnY = 0
)

// Flags bitfield.
const (
	FlagGameOver uint8 = 1 << 0
	FlagPaused   uint8 = 1 << 1
)

// Session holds the complete, self-contained state of one game: the
// board of locked cells, the single active piece, score, gravity
// interval, lifecycle flags, and the RNG state. A Session owns its Board
// and Piece exclusively; all methods mutate in place with no internal
// synchronization, so a concurrent driver must serialize access itself.
type Session struct {
	Board  Board
	Active Piece
	Score  uint32
	TickMs uint16 // current gravity interval, milliseconds
	Flags  uint8
	RNG    uint64
	Rules  Rules
}

// IsOver reports whether the session has topped out.
func (s *Session) IsOver() bool { return s.Flags&FlagGameOver != 0 }

// IsPaused reports whether the session is paused.
func (s *Session) IsPaused() bool { return s.Flags&FlagPaused != 0 }

// falling reports whether the active piece is live: not paused, not over.
func (s *Session) falling() bool { return s.Flags&(FlagGameOver|FlagPaused) == 0 }

// TickInterval returns the current gravity interval in milliseconds.
// The driver must re-read it after every Tick: clearing rows speeds the
// session up, and the driver reschedules itself accordingly.
func (s *Session) TickInterval() uint16 { return s.TickMs }

// ---------------------------------------------------------------------------
// xorshift64 RNG — inline, no interface
// ---------------------------------------------------------------------------

func (s *Session) nextRand() uint64 {
	x := s.RNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	s.RNG = x
	return x
}

// randN returns a random number in [0, n).
func (s *Session) randN(n uint64) uint64 {
	return s.nextRand() % n
}

// randomKind draws one of the seven kinds uniformly. Each draw is
// independent; there is no bag.
func (s *Session) randomKind() ShapeKind {
	return ShapeKind(s.randN(NumKinds))
}

// ---------------------------------------------------------------------------
// NewSession and Spawn
// ---------------------------------------------------------------------------

// NewSession initializes a session with the given seed and rules and
// spawns the first piece. The same seed always produces the same kind
// sequence.
func NewSession(seed uint64, rules Rules) Session {
	var s Session
	s.RNG = seed
	if s.RNG == 0 {
		s.RNG = 1 // xorshift can't start at 0
	}
	s.Rules = rules
	s.TickMs = rules.initialTickMs()
	s.spawn()
	return s
}

// spawn draws a random kind and places its base shape at the spawn
// origin. Overlap with locked cells is not checked here: an occupied
// spawn surfaces as a top-out on the piece's first failed gravity step.
func (s *Session) spawn() {
	kind := s.randomKind()
	s.Active = Piece{
		Kind:  kind,
		Shape: BaseShape(kind),
		X:     SpawnX,
		Y:     SpawnY,
	}
}

// ---------------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------------

// Pause suspends the session. Ticks and movement commands are ignored
// while paused; state is preserved exactly.
func (s *Session) Pause() {
	if s.IsOver() {
		return
	}
	s.Flags |= FlagPaused
}

// Resume lifts a pause. The active piece is preserved, not re-rolled.
func (s *Session) Resume() {
	s.Flags &^= FlagPaused
}

// Reset reinitializes the board, score, gravity interval, and flags, and
// spawns a fresh piece. Valid from any state, including game over — it is
// the only escape from the terminal state. The RNG stream continues; it
// is not re-seeded.
func (s *Session) Reset() {
	s.Board = Board{}
	s.Score = 0
	s.TickMs = s.Rules.initialTickMs()
	s.Flags = 0
	s.spawn()
}

// ---------------------------------------------------------------------------
// Snapshots / observers
// ---------------------------------------------------------------------------

// Snapshot is a complete value copy of a Session. Saving and restoring
// are plain struct copies with no heap allocation.
type Snapshot Session

// Save returns a snapshot of the current session state.
func (s *Session) Save() Snapshot { return Snapshot(*s) }

// Restore replaces the session state with the given snapshot.
func (s *Session) Restore(snap Snapshot) { *s = Session(snap) }

// BoardSnapshot returns a value copy of the locked grid for rendering.
func (s *Session) BoardSnapshot() Board { return s.Board }

// ActivePiece returns a value copy of the falling piece for rendering.
func (s *Session) ActivePiece() Piece { return s.Active }

// CurrentScore returns the score.
func (s *Session) CurrentScore() uint32 { return s.Score }

// StateHash returns a fast 64-bit FNV-1a hash of the session, for
// deterministic seeding of derived PRNGs. Equal states hash equal.
func (s *Session) StateHash() uint64 {
	h := uint64(14695981039346656037) // FNV-1a offset basis
	const prime = uint64(1099511628211)

	for y := 0; y < BoardHeight; y++ {
		h ^= uint64(s.Board.Rows[y])
		h *= prime
	}
	h ^= uint64(s.Active.Kind)
	h *= prime
	for y := uint8(0); y < MaxShapeDim; y++ {
		h ^= uint64(s.Active.Shape.Rows[y]) << (8 * uint64(y%4))
		h *= prime
	}
	h ^= uint64(uint8(s.Active.X)) | uint64(uint8(s.Active.Y))<<8
	h *= prime
	h ^= uint64(s.Score)
	h *= prime
	h ^= uint64(s.TickMs) << 32
	h *= prime
	h ^= uint64(s.Flags) << 48
	h *= prime
	return h
}
