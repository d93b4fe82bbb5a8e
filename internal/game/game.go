// internal/game/game.go
package game

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	engine "github.com/pdillon/blockfall/engine"
)

// OnGameEndFunc defines the signature for a callback function executed when
// a session tops out. It receives the game ID and the final score.
type OnGameEndFunc func(gameID uuid.UUID, score uint32)

// GameEventType represents the type of a game-related event delivered via
// the broadcast callback.
type GameEventType string

// Constants defining the various GameEvent types.
const (
	EventPieceSpawned GameEventType = "piece_spawned" // A new piece entered at the spawn cell.
	EventPieceMoved   GameEventType = "piece_moved"   // A command shifted or rotated the falling piece.
	EventPieceLocked  GameEventType = "piece_locked"  // The falling piece merged into the stack.
	EventRowsCleared  GameEventType = "rows_cleared"  // One or more full rows were removed.
	EventGameOver     GameEventType = "game_over"     // The session topped out; includes final score.
	EventGamePaused   GameEventType = "game_paused"   // Gravity suspended.
	EventGameResumed  GameEventType = "game_resumed"  // Gravity resumed.
	EventGameReset    GameEventType = "game_reset"    // Session returned to a fresh board.
	EventSyncState    GameEventType = "sync_state"    // Full state snapshot for late joiners.
)

// GameEvent is the standard structure for broadcasting state changes.
type GameEvent struct {
	Type    GameEventType `json:"type"`
	Command string        `json:"command,omitempty"` // Wire name of the command that caused the event.
	Rows    uint8         `json:"rows,omitempty"`    // Rows removed, for rows_cleared.
	Score   uint32        `json:"score,omitempty"`   // Score after the event, for scoring events.

	State *ViewState `json:"state,omitempty"` // Full snapshot for sync events.
}

// Game wraps an engine session with the concurrency, timing, and event
// plumbing the engine deliberately leaves out. All exported methods take
// the mutex; unexported helpers assume it is held.
type Game struct {
	ID uuid.UUID // Unique identifier for this game instance.

	Rules  engine.Rules   // Speed parameters used for the session and on reset.
	Engine engine.Session // The authoritative session state.

	// TickID increments on every state transition that invalidates a
	// pending gravity timer (tick, hard drop, pause, resume, reset).
	TickID       int
	gravityTimer *time.Timer

	Started  bool // Has Start been called?
	GameOver bool // Mirrors the session's terminal flag for quick checks.

	Mu sync.Mutex // Mutex protecting concurrent access to game state.

	// Communication callbacks.
	BroadcastFn func(ev GameEvent) // Delivers an event to all observers.
	OnGameEnd   OnGameEndFunc      // Executed once when the session tops out.

	log *logrus.Entry
}

// NewGame creates a game instance around a fresh session seeded with seed.
func NewGame(seed uint64, rules engine.Rules, logger *logrus.Logger) *Game {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	id, _ := uuid.NewRandom()
	return &Game{
		ID:     id,
		Rules:  rules,
		Engine: engine.NewSession(seed, rules),
		log:    logger.WithField("game_id", id),
	}
}

// Start begins gravity for the session. Safe to call once; later calls
// are ignored.
func (g *Game) Start() {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if g.Started || g.GameOver {
		g.log.WithFields(logrus.Fields{"started": g.Started, "over": g.GameOver}).
			Warn("Start called in invalid state, ignoring")
		return
	}
	g.Started = true
	g.log.WithField("tick_ms", g.Engine.TickMs).Info("game started")

	g.fireEvent(GameEvent{Type: EventPieceSpawned})
	g.fireSyncState()
	g.scheduleGravity()
}

// HandleCommand applies a player command to the session and reports
// whether it was accepted. Rejected commands produce no events.
func (g *Game) HandleCommand(cmd engine.Command) bool {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if !g.Started || g.GameOver {
		return false
	}

	pre := g.preLockState()
	if !g.Engine.ApplyCommand(cmd) {
		return false
	}

	if cmd == engine.CmdHardDrop {
		// A hard drop always locks; the pending gravity timer now refers
		// to a piece that no longer exists.
		g.TickID++
		g.emitLockEvents(cmd.String(), pre)
		g.scheduleGravity()
	} else {
		g.fireEvent(GameEvent{Type: EventPieceMoved, Command: cmd.String()})
	}
	return true
}

// Tick advances gravity by one step immediately. Exposed for drivers that
// run their own clock instead of the built-in timer.
func (g *Game) Tick() {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if !g.Started || g.GameOver || g.Engine.IsPaused() {
		return
	}
	g.TickID++
	g.advanceTick()
	g.scheduleGravity()
}

// Pause suspends gravity. No commands are accepted by the session until
// Resume.
func (g *Game) Pause() {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if !g.Started || g.GameOver || g.Engine.IsPaused() {
		return
	}
	g.Engine.Pause()
	g.TickID++
	g.stopGravity()
	g.log.Info("game paused")
	g.fireEvent(GameEvent{Type: EventGamePaused})
}

// Resume restarts gravity after a pause.
func (g *Game) Resume() {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	if !g.Started || g.GameOver || !g.Engine.IsPaused() {
		return
	}
	g.Engine.Resume()
	g.TickID++
	g.log.Info("game resumed")
	g.fireEvent(GameEvent{Type: EventGameResumed})
	g.scheduleGravity()
}

// Reset abandons the current session and starts a fresh one with the same
// rules. Works from any state, including game over.
func (g *Game) Reset() {
	g.Mu.Lock()
	defer g.Mu.Unlock()

	g.Engine.Reset()
	g.GameOver = false
	g.TickID++
	g.log.Info("game reset")
	g.fireEvent(GameEvent{Type: EventGameReset})
	g.fireEvent(GameEvent{Type: EventPieceSpawned})
	g.fireSyncState()
	if g.Started {
		g.scheduleGravity()
	}
}

// Stop halts the gravity timer without mutating the session. Used when
// tearing the game down.
func (g *Game) Stop() {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	g.TickID++
	g.stopGravity()
}

// Score returns the current score.
func (g *Game) Score() uint32 {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.Engine.CurrentScore()
}

// Sync returns a full state snapshot under the lock.
func (g *Game) Sync() ViewState {
	g.Mu.Lock()
	defer g.Mu.Unlock()
	return g.viewState()
}

// preLock captures the pre-transition values needed to reconstruct what a
// lock did: score delta identifies the clear count, cell delta confirms a
// lock happened.
type preLock struct {
	score uint32
	cells int
}

// preLockState snapshots the fields emitLockEvents compares against.
// Assumes lock is held by caller.
func (g *Game) preLockState() preLock {
	return preLock{score: g.Engine.Score, cells: g.Engine.Board.OccupiedCount()}
}

// advanceTick steps the session once and emits the resulting events.
// Assumes lock is held by caller.
func (g *Game) advanceTick() {
	pre := g.preLockState()
	g.Engine.Tick()
	g.emitLockEvents("", pre)
}

// emitLockEvents compares post-transition state against pre and fires
// lock, clear, spawn, and game-over events as appropriate. A lock adds
// four cells and each cleared row removes ten, so the cell delta
// identifies both. Assumes lock is held by caller.
func (g *Game) emitLockEvents(command string, pre preLock) {
	post := g.preLockState()

	if g.Engine.IsOver() {
		g.GameOver = true
		g.stopGravity()
		final := g.Engine.CurrentScore()
		g.log.WithField("score", final).Info("game over")
		g.fireEvent(GameEvent{Type: EventGameOver, Score: final})
		if g.OnGameEnd != nil {
			g.OnGameEnd(g.ID, final)
		}
		return
	}

	delta := post.cells - pre.cells
	if delta == 0 {
		// Stack untouched, the piece just fell one row.
		return
	}

	g.fireEvent(GameEvent{Type: EventPieceLocked, Command: command, Score: post.score})

	// delta = 4 - 10*cleared.
	if delta < 4 {
		cleared := uint8((4 - delta) / 10)
		g.fireEvent(GameEvent{Type: EventRowsCleared, Rows: cleared, Score: post.score})
	}
	g.fireEvent(GameEvent{Type: EventPieceSpawned})
}

// scheduleGravity arms the gravity timer for the session's current
// interval. The captured TickID invalidates the callback if any other
// transition lands first. Assumes lock is held by caller.
func (g *Game) scheduleGravity() {
	g.stopGravity()
	if !g.Started || g.GameOver || g.Engine.IsPaused() {
		return
	}

	curTickID := g.TickID
	interval := time.Duration(g.Engine.TickInterval()) * time.Millisecond
	g.gravityTimer = time.AfterFunc(interval, func() {
		g.Mu.Lock()
		defer g.Mu.Unlock()

		if g.GameOver || !g.Started || g.TickID != curTickID || g.Engine.IsPaused() {
			return
		}
		g.TickID++
		g.advanceTick()
		g.scheduleGravity()
	})
}

// stopGravity cancels any pending gravity timer.
// Assumes lock is held by caller.
func (g *Game) stopGravity() {
	if g.gravityTimer != nil {
		g.gravityTimer.Stop()
		g.gravityTimer = nil
	}
}

// fireEvent delivers an event via the BroadcastFn callback.
// Assumes lock is held by caller.
func (g *Game) fireEvent(ev GameEvent) {
	if g.BroadcastFn != nil {
		g.BroadcastFn(ev)
	} else {
		g.log.WithField("type", ev.Type).Warn("BroadcastFn is nil, dropping event")
	}
}

// fireSyncState broadcasts a full snapshot.
// Assumes lock is held by caller.
func (g *Game) fireSyncState() {
	state := g.viewState()
	g.fireEvent(GameEvent{Type: EventSyncState, State: &state})
}
