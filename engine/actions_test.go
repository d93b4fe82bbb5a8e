package engine

import "testing"

// setActive replaces the falling piece with kind's base shape at (x, y).
func setActive(s *Session, kind ShapeKind, x, y int8) {
	s.Active = Piece{Kind: kind, Shape: BaseShape(kind), X: x, Y: y}
}

// TestMoveHorizontal verifies legal moves commit and wall-blocked moves
// reject without mutation.
func TestMoveHorizontal(t *testing.T) {
	s := NewSession(42, DefaultRules())
	setActive(&s, KindO, 4, 5)

	if !s.ApplyCommand(CmdMoveLeft) || s.Active.X != 3 {
		t.Errorf("move left: X = %d, want 3", s.Active.X)
	}
	if !s.ApplyCommand(CmdMoveRight) || s.Active.X != 4 {
		t.Errorf("move right: X = %d, want 4", s.Active.X)
	}

	setActive(&s, KindO, 0, 5)
	if s.ApplyCommand(CmdMoveLeft) {
		t.Error("move into the left wall accepted")
	}
	if s.Active.X != 0 {
		t.Errorf("rejected move mutated X to %d", s.Active.X)
	}
}

// TestMoveBlockedByLockedCells verifies horizontal moves respect the
// locked grid, not just the walls.
func TestMoveBlockedByLockedCells(t *testing.T) {
	s := NewSession(42, DefaultRules())
	s.Board.Rows[5] = 1 << 3 // locked cell at (3,5)
	setActive(&s, KindO, 4, 5)

	if s.ApplyCommand(CmdMoveLeft) {
		t.Error("move into a locked cell accepted")
	}
	if !s.ApplyCommand(CmdMoveRight) {
		t.Error("move away from a locked cell rejected")
	}
}

// TestRotateCommand verifies rotation commits when the rotated mask fits
// and silently rejects otherwise, keeping the prior orientation.
func TestRotateCommand(t *testing.T) {
	s := NewSession(42, DefaultRules())
	setActive(&s, KindT, 4, 5)

	if !s.ApplyCommand(CmdRotate) {
		t.Fatal("rotation rejected in open field")
	}
	if s.Active.Shape != BaseShape(KindT).Rotate() {
		t.Error("rotation did not apply the derived transform")
	}

	// Vertical I against the right wall: the rotated 4-wide mask pokes
	// out, so the rotation must be rejected and the mask preserved.
	s.Active = Piece{Kind: KindI, Shape: BaseShape(KindI).Rotate(), X: 8, Y: 5}
	before := s.Active.Shape
	if s.ApplyCommand(CmdRotate) {
		t.Error("blocked rotation accepted")
	}
	if s.Active.Shape != before {
		t.Error("rejected rotation mutated the mask")
	}
}

// TestRotateNoKick verifies a rotation blocked by locked cells is
// rejected in place — no origin adjustment is attempted.
func TestRotateNoKick(t *testing.T) {
	s := NewSession(42, DefaultRules())
	// Vertical I with a locked cell where its horizontal form would land.
	s.Board.Rows[5] = 1 << 6 // locked cell at (6,5)
	s.Active = Piece{Kind: KindI, Shape: BaseShape(KindI).Rotate(), X: 4, Y: 5}
	before := s.Active

	if s.ApplyCommand(CmdRotate) {
		t.Error("rotation into a locked cell accepted")
	}
	if s.Active != before {
		t.Error("rejected rotation adjusted the origin")
	}
}

// TestSoftDrop verifies the command moves down one row when legal,
// reports failure at rest, and never locks.
func TestSoftDrop(t *testing.T) {
	s := NewSession(42, DefaultRules())
	setActive(&s, KindO, 4, 5)

	if !s.ApplyCommand(CmdSoftDrop) || s.Active.Y != 6 {
		t.Errorf("soft drop: Y = %d, want 6", s.Active.Y)
	}

	setActive(&s, KindO, 4, 18)
	if s.ApplyCommand(CmdSoftDrop) {
		t.Error("soft drop reported movement at rest")
	}
	if s.Board.OccupiedCount() != 0 {
		t.Error("soft drop locked the piece")
	}
	if s.Active.Y != 18 {
		t.Errorf("failed soft drop mutated Y to %d", s.Active.Y)
	}
}

// TestHardDropToFloor verifies that an O piece hard-dropped
// on an empty board locks with its bottom-left cell at (4,19), a new
// piece spawns at the origin, and the score stays 0.
func TestHardDropToFloor(t *testing.T) {
	s := NewSession(42, DefaultRules())
	setActive(&s, KindO, SpawnX, SpawnY)

	s.ApplyCommand(CmdHardDrop)

	for _, cell := range [][2]int8{{4, 19}, {5, 19}, {4, 18}, {5, 18}} {
		if !s.Board.Occupied(cell[0], cell[1]) {
			t.Errorf("cell (%d,%d) not locked", cell[0], cell[1])
		}
	}
	if s.Board.OccupiedCount() != 4 {
		t.Errorf("OccupiedCount = %d, want 4", s.Board.OccupiedCount())
	}
	if s.Active.X != SpawnX || s.Active.Y != SpawnY {
		t.Error("no fresh piece at the spawn origin after hard drop")
	}
	if s.Score != 0 {
		t.Errorf("Score = %d, want 0 (only two columns filled)", s.Score)
	}
}

// TestHardDropIntoGap verifies the clearing path: row 19 full except
// columns 4-5, an O hard-drops into the gap, clears the row, scores 100,
// and speeds gravity up by one step.
func TestHardDropIntoGap(t *testing.T) {
	s := NewSession(42, DefaultRules())
	fillRowExcept(&s.Board, 19, 4, 5)
	setActive(&s, KindO, SpawnX, SpawnY)
	prevTick := s.TickMs

	s.ApplyCommand(CmdHardDrop)

	if s.Score != 100 {
		t.Errorf("Score = %d, want 100", s.Score)
	}
	if s.Board.Rows[19] != 1<<4|1<<5 {
		t.Errorf("row 19 = %010b, want only the O's top half left behind", s.Board.Rows[19])
	}
	if s.TickMs != prevTick-DefaultRules().TickStepMs {
		t.Errorf("TickMs = %d, want %d", s.TickMs, prevTick-DefaultRules().TickStepMs)
	}
}

// TestHardDropLocksOnce verifies the drop performs the lock/clear/spawn
// sequence exactly once: one piece's worth of cells, one replacement.
func TestHardDropLocksOnce(t *testing.T) {
	s := NewSession(42, DefaultRules())
	setActive(&s, KindT, 4, 0)

	s.ApplyCommand(CmdHardDrop)
	if s.Board.OccupiedCount() != 4 {
		t.Errorf("OccupiedCount = %d after one hard drop, want 4", s.Board.OccupiedCount())
	}
}

// TestApplyCommandUnknown verifies an unknown command is ignored.
func TestApplyCommandUnknown(t *testing.T) {
	s := NewSession(42, DefaultRules())
	snap := s.Save()
	if s.ApplyCommand(Command(200)) {
		t.Error("unknown command reported as applied")
	}
	if s.Save() != snap {
		t.Error("unknown command mutated the session")
	}
}

// TestCommandsIgnoredWhilePaused verifies ApplyCommand is a no-op in the
// paused state for every command.
func TestCommandsIgnoredWhilePaused(t *testing.T) {
	s := NewSession(42, DefaultRules())
	s.Pause()
	snap := s.Save()
	for c := Command(0); c < NumCommands; c++ {
		if s.ApplyCommand(c) {
			t.Errorf("command %s applied while paused", c)
		}
	}
	if s.Save() != snap {
		t.Error("commands mutated a paused session")
	}
}

// BenchmarkHardDrop measures a full drop/lock/spawn cycle.
func BenchmarkHardDrop(b *testing.B) {
	s := NewSession(42, DefaultRules())
	for i := 0; i < b.N; i++ {
		s.HardDrop()
		if s.IsOver() {
			s.Reset()
		}
	}
}
