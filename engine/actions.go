package engine

// Tick advances one gravity step. If the active piece can move down one
// row the move is committed; otherwise the piece locks: it merges into
// the board (detecting top-out), full rows are cleared and scored, and a
// new piece spawns. No-op while paused or after game over.
func (s *Session) Tick() {
	if !s.falling() {
		return
	}
	if s.canShift(0, 1) {
		s.Active.Y++
		return
	}
	s.lock()
}

// ApplyCommand applies a discrete input event and reports whether it
// mutated the session. Illegal moves and rotations are rejected without
// mutation rather than surfaced as errors; an unknown command is simply
// ignored.
func (s *Session) ApplyCommand(cmd Command) bool {
	if !s.falling() {
		return false
	}
	switch cmd {
	case CmdMoveLeft:
		return s.MoveHorizontal(-1)
	case CmdMoveRight:
		return s.MoveHorizontal(1)
	case CmdSoftDrop:
		return s.SoftDrop()
	case CmdHardDrop:
		s.HardDrop()
		return true
	case CmdRotate:
		return s.RotatePiece()
	}
	return false
}

// MoveHorizontal shifts the active piece by delta columns if the target
// position is free.
func (s *Session) MoveHorizontal(delta int8) bool {
	if !s.falling() || !s.canShift(delta, 0) {
		return false
	}
	s.Active.X += delta
	return true
}

// SoftDrop moves the active piece down one row if legal and reports
// whether it moved. It is the movement half of Tick and the inner step of
// HardDrop; it never locks.
func (s *Session) SoftDrop() bool {
	if !s.falling() || !s.canShift(0, 1) {
		return false
	}
	s.Active.Y++
	return true
}

// HardDrop drops the active piece until it can fall no further, then
// performs the lock/clear/spawn sequence exactly once.
func (s *Session) HardDrop() {
	if !s.falling() {
		return
	}
	for s.SoftDrop() {
	}
	s.lock()
}

// RotatePiece applies the derived 90° rotation if the rotated mask fits
// at the current origin. No kick is attempted: a blocked rotation is
// rejected and the piece keeps its prior orientation.
func (s *Session) RotatePiece() bool {
	if !s.falling() {
		return false
	}
	rotated := s.Active.Shape.Rotate()
	if s.Board.Collides(rotated, s.Active.X, s.Active.Y) {
		return false
	}
	s.Active.Shape = rotated
	return true
}

// lock merges the active piece into the board, handles top-out, clears
// and scores full rows, and spawns the replacement piece.
func (s *Session) lock() {
	if s.Board.Merge(s.Active.Shape, s.Active.X, s.Active.Y) {
		s.Flags |= FlagGameOver
		return
	}
	if cleared := s.Board.ClearFullRows(); cleared > 0 {
		s.applyLineClears(cleared)
	}
	s.spawn()
}
