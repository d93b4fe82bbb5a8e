package engine

// Collides reports whether placing the mask at origin (x, y) is illegal:
// some set cell lies outside the board horizontally, at or below the
// bottom edge, or overlaps an occupied cell. Cells above the visible
// board (absolute row < 0) never collide. This single predicate backs
// horizontal movement, soft drop, hard drop, rotation, and the gravity
// step — there is no duplicated bounds logic elsewhere.
func (b *Board) Collides(s Shape, x, y int8) bool {
	for cy := uint8(0); cy < s.H; cy++ {
		row := s.Rows[cy]
		for cx := uint8(0); cx < s.W; cx++ {
			if row>>cx&1 == 1 && b.Occupied(x+int8(cx), y+int8(cy)) {
				return true
			}
		}
	}
	return false
}

// canShift reports whether the active piece may move by (dx, dy).
func (s *Session) canShift(dx, dy int8) bool {
	return !s.Board.Collides(s.Active.Shape, s.Active.X+dx, s.Active.Y+dy)
}

// LegalCommands returns a bitmask of the commands that would currently
// mutate the session. Bit i corresponds to Command(i). While paused or
// after game over the mask is zero; hard drop is always legal while
// falling because it locks the piece even when it cannot move.
func (s *Session) LegalCommands() uint8 {
	if s.IsOver() || s.IsPaused() {
		return 0
	}

	var mask uint8
	if s.canShift(-1, 0) {
		mask |= 1 << CmdMoveLeft
	}
	if s.canShift(1, 0) {
		mask |= 1 << CmdMoveRight
	}
	if s.canShift(0, 1) {
		mask |= 1 << CmdSoftDrop
	}
	mask |= 1 << CmdHardDrop
	if !s.Board.Collides(s.Active.Shape.Rotate(), s.Active.X, s.Active.Y) {
		mask |= 1 << CmdRotate
	}
	return mask
}

// CommandLegal reports whether a single command is currently legal.
func (s *Session) CommandLegal(cmd Command) bool {
	if cmd >= NumCommands {
		return false
	}
	return s.LegalCommands()>>uint8(cmd)&1 == 1
}
