package engine

// lineScores awards points by number of rows cleared in one lock.
// Index 4 is the four-row clear.
var lineScores = [5]uint32{0, 100, 300, 500, 800}

// RowScore returns the points awarded for clearing n rows at once.
// n beyond four is a contract violation and panics.
func RowScore(n uint8) uint32 {
	if int(n) >= len(lineScores) {
		panic("engine: RowScore called with more than four rows")
	}
	return lineScores[n]
}

// applyLineClears adds the score for a clearing lock and speeds gravity
// up by one step, floored at the minimum interval.
func (s *Session) applyLineClears(cleared uint8) {
	s.Score += RowScore(cleared)

	step := s.Rules.TickStepMs
	min := s.Rules.MinTickMs
	if s.TickMs > min+step {
		s.TickMs -= step
	} else {
		s.TickMs = min
	}
}
