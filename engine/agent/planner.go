package agent

import engine "github.com/pdillon/blockfall/engine"

// Placement is one reachable final position for the active piece: rotate
// Rotations times, shift to column X, then hard drop.
type Placement struct {
	Rotations uint8 // 0-3 clockwise rotations from the current mask
	X         int8  // target column of the mask's left edge
	Y         int8  // resting row of the mask's top edge

	// Outcome of locking there, simulated on a board copy.
	RowsCleared uint8
	Holes       int
	Bumpiness   int
	StackHeight uint8
	TopOut      bool
}

// EnumeratePlacements returns every distinct (rotation, column) placement
// for the session's active piece, with the resting row and lock outcome
// of each. The session is not mutated; each candidate is simulated on a
// board value copy using the engine's own collision and clear logic.
func EnumeratePlacements(s *engine.Session) []Placement {
	var out []Placement

	shape := s.Active.Shape
	seen := map[engine.Shape]bool{}

	for r := uint8(0); r < 4; r++ {
		if r > 0 {
			shape = shape.Rotate()
		}
		// Period-2 masks repeat after two rotations; skip duplicates so
		// identical placements are not enumerated twice.
		if seen[shape] {
			continue
		}
		seen[shape] = true

		for x := int8(0); x <= engine.BoardWidth-int8(shape.W); x++ {
			y, ok := restingRow(&s.Board, shape, x, s.Active.Y)
			if !ok {
				continue
			}
			p := Placement{Rotations: r, X: x, Y: y}
			simulateLock(s.Board, shape, &p)
			out = append(out, p)
		}
	}
	return out
}

// restingRow drops the mask at column x from startY and returns the final
// top row, or ok=false if even the starting position collides.
func restingRow(b *engine.Board, s engine.Shape, x, startY int8) (int8, bool) {
	y := startY
	if b.Collides(s, x, y) {
		return 0, false
	}
	for !b.Collides(s, x, y+1) {
		y++
	}
	return y, true
}

// simulateLock merges the mask on a board copy and fills the placement's
// outcome fields.
func simulateLock(b engine.Board, s engine.Shape, p *Placement) {
	if b.Merge(s, p.X, p.Y) {
		p.TopOut = true
		return
	}
	p.RowsCleared = b.ClearFullRows()
	p.Holes = Holes(&b)
	p.Bumpiness = Bumpiness(&b)

	heights := ColumnHeights(&b)
	for _, h := range heights {
		if h > p.StackHeight {
			p.StackHeight = h
		}
	}
}

// score ranks a placement: clears are good, holes, bumpiness, and stack
// height are bad. Weights follow the classic hand-tuned depth-one
// heuristic ordering.
func (p *Placement) score() int {
	if p.TopOut {
		return -1 << 30
	}
	return int(p.RowsCleared)*1000 - p.Holes*40 - p.Bumpiness*4 - int(p.StackHeight)*12
}

// BestPlacement returns the highest-scoring placement, or ok=false when
// no placement exists (the piece is boxed in).
func BestPlacement(s *engine.Session) (Placement, bool) {
	candidates := EnumeratePlacements(s)
	if len(candidates) == 0 {
		return Placement{}, false
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score() > best.score() {
			best = c
		}
	}
	return best, true
}

// Commands expands a placement into the command sequence that realizes
// it: rotations first, then horizontal shifts, then the hard drop.
func (p *Placement) Commands(fromX int8) []engine.Command {
	var cmds []engine.Command
	for i := uint8(0); i < p.Rotations; i++ {
		cmds = append(cmds, engine.CmdRotate)
	}
	dx := p.X - fromX
	for ; dx < 0; dx++ {
		cmds = append(cmds, engine.CmdMoveLeft)
	}
	for ; dx > 0; dx-- {
		cmds = append(cmds, engine.CmdMoveRight)
	}
	return append(cmds, engine.CmdHardDrop)
}
