// Package agent derives bot-facing observations and placement plans from
// a session's public state. Nothing here mutates a live session: planning
// works on value copies, so an agent can run between driver ticks.
package agent

import engine "github.com/pdillon/blockfall/engine"

const (
	// BoardPlaneDim is the flattened occupancy plane, one input per cell.
	BoardPlaneDim = engine.BoardWidth * engine.BoardHeight
	// KindDim is the one-hot active piece kind.
	KindDim = engine.NumKinds
	// ScalarDim covers the scalar inputs: column heights, normalized
	// score bucket, normalized gravity interval, hole count, bumpiness.
	ScalarDim = engine.BoardWidth + 4

	// InputDim is the full observation vector size.
	InputDim = BoardPlaneDim + KindDim + ScalarDim
)

// ColumnHeights returns, per column, the number of rows from the topmost
// occupied cell down to the floor (0 for an empty column).
func ColumnHeights(b *engine.Board) [engine.BoardWidth]uint8 {
	var heights [engine.BoardWidth]uint8
	for x := int8(0); x < engine.BoardWidth; x++ {
		for y := int8(0); y < engine.BoardHeight; y++ {
			if b.Occupied(x, y) {
				heights[x] = uint8(engine.BoardHeight - int(y))
				break
			}
		}
	}
	return heights
}

// Holes counts empty cells with at least one occupied cell above them in
// the same column.
func Holes(b *engine.Board) int {
	holes := 0
	for x := int8(0); x < engine.BoardWidth; x++ {
		covered := false
		for y := int8(0); y < engine.BoardHeight; y++ {
			if b.Occupied(x, y) {
				covered = true
			} else if covered {
				holes++
			}
		}
	}
	return holes
}

// Bumpiness sums the absolute height differences between adjacent
// columns.
func Bumpiness(b *engine.Board) int {
	heights := ColumnHeights(b)
	bump := 0
	for x := 0; x < engine.BoardWidth-1; x++ {
		d := int(heights[x]) - int(heights[x+1])
		if d < 0 {
			d = -d
		}
		bump += d
	}
	return bump
}

// Encode writes the observation vector for the session into out: the
// board occupancy plane, the one-hot active kind, per-column heights, and
// the scalar summaries. out is zeroed internally before writing.
func Encode(s *engine.Session, out *[InputDim]float32) {
	*out = [InputDim]float32{}

	offset := 0

	// Occupancy plane, row-major from the top.
	for y := int8(0); y < engine.BoardHeight; y++ {
		for x := int8(0); x < engine.BoardWidth; x++ {
			if s.Board.Occupied(x, y) {
				out[offset] = 1.0
			}
			offset++
		}
	}

	// Active kind one-hot.
	out[offset+int(s.Active.Kind)] = 1.0
	offset += KindDim

	// Column heights, normalized by board height.
	heights := ColumnHeights(&s.Board)
	for x := 0; x < engine.BoardWidth; x++ {
		out[offset] = float32(heights[x]) / float32(engine.BoardHeight)
		offset++
	}

	// Scalars: score (squashed), gravity interval (normalized by the
	// initial value), holes and bumpiness (normalized by cell count).
	out[offset] = squash(float32(s.Score) / 1000.0)
	out[offset+1] = float32(s.TickMs) / float32(engine.DefaultRules().InitialTickMs)
	out[offset+2] = float32(Holes(&s.Board)) / float32(BoardPlaneDim)
	out[offset+3] = float32(Bumpiness(&s.Board)) / float32(BoardPlaneDim)
}

// squash maps [0, inf) into [0, 1).
func squash(v float32) float32 {
	return v / (1 + v)
}
