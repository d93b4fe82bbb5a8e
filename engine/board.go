package engine

const (
	BoardWidth  = 10
	BoardHeight = 20
)

// fullRowMask has one bit set per column.
const fullRowMask uint16 = 1<<BoardWidth - 1

// Board is the persistent grid of locked cells: one uint16 bitmask per
// row, bit x = column x, row 0 = top. A flat comparable value — copying a
// Board is a snapshot.
type Board struct {
	Rows [BoardHeight]uint16
}

// NewBoard returns an empty board.
func NewBoard() Board {
	return Board{}
}

// Occupied reports whether (x, y) blocks a piece cell. Positions outside
// the left, right, or bottom edges count as occupied; y < 0 does not, so
// pieces may straddle the top boundary while falling in.
func (b *Board) Occupied(x, y int8) bool {
	if x < 0 || x >= BoardWidth || y >= BoardHeight {
		return true
	}
	if y < 0 {
		return false
	}
	return b.Rows[y]>>uint8(x)&1 == 1
}

// Merge marks every set cell of the mask as occupied at origin (x, y).
// If any cell maps to a row above the visible board, or onto a cell that
// is already occupied, it reports top-out without mutating further. The
// occupied case is the board-overflow path: ordinary locks never overlap
// (the collision predicate forbids it), so an overlapping merge can only
// come from a piece that spawned onto the stack and failed its first
// gravity step — the game-over trigger.
func (b *Board) Merge(s Shape, x, y int8) (topOut bool) {
	for cy := uint8(0); cy < s.H; cy++ {
		row := s.Rows[cy]
		for cx := uint8(0); cx < s.W; cx++ {
			if row>>cx&1 == 0 {
				continue
			}
			ay := y + int8(cy)
			if ay < 0 {
				return true
			}
			ax := x + int8(cx)
			if ax < 0 || ax >= BoardWidth || ay >= BoardHeight {
				panic("engine: Merge outside board bounds")
			}
			bit := uint16(1) << uint8(ax)
			if b.Rows[ay]&bit != 0 {
				return true
			}
			b.Rows[ay] |= bit
		}
	}
	return false
}

// ClearFullRows removes every fully occupied row, inserting empty rows at
// the top to preserve the board height, and returns the number removed.
// One bottom-to-top compaction pass, so simultaneous full rows (up to a
// four-row clear) are all handled despite the index shift a removal causes.
func (b *Board) ClearFullRows() uint8 {
	var cleared uint8
	write := BoardHeight - 1
	for read := BoardHeight - 1; read >= 0; read-- {
		if b.Rows[read] == fullRowMask {
			cleared++
			continue
		}
		b.Rows[write] = b.Rows[read]
		write--
	}
	for ; write >= 0; write-- {
		b.Rows[write] = 0
	}
	return cleared
}

// OccupiedCount returns the number of occupied cells on the board.
func (b *Board) OccupiedCount() int {
	n := 0
	for y := 0; y < BoardHeight; y++ {
		row := b.Rows[y]
		for row != 0 {
			n += int(row & 1)
			row >>= 1
		}
	}
	return n
}
