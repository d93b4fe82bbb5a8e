package engine

// ShapeKind identifies one of the seven piece kinds.
type ShapeKind uint8

const (
	KindI ShapeKind = iota // 0
	KindO                  // 1
	KindT                  // 2
	KindL                  // 3
	KindJ                  // 4
	KindS                  // 5
	KindZ                  // 6

	NumKinds = 7
)

// String returns the single-letter name of the kind.
func (k ShapeKind) String() string {
	switch k {
	case KindI:
		return "I"
	case KindO:
		return "O"
	case KindT:
		return "T"
	case KindL:
		return "L"
	case KindJ:
		return "J"
	case KindS:
		return "S"
	case KindZ:
		return "Z"
	}
	return "?"
}

// MaxShapeDim is the largest bounding-box side of any shape orientation.
const MaxShapeDim = 4

// Shape is one orientation of a piece: a W×H cell mask with rows packed
// into bits. Bit x of Rows[y] is the cell at (x, y), bit 0 = leftmost
// column, row 0 = top. Shapes are plain comparable values; orientations
// other than the base are derived via Rotate, never stored.
type Shape struct {
	W, H uint8
	Rows [MaxShapeDim]uint8
}

// Cell reports whether the mask cell at (x, y) is set.
// Out-of-box coordinates are unset.
func (s Shape) Cell(x, y uint8) bool {
	return x < s.W && y < s.H && s.Rows[y]>>x&1 == 1
}

// CellCount returns the number of set cells in the mask.
func (s Shape) CellCount() uint8 {
	var n uint8
	for y := uint8(0); y < s.H; y++ {
		row := s.Rows[y]
		for row != 0 {
			n += row & 1
			row >>= 1
		}
	}
	return n
}

// Rotate returns the mask rotated 90° clockwise: the transpose with each
// row reversed. The transform is kind-agnostic and derived from whatever
// mask it is given, so a non-square bounding box swaps its dimensions on
// every call and four applications restore the original mask exactly.
// There is no kick table; legality of the result is the caller's concern.
func (s Shape) Rotate() Shape {
	r := Shape{W: s.H, H: s.W}
	for y := uint8(0); y < r.H; y++ {
		for x := uint8(0); x < r.W; x++ {
			if s.Rows[s.H-1-x]>>y&1 == 1 {
				r.Rows[y] |= 1 << x
			}
		}
	}
	return r
}

// baseShapes holds the canonical mask for each kind. Row bits read
// little-endian: bit 0 is the left column.
var baseShapes = [NumKinds]Shape{
	// I: XXXX
	KindI: {W: 4, H: 1, Rows: [MaxShapeDim]uint8{0b1111}},
	// O: XX
	//    XX
	KindO: {W: 2, H: 2, Rows: [MaxShapeDim]uint8{0b11, 0b11}},
	// T: XXX
	//    .X.
	KindT: {W: 3, H: 2, Rows: [MaxShapeDim]uint8{0b111, 0b010}},
	// L: X.
	//    X.
	//    XX
	KindL: {W: 2, H: 3, Rows: [MaxShapeDim]uint8{0b01, 0b01, 0b11}},
	// J: .X
	//    .X
	//    XX
	KindJ: {W: 2, H: 3, Rows: [MaxShapeDim]uint8{0b10, 0b10, 0b11}},
	// S: .XX
	//    XX.
	KindS: {W: 3, H: 2, Rows: [MaxShapeDim]uint8{0b110, 0b011}},
	// Z: XX.
	//    .XX
	KindZ: {W: 3, H: 2, Rows: [MaxShapeDim]uint8{0b011, 0b110}},
}

// BaseShape returns the canonical mask for kind, constant for the process
// lifetime. Panics on an out-of-range kind — a caller contract violation,
// not a runtime condition.
func BaseShape(kind ShapeKind) Shape {
	if kind >= NumKinds {
		panic("engine: BaseShape called with invalid kind")
	}
	return baseShapes[kind]
}

// Piece is the currently falling piece: its kind, current (post-rotation)
// mask, and the board position of the mask's top-left cell. Coordinates
// are signed so that collision probes may step outside the board.
type Piece struct {
	Kind  ShapeKind
	Shape Shape
	X, Y  int8
}

// Command is a discrete input event applied to a session.
type Command uint8

const (
	CmdMoveLeft  Command = iota // 0
	CmdMoveRight                // 1
	CmdSoftDrop                 // 2
	CmdHardDrop                 // 3
	CmdRotate                   // 4

	NumCommands = 5
)

// String returns the wire name of the command.
func (c Command) String() string {
	switch c {
	case CmdMoveLeft:
		return "move_left"
	case CmdMoveRight:
		return "move_right"
	case CmdSoftDrop:
		return "soft_drop"
	case CmdHardDrop:
		return "hard_drop"
	case CmdRotate:
		return "rotate"
	}
	return "?"
}
