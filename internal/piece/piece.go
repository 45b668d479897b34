package piece

// Kind identifies one of the seven tetrominoes.
type Kind int

const (
	I Kind = iota
	O
	T
	S
	Z
	J
	L
)

// Kinds lists every kind in catalog order.
var Kinds = []Kind{I, O, T, S, Z, J, L}

func (k Kind) String() string {
	switch k {
	case I:
		return "I"
	case O:
		return "O"
	case T:
		return "T"
	case S:
		return "S"
	case Z:
		return "Z"
	case J:
		return "J"
	case L:
		return "L"
	}
	return "?"
}

// Color is a display tag. The UI maps it to a terminal color.
type Color string

const (
	Cyan   Color = "cyan"
	Yellow Color = "yellow"
	Purple Color = "purple"
	Green  Color = "green"
	Red    Color = "red"
	Blue   Color = "blue"
	Orange Color = "orange"
)

// Shape is a rectangular matrix of 0/1 cells, indexed [row][col].
type Shape [][]uint8

// Piece is a concrete tetromino: its current shape plus kind and color.
type Piece struct {
	Shape Shape
	Kind  Kind
	Color Color
}

type definition struct {
	shape Shape
	color Color
}

var catalog = map[Kind]definition{
	I: {Shape{{1, 1, 1, 1}}, Cyan},
	O: {Shape{{1, 1}, {1, 1}}, Yellow},
	T: {Shape{{0, 1, 0}, {1, 1, 1}}, Purple},
	S: {Shape{{0, 1, 1}, {1, 1, 0}}, Green},
	Z: {Shape{{1, 1, 0}, {0, 1, 1}}, Red},
	J: {Shape{{1, 0, 0}, {1, 1, 1}}, Blue},
	L: {Shape{{0, 0, 1}, {1, 1, 1}}, Orange},
}

// Base returns a fresh, unrotated piece of the given kind.
// The returned shape is a copy; callers may keep it.
func Base(k Kind) Piece {
	def, ok := catalog[k]
	if !ok {
		def = catalog[O]
		k = O
	}
	return Piece{Shape: def.shape.Clone(), Kind: k, Color: def.color}
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	out := make(Shape, len(s))
	for i, row := range s {
		out[i] = append([]uint8(nil), row...)
	}
	return out
}

// Rows returns the number of rows in the shape.
func (s Shape) Rows() int { return len(s) }

// Cols returns the number of columns in the shape.
func (s Shape) Cols() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Equal reports whether two shapes have the same dimensions and cells.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if len(s[i]) != len(other[i]) {
			return false
		}
		for j := range s[i] {
			if s[i][j] != other[i][j] {
				return false
			}
		}
	}
	return true
}

// RotateClockwise returns a new shape turned 90 degrees clockwise.
// An r x c matrix becomes c x r; out[i][j] = in[r-1-j][i].
func RotateClockwise(s Shape) Shape {
	rows, cols := s.Rows(), s.Cols()
	out := make(Shape, cols)
	for i := 0; i < cols; i++ {
		out[i] = make([]uint8, rows)
		for j := 0; j < rows; j++ {
			out[i][j] = s[rows-1-j][i]
		}
	}
	return out
}

// Rotated returns a copy of p with its shape turned clockwise.
func (p Piece) Rotated() Piece {
	p.Shape = RotateClockwise(p.Shape)
	return p
}
