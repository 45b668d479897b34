package board

import "go-tetris/internal/piece"

const (
	Width  = 10
	Height = 20
)

// Cell holds settled piece material. Filled is true only for locked cells;
// the active piece is never written here.
type Cell struct {
	Kind   piece.Kind
	Color  piece.Color
	Filled bool
}

// Board is the playfield, indexed [row][col] with row 0 at the top.
// It is an array, so assigning a Board copies it.
type Board [Height][Width]Cell

// Position is the board offset of a shape's top-left corner.
// Y may be negative while a piece is entering from above.
type Position struct {
	X int
	Y int
}

// Empty returns a board with no filled cells.
func Empty() Board {
	return Board{}
}

// Collides reports whether shape placed at pos leaves the side or bottom
// walls or overlaps a filled cell. Cells above the top row are exempt from
// the fill check but not from the side walls.
func Collides(b *Board, shape piece.Shape, pos Position) bool {
	for by, row := range shape {
		for bx, v := range row {
			if v == 0 {
				continue
			}
			fx, fy := pos.X+bx, pos.Y+by
			if fx < 0 || fx >= Width || fy >= Height {
				return true
			}
			if fy >= 0 && b[fy][fx].Filled {
				return true
			}
		}
	}
	return false
}

// Merge writes p's set cells into a copy of b at pos. Cells that fall
// outside the board are dropped.
func Merge(b Board, p piece.Piece, pos Position) Board {
	for by, row := range p.Shape {
		for bx, v := range row {
			if v == 0 {
				continue
			}
			fx, fy := pos.X+bx, pos.Y+by
			if fy < 0 || fy >= Height || fx < 0 || fx >= Width {
				continue
			}
			b[fy][fx] = Cell{Kind: p.Kind, Color: p.Color, Filled: true}
		}
	}
	return b
}

// ClearLines removes every full row, shifts the rest down in order and
// pads the top with empty rows. It returns the new board and the number
// of rows removed.
func ClearLines(b Board) (Board, int) {
	var out Board
	dst := Height - 1
	for y := Height - 1; y >= 0; y-- {
		if RowFull(&b, y) {
			continue
		}
		out[dst] = b[y]
		dst--
	}
	return out, dst + 1
}

// RowFull reports whether every cell in row y is filled.
func RowFull(b *Board, y int) bool {
	for x := 0; x < Width; x++ {
		if !b[y][x].Filled {
			return false
		}
	}
	return true
}

// FilledCount returns the number of filled cells on the board.
func (b *Board) FilledCount() int {
	n := 0
	for y := range b {
		for x := range b[y] {
			if b[y][x].Filled {
				n++
			}
		}
	}
	return n
}
