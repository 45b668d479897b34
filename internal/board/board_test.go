package board

import (
	"go-tetris/internal/piece"
	"testing"
)

func fillRow(b *Board, y int, except ...int) {
	for x := 0; x < Width; x++ {
		skip := false
		for _, e := range except {
			if e == x {
				skip = true
			}
		}
		if !skip {
			b[y][x] = Cell{Kind: piece.O, Color: piece.Yellow, Filled: true}
		}
	}
}

func TestCollides_Walls(t *testing.T) {
	b := Empty()
	bar := piece.Base(piece.I).Shape

	tests := []struct {
		name   string
		pos    Position
		expect bool
	}{
		{"spawn", Position{3, 0}, false},
		{"left edge", Position{0, 0}, false},
		{"past left wall", Position{-1, 0}, true},
		{"right edge", Position{6, 0}, false},
		{"past right wall", Position{7, 0}, true},
		{"bottom row", Position{3, Height - 1}, false},
		{"below floor", Position{3, Height}, true},
		{"above board", Position{3, -3}, false},
		{"above board past wall", Position{-1, -3}, true},
	}

	for _, tt := range tests {
		if got := Collides(&b, bar, tt.pos); got != tt.expect {
			t.Errorf("%s: Collides at %v = %v, expected %v", tt.name, tt.pos, got, tt.expect)
		}
	}
}

func TestCollides_FilledCells(t *testing.T) {
	b := Empty()
	b[10][4].Filled = true
	sq := piece.Base(piece.O).Shape

	if !Collides(&b, sq, Position{3, 9}) {
		t.Error("Expected overlap with filled cell at (4,10)")
	}
	if Collides(&b, sq, Position{5, 9}) {
		t.Error("Did not expect collision one column to the right")
	}
	if Collides(&b, sq, Position{3, 7}) {
		t.Error("Did not expect collision above the filled cell")
	}
}

func TestCollides_IgnoresEmptyShapeCells(t *testing.T) {
	b := Empty()
	// T's top-left cell is empty, so a filled cell there must not collide.
	b[0][0].Filled = true
	if Collides(&b, piece.Base(piece.T).Shape, Position{0, 0}) {
		t.Error("Empty shape cells should not collide")
	}
}

func TestMerge(t *testing.T) {
	b := Empty()
	p := piece.Base(piece.O)
	merged := Merge(b, p, Position{0, Height - 2})

	if b.FilledCount() != 0 {
		t.Error("Merge must not modify its input board")
	}
	if merged.FilledCount() != 4 {
		t.Fatalf("Expected 4 filled cells, got %d", merged.FilledCount())
	}
	c := merged[Height-1][1]
	if !c.Filled || c.Kind != piece.O || c.Color != piece.Yellow {
		t.Errorf("Unexpected merged cell: %+v", c)
	}
}

func TestMerge_DropsCellsAboveBoard(t *testing.T) {
	b := Empty()
	p := piece.Base(piece.T)
	merged := Merge(b, p, Position{0, -1})
	// Only the bottom row of T (3 cells) lands in row 0.
	if merged.FilledCount() != 3 {
		t.Errorf("Expected 3 filled cells, got %d", merged.FilledCount())
	}
}

func TestClearLines_None(t *testing.T) {
	b := Empty()
	fillRow(&b, Height-1, 0)
	out, n := ClearLines(b)
	if n != 0 {
		t.Errorf("Expected 0 lines, got %d", n)
	}
	if out != b {
		t.Error("Board should be unchanged when no rows are full")
	}
}

func TestClearLines_CompactsInOrder(t *testing.T) {
	for lines := 1; lines <= 4; lines++ {
		b := Empty()
		for i := 0; i < lines; i++ {
			fillRow(&b, Height-1-i)
		}
		marker := Height - 1 - lines
		b[marker][5] = Cell{Kind: piece.T, Color: piece.Purple, Filled: true}

		out, n := ClearLines(b)
		if n != lines {
			t.Errorf("Expected %d lines, got %d", lines, n)
		}
		if len(out) != Height {
			t.Errorf("Board height changed to %d", len(out))
		}
		if !out[Height-1][5].Filled || out[Height-1][5].Kind != piece.T {
			t.Errorf("%d lines: marker should have moved to bottom row", lines)
		}
		if out.FilledCount() != 1 {
			t.Errorf("%d lines: expected 1 filled cell, got %d", lines, out.FilledCount())
		}
	}
}

func TestClearLines_NonContiguous(t *testing.T) {
	b := Empty()
	fillRow(&b, Height-1)
	fillRow(&b, Height-2, 3)
	fillRow(&b, Height-3)
	b[Height-4][0].Filled = true

	out, n := ClearLines(b)
	if n != 2 {
		t.Fatalf("Expected 2 lines, got %d", n)
	}
	if out[Height-1][3].Filled || !out[Height-1][0].Filled {
		t.Error("Partial row should now be the bottom row")
	}
	if !out[Height-2][0].Filled || out[Height-2][1].Filled {
		t.Error("Marker row should sit directly above the partial row")
	}
	for y := 0; y < Height-2; y++ {
		for x := 0; x < Width; x++ {
			if out[y][x].Filled {
				t.Fatalf("Row %d should be empty", y)
			}
		}
	}
}
