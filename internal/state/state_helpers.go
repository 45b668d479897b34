package state

import (
	"go-tetris/internal/board"
	"go-tetris/internal/piece"
)

// Phase names the lifecycle position of a game.
type Phase string

const (
	Playing  Phase = "playing"
	Paused   Phase = "paused"
	GameOver Phase = "gameOver"
)

// Phase reports the game's lifecycle position. Game over wins over pause.
func (s GameState) Phase() Phase {
	switch {
	case s.IsGameOver:
		return GameOver
	case s.IsPaused:
		return Paused
	}
	return Playing
}

// Running reports whether the drop timer should be live.
func (s GameState) Running() bool {
	return !s.IsPaused && !s.IsGameOver
}

// Layer says what a composited cell shows.
type Layer int

const (
	LayerEmpty Layer = iota
	LayerLocked
	LayerGhost
	LayerActive
)

// ViewCell is one cell of the composited board.
type ViewCell struct {
	Layer Layer
	Color piece.Color
}

// Grid is the board as the player sees it.
type Grid [board.Height][board.Width]ViewCell

// Composite overlays the ghost and the active piece on the settled board.
// The active piece wins where it overlaps its ghost. Neither is drawn once
// the game is over.
func (s GameState) Composite() Grid {
	var g Grid
	for y := range s.Board {
		for x, c := range s.Board[y] {
			if c.Filled {
				g[y][x] = ViewCell{Layer: LayerLocked, Color: c.Color}
			}
		}
	}
	if s.IsGameOver {
		return g
	}

	p := s.Active.Piece
	paint(&g, p.Shape, GhostPosition(s), ViewCell{Layer: LayerGhost, Color: p.Color})
	paint(&g, p.Shape, s.Active.Position, ViewCell{Layer: LayerActive, Color: p.Color})
	return g
}

func paint(g *Grid, shape piece.Shape, pos board.Position, cell ViewCell) {
	for by, row := range shape {
		for bx, v := range row {
			if v == 0 {
				continue
			}
			x, y := pos.X+bx, pos.Y+by
			if x < 0 || x >= board.Width || y < 0 || y >= board.Height {
				continue
			}
			g[y][x] = cell
		}
	}
}
