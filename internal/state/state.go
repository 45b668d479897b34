package state

import (
	"go-tetris/internal/board"
	"go-tetris/internal/piece"
	"go-tetris/internal/scoring"
)

// SpawnPosition is where every new active piece enters the board.
var SpawnPosition = board.Position{X: 3, Y: 0}

// minQueue is the number of upcoming pieces kept after every lock.
const minQueue = 2

// kickOffsets are the horizontal retries for a blocked rotation, in order.
var kickOffsets = []int{-1, 1, -2, 2}

// ActivePiece is the piece under player control.
type ActivePiece struct {
	Piece    piece.Piece
	Position board.Position
	Rotation int // 0..3
}

// GameState is one game session. Transitions take a GameState by value and
// return a new one; shapes are never modified in place, so sharing them
// between states is safe.
type GameState struct {
	Board      board.Board
	Active     ActivePiece
	Next       []piece.Piece
	Score      int
	Stage      int
	Lines      int
	IsPaused   bool
	IsGameOver bool
}

// Transition computes the next state from the current one.
type Transition func(GameState) GameState

// New returns a fresh game: empty board, one active piece at spawn and two
// queued pieces.
func New(gen piece.Generator) GameState {
	active := gen.Draw()
	next := make([]piece.Piece, 0, minQueue)
	for len(next) < minQueue {
		next = append(next, gen.Draw())
	}
	return GameState{
		Board:  board.Empty(),
		Active: spawn(active),
		Next:   next,
		Stage:  1,
	}
}

func spawn(p piece.Piece) ActivePiece {
	return ActivePiece{Piece: p, Position: SpawnPosition}
}

// AttemptMove shifts the active piece by (dx, dy), rotating it first when
// rotate is set. A blocked rotation is retried at the kick offsets; a
// blocked move is dropped.
func AttemptMove(s GameState, dx, dy int, rotate bool) GameState {
	if s.IsPaused || s.IsGameOver {
		return s
	}

	candidate := s.Active.Piece
	rotation := s.Active.Rotation
	if rotate {
		candidate = candidate.Rotated()
		rotation = (rotation + 1) % 4
	}

	pos := board.Position{X: s.Active.Position.X + dx, Y: s.Active.Position.Y + dy}
	if !board.Collides(&s.Board, candidate.Shape, pos) {
		s.Active = ActivePiece{Piece: candidate, Position: pos, Rotation: rotation}
		return s
	}

	if !rotate {
		return s
	}

	for _, offset := range kickOffsets {
		kicked := board.Position{X: s.Active.Position.X + offset, Y: s.Active.Position.Y}
		if !board.Collides(&s.Board, candidate.Shape, kicked) {
			s.Active = ActivePiece{Piece: candidate, Position: kicked, Rotation: rotation}
			return s
		}
	}
	return s
}

// MoveLeft, MoveRight and Rotate are the fixed AttemptMove variants.
func MoveLeft(s GameState) GameState  { return AttemptMove(s, -1, 0, false) }
func MoveRight(s GameState) GameState { return AttemptMove(s, 1, 0, false) }
func Rotate(s GameState) GameState    { return AttemptMove(s, 0, 0, true) }

// MoveDown drops the active piece one row, or locks it when it is resting.
func MoveDown(gen piece.Generator) Transition {
	return func(s GameState) GameState {
		if s.IsPaused || s.IsGameOver {
			return s
		}
		below := board.Position{X: s.Active.Position.X, Y: s.Active.Position.Y + 1}
		if !board.Collides(&s.Board, s.Active.Piece.Shape, below) {
			s.Active.Position = below
			return s
		}
		return lock(s, s.Active.Position, gen)
	}
}

// HardDrop lands the active piece at its lowest legal row and locks it.
func HardDrop(gen piece.Generator) Transition {
	return func(s GameState) GameState {
		if s.IsPaused || s.IsGameOver {
			return s
		}
		return lock(s, GhostPosition(s), gen)
	}
}

// lock merges the active piece at pos, clears full rows, scores, and
// spawns the next piece. If the new piece cannot enter, the game ends.
func lock(s GameState, pos board.Position, gen piece.Generator) GameState {
	merged := board.Merge(s.Board, s.Active.Piece, pos)
	cleared, lines := board.ClearLines(merged)

	s.Board = cleared
	s.Lines += lines
	s.Score, s.Stage = scoring.Advance(s.Score, s.Stage, lines)

	var next piece.Piece
	var rest []piece.Piece
	if len(s.Next) > 0 {
		next = s.Next[0]
		rest = append(rest, s.Next[1:]...)
	} else {
		next = gen.Draw()
	}
	for len(rest) < minQueue {
		rest = append(rest, gen.Draw())
	}
	s.Next = rest
	s.Active = spawn(next)

	if board.Collides(&s.Board, s.Active.Piece.Shape, s.Active.Position) {
		s.IsGameOver = true
	}
	return s
}

// Pause freezes the game. Calling it twice is harmless.
func Pause(s GameState) GameState {
	s.IsPaused = true
	return s
}

// Resume unfreezes the game.
func Resume(s GameState) GameState {
	s.IsPaused = false
	return s
}

// Restart discards s and starts over, whatever state s was in.
func Restart(gen piece.Generator) Transition {
	return func(GameState) GameState {
		return New(gen)
	}
}

// GhostPosition is where the active piece would land if hard-dropped.
func GhostPosition(s GameState) board.Position {
	pos := s.Active.Position
	for !board.Collides(&s.Board, s.Active.Piece.Shape, board.Position{X: pos.X, Y: pos.Y + 1}) {
		pos.Y++
	}
	return pos
}
