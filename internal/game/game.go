package game

import (
	"go-tetris/internal/piece"
	"go-tetris/internal/scheduler"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Game routes player input and drop ticks to the Store, independent of
// how the board is drawn.
type Game struct {
	Store *Store
	Keys  KeyMap
}

// NewGame initializes a new game instance.
func NewGame(gen piece.Generator, timing Timing) *Game {
	return &Game{
		Store: NewStore(gen, timing),
		Keys:  DefaultKeyMap(),
	}
}

// Init arms the drop timer.
func (g *Game) Init() tea.Cmd {
	return g.Store.Start()
}

// HandleTick processes a drop tick.
func (g *Game) HandleTick(msg scheduler.DropMsg) tea.Cmd {
	return g.Store.HandleDrop(msg)
}

// IsQuit reports whether msg asks to leave the program.
func (g *Game) IsQuit(msg tea.KeyMsg) bool {
	return key.Matches(msg, g.Keys.Quit)
}

// HandleKeyPress translates a key into an engine operation. After game over
// only restart is accepted; while paused only resume and restart are.
func (g *Game) HandleKeyPress(msg tea.KeyMsg) tea.Cmd {
	st := g.Store.State()

	if key.Matches(msg, g.Keys.Restart) {
		return g.Store.Restart()
	}
	if st.IsGameOver {
		return nil
	}
	if key.Matches(msg, g.Keys.Pause) {
		return g.Store.TogglePause()
	}
	if st.IsPaused {
		return nil
	}

	switch {
	case key.Matches(msg, g.Keys.Left):
		return g.Store.MoveLeft()
	case key.Matches(msg, g.Keys.Right):
		return g.Store.MoveRight()
	case key.Matches(msg, g.Keys.Down):
		return g.Store.MoveDown()
	case key.Matches(msg, g.Keys.Rotate):
		return g.Store.Rotate()
	case key.Matches(msg, g.Keys.HardDrop):
		return g.Store.HardDrop()
	}
	return nil
}
