package game

import (
	"go-tetris/internal/piece"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	keyLeft   = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight  = tea.KeyMsg{Type: tea.KeyRight}
	keyDown   = tea.KeyMsg{Type: tea.KeyDown}
	keyUp     = tea.KeyMsg{Type: tea.KeyUp}
	keySpace  = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	keyEsc    = tea.KeyMsg{Type: tea.KeyEsc}
	keyR      = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'r'}}
	keyQ      = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}
	keyCtrlC  = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyUnused = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}
)

func newTestGame(kinds ...piece.Kind) *Game {
	g := NewGame(piece.NewSequenceGenerator(kinds...), fastTiming)
	g.Init()
	return g
}

func TestGame_Movement(t *testing.T) {
	g := newTestGame(piece.T)

	g.HandleKeyPress(keyLeft)
	if x := g.Store.State().Active.Position.X; x != 2 {
		t.Errorf("After left, expected x=2, got %d", x)
	}

	g.HandleKeyPress(keyRight)
	g.HandleKeyPress(keyRight)
	if x := g.Store.State().Active.Position.X; x != 4 {
		t.Errorf("After two rights, expected x=4, got %d", x)
	}

	g.HandleKeyPress(keyDown)
	if y := g.Store.State().Active.Position.Y; y != 1 {
		t.Errorf("After down, expected y=1, got %d", y)
	}

	g.HandleKeyPress(keyUp)
	if r := g.Store.State().Active.Rotation; r != 1 {
		t.Errorf("After up, expected rotation 1, got %d", r)
	}

	g.HandleKeyPress(keyUnused)
	if r := g.Store.State().Active.Rotation; r != 1 {
		t.Error("Unbound keys should do nothing")
	}
}

func TestGame_HardDrop(t *testing.T) {
	g := newTestGame(piece.O)

	g.HandleKeyPress(keySpace)

	st := g.Store.State()
	if st.Board.FilledCount() != 4 {
		t.Errorf("Expected the O to be locked, got %d cells", st.Board.FilledCount())
	}
	if !st.Board[19][3].Filled || !st.Board[18][4].Filled {
		t.Error("O should land at the bottom under the spawn column")
	}
}

func TestGame_PauseIgnoresMoves(t *testing.T) {
	g := newTestGame(piece.T)

	g.HandleKeyPress(keyEsc)
	if !g.Store.State().IsPaused {
		t.Fatal("Escape should pause")
	}

	g.HandleKeyPress(keyLeft)
	g.HandleKeyPress(keySpace)
	st := g.Store.State()
	if st.Active.Position.X != 3 || st.Board.FilledCount() != 0 {
		t.Error("Gameplay keys should be ignored while paused")
	}

	g.HandleKeyPress(keyEsc)
	if g.Store.State().IsPaused {
		t.Fatal("Escape should resume")
	}
	g.HandleKeyPress(keyLeft)
	if x := g.Store.State().Active.Position.X; x != 2 {
		t.Errorf("After resume, expected x=2, got %d", x)
	}
}

func TestGame_GameOverOnlyRestarts(t *testing.T) {
	g := newTestGame(piece.I)
	for !g.Store.State().IsGameOver {
		g.HandleKeyPress(keySpace)
	}

	g.HandleKeyPress(keyEsc)
	if g.Store.State().IsPaused {
		t.Error("Pause should be ignored after game over")
	}

	g.HandleKeyPress(keyR)
	st := g.Store.State()
	if st.IsGameOver || st.Board.FilledCount() != 0 || st.Score != 0 {
		t.Error("Restart should start a fresh game")
	}
	if !g.Store.Scheduler().Armed() {
		t.Error("Restart should re-arm the drop timer")
	}
}

func TestGame_RestartFromPause(t *testing.T) {
	g := newTestGame(piece.T)
	g.HandleKeyPress(keyDown)
	g.HandleKeyPress(keyEsc)

	g.HandleKeyPress(keyR)
	st := g.Store.State()
	if st.IsPaused || st.Active.Position.Y != 0 {
		t.Error("Restart from pause should give a fresh running game")
	}
}

func TestGame_IsQuit(t *testing.T) {
	g := newTestGame(piece.T)
	if !g.IsQuit(keyQ) || !g.IsQuit(keyCtrlC) {
		t.Error("q and ctrl+c should quit")
	}
	if g.IsQuit(keyLeft) {
		t.Error("left is not quit")
	}
}

func TestGame_Tick(t *testing.T) {
	g := newTestGame(piece.T)
	cmd := g.Store.Restart()
	msg := dropMsg(t, cmd)

	if next := g.HandleTick(msg); next == nil {
		t.Error("Expected the next tick to be scheduled")
	}
	if y := g.Store.State().Active.Position.Y; y != 1 {
		t.Errorf("Expected y=1 after a tick, got %d", y)
	}
}
