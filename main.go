package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go-tetris/internal/config"
	"go-tetris/internal/game"
	"go-tetris/internal/piece"
	"go-tetris/internal/scheduler"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

type LocalState struct {
	Game *game.Game
	help help.Model
}

func initialModel(opts config.Options) *LocalState {
	gen := piece.NewRandomGenerator(opts.Seed)
	timing := game.Timing{Base: opts.BaseInterval, Accel: opts.Accel}
	return &LocalState{
		Game: game.NewGame(gen, timing),
		help: help.New(),
	}
}

func (s *LocalState) Init() tea.Cmd {
	return s.Game.Init()
}

func (s *LocalState) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scheduler.DropMsg:
		return s, s.Game.HandleTick(msg)
	case tea.WindowSizeMsg:
		s.help.Width = msg.Width
	case tea.KeyMsg:
		if s.Game.IsQuit(msg) {
			return s, tea.Quit
		}
		return s, s.Game.HandleKeyPress(msg)
	}
	return s, nil
}

func (s *LocalState) View() string {
	st := s.Game.Store.State()
	return renderScreen(st, s.Game.Store.History) + "\n" + s.help.View(s.Game.Keys)
}

// setupLogging sends the standard logger to a file in debug mode and
// discards it otherwise; the terminal belongs to the UI.
func setupLogging(opts config.Options) (*os.File, error) {
	if !opts.Debug {
		log.SetOutput(io.Discard)
		return nil, nil
	}
	f, err := tea.LogToFile(opts.LogPath, "tetris")
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return f, nil
}

func main() {
	opts, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	opts.RegisterFlags(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nOptions:\n")
		fmt.Fprintf(os.Stderr, "   -s, --seed=N           Random seed for piece selection (0 uses the clock)\n")
		fmt.Fprintf(os.Stderr, "   -i, --interval=DUR     Drop interval at stage 1 (default 800ms)\n")
		fmt.Fprintf(os.Stderr, "   -a, --accel=F          Speed-up factor per stage (default 1.2)\n")
		fmt.Fprintf(os.Stderr, "   -d, --debug            Write a debug log\n")
		fmt.Fprintf(os.Stderr, "       --log=PATH         Debug log path (default debug.log)\n")
		fmt.Fprintf(os.Stderr, "   -h, --help             Show this help message\n")
		fmt.Fprintf(os.Stderr, "\nEvery option can also be set with a TETRIS_* environment variable.\n")
	}
	flag.Parse()

	if err := opts.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid options: %v\n", err)
		os.Exit(2)
	}

	logFile, err := setupLogging(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	model := initialModel(opts)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error starting the program: %v\n", err)
		return
	}

	if best := model.Game.Store.History.GetHighScoreEntry(); best != nil {
		fmt.Printf("Best score this session: %d (stage %d, %d lines)\n", best.Score, best.Stage, best.Lines)
	}
	fmt.Printf("Final score: %d\n", model.Game.Store.State().Score)
}
