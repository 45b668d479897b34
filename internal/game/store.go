package game

import (
	"log"
	"time"

	"go-tetris/internal/board"
	"go-tetris/internal/piece"
	"go-tetris/internal/scheduler"
	"go-tetris/internal/scoring"
	"go-tetris/internal/state"

	tea "github.com/charmbracelet/bubbletea"
)

// Timing configures the drop speed curve.
type Timing struct {
	Base  time.Duration
	Accel float64
}

// DefaultTiming is 800ms at stage 1, 1.2x faster per stage.
var DefaultTiming = Timing{Base: 800 * time.Millisecond, Accel: 1.2}

// Store owns the single GameState of a session. Every change goes through
// Apply, which also keeps the drop scheduler in step with the state.
type Store struct {
	state   state.GameState
	gen     piece.Generator
	sched   *scheduler.Scheduler
	timing  Timing
	History scoring.ScoreHistory
}

// NewStore starts a fresh game. The drop timer is not armed until Start.
func NewStore(gen piece.Generator, timing Timing) *Store {
	return &Store{
		state:  state.New(gen),
		gen:    gen,
		sched:  scheduler.New(),
		timing: timing,
	}
}

// State returns a copy of the current state.
func (s *Store) State() state.GameState {
	st := s.state
	st.Next = append([]piece.Piece(nil), s.state.Next...)
	return st
}

// Scheduler exposes the drop timer for inspection.
func (s *Store) Scheduler() *scheduler.Scheduler {
	return s.sched
}

// Start arms the drop timer for the current state.
func (s *Store) Start() tea.Cmd {
	return s.reschedule()
}

// Apply runs t against the current state and publishes the result. If the
// stage, pause or game-over flag changed, the drop timer is re-armed and
// the returned command delivers its first tick.
func (s *Store) Apply(t state.Transition) tea.Cmd {
	return s.apply(t, false)
}

func (s *Store) apply(t state.Transition, force bool) tea.Cmd {
	prev := s.state
	next := t(prev)
	s.state = next

	s.observe(prev, next)

	if force ||
		prev.Stage != next.Stage ||
		prev.IsPaused != next.IsPaused ||
		prev.IsGameOver != next.IsGameOver {
		return s.reschedule()
	}
	return nil
}

// reschedule tears down any live timer, then arms a new one if the game
// is running.
func (s *Store) reschedule() tea.Cmd {
	if s.sched.Armed() {
		if err := s.sched.Cancel(); err != nil {
			log.Printf("reschedule: %v", err)
		}
	}
	if !s.state.Running() {
		return nil
	}
	cmd, err := s.sched.Arm(scheduler.Interval(s.state.Stage, s.timing.Base, s.timing.Accel))
	if err != nil {
		log.Printf("reschedule: %v", err)
		return nil
	}
	return cmd
}

func (s *Store) observe(prev, next state.GameState) {
	if cleared := next.Lines - prev.Lines; cleared > 0 {
		log.Printf("cleared %d line(s): score %d", cleared, next.Score)
	}
	if next.Stage > prev.Stage {
		log.Printf("stage %d reached at score %d", next.Stage, next.Score)
	}
	if next.IsGameOver && !prev.IsGameOver {
		log.Printf("game over: score %d, stage %d, lines %d", next.Score, next.Stage, next.Lines)
		s.History.Record(scoring.NewEntry(next.Score, next.Stage, next.Lines))
	}
}

// HandleDrop processes a drop tick. Stale ticks are ignored.
func (s *Store) HandleDrop(msg scheduler.DropMsg) tea.Cmd {
	if !s.sched.Accept(msg) {
		return nil
	}
	if cmd := s.Apply(state.MoveDown(s.gen)); cmd != nil {
		return cmd
	}
	return s.sched.Continue()
}

func (s *Store) MoveLeft() tea.Cmd  { return s.Apply(state.MoveLeft) }
func (s *Store) MoveRight() tea.Cmd { return s.Apply(state.MoveRight) }
func (s *Store) Rotate() tea.Cmd    { return s.Apply(state.Rotate) }
func (s *Store) MoveDown() tea.Cmd  { return s.Apply(state.MoveDown(s.gen)) }
func (s *Store) HardDrop() tea.Cmd  { return s.Apply(state.HardDrop(s.gen)) }
func (s *Store) Pause() tea.Cmd     { return s.Apply(state.Pause) }
func (s *Store) Resume() tea.Cmd    { return s.Apply(state.Resume) }

// TogglePause resumes a paused game and pauses a running one.
func (s *Store) TogglePause() tea.Cmd {
	if s.state.IsPaused {
		return s.Resume()
	}
	return s.Pause()
}

// Restart replaces the game and always re-arms the timer.
func (s *Store) Restart() tea.Cmd {
	log.Printf("restart")
	return s.apply(state.Restart(s.gen), true)
}

// GhostPosition is where the active piece would land.
func (s *Store) GhostPosition() board.Position {
	return state.GhostPosition(s.state)
}
