package scheduler

import (
	"context"
	"fmt"
	"log"
	"math"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/looplab/fsm"
)

const (
	stateIdle  = "idle"
	stateArmed = "armed"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// DropMsg is sent when the drop timer fires. A message is only honored if
// it belongs to the scheduler's current arming; see Accept.
type DropMsg struct {
	ID   int
	Time time.Time
	tag  int
}

// Scheduler drives the automatic drop. It is either idle or armed with a
// single repeating interval. Arming an armed scheduler is an error, so
// callers must Cancel first.
type Scheduler struct {
	FSM      *fsm.FSM
	id       int
	tag      int
	interval time.Duration
}

// New returns an idle scheduler.
func New() *Scheduler {
	s := &Scheduler{id: nextID()}
	s.FSM = fsm.NewFSM(
		stateIdle,
		getTransitions(),
		getCallbacks(s),
	)
	return s
}

func getTransitions() []fsm.EventDesc {
	return fsm.Events{
		{Name: "arm", Src: []string{stateIdle}, Dst: stateArmed},
		{Name: "cancel", Src: []string{stateArmed}, Dst: stateIdle},
	}
}

func getCallbacks(s *Scheduler) map[string]fsm.Callback {
	return fsm.Callbacks{
		"enter_" + stateArmed: func(_ context.Context, e *fsm.Event) {
			if len(e.Args) > 0 {
				s.interval = e.Args[0].(time.Duration)
			}
			// A new tag orphans any tick still in flight.
			s.tag++
			log.Printf("drop timer armed: every %s", s.interval)
		},
		"enter_" + stateIdle: func(_ context.Context, e *fsm.Event) {
			s.tag++
			log.Printf("drop timer cancelled")
		},
	}
}

// Arm starts the repeating timer and returns the command that delivers
// the first tick.
func (s *Scheduler) Arm(interval time.Duration) (tea.Cmd, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("arm drop timer: interval must be positive, got %s", interval)
	}
	if err := s.FSM.Event(context.Background(), "arm", interval); err != nil {
		return nil, fmt.Errorf("arm drop timer: %w", err)
	}
	return s.tick(), nil
}

// Cancel stops the timer. Pending ticks become stale.
func (s *Scheduler) Cancel() error {
	if err := s.FSM.Event(context.Background(), "cancel"); err != nil {
		return fmt.Errorf("cancel drop timer: %w", err)
	}
	return nil
}

// Armed reports whether a timer is live.
func (s *Scheduler) Armed() bool {
	return s.FSM.Is(stateArmed)
}

// Interval is the period of the current (or last) arming.
func (s *Scheduler) Interval() time.Duration {
	return s.interval
}

// ID identifies this scheduler's ticks.
func (s *Scheduler) ID() int {
	return s.id
}

// Accept reports whether msg is the live tick of this scheduler.
func (s *Scheduler) Accept(msg DropMsg) bool {
	return s.Armed() && msg.ID == s.id && msg.tag == s.tag
}

// Continue schedules the next tick of the current arming. It returns nil
// when the scheduler is idle.
func (s *Scheduler) Continue() tea.Cmd {
	if !s.Armed() {
		return nil
	}
	return s.tick()
}

func (s *Scheduler) tick() tea.Cmd {
	id, tag := s.id, s.tag
	return tea.Tick(s.interval, func(t time.Time) tea.Msg {
		return DropMsg{ID: id, Time: t, tag: tag}
	})
}

// Interval returns the drop period for a stage: base / accel^(stage-1).
func Interval(stage int, base time.Duration, accel float64) time.Duration {
	if stage < 1 {
		stage = 1
	}
	return time.Duration(float64(base) / math.Pow(accel, float64(stage-1)))
}
