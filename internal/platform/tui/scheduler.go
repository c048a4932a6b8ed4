// Package tui provides the Bubble Tea front-end: it turns terminal input
// into game actions, runs the game's frame loop and spawn timer on the
// Bubble Tea event loop and draws the scene into the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// frameMsg delivers a requested animation frame.
type frameMsg struct {
	id uint64
}

// timerMsg delivers one period of a repeating timer.
type timerMsg struct {
	id uint64
}

type teaTimer struct {
	interval time.Duration
	fn       func()
}

// teaScheduler implements core.Scheduler on top of tea.Tick.
//
// Callbacks run inside Model.Update, so they share Bubble Tea's single
// event loop. Ticks cannot be recalled once issued; a cancelled handle is
// forgotten and its message is dropped on arrival.
type teaScheduler struct {
	frameInterval time.Duration
	nextID        uint64
	frames        map[uint64]func()
	timers        map[uint64]*teaTimer
	pending       []tea.Cmd
}

func newTeaScheduler(tickRate int) *teaScheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &teaScheduler{
		frameInterval: time.Second / time.Duration(tickRate),
		frames:        make(map[uint64]func()),
		timers:        make(map[uint64]*teaTimer),
	}
}

// RequestFrame implements core.Scheduler.
func (s *teaScheduler) RequestFrame(fn func()) core.Handle {
	s.nextID++
	id := s.nextID
	s.frames[id] = fn
	s.pending = append(s.pending, tea.Tick(s.frameInterval, func(time.Time) tea.Msg {
		return frameMsg{id: id}
	}))
	return core.HandleFunc(func() { delete(s.frames, id) })
}

// Every implements core.Scheduler.
func (s *teaScheduler) Every(interval time.Duration, fn func()) core.Handle {
	s.nextID++
	id := s.nextID
	s.timers[id] = &teaTimer{interval: interval, fn: fn}
	s.arm(id, interval)
	return core.HandleFunc(func() { delete(s.timers, id) })
}

func (s *teaScheduler) arm(id uint64, interval time.Duration) {
	s.pending = append(s.pending, tea.Tick(interval, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
}

// handle runs the callback behind a scheduler message. It reports false
// for messages it does not own.
func (s *teaScheduler) handle(msg tea.Msg) bool {
	switch msg := msg.(type) {
	case frameMsg:
		if fn, ok := s.frames[msg.id]; ok {
			delete(s.frames, msg.id)
			fn()
		}
		return true
	case timerMsg:
		if t, ok := s.timers[msg.id]; ok {
			t.fn()
			// The callback may have cancelled its own timer
			if _, still := s.timers[msg.id]; still {
				s.arm(msg.id, t.interval)
			}
		}
		return true
	}
	return false
}

// drain returns the ticks issued since the last call as one command.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
