// Package sched provides a deterministic core.Scheduler driven by a
// virtual clock. Each Step advances the clock by one frame, fires the
// timers that came due and then runs the frame callbacks.
package sched

import (
	"sort"
	"time"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

type task struct {
	id        uint64
	fn        func()
	cancelled bool
}

type timer struct {
	task
	interval time.Duration
	due      time.Duration
}

// Virtual is a single-threaded scheduler with a simulated clock.
// It is not safe for concurrent use; callbacks run on the goroutine
// calling Step.
type Virtual struct {
	frame  time.Duration
	now    time.Duration
	nextID uint64
	frames []*task
	timers []*timer
}

// NewVirtual creates a scheduler whose frames are frame apart.
func NewVirtual(frame time.Duration) *Virtual {
	if frame <= 0 {
		panic("sched: non-positive frame duration")
	}
	return &Virtual{frame: frame}
}

// RequestFrame implements core.Scheduler.
func (v *Virtual) RequestFrame(fn func()) core.Handle {
	v.nextID++
	t := &task{id: v.nextID, fn: fn}
	v.frames = append(v.frames, t)
	return core.HandleFunc(func() { t.cancelled = true })
}

// Every implements core.Scheduler. The first call happens one interval
// after now.
func (v *Virtual) Every(interval time.Duration, fn func()) core.Handle {
	if interval <= 0 {
		panic("sched: non-positive interval")
	}
	v.nextID++
	t := &timer{
		task:     task{id: v.nextID, fn: fn},
		interval: interval,
		due:      v.now + interval,
	}
	v.timers = append(v.timers, t)
	return core.HandleFunc(func() { t.cancelled = true })
}

// Step advances the clock by one frame.
func (v *Virtual) Step() {
	v.now += v.frame
	v.fireTimers()

	// Frames requested while running these go to the next step
	pending := v.frames
	v.frames = nil
	for _, t := range pending {
		if !t.cancelled {
			t.cancelled = true
			t.fn()
		}
	}
}

// Run calls Step n times.
func (v *Virtual) Run(n int) {
	for i := 0; i < n; i++ {
		v.Step()
	}
}

// fireTimers runs due timers in deadline order, ties broken by creation.
func (v *Virtual) fireTimers() {
	for {
		v.prune()
		next := v.earliest()
		if next == nil || next.due > v.now {
			return
		}
		next.due += next.interval
		next.fn()
	}
}

func (v *Virtual) earliest() *timer {
	if len(v.timers) == 0 {
		return nil
	}
	sort.SliceStable(v.timers, func(i, j int) bool {
		if v.timers[i].due != v.timers[j].due {
			return v.timers[i].due < v.timers[j].due
		}
		return v.timers[i].id < v.timers[j].id
	})
	return v.timers[0]
}

func (v *Virtual) prune() {
	kept := v.timers[:0]
	for _, t := range v.timers {
		if !t.cancelled {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(v.timers); i++ {
		v.timers[i] = nil
	}
	v.timers = kept
}

// Now returns the virtual time elapsed since creation.
func (v *Virtual) Now() time.Duration {
	return v.now
}

// PendingFrames returns the number of frame callbacks waiting to run.
func (v *Virtual) PendingFrames() int {
	n := 0
	for _, t := range v.frames {
		if !t.cancelled {
			n++
		}
	}
	return n
}

// ActiveTimers returns the number of timers that have not been cancelled.
func (v *Virtual) ActiveTimers() int {
	n := 0
	for _, t := range v.timers {
		if !t.cancelled {
			n++
		}
	}
	return n
}
