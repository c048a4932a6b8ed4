package core

import "time"

// Handle cancels a scheduled callback. Cancelling a handle that already
// fired or was already cancelled does nothing.
type Handle interface {
	Cancel()
}

// HandleFunc adapts a function to the Handle interface.
type HandleFunc func()

// Cancel calls f.
func (f HandleFunc) Cancel() {
	if f != nil {
		f()
	}
}

// NopHandle is a Handle that cancels nothing.
var NopHandle Handle = HandleFunc(nil)

// Scheduler runs callbacks on a single logical thread.
//
// Implementations must never run two callbacks concurrently, so state
// touched only from callbacks needs no locking.
type Scheduler interface {
	// RequestFrame runs fn once, on the next frame.
	RequestFrame(fn func()) Handle

	// Every runs fn repeatedly with the given period until cancelled.
	// The period is measured on the scheduler's clock, independent of
	// the frame rate.
	Every(interval time.Duration, fn func()) Handle
}
