package session

import "time"

type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. Implementations must deliver f on the
// same goroutine that drives the session.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

// LoopScheduler hands fired timers to an event loop through Post
type LoopScheduler struct {
	Post func(f func())
}

func (s LoopScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, func() { s.Post(f) })
}
