package session

import (
	"testing"
	"time"
)

func TestLoopScheduler(t *testing.T) {
	loop := make(chan func(), 1)
	s := LoopScheduler{Post: func(f func()) { loop <- f }}

	fired := false
	s.AfterFunc(time.Millisecond, func() { fired = true })

	select {
	case f := <-loop:
		if fired {
			t.Fatal("ran on the timer goroutine")
		}
		f()
	case <-time.After(time.Second):
		t.Fatal("timer never posted")
	}
	if !fired {
		t.Error("posted function did not run")
	}
}

func TestLoopSchedulerStop(t *testing.T) {
	loop := make(chan func(), 1)
	s := LoopScheduler{Post: func(f func()) { loop <- f }}

	timer := s.AfterFunc(50*time.Millisecond, func() {})
	if !timer.Stop() {
		t.Fatal("timer already fired")
	}
	select {
	case <-loop:
		t.Error("stopped timer posted")
	case <-time.After(100 * time.Millisecond):
	}
}
