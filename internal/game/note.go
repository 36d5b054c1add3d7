package game

import (
	"time"
)

type Status uint8

const (
	Waiting   Status = iota // Not reached yet
	Current                 // The note expected next
	Correct                 // Struck with the right pitch while current
	Incorrect               // Struck with the wrong pitch while current
	Missed                  // Never struck before the sheet ended
)

var statusNames = [...]string{"waiting", "current", "correct", "incorrect", "missed"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Terminal statuses never change again until the sheet is reset
func (s Status) Terminal() bool {
	return s == Correct || s == Incorrect || s == Missed
}

type Note struct {
	ID       string
	Pitch    string        // Note name and octave, C#4
	Duration time.Duration // How long the note sounds during playback

	// This is state
	Status Status
}
