package audio

import "time"

// Tone is one entry of a sequence handed to PlaySequence
type Tone struct {
	Pitch    string
	Duration time.Duration
}

type Player interface {
	// Ready reports whether the synthesizer behind the player is initialised.
	// Every other method is a silent no-op while it is not.
	Ready() bool

	// Sound a single pitch, fire and forget
	PlayOne(pitch string, duration time.Duration)

	// Schedule every tone back to back. onNoteStart is called with the index
	// of each tone as it starts sounding, from the audio goroutine, so it
	// must not block. The total duration is returned straight away.
	PlaySequence(seq []Tone, onNoteStart func(index int)) time.Duration

	// Silence everything and drop callbacks that have not fired yet
	StopAll()
}
