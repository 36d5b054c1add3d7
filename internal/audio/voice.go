package audio

import (
	"math"
	"time"

	"github.com/faiface/beep"
)

// voice is a sine oscillator shaped by an envelope
type voice struct {
	sr       beep.SampleRate
	freq     float64
	gate     time.Duration
	envelope Envelope

	pos, length int
}

func newVoice(sr beep.SampleRate, freq float64, gate time.Duration, env Envelope) *voice {
	return &voice{
		sr:       sr,
		freq:     freq,
		gate:     gate,
		envelope: env,
		length:   sr.N(env.Length(gate)),
	}
}

func (v *voice) Stream(samples [][2]float64) (n int, ok bool) {
	if v.pos >= v.length {
		return 0, false
	}
	for i := range samples {
		if v.pos >= v.length {
			break
		}
		t := v.sr.D(v.pos)
		s := math.Sin(2*math.Pi*v.freq*t.Seconds()) * v.envelope.Level(t, v.gate)
		samples[i] = [2]float64{s, s}
		v.pos++
		n++
	}
	return n, true
}

func (v *voice) Err() error {
	return nil
}

// tagged ends the wrapped streamer as soon as the player's epoch moves on.
// Stream runs under the speaker lock and StopAll bumps the epoch under the
// same lock.
type tagged struct {
	beep.Streamer
	epoch   uint64
	current *uint64
}

func (t *tagged) Stream(samples [][2]float64) (n int, ok bool) {
	if *t.current != t.epoch {
		return 0, false
	}
	return t.Streamer.Stream(samples)
}
