package audio

import "time"

type Envelope struct {
	Attack  time.Duration
	Decay   time.Duration
	Sustain float64 // Level held after the decay, 0 to 1
	Release time.Duration
}

var DefaultEnvelope = Envelope{
	Attack:  5 * time.Millisecond,
	Decay:   100 * time.Millisecond,
	Sustain: 0.3,
	Release: time.Second,
}

// held returns the level at t while the key is still down
func (e Envelope) held(t time.Duration) float64 {
	switch {
	case t < 0:
		return 0
	case t < e.Attack:
		return float64(t) / float64(e.Attack)
	case t < e.Attack+e.Decay:
		return 1 - (1-e.Sustain)*float64(t-e.Attack)/float64(e.Decay)
	}
	return e.Sustain
}

// Level is the gain at t for a note released at gate
func (e Envelope) Level(t, gate time.Duration) float64 {
	if t < gate {
		return e.held(t)
	}
	since := t - gate
	if since >= e.Release {
		return 0
	}
	return e.held(gate) * (1 - float64(since)/float64(e.Release))
}

// Length is how long a note gated for gate keeps sounding
func (e Envelope) Length(gate time.Duration) time.Duration {
	return gate + e.Release
}
