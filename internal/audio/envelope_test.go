package audio

import (
	"math"
	"testing"
	"time"
)

func TestEnvelopeLevel(t *testing.T) {
	e := Envelope{
		Attack:  10 * time.Millisecond,
		Decay:   100 * time.Millisecond,
		Sustain: 0.5,
		Release: 200 * time.Millisecond,
	}
	gate := 500 * time.Millisecond

	tests := map[time.Duration]float64{
		-time.Millisecond:       0,
		0:                       0,
		5 * time.Millisecond:    0.5,
		10 * time.Millisecond:   1,
		60 * time.Millisecond:   0.75,
		110 * time.Millisecond:  0.5,
		400 * time.Millisecond:  0.5,
		600 * time.Millisecond:  0.25,
		700 * time.Millisecond:  0,
		time.Second:             0,
	}
	for at, expected := range tests {
		if l := e.Level(at, gate); math.Abs(l-expected) > 1e-9 {
			t.Errorf("at %v: got %v, expected %v", at, l, expected)
		}
	}
}

func TestEnvelopeShortGate(t *testing.T) {
	e := Envelope{Attack: 100 * time.Millisecond, Decay: 100 * time.Millisecond, Sustain: 0.5, Release: 100 * time.Millisecond}

	// Released halfway through the attack, the release starts from 0.5
	if l := e.Level(100*time.Millisecond, 50*time.Millisecond); math.Abs(l-0.25) > 1e-9 {
		t.Errorf("got %v", l)
	}
	if d := e.Length(50 * time.Millisecond); d != 150*time.Millisecond {
		t.Errorf("length %v", d)
	}
}
