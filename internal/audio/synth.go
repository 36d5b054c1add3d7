package audio

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/pkg/errors"
)

// output is where finished streamers go, the speaker outside of tests
type output interface {
	Play(s ...beep.Streamer)
	Lock()
	Unlock()
}

type speakerOutput struct{}

func (speakerOutput) Play(s ...beep.Streamer) { speaker.Play(s...) }
func (speakerOutput) Lock()                   { speaker.Lock() }
func (speakerOutput) Unlock()                 { speaker.Unlock() }

type Options struct {
	SampleRate beep.SampleRate
	Buffer     time.Duration // Speaker buffer, trades latency for stability
	Volume     float64       // Base 2 gain, 0 leaves samples untouched
	Mute       bool
}

// Synth is the handle on the audio device. A nil or muted synth is never
// ready and every player built on it stays silent.
type Synth struct {
	SampleRate beep.SampleRate
	Volume     float64
	Envelope   Envelope

	out output
}

// Open initialises the speaker. Close must be called once the synth is no
// longer needed.
func Open(opts Options) (*Synth, error) {
	s := &Synth{
		SampleRate: opts.SampleRate,
		Volume:     opts.Volume,
		Envelope:   DefaultEnvelope,
	}
	if opts.Mute {
		return s, nil
	}
	if err := speaker.Init(opts.SampleRate, opts.SampleRate.N(opts.Buffer)); nil != err {
		return nil, errors.Wrap(err, "unable to initialise speaker")
	}
	s.out = speakerOutput{}
	return s, nil
}

func (s *Synth) Ready() bool {
	return nil != s && nil != s.out
}

func (s *Synth) Close() {
	if !s.Ready() {
		return
	}
	if _, ok := s.out.(speakerOutput); ok {
		speaker.Close()
	}
	s.out = nil
}
