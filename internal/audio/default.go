package audio

import (
	"log"
	"time"

	"git.lost.host/meutraa/keytune/internal/game"
	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
)

type DefaultPlayer struct {
	Synth *Synth

	// Streamers carrying an older epoch are cut off
	epoch uint64
}

func NewPlayer(synth *Synth) *DefaultPlayer {
	return &DefaultPlayer{Synth: synth}
}

func (p *DefaultPlayer) Ready() bool {
	return p.Synth.Ready()
}

// note builds the streamer for a single pitch, nil if the pitch is unknown
func (p *DefaultPlayer) note(pitch string, duration time.Duration) beep.Streamer {
	freq, err := game.Frequency(pitch)
	if nil != err {
		log.Println("unable to play note:", err)
		return nil
	}
	var s beep.Streamer = newVoice(p.Synth.SampleRate, freq, duration, p.Synth.Envelope)
	if p.Synth.Volume != 0 {
		s = &effects.Volume{
			Streamer: s,
			Base:     2,
			Volume:   p.Synth.Volume,
		}
	}
	return s
}

// tag must be called with the output locked
func (p *DefaultPlayer) tag(s beep.Streamer) beep.Streamer {
	return &tagged{Streamer: s, epoch: p.epoch, current: &p.epoch}
}

func (p *DefaultPlayer) PlayOne(pitch string, duration time.Duration) {
	if !p.Ready() {
		return
	}
	s := p.note(pitch, duration)
	if nil == s {
		return
	}
	out := p.Synth.out
	out.Lock()
	s = p.tag(s)
	out.Unlock()
	out.Play(s)
}

func (p *DefaultPlayer) PlaySequence(seq []Tone, onNoteStart func(index int)) time.Duration {
	var total time.Duration
	for _, t := range seq {
		total += t.Duration
	}
	if !p.Ready() {
		return total
	}

	sr := p.Synth.SampleRate
	streamers := make([]beep.Streamer, 0, len(seq))
	out := p.Synth.out
	out.Lock()
	// Offsets are counted in samples so rounding never accumulates
	offset := 0
	for i, t := range seq {
		index := i
		parts := []beep.Streamer{beep.Silence(offset)}
		if nil != onNoteStart {
			parts = append(parts, beep.Callback(func() { onNoteStart(index) }))
		}
		if s := p.note(t.Pitch, t.Duration); nil != s {
			parts = append(parts, s)
		}
		streamers = append(streamers, p.tag(beep.Seq(parts...)))
		offset += sr.N(t.Duration)
	}
	out.Unlock()
	out.Play(streamers...)
	return total
}

func (p *DefaultPlayer) StopAll() {
	if !p.Ready() {
		return
	}
	out := p.Synth.out
	out.Lock()
	p.epoch++
	out.Unlock()
}
