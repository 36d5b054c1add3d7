// Package session holds the practice state machine: the sheet, the cursor
// into it and whether the sheet is idle, playing or completed.
//
// A Session is not safe for concurrent use. Every method, including the
// callbacks it hands to the player and the scheduler, must run on one
// goroutine. Callbacks carry the generation they were scheduled under and
// do nothing once a later Play, Stop, Retry or Generate has moved it on.
package session

import (
	"log"
	"time"

	"git.lost.host/meutraa/keytune/internal/audio"
	"git.lost.host/meutraa/keytune/internal/game"
	"git.lost.host/meutraa/keytune/internal/generator"
	"git.lost.host/meutraa/keytune/internal/score"
)

type Mode uint8

const (
	Idle Mode = iota
	Playing
	Completed
)

func (m Mode) String() string {
	switch m {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Completed:
		return "completed"
	}
	return "unknown"
}

// Outcome of a struck key
type Outcome uint8

const (
	FreePlay Outcome = iota
	Hit
	Miss
)

// How long a struck key sounds
const strikeDuration = 500 * time.Millisecond

type Options struct {
	NoteCount int
	Buffer    time.Duration // Wait after the last note before completing
}

type Session struct {
	player    audio.Player
	scheduler Scheduler
	generator generator.Generator
	scorer    score.Scorer
	opts      Options

	sheet      game.Sheet
	cursor     int
	mode       Mode
	generation uint64
	completion Timer
}

// New builds a session and generates its first sheet
func New(player audio.Player, scheduler Scheduler, gen generator.Generator, opts Options) *Session {
	s := &Session{
		player:    player,
		scheduler: scheduler,
		generator: gen,
		scorer:    &score.DefaultScorer{},
		opts:      opts,
	}
	s.Generate()
	return s
}

func (s *Session) Sheet() game.Sheet { return s.sheet }
func (s *Session) Cursor() int       { return s.cursor }
func (s *Session) Mode() Mode        { return s.mode }

// Current returns the note under the cursor, nil for an empty sheet
func (s *Session) Current() *game.Note {
	if s.cursor < len(s.sheet) {
		return s.sheet[s.cursor]
	}
	return nil
}

func (s *Session) Accuracy() (int, bool) {
	return s.scorer.Accuracy(s.sheet)
}

func (s *Session) Summary() score.Summary {
	return s.scorer.Summarize(s.sheet)
}

// invalidate makes every pending callback inert
func (s *Session) invalidate() {
	s.generation++
	if nil != s.completion {
		s.completion.Stop()
		s.completion = nil
	}
}

// Generate replaces the sheet with a fresh one
func (s *Session) Generate() {
	s.invalidate()
	s.player.StopAll()
	s.sheet = s.generator.Generate(s.opts.NoteCount)
	s.cursor = 0
	s.mode = Idle
	log.Printf("generated sheet of %v notes\n", len(s.sheet))
}

// Retry resets the statuses of the current sheet, keeping its notes
func (s *Session) Retry() {
	if len(s.sheet) == 0 {
		return
	}
	s.invalidate()
	s.player.StopAll()
	s.sheet.Reset()
	s.cursor = 0
	s.mode = Idle
}

// Toggle plays when idle and pauses while playing
func (s *Session) Toggle() {
	if s.mode == Playing {
		s.Stop()
		return
	}
	s.Play()
}

func (s *Session) Play() {
	if !s.player.Ready() || len(s.sheet) == 0 || s.mode != Idle {
		return
	}
	s.invalidate()
	s.mode = Playing
	generation := s.generation

	seq := make([]audio.Tone, len(s.sheet))
	for i, n := range s.sheet {
		seq[i] = audio.Tone{Pitch: n.Pitch, Duration: n.Duration}
	}
	total := s.player.PlaySequence(seq, func(index int) {
		s.scheduler.AfterFunc(0, func() { s.noteStarted(generation, index) })
	})
	s.completion = s.scheduler.AfterFunc(total+s.opts.Buffer, func() { s.complete(generation) })
}

// Stop pauses playback, the cursor and statuses are kept
func (s *Session) Stop() {
	if s.mode == Completed {
		return
	}
	s.invalidate()
	s.player.StopAll()
	s.mode = Idle
}

func (s *Session) noteStarted(generation uint64, index int) {
	if generation != s.generation || s.mode != Playing || index >= len(s.sheet) {
		return
	}
	for i, n := range s.sheet {
		switch {
		case i == index:
			n.Status = game.Current
		case i > index:
			n.Status = game.Waiting
		}
	}
	s.cursor = index
}

func (s *Session) complete(generation uint64) {
	if generation != s.generation || s.mode != Playing {
		return
	}
	s.completion = nil
	s.finish()
	log.Println("playback finished")
}

// finish completes the sheet, anything not yet resolved counts as missed
func (s *Session) finish() {
	s.mode = Completed
	for _, n := range s.sheet {
		if n.Status == game.Waiting || n.Status == game.Current {
			n.Status = game.Missed
		}
	}
}

// Strike matches a pitch against the current note. Outside of an expected
// match the pitch is only sounded.
func (s *Session) Strike(pitch string) Outcome {
	s.player.PlayOne(pitch, strikeDuration)

	note := s.Current()
	if s.mode == Completed || nil == note || note.Status != game.Current {
		return FreePlay
	}

	outcome := Miss
	note.Status = game.Incorrect
	if note.Pitch == pitch {
		outcome = Hit
		note.Status = game.Correct
	}

	if s.cursor < len(s.sheet)-1 {
		s.cursor++
		s.sheet[s.cursor].Status = game.Current
		return outcome
	}

	// Playback may have passed notes that were never struck
	s.invalidate()
	s.finish()
	log.Println("sheet completed")
	return outcome
}
