package theme

import (
	"git.lost.host/meutraa/keytune/internal/game"
	"git.lost.host/meutraa/keytune/internal/keymap"
	"git.lost.host/meutraa/keytune/internal/score"
)

// Feedback shown on a piano key after it is struck
type Feedback uint8

const (
	None Feedback = iota
	Pressed
	Hit
	Miss
)

type Theme interface {
	// Width of one note cell in the sheet strip
	NoteWidth() int
	// Rows of a note cell, top to bottom
	RenderNote(note *game.Note, active bool) []string

	KeyWidth() int
	RenderKey(binding keymap.Binding, feedback Feedback) string

	RenderTitle(mode string) string
	RenderSummary(summary score.Summary) []string
	RenderHelp() []string
	RenderHint(message string) string
}
