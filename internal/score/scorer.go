package score

import "git.lost.host/meutraa/keytune/internal/game"

type Scorer interface {
	// Accuracy is the rounded percentage of correct notes, ok is false for
	// an empty sheet
	Accuracy(sheet game.Sheet) (accuracy int, ok bool)

	Summarize(sheet game.Sheet) Summary
}

// Class buckets an accuracy for colouring
type Class uint8

const (
	Low Class = iota
	Medium
	High
)

type Summary struct {
	Correct   int
	Incorrect int
	Missed    int
	Total     int

	Accuracy int
	Rating   string
	Class    Class
}
