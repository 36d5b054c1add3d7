package score

import (
	"math"

	"git.lost.host/meutraa/keytune/internal/game"
)

type DefaultScorer struct{}

type band struct {
	Min    int
	Rating string
}

// Evaluated top down, the first band the accuracy reaches wins
var bands = [...]band{
	{Min: 90, Rating: "Perfect"},
	{Min: 75, Rating: "Great"},
	{Min: 50, Rating: "Good"},
	{Min: math.MinInt32, Rating: "Keep practicing"},
}

func (s *DefaultScorer) Accuracy(sheet game.Sheet) (int, bool) {
	if len(sheet) == 0 {
		return 0, false
	}
	correct := sheet.Count(game.Correct)
	return int(math.Round(100 * float64(correct) / float64(len(sheet)))), true
}

func Rating(accuracy int) string {
	for _, b := range bands {
		if accuracy >= b.Min {
			return b.Rating
		}
	}
	return bands[len(bands)-1].Rating
}

func ClassOf(accuracy int) Class {
	switch {
	case accuracy >= 75:
		return High
	case accuracy >= 50:
		return Medium
	}
	return Low
}

func (s *DefaultScorer) Summarize(sheet game.Sheet) Summary {
	summary := Summary{
		Correct:   sheet.Count(game.Correct),
		Incorrect: sheet.Count(game.Incorrect),
		Missed:    sheet.Count(game.Missed),
		Total:     len(sheet),
	}
	if accuracy, ok := s.Accuracy(sheet); ok {
		summary.Accuracy = accuracy
		summary.Rating = Rating(accuracy)
		summary.Class = ClassOf(accuracy)
	}
	return summary
}
