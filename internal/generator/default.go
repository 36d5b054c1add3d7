package generator

import (
	"math/rand"
	"time"

	"git.lost.host/meutraa/keytune/internal/game"
	"github.com/google/uuid"
)

var (
	// Chromatic range covered by the keyboard, C4 to F#5
	Pitches = [...]string{
		"C4", "C#4", "D4", "D#4", "E4", "F4", "F#4", "G4", "G#4", "A4", "A#4", "B4",
		"C5", "C#5", "D5", "D#5", "E5", "F5", "F#5",
	}
	Durations = [...]time.Duration{
		500 * time.Millisecond,
		750 * time.Millisecond,
		time.Second,
		1500 * time.Millisecond,
	}
)

type DefaultGenerator struct {
	Rand *rand.Rand
}

// New seeds a generator, a zero seed uses the current time
func New(seed int64) *DefaultGenerator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &DefaultGenerator{Rand: rand.New(rand.NewSource(seed))}
}

func (g *DefaultGenerator) Generate(count int) game.Sheet {
	if count < 0 {
		count = 0
	}
	sheet := make(game.Sheet, count)
	for i := range sheet {
		sheet[i] = &game.Note{
			ID:       uuid.NewString(),
			Pitch:    Pitches[g.Rand.Intn(len(Pitches))],
			Duration: Durations[g.Rand.Intn(len(Durations))],
			Status:   game.Waiting,
		}
	}
	sheet.Reset()
	return sheet
}
