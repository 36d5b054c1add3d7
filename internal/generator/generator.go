package generator

import "git.lost.host/meutraa/keytune/internal/game"

type Generator interface {
	// Generate a sheet of count notes with the first note current
	Generate(count int) game.Sheet
}
