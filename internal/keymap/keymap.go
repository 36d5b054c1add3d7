// Package keymap binds physical keys to the pitches of the on-screen piano.
// The home row plays the white keys and the row above plays the black keys.
package keymap

import (
	"sync"
	"unicode"
)

type Binding struct {
	Key   rune
	Pitch string
	Black bool
}

var (
	white = [...]Binding{
		{Key: 'a', Pitch: "C4"},
		{Key: 's', Pitch: "D4"},
		{Key: 'd', Pitch: "E4"},
		{Key: 'f', Pitch: "F4"},
		{Key: 'g', Pitch: "G4"},
		{Key: 'h', Pitch: "A4"},
		{Key: 'j', Pitch: "B4"},
		{Key: 'k', Pitch: "C5"},
		{Key: 'l', Pitch: "D5"},
		{Key: ';', Pitch: "E5"},
		{Key: '\'', Pitch: "F5"},
	}
	black = [...]Binding{
		{Key: 'w', Pitch: "C#4", Black: true},
		{Key: 'e', Pitch: "D#4", Black: true},
		{Key: 't', Pitch: "F#4", Black: true},
		{Key: 'y', Pitch: "G#4", Black: true},
		{Key: 'u', Pitch: "A#4", Black: true},
		{Key: 'o', Pitch: "C#5", Black: true},
		{Key: 'p', Pitch: "D#5", Black: true},
		{Key: ']', Pitch: "F#5", Black: true},
	}

	once    sync.Once
	byKey   map[rune]string
	byPitch map[string]rune
)

func build() {
	byKey = make(map[rune]string, len(white)+len(black))
	byPitch = make(map[string]rune, len(white)+len(black))
	for _, b := range append(white[:], black[:]...) {
		byKey[b.Key] = b.Pitch
		byPitch[b.Pitch] = b.Key
	}
}

// Pitch returns the pitch bound to a key, ignoring case
func Pitch(r rune) (string, bool) {
	once.Do(build)
	p, ok := byKey[unicode.ToLower(r)]
	return p, ok
}

// Key is the reverse lookup of Pitch
func Key(pitch string) (rune, bool) {
	once.Do(build)
	k, ok := byPitch[pitch]
	return k, ok
}

// White returns the white keys from left to right
func White() []Binding {
	return append([]Binding(nil), white[:]...)
}

// Black returns the black keys from left to right
func Black() []Binding {
	return append([]Binding(nil), black[:]...)
}
