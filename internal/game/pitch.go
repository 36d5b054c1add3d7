package game

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var ErrUnknownPitch = errors.New("unknown pitch")

var semitones = map[byte]int{
	'C': 0,
	'D': 2,
	'E': 4,
	'F': 5,
	'G': 7,
	'A': 9,
	'B': 11,
}

// MIDI returns the midi note number of a pitch such as "C#4", C4 = 60
func MIDI(pitch string) (int, error) {
	if len(pitch) < 2 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPitch, pitch)
	}
	semitone, ok := semitones[pitch[0]]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPitch, pitch)
	}
	rest := pitch[1:]
	switch rest[0] {
	case '#':
		semitone++
		rest = rest[1:]
	case 'b':
		semitone--
		rest = rest[1:]
	}
	octave, err := strconv.Atoi(rest)
	if nil != err {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPitch, pitch)
	}
	return 12*(octave+1) + semitone, nil
}

// Frequency of a pitch in Hz with A4 tuned to 440
func Frequency(pitch string) (float64, error) {
	midi, err := MIDI(pitch)
	if nil != err {
		return 0, err
	}
	return 440 * math.Pow(2, float64(midi-69)/12), nil
}
