package keymap

import "testing"

var pitchTests = map[rune]string{
	'a':  "C4",
	'A':  "C4",
	'w':  "C#4",
	'j':  "B4",
	';':  "E5",
	'\'': "F5",
	']':  "F#5",
	'P':  "D#5",
}

func TestPitch(t *testing.T) {
	for key, expected := range pitchTests {
		pitch, ok := Pitch(key)
		if !ok || pitch != expected {
			t.Errorf("%q: got %q (%v), expected %q", key, pitch, ok, expected)
		}
	}
}

func TestPitchUnmapped(t *testing.T) {
	for _, key := range []rune{'z', 'n', 'r', ' ', '?', '1'} {
		if pitch, ok := Pitch(key); ok {
			t.Errorf("%q: unexpectedly bound to %v", key, pitch)
		}
	}
}

func TestKeyIsReverseOfPitch(t *testing.T) {
	for _, b := range append(White(), Black()...) {
		key, ok := Key(b.Pitch)
		if !ok || key != b.Key {
			t.Errorf("%v: got %q, expected %q", b.Pitch, key, b.Key)
		}
	}
	if _, ok := Key("G5"); ok {
		t.Error("G5 is out of range and should have no key")
	}
}

func TestLayout(t *testing.T) {
	if len(White()) != 11 || len(Black()) != 8 {
		t.Errorf("got %v white and %v black keys", len(White()), len(Black()))
	}
	for _, b := range Black() {
		if !b.Black {
			t.Errorf("%v is not marked black", b.Pitch)
		}
	}
}
