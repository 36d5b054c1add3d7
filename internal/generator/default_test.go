package generator

import (
	"testing"

	"git.lost.host/meutraa/keytune/internal/game"
)

func TestGenerate(t *testing.T) {
	var g Generator = New(42)
	sheet := g.Generate(8)
	if len(sheet) != 8 {
		t.Fatalf("got %v notes", len(sheet))
	}

	if sheet[0].Status != game.Current {
		t.Errorf("first note is %v", sheet[0].Status)
	}
	for i, n := range sheet[1:] {
		if n.Status != game.Waiting {
			t.Errorf("note %v is %v", i+1, n.Status)
		}
	}
}

func TestGenerateDrawsFromRanges(t *testing.T) {
	pitches := map[string]bool{}
	for _, p := range Pitches {
		pitches[p] = true
	}
	durations := map[string]bool{}
	for _, d := range Durations {
		durations[d.String()] = true
	}

	ids := map[string]bool{}
	for _, n := range New(7).Generate(500) {
		if !pitches[n.Pitch] {
			t.Errorf("pitch %v out of range", n.Pitch)
		}
		if !durations[n.Duration.String()] {
			t.Errorf("duration %v out of range", n.Duration)
		}
		if n.ID == "" || ids[n.ID] {
			t.Errorf("id %q is empty or repeated", n.ID)
		}
		ids[n.ID] = true
	}
}

func TestGenerateSeeded(t *testing.T) {
	a, b := New(99).Generate(16), New(99).Generate(16)
	for i := range a {
		if a[i].Pitch != b[i].Pitch || a[i].Duration != b[i].Duration {
			t.Errorf("note %v differs for the same seed", i)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	if s := New(1).Generate(0); len(s) != 0 {
		t.Errorf("got %v notes", len(s))
	}
	if s := New(1).Generate(-3); len(s) != 0 {
		t.Errorf("got %v notes", len(s))
	}
}
