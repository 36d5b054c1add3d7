package config

import (
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	Parse([]string{"-n", "12", "--mute", "--sample-rate", "22050", "--end-buffer", "1s"})

	if *NoteCount != 12 {
		t.Errorf("notes %v", *NoteCount)
	}
	if !*Mute {
		t.Error("mute not set")
	}
	if SampleRate != 22050 {
		t.Errorf("sample rate %v", SampleRate)
	}
	if *EndBuffer != time.Second {
		t.Errorf("end buffer %v", *EndBuffer)
	}
	if *FramePeriod != 16*time.Millisecond || *Seed != 0 || *LogFile != "" {
		t.Errorf("defaults not applied: %v %v %q", *FramePeriod, *Seed, *LogFile)
	}
}
