package config

import (
	"github.com/faiface/beep"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	NoteCount   = kingpin.Flag("notes", "Notes per sheet").Default("8").Short('n').Int()
	Seed        = kingpin.Flag("seed", "Sheet generator seed, 0 picks one from the clock").Default("0").Int64()
	Volume      = kingpin.Flag("volume", "Synth gain in base 2 steps").Default("0").Short('v').Float64()
	Mute        = kingpin.Flag("mute", "Do not open the audio device").Bool()
	rate        = kingpin.Flag("sample-rate", "Synth sample rate").Default("44100").Uint()
	Latency     = kingpin.Flag("latency", "Speaker buffer length").Default("50ms").Duration()
	EndBuffer   = kingpin.Flag("end-buffer", "Wait after the last note before the sheet completes").Default("500ms").Duration()
	FramePeriod = kingpin.Flag("frame-period", "Render frame period").Default("16ms").Short('p').Duration()
	LogFile     = kingpin.Flag("log", "Write diagnostics to this file").Short('l').String()
	SampleRate  beep.SampleRate
)

func init() {
	kingpin.Version("0.1.0")
}

// Parse must run before any flag is read
func Parse(args []string) {
	kingpin.MustParse(kingpin.CommandLine.Parse(args))

	SampleRate = beep.SampleRate(*rate)
}
