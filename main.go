package main

import (
	"io"
	"log"
	"os"

	"git.lost.host/meutraa/keytune/internal/audio"
	"git.lost.host/meutraa/keytune/internal/config"
	"git.lost.host/meutraa/keytune/internal/generator"
	"git.lost.host/meutraa/keytune/internal/render"
	"git.lost.host/meutraa/keytune/internal/session"
	"git.lost.host/meutraa/keytune/internal/theme"
	"github.com/eiannone/keyboard"
	"github.com/pkg/errors"
)

func main() {
	config.Parse(os.Args[1:])
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

// openLog points the standard logger at a file, the screen belongs to the
// renderer
func openLog(path string) (io.Closer, error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if nil != err {
		return nil, errors.Wrap(err, "unable to open log file")
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f, nil
}

func run() error {
	logFile, err := openLog(*config.LogFile)
	if nil != err {
		return err
	}
	defer logFile.Close()

	synth, err := audio.Open(audio.Options{
		SampleRate: config.SampleRate,
		Buffer:     *config.Latency,
		Volume:     *config.Volume,
		Mute:       *config.Mute,
	})
	if nil != err {
		// Matching notes still works without sound
		log.Println(err, "- continuing without audio")
		synth = nil
	}
	defer synth.Close()

	keys, err := keyboard.GetKeys(128)
	if nil != err {
		return errors.Wrap(err, "unable to open keyboard")
	}
	defer func() {
		if err := keyboard.Close(); nil != err {
			log.Println("unable to close keyboard", err)
		}
	}()

	events := make(chan func(), 256)
	sess := session.New(
		audio.NewPlayer(synth),
		session.LoopScheduler{Post: func(f func()) { events <- f }},
		generator.New(*config.Seed),
		session.Options{NoteCount: *config.NoteCount, Buffer: *config.EndBuffer},
	)

	r := render.NewRenderer()
	if err := r.Init(); nil != err {
		return errors.Wrap(err, "unable to initialise renderer")
	}
	defer func() {
		// Restore the terminal state
		if err := r.Deinit(); nil != err {
			log.Println("unable to restore terminal", err)
		}
	}()

	p := NewProgram(sess, r, &theme.DefaultTheme{}, keys, events)
	p.Run(*config.FramePeriod)

	sess.Stop()
	return nil
}
