package main

import (
	"log"
	"time"

	"git.lost.host/meutraa/keytune/internal/keymap"
	"git.lost.host/meutraa/keytune/internal/render"
	"git.lost.host/meutraa/keytune/internal/session"
	"git.lost.host/meutraa/keytune/internal/theme"
	"github.com/eiannone/keyboard"
)

const (
	titleRow   = 2
	sheetRow   = 4
	messageRow = 9
	helpRow    = 12
	blackRow   = 16
	whiteRow   = 17

	pressFrames    = 9  // Key press flash
	feedbackFrames = 18 // Correct or incorrect flash
)

type Program struct {
	Session  *session.Session
	Renderer render.Renderer
	Theme    theme.Theme

	keys   <-chan keyboard.KeyEvent
	events chan func()

	showHelp bool
	quit     bool
}

func NewProgram(s *session.Session, r render.Renderer, th theme.Theme, keys <-chan keyboard.KeyEvent, events chan func()) *Program {
	return &Program{
		Session:  s,
		Renderer: r,
		Theme:    th,
		keys:     keys,
		events:   events,
	}
}

func (p *Program) Run(period time.Duration) {
	p.Renderer.RenderLoop(period, func() bool {
		p.Update()
		p.Render()
		return !p.quit
	})
}

// Update runs everything that happened since the last frame, timers first
func (p *Program) Update() {
	for n := len(p.events); n > 0; n-- {
		f := <-p.events
		f()
	}

	for n := len(p.keys); n > 0 && !p.quit; n-- {
		key := <-p.keys
		if nil != key.Err {
			log.Println("unable to read key", key.Err)
			continue
		}
		p.HandleKey(key)
	}
}

func (p *Program) HandleKey(key keyboard.KeyEvent) {
	switch {
	case key.Key == keyboard.KeyEsc || key.Key == keyboard.KeyCtrlC:
		p.quit = true
		return
	case key.Key == keyboard.KeySpace || key.Rune == ' ':
		p.Session.Toggle()
		return
	}

	switch key.Rune {
	case 'n', 'N':
		p.Session.Generate()
	case 'r', 'R':
		p.Session.Retry()
	case '?':
		p.showHelp = !p.showHelp
	default:
		pitch, ok := keymap.Pitch(key.Rune)
		if !ok {
			return
		}
		p.strike(pitch)
	}
}

func (p *Program) strike(pitch string) {
	feedback, frames := theme.Pressed, pressFrames
	switch p.Session.Strike(pitch) {
	case session.Hit:
		feedback, frames = theme.Hit, feedbackFrames
	case session.Miss:
		feedback, frames = theme.Miss, feedbackFrames
	}

	for _, b := range append(keymap.White(), keymap.Black()...) {
		if b.Pitch != pitch {
			continue
		}
		row, col := p.keyPosition(b)
		p.Renderer.AddDecoration(row, col, p.Theme.RenderKey(b, feedback), frames)
	}
}

// keyboardLeft is the first column of the leftmost white key
func (p *Program) keyboardLeft() int {
	columns, _ := p.Renderer.Size()
	left := (columns-len(keymap.White())*p.Theme.KeyWidth())/2 + 1
	if left < 1 {
		left = 1
	}
	return left
}

// keyPosition places black keys on the gap after the natural they sharpen
func (p *Program) keyPosition(b keymap.Binding) (int, int) {
	kw := p.Theme.KeyWidth()
	left := p.keyboardLeft()
	if !b.Black {
		for i, w := range keymap.White() {
			if w.Pitch == b.Pitch {
				return whiteRow, left + i*kw
			}
		}
	}
	natural := b.Pitch[:1] + b.Pitch[2:]
	for i, w := range keymap.White() {
		if w.Pitch == natural {
			return blackRow, left + (i+1)*kw - kw/2
		}
	}
	return blackRow, left
}

func (p *Program) Render() {
	r := p.Renderer
	for _, row := range []int{titleRow, sheetRow, sheetRow + 1, sheetRow + 2, messageRow, messageRow + 1,
		helpRow, helpRow + 1, helpRow + 2, blackRow, whiteRow} {
		r.ClearRow(row)
	}

	r.Fill(titleRow, 2, p.Theme.RenderTitle(p.Session.Mode().String()))
	p.renderSheet()

	if p.Session.Mode() == session.Completed && len(p.Session.Sheet()) > 0 {
		for i, line := range p.Theme.RenderSummary(p.Session.Summary()) {
			r.Fill(messageRow+i, 2, line)
		}
	} else {
		r.Fill(messageRow, 2, p.Theme.RenderHint("Space to play along, strike the highlighted note, ? for help"))
	}

	if p.showHelp {
		for i, line := range p.Theme.RenderHelp() {
			r.Fill(helpRow+i, 2, line)
		}
	}

	for _, b := range keymap.White() {
		row, col := p.keyPosition(b)
		r.Fill(row, col, p.Theme.RenderKey(b, theme.None))
	}
	for _, b := range keymap.Black() {
		row, col := p.keyPosition(b)
		r.Fill(row, col, p.Theme.RenderKey(b, theme.None))
	}
}

// renderSheet draws the note strip scrolled so the cursor sits in the middle
func (p *Program) renderSheet() {
	columns, _ := p.Renderer.Size()
	nw := p.Theme.NoteWidth()
	sheet := p.Session.Sheet()
	cursor := p.Session.Cursor()

	offset := columns/2 - cursor*nw - nw/2
	for i, note := range sheet {
		col := offset + i*nw
		if col < 1 || col+nw-1 > columns {
			continue
		}
		for j, line := range p.Theme.RenderNote(note, i == cursor && p.Session.Mode() != session.Completed) {
			p.Renderer.Fill(sheetRow+j, col, line)
		}
	}
}
