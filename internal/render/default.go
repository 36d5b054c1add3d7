package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/term"
)

type DefaultRenderer struct {
	Out io.Writer

	buffer      strings.Builder
	decorations []*decoration
}

type decoration struct {
	X, Y    int
	Content string
	Frames  int // remaining frames until removed
}

func NewRenderer() *DefaultRenderer {
	return &DefaultRenderer{Out: os.Stdout}
}

func (r *DefaultRenderer) Init() error {
	if f, ok := r.Out.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return fmt.Errorf("%v is not a terminal", f.Name())
	}
	_, err := fmt.Fprintf(r.Out, "%s%s%s",
		"\033[?1049h", // Enable alternate buffer
		"\033[?25l",   // Make the cursor invisible
		"\033[2J",     // Clear the screen
	)
	return err
}

func (r *DefaultRenderer) Deinit() error {
	_, err := fmt.Fprintf(r.Out, "%s%s",
		"\033[?1049l", // Disable alternate buffer
		"\033[?25h",   // Make the cursor visible
	)
	return err
}

// Size falls back to 80x24 when the output is not a terminal
func (r *DefaultRenderer) Size() (int, int) {
	if f, ok := r.Out.(*os.File); ok {
		if columns, rows, err := term.GetSize(int(f.Fd())); nil == err {
			return columns, rows
		}
	}
	return 80, 24
}

func (r *DefaultRenderer) AddDecoration(row, column int, content string, frames int) {
	r.decorations = append(r.decorations, &decoration{
		X:       column,
		Y:       row,
		Content: content,
		Frames:  frames,
	})
}

// tickDecorations draws live decorations over the frame and ages them
func (r *DefaultRenderer) tickDecorations() {
	nd := make([]*decoration, 0, len(r.decorations))
	for _, d := range r.decorations {
		if d.Frames <= 0 {
			continue
		}
		r.Fill(d.Y, d.X, d.Content)
		d.Frames--
		nd = append(nd, d)
	}
	r.decorations = nd
}

func (r *DefaultRenderer) RenderLoop(period time.Duration, render func() bool) {
	for cont := true; cont; {
		now := time.Now()
		deadline := now.Add(period)

		cont = render()

		r.tickDecorations()
		r.flush()

		time.Sleep(time.Until(deadline))
	}
}

func (r *DefaultRenderer) ClearRow(row int) {
	r.move(row, 1)
	r.buffer.WriteString("\033[2K")
}

func (r *DefaultRenderer) Fill(row, column int, message string) {
	r.move(row, column)
	r.buffer.WriteString(message)
}

func (r *DefaultRenderer) move(row, column int) {
	r.buffer.WriteString("\033[")
	r.buffer.WriteString(strconv.Itoa(row))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.Itoa(column))
	r.buffer.WriteString("H")
}

func (r *DefaultRenderer) flush() {
	r.Out.Write([]byte(r.buffer.String()))
	r.buffer.Reset()
}
