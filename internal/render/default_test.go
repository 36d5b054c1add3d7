package render

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestFill(t *testing.T) {
	var out bytes.Buffer
	r := &DefaultRenderer{Out: &out}
	r.Fill(3, 12, "C4")
	r.ClearRow(4)
	r.flush()

	if expected := "\033[3;12HC4\033[4;1H\033[2K"; out.String() != expected {
		t.Errorf("got %q, expected %q", out.String(), expected)
	}

	out.Reset()
	r.flush()
	if out.Len() != 0 {
		t.Error("buffer not reset after flush")
	}
}

func TestDecorations(t *testing.T) {
	var out bytes.Buffer
	r := &DefaultRenderer{Out: &out}
	r.AddDecoration(1, 1, "X", 2)

	frames := 0
	r.RenderLoop(time.Millisecond, func() bool {
		frames++
		return frames < 4
	})

	if n := strings.Count(out.String(), "X"); n != 2 {
		t.Errorf("decoration drawn %v times, expected 2", n)
	}
	if len(r.decorations) != 0 {
		t.Errorf("%v decorations left", len(r.decorations))
	}
}

func TestSizeFallback(t *testing.T) {
	r := &DefaultRenderer{Out: &bytes.Buffer{}}
	if c, rows := r.Size(); c != 80 || rows != 24 {
		t.Errorf("got %vx%v", c, rows)
	}
	if err := r.Init(); nil != err {
		t.Errorf("init on a buffer failed: %v", err)
	}
	if err := r.Deinit(); nil != err {
		t.Error(err)
	}
}
