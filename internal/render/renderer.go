package render

import (
	"time"
)

type Renderer interface {
	Init() error
	Deinit() error
	Size() (columns, rows int)
	AddDecoration(row, column int, content string, frames int)
	RenderLoop(period time.Duration, render func() bool)
	ClearRow(row int)
	Fill(row, column int, message string)
}
