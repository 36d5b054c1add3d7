package theme

import (
	"fmt"
	"strconv"
	"strings"

	"git.lost.host/meutraa/keytune/internal/game"
	"git.lost.host/meutraa/keytune/internal/keymap"
	"git.lost.host/meutraa/keytune/internal/score"
	"github.com/charmbracelet/lipgloss"
)

type DefaultTheme struct{}

const (
	noteWidth = 9
	keyWidth  = 5
)

var (
	muted  = lipgloss.Color("#666")
	accent = lipgloss.Color("#7aa2f7")

	statusColors = map[game.Status]lipgloss.Color{
		game.Waiting:   lipgloss.Color("#888"),
		game.Current:   lipgloss.Color("#7aa2f7"),
		game.Correct:   lipgloss.Color("#9ece6a"),
		game.Incorrect: lipgloss.Color("#f7768e"),
		game.Missed:    lipgloss.Color("#e0af68"),
	}
	classColors = map[score.Class]lipgloss.Color{
		score.High:   lipgloss.Color("#9ece6a"),
		score.Medium: lipgloss.Color("#e0af68"),
		score.Low:    lipgloss.Color("#f7768e"),
	}

	cellStyle   = lipgloss.NewStyle().Width(noteWidth).Align(lipgloss.Center)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	dimStyle    = lipgloss.NewStyle().Foreground(muted)
	whiteKey    = lipgloss.NewStyle().Width(keyWidth).Align(lipgloss.Center).Foreground(lipgloss.Color("#111")).Background(lipgloss.Color("#ddd"))
	blackKey    = lipgloss.NewStyle().Width(keyWidth).Align(lipgloss.Center).Foreground(lipgloss.Color("#ddd")).Background(lipgloss.Color("#222"))
	pressedKey  = lipgloss.NewStyle().Width(keyWidth).Align(lipgloss.Center).Foreground(lipgloss.Color("#111")).Background(accent)
	feedbackKey = map[Feedback]lipgloss.Style{
		Hit:  pressedKey.Background(statusColors[game.Correct]),
		Miss: pressedKey.Background(statusColors[game.Incorrect]),
	}
)

func (t *DefaultTheme) NoteWidth() int {
	return noteWidth
}

// formatDuration prints seconds without trailing zeros, 0.75s 1s 1.5s
func formatDuration(note *game.Note) string {
	return strconv.FormatFloat(note.Duration.Seconds(), 'f', -1, 64) + "s"
}

func (t *DefaultTheme) RenderNote(note *game.Note, active bool) []string {
	color := statusColors[note.Status]
	pitch := cellStyle.Bold(true).Foreground(color)
	if active {
		pitch = pitch.Reverse(true)
	}
	return []string{
		pitch.Render(note.Pitch),
		cellStyle.Foreground(muted).Render(formatDuration(note)),
		cellStyle.Foreground(color).Render(note.Status.String()),
	}
}

func (t *DefaultTheme) KeyWidth() int {
	return keyWidth
}

func (t *DefaultTheme) RenderKey(binding keymap.Binding, feedback Feedback) string {
	label := strings.ToUpper(string(binding.Key))
	switch feedback {
	case Pressed:
		return pressedKey.Render(label)
	case Hit, Miss:
		return feedbackKey[feedback].Render(label)
	}
	if binding.Black {
		return blackKey.Render(label)
	}
	return whiteKey.Render(label)
}

func (t *DefaultTheme) RenderTitle(mode string) string {
	return titleStyle.Render("keytune") + dimStyle.Render("  "+mode)
}

func (t *DefaultTheme) RenderSummary(summary score.Summary) []string {
	style := lipgloss.NewStyle().Bold(true).Foreground(classColors[summary.Class])
	return []string{
		style.Render(fmt.Sprintf("%s!  %d%% accuracy", summary.Rating, summary.Accuracy)),
		dimStyle.Render(fmt.Sprintf("%d correct  %d incorrect  %d missed  of %d",
			summary.Correct, summary.Incorrect, summary.Missed, summary.Total)),
	}
}

func (t *DefaultTheme) RenderHelp() []string {
	white, black := []string{}, []string{}
	for _, b := range keymap.White() {
		white = append(white, strings.ToUpper(string(b.Key)))
	}
	for _, b := range keymap.Black() {
		black = append(black, strings.ToUpper(string(b.Key)))
	}
	return []string{
		dimStyle.Render("White keys: " + strings.Join(white, ", ")),
		dimStyle.Render("Black keys: " + strings.Join(black, ", ")),
		dimStyle.Render("Space play/stop  N new sheet  R retry  ? help  Esc quit"),
	}
}

func (t *DefaultTheme) RenderHint(message string) string {
	return dimStyle.Render(message)
}
