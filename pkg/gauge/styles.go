package gauge

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles binds a bar to terminal colors. The selected variants differ
// only in background; selection never changes geometry.
type Styles struct {
	normal           lipgloss.Style
	inverted         lipgloss.Style
	normalSelected   lipgloss.Style
	invertedSelected lipgloss.Style
}

// NewStyles builds the four span styles from a fill color and the two row
// backgrounds. Inverted spans swap fill and background so label text
// reads through the bar.
func NewStyles(fill, bg, selectedBg lipgloss.TerminalColor) Styles {
	return Styles{
		normal:           lipgloss.NewStyle().Foreground(fill).Background(bg),
		inverted:         lipgloss.NewStyle().Foreground(bg).Background(fill),
		normalSelected:   lipgloss.NewStyle().Foreground(fill).Background(selectedBg),
		invertedSelected: lipgloss.NewStyle().Foreground(selectedBg).Background(fill),
	}
}

// Render builds and colors a bar in one step.
func (s Styles) Render(fraction float64, percent *float64, width int, selected bool) string {
	var b strings.Builder
	for _, span := range Build(fraction, percent, width) {
		style := s.normal
		switch {
		case span.Invert && selected:
			style = s.invertedSelected
		case span.Invert:
			style = s.inverted
		case selected:
			style = s.normalSelected
		}
		b.WriteString(style.Render(span.Text))
	}
	return b.String()
}
