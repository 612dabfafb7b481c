// Package gauge renders fixed-width proportional bars with sub-character
// precision using the Unicode eighth-block glyphs. A bar can carry an
// embedded percentage label; where the fill run reaches into the label,
// the affected characters invert so the bar appears to flow through the
// text.
package gauge

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"
)

// eighths[i] is the partial cell for i/8 fill; the full cell is "█".
var eighths = [8]string{"", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}

// Span is a horizontal slice of a rendered bar. Invert marks label
// characters the fill has visually reached: their foreground and
// background swap when styled.
type Span struct {
	Text   string
	Invert bool
}

// Build lays out a bar of exactly width cells. fraction is the fill level
// against the row's maximum; percent, when non-nil, is the share of the
// total shown as a one-decimal label anchored near the bar's center.
func Build(fraction float64, percent *float64, width int) []Span {
	if width <= 0 {
		return nil
	}
	fraction = math.Min(math.Max(fraction, 0), 1)
	filled := fraction * float64(width)

	if percent == nil {
		return []Span{{Text: run(filled, width)}}
	}

	label := fmt.Sprintf("%5.1f%%", *percent*100)
	labelWidth := runewidth.StringWidth(label)
	labelStart := max(width/2-3, 0)
	if labelStart+labelWidth > width {
		// Too narrow to host the label; keep the geometry honest.
		return []Span{{Text: run(filled, width)}}
	}

	spans := []Span{{Text: run(math.Min(filled, float64(labelStart)), labelStart)}}

	// The fill inverts the label exactly up to the cell it has reached.
	split := int(math.Round(filled - float64(labelStart)))
	split = min(max(split, 0), labelWidth)
	if split > 0 {
		spans = append(spans, Span{Text: label[:split], Invert: true})
	}
	if split < labelWidth {
		spans = append(spans, Span{Text: label[split:]})
	}

	rest := width - labelStart - labelWidth
	spans = append(spans, Span{
		Text: run(math.Max(filled-float64(labelStart+labelWidth), 0), rest),
	})
	return spans
}

// run draws a fill of `filled` cells into a field of `cells`, quantized
// to eighths of a cell and padded with spaces to the exact field width.
func run(filled float64, cells int) string {
	if cells <= 0 {
		return ""
	}
	w8 := int(math.Round(filled * 8))
	w8 = min(max(w8, 0), cells*8)
	full, rem := w8/8, w8%8

	var b strings.Builder
	b.WriteString(strings.Repeat("█", full))
	b.WriteString(eighths[rem])
	pad := cells - full
	if rem > 0 {
		pad--
	}
	b.WriteString(strings.Repeat(" ", pad))
	return b.String()
}

// Width is the cell width of a built bar; always the width it was built
// with, regardless of fill.
func Width(spans []Span) int {
	total := 0
	for _, s := range spans {
		total += runewidth.StringWidth(s.Text)
	}
	return total
}
