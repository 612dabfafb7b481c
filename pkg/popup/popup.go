// Package popup holds the state of a scrollable text overlay: the text,
// its measured extent, and a scroll offset clamped to the visible range.
// Rendering belongs to the caller.
package popup

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Popup is an overlay viewport over a fixed block of text.
type Popup struct {
	Title       string
	BottomTitle string
	Text        string

	// TextWidth is the widest line in cells, floored by what the two
	// titles need; TextHeight is the line count.
	TextWidth  int
	TextHeight int

	viewHeight int
	offset     int
}

// New measures text and returns a popup scrolled to the top. viewHeight
// is the number of text lines visible at once.
func New(title, bottomTitle, text string, viewHeight int) *Popup {
	width := max(runewidth.StringWidth(title), runewidth.StringWidth(bottomTitle)+2)
	height := 0
	for line := range strings.Lines(text) {
		width = max(width, runewidth.StringWidth(strings.TrimSuffix(line, "\n")))
		height++
	}
	return &Popup{
		Title:       title,
		BottomTitle: bottomTitle,
		Text:        text,
		TextWidth:   width,
		TextHeight:  height,
		viewHeight:  max(viewHeight, 1),
	}
}

// Offset is the index of the first visible line.
func (p *Popup) Offset() int { return p.offset }

// MaxScroll is the largest valid offset: zero when the text fits.
func (p *Popup) MaxScroll() int {
	return max(p.TextHeight-p.viewHeight, 0)
}

// ScrollBy moves the offset by delta, clamped to the valid range, and
// returns the resulting offset.
func (p *Popup) ScrollBy(delta int) int {
	return p.ScrollTo(p.offset + delta)
}

// ScrollTo jumps to a line, clamped to the valid range, and returns the
// resulting offset.
func (p *Popup) ScrollTo(line int) int {
	p.offset = min(max(line, 0), p.MaxScroll())
	return p.offset
}
