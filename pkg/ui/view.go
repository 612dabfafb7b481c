package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"cdu/pkg/listing"
)

func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteByte('\n')
	b.WriteString(m.renderMessage())
	b.WriteByte('\n')

	listHeight := max(m.height-4, 1)
	if m.pop != nil {
		b.WriteString(m.renderTitle())
		b.WriteByte('\n')
		b.WriteString(lipgloss.Place(m.width, listHeight-1, lipgloss.Center, lipgloss.Center, m.renderPopup()))
	} else {
		b.WriteString(m.renderTitle())
		b.WriteByte('\n')
		b.WriteString(m.renderList(listHeight - 1))
	}
	b.WriteByte('\n')
	b.WriteString(m.th.Footer.Render(m.renderFooter()))
	return b.String()
}

func (m Model) renderHeader() string {
	title := fmt.Sprintf(" cdu v%s ", Version)
	return m.th.Header.Width(m.width).Align(lipgloss.Center).Render(title)
}

func (m Model) renderMessage() string {
	if m.loading {
		return m.th.Info.Width(m.width).Align(lipgloss.Center).Render("Loading... (Ctrl-C to interrupt)")
	}
	if m.msg == nil {
		return ""
	}
	style := m.th.Info
	switch m.msg.kind {
	case msgError:
		style = m.th.Error
	case msgWarning:
		style = m.th.Warning
	}
	return style.Width(m.width).Align(lipgloss.Center).Render(m.msg.text)
}

// renderTitle shows the directory and its self-reported totals. Unknown
// totals read as "?", never as zero.
func (m Model) renderTitle() string {
	if m.lst == nil {
		return ""
	}
	st := m.lst.Stats()
	total, count := "?", "?"
	if s := sizeStr(st.TotalSize); s != "" {
		total = s
	}
	if c := countStr(st.TotalRentries); c != "" {
		count = c
	}
	return m.th.Title.Render(fmt.Sprintf(" %s ━━ %s, %s files ", m.cwd, total, count))
}

func (m Model) renderFooter() string {
	field := "size"
	if m.lst != nil {
		switch m.lst.Mode().Field {
		case listing.ByName:
			field = "name"
		case listing.ByRentries:
			field = "count"
		case listing.ByOwner:
			field = "owner"
		case listing.ByCtime:
			field = "ctime"
		}
		if m.lst.Mode().Reversed {
			field += " ↓"
		} else {
			field += " ↑"
		}
	}
	return fmt.Sprintf(" sort: %s ━ ? for help", field)
}

func (m Model) renderList(height int) string {
	if m.lst == nil || height <= 0 {
		return ""
	}

	n := m.lst.Len()
	sel := m.lst.Selected()

	// Keep the cursor centered; the window clamps at both ends.
	start := 0
	if n > height && sel >= 0 {
		start = min(max(sel-height/2, 0), n-height)
	}
	end := min(start+height, n)

	ownerW, groupW := m.ownerWidths()

	var rows []string
	for i := start; i < end; i++ {
		rows = append(rows, m.renderRow(m.lst.Get(i), i == sel, ownerW, groupW))
	}
	return strings.Join(rows, "\n")
}

// ownerWidths sizes the owner column to the widest visible names.
func (m Model) ownerWidths() (int, int) {
	if !m.showOwner || m.lst == nil {
		return 0, 0
	}
	ownerW, groupW := 0, 0
	for _, e := range m.lst.Displayed() {
		if e.Owner != nil {
			ownerW = max(ownerW, runewidth.StringWidth(*e.Owner))
		}
		if e.Group != nil {
			groupW = max(groupW, runewidth.StringWidth(*e.Group))
		}
	}
	return ownerW, groupW
}

func (m Model) renderRow(e *listing.Entry, selected bool, ownerW, groupW int) string {
	st := m.lst.Stats()
	gw := m.cfg.GaugeWidth()

	style := m.th.Row
	cursor := "  "
	if selected {
		style = m.th.RowSelected
		cursor = "> "
	}

	var b strings.Builder
	b.WriteString(style.Render(fmt.Sprintf("%s%8s ┃", cursor, sizeStr(e.Size))))
	b.WriteString(m.th.Gauge.Render(
		fractionOf(e.Size, st.MaxSize),
		percentOf(e.Size, st.TotalSize),
		gw, selected))
	b.WriteString(style.Render(fmt.Sprintf("┃ %7s ┃", countStr(e.Rentries))))
	b.WriteString(m.th.Gauge.Render(
		fractionOf(e.Rentries, st.MaxRentries),
		percentOf(e.Rentries, st.TotalRentries),
		gw, selected))
	b.WriteString(style.Render("┃"))

	if ownerW > 0 || groupW > 0 {
		owner, group := "", ""
		if e.Owner != nil {
			owner = *e.Owner
		}
		if e.Group != nil {
			group = *e.Group
		}
		b.WriteString(style.Render(fmt.Sprintf(" %*s:%-*s", ownerW, owner, groupW, group)))
	}

	b.WriteString(style.Render(" " + e.Name))
	return b.String()
}

// renderPopup draws the overlay box with its scrollbar column.
func (m Model) renderPopup() string {
	p := m.pop

	lines := strings.Split(strings.TrimRight(p.Text, "\n"), "\n")
	start := min(p.Offset(), len(lines))
	end := min(start+popupTextHeight, len(lines))
	visible := lines[start:end]

	// Proportional thumb position over the scrollable range.
	thumb := -1
	if p.MaxScroll() > 0 {
		thumb = p.Offset() * (popupTextHeight - 1) / p.MaxScroll()
	}

	var rows []string
	rows = append(rows, runewidth.FillRight(centered(p.Title, p.TextWidth), p.TextWidth+1))
	for i := range popupTextHeight {
		line := ""
		if i < len(visible) {
			line = visible[i]
		}
		bar := " "
		if thumb >= 0 {
			bar = "│"
			if i == thumb {
				bar = "█"
			}
		}
		rows = append(rows, runewidth.FillRight(line, p.TextWidth)+bar)
	}
	rows = append(rows, runewidth.FillRight(centered(p.BottomTitle, p.TextWidth), p.TextWidth+1))

	return m.th.Popup.Render(strings.Join(rows, "\n"))
}

func centered(s string, width int) string {
	pad := max(width-runewidth.StringWidth(s), 0)
	return strings.Repeat(" ", pad/2) + s
}
