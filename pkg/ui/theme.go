package ui

import (
	"github.com/charmbracelet/lipgloss"

	"cdu/pkg/gauge"
)

// Theme defines colors and styles for the browser using lipgloss.
type Theme struct {
	Header lipgloss.Style
	Title  lipgloss.Style

	Row         lipgloss.Style
	RowSelected lipgloss.Style

	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	Popup  lipgloss.Style
	Footer lipgloss.Style

	Gauge gauge.Styles
}

func DefaultTheme() *Theme {
	var (
		text       = lipgloss.Color("#f8fafc")
		headerBg   = lipgloss.Color("#1e293b")
		listBg     = lipgloss.Color("#020617")
		selectedBg = lipgloss.Color("#334155")
		fill       = lipgloss.Color("#e2e8f0")
	)

	return &Theme{
		Header: lipgloss.NewStyle().Bold(true).Foreground(headerBg).Background(text),
		Title:  lipgloss.NewStyle().Bold(true).Foreground(text).Background(listBg),

		Row:         lipgloss.NewStyle().Foreground(text).Background(listBg),
		RowSelected: lipgloss.NewStyle().Bold(true).Foreground(text).Background(selectedBg),

		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("#fef2f2")).Background(lipgloss.Color("#991b1b")),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("#422006")).Background(lipgloss.Color("#fde047")),
		Info:    lipgloss.NewStyle().Foreground(text).Background(listBg),

		Popup:  lipgloss.NewStyle().Border(lipgloss.ThickBorder()).BorderForeground(text).Foreground(text).Background(listBg),
		Footer: lipgloss.NewStyle().Faint(true),

		Gauge: gauge.NewStyles(fill, listBg, selectedBg),
	}
}
