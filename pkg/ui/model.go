// Package ui wires the listing engine into a bubbletea program: key
// handling, asynchronous directory loads with cancellation, and the
// terminal rendering of rows, gauges and the help popup.
package ui

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"cdu/pkg/config"
	"cdu/pkg/fsmeta"
	"cdu/pkg/listing"
	"cdu/pkg/nav"
	"cdu/pkg/popup"
)

const (
	pageBy          = 10
	popupTextHeight = 10
)

// Version is stamped into the header; overridden at release time.
var Version = "0.1.0"

const repoURL = "https://github.com/flatironinstitute/cdu"

type msgKind int

const (
	msgInfo msgKind = iota
	msgWarning
	msgError
)

type message struct {
	text string
	kind msgKind
}

// loadedMsg delivers a finished (or failed) listing build.
type loadedMsg struct {
	lst       *listing.Listing
	err       error
	requested string
	initial   bool
}

// startMsg triggers the initial load once the program is running.
type startMsg struct{}

// Model is the bubbletea model for the whole browser.
type Model struct {
	cfg     *config.Config
	probe   *fsmeta.Probe
	history *nav.History
	th      *Theme
	keys    keyMap

	startPath     string
	explicitStart bool
	cwd           string
	originCwd     string
	lst           *listing.Listing

	showOwner bool
	pop       *popup.Popup
	msg       *message

	// holdMsg keeps the current message through the next successful
	// load, so the start-directory fallback notice survives landing
	// in the fallback directory.
	holdMsg bool

	loading    bool
	cancelLoad context.CancelFunc

	width  int
	height int
}

// New builds the model; the first listing loads in Init. An empty
// startPath means the user gave no path and the configured default is
// used, failing over silently.
func New(cfg *config.Config, startPath string) Model {
	explicit := startPath != ""
	if !explicit {
		startPath = cfg.StartDir()
	}
	return Model{
		cfg:           cfg,
		probe:         fsmeta.NewProbe(),
		history:       nav.NewHistory(),
		th:            DefaultTheme(),
		keys:          defaultKeyMap(),
		startPath:     startPath,
		explicitStart: explicit,
		showOwner:     cfg.ShowOwner(),
	}
}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg { return startMsg{} }
}

// startLoad kicks off an asynchronous listing build. The previous
// selection is saved first so coming back restores it; the current
// listing stays live until the build lands.
func (m Model) startLoad(path string, initial bool) (Model, tea.Cmd) {
	if m.lst != nil {
		m.history.Save(m.lst)
	}

	mode := listing.DefaultMode()
	if m.lst != nil {
		mode = m.lst.Mode()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m.cancelLoad = cancel
	m.loading = true

	probe := m.probe
	return m, func() tea.Msg {
		lst, err := listing.Read(ctx, probe, path, mode)
		return loadedMsg{lst: lst, err: err, requested: path, initial: initial}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case startMsg:
		var cmd tea.Cmd
		m, cmd = m.startLoad(m.startPath, true)
		return m, cmd

	case loadedMsg:
		return m.finishLoad(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) finishLoad(msg loadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.cancelLoad = nil

	if msg.err != nil {
		if errors.Is(msg.err, listing.ErrInterrupted) {
			m.msg = &message{text: "Interrupted", kind: msgInfo}
			return m, nil
		}
		if msg.initial && msg.requested != "." {
			// Couldn't open the requested start directory; fall back
			// to the current one. Only an explicitly given path is
			// worth telling the user about.
			if m.explicitStart {
				m.msg = &message{
					text: fmt.Sprintf("Error opening %s: %v", msg.requested, msg.err),
					kind: msgWarning,
				}
				m.holdMsg = true
			}
			var cmd tea.Cmd
			m, cmd = m.startLoad(".", false)
			return m, cmd
		}
		m.msg = &message{
			text: fmt.Sprintf("Error changing directory: %v", msg.err),
			kind: msgError,
		}
		m.holdMsg = false
		return m, nil
	}

	m.lst = msg.lst
	m.cwd = msg.lst.Path()
	if m.originCwd == "" {
		m.originCwd = m.cwd
	}
	m.history.Restore(m.lst)

	switch {
	case m.holdMsg:
		m.holdMsg = false
	case !m.lst.Kind().RecursiveAccounting():
		m.msg = &message{text: "Warning: not a Ceph directory", kind: msgWarning}
	default:
		m.msg = nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		if m.loading && m.cancelLoad != nil {
			m.cancelLoad()
			return m, nil
		}
		return m, tea.Quit
	}

	if m.pop != nil {
		return m.handlePopupKey(msg)
	}

	k := m.keys
	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit
	case key.Matches(msg, k.Down):
		m.withListing(func(l *listing.Listing) { l.SelectNext(1) })
	case key.Matches(msg, k.Up):
		m.withListing(func(l *listing.Listing) { l.SelectPrev(1) })
	case key.Matches(msg, k.PageDown):
		m.withListing(func(l *listing.Listing) { l.SelectNext(pageBy) })
	case key.Matches(msg, k.PageUp):
		m.withListing(func(l *listing.Listing) { l.SelectPrev(pageBy) })
	case key.Matches(msg, k.First):
		m.withListing(func(l *listing.Listing) { l.SelectFirst() })
	case key.Matches(msg, k.Last):
		m.withListing(func(l *listing.Listing) { l.SelectLast() })
	case key.Matches(msg, k.Open):
		return m.openSelected()
	case key.Matches(msg, k.Parent):
		return m.cd("..")
	case key.Matches(msg, k.Origin):
		if m.originCwd != "" {
			return m.cd(m.originCwd)
		}
	case key.Matches(msg, k.SortName):
		m.withListing(func(l *listing.Listing) { l.SortOrReverse(listing.ByName) })
	case key.Matches(msg, k.SortSize):
		m.withListing(func(l *listing.Listing) { l.SortOrReverse(listing.BySize) })
	case key.Matches(msg, k.SortCount):
		m.withListing(func(l *listing.Listing) { l.SortOrReverse(listing.ByRentries) })
	case key.Matches(msg, k.SortOwner):
		m.withListing(func(l *listing.Listing) { l.SortOrReverse(listing.ByOwner) })
	case key.Matches(msg, k.SortCtime):
		m.withListing(func(l *listing.Listing) { l.SortOrReverse(listing.ByCtime) })
	case key.Matches(msg, k.ToggleOwner):
		m.showOwner = !m.showOwner
	case key.Matches(msg, k.Help):
		m.pop = m.helpPopup()
	}
	return m, nil
}

func (m Model) handlePopupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	switch {
	case key.Matches(msg, k.Quit), key.Matches(msg, k.Open), key.Matches(msg, k.Help):
		m.pop = nil
	case key.Matches(msg, k.Down):
		m.pop.ScrollBy(1)
	case key.Matches(msg, k.Up):
		m.pop.ScrollBy(-1)
	case key.Matches(msg, k.PageDown):
		m.pop.ScrollBy(pageBy)
	case key.Matches(msg, k.PageUp):
		m.pop.ScrollBy(-pageBy)
	case key.Matches(msg, k.First):
		m.pop.ScrollTo(0)
	case key.Matches(msg, k.Last):
		m.pop.ScrollTo(m.pop.MaxScroll())
	}
	return m, nil
}

// withListing applies fn when a listing is loaded; a no-op before the
// first load finishes.
func (m *Model) withListing(fn func(*listing.Listing)) {
	if m.lst != nil {
		fn(m.lst)
	}
}

func (m Model) openSelected() (tea.Model, tea.Cmd) {
	if m.lst == nil || m.lst.Selected() < 0 {
		return m, nil
	}
	e := m.lst.Get(m.lst.Selected())
	if e.Kind != listing.KindDir {
		return m, nil
	}
	return m.cd(strings.TrimSuffix(e.Name, "/"))
}

// cd resolves a target against the current directory and starts loading
// it. The current listing is replaced only when the load succeeds.
func (m Model) cd(target string) (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	if !filepath.IsAbs(target) && m.cwd != "" {
		target = filepath.Join(m.cwd, target)
	}
	var cmd tea.Cmd
	m, cmd = m.startLoad(target, false)
	return m, cmd
}

// helpPopup lays the keymap out as an aligned two-column table.
func (m Model) helpPopup() *popup.Popup {
	entries := m.keys.helpEntries()

	lhs, rhs := 0, 0
	for _, b := range entries {
		lhs = max(lhs, len(b.Help().Key))
		rhs = max(rhs, len(b.Help().Desc))
	}

	var b strings.Builder
	for _, bind := range entries {
		fmt.Fprintf(&b, "%*s:  %-*s\n", lhs, bind.Help().Key, rhs, bind.Help().Desc)
	}
	return popup.New("Help", repoURL, b.String(), popupTextHeight)
}
