package listing

import (
	"slices"

	"cdu/pkg/fsmeta"
)

// Listing is the aggregated view of one directory: a synthetic ".." entry
// unless the directory is the filesystem root, the children in ascending
// canonical order for the active sort field, their stats, and a selection
// cursor addressing the display order. A Listing is rebuilt wholesale on
// every directory change; entries never mutate after construction.
type Listing struct {
	path    string
	kind    fsmeta.Kind
	dotdot  *Entry
	entries []Entry
	mode    SortMode
	stats   Stats
	cursor  int
}

// New assembles a listing from already-probed entries. Directory sizes
// are nulled first when kind has no recursive accounting: file sizes stay
// trusted, subtree totals do not. Read is the normal way to get one.
func New(path string, kind fsmeta.Kind, entries []Entry, totals Totals, mode SortMode) *Listing {
	if !kind.RecursiveAccounting() {
		for i := range entries {
			if entries[i].Kind == KindDir {
				entries[i].Size = nil
			}
		}
		totals.Size = nil
	}

	var stats Stats
	for i := range entries {
		if s := entries[i].Size; s != nil {
			stats.MaxSize = max(stats.MaxSize, *s)
		}
		if r := entries[i].Rentries; r != nil {
			stats.MaxRentries = max(stats.MaxRentries, *r)
		}
	}
	stats.TotalSize = totals.Size
	stats.TotalRentries = totals.Rentries

	var dotdot *Entry
	if path != "/" {
		dotdot = &Entry{Name: "..", Kind: KindDir}
	}

	l := &Listing{
		path:    path,
		kind:    kind,
		dotdot:  dotdot,
		entries: entries,
		mode:    mode,
		stats:   stats,
		cursor:  -1,
	}
	l.sort()
	if l.Len() > 0 {
		l.cursor = 0
	}
	return l
}

func (l *Listing) Path() string      { return l.path }
func (l *Listing) Kind() fsmeta.Kind { return l.kind }
func (l *Listing) Mode() SortMode    { return l.mode }
func (l *Listing) Stats() Stats      { return l.stats }

// Len counts the displayed entries, the ".." entry included.
func (l *Listing) Len() int {
	n := len(l.entries)
	if l.dotdot != nil {
		n++
	}
	return n
}

// Get returns the entry at a display index: ".." first when present, then
// the children in storage order, mirrored when the mode is reversed.
func (l *Listing) Get(i int) *Entry {
	if l.dotdot != nil {
		if i == 0 {
			return l.dotdot
		}
		i--
	}
	return &l.entries[l.storageSlot(i)]
}

// storageSlot maps a display position (".." already stripped) to a slot
// in the backing sequence. The mapping is its own inverse.
func (l *Listing) storageSlot(i int) int {
	if l.mode.Reversed {
		return len(l.entries) - i - 1
	}
	return i
}

// Displayed returns the entries in display order.
func (l *Listing) Displayed() []*Entry {
	out := make([]*Entry, l.Len())
	for i := range out {
		out[i] = l.Get(i)
	}
	return out
}

// SortOrReverse applies a sort request: asking for the active field flips
// the display direction without touching storage, asking for another
// field re-sorts ascending and starts from that field's natural direction.
func (l *Listing) SortOrReverse(f SortField) {
	if f == l.mode.Field {
		l.mode.Reversed = !l.mode.Reversed
		return
	}
	l.mode = defaultModeFor(f)
	l.sort()
}

func (l *Listing) sort() {
	f := l.mode.Field
	slices.SortStableFunc(l.entries, func(a, b Entry) int {
		return compareEntries(&a, &b, f)
	})
}

// Selected is the cursor's display index, -1 when the listing is empty.
func (l *Listing) Selected() int { return l.cursor }

// SelectNext moves the cursor down by at most `by`, stopping at the last
// entry. With no prior selection it lands on the first entry.
func (l *Listing) SelectNext(by int) {
	n := l.Len()
	if n == 0 {
		return
	}
	if l.cursor < 0 {
		l.cursor = 0
		return
	}
	l.cursor = min(l.cursor+by, n-1)
}

// SelectPrev mirrors SelectNext, defaulting to the last entry when there
// is no prior selection.
func (l *Listing) SelectPrev(by int) {
	n := l.Len()
	if n == 0 {
		return
	}
	if l.cursor < 0 {
		l.cursor = n - 1
		return
	}
	l.cursor = max(l.cursor-by, 0)
}

func (l *Listing) SelectFirst() {
	if l.Len() > 0 {
		l.cursor = 0
	}
}

func (l *Listing) SelectLast() {
	if n := l.Len(); n > 0 {
		l.cursor = n - 1
	}
}

// ClampSelect selects idx, clamped into the valid display range. Returns
// the index actually selected, -1 when the listing is empty.
func (l *Listing) ClampSelect(idx int) int {
	n := l.Len()
	if n == 0 {
		l.cursor = -1
		return -1
	}
	l.cursor = min(max(idx, 0), n-1)
	return l.cursor
}

// SelectByName scans the display order for an exact name match. On a miss
// the cursor is left untouched and found is false.
func (l *Listing) SelectByName(name string) (idx int, found bool) {
	for i := range l.Len() {
		if l.Get(i).Name == name {
			l.cursor = i
			return i, true
		}
	}
	return -1, false
}
