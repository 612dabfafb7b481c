// Package nav keeps per-session navigation state: which entry was
// highlighted in each directory the user has visited, so returning to a
// directory puts the cursor back where it was even if the contents moved.
package nav

import "cdu/pkg/listing"

// Mark records a highlighted entry as both its name and its display index
// at the time of leaving. The name is the strong key; the index is the
// fallback when the entry is gone on return.
type Mark struct {
	Name  string
	Index int
}

// History maps canonical directory paths to highlight marks. One value
// per interactive session; it is not persisted.
type History struct {
	marks map[string]Mark
}

func NewHistory() *History {
	return &History{marks: make(map[string]Mark)}
}

// Save records the listing's current selection under its path. Nothing is
// recorded when the listing has no selection.
func (h *History) Save(l *listing.Listing) {
	sel := l.Selected()
	if sel < 0 {
		return
	}
	h.marks[l.Path()] = Mark{Name: l.Get(sel).Name, Index: sel}
}

// Restore points the listing's cursor at the remembered entry for its
// path: by name first, then by the recorded index clamped to the new
// length, and at the first entry when the directory was never visited.
func (h *History) Restore(l *listing.Listing) {
	m, ok := h.marks[l.Path()]
	if !ok {
		l.SelectFirst()
		return
	}
	if _, found := l.SelectByName(m.Name); found {
		return
	}
	l.ClampSelect(m.Index)
}
