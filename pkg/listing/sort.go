package listing

import "strings"

// SortField selects the primary key for ordering a listing.
type SortField int

const (
	ByName SortField = iota
	BySize
	ByRentries
	ByOwner
	ByCtime
)

// SortMode pairs a field with a display direction. The backing sequence
// is always kept ascending for the field; Reversed only mirrors the view.
type SortMode struct {
	Field    SortField
	Reversed bool
}

// DefaultMode is the startup ordering: biggest subtrees first.
func DefaultMode() SortMode {
	return SortMode{Field: BySize, Reversed: true}
}

// defaultModeFor gives each field its natural first direction: largest or
// newest first for the numeric fields, alphabetical for the rest.
func defaultModeFor(f SortField) SortMode {
	switch f {
	case ByName, ByOwner:
		return SortMode{Field: f}
	}
	return SortMode{Field: f, Reversed: true}
}

// compareEntries is the ascending comparator for f, with fixed tie-breaks
// so equal primaries keep a deterministic order across runs.
func compareEntries(a, b *Entry, f SortField) int {
	switch f {
	case BySize:
		if c := cmpUint(a.Size, b.Size); c != 0 {
			return c
		}
		return cmpUint(a.Rentries, b.Rentries)
	case ByRentries:
		if c := cmpUint(a.Rentries, b.Rentries); c != 0 {
			return c
		}
		return cmpUint(a.Size, b.Size)
	case ByOwner:
		if c := cmpString(a.Owner, b.Owner); c != 0 {
			return c
		}
		if c := cmpString(a.Group, b.Group); c != 0 {
			return c
		}
		return cmpUint(a.Size, b.Size)
	case ByCtime:
		if c := cmpUint(a.Ctime, b.Ctime); c != 0 {
			return c
		}
		return strings.Compare(a.Name, b.Name)
	}
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmpUint(a.Size, b.Size)
}

// Absent sorts strictly below any present value, including present zero.
func cmpUint(a, b *uint64) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	case *a < *b:
		return -1
	case *a > *b:
		return 1
	}
	return 0
}

func cmpString(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return strings.Compare(*a, *b)
}
