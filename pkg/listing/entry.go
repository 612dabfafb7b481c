// Package listing builds and orders the per-directory view of recursive
// usage: one immutable Entry per immediate child, aggregate stats for
// gauge scaling, a reversible sort order and a selection cursor.
package listing

// EntryKind distinguishes the file types the browser cares about.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDir
	KindSymlink
)

// Entry is one file or directory in a listing. Pointer fields are nil
// when the value is unknown; zero is a real measurement and is kept
// distinct from absence.
type Entry struct {
	// Name is the base name; directories carry a trailing slash.
	Name string
	Kind EntryKind

	// Size is the raw byte size. On CephFS a directory's size is its
	// subtree total; elsewhere directory sizes are untrusted and nulled.
	Size *uint64

	// Rentries is the recursive entry count of a directory's subtree,
	// self-count excluded. Always nil for non-directories.
	Rentries *uint64

	// Ctime is the change time in seconds: the subtree rctime for
	// directories, the inode ctime otherwise.
	Ctime *uint64

	Owner *string
	Group *string
}

// Stats aggregates the visible entries of one directory. Max values fold
// over the children and scale the gauges; totals come from the directory's
// own recursive attributes and may diverge from the sum of the children.
// That divergence is accepted as-is.
type Stats struct {
	MaxSize     uint64
	MaxRentries uint64

	TotalSize     *uint64
	TotalRentries *uint64
}

// Totals carries a directory's self-reported subtree totals into New.
type Totals struct {
	Size     *uint64
	Rentries *uint64
}
