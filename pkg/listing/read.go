package listing

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"cdu/pkg/fsmeta"
)

// ErrInterrupted reports that the caller aborted a Read mid-enumeration.
// The previously active listing is untouched when Read returns it.
var ErrInterrupted = errors.New("listing interrupted")

// Read enumerates the immediate children of dir and assembles a Listing.
// No recursion happens here; subtree totals come from the filesystem's
// own recursive attributes via probe.
//
// The context is polled between per-entry probes, so a cancellation takes
// effect within one entry. A cancelled Read returns ErrInterrupted.
func Read(ctx context.Context, probe *fsmeta.Probe, dir string, mode SortMode) (*Listing, error) {
	resolved, err := canonicalize(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", dir, err)
	}

	kind := probe.Kind(resolved)

	dirents, err := os.ReadDir(resolved)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", resolved, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, de := range dirents {
		// Attribute probes can stall on a busy cluster mount; honor
		// an abort between entries.
		if ctx.Err() != nil {
			return nil, ErrInterrupted
		}
		info, err := de.Info()
		if err != nil {
			// Entry vanished between readdir and stat.
			slog.Debug("skipping entry", "dir", resolved, "name", de.Name(), "err", err)
			continue
		}
		entries = append(entries, newEntry(probe, filepath.Join(resolved, de.Name()), info))
	}

	totals := Totals{
		Size:     probe.Rbytes(resolved),
		Rentries: probe.Rentries(resolved),
	}
	return New(resolved, kind, entries, totals, mode), nil
}

func canonicalize(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(abs)
}

func newEntry(probe *fsmeta.Probe, path string, info os.FileInfo) Entry {
	var kind EntryKind
	switch {
	case info.IsDir():
		kind = KindDir
	case info.Mode()&os.ModeSymlink != 0:
		kind = KindSymlink
	default:
		kind = KindFile
	}

	name := info.Name()
	if kind == KindDir {
		name += "/"
	}

	size := uint64(info.Size())
	e := Entry{Name: name, Kind: kind, Size: &size}

	if kind == KindDir {
		e.Rentries = probe.Rentries(path)
		e.Ctime = probe.Rctime(path)
	}

	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		owner := probe.UserName(st.Uid)
		group := probe.GroupName(st.Gid)
		e.Owner, e.Group = &owner, &group
		if e.Ctime == nil && st.Ctim.Sec >= 0 {
			sec := uint64(st.Ctim.Sec)
			e.Ctime = &sec
		}
	}
	return e
}
