package nav

import (
	"fmt"
	"testing"

	"cdu/pkg/fsmeta"
	"cdu/pkg/listing"
)

func u64(v uint64) *uint64 { return &v }

// dirA builds a ten-entry listing for /a; extra entries are prepended to
// simulate files appearing between visits.
func dirA(t *testing.T, extra ...string) *listing.Listing {
	t.Helper()
	var entries []listing.Entry
	for _, name := range extra {
		entries = append(entries, listing.Entry{Name: name, Kind: listing.KindFile, Size: u64(5000)})
	}
	for i := range 9 {
		entries = append(entries, listing.Entry{
			Name: fmt.Sprintf("f%02d", i),
			Kind: listing.KindFile,
			Size: u64(uint64(1000 - 100*i)),
		})
	}
	// 850 puts logs/ between f01 and f02, display index 3 behind "..".
	entries = append(entries, listing.Entry{Name: "logs/", Kind: listing.KindDir, Size: u64(850), Rentries: u64(40)})
	return listing.New("/a", fsmeta.KindCeph, entries, listing.Totals{}, listing.DefaultMode())
}

func TestRestoreByNameAfterReorder(t *testing.T) {
	h := NewHistory()

	a := dirA(t)
	if idx, found := a.SelectByName("logs/"); !found || idx != 3 {
		t.Fatalf("setup: logs/ at %d (found=%v), want display index 3", idx, found)
	}
	h.Save(a)

	// A new large file shifts every display position on the next visit.
	again := dirA(t, "newfile")
	h.Restore(again)
	got := again.Get(again.Selected())
	if got.Name != "logs/" {
		t.Errorf("restored entry = %q, want logs/ regardless of position", got.Name)
	}
	if again.Selected() == 3 {
		t.Errorf("ordering did not change; test premise broken")
	}
}

func TestRestoreFallsBackToIndexWhenNameGone(t *testing.T) {
	h := NewHistory()

	a := dirA(t)
	a.SelectByName("logs/")
	h.Save(a)

	// Rebuild /a without logs/.
	var entries []listing.Entry
	for i := range 9 {
		entries = append(entries, listing.Entry{
			Name: fmt.Sprintf("f%02d", i),
			Kind: listing.KindFile,
			Size: u64(uint64(1000 - 100*i)),
		})
	}
	short := listing.New("/a", fsmeta.KindCeph, entries, listing.Totals{}, listing.DefaultMode())

	h.Restore(short)
	if short.Selected() != 3 {
		t.Errorf("selection = %d, want stored index 3", short.Selected())
	}
}

func TestRestoreClampsStoredIndex(t *testing.T) {
	h := NewHistory()

	a := dirA(t)
	a.SelectLast()
	h.Save(a)

	tiny := listing.New("/a", fsmeta.KindCeph, []listing.Entry{
		{Name: "only", Kind: listing.KindFile, Size: u64(1)},
	}, listing.Totals{}, listing.DefaultMode())

	h.Restore(tiny)
	if tiny.Selected() != tiny.Len()-1 {
		t.Errorf("selection = %d, want clamped to %d", tiny.Selected(), tiny.Len()-1)
	}
}

func TestRestoreUnvisitedSelectsFirst(t *testing.T) {
	h := NewHistory()
	a := dirA(t)
	a.SelectLast()
	h.Restore(a)
	if a.Selected() != 0 {
		t.Errorf("selection = %d, want 0 for an unvisited path", a.Selected())
	}
}

func TestSaveSkipsEmptySelection(t *testing.T) {
	h := NewHistory()
	empty := listing.New("/", fsmeta.KindGeneric, nil, listing.Totals{}, listing.DefaultMode())
	h.Save(empty)
	if len(h.marks) != 0 {
		t.Errorf("marks = %v, want none", h.marks)
	}
}
