package listing

import (
	"testing"

	"cdu/pkg/fsmeta"
)

func TestNewNullsDirSizesOffCeph(t *testing.T) {
	entries := []Entry{
		{Name: "docs/", Kind: KindDir, Size: u64(4096), Rentries: u64(12)},
		{Name: "blob", Kind: KindFile, Size: u64(9000)},
		{Name: "ln", Kind: KindSymlink, Size: u64(7)},
	}
	l := New("/data", fsmeta.KindGeneric, entries, Totals{Size: u64(999), Rentries: u64(13)}, DefaultMode())

	idx, found := l.SelectByName("docs/")
	if !found {
		t.Fatal("docs/ not found")
	}
	dir := l.Get(idx)
	if dir.Size != nil {
		t.Errorf("dir size = %d, want absent on a generic filesystem", *dir.Size)
	}
	if dir.Rentries == nil || *dir.Rentries != 12 {
		t.Errorf("dir rentries = %v, want 12 (trusted regardless of kind)", dir.Rentries)
	}

	idx, _ = l.SelectByName("blob")
	if f := l.Get(idx); f.Size == nil || *f.Size != 9000 {
		t.Errorf("file size = %v, want 9000 (files stay trusted)", f.Size)
	}

	st := l.Stats()
	if st.TotalSize != nil {
		t.Errorf("total size = %d, want absent off ceph", *st.TotalSize)
	}
	if st.TotalRentries == nil || *st.TotalRentries != 13 {
		t.Errorf("total rentries = %v, want 13", st.TotalRentries)
	}
	if st.MaxSize != 9000 {
		t.Errorf("max size = %d, want 9000 (dir size excluded after nulling)", st.MaxSize)
	}
}

func TestNewKeepsDirSizesOnCeph(t *testing.T) {
	entries := []Entry{
		{Name: "docs/", Kind: KindDir, Size: u64(4096), Rentries: u64(12)},
	}
	l := New("/data", fsmeta.KindCeph, entries, Totals{Size: u64(4096), Rentries: u64(12)}, DefaultMode())

	if e := l.Get(1); e.Size == nil || *e.Size != 4096 {
		t.Errorf("dir size = %v, want 4096 on ceph", e.Size)
	}
	if st := l.Stats(); st.TotalSize == nil || *st.TotalSize != 4096 {
		t.Errorf("total size = %v, want 4096", st.TotalSize)
	}
}

func TestDotdotOnlyBelowRoot(t *testing.T) {
	entries := []Entry{{Name: "a", Kind: KindFile, Size: u64(1)}}

	l := New("/data", fsmeta.KindCeph, entries, Totals{}, DefaultMode())
	if l.Len() != 2 || l.Get(0).Name != ".." {
		t.Errorf("below root: first entry = %q, want ..", l.Get(0).Name)
	}
	dd := l.Get(0)
	if dd.Kind != KindDir || dd.Size != nil || dd.Rentries != nil || dd.Owner != nil || dd.Group != nil {
		t.Errorf("dotdot fields not all absent: %+v", dd)
	}

	root := New("/", fsmeta.KindCeph, entries, Totals{}, DefaultMode())
	if root.Len() != 1 || root.Get(0).Name != "a" {
		t.Errorf("at root: len = %d, first = %q, want no dotdot", root.Len(), root.Get(0).Name)
	}
}

func TestSelectionClamping(t *testing.T) {
	l := sizesListing(true) // 4 displayed entries

	if l.Selected() != 0 {
		t.Fatalf("initial selection = %d, want 0", l.Selected())
	}

	l.SelectNext(100)
	if l.Selected() != 3 {
		t.Errorf("after big next: %d, want 3", l.Selected())
	}
	l.SelectPrev(100)
	if l.Selected() != 0 {
		t.Errorf("after big prev: %d, want 0", l.Selected())
	}
	l.SelectLast()
	if l.Selected() != 3 {
		t.Errorf("after last: %d, want 3", l.Selected())
	}
	l.SelectFirst()
	if l.Selected() != 0 {
		t.Errorf("after first: %d, want 0", l.Selected())
	}

	if got := l.ClampSelect(99); got != 3 || l.Selected() != 3 {
		t.Errorf("clamp(99) = %d, selected %d, want 3", got, l.Selected())
	}
	if got := l.ClampSelect(-5); got != 0 {
		t.Errorf("clamp(-5) = %d, want 0", got)
	}
}

func TestSelectDefaultsWithoutPriorSelection(t *testing.T) {
	l := sizesListing(true)
	l.cursor = -1
	l.SelectNext(1)
	if l.Selected() != 0 {
		t.Errorf("next with no selection = %d, want 0", l.Selected())
	}

	l.cursor = -1
	l.SelectPrev(1)
	if l.Selected() != 3 {
		t.Errorf("prev with no selection = %d, want last (3)", l.Selected())
	}
}

func TestSelectByName(t *testing.T) {
	l := sizesListing(true)

	idx, found := l.SelectByName("small")
	if !found || idx != 3 || l.Selected() != 3 {
		t.Errorf("SelectByName(small) = %d, %v; want 3, true", idx, found)
	}

	idx, found = l.SelectByName("gone")
	if found || idx != -1 {
		t.Errorf("SelectByName(gone) = %d, %v; want -1, false", idx, found)
	}
	if l.Selected() != 3 {
		t.Errorf("cursor moved on miss: %d, want 3", l.Selected())
	}

	// Names match against the display order, so a reversed view still
	// reports the visible index.
	l.SortOrReverse(BySize) // now ascending
	idx, _ = l.SelectByName("small")
	if idx != 1 {
		t.Errorf("SelectByName after reverse = %d, want 1", idx)
	}
}

func TestEmptyListing(t *testing.T) {
	l := New("/", fsmeta.KindGeneric, nil, Totals{}, DefaultMode())
	if l.Len() != 0 || l.Selected() != -1 {
		t.Fatalf("empty root listing: len=%d selected=%d", l.Len(), l.Selected())
	}
	l.SelectNext(1)
	l.SelectPrev(1)
	l.SelectFirst()
	l.SelectLast()
	if l.Selected() != -1 {
		t.Errorf("selection on empty listing = %d, want -1", l.Selected())
	}
	if got := l.ClampSelect(3); got != -1 {
		t.Errorf("clamp on empty = %d, want -1", got)
	}
}
