package pagination

import (
	"errors"
	"testing"

	"github.com/ivlev/gridmenu/internal/iterator"
	"github.com/ivlev/gridmenu/internal/slot"
	"github.com/ivlev/gridmenu/internal/visual"
)

func stack(m string) visual.Stack {
	return visual.Stack{Material: visual.Material(m), Amount: 1}
}

func filled(t *testing.T, pageSize, n int) *Pagination {
	t.Helper()
	p := New()
	if err := p.SetItemsPerPage(pageSize); err != nil {
		t.Fatalf("SetItemsPerPage: %v", err)
	}
	for i := 0; i < n; i++ {
		p.AddItem(stack("STONE"))
	}
	return p
}

func TestPageBoundaries(t *testing.T) {
	p := filled(t, 5, 12)

	if got := p.LastPage(); got != 3 {
		t.Fatalf("LastPage() = %d, want 3", got)
	}
	if !p.IsFirst() || p.IsLast() {
		t.Fatalf("page 1: IsFirst=%v IsLast=%v", p.IsFirst(), p.IsLast())
	}
	for i := 0; i < 5; i++ {
		p.Next()
	}
	if got := p.Page(); got != 3 {
		t.Errorf("Page() after 5 x Next = %d, want 3", got)
	}
	if !p.IsLast() {
		t.Error("expected IsLast on page 3")
	}
	if p.Next() != p {
		t.Error("Next should return the receiver")
	}
	if got := p.Page(); got != 3 {
		t.Errorf("Next at last page moved to %d", got)
	}
}

func TestPreviousAtFirstPage(t *testing.T) {
	p := filled(t, 5, 12)
	p.Previous()
	if got := p.Page(); got != 1 {
		t.Errorf("Page() = %d, want 1", got)
	}
	p.Next().Next().Previous()
	if got := p.Page(); got != 2 {
		t.Errorf("Page() = %d, want 2", got)
	}
}

func TestLastPageEdges(t *testing.T) {
	tests := []struct {
		name     string
		pageSize int
		items    int
		want     int
	}{
		{"empty", 5, 0, 1},
		{"exact fit", 5, 10, 2},
		{"one over", 5, 11, 3},
		{"default size", 1, 4, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filled(t, tt.pageSize, tt.items)
			if got := p.LastPage(); got != tt.want {
				t.Errorf("LastPage() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPinnedRecordsIgnoredForPageCount(t *testing.T) {
	p := filled(t, 5, 5)
	for i := 0; i < 20; i++ {
		if err := p.SetItem(i, stack("GLASS")); err != nil {
			t.Fatalf("SetItem(%d): %v", i, err)
		}
	}
	if got := p.LastPage(); got != 1 {
		t.Errorf("LastPage() = %d, want 1", got)
	}
}

func TestSetItemReplaces(t *testing.T) {
	p := New()
	a, b := stack("APPLE"), stack("BREAD")
	if err := p.SetItem(10, a); err != nil {
		t.Fatal(err)
	}
	if err := p.SetItem(10, b); err != nil {
		t.Fatal(err)
	}

	got, ok := p.Get(10)
	if !ok || got.Render().Material != "BREAD" {
		t.Fatalf("Get(10) = %v, %v; want BREAD", got, ok)
	}
	if n := len(p.Records(0)); n != 1 {
		t.Errorf("records on page 0 = %d, want 1", n)
	}
}

func TestSetItemValidation(t *testing.T) {
	p := New()
	if err := p.SetItem(54, stack("X")); !errors.Is(err, slot.ErrOutOfRange) {
		t.Errorf("slot 54: got %v, want ErrOutOfRange", err)
	}
	if err := p.SetItemOnPage(3, -1, stack("X")); !errors.Is(err, ErrNegativePage) {
		t.Errorf("page -1: got %v, want ErrNegativePage", err)
	}
	if err := p.SetItemsPerPage(0); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("page size 0: got %v, want ErrInvalidPageSize", err)
	}
	if p.Len() != 0 {
		t.Errorf("rejected writes left %d records", p.Len())
	}
}

func TestGetAndRemove(t *testing.T) {
	p := New()
	if _, ok := p.Get(4); ok {
		t.Fatal("Get on empty pagination should report not found")
	}
	_ = p.SetItemOnPage(4, 1, stack("GOLD"))
	if _, ok := p.Get(4); ok {
		t.Error("item on page 1 must not be visible on page 0")
	}
	if _, ok := p.GetOnPage(4, 1); !ok {
		t.Error("GetOnPage(4, 1) not found")
	}

	// Duplicates are never produced by SetItem but Remove must still clear them.
	p.data.records = append(p.data.records, Record{Item: stack("GOLD"), Page: 1, Slot: 4})
	p.RemoveFromPage(4, 1)
	if _, ok := p.GetOnPage(4, 1); ok {
		t.Error("RemoveFromPage left a record behind")
	}
	p.Remove(30)
}

func TestDuplicateSharesRecords(t *testing.T) {
	p := filled(t, 2, 3)
	d := p.Duplicate()

	d.AddItem(stack("EXTRA"))
	if p.Len() != 4 {
		t.Errorf("original Len() = %d, want 4", p.Len())
	}
	d.Next()
	if p.Page() != 1 || d.Page() != 2 {
		t.Errorf("pages = %d/%d, want 1/2", p.Page(), d.Page())
	}
	if d.ItemsPerPage() != 2 {
		t.Errorf("duplicate ItemsPerPage() = %d", d.ItemsPerPage())
	}
}

func TestPageSizeFromIterator(t *testing.T) {
	it, err := iterator.NewBuilder().SlotAt(1, 1).EndPositionAt(1, 8).Build()
	if err != nil {
		t.Fatal(err)
	}
	p := filled(t, 3, 15)
	p.SetIterator(it)
	if got := p.PageSize(); got != 7 {
		t.Fatalf("PageSize() = %d, want 7", got)
	}
	if got := p.LastPage(); got != 3 {
		t.Errorf("LastPage() = %d, want 3", got)
	}

	open, _ := iterator.NewBuilder().Slot(9).Build()
	p.SetIterator(open)
	if got := p.PageSize(); got != 3 {
		t.Errorf("PageSize() without end = %d, want 3", got)
	}
}

func TestAddItemUsesCurrentPage(t *testing.T) {
	p := New()
	_ = p.SetPageIndex(2)
	p.AddItem(stack("A"))
	p.AddItem(nil)
	recs := p.Records(2)
	if len(recs) != 1 || !recs[0].AutoFlow() {
		t.Fatalf("Records(2) = %+v", recs)
	}
}
