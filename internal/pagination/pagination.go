// Package pagination partitions placed items into pages and answers page
// boundary questions as the backing list grows or shrinks.
//
// A Pagination is owned by a single surface and is not safe for concurrent
// use.
package pagination

import (
	"errors"
	"fmt"
	"math"

	"github.com/ivlev/gridmenu/internal/iterator"
	"github.com/ivlev/gridmenu/internal/logger"
	"github.com/ivlev/gridmenu/internal/slot"
	"github.com/ivlev/gridmenu/internal/visual"
)

var (
	// ErrInvalidPageSize is returned for a non-positive items-per-page value.
	ErrInvalidPageSize = errors.New("items per page must be positive")
	// ErrNegativePage is returned for a page index below zero.
	ErrNegativePage = errors.New("page index must not be negative")
)

// Record places an item on a page. Slot is slot.Unassigned for auto-flowed
// items.
type Record struct {
	Item visual.Item
	Page int
	Slot int
}

// AutoFlow reports whether the record is positioned by the iterator.
func (r Record) AutoFlow() bool {
	return r.Slot == slot.Unassigned
}

// store is the backing record collection. Duplicates share one store.
type store struct {
	records []Record
}

// Pagination holds placed items and the current page.
type Pagination struct {
	pageSize int
	page     int
	iterator *iterator.SlotIterator
	data     *store
}

// New returns an empty Pagination with one item per page.
func New() *Pagination {
	return &Pagination{
		pageSize: 1,
		data:     &store{},
	}
}

// SetItemsPerPage sets the page size used when no iterator end position is
// configured.
func (p *Pagination) SetItemsPerPage(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPageSize, n)
	}
	p.pageSize = n
	return nil
}

// ItemsPerPage returns the configured page size.
func (p *Pagination) ItemsPerPage() int {
	return p.pageSize
}

// SetIterator attaches the placement policy.
func (p *Pagination) SetIterator(it *iterator.SlotIterator) {
	p.iterator = it
}

// Iterator returns the attached placement policy, or nil.
func (p *Pagination) Iterator() *iterator.SlotIterator {
	return p.iterator
}

// SetItems appends auto-flowed items on the current page.
func (p *Pagination) SetItems(items []visual.Item) {
	for _, item := range items {
		p.AddItem(item)
	}
}

// AddItem appends one auto-flowed item on the current page.
func (p *Pagination) AddItem(item visual.Item) {
	if item == nil {
		return
	}
	p.data.records = append(p.data.records, Record{Item: item, Page: p.page, Slot: slot.Unassigned})
}

// SetItem pins item to slot on the current page, replacing any occupant.
func (p *Pagination) SetItem(index int, item visual.Item) error {
	return p.SetItemOnPage(index, p.page, item)
}

// SetItemOnPage pins item to slot on page (zero-based), replacing any
// occupant of that exact position.
func (p *Pagination) SetItemOnPage(index, page int, item visual.Item) error {
	if err := slot.Check(index); err != nil {
		return err
	}
	if page < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativePage, page)
	}
	p.RemoveFromPage(index, page)
	p.data.records = append(p.data.records, Record{Item: item, Page: page, Slot: index})
	return nil
}

// Page returns the 1-based current page number.
func (p *Pagination) Page() int {
	return p.page + 1
}

// PageIndex returns the zero-based current page.
func (p *Pagination) PageIndex() int {
	return p.page
}

// SetPageIndex jumps to a zero-based page without clamping to the last page.
func (p *Pagination) SetPageIndex(page int) error {
	if page < 0 {
		return fmt.Errorf("%w: got %d", ErrNegativePage, page)
	}
	p.page = page
	return nil
}

// LastPage returns the 1-based number of the last page. Only auto-flowed
// records count toward page capacity; pinned records do not.
func (p *Pagination) LastPage() int {
	return p.lastPageIndex() + 1
}

// IsFirst reports whether the current page is the first one.
func (p *Pagination) IsFirst() bool {
	return p.page <= 0
}

// IsLast reports whether the current page is at or past the last one.
func (p *Pagination) IsLast() bool {
	return p.page >= p.lastPageIndex()
}

// Next advances one page unless already on the last page.
func (p *Pagination) Next() *Pagination {
	if p.IsLast() {
		return p
	}
	p.page++
	logger.Logger().Debug("page changed", "page", p.Page(), "last", p.LastPage())
	return p
}

// Previous goes back one page unless already on the first page.
func (p *Pagination) Previous() *Pagination {
	if p.IsFirst() {
		return p
	}
	p.page--
	logger.Logger().Debug("page changed", "page", p.Page(), "last", p.LastPage())
	return p
}

// Get returns the item pinned to slot on the current page.
func (p *Pagination) Get(index int) (visual.Item, bool) {
	return p.GetOnPage(index, p.page)
}

// GetOnPage returns the first item pinned to slot on page.
func (p *Pagination) GetOnPage(index, page int) (visual.Item, bool) {
	for _, r := range p.data.records {
		if r.Page == page && r.Slot == index {
			return r.Item, true
		}
	}
	return nil, false
}

// Remove drops every record pinned to slot on the current page.
func (p *Pagination) Remove(index int) {
	p.RemoveFromPage(index, p.page)
}

// RemoveFromPage drops every record pinned to slot on page.
func (p *Pagination) RemoveFromPage(index, page int) {
	kept := p.data.records[:0]
	for _, r := range p.data.records {
		if r.Page == page && r.Slot == index {
			continue
		}
		kept = append(kept, r)
	}
	for i := len(kept); i < len(p.data.records); i++ {
		p.data.records[i] = Record{}
	}
	p.data.records = kept
}

// Records returns a copy of the records stored for page.
func (p *Pagination) Records(page int) []Record {
	var out []Record
	for _, r := range p.data.records {
		if r.Page == page {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of stored records.
func (p *Pagination) Len() int {
	return len(p.data.records)
}

// Duplicate returns a Pagination with the same scalar fields that shares the
// backing record collection. Changes to records through either value are
// visible to both; page navigation is not.
func (p *Pagination) Duplicate() *Pagination {
	c := *p
	return &c
}

// PageSize returns the page size in effect: end - start when the attached
// iterator has an end position, otherwise the items-per-page value.
func (p *Pagination) PageSize() int {
	if p.iterator != nil {
		if capacity, ok := p.iterator.Capacity(); ok {
			return capacity
		}
	}
	return p.pageSize
}

func (p *Pagination) autoFlowCount() int {
	n := 0
	for _, r := range p.data.records {
		if r.AutoFlow() {
			n++
		}
	}
	return n
}

func (p *Pagination) lastPageIndex() int {
	pages := int(math.Ceil(float64(p.autoFlowCount()) / float64(p.PageSize())))
	if pages == 0 {
		return 0
	}
	return pages - 1
}
