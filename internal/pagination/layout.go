package pagination

import (
	"github.com/ivlev/gridmenu/internal/iterator"
	"github.com/ivlev/gridmenu/internal/logger"
	"github.com/ivlev/gridmenu/internal/slot"
	"github.com/ivlev/gridmenu/internal/visual"
)

var defaultIterator, _ = iterator.NewBuilder().Build()

// Layout resolves what every slot shows on page (zero-based).
//
// Pinned records for the page are placed first. Auto-flowed records are
// split across pages in insertion order, PageSize items per page, and the
// k-th item of a page goes to the k-th slot returned by the iterator's Walk.
// Items that do not fit the walk are left out and logged.
func (p *Pagination) Layout(page int) map[int]visual.Item {
	out := make(map[int]visual.Item)
	for _, r := range p.data.records {
		if r.Page == page && !r.AutoFlow() && slot.Valid(r.Slot) {
			if _, taken := out[r.Slot]; !taken {
				out[r.Slot] = r.Item
			}
		}
	}

	it := p.iterator
	if it == nil {
		it = defaultIterator
	}
	size := p.PageSize()
	pinned := make(map[int]bool, len(out))
	for index := range out {
		pinned[index] = true
	}
	positions := it.Walk(func(index int) bool { return pinned[index] })

	k := 0
	for _, r := range p.data.records {
		if !r.AutoFlow() {
			continue
		}
		onPage, offset := k/size, k%size
		k++
		if onPage != page {
			continue
		}
		if offset >= len(positions) {
			logger.Logger().Warn("auto-flow item does not fit the page",
				"page", page+1, "offset", offset, "positions", len(positions))
			continue
		}
		out[positions[offset]] = r.Item
	}
	return out
}
