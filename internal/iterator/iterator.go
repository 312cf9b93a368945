// Package iterator describes how auto-flowed items advance across the slot
// grid: where to start, in which orientation, where to stop, which slots to
// skip and whether occupied slots may be overwritten.
package iterator

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/ivlev/gridmenu/internal/slot"
)

// ErrStartNotBeforeEnd is returned when the resolved start slot is not
// strictly before the configured end position.
var ErrStartNotBeforeEnd = errors.New("the start slot must be smaller than the end slot")

// Orientation selects the traversal order of the grid.
type Orientation int

const (
	// Horizontal walks row by row (row-major).
	Horizontal Orientation = iota
	// Vertical walks column by column (column-major).
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	default:
		return "horizontal"
	}
}

// ParseOrientation accepts "horizontal" or "vertical" (case-insensitive).
// An empty string means Horizontal.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal", "row":
		return Horizontal, nil
	case "vertical", "column":
		return Vertical, nil
	default:
		return Horizontal, fmt.Errorf("unknown orientation %q", s)
	}
}

// SlotIterator is an immutable placement policy. Build one with NewBuilder.
type SlotIterator struct {
	slot        int
	row         int
	column      int
	end         int
	orientation Orientation
	overwrite   bool
	blacklist   []int
}

// Start returns the resolved start slot. A (row, column) start wins over a
// linear one; with neither set the iterator starts at slot 0.
func (it *SlotIterator) Start() int {
	return resolveStart(it.slot, it.row, it.column)
}

// Slot returns the linear start slot, or slot.Unassigned if none was set.
func (it *SlotIterator) Slot() int { return it.slot }

// Row returns the start row, or -1 if none was set.
func (it *SlotIterator) Row() int { return it.row }

// Column returns the start column, or -1 if none was set.
func (it *SlotIterator) Column() int { return it.column }

// End returns the end position and whether one was configured.
func (it *SlotIterator) End() (int, bool) {
	return it.end, it.end != slot.Unassigned
}

// Orientation returns the traversal order.
func (it *SlotIterator) Orientation() Orientation { return it.orientation }

// Overwrite reports whether placement may replace an existing occupant.
func (it *SlotIterator) Overwrite() bool { return it.overwrite }

// Blacklist returns a copy of the forbidden slots in insertion order.
func (it *SlotIterator) Blacklist() []int {
	return append([]int(nil), it.blacklist...)
}

// Blacklisted reports whether index must always be skipped.
func (it *SlotIterator) Blacklisted(index int) bool {
	for _, b := range it.blacklist {
		if b == index {
			return true
		}
	}
	return false
}

// Capacity returns end - start when an end position is configured.
func (it *SlotIterator) Capacity() (int, bool) {
	end, ok := it.End()
	if !ok {
		return 0, false
	}
	return end - it.Start(), true
}

// Slots returns every non-blacklisted slot from the start up to (but not
// including) the end position, in traversal order. Without an end position
// the walk runs to the last slot of the grid.
//
// Both orientations cover the same linear window, so len(Slots()) plus the
// blacklisted slots inside the window always equals Capacity. Vertical
// traversal visits that window column by column.
func (it *SlotIterator) Slots() []int {
	from, to := it.Start(), slot.Count
	if end, ok := it.End(); ok && end < to {
		to = end
	}

	var out []int
	for index := from; index < to; index++ {
		if it.Blacklisted(index) {
			continue
		}
		out = append(out, index)
	}
	if it.orientation == Vertical {
		slices.SortFunc(out, func(a, b int) int {
			return columnOrdinal(a) - columnOrdinal(b)
		})
	}
	return out
}

// Walk returns the writable slots in traversal order. Slots for which
// occupied returns true are skipped unless the iterator allows overwriting.
func (it *SlotIterator) Walk(occupied func(index int) bool) []int {
	candidates := it.Slots()
	if it.overwrite || occupied == nil {
		return candidates
	}
	out := candidates[:0]
	for _, index := range candidates {
		if !occupied(index) {
			out = append(out, index)
		}
	}
	return out
}

func resolveStart(linear, row, column int) int {
	if row >= 0 && column >= 0 {
		return slot.Index(row, column)
	}
	if linear >= 0 {
		return linear
	}
	return 0
}

// columnOrdinal maps a linear index to its position in column-major order.
func columnOrdinal(index int) int {
	row, column := slot.Position(index)
	return column*slot.Rows + row
}
