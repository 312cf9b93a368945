package iterator

import (
	"fmt"

	"github.com/ivlev/gridmenu/internal/slot"
)

// Builder accumulates a SlotIterator configuration.
type Builder struct {
	slot        int
	row         int
	column      int
	end         int
	orientation Orientation
	overwrite   bool
	blacklist   []int
}

// NewBuilder returns a builder with no start, no end position, horizontal
// orientation and overwriting disabled.
func NewBuilder() *Builder {
	return &Builder{
		slot:   slot.Unassigned,
		row:    -1,
		column: -1,
		end:    slot.Unassigned,
	}
}

// Slot sets a linear start slot.
func (b *Builder) Slot(start int) *Builder {
	b.slot = start
	return b
}

// SlotAt sets a (row, column) start. It takes precedence over Slot.
func (b *Builder) SlotAt(row, column int) *Builder {
	b.row = row
	b.column = column
	return b
}

// EndPosition sets the slot to stop at. When set, pagination derives the
// page size from it and ignores the configured items per page.
func (b *Builder) EndPosition(end int) *Builder {
	b.end = end
	return b
}

// EndPositionAt sets the stop position by (row, column).
func (b *Builder) EndPositionAt(row, column int) *Builder {
	b.end = slot.Index(row, column)
	return b
}

// Type sets the traversal orientation.
func (b *Builder) Type(o Orientation) *Builder {
	b.orientation = o
	return b
}

// Blacklist adds slots that must never receive an item.
func (b *Builder) Blacklist(slots ...int) *Builder {
	b.blacklist = append(b.blacklist, slots...)
	return b
}

// BlacklistAll is the list form of Blacklist.
func (b *Builder) BlacklistAll(slots []int) *Builder {
	return b.Blacklist(slots...)
}

// Overwrite allows placement to replace existing occupants.
func (b *Builder) Overwrite() *Builder {
	b.overwrite = true
	return b
}

// Build validates the configuration and returns the iterator.
func (b *Builder) Build() (*SlotIterator, error) {
	start := resolveStart(b.slot, b.row, b.column)
	if err := slot.Check(start); err != nil {
		return nil, fmt.Errorf("start position: %w", err)
	}
	if b.end != slot.Unassigned {
		if err := slot.Check(b.end); err != nil {
			return nil, fmt.Errorf("end position: %w", err)
		}
		if start >= b.end {
			return nil, fmt.Errorf("%w: start %d, end %d", ErrStartNotBeforeEnd, start, b.end)
		}
	}
	for _, s := range b.blacklist {
		if err := slot.Check(s); err != nil {
			return nil, fmt.Errorf("blacklist: %w", err)
		}
	}

	return &SlotIterator{
		slot:        b.slot,
		row:         b.row,
		column:      b.column,
		end:         b.end,
		orientation: b.orientation,
		overwrite:   b.overwrite,
		blacklist:   append([]int(nil), b.blacklist...),
	}, nil
}
