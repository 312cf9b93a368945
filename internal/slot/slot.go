// Package slot converts between linear slot indices and (row, column)
// positions on the fixed 6x9 menu grid.
package slot

import (
	"errors"
	"fmt"
)

const (
	// Columns is the fixed width of every grid row.
	Columns = 9
	// Rows is the number of rows of the largest surface.
	Rows = 6
	// Count is the number of addressable slots (0-53).
	Count = Rows * Columns
	// Max is the highest valid slot index.
	Max = Count - 1
	// Unassigned marks a record whose slot is resolved by auto-flow.
	Unassigned = -1
)

// ErrOutOfRange is returned for slot indices outside 0..Max.
var ErrOutOfRange = errors.New("slot must be between 0 and 53")

// Index converts a (row, column) position to a linear slot index.
func Index(row, column int) int {
	return Columns*row + column
}

// Position converts a linear slot index back to (row, column).
func Position(index int) (row, column int) {
	return index / Columns, index % Columns
}

// Valid reports whether index addresses a slot of the grid.
func Valid(index int) bool {
	return index >= 0 && index <= Max
}

// Check returns ErrOutOfRange wrapped with the offending index.
func Check(index int) error {
	if !Valid(index) {
		return fmt.Errorf("%w: got %d", ErrOutOfRange, index)
	}
	return nil
}
