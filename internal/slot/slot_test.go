package slot

import (
	"errors"
	"testing"
)

func TestIndexPosition(t *testing.T) {
	tests := []struct {
		row, column int
		want        int
	}{
		{0, 0, 0},
		{0, 8, 8},
		{1, 0, 9},
		{2, 4, 22},
		{5, 8, 53},
	}

	for _, tt := range tests {
		got := Index(tt.row, tt.column)
		if got != tt.want {
			t.Errorf("Index(%d, %d) = %d, want %d", tt.row, tt.column, got, tt.want)
		}
		row, column := Position(got)
		if row != tt.row || column != tt.column {
			t.Errorf("Position(%d) = (%d, %d), want (%d, %d)", got, row, column, tt.row, tt.column)
		}
	}
}

func TestPositionRoundTrip(t *testing.T) {
	for i := 0; i < Count; i++ {
		if got := Index(Position(i)); got != i {
			t.Fatalf("Index(Position(%d)) = %d", i, got)
		}
	}
}

func TestCheck(t *testing.T) {
	tests := []struct {
		index   int
		wantErr bool
	}{
		{-1, true},
		{0, false},
		{53, false},
		{54, true},
	}

	for _, tt := range tests {
		err := Check(tt.index)
		if tt.wantErr && !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Check(%d) = %v, want ErrOutOfRange", tt.index, err)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Check(%d) unexpected error: %v", tt.index, err)
		}
	}
}
