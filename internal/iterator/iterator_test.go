package iterator

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ivlev/gridmenu/internal/slot"
)

func TestBuildStartEndBounds(t *testing.T) {
	for start := 0; start < slot.Count; start++ {
		for end := 0; end < slot.Count; end++ {
			_, err := NewBuilder().Slot(start).EndPosition(end).Build()
			if start < end && err != nil {
				t.Fatalf("start %d end %d: unexpected error %v", start, end, err)
			}
			if start >= end && !errors.Is(err, ErrStartNotBeforeEnd) {
				t.Fatalf("start %d end %d: expected ErrStartNotBeforeEnd, got %v", start, end, err)
			}
		}
	}
}

func TestBuildValidation(t *testing.T) {
	tests := []struct {
		name    string
		builder *Builder
		wantErr error
	}{
		{"defaults", NewBuilder(), nil},
		{"no end", NewBuilder().Slot(40), nil},
		{"row column start after end", NewBuilder().Slot(0).SlotAt(2, 0).EndPosition(10), ErrStartNotBeforeEnd},
		{"start out of range", NewBuilder().Slot(60), slot.ErrOutOfRange},
		{"end out of range", NewBuilder().EndPosition(54), slot.ErrOutOfRange},
		{"blacklist out of range", NewBuilder().Blacklist(3, 99), slot.ErrOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRowColumnWins(t *testing.T) {
	it, err := NewBuilder().Slot(3).SlotAt(1, 2).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if it.Start() != 11 {
		t.Errorf("Start() = %d, want 11", it.Start())
	}
	if it.Slot() != 3 || it.Row() != 1 || it.Column() != 2 {
		t.Errorf("raw start fields = %d (%d,%d)", it.Slot(), it.Row(), it.Column())
	}
}

func TestBlacklistForms(t *testing.T) {
	it, err := NewBuilder().Blacklist(4).BlacklistAll([]int{7, 4}).Blacklist(1, 2).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := []int{4, 7, 4, 1, 2}
	if got := it.Blacklist(); !reflect.DeepEqual(got, want) {
		t.Errorf("Blacklist() = %v, want %v", got, want)
	}
	if !it.Blacklisted(7) || it.Blacklisted(5) {
		t.Error("Blacklisted() mismatch")
	}
}

func TestCapacity(t *testing.T) {
	it, _ := NewBuilder().SlotAt(1, 1).EndPositionAt(3, 8).Build()
	capacity, ok := it.Capacity()
	if !ok || capacity != 35-10 {
		t.Errorf("Capacity() = %d, %v; want 25, true", capacity, ok)
	}

	it, _ = NewBuilder().Slot(5).Build()
	if _, ok := it.Capacity(); ok {
		t.Error("Capacity() should be unset without an end position")
	}
}

func TestSlotsHorizontal(t *testing.T) {
	it, err := NewBuilder().Slot(10).EndPosition(17).Blacklist(12, 13).Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	want := []int{10, 11, 14, 15, 16}
	if got := it.Slots(); !reflect.DeepEqual(got, want) {
		t.Errorf("Slots() = %v, want %v", got, want)
	}
}

func TestSlotsVertical(t *testing.T) {
	tests := []struct {
		name string
		b    *Builder
		want []int
	}{
		{
			// Window [1, 20) read column by column.
			name: "window",
			b:    NewBuilder().SlotAt(0, 1).EndPositionAt(2, 2).Type(Vertical),
			want: []int{9, 18, 1, 10, 19, 2, 11, 3, 12, 4, 13, 5, 14, 6, 15, 7, 16, 8, 17},
		},
		{
			name: "end column before start column",
			b:    NewBuilder().Slot(8).EndPosition(9).Type(Vertical),
			want: []int{8},
		},
		{
			name: "no end",
			b:    NewBuilder().SlotAt(4, 8).Type(Vertical),
			want: []int{45, 46, 47, 48, 49, 50, 51, 52, 44, 53},
		},
		{
			name: "blacklist",
			b:    NewBuilder().Slot(0).EndPosition(10).Blacklist(9).Type(Vertical),
			want: []int{0, 1, 2, 3, 4, 5, 6, 7, 8},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := tt.b.Build()
			if err != nil {
				t.Fatalf("Build failed: %v", err)
			}
			got := it.Slots()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Slots() = %v, want %v", got, tt.want)
			}
			if capacity, ok := it.Capacity(); ok && len(got)+len(it.Blacklist()) != capacity {
				t.Errorf("len(Slots()) = %d with %d blacklisted, capacity %d",
					len(got), len(it.Blacklist()), capacity)
			}
		})
	}
}

func TestWalk(t *testing.T) {
	occupied := func(i int) bool { return i == 1 || i == 3 }

	it, _ := NewBuilder().EndPosition(5).Build()
	if got := it.Walk(occupied); !reflect.DeepEqual(got, []int{0, 2, 4}) {
		t.Errorf("Walk() = %v, want [0 2 4]", got)
	}

	it, _ = NewBuilder().EndPosition(5).Overwrite().Build()
	if got := it.Walk(occupied); !reflect.DeepEqual(got, []int{0, 1, 2, 3, 4}) {
		t.Errorf("Walk() with overwrite = %v", got)
	}
}

func TestParseOrientation(t *testing.T) {
	tests := []struct {
		in      string
		want    Orientation
		wantErr bool
	}{
		{"", Horizontal, false},
		{"Vertical", Vertical, false},
		{"horizontal", Horizontal, false},
		{"diagonal", Horizontal, true},
	}
	for _, tt := range tests {
		got, err := ParseOrientation(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseOrientation(%q) = %v, %v", tt.in, got, err)
		}
	}
}
