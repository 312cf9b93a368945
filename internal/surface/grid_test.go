package surface

import (
	"testing"

	"github.com/ivlev/gridmenu/internal/visual"
)

type fakeAnimator struct {
	id      string
	stopped int
}

func (f *fakeAnimator) Identifier() string { return f.id }
func (f *fakeAnimator) Stop()              { f.stopped++ }

func TestGridWrites(t *testing.T) {
	var changes []Change
	g := NewGrid(WithCaption("Shop"), WithObserver(func(c Change) { changes = append(changes, c) }))

	g.WriteSlot(4, visual.Stack{Material: "DIAMOND"})
	g.WriteSlot(54, visual.Stack{Material: "DIRT"})
	g.WriteSlot(-1, visual.Stack{Material: "DIRT"})
	g.WriteCaption("Shop 2")

	if got := g.Stack(4).Material; got != "DIAMOND" {
		t.Errorf("Stack(4) = %s, want DIAMOND", got)
	}
	if got := g.Caption(); got != "Shop 2" {
		t.Errorf("Caption() = %q", got)
	}
	if len(changes) != 2 {
		t.Fatalf("observed %d changes, want 2", len(changes))
	}
	if changes[0].Kind != SlotChanged || changes[1].Kind != CaptionChanged {
		t.Errorf("change kinds = %v, %v", changes[0].Kind, changes[1].Kind)
	}
}

func TestGridFill(t *testing.T) {
	g := NewGrid()
	g.WriteSlot(7, visual.Stack{Material: "OLD"})
	g.Fill(map[int]visual.Item{3: visual.Stack{Material: "NEW"}})

	snap := g.Snapshot()
	if snap.Slots[3].Material != "NEW" {
		t.Errorf("slot 3 = %s", snap.Slots[3].Material)
	}
	if !snap.Slots[7].Empty() {
		t.Errorf("slot 7 not cleared: %s", snap.Slots[7].Material)
	}
}

func TestGridAnimatorRegistry(t *testing.T) {
	g := NewGrid()
	a := &fakeAnimator{id: "border"}
	b := &fakeAnimator{}
	g.RegisterAnimator(a)
	g.RegisterAnimator(b)

	if got, ok := g.Animator("border"); !ok || got != a {
		t.Errorf("Animator(border) = %v, %v", got, ok)
	}
	if _, ok := g.Animator("missing"); ok {
		t.Error("found an animator that was never registered")
	}

	g.DeregisterAnimator(b)
	g.DeregisterAnimator(b)
	if n := len(g.Animators()); n != 1 {
		t.Errorf("Animators() has %d entries, want 1", n)
	}

	if err := g.Close(); err != nil {
		t.Fatal(err)
	}
	if a.stopped != 1 || b.stopped != 0 {
		t.Errorf("stopped counts a=%d b=%d, want 1 and 0", a.stopped, b.stopped)
	}
	_ = g.Close()
	if a.stopped != 1 {
		t.Error("second Close stopped animators again")
	}

	late := &fakeAnimator{}
	g.RegisterAnimator(late)
	if late.stopped != 1 {
		t.Error("animator registered after Close was not stopped")
	}
	g.WriteSlot(0, visual.Stack{Material: "X"})
	if !g.Stack(0).Empty() {
		t.Error("write after Close was applied")
	}
}
