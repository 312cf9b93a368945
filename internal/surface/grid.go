package surface

import (
	"sync"

	"github.com/ivlev/gridmenu/internal/logger"
	"github.com/ivlev/gridmenu/internal/slot"
	"github.com/ivlev/gridmenu/internal/visual"
)

// ChangeKind tells which part of the surface changed.
type ChangeKind int

const (
	SlotChanged ChangeKind = iota
	CaptionChanged
)

// Change describes one mutation delivered to observers.
type Change struct {
	Kind    ChangeKind
	Slot    int
	Stack   visual.Stack
	Caption string
}

// Observer is called after every mutation, outside the grid's lock.
type Observer func(Change)

// Snapshot is a point-in-time copy of the grid contents.
type Snapshot struct {
	Slots   [slot.Count]visual.Stack
	Caption string
}

// Grid is a thread-safe in-memory Surface.
type Grid struct {
	mu        sync.RWMutex
	slots     [slot.Count]visual.Stack
	caption   string
	animators []Animator
	observers []Observer
	closed    bool
}

// Option configures a Grid.
type Option func(*Grid)

// WithCaption sets the initial caption.
func WithCaption(text string) Option {
	return func(g *Grid) {
		g.caption = text
	}
}

// WithObserver registers fn to receive every change.
func WithObserver(fn Observer) Option {
	return func(g *Grid) {
		if fn != nil {
			g.observers = append(g.observers, fn)
		}
	}
}

// NewGrid returns an empty grid.
func NewGrid(opts ...Option) *Grid {
	g := &Grid{}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// WriteSlot replaces the stack shown at index. Writes outside the grid and
// writes after Close are dropped.
func (g *Grid) WriteSlot(index int, s visual.Stack) {
	if !slot.Valid(index) {
		logger.Logger().Debug("slot write out of range", "slot", index)
		return
	}
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.slots[index] = s
	observers := g.observers
	g.mu.Unlock()

	g.notify(observers, Change{Kind: SlotChanged, Slot: index, Stack: s})
}

// WriteCaption replaces the caption.
func (g *Grid) WriteCaption(text string) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return
	}
	g.caption = text
	observers := g.observers
	g.mu.Unlock()

	g.notify(observers, Change{Kind: CaptionChanged, Slot: slot.Unassigned, Caption: text})
}

// Caption returns the current caption.
func (g *Grid) Caption() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.caption
}

// Stack returns the stack shown at index.
func (g *Grid) Stack(index int) visual.Stack {
	if !slot.Valid(index) {
		return visual.Stack{}
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.slots[index]
}

// Fill shows layout on the grid. Slots missing from layout are cleared.
func (g *Grid) Fill(layout map[int]visual.Item) {
	for index := 0; index < slot.Count; index++ {
		if item, ok := layout[index]; ok && item != nil {
			g.WriteSlot(index, item.Render())
			continue
		}
		g.WriteSlot(index, visual.Stack{})
	}
}

// RegisterAnimator records a as owned by the grid. Registering on a closed
// grid stops a immediately.
func (g *Grid) RegisterAnimator(a Animator) {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		a.Stop()
		return
	}
	g.animators = append(g.animators, a)
	g.mu.Unlock()
	logger.Logger().Debug("animator registered", "id", a.Identifier())
}

// DeregisterAnimator forgets a. Unknown animators are ignored.
func (g *Grid) DeregisterAnimator(a Animator) {
	g.mu.Lock()
	defer g.mu.Unlock()
	for i, owned := range g.animators {
		if owned == a {
			g.animators = append(g.animators[:i], g.animators[i+1:]...)
			logger.Logger().Debug("animator deregistered", "id", a.Identifier())
			return
		}
	}
}

// Animator returns the first registered animator tagged id.
func (g *Grid) Animator(id string) (Animator, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	for _, a := range g.animators {
		if a.Identifier() == id {
			return a, true
		}
	}
	return nil, false
}

// Animators returns the registered animators in registration order.
func (g *Grid) Animators() []Animator {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return append([]Animator(nil), g.animators...)
}

// Snapshot copies the grid contents.
func (g *Grid) Snapshot() Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	s := Snapshot{Slots: g.slots, Caption: g.caption}
	for i := range s.Slots {
		s.Slots[i].Lore = append([]string(nil), g.slots[i].Lore...)
	}
	return s
}

// Close stops every registered animator and rejects further writes.
func (g *Grid) Close() error {
	g.mu.Lock()
	if g.closed {
		g.mu.Unlock()
		return nil
	}
	g.closed = true
	owned := g.animators
	g.animators = nil
	g.mu.Unlock()

	for _, a := range owned {
		a.Stop()
	}
	logger.Logger().Info("surface closed", "animators_stopped", len(owned))
	return nil
}

func (g *Grid) notify(observers []Observer, c Change) {
	for _, fn := range observers {
		fn(c)
	}
}
