package animation

import (
	"fmt"
	"sync"

	"github.com/ivlev/gridmenu/internal/logger"
	"github.com/ivlev/gridmenu/internal/scheduler"
	"github.com/ivlev/gridmenu/internal/slot"
	"github.com/ivlev/gridmenu/internal/surface"
	"github.com/ivlev/gridmenu/internal/visual"
)

// ContentBuilder configures a ContentAnimator. The first invalid call is
// remembered and returned by Build.
type ContentBuilder struct {
	script script[visual.Material]
	item   visual.Item
	slot   int
	err    error
}

// NewContentBuilder returns a builder with a 20 tick period and no delay.
func NewContentBuilder() *ContentBuilder {
	return &ContentBuilder{
		script: newScript[visual.Material](),
		slot:   slot.Unassigned,
	}
}

func (b *ContentBuilder) fail(err error) *ContentBuilder {
	if b.err == nil && err != nil {
		b.err = err
	}
	return b
}

// Item sets the payload whose material is animated.
func (b *ContentBuilder) Item(item visual.Item) *ContentBuilder {
	b.item = item
	return b
}

// Slot sets the animated slot.
func (b *ContentBuilder) Slot(index int) *ContentBuilder {
	if err := slot.Check(index); err != nil {
		return b.fail(err)
	}
	b.slot = index
	return b
}

// SlotAt sets the animated slot by row and column.
func (b *ContentBuilder) SlotAt(row, column int) *ContentBuilder {
	return b.Slot(slot.Index(row, column))
}

// Material binds symbol to m.
func (b *ContentBuilder) Material(symbol rune, m visual.Material) *ContentBuilder {
	b.script.symbols[symbol] = m
	return b
}

// Materials binds symbols[i] to materials[i]. Both lists must have the same
// length.
func (b *ContentBuilder) Materials(symbols []rune, materials ...visual.Material) *ContentBuilder {
	return b.fail(b.script.assign(symbols, materials))
}

// MaterialMap binds every entry of m.
func (b *ContentBuilder) MaterialMap(m map[rune]visual.Material) *ContentBuilder {
	for r, v := range m {
		b.script.symbols[r] = v
	}
	return b
}

// Frame appends one frame.
func (b *ContentBuilder) Frame(frame string) *ContentBuilder {
	b.script.frames = append(b.script.frames, frame)
	return b
}

// Frames appends frames in order.
func (b *ContentBuilder) Frames(frames ...string) *ContentBuilder {
	b.script.frames = append(b.script.frames, frames...)
	return b
}

// Period sets the interval between ticks.
func (b *ContentBuilder) Period(n int, unit scheduler.TimeUnit) *ContentBuilder {
	b.script.setPeriod(n, unit)
	return b
}

// Delay sets the wait before the first tick.
func (b *ContentBuilder) Delay(n int, unit scheduler.TimeUnit) *ContentBuilder {
	b.script.setDelay(n, unit)
	return b
}

// Loop makes the animation repeat instead of consuming its frames.
func (b *ContentBuilder) Loop(loop bool) *ContentBuilder {
	b.script.loop = loop
	return b
}

// Identifier tags the animator for lookup on its surface.
func (b *ContentBuilder) Identifier(id string) *ContentBuilder {
	b.script.identifier = id
	return b
}

// Copy adopts the frames, materials, timing, loop flag, item and slot of
// preset. The identifier is not copied.
func (b *ContentBuilder) Copy(preset *ContentAnimator) *ContentBuilder {
	if preset == nil {
		return b
	}
	b.script.adopt(preset.script)
	b.item = preset.item
	b.slot = preset.slot
	return b
}

// Build validates the configuration and returns an animator writing to s.
// The animator does not run until Animate is called.
func (b *ContentBuilder) Build(s surface.Surface) (*ContentAnimator, error) {
	if b.err != nil {
		return nil, b.err
	}
	if b.slot == slot.Unassigned {
		return nil, ErrNoSlot
	}
	if err := b.script.validate(); err != nil {
		return nil, err
	}
	if b.item == nil {
		return nil, ErrNoItem
	}
	return &ContentAnimator{
		script:  b.script.clone(),
		item:    b.item,
		slot:    b.slot,
		surface: s,
	}, nil
}

// ContentAnimator replaces the material of one slot on every tick.
type ContentAnimator struct {
	script  script[visual.Material]
	item    visual.Item
	slot    int
	surface surface.Surface

	mu      sync.Mutex
	cursor  *cursor
	task    scheduler.Task
	running bool
}

// Identifier implements surface.Animator.
func (a *ContentAnimator) Identifier() string { return a.script.identifier }

// Slot returns the animated slot.
func (a *ContentAnimator) Slot() int { return a.slot }

// Loop reports whether the animation repeats.
func (a *ContentAnimator) Loop() bool { return a.script.loop }

// Period returns the tick interval.
func (a *ContentAnimator) Period() int { return a.script.period }

// Delay returns the ticks before the first frame.
func (a *ContentAnimator) Delay() int { return a.script.delay }

// Frames returns a copy of the configured frames.
func (a *ContentAnimator) Frames() []string {
	return append([]string(nil), a.script.frames...)
}

// Running reports whether the animator is scheduled.
func (a *ContentAnimator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Animate registers the animator on its surface and starts ticking on sched.
func (a *ContentAnimator) Animate(sched scheduler.Scheduler) error {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return fmt.Errorf("content animator %q: %w", a.Identifier(), ErrAlreadyRunning)
	}
	a.running = true
	a.cursor = newCursor(a.script.frames, a.script.loop)
	a.mu.Unlock()

	// A closed surface stops the animator from inside RegisterAnimator.
	a.surface.RegisterAnimator(a)

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return fmt.Errorf("content animator %q: %w", a.Identifier(), ErrStopped)
	}
	a.task = sched.Schedule(a.script.delay, a.script.period, a.tick)

	logger.Logger().Info("content animator started",
		"id", a.Identifier(), "slot", a.slot, "frames", len(a.script.frames), "loop", a.script.loop)
	return nil
}

// Stop cancels the animation and removes it from its surface.
func (a *ContentAnimator) Stop() {
	a.mu.Lock()
	if !a.running {
		a.mu.Unlock()
		return
	}
	task := a.task
	a.task = nil
	a.running = false
	a.mu.Unlock()

	if task != nil {
		task.Cancel()
	}
	a.surface.DeregisterAnimator(a)
}

func (a *ContentAnimator) tick() bool {
	a.mu.Lock()
	c := a.cursor
	if c == nil || !a.running {
		a.mu.Unlock()
		return false
	}
	if c.frameDone() {
		c.endCycle()
	}
	if c.exhausted() {
		a.task = nil
		a.running = false
		a.mu.Unlock()
		a.surface.DeregisterAnimator(a)
		logger.Logger().Info("content animator finished", "id", a.Identifier(), "slot", a.slot)
		return false
	}
	m := a.script.symbols[c.next()]
	a.mu.Unlock()

	a.surface.WriteSlot(a.slot, a.item.Render().WithMaterial(m))
	return true
}
