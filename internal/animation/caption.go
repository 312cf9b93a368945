package animation

import (
	"fmt"
	"sync"

	"github.com/ivlev/gridmenu/internal/logger"
	"github.com/ivlev/gridmenu/internal/scheduler"
	"github.com/ivlev/gridmenu/internal/surface"
	"github.com/ivlev/gridmenu/internal/visual"
)

// CaptionBuilder configures a CaptionAnimator.
type CaptionBuilder struct {
	script script[visual.Style]
	kind   CaptionType
	legacy bool
	err    error
}

// NewCaptionBuilder returns a word-by-word builder with a 20 tick period.
func NewCaptionBuilder() *CaptionBuilder {
	return &CaptionBuilder{script: newScript[visual.Style]()}
}

func (b *CaptionBuilder) fail(err error) *CaptionBuilder {
	if b.err == nil && err != nil {
		b.err = err
	}
	return b
}

// Color binds symbol to style.
func (b *CaptionBuilder) Color(symbol rune, style visual.Style) *CaptionBuilder {
	b.script.symbols[symbol] = style
	return b
}

// Colors binds symbols[i] to styles[i].
func (b *CaptionBuilder) Colors(symbols []rune, styles ...visual.Style) *CaptionBuilder {
	return b.fail(b.script.assign(symbols, styles))
}

// ColorMap binds every entry of m.
func (b *CaptionBuilder) ColorMap(m map[rune]visual.Style) *CaptionBuilder {
	for r, v := range m {
		b.script.symbols[r] = v
	}
	return b
}

// Frame appends one frame.
func (b *CaptionBuilder) Frame(frame string) *CaptionBuilder {
	b.script.frames = append(b.script.frames, frame)
	return b
}

// Frames appends frames in order.
func (b *CaptionBuilder) Frames(frames ...string) *CaptionBuilder {
	b.script.frames = append(b.script.frames, frames...)
	return b
}

// Type selects the rendering strategy.
func (b *CaptionBuilder) Type(t CaptionType) *CaptionBuilder {
	b.kind = t
	return b
}

// Legacy switches to plain letter accumulation for hosts that cannot show
// styled captions. Only WordByWord is available and no colors or frames may
// be configured.
func (b *CaptionBuilder) Legacy(legacy bool) *CaptionBuilder {
	b.legacy = legacy
	return b
}

// Period sets the interval between ticks.
func (b *CaptionBuilder) Period(n int, unit scheduler.TimeUnit) *CaptionBuilder {
	b.script.setPeriod(n, unit)
	return b
}

// Delay sets the wait before the first tick.
func (b *CaptionBuilder) Delay(n int, unit scheduler.TimeUnit) *CaptionBuilder {
	b.script.setDelay(n, unit)
	return b
}

// Loop makes the animation repeat instead of consuming its frames.
func (b *CaptionBuilder) Loop(loop bool) *CaptionBuilder {
	b.script.loop = loop
	return b
}

// Identifier tags the animator for lookup on its surface.
func (b *CaptionBuilder) Identifier(id string) *CaptionBuilder {
	b.script.identifier = id
	return b
}

// Copy adopts the frames, colors, timing, loop flag and type of preset. The
// identifier is not copied.
func (b *CaptionBuilder) Copy(preset *CaptionAnimator) *CaptionBuilder {
	if preset == nil {
		return b
	}
	b.script.adopt(preset.script)
	b.kind = preset.kind
	return b
}

// Build validates the configuration and returns an animator for the caption
// currently shown on s. Formatting codes in that caption are dropped.
func (b *CaptionBuilder) Build(s surface.Surface) (*CaptionAnimator, error) {
	if b.err != nil {
		return nil, b.err
	}
	strategy, err := NewCaptionStrategy(b.kind, b.legacy)
	if err != nil {
		return nil, err
	}

	sc := b.script.clone()
	if b.legacy {
		if len(sc.symbols) > 0 || len(sc.frames) > 0 {
			return nil, fmt.Errorf("colors and frames: %w", ErrLegacyUnsupported)
		}
		// One symbol-less frame stands for a single pass over the caption.
		sc.frames = []string{""}
	} else if err := sc.validate(); err != nil {
		return nil, err
	}

	base := []rune(visual.StripCodes(s.Caption()))
	if len(base) == 0 {
		return nil, ErrNoCaption
	}

	return &CaptionAnimator{
		script:   sc,
		kind:     b.kind,
		legacy:   b.legacy,
		base:     base,
		strategy: strategy,
		surface:  s,
	}, nil
}

// CaptionAnimator rewrites the surface caption on every tick. One cycle is
// one pass over the caption letters.
type CaptionAnimator struct {
	script  script[visual.Style]
	kind    CaptionType
	legacy  bool
	base    []rune
	surface surface.Surface

	mu       sync.Mutex
	strategy CaptionStrategy
	cursor   *cursor
	pos      int
	task     scheduler.Task
	running  bool
}

// Identifier implements surface.Animator.
func (a *CaptionAnimator) Identifier() string { return a.script.identifier }

// Type returns the rendering strategy.
func (a *CaptionAnimator) Type() CaptionType { return a.kind }

// Legacy reports whether the animator accumulates plain letters.
func (a *CaptionAnimator) Legacy() bool { return a.legacy }

// Base returns the caption text being animated.
func (a *CaptionAnimator) Base() string { return string(a.base) }

// Loop reports whether the animation repeats.
func (a *CaptionAnimator) Loop() bool { return a.script.loop }

// Period returns the tick interval.
func (a *CaptionAnimator) Period() int { return a.script.period }

// Delay returns the ticks before the first letter.
func (a *CaptionAnimator) Delay() int { return a.script.delay }

// Running reports whether the animator is scheduled.
func (a *CaptionAnimator) Running() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.running
}

// Animate registers the animator on its surface and starts ticking on sched.
func (a *CaptionAnimator) Animate(sched scheduler.Scheduler) error {
	a.mu.Lock()
	if a.running {
		a.mu.Unlock()
		return fmt.Errorf("caption animator %q: %w", a.Identifier(), ErrAlreadyRunning)
	}
	a.running = true
	a.cursor = newCursor(a.script.frames, a.script.loop)
	a.pos = 0
	a.strategy.Reset(a.base)
	a.mu.Unlock()

	a.surface.RegisterAnimator(a)

	a.mu.Lock()
	defer a.mu.Unlock()
	if !a.running {
		return fmt.Errorf("caption animator %q: %w", a.Identifier(), ErrStopped)
	}
	a.task = sched.Schedule(a.script.delay, a.script.period, a.tick)
	logger.Logger().Info("caption animator started",
		"id", a.Identifier(), "type", a.kind.String(), "legacy", a.legacy, "loop", a.script.loop)
	return nil
}

// Stop cancels the animation and removes it from its surface.
func (a *CaptionAnimator) Stop() {
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

func (a *CaptionAnimator) tick() bool {
	a.mu.Lock()
	c := a.cursor
	if c == nil || !a.running {
		a.mu.Unlock()
		return false
	}
	if a.pos >= len(a.base) {
		c.endCycle()
		a.pos = 0
		a.strategy.Reset(a.base)
	}
	if c.exhausted() {
		a.task = nil
		a.running = false
		a.mu.Unlock()
		a.surface.DeregisterAnimator(a)
		logger.Logger().Info("caption animator finished", "id", a.Identifier())
		return false
	}

	var style *visual.Style
	if a.strategy.Consumes(a.base[a.pos]) {
		st := a.script.symbols[c.next()]
		style = &st
	}
	text := a.strategy.Reveal(a.pos, style)
	a.pos++
	a.mu.Unlock()

	a.surface.WriteCaption(text)
	return true
}
