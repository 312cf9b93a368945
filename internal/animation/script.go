// Package animation drives frame scripts over a surface. A frame is a string
// of symbols; each symbol is bound to a visual value. ContentAnimator swaps
// the material of one slot, CaptionAnimator restyles the surface caption.
package animation

import (
	"errors"
	"fmt"

	"github.com/ivlev/gridmenu/internal/scheduler"
)

// Configuration errors returned by the builders.
var (
	ErrNoFrames          = errors.New("no frames have been defined")
	ErrEmptyFrame        = errors.New("frame must not be empty")
	ErrNoSymbols         = errors.New("no symbol has been assigned a value")
	ErrUnmappedSymbol    = errors.New("frame uses a symbol without a value")
	ErrLengthMismatch    = errors.New("symbol and value lists differ in length")
	ErrNoSlot            = errors.New("no slot has been specified")
	ErrNoItem            = errors.New("no item to animate")
	ErrNoCaption         = errors.New("surface has no caption to animate")
	ErrLegacyUnsupported = errors.New("not supported in legacy caption mode")
	ErrAlreadyRunning    = errors.New("animator is already running")
	ErrStopped           = errors.New("animator was stopped before it started")
)

const (
	defaultPeriod = 20
	defaultDelay  = 0
)

// script holds what both animators share: frames, the symbol table, timing,
// looping and the identifier.
type script[V any] struct {
	frames     []string
	symbols    map[rune]V
	period     int
	delay      int
	loop       bool
	identifier string
}

func newScript[V any]() script[V] {
	return script[V]{
		symbols: make(map[rune]V),
		period:  defaultPeriod,
		delay:   defaultDelay,
	}
}

// adopt deep-copies everything but the identifier from preset.
func (s *script[V]) adopt(preset script[V]) {
	s.frames = append([]string(nil), preset.frames...)
	s.symbols = make(map[rune]V, len(preset.symbols))
	for k, v := range preset.symbols {
		s.symbols[k] = v
	}
	s.period = preset.period
	s.delay = preset.delay
	s.loop = preset.loop
}

func (s *script[V]) clone() script[V] {
	c := script[V]{identifier: s.identifier}
	c.adopt(*s)
	return c
}

func (s *script[V]) assign(symbols []rune, values []V) error {
	if len(symbols) != len(values) {
		return fmt.Errorf("%w: %d symbols, %d values", ErrLengthMismatch, len(symbols), len(values))
	}
	for i, r := range symbols {
		s.symbols[r] = values[i]
	}
	return nil
}

func (s *script[V]) setPeriod(n int, unit scheduler.TimeUnit) {
	s.period = unit.ToTicks(n)
}

func (s *script[V]) setDelay(n int, unit scheduler.TimeUnit) {
	s.delay = unit.ToTicks(n)
}

func (s *script[V]) validate() error {
	if len(s.symbols) == 0 {
		return ErrNoSymbols
	}
	if len(s.frames) == 0 {
		return ErrNoFrames
	}
	for i, frame := range s.frames {
		if frame == "" {
			return fmt.Errorf("%w: frame %d", ErrEmptyFrame, i)
		}
		for _, r := range frame {
			if _, ok := s.symbols[r]; !ok {
				return fmt.Errorf("%w: frame %q, symbol %q", ErrUnmappedSymbol, frame, r)
			}
		}
	}
	return nil
}

// cursor walks the frames of a running animator. Frames are consumed by
// moving head forward; the slice itself is never modified.
type cursor struct {
	frames [][]rune
	loop   bool
	head   int
	frame  int
	char   int
}

func newCursor(frames []string, loop bool) *cursor {
	c := &cursor{loop: loop, frames: make([][]rune, len(frames))}
	for i, f := range frames {
		c.frames[i] = []rune(f)
	}
	return c
}

func (c *cursor) remaining() int {
	return len(c.frames) - c.head
}

func (c *cursor) exhausted() bool {
	return c.remaining() <= 0
}

// frameDone reports whether every symbol of the active frame was emitted.
func (c *cursor) frameDone() bool {
	return c.char >= len(c.frames[c.frame])
}

// next returns the symbol under the cursor and moves past it. When the
// active frame is used up it continues with the following frame, or wraps
// the last one.
func (c *cursor) next() rune {
	if c.frameDone() {
		c.char = 0
		if c.frame+1 < len(c.frames) {
			c.frame++
		}
	}
	r := c.frames[c.frame][c.char]
	c.char++
	return r
}

// endCycle closes one cycle. A looping cursor moves to the next frame,
// wrapping around; otherwise the oldest remaining frame is consumed.
func (c *cursor) endCycle() {
	c.char = 0
	if c.loop {
		c.frame++
		if c.frame >= len(c.frames) {
			c.frame = c.head
		}
		return
	}
	c.head++
	c.frame = c.head
}
