package script

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/ivlev/gridmenu/internal/animation"
	"github.com/ivlev/gridmenu/internal/iterator"
	"github.com/ivlev/gridmenu/internal/pagination"
	"github.com/ivlev/gridmenu/internal/scheduler"
	"github.com/ivlev/gridmenu/internal/surface"
	"github.com/ivlev/gridmenu/internal/visual"
)

// Iterator builds the placement policy, or returns nil when the script has
// none.
func (s *Script) Iterator() (*iterator.SlotIterator, error) {
	spec := s.Pagination.Iterator
	if spec == nil {
		return nil, nil
	}
	orientation, err := iterator.ParseOrientation(spec.Orientation)
	if err != nil {
		return nil, err
	}

	b := iterator.NewBuilder().Type(orientation).BlacklistAll(spec.Blacklist)
	if spec.Slot != nil {
		b.Slot(*spec.Slot)
	}
	if spec.Row != nil && spec.Column != nil {
		b.SlotAt(*spec.Row, *spec.Column)
	}
	if spec.End != nil {
		b.EndPosition(*spec.End)
	}
	if spec.Overwrite {
		b.Overwrite()
	}
	return b.Build()
}

// Paginate builds a Pagination holding every item of the script.
func (s *Script) Paginate() (*pagination.Pagination, error) {
	p := pagination.New()
	if s.Pagination.PageSize > 0 {
		if err := p.SetItemsPerPage(s.Pagination.PageSize); err != nil {
			return nil, err
		}
	}
	it, err := s.Iterator()
	if err != nil {
		return nil, fmt.Errorf("iterator: %w", err)
	}
	if it != nil {
		p.SetIterator(it)
	}

	for i, item := range s.Items {
		if item.Slot == nil {
			p.AddItem(item.Stack)
			continue
		}
		if err := p.SetItemOnPage(*item.Slot, item.Page, item.Stack); err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
	}
	return p, nil
}

// ContentAnimators builds the content animations in file order.
func (s *Script) ContentAnimators(surf surface.Surface) ([]*animation.ContentAnimator, error) {
	built := make(map[string]*animation.ContentAnimator)
	var out []*animation.ContentAnimator

	for i, spec := range s.Animations.Content {
		b := animation.NewContentBuilder()
		if spec.Copy != "" {
			preset, ok := built[spec.Copy]
			if !ok {
				return nil, fmt.Errorf("content animation %d: unknown preset %q", i, spec.Copy)
			}
			b.Copy(preset)
		}
		if spec.Slot != nil {
			b.Slot(*spec.Slot)
			if item := s.itemFor(spec); item != nil {
				b.Item(item)
			}
		}
		symbols, err := symbolTable(spec.Materials)
		if err != nil {
			return nil, fmt.Errorf("content animation %d: %w", i, err)
		}
		for _, r := range symbols {
			b.Material(r, visual.Material(spec.Materials[string(r)]))
		}
		if err := applyTiming(spec.Timing, b.Period, b.Delay); err != nil {
			return nil, fmt.Errorf("content animation %d: %w", i, err)
		}
		b.Frames(spec.Frames...).Identifier(spec.ID)
		if spec.Loop != nil {
			b.Loop(*spec.Loop)
		}

		a, err := b.Build(surf)
		if err != nil {
			return nil, fmt.Errorf("content animation %d: %w", i, err)
		}
		if spec.ID != "" {
			built[spec.ID] = a
		}
		out = append(out, a)
	}
	return out, nil
}

// CaptionAnimators builds the caption animations in file order. The surface
// must already show the caption to animate.
func (s *Script) CaptionAnimators(surf surface.Surface, legacy bool) ([]*animation.CaptionAnimator, error) {
	built := make(map[string]*animation.CaptionAnimator)
	var out []*animation.CaptionAnimator

	for i, spec := range s.Animations.Captions {
		b := animation.NewCaptionBuilder().Legacy(legacy)
		if spec.Copy != "" {
			preset, ok := built[spec.Copy]
			if !ok {
				return nil, fmt.Errorf("caption animation %d: unknown preset %q", i, spec.Copy)
			}
			b.Copy(preset)
		}
		if spec.Type != "" {
			t, err := animation.ParseCaptionType(spec.Type)
			if err != nil {
				return nil, fmt.Errorf("caption animation %d: %w", i, err)
			}
			b.Type(t)
		}
		symbols, err := symbolTable(spec.Colors)
		if err != nil {
			return nil, fmt.Errorf("caption animation %d: %w", i, err)
		}
		for _, r := range symbols {
			style, err := spec.Colors[string(r)].Style()
			if err != nil {
				return nil, fmt.Errorf("caption animation %d: symbol %q: %w", i, r, err)
			}
			b.Color(r, style)
		}
		if err := applyTiming(spec.Timing, b.Period, b.Delay); err != nil {
			return nil, fmt.Errorf("caption animation %d: %w", i, err)
		}
		b.Frames(spec.Frames...).Identifier(spec.ID)
		if spec.Loop != nil {
			b.Loop(*spec.Loop)
		}

		a, err := b.Build(surf)
		if err != nil {
			return nil, fmt.Errorf("caption animation %d: %w", i, err)
		}
		if spec.ID != "" {
			built[spec.ID] = a
		}
		out = append(out, a)
	}
	return out, nil
}

// Style converts the file form to a visual.Style.
func (s StyleSpec) Style() (visual.Style, error) {
	var c visual.Color
	if s.Color != "" {
		var err error
		if c, err = visual.ParseColor(s.Color); err != nil {
			return visual.Style{}, err
		}
	}
	return visual.Style{
		Color:         c,
		Bold:          s.Bold,
		Underline:     s.Underline,
		Italic:        s.Italic,
		Obfuscated:    s.Obfuscated,
		Strikethrough: s.Strikethrough,
	}, nil
}

func (s *Script) itemFor(spec ContentSpec) visual.Item {
	if spec.Item != nil {
		return *spec.Item
	}
	for _, item := range s.Items {
		if item.Slot != nil && *item.Slot == *spec.Slot && item.Page == 0 {
			return item.Stack
		}
	}
	return nil
}

// symbolTable checks that every key is one character and returns the
// symbols in a stable order.
func symbolTable[V any](m map[string]V) ([]rune, error) {
	symbols := make([]rune, 0, len(m))
	for key := range m {
		r, size := utf8.DecodeRuneInString(key)
		if size == 0 || size != len(key) {
			return nil, fmt.Errorf("symbol %q must be a single character", key)
		}
		symbols = append(symbols, r)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols, nil
}

func applyTiming[B any](t Timing, period, delay func(int, scheduler.TimeUnit) B) error {
	unit, err := scheduler.ParseTimeUnit(t.Unit)
	if err != nil {
		return err
	}
	if t.Period > 0 {
		period(t.Period, unit)
	}
	if t.Delay > 0 {
		delay(t.Delay, unit)
	}
	return nil
}
