package animation

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/ivlev/gridmenu/internal/visual"
)

// CaptionType selects how a caption animator restyles the caption.
type CaptionType int

const (
	// WordByWord grows the caption one styled letter per tick.
	WordByWord CaptionType = iota
	// FullWord shows the whole caption and styles one more letter per tick.
	FullWord
	// Flash repaints the whole caption in the current style every tick.
	Flash
)

func (t CaptionType) String() string {
	switch t {
	case FullWord:
		return "full_word"
	case Flash:
		return "flash"
	default:
		return "word_by_word"
	}
}

// ParseCaptionType accepts the names returned by String. An empty string
// means WordByWord.
func ParseCaptionType(s string) (CaptionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "word_by_word", "word-by-word":
		return WordByWord, nil
	case "full_word", "full-word":
		return FullWord, nil
	case "flash":
		return Flash, nil
	default:
		return WordByWord, fmt.Errorf("unknown caption animation type: %s", s)
	}
}

// CaptionStrategy turns one revealed letter into the next caption text.
type CaptionStrategy interface {
	// Reset starts a new pass over base.
	Reset(base []rune)
	// Consumes reports whether revealing r takes the next symbol.
	Consumes(r rune) bool
	// Reveal returns the caption after the letter at pos is revealed. style is
	// nil when the letter took no symbol.
	Reveal(pos int, style *visual.Style) string
}

// NewCaptionStrategy returns a fresh strategy for t. Legacy mode only
// supports WordByWord and never styles letters.
func NewCaptionStrategy(t CaptionType, legacy bool) (CaptionStrategy, error) {
	if legacy {
		if t != WordByWord {
			return nil, fmt.Errorf("%s animation: %w", t, ErrLegacyUnsupported)
		}
		return &legacyStrategy{}, nil
	}
	switch t {
	case WordByWord:
		return &wordByWord{}, nil
	case FullWord:
		return &fullWord{}, nil
	case Flash:
		return &flash{}, nil
	default:
		return nil, fmt.Errorf("unknown caption animation type: %d", int(t))
	}
}

type flash struct {
	base string
	last string
}

func (f *flash) Reset(base []rune) {
	f.base = string(base)
	f.last = f.base
}

func (f *flash) Consumes(rune) bool { return true }

func (f *flash) Reveal(_ int, style *visual.Style) string {
	if style != nil {
		f.last = style.Apply(f.base)
	}
	return f.last
}

// fullWord keeps the styled prefix revealed so far and shows the rest of
// the caption in white.
type fullWord struct {
	base     []rune
	revealed strings.Builder
}

func (f *fullWord) Reset(base []rune) {
	f.base = base
	f.revealed.Reset()
}

func (f *fullWord) Consumes(r rune) bool { return !unicode.IsSpace(r) }

func (f *fullWord) Reveal(pos int, style *visual.Style) string {
	letter := string(f.base[pos])
	if style != nil {
		f.revealed.WriteString(style.Apply(letter))
	} else {
		f.revealed.WriteString(visual.Reset + letter)
	}
	out := f.revealed.String()
	if rest := f.base[pos+1:]; len(rest) > 0 {
		out += visual.White.Code() + string(rest)
	}
	return out
}

type wordByWord struct {
	base []rune
	acc  strings.Builder
}

func (w *wordByWord) Reset(base []rune) {
	w.base = base
	w.acc.Reset()
}

func (w *wordByWord) Consumes(r rune) bool { return !unicode.IsSpace(r) }

func (w *wordByWord) Reveal(pos int, style *visual.Style) string {
	letter := string(w.base[pos])
	if style != nil {
		letter = style.Apply(letter)
	}
	w.acc.WriteString(letter)
	return w.acc.String()
}

// legacyStrategy appends plain letters.
type legacyStrategy struct {
	base []rune
	acc  strings.Builder
}

func (l *legacyStrategy) Reset(base []rune) {
	l.base = base
	l.acc.Reset()
}

func (l *legacyStrategy) Consumes(rune) bool { return false }

func (l *legacyStrategy) Reveal(pos int, _ *visual.Style) string {
	l.acc.WriteRune(l.base[pos])
	return l.acc.String()
}
