package visual

import (
	"fmt"
	"image/color"
	"strings"
)

// Marker starts every legacy formatting code.
const Marker = '§'

// Reset clears color and formatting for the text that follows.
const Reset = "§r"

// Color is a legacy chat color code ('0'-'9', 'a'-'f'). The zero value
// means "no color".
type Color rune

const (
	Black       Color = '0'
	DarkBlue    Color = '1'
	DarkGreen   Color = '2'
	DarkAqua    Color = '3'
	DarkRed     Color = '4'
	DarkPurple  Color = '5'
	Gold        Color = '6'
	Gray        Color = '7'
	DarkGray    Color = '8'
	Blue        Color = '9'
	Green       Color = 'a'
	Aqua        Color = 'b'
	Red         Color = 'c'
	LightPurple Color = 'd'
	Yellow      Color = 'e'
	White       Color = 'f'
)

const (
	codeObfuscated    = 'k'
	codeBold          = 'l'
	codeStrikethrough = 'm'
	codeUnderline     = 'n'
	codeItalic        = 'o'
	codeReset         = 'r'
)

var colorNames = map[string]Color{
	"black":        Black,
	"dark_blue":    DarkBlue,
	"dark_green":   DarkGreen,
	"dark_aqua":    DarkAqua,
	"dark_red":     DarkRed,
	"dark_purple":  DarkPurple,
	"gold":         Gold,
	"gray":         Gray,
	"dark_gray":    DarkGray,
	"blue":         Blue,
	"green":        Green,
	"aqua":         Aqua,
	"red":          Red,
	"light_purple": LightPurple,
	"yellow":       Yellow,
	"white":        White,
}

var colorRGBA = map[Color]color.RGBA{
	Black:       {0x00, 0x00, 0x00, 0xff},
	DarkBlue:    {0x00, 0x00, 0xaa, 0xff},
	DarkGreen:   {0x00, 0xaa, 0x00, 0xff},
	DarkAqua:    {0x00, 0xaa, 0xaa, 0xff},
	DarkRed:     {0xaa, 0x00, 0x00, 0xff},
	DarkPurple:  {0xaa, 0x00, 0xaa, 0xff},
	Gold:        {0xff, 0xaa, 0x00, 0xff},
	Gray:        {0xaa, 0xaa, 0xaa, 0xff},
	DarkGray:    {0x55, 0x55, 0x55, 0xff},
	Blue:        {0x55, 0x55, 0xff, 0xff},
	Green:       {0x55, 0xff, 0x55, 0xff},
	Aqua:        {0x55, 0xff, 0xff, 0xff},
	Red:         {0xff, 0x55, 0x55, 0xff},
	LightPurple: {0xff, 0x55, 0xff, 0xff},
	Yellow:      {0xff, 0xff, 0x55, 0xff},
	White:       {0xff, 0xff, 0xff, 0xff},
}

// ParseColor accepts a color name ("red", "dark_blue") or a single code
// character ("c").
func ParseColor(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if c, ok := colorNames[key]; ok {
		return c, nil
	}
	if r := []rune(key); len(r) == 1 {
		if _, ok := colorRGBA[Color(r[0])]; ok {
			return Color(r[0]), nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", s)
}

// Code returns the two-character formatting code, or "" for the zero color.
func (c Color) Code() string {
	if c == 0 {
		return ""
	}
	return string([]rune{Marker, rune(c)})
}

// RGBA returns the display color. Unknown colors render white.
func (c Color) RGBA() color.RGBA {
	if v, ok := colorRGBA[c]; ok {
		return v
	}
	return colorRGBA[White]
}

// Style is a color profile applied to caption letters.
type Style struct {
	Color         Color
	Bold          bool
	Underline     bool
	Italic        bool
	Obfuscated    bool
	Strikethrough bool
}

// Prefix renders the style as legacy formatting codes: color first, then
// bold, underline, italic, obfuscated and strikethrough.
func (s Style) Prefix() string {
	var b strings.Builder
	b.WriteString(s.Color.Code())
	flags := []struct {
		on   bool
		code rune
	}{
		{s.Bold, codeBold},
		{s.Underline, codeUnderline},
		{s.Italic, codeItalic},
		{s.Obfuscated, codeObfuscated},
		{s.Strikethrough, codeStrikethrough},
	}
	for _, f := range flags {
		if f.on {
			b.WriteRune(Marker)
			b.WriteRune(f.code)
		}
	}
	return b.String()
}

// Apply prefixes text with the style codes.
func (s Style) Apply(text string) string {
	return s.Prefix() + text
}

// StripCodes removes every formatting code from text.
func StripCodes(text string) string {
	var b strings.Builder
	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] == Marker && i+1 < len(runes) {
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// Segment is a run of caption text sharing one style.
type Segment struct {
	Text  string
	Style Style
}

// ParseStyled splits formatted text into styled segments. A color code
// resets the format flags, as the legacy renderer does.
func ParseStyled(text string) []Segment {
	var segments []Segment
	var cur Style
	var b strings.Builder

	flush := func() {
		if b.Len() == 0 {
			return
		}
		if n := len(segments); n > 0 && segments[n-1].Style == cur {
			segments[n-1].Text += b.String()
		} else {
			segments = append(segments, Segment{Text: b.String(), Style: cur})
		}
		b.Reset()
	}

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		if runes[i] != Marker || i+1 >= len(runes) {
			b.WriteRune(runes[i])
			continue
		}
		code := runes[i+1]
		i++
		flush()
		switch code {
		case codeBold:
			cur.Bold = true
		case codeUnderline:
			cur.Underline = true
		case codeItalic:
			cur.Italic = true
		case codeObfuscated:
			cur.Obfuscated = true
		case codeStrikethrough:
			cur.Strikethrough = true
		case codeReset:
			cur = Style{}
		default:
			if _, ok := colorRGBA[Color(code)]; ok {
				cur = Style{Color: Color(code)}
			}
		}
	}
	flush()
	return segments
}
