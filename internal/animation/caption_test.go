package animation

import (
	"errors"
	"testing"

	"github.com/ivlev/gridmenu/internal/scheduler"
	"github.com/ivlev/gridmenu/internal/surface"
	"github.com/ivlev/gridmenu/internal/visual"
)

var (
	red      = visual.Style{Color: visual.Red}
	blueBold = visual.Style{Color: visual.Blue, Bold: true}
	white    = visual.Style{Color: visual.White}
)

func captionRecorder(caption string) (*surface.Grid, *[]string) {
	var captions []string
	g := surface.NewGrid(surface.WithCaption(caption), surface.WithObserver(func(c surface.Change) {
		if c.Kind == surface.CaptionChanged {
			captions = append(captions, c.Caption)
		}
	}))
	return g, &captions
}

// letterStyles expands formatted text into one style per visible letter.
func letterStyles(text string) []visual.Style {
	var out []visual.Style
	for _, seg := range visual.ParseStyled(text) {
		for range seg.Text {
			out = append(out, seg.Style)
		}
	}
	return out
}

func TestCaptionFullWord(t *testing.T) {
	grid, captions := captionRecorder("§ehi there")
	clock := scheduler.NewManual()
	a, err := NewCaptionBuilder().
		Type(FullWord).
		Color('a', red).
		Color('b', blueBold).
		Frame("ab").
		Period(1, scheduler.Ticks).
		Build(grid)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if a.Base() != "hi there" {
		t.Fatalf("Base() = %q", a.Base())
	}
	if err := a.Animate(clock); err != nil {
		t.Fatal(err)
	}

	// The space takes no symbol, so "t" continues with 'a' where a
	// space-consuming cursor would have reached 'b'.
	want := []visual.Style{red, blueBold, {}, red, blueBold, red, blueBold, red}
	for tick := 1; tick <= len(want); tick++ {
		clock.Advance(1)
		got := (*captions)[tick-1]
		if visual.StripCodes(got) != "hi there" {
			t.Fatalf("tick %d: text %q", tick, visual.StripCodes(got))
		}
		styles := letterStyles(got)
		for i, st := range styles {
			expected := white
			if i < tick {
				expected = want[i]
			}
			if st != expected {
				t.Errorf("tick %d letter %d: style %+v, want %+v", tick, i, st, expected)
			}
		}
	}

	clock.Advance(1)
	if a.Running() {
		t.Error("single-frame caption still running after one pass")
	}
	if len(*captions) != len(want) {
		t.Errorf("caption writes = %d, want %d", len(*captions), len(want))
	}
}

func TestCaptionFlash(t *testing.T) {
	grid, captions := captionRecorder("ab")
	clock := scheduler.NewManual()
	a, err := NewCaptionBuilder().
		Type(Flash).
		Colors([]rune("xy"), red, visual.Style{Color: visual.Green}).
		Frame("xy").
		Period(1, scheduler.Ticks).
		Build(grid)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Animate(clock); err != nil {
		t.Fatal(err)
	}
	clock.Advance(3)

	want := []string{"§cab", "§aab"}
	if len(*captions) != len(want) {
		t.Fatalf("captions = %q, want %q", *captions, want)
	}
	for i := range want {
		if (*captions)[i] != want[i] {
			t.Errorf("tick %d = %q, want %q", i+1, (*captions)[i], want[i])
		}
	}
	if a.Running() {
		t.Error("flash animator still running")
	}
}

func TestCaptionFlashLoop(t *testing.T) {
	grid, captions := captionRecorder("ab")
	clock := scheduler.NewManual()
	a, _ := NewCaptionBuilder().
		Type(Flash).
		Color('x', red).
		Color('y', blueBold).
		Frames("x", "y").
		Loop(true).
		Period(1, scheduler.Ticks).
		Build(grid)
	if err := a.Animate(clock); err != nil {
		t.Fatal(err)
	}
	clock.Advance(6)

	want := []string{"§cab", "§9§lab", "§cab", "§9§lab", "§cab", "§9§lab"}
	for i := range want {
		if (*captions)[i] != want[i] {
			t.Errorf("tick %d = %q, want %q", i+1, (*captions)[i], want[i])
		}
	}
	if !a.Running() {
		t.Error("looping caption stopped")
	}
}

func TestCaptionWordByWord(t *testing.T) {
	grid, captions := captionRecorder("a b")
	clock := scheduler.NewManual()
	a, err := NewCaptionBuilder().
		Color('x', visual.Style{Color: visual.Gold}).
		Frame("x").
		Period(1, scheduler.Ticks).
		Build(grid)
	if err != nil {
		t.Fatal(err)
	}
	if err := a.Animate(clock); err != nil {
		t.Fatal(err)
	}
	clock.Advance(4)

	want := []string{"§6a", "§6a ", "§6a §6b"}
	if len(*captions) != len(want) {
		t.Fatalf("captions = %q, want %q", *captions, want)
	}
	for i := range want {
		if (*captions)[i] != want[i] {
			t.Errorf("tick %d = %q, want %q", i+1, (*captions)[i], want[i])
		}
	}
}

func TestCaptionLegacy(t *testing.T) {
	grid, captions := captionRecorder("§cHi")
	clock := scheduler.NewManual()
	a, err := NewCaptionBuilder().Legacy(true).Period(1, scheduler.Ticks).Build(grid)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if err := a.Animate(clock); err != nil {
		t.Fatal(err)
	}
	clock.Advance(3)

	if len(*captions) != 2 || (*captions)[0] != "H" || (*captions)[1] != "Hi" {
		t.Errorf("captions = %q, want [H Hi]", *captions)
	}
	if a.Running() {
		t.Error("legacy animator still running")
	}
}

func TestCaptionBuildErrors(t *testing.T) {
	tests := []struct {
		name    string
		caption string
		builder *CaptionBuilder
		wantErr error
	}{
		{"no caption", "", NewCaptionBuilder().Color('a', red).Frame("a"), ErrNoCaption},
		{"no symbols", "x", NewCaptionBuilder().Frame("a"), ErrNoSymbols},
		{"no frames", "x", NewCaptionBuilder().Color('a', red), ErrNoFrames},
		{"unmapped", "x", NewCaptionBuilder().Color('a', red).Frame("ab"), ErrUnmappedSymbol},
		{"mismatch", "x", NewCaptionBuilder().Colors([]rune("ab"), red).Frame("a"), ErrLengthMismatch},
		{"legacy flash", "x", NewCaptionBuilder().Legacy(true).Type(Flash), ErrLegacyUnsupported},
		{"legacy full word", "x", NewCaptionBuilder().Legacy(true).Type(FullWord), ErrLegacyUnsupported},
		{"legacy colors", "x", NewCaptionBuilder().Legacy(true).Color('a', red), ErrLegacyUnsupported},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build(surface.NewGrid(surface.WithCaption(tt.caption)))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Build error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestCaptionCopy(t *testing.T) {
	grid := surface.NewGrid(surface.WithCaption("Menu"))
	preset, err := NewCaptionBuilder().Type(FullWord).Color('a', red).Frame("a").Identifier("title").Build(grid)
	if err != nil {
		t.Fatal(err)
	}
	c, err := NewCaptionBuilder().Copy(preset).Build(grid)
	if err != nil {
		t.Fatal(err)
	}
	if c.Type() != FullWord || c.Identifier() != "" {
		t.Errorf("copy type=%s identifier=%q", c.Type(), c.Identifier())
	}
}

func TestParseCaptionType(t *testing.T) {
	for _, ct := range []CaptionType{WordByWord, FullWord, Flash} {
		got, err := ParseCaptionType(ct.String())
		if err != nil || got != ct {
			t.Errorf("ParseCaptionType(%q) = %v, %v", ct.String(), got, err)
		}
	}
	if _, err := ParseCaptionType("spin"); err == nil {
		t.Error("expected error for unknown type")
	}
}
