// Package preview draws a surface snapshot: the caption on top and the
// 9x6 slot grid below it.
package preview

import (
	"hash/fnv"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/ivlev/gridmenu/internal/slot"
	"github.com/ivlev/gridmenu/internal/surface"
	"github.com/ivlev/gridmenu/internal/system"
	"github.com/ivlev/gridmenu/internal/visual"
)

// Layout constants in pixels.
const (
	CellSize      = 36
	CellGap       = 2
	CaptionHeight = 24
	Padding       = 6
)

var (
	background = color.RGBA{R: 0xc6, G: 0xc6, B: 0xc6, A: 0xff}
	emptyCell  = color.RGBA{R: 0x8b, G: 0x8b, B: 0x8b, A: 0xff}
	labelColor = color.RGBA{A: 0xff}
)

// Bounds returns the size of a rendered preview.
func Bounds() image.Rectangle {
	w := 2*Padding + slot.Columns*CellSize + (slot.Columns-1)*CellGap
	h := 2*Padding + CaptionHeight + slot.Rows*CellSize + (slot.Rows-1)*CellGap
	return image.Rect(0, 0, w, h)
}

// CellRect returns the pixel rectangle of slot index.
func CellRect(index int) image.Rectangle {
	row, column := slot.Position(index)
	x := Padding + column*(CellSize+CellGap)
	y := Padding + CaptionHeight + row*(CellSize+CellGap)
	return image.Rect(x, y, x+CellSize, y+CellSize)
}

// Render draws snap into an image taken from the system image pool. Call
// Release when done with it.
func Render(snap surface.Snapshot) *image.RGBA {
	img := system.GetImage(Bounds())
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	drawCaption(img, snap.Caption)
	for index, s := range snap.Slots {
		drawCell(img, CellRect(index), s)
	}
	return img
}

// Release hands img back to the pool.
func Release(img *image.RGBA) {
	system.PutImage(img)
}

// Encode writes snap as PNG.
func Encode(w io.Writer, snap surface.Snapshot) error {
	img := Render(snap)
	defer Release(img)
	return png.Encode(w, img)
}

// WritePNG writes snap as a PNG file at path.
func WritePNG(path string, snap surface.Snapshot) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, snap); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// MaterialColor derives a stable display color from a material name.
func MaterialColor(m visual.Material) color.RGBA {
	if m == "" || m == visual.Air {
		return emptyCell
	}
	name := string(m)
	for _, c := range []struct {
		key string
		col visual.Color
	}{
		{"BLACK", visual.Black}, {"WHITE", visual.White}, {"RED", visual.Red},
		{"ORANGE", visual.Gold}, {"YELLOW", visual.Yellow}, {"GOLD", visual.Gold},
		{"LIME", visual.Green}, {"GREEN", visual.DarkGreen}, {"BLUE", visual.Blue},
		{"CYAN", visual.DarkAqua}, {"PURPLE", visual.DarkPurple}, {"GRAY", visual.Gray},
		{"DIAMOND", visual.Aqua},
	} {
		if strings.Contains(name, c.key) {
			return c.col.RGBA()
		}
	}
	h := fnv.New32a()
	h.Write([]byte(name))
	sum := h.Sum32()
	return color.RGBA{R: uint8(sum >> 16), G: uint8(sum >> 8), B: uint8(sum), A: 0xff}
}

func drawCell(img *image.RGBA, r image.Rectangle, s visual.Stack) {
	draw.Draw(img, r, image.NewUniform(MaterialColor(s.Material)), image.Point{}, draw.Src)
	if s.Empty() {
		return
	}
	label := string(s.Material)
	if len(label) > 4 {
		label = label[:4]
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(labelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(r.Min.X+2, r.Min.Y+13),
	}
	d.DrawString(label)
}

// drawCaption paints each styled segment in its own color. Bold is drawn
// twice one pixel apart, underline and strikethrough as lines.
func drawCaption(img *image.RGBA, caption string) {
	face := basicfont.Face7x13
	x := fixed.I(Padding)
	baseline := Padding + 15

	for _, seg := range visual.ParseStyled(caption) {
		col := labelColor
		if seg.Style.Color != 0 {
			col = seg.Style.Color.RGBA()
		}
		text := seg.Text
		if seg.Style.Obfuscated {
			text = strings.Repeat("#", len([]rune(text)))
		}

		d := &font.Drawer{Dst: img, Src: image.NewUniform(col), Face: face, Dot: fixed.Point26_6{X: x, Y: fixed.I(baseline)}}
		width := d.MeasureString(text)
		d.DrawString(text)
		if seg.Style.Bold {
			d.Dot = fixed.Point26_6{X: x + fixed.I(1), Y: fixed.I(baseline)}
			d.DrawString(text)
		}

		x0, x1 := x.Round(), (x + width).Round()
		if seg.Style.Underline {
			hline(img, x0, x1, baseline+2, col)
		}
		if seg.Style.Strikethrough {
			hline(img, x0, x1, baseline-4, col)
		}
		x += width
	}
}

func hline(img *image.RGBA, x0, x1, y int, col color.RGBA) {
	for x := x0; x < x1; x++ {
		img.SetRGBA(x, y, col)
	}
}
