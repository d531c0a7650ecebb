// Package panel renders the picker state as an image, for framebuffers and
// image files.
package panel

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/BeatGlow/colorspector"
	"github.com/BeatGlow/colorspector/picker"
)

// DefaultSize of a rendered panel.
var DefaultSize = image.Pt(555, 380)

// Theme colors.
type Theme struct {
	Background    color.Color
	Panel         color.Color
	Highlight     color.Color
	Text          color.Color
	TextSecondary color.Color
	Accent        color.Color
}

// DarkTheme is the default theme.
var DarkTheme = Theme{
	Background:    colorspector.Sample{R: 0x1e, G: 0x1e, B: 0x2e},
	Panel:         colorspector.Sample{R: 0x28, G: 0x28, B: 0x38},
	Highlight:     colorspector.Sample{R: 0x31, G: 0x31, B: 0x45},
	Text:          colorspector.Sample{R: 0xff, G: 0xff, B: 0xff},
	TextSecondary: colorspector.Sample{R: 0xa0, G: 0xa0, B: 0xc0},
	Accent:        colorspector.Sample{R: 0x7d, G: 0x56, B: 0xf4},
}

// Layout, in pixels.
const (
	margin        = 20
	titleSize     = 16
	labelSize     = 10
	valueSize     = 11
	statusSize    = 9
	statusHeight  = 24
	swatchRadius  = 60
	historySwatch = 32
	historyGap    = 4
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithTheme sets the theme.
func WithTheme(theme Theme) Option {
	return func(r *Renderer) {
		r.theme = theme
	}
}

// WithHistorySize sets the number of history swatches drawn.
func WithHistorySize(n int) Option {
	return func(r *Renderer) {
		if n > 0 {
			r.historySize = n
		}
	}
}

// Renderer draws picker snapshots.
type Renderer struct {
	regular     *truetype.Font
	bold        *truetype.Font
	mono        *truetype.Font
	theme       Theme
	historySize int
}

// New parses the fonts and returns a Renderer.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		theme:       DarkTheme,
		historySize: picker.DefaultHistorySize,
	}
	for _, f := range []struct {
		font **truetype.Font
		ttf  []byte
		name string
	}{
		{&r.regular, goregular.TTF, "Go Regular"},
		{&r.bold, gobold.TTF, "Go Bold"},
		{&r.mono, gomono.TTF, "Go Mono"},
	} {
		var err error
		if *f.font, err = freetype.ParseFont(f.ttf); err != nil {
			return nil, fmt.Errorf("panel: parse %s: %w", f.name, err)
		}
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Image renders the snapshot at the default size.
func (r *Renderer) Image(s picker.Snapshot) (*image.RGBA, error) {
	im := image.NewRGBA(image.Rectangle{Max: DefaultSize})
	if err := r.Render(im, s); err != nil {
		return nil, err
	}
	return im, nil
}

// SwatchCenter returns the center of the color preview within bounds.
func SwatchCenter(bounds image.Rectangle) image.Point {
	return bounds.Min.Add(image.Pt(margin+swatchRadius+10, margin+titleSize+15+swatchRadius+10))
}

// HistorySwatch returns the rectangle of history swatch i within bounds.
func HistorySwatch(bounds image.Rectangle, i int) image.Rectangle {
	var (
		x = bounds.Min.X + margin + i*(historySwatch+historyGap)
		y = bounds.Max.Y - statusHeight - margin - historySwatch
	)
	return image.Rect(x, y, x+historySwatch, y+historySwatch)
}

// Render draws the snapshot on dst.
func (r *Renderer) Render(dst draw.Image, s picker.Snapshot) error {
	var (
		b      = dst.Bounds()
		t      = r.theme
		sample = s.Result.Sample
	)

	box(dst, b, t.Background)
	content := image.Rect(b.Min.X+margin/2, b.Min.Y+margin/2, b.Max.X-margin/2, b.Max.Y-statusHeight-margin/2)
	roundedBox(dst, content, 6, t.Panel)

	// Title and freeze state.
	if err := r.text(dst, r.bold, titleSize, t.Accent, b.Min.X+margin, b.Min.Y+margin+titleSize, "ColorSpector"); err != nil {
		return err
	}
	if s.Frozen {
		label := image.Rect(b.Max.X-margin-90, b.Min.Y+margin, b.Max.X-margin, b.Min.Y+margin+titleSize+6)
		roundedBox(dst, label, 4, t.Accent)
		if err := r.text(dst, r.bold, labelSize, t.Text, label.Min.X+22, label.Max.Y-7, "FROZEN"); err != nil {
			return err
		}
	}

	// Color preview.
	center := SwatchCenter(b)
	disc(dst, center, swatchRadius+2, t.Highlight)
	disc(dst, center, swatchRadius, sample)
	if err := r.text(dst, r.bold, labelSize, t.TextSecondary, center.X-40, center.Y+swatchRadius+22, "COLOR PREVIEW"); err != nil {
		return err
	}

	// Color information.
	var (
		x = center.X + swatchRadius + 30
		y = center.Y - swatchRadius + 10
	)
	for _, row := range []struct {
		label string
		value string
	}{
		{"COLOR NAME", s.Result.Title()},
		{"HEX CODE", s.Result.Hex},
		{"RGB VALUES", fmt.Sprintf("%-3d, %-3d, %-3d", sample.R, sample.G, sample.B)},
	} {
		if err := r.text(dst, r.bold, labelSize, t.TextSecondary, x, y, row.label); err != nil {
			return err
		}
		if err := r.text(dst, r.mono, valueSize, t.Text, x, y+valueSize+8, row.value); err != nil {
			return err
		}
		y += 2*valueSize + 22
	}

	// History.
	first := HistorySwatch(b, 0)
	if err := r.text(dst, r.bold, labelSize, t.TextSecondary, first.Min.X, first.Min.Y-8, "COLOR HISTORY"); err != nil {
		return err
	}
	for i := 0; i < r.historySize; i++ {
		c := t.Highlight
		if i < len(s.History) {
			c = s.History[i]
		}
		box(dst, HistorySwatch(b, i), c)
	}

	// Status bar.
	bar := image.Rect(b.Min.X, b.Max.Y-statusHeight, b.Max.X, b.Max.Y)
	box(dst, bar, t.Background)
	return r.text(dst, r.regular, statusSize, t.Text, bar.Min.X+10, bar.Max.Y-8, s.Status)
}

func (r *Renderer) text(dst draw.Image, f *truetype.Font, size float64, c color.Color, x, y int, s string) error {
	ctx := freetype.NewContext()
	ctx.SetDPI(96)
	ctx.SetFont(f)
	ctx.SetFontSize(size)
	ctx.SetHinting(font.HintingFull)
	ctx.SetClip(dst.Bounds())
	ctx.SetDst(dst)
	ctx.SetSrc(image.NewUniform(c))
	if _, err := ctx.DrawString(s, freetype.Pt(x, y)); err != nil {
		return fmt.Errorf("panel: draw %q: %w", s, err)
	}
	return nil
}
