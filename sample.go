package colorspector

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Errors
var (
	ErrInvalidInput = errors.New("colorspector: invalid input")
	ErrEmptyPalette = errors.New("colorspector: empty palette")
)

// Model converts any color to a Sample.
var Model color.Model = color.ModelFunc(sampleModel)

// Sample is an opaque 24-bit RGB color, as read from a single screen pixel.
type Sample struct {
	R, G, B uint8
}

// NewSample returns the Sample for the given channel values. It fails with
// ErrInvalidInput if any channel is outside [0,255].
func NewSample(r, g, b int) (Sample, error) {
	for _, c := range []struct {
		name  string
		value int
	}{
		{"red", r},
		{"green", g},
		{"blue", b},
	} {
		if c.value < 0 || c.value > 0xff {
			return Sample{}, fmt.Errorf("%w: %s channel %d out of range [0,255]", ErrInvalidInput, c.name, c.value)
		}
	}
	return Sample{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func (s Sample) RGBA() (r, g, b, a uint32) {
	r = uint32(s.R)
	r |= r << 8
	g = uint32(s.G)
	g |= g << 8
	b = uint32(s.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// Hex returns the #RRGGBB representation with uppercase digits.
func (s Sample) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", s.R, s.G, s.B)
}

// RGB returns the channels as "r, g, b".
func (s Sample) RGB() string {
	return fmt.Sprintf("%d, %d, %d", s.R, s.G, s.B)
}

func (s Sample) String() string {
	return s.Hex()
}

// ParseHex parses #RRGGBB, RRGGBB, #RGB or RGB (case insensitive).
func ParseHex(s string) (Sample, error) {
	v := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(v) {
	case 3:
		// Expand the shorthand form, #abc is #aabbcc.
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	case 6:
	default:
		return Sample{}, fmt.Errorf("%w: hex color %q", ErrInvalidInput, s)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return Sample{}, fmt.Errorf("%w: hex color %q", ErrInvalidInput, s)
	}
	return Sample{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n)}, nil
}

func sampleModel(c color.Color) color.Color {
	if _, ok := c.(Sample); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return Sample{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// distance is the squared euclidean distance in RGB space.
func (s Sample) distance(o Sample) int {
	dr := int(s.R) - int(o.R)
	dg := int(s.G) - int(o.G)
	db := int(s.B) - int(o.B)
	return dr*dr + dg*dg + db*db
}
