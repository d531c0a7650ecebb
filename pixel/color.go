package pixel

import "image/color"

// Models for the framebuffer color types.
var (
	RGB565Model   color.Model = color.ModelFunc(rgb565Model)
	BGR565Model   color.Model = color.ModelFunc(bgr565Model)
	XRGB8888Model color.Model = color.ModelFunc(xrgb8888Model)
)

// RGB565 represents a 16-bit 5-6-5 RGB color, red in the high bits.
type RGB565 struct {
	// CRed, 5, CGreen, 6, CBlue, 5
	V uint16
}

func (c RGB565) RGBA() (r, g, b, a uint32) {
	return expand565(c.V>>11, c.V>>5, c.V)
}

func rgb565Model(c color.Color) color.Color {
	if _, ok := c.(RGB565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return RGB565{uint16(r&0xF800) | uint16(g&0xFC00)>>5 | uint16(b&0xF800)>>11}
}

// BGR565 represents a 16-bit 5-6-5 BGR color, blue in the high bits.
type BGR565 struct {
	// CBlue, 5, CGreen, 6, CRed, 5
	V uint16
}

func (c BGR565) RGBA() (r, g, b, a uint32) {
	return expand565(c.V, c.V>>5, c.V>>11)
}

func bgr565Model(c color.Color) color.Color {
	if _, ok := c.(BGR565); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return BGR565{uint16(b&0xF800) | uint16(g&0xFC00)>>5 | uint16(r&0xF800)>>11}
}

// expand565 widens 5-6-5 channel values (in the low bits of each argument) to
// 16 bits by duplicating the high bits into the low bits.
func expand565(r5, g6, b5 uint16) (r, g, b, a uint32) {
	red := uint32(r5&0x1F) << 3
	grn := uint32(g6&0x3F) << 2
	blu := uint32(b5&0x1F) << 3
	red |= red >> 5
	grn |= grn >> 6
	blu |= blu >> 5
	red |= red << 8
	grn |= grn << 8
	blu |= blu << 8
	return red, grn, blu, 0xffff
}

// XRGB8888 represents a 32-bit color with an ignored high byte.
type XRGB8888 struct {
	// CIgnore, 8, CRed, 8, CGreen, 8, CBlue, 8
	V uint32
}

func (c XRGB8888) RGBA() (r, g, b, a uint32) {
	r = c.V >> 16 & 0xff
	g = c.V >> 8 & 0xff
	b = c.V & 0xff
	return r | r<<8, g | g<<8, b | b<<8, 0xffff
}

func xrgb8888Model(c color.Color) color.Color {
	if _, ok := c.(XRGB8888); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	return XRGB8888{(r>>8)<<16 | (g>>8)<<8 | b>>8}
}
