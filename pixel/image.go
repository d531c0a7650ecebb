package pixel

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/draw"
)

type Image interface {
	draw.Image

	// Clear the image.
	Clear()

	// Fill the image with a single color.
	Fill(color.Color)
}

// Buffer holds the pixel values and is a container that is used by all image formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

// PixOffset returns the index of the first byte of the pixel at (x, y), for
// pixels that are size bytes wide.
func (p *Buffer) PixOffset(x, y, size int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*size
}

func makeBuffer(w, h, stride int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, stride*h),
		Stride: stride,
	}
}

// RGB565Image is a 16-bit per pixel image, red in the high bits.
type RGB565Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewRGB565Image(w, h int) *RGB565Image {
	return &RGB565Image{
		Buffer: makeBuffer(w, h, w*2),
		Order:  binary.LittleEndian,
	}
}

func (p *RGB565Image) ColorModel() color.Model {
	return RGB565Model
}

func (p *RGB565Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return RGB565{p.Order.Uint16(p.Pix[p.PixOffset(x, y, 2):])}
}

func (p *RGB565Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Order.PutUint16(p.Pix[p.PixOffset(x, y, 2):], rgb565Model(c).(RGB565).V)
}

func (p *RGB565Image) Fill(c color.Color) {
	fill16(p.Pix, p.Order, rgb565Model(c).(RGB565).V)
}

// BGR565Image is a 16-bit per pixel image, blue in the high bits.
type BGR565Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewBGR565Image(w, h int) *BGR565Image {
	return &BGR565Image{
		Buffer: makeBuffer(w, h, w*2),
		Order:  binary.LittleEndian,
	}
}

func (p *BGR565Image) ColorModel() color.Model {
	return BGR565Model
}

func (p *BGR565Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return BGR565{p.Order.Uint16(p.Pix[p.PixOffset(x, y, 2):])}
}

func (p *BGR565Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Order.PutUint16(p.Pix[p.PixOffset(x, y, 2):], bgr565Model(c).(BGR565).V)
}

func (p *BGR565Image) Fill(c color.Color) {
	fill16(p.Pix, p.Order, bgr565Model(c).(BGR565).V)
}

// XRGB8888Image is a 32-bit per pixel image with an unused high byte.
type XRGB8888Image struct {
	Buffer
	Order binary.ByteOrder
}

func NewXRGB8888Image(w, h int) *XRGB8888Image {
	return &XRGB8888Image{
		Buffer: makeBuffer(w, h, w*4),
		Order:  binary.LittleEndian,
	}
}

func (p *XRGB8888Image) ColorModel() color.Model {
	return XRGB8888Model
}

func (p *XRGB8888Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return XRGB8888{p.Order.Uint32(p.Pix[p.PixOffset(x, y, 4):]) & 0xffffff}
}

func (p *XRGB8888Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Order.PutUint32(p.Pix[p.PixOffset(x, y, 4):], xrgb8888Model(c).(XRGB8888).V)
}

func (p *XRGB8888Image) Fill(c color.Color) {
	var (
		value = xrgb8888Model(c).(XRGB8888).V
		bytes = make([]byte, 4)
	)
	p.Order.PutUint32(bytes, value)
	for i, l := 0, len(p.Pix); i+4 <= l; i += 4 {
		copy(p.Pix[i:], bytes)
	}
}

func fill16(pix []byte, order binary.ByteOrder, value uint16) {
	bytes := make([]byte, 2)
	order.PutUint16(bytes, value)
	for i, l := 0, len(pix); i+2 <= l; i += 2 {
		copy(pix[i:], bytes)
	}
}

// Interface checks.
var (
	_ Image = (*RGB565Image)(nil)
	_ Image = (*BGR565Image)(nil)
	_ Image = (*XRGB8888Image)(nil)
)
