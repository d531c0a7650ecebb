// Package framebuffer provides access to the operating system's native framebuffer
//
// This requires framebuffer device support in the operating system. The framebuffer
// can be opened with the [Open] call, after which its pixels can be sampled like
// a regular image and drawn on like a regular draw.Image.
package framebuffer

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image/color"

	"github.com/BeatGlow/colorspector/pixel"
)

// Errors
var (
	ErrNotSupported = errors.New("framebuffer: not supported")
	ErrColorModel   = errors.New("framebuffer: unsupported color model")
)

// FrameBuffer is a mapped framebuffer device.
type FrameBuffer struct {
	pixel.Image
	name     string
	readOnly bool
	close    func() error
}

// FromBuffer wraps pixel memory laid out in the given color model.
func FromBuffer(b pixel.Buffer, model color.Model, order binary.ByteOrder) (*FrameBuffer, error) {
	im, err := newImage(b, model, order)
	if err != nil {
		return nil, err
	}
	return &FrameBuffer{
		Image: im,
		name:  "memory",
	}, nil
}

func newImage(b pixel.Buffer, model color.Model, order binary.ByteOrder) (pixel.Image, error) {
	switch model {
	case pixel.RGB565Model:
		return &pixel.RGB565Image{Buffer: b, Order: order}, nil
	case pixel.BGR565Model:
		return &pixel.BGR565Image{Buffer: b, Order: order}, nil
	case pixel.XRGB8888Model:
		return &pixel.XRGB8888Image{Buffer: b, Order: order}, nil
	default:
		return nil, ErrColorModel
	}
}

func (fb *FrameBuffer) String() string {
	return fmt.Sprintf("framebuffer %s (%s)", fb.name, fb.Bounds().Size())
}

// Set the pixel color at (x, y). This is a no-op on read-only framebuffers.
func (fb *FrameBuffer) Set(x, y int, c color.Color) {
	if fb.readOnly {
		return
	}
	fb.Image.Set(x, y, c)
}

// Fill the framebuffer with a single color.
func (fb *FrameBuffer) Fill(c color.Color) {
	if fb.readOnly {
		return
	}
	fb.Image.Fill(c)
}

// Clear the framebuffer.
func (fb *FrameBuffer) Clear() {
	if fb.readOnly {
		return
	}
	fb.Image.Clear()
}

// Close the framebuffer device.
func (fb *FrameBuffer) Close() error {
	if fb.close == nil {
		return nil
	}
	err := fb.close()
	fb.close = nil
	return err
}

// bitField describes the position of a color channel in a pixel.
type bitField struct {
	Offset   uint32 // Beginning of bitfield
	Length   uint32 // Length of bitfield
	MsbRight uint32 // != 0 : Most significant bit is right
}

// varScreenInfo contains device independent changeable information about a frame buffer device and a specific video mode.
type varScreenInfo struct {
	Xres                    uint32
	Yres                    uint32
	XresVirtual             uint32
	YresVirtual             uint32
	Xoffset                 uint32
	Yoffset                 uint32
	BitsPerPixel            uint32
	Grayscale               uint32
	Red, Green, Blue, Alpha bitField
	Nonstd                  uint32
	Activate                uint32
	Height                  uint32
	Width                   uint32
	AccelFlags              uint32
	Pixclock                uint32
	LeftMargin              uint32
	RightMargin             uint32
	UpperMargin             uint32
	LowerMargin             uint32
	HsyncLen                uint32
	VsyncLen                uint32
	Sync                    uint32
	Vmode                   uint32
	Rotate                  uint32
	Colorspace              uint32
	Reserved                [4]uint32
}

func (info *varScreenInfo) is(red, green, blue bitField) bool {
	return info.Red.Offset == red.Offset && info.Red.Length == red.Length &&
		info.Green.Offset == green.Offset && info.Green.Length == green.Length &&
		info.Blue.Offset == blue.Offset && info.Blue.Length == blue.Length
}

func parseColorModel(info *varScreenInfo) (color.Model, error) {
	if info == nil {
		return nil, errors.New("framebuffer: invalid screen info")
	}

	switch info.BitsPerPixel {
	case 16:
		switch {
		case info.is(bitField{Offset: 11, Length: 5}, bitField{Offset: 5, Length: 6}, bitField{Offset: 0, Length: 5}):
			return pixel.RGB565Model, nil
		case info.is(bitField{Offset: 0, Length: 5}, bitField{Offset: 5, Length: 6}, bitField{Offset: 11, Length: 5}):
			return pixel.BGR565Model, nil
		}

	case 32:
		if info.is(bitField{Offset: 16, Length: 8}, bitField{Offset: 8, Length: 8}, bitField{Offset: 0, Length: 8}) {
			return pixel.XRGB8888Model, nil
		}
	}

	return nil, fmt.Errorf("%w: %d bits per pixel, red %d@%d, green %d@%d, blue %d@%d", ErrColorModel,
		info.BitsPerPixel,
		info.Red.Length, info.Red.Offset,
		info.Green.Length, info.Green.Offset,
		info.Blue.Length, info.Blue.Offset)
}
