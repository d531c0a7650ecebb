// Package capture reads pixel colors and pointer positions from the desktop.
//
// A [Sampler] returns the color of a single screen pixel, a [Pointer] returns
// the position of the mouse pointer. Implementations are backed by
// screenshots ([Screenshot]), the X11 protocol ([X11]), the XDG desktop portal
// ([Portal]) or any image, including a framebuffer ([Image]).
package capture

import (
	"context"
	"errors"
	"image"

	"github.com/BeatGlow/colorspector"
)

// Errors
var (
	ErrOutOfBounds  = errors.New("capture: point out of bounds")
	ErrCancelled    = errors.New("capture: cancelled by user")
	ErrNotSupported = errors.New("capture: not supported")
	ErrFormat       = errors.New("capture: unsupported pixel format")
)

// Sampler reads the color of the pixel at a point.
type Sampler interface {
	Sample(ctx context.Context, p image.Point) (colorspector.Sample, error)
}

// Pointer reports the position of the mouse pointer.
type Pointer interface {
	Position(ctx context.Context) (image.Point, error)
}

// SamplerFunc is an adapter to use ordinary functions as a Sampler.
type SamplerFunc func(ctx context.Context, p image.Point) (colorspector.Sample, error)

func (f SamplerFunc) Sample(ctx context.Context, p image.Point) (colorspector.Sample, error) {
	return f(ctx, p)
}

// Fixed is a Pointer that always reports the same position.
type Fixed image.Point

func (f Fixed) Position(ctx context.Context) (image.Point, error) {
	if err := ctx.Err(); err != nil {
		return image.Point{}, err
	}
	return image.Point(f), nil
}

// Interface checks.
var (
	_ Sampler = (*Image)(nil)
	_ Sampler = (*Screenshot)(nil)
	_ Sampler = (*X11)(nil)
	_ Sampler = (*Portal)(nil)
	_ Sampler = SamplerFunc(nil)
	_ Pointer = (*X11)(nil)
	_ Pointer = Fixed{}
)
