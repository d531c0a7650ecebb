package capture

import (
	"context"
	"fmt"
	"image"
	"os"

	"github.com/BeatGlow/colorspector"
)

// Image samples pixels from an image. The image is read on every call, so
// images backed by live memory, such as a framebuffer, are sampled live.
type Image struct {
	image.Image
}

// NewImage returns a Sampler for the image.
func NewImage(im image.Image) *Image {
	return &Image{Image: im}
}

// Load decodes an image file into a Sampler. Supported formats are PNG, JPEG,
// GIF, BMP, TIFF and WebP.
func Load(name string) (*Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	im, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("capture: decode %s: %w", name, err)
	}
	return NewImage(im), nil
}

func (i *Image) Sample(ctx context.Context, p image.Point) (colorspector.Sample, error) {
	if err := ctx.Err(); err != nil {
		return colorspector.Sample{}, err
	}
	if !p.In(i.Bounds()) {
		return colorspector.Sample{}, fmt.Errorf("%w: %s not in %s", ErrOutOfBounds, p, i.Bounds())
	}
	return colorspector.Model.Convert(i.At(p.X, p.Y)).(colorspector.Sample), nil
}
