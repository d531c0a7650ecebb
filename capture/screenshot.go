package capture

import (
	"context"
	"fmt"
	"image"

	"github.com/kbinani/screenshot"

	"github.com/BeatGlow/colorspector"
)

// Screenshot samples pixels by capturing a 1×1 screenshot at the point. It
// works on Windows, macOS and X11 desktops.
type Screenshot struct{}

// Displays returns the bounds of all active displays.
func (Screenshot) Displays() []image.Rectangle {
	n := screenshot.NumActiveDisplays()
	displays := make([]image.Rectangle, 0, n)
	for i := 0; i < n; i++ {
		displays = append(displays, screenshot.GetDisplayBounds(i))
	}
	return displays
}

func (s Screenshot) Sample(ctx context.Context, p image.Point) (colorspector.Sample, error) {
	if err := ctx.Err(); err != nil {
		return colorspector.Sample{}, err
	}
	if !onDisplay(p, s.Displays()) {
		return colorspector.Sample{}, fmt.Errorf("%w: %s is not on any display", ErrOutOfBounds, p)
	}

	im, err := screenshot.CaptureRect(image.Rectangle{Min: p, Max: p.Add(image.Pt(1, 1))})
	if err != nil {
		return colorspector.Sample{}, fmt.Errorf("capture: screenshot at %s: %w", p, err)
	}
	b := im.Bounds()
	return colorspector.Model.Convert(im.At(b.Min.X, b.Min.Y)).(colorspector.Sample), nil
}

func onDisplay(p image.Point, displays []image.Rectangle) bool {
	for _, r := range displays {
		if p.In(r) {
			return true
		}
	}
	return false
}
