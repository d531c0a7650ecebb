package main

import (
	"errors"
	"flag"
	"fmt"
	"image"

	"go.uber.org/zap"

	"github.com/BeatGlow/colorspector/capture"
	"github.com/BeatGlow/colorspector/framebuffer"
)

// Sources that can be sampled.
const (
	sourceScreenshot = "screenshot"
	sourceX11        = "x11"
	sourcePortal     = "portal"
	sourceFB         = "fb"
	sourceFile       = "file"
)

// source describes where colors are read from.
type source struct {
	kind    string
	display string
	device  string
	file    string
	x, y    int
}

func (s *source) flags(fs *flag.FlagSet) {
	fs.StringVar(&s.kind, "source", sourceScreenshot, "Color source (screenshot, x11, portal, fb or file)")
	fs.StringVar(&s.display, "display", "", "X11 display (default: $DISPLAY)")
	fs.StringVar(&s.device, "fb", "/dev/fb0", "Framebuffer device, for the fb source")
	fs.StringVar(&s.file, "file", "", "Image file, for the file source")
	fs.IntVar(&s.x, "x", -1, "X coordinate to sample (default: follow the pointer)")
	fs.IntVar(&s.y, "y", -1, "Y coordinate to sample (default: follow the pointer)")
}

// fixed reports whether a position was given on the command line.
func (s *source) fixed() bool {
	return s.x >= 0 && s.y >= 0
}

type opened struct {
	sampler capture.Sampler
	pointer capture.Pointer
	closers []func() error
}

func (o *opened) Close() error {
	var errs []error
	for _, c := range o.closers {
		errs = append(errs, c())
	}
	return errors.Join(errs...)
}

// open the sampler and the pointer for the source. Sources without a pointer
// sample at the given position, or at the origin.
func (s *source) open(log *zap.Logger) (*opened, error) {
	var (
		o   = new(opened)
		pos = capture.Fixed(image.Pt(max(s.x, 0), max(s.y, 0)))
	)
	switch s.kind {
	case sourceScreenshot:
		o.sampler = capture.Screenshot{}
		if s.fixed() {
			o.pointer = pos
			break
		}
		x, err := capture.OpenX11(s.display)
		if err != nil {
			log.Warn("no pointer tracking, sampling at a fixed position",
				zap.Error(err),
				zap.Stringer("position", image.Point(pos)))
			o.pointer = pos
			break
		}
		o.pointer = x
		o.closers = append(o.closers, x.Close)

	case sourceX11:
		x, err := capture.OpenX11(s.display)
		if err != nil {
			return nil, err
		}
		o.sampler, o.pointer = x, x
		if s.fixed() {
			o.pointer = pos
		}
		o.closers = append(o.closers, x.Close)

	case sourcePortal:
		p, err := capture.OpenPortal()
		if err != nil {
			return nil, err
		}
		// The user picks the position in the portal dialog.
		o.sampler, o.pointer = p, pos
		o.closers = append(o.closers, p.Close)

	case sourceFB:
		fb, err := framebuffer.OpenReadOnly(s.device)
		if err != nil {
			return nil, err
		}
		log.Debug("opened framebuffer", zap.Stringer("framebuffer", fb))
		o.sampler, o.pointer = capture.NewImage(fb), pos
		o.closers = append(o.closers, fb.Close)

	case sourceFile:
		if s.file == "" {
			return nil, errors.New("the file source needs -file")
		}
		im, err := capture.Load(s.file)
		if err != nil {
			return nil, err
		}
		o.sampler, o.pointer = im, pos

	default:
		return nil, fmt.Errorf("unsupported source %q", s.kind)
	}
	return o, nil
}
