package capture

import (
	"context"
	"fmt"
	"image"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"

	"github.com/BeatGlow/colorspector"
)

// X11 samples pixels and tracks the pointer through the X11 protocol. It reads
// from the root window of the default screen.
type X11 struct {
	mu     sync.Mutex
	conn   *xgb.Conn
	root   xproto.Window
	bounds image.Rectangle
	order  byte
}

// OpenX11 connects to the X server named by display, or $DISPLAY if empty.
func OpenX11(display string) (*X11, error) {
	conn, err := xgb.NewConnDisplay(display)
	if err != nil {
		return nil, fmt.Errorf("capture: connect to X server: %w", err)
	}

	setup := xproto.Setup(conn)
	screen := setup.DefaultScreen(conn)
	if screen.RootDepth != 24 && screen.RootDepth != 32 {
		conn.Close()
		return nil, fmt.Errorf("%w: root window depth %d", ErrFormat, screen.RootDepth)
	}

	return &X11{
		conn:   conn,
		root:   screen.Root,
		bounds: image.Rect(0, 0, int(screen.WidthInPixels), int(screen.HeightInPixels)),
		order:  setup.ImageByteOrder,
	}, nil
}

// Bounds of the root window.
func (x *X11) Bounds() image.Rectangle {
	return x.bounds
}

// Close the connection to the X server.
func (x *X11) Close() error {
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.conn != nil {
		x.conn.Close()
		x.conn = nil
	}
	return nil
}

func (x *X11) Position(ctx context.Context) (image.Point, error) {
	if err := ctx.Err(); err != nil {
		return image.Point{}, err
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.conn == nil {
		return image.Point{}, ErrNotSupported
	}

	reply, err := xproto.QueryPointer(x.conn, x.root).Reply()
	if err != nil {
		return image.Point{}, fmt.Errorf("capture: query pointer: %w", err)
	}
	return image.Pt(int(reply.RootX), int(reply.RootY)), nil
}

func (x *X11) Sample(ctx context.Context, p image.Point) (colorspector.Sample, error) {
	if err := ctx.Err(); err != nil {
		return colorspector.Sample{}, err
	}
	if !p.In(x.bounds) {
		return colorspector.Sample{}, fmt.Errorf("%w: %s not in %s", ErrOutOfBounds, p, x.bounds)
	}
	x.mu.Lock()
	defer x.mu.Unlock()
	if x.conn == nil {
		return colorspector.Sample{}, ErrNotSupported
	}

	reply, err := xproto.GetImage(x.conn, xproto.ImageFormatZPixmap, xproto.Drawable(x.root),
		int16(p.X), int16(p.Y), 1, 1, 0xffffffff).Reply()
	if err != nil {
		return colorspector.Sample{}, fmt.Errorf("capture: get image at %s: %w", p, err)
	}
	return decodeZPixmap(reply.Data, x.order)
}

// decodeZPixmap decodes a single 32 bits per pixel ZPixmap pixel of a 24 or 32
// bit deep TrueColor visual.
func decodeZPixmap(data []byte, order byte) (colorspector.Sample, error) {
	if len(data) < 4 {
		return colorspector.Sample{}, fmt.Errorf("%w: %d bytes per pixel", ErrFormat, len(data))
	}
	if order == xproto.ImageOrderMSBFirst {
		// X, R, G, B
		return colorspector.Sample{R: data[1], G: data[2], B: data[3]}, nil
	}
	// B, G, R, X
	return colorspector.Sample{R: data[2], G: data[1], B: data[0]}, nil
}
