package capture

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/godbus/dbus/v5"

	"github.com/BeatGlow/colorspector"
)

func TestImage(t *testing.T) {
	im := image.NewRGBA(image.Rect(10, 10, 20, 20))
	im.Set(12, 15, color.RGBA{0x12, 0x34, 0x56, 0xff})
	s := NewImage(im)

	tests := []struct {
		p    image.Point
		want colorspector.Sample
		err  error
	}{
		{image.Pt(12, 15), colorspector.Sample{R: 0x12, G: 0x34, B: 0x56}, nil},
		{image.Pt(10, 10), colorspector.Sample{}, nil},
		{image.Pt(0, 0), colorspector.Sample{}, ErrOutOfBounds},
		{image.Pt(20, 19), colorspector.Sample{}, ErrOutOfBounds},
	}
	for _, test := range tests {
		t.Run(test.p.String(), func(it *testing.T) {
			v, err := s.Sample(context.Background(), test.p)
			if !errors.Is(err, test.err) {
				it.Fatalf("expected error %v, got %v", test.err, err)
			}
			if v != test.want {
				it.Errorf("expected %v, got %v", test.want, v)
			}
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Sample(ctx, image.Pt(12, 15)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected %v, got %v", context.Canceled, err)
	}
}

func TestLoad(t *testing.T) {
	im := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	im.Set(3, 1, color.NRGBA{0xde, 0xad, 0xbe, 0xff})

	name := filepath.Join(t.TempDir(), "sample.png")
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	if err = png.Encode(f, im); err != nil {
		t.Fatal(err)
	}
	if err = f.Close(); err != nil {
		t.Fatal(err)
	}

	s, err := Load(name)
	if err != nil {
		t.Fatal(err)
	}
	v, err := s.Sample(context.Background(), image.Pt(3, 1))
	if err != nil {
		t.Fatal(err)
	}
	if want := (colorspector.Sample{R: 0xde, G: 0xad, B: 0xbe}); v != want {
		t.Errorf("expected %v, got %v", want, v)
	}

	if _, err = Load(filepath.Join(t.TempDir(), "missing.png")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected %v, got %v", os.ErrNotExist, err)
	}
}

func TestFixed(t *testing.T) {
	p, err := Fixed{X: 4, Y: 2}.Position(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if !p.Eq(image.Pt(4, 2)) {
		t.Errorf("expected (4,2), got %s", p)
	}
}

func TestOnDisplay(t *testing.T) {
	displays := []image.Rectangle{
		image.Rect(0, 0, 1920, 1080),
		image.Rect(1920, 0, 3840, 1080),
	}
	for p, want := range map[image.Point]bool{
		image.Pt(0, 0):       true,
		image.Pt(1919, 1079): true,
		image.Pt(1920, 0):    true,
		image.Pt(3840, 0):    false,
		image.Pt(-1, 10):     false,
		image.Pt(100, 1080):  false,
	} {
		if v := onDisplay(p, displays); v != want {
			t.Errorf("expected %s on display to be %t", p, want)
		}
	}
}

func TestDecodeZPixmap(t *testing.T) {
	tests := []struct {
		data  []byte
		order byte
		want  colorspector.Sample
		err   error
	}{
		{[]byte{0x56, 0x34, 0x12, 0x00}, xproto.ImageOrderLSBFirst, colorspector.Sample{R: 0x12, G: 0x34, B: 0x56}, nil},
		{[]byte{0x00, 0x12, 0x34, 0x56}, xproto.ImageOrderMSBFirst, colorspector.Sample{R: 0x12, G: 0x34, B: 0x56}, nil},
		{[]byte{0x12, 0x34}, xproto.ImageOrderLSBFirst, colorspector.Sample{}, ErrFormat},
	}
	for _, test := range tests {
		v, err := decodeZPixmap(test.data, test.order)
		if !errors.Is(err, test.err) {
			t.Fatalf("expected error %v, got %v", test.err, err)
		}
		if v != test.want {
			t.Errorf("% x: expected %v, got %v", test.data, test.want, v)
		}
	}
}

func TestRequestPath(t *testing.T) {
	if v := requestPath(":1.42", "colorspector_abc"); v != "/org/freedesktop/portal/desktop/request/1_42/colorspector_abc" {
		t.Errorf("unexpected request path %s", v)
	}
}

func TestParseResponse(t *testing.T) {
	rgb := func(r, g, b float64) map[string]dbus.Variant {
		return map[string]dbus.Variant{
			"color": dbus.MakeVariant([]interface{}{r, g, b}),
		}
	}
	tests := []struct {
		name string
		body []interface{}
		want colorspector.Sample
		err  error
	}{
		{"red", []interface{}{uint32(0), rgb(1, 0, 0)}, colorspector.Sample{R: 0xff}, nil},
		{"gray", []interface{}{uint32(0), rgb(0.5, 0.5, 0.5)}, colorspector.Sample{R: 0x80, G: 0x80, B: 0x80}, nil},
		{"clamped", []interface{}{uint32(0), rgb(1.5, -0.2, 0.2)}, colorspector.Sample{R: 0xff, G: 0x00, B: 0x33}, nil},
		{"cancelled", []interface{}{uint32(1), map[string]dbus.Variant{}}, colorspector.Sample{}, ErrCancelled},
		{"no color", []interface{}{uint32(0), map[string]dbus.Variant{}}, colorspector.Sample{}, ErrFormat},
		{"short", []interface{}{uint32(0)}, colorspector.Sample{}, ErrFormat},
		{"bad color", []interface{}{uint32(0), map[string]dbus.Variant{
			"color": dbus.MakeVariant("red"),
		}}, colorspector.Sample{}, ErrFormat},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			v, err := parseResponse(test.body)
			if !errors.Is(err, test.err) {
				it.Fatalf("expected error %v, got %v", test.err, err)
			}
			if v != test.want {
				it.Errorf("expected %v, got %v", test.want, v)
			}
		})
	}

	if _, err := parseResponse([]interface{}{uint32(2), map[string]dbus.Variant{}}); err == nil || errors.Is(err, ErrCancelled) {
		t.Errorf("expected a request failure, got %v", err)
	}
}
