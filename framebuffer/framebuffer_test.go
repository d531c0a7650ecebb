package framebuffer

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/colorspector/pixel"
)

func TestParseColorModel(t *testing.T) {
	tests := []struct {
		name string
		info varScreenInfo
		want color.Model
		err  error
	}{
		{
			name: "rgb565",
			info: varScreenInfo{
				BitsPerPixel: 16,
				Red:          bitField{Offset: 11, Length: 5},
				Green:        bitField{Offset: 5, Length: 6},
				Blue:         bitField{Offset: 0, Length: 5},
			},
			want: pixel.RGB565Model,
		},
		{
			name: "bgr565",
			info: varScreenInfo{
				BitsPerPixel: 16,
				Red:          bitField{Offset: 0, Length: 5},
				Green:        bitField{Offset: 5, Length: 6},
				Blue:         bitField{Offset: 11, Length: 5},
			},
			want: pixel.BGR565Model,
		},
		{
			name: "xrgb8888",
			info: varScreenInfo{
				BitsPerPixel: 32,
				Red:          bitField{Offset: 16, Length: 8},
				Green:        bitField{Offset: 8, Length: 8},
				Blue:         bitField{Offset: 0, Length: 8},
				Alpha:        bitField{Offset: 24, Length: 8},
			},
			want: pixel.XRGB8888Model,
		},
		{
			name: "xbgr8888",
			info: varScreenInfo{
				BitsPerPixel: 32,
				Red:          bitField{Offset: 0, Length: 8},
				Green:        bitField{Offset: 8, Length: 8},
				Blue:         bitField{Offset: 16, Length: 8},
			},
			err: ErrColorModel,
		},
		{
			name: "8-bit",
			info: varScreenInfo{BitsPerPixel: 8},
			err:  ErrColorModel,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			m, err := parseColorModel(&test.info)
			if !errors.Is(err, test.err) {
				it.Fatalf("expected error %v, got %v", test.err, err)
			}
			if m != test.want {
				it.Errorf("expected model %v, got %v", test.want, m)
			}
		})
	}
}

func TestFromBuffer(t *testing.T) {
	for _, model := range []color.Model{pixel.RGB565Model, pixel.BGR565Model, pixel.XRGB8888Model} {
		size := 2
		if model == pixel.XRGB8888Model {
			size = 4
		}
		// Rows are padded, like most hardware framebuffers.
		b := pixel.Buffer{
			Rect:   image.Rect(0, 0, 4, 3),
			Stride: 4*size + 8,
			Pix:    make([]byte, (4*size+8)*3),
		}
		fb, err := FromBuffer(b, model, binary.LittleEndian)
		if err != nil {
			t.Fatal(err)
		}
		c := color.RGBA{0xf8, 0xfc, 0xf8, 0xff}
		fb.Set(3, 2, c)
		if got, want := fb.At(3, 2), model.Convert(c); got != want {
			t.Errorf("%T: expected %v, got %v", want, want, got)
		}
		if r, g, b, _ := fb.At(0, 0).RGBA(); r|g|b != 0 {
			t.Errorf("%T: expected untouched pixel to be black", fb.ColorModel())
		}
		if err = fb.Close(); err != nil {
			t.Error(err)
		}
	}

	if _, err := FromBuffer(pixel.Buffer{}, color.RGBAModel, binary.LittleEndian); !errors.Is(err, ErrColorModel) {
		t.Errorf("expected %v, got %v", ErrColorModel, err)
	}
}

func TestReadOnly(t *testing.T) {
	im := pixel.NewRGB565Image(2, 2)
	fb := &FrameBuffer{Image: im, readOnly: true}
	fb.Set(1, 1, color.White)
	fb.Fill(color.White)
	for _, v := range im.Pix {
		if v != 0 {
			t.Fatalf("expected read-only framebuffer to be left untouched, got % x", im.Pix)
		}
	}
}
