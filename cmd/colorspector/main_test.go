package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BeatGlow/colorspector"
	"github.com/BeatGlow/colorspector/capture"
	"github.com/BeatGlow/colorspector/panel"
)

func TestRunName(t *testing.T) {
	tests := []struct {
		args []string
		want string
		err  error
	}{
		{[]string{"255", "0", "0"}, "Red\t#FF0000\t255, 0, 0\n", nil},
		{[]string{"240", "248", "255"}, "Aliceblue\t#F0F8FF\t240, 248, 255\n", nil},
		{[]string{"256", "0", "0"}, "", colorspector.ErrInvalidInput},
		{[]string{"red", "0", "0"}, "", colorspector.ErrInvalidInput},
	}
	for _, test := range tests {
		t.Run(strings.Join(test.args, ","), func(it *testing.T) {
			var out bytes.Buffer
			err := runName(&out, colorspector.DefaultNamer, test.args)
			if test.err != nil {
				if !errors.Is(err, test.err) {
					it.Errorf("expected %v, got %v", test.err, err)
				}
				return
			}
			if err != nil {
				it.Fatal(err)
			}
			if v := out.String(); v != test.want {
				it.Errorf("expected %q, got %q", test.want, v)
			}
		})
	}

	if err := runName(new(bytes.Buffer), colorspector.DefaultNamer, []string{"1", "2"}); err == nil {
		t.Error("expected usage error")
	}
}

func TestRunHex(t *testing.T) {
	var out bytes.Buffer
	if err := runHex(&out, colorspector.DefaultNamer, []string{"#7D56F4"}); err != nil {
		t.Fatal(err)
	}
	if v := out.String(); !strings.HasSuffix(v, "\t#7D56F4\t125, 86, 244\n") {
		t.Errorf("unexpected output %q", v)
	}
	if err := runHex(&out, colorspector.DefaultNamer, []string{"#GGGGGG"}); !errors.Is(err, colorspector.ErrInvalidInput) {
		t.Errorf("expected %v, got %v", colorspector.ErrInvalidInput, err)
	}
}

func TestRunPalette(t *testing.T) {
	var out bytes.Buffer
	if err := runPalette(&out, colorspector.DefaultNamer); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != len(colorspector.CSS) {
		t.Fatalf("expected %d lines, got %d", len(colorspector.CSS), len(lines))
	}
	if fields := strings.Fields(lines[0]); len(fields) < 2 || fields[0] != "aliceblue" || fields[1] != "#F0F8FF" {
		t.Errorf("unexpected first line %q", lines[0])
	}
}

func TestSourceFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.png")
	im := image.NewRGBA(image.Rect(0, 0, 4, 4))
	im.Set(2, 3, color.RGBA{R: 0x7d, G: 0x56, B: 0xf4, A: 0xff})
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

	var out bytes.Buffer
	if err = runPick(context.Background(), &out, zap.NewNop(), colorspector.DefaultNamer,
		[]string{"-source", "file", "-file", name, "-x", "2", "-y", "3"}); err != nil {
		t.Fatal(err)
	}
	if v := out.String(); !strings.Contains(v, "#7D56F4") {
		t.Errorf("expected #7D56F4, got %q", v)
	}

	err = runPick(context.Background(), &out, zap.NewNop(), colorspector.DefaultNamer,
		[]string{"-source", "file", "-file", name, "-x", "9", "-y", "9"})
	if !errors.Is(err, capture.ErrOutOfBounds) {
		t.Errorf("expected %v, got %v", capture.ErrOutOfBounds, err)
	}
}

func TestSourceErrors(t *testing.T) {
	for _, s := range []source{
		{kind: "scanner"},
		{kind: sourceFile},
	} {
		if _, err := s.open(zap.NewNop()); err == nil {
			t.Errorf("%s: expected error", s.kind)
		}
	}
}

func TestPollingRejectsPortal(t *testing.T) {
	tests := []struct {
		name string
		run  func(context.Context, *zap.Logger, *colorspector.Namer, []string) error
		args []string
	}{
		{"watch", runWatch, []string{"-source", "portal"}},
		{"panel", runPanel, []string{"-source", "portal", "-target", "/dev/fb1"}},
	}
	for _, test := range tests {
		t.Run(test.name, func(it *testing.T) {
			if err := test.run(context.Background(), zap.NewNop(), colorspector.DefaultNamer, test.args); !errors.Is(err, errPollPortal) {
				it.Errorf("expected %v, got %v", errPollPortal, err)
			}
		})
	}
}

func TestPickerFlags(t *testing.T) {
	name := filepath.Join(t.TempDir(), "test.png")
	f, err := os.Create(name)
	if err != nil {
		t.Fatal(err)
	}
	if err = png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	if err = f.Close(); err != nil {
		t.Fatal(err)
	}

	var (
		fs     = flag.NewFlagSet("test", flag.ContinueOnError)
		config pickerFlags
	)
	config.flags(fs)
	if err = fs.Parse([]string{"-source", "file", "-file", name, "-history", "12"}); err != nil {
		t.Fatal(err)
	}
	if config.history != 12 {
		t.Fatalf("expected history 12, got %d", config.history)
	}

	_, o, err := config.open(zap.NewNop(), colorspector.DefaultNamer)
	if err != nil {
		t.Fatal(err)
	}
	_ = o.Close()

	// The panel draws a slot for every history entry.
	out := filepath.Join(t.TempDir(), "panel.png")
	if err = runPanel(context.Background(), zap.NewNop(), colorspector.DefaultNamer,
		[]string{"-source", "file", "-file", name, "-history", "12", "-o", out}); err != nil {
		t.Fatal(err)
	}
	if f, err = os.Open(out); err != nil {
		t.Fatal(err)
	}
	im, err := png.Decode(f)
	_ = f.Close()
	if err != nil {
		t.Fatal(err)
	}
	c := panel.HistorySwatch(im.Bounds(), 11)
	mid := c.Min.Add(c.Size().Div(2))
	if v, want := colorspector.Model.Convert(im.At(mid.X, mid.Y)), colorspector.Model.Convert(panel.DarkTheme.Highlight); v != want {
		t.Errorf("expected an empty 12th history slot %s, got %s", want, v)
	}

	config.history = 0
	if _, _, err = config.open(zap.NewNop(), colorspector.DefaultNamer); err == nil {
		t.Error("expected an error for history size 0")
	}
}

// syncCounter is a log sink counting flushes.
type syncCounter struct {
	bytes.Buffer
	syncs int
}

func (s *syncCounter) Sync() error {
	s.syncs++
	return nil
}

func TestFatalSyncsLog(t *testing.T) {
	sink := new(syncCounter)
	logger = zap.New(zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), sink, zap.DebugLevel))
	defer func() { logger = zap.NewNop() }()

	var code int
	exit = func(c int) { code = c }
	defer func() { exit = os.Exit }()

	logger.Error("last words")
	fatal(errors.New("boom"))
	if code != 1 {
		t.Errorf("expected exit code 1, got %d", code)
	}
	if sink.syncs == 0 {
		t.Error("expected the log to be synced before exit")
	}
	if !strings.Contains(sink.String(), "last words") {
		t.Error("expected the log message to be written")
	}
}
