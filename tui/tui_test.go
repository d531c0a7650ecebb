package tui

import (
	"context"
	"errors"
	"image"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/BeatGlow/colorspector"
	"github.com/BeatGlow/colorspector/capture"
	"github.com/BeatGlow/colorspector/picker"
)

var red = colorspector.Sample{R: 0xff}

// testSampler returns the color set last.
type testSampler struct {
	mu    sync.Mutex
	color colorspector.Sample
}

func (s *testSampler) set(c colorspector.Sample) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.color = c
}

func (s *testSampler) Sample(context.Context, image.Point) (colorspector.Sample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.color, nil
}

type testPlayer struct {
	plays int
}

func (p *testPlayer) play() { p.plays++ }

func newTestUI(t *testing.T, opts ...picker.Option) (*UI, *testSampler) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)

	sampler := &testSampler{color: red}
	return &UI{
		screen:      screen,
		picker:      picker.New(sampler, capture.Fixed{X: 1, Y: 2}, nil, opts...),
		log:         zap.NewNop(),
		historySize: picker.DefaultHistorySize,
		selected:    -1,
	}, sampler
}

// line returns the text on row y of the screen.
func line(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		r, _, _, _ := screen.GetContent(x, y)
		if r == 0 {
			r = ' '
		}
		b.WriteRune(r)
	}
	return strings.TrimRight(b.String(), " ")
}

func contents(screen tcell.Screen) string {
	_, h := screen.Size()
	lines := make([]string, h)
	for y := range lines {
		lines[y] = line(screen, y)
	}
	return strings.Join(lines, "\n")
}

func TestDraw(t *testing.T) {
	u, _ := newTestUI(t)
	if _, err := u.picker.Tick(context.Background()); err != nil {
		t.Fatal(err)
	}
	u.draw(u.picker.Snapshot())

	text := contents(u.screen)
	for _, want := range []string{"ColorSpector", "Red", "#FF0000", "255, 0  , 0", "COLOR HISTORY", "Detecting color at X:    1 Y:    2"} {
		if !strings.Contains(text, want) {
			t.Errorf("expected screen to contain %q:\n%s", want, text)
		}
	}
	if strings.Contains(text, "FROZEN") {
		t.Error("expected no freeze label")
	}

	_, _, style, _ := u.screen.GetContent(2, 2)
	if _, bg, _ := style.Decompose(); bg != tcell.NewRGBColor(0xff, 0, 0) {
		t.Errorf("expected red swatch, got %v", bg)
	}
}

func TestHandle(t *testing.T) {
	u, _ := newTestUI(t)
	if _, err := u.picker.Tick(context.Background()); err != nil {
		t.Fatal(err)
	}
	u.draw(u.picker.Snapshot())

	key := func(r rune) bool {
		return u.handle(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
	}

	t.Run("freeze", func(it *testing.T) {
		if !key('f') {
			it.Fatal("expected f not to quit")
		}
		if !u.picker.Frozen() {
			it.Error("expected picker to be frozen")
		}
		if s := u.picker.Snapshot(); len(s.History) != 1 || s.History[0] != red {
			it.Errorf("expected red in history, got %v", s.History)
		}
		u.handle(tcell.NewEventKey(tcell.KeyCtrlF, 0, tcell.ModCtrl))
		if u.picker.Frozen() {
			it.Error("expected Ctrl-F to unfreeze")
		}
	})

	t.Run("select", func(it *testing.T) {
		key('1')
		if !u.picker.Frozen() {
			it.Error("expected selecting history to freeze")
		}
		// Out of range entries are ignored.
		if !key('8') {
			it.Fatal("expected 8 not to quit")
		}
	})

	t.Run("copy", func(it *testing.T) {
		for _, test := range []struct {
			key  rune
			what string
		}{
			{'c', "name"},
			{'h', "hex"},
			{'r', "rgb"},
		} {
			key(test.key)
			_, h := u.screen.Size()
			if want, v := "Copied the color "+test.what+" to clipboard.", line(u.screen, h-1); !strings.Contains(v, want) {
				it.Errorf("%c: expected status %q, got %q", test.key, want, v)
			}
		}
	})

	t.Run("quit", func(it *testing.T) {
		if key('q') {
			it.Error("expected q to quit")
		}
		if u.handle(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)) {
			it.Error("expected Esc to quit")
		}
		if u.handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)) {
			it.Error("expected Ctrl-C to quit")
		}
	})
}

func TestRunCancelled(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	p := picker.New(capture.SamplerFunc(func(context.Context, image.Point) (colorspector.Sample, error) {
		return red, nil
	}), capture.Fixed{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := Run(ctx, p, WithScreen(screen)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected %v, got %v", context.Canceled, err)
	}
}

func TestHistorySize(t *testing.T) {
	const size = 12
	u, sampler := newTestUI(t, picker.WithHistorySize(size))
	u.historySize = size

	ctx := context.Background()
	for i := 0; i < size; i++ {
		sampler.set(colorspector.Sample{R: uint8(i * 20), G: 0x40, B: 0x80})
		if _, err := u.picker.Tick(ctx); err != nil {
			t.Fatal(err)
		}
		u.picker.ToggleFreeze()
		u.picker.ToggleFreeze()
	}
	u.update(u.picker.Snapshot())

	history := u.last.History
	if len(history) != size {
		t.Fatalf("expected %d history entries, got %d", size, len(history))
	}
	y := 3 + swatchHeight
	for i, want := range history {
		x := 2 + i*(historyWidth+1)
		_, _, style, _ := u.screen.GetContent(x, y+1)
		_, wantBg, _ := swatchStyle(want).Decompose()
		if _, bg, _ := style.Decompose(); bg != wantBg {
			t.Errorf("expected history swatch %d to be %s, got %v", i+1, want, bg)
		}
	}
	if v := line(u.screen, y+2); !strings.Contains(v, "12") {
		t.Errorf("expected label 12 in %q", v)
	}

	t.Run("arrows", func(it *testing.T) {
		u.handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
		if s := u.picker.Snapshot(); s.Result.Sample != history[size-1] {
			it.Errorf("expected the oldest entry %s, got %s", history[size-1], s.Result.Sample)
		}
		u.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
		if s := u.picker.Snapshot(); s.Result.Sample != history[0] {
			it.Errorf("expected to wrap around to %s, got %s", history[0], s.Result.Sample)
		}
		u.handle(tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone))
		if s := u.picker.Snapshot(); s.Result.Sample != history[1] {
			it.Errorf("expected %s, got %s", history[1], s.Result.Sample)
		}
	})

	t.Run("digit past the history", func(it *testing.T) {
		u2, _ := newTestUI(it)
		u2.handle(tcell.NewEventKey(tcell.KeyRune, '9', tcell.ModNone))
		if u2.picker.Frozen() {
			it.Error("expected an empty history entry not to be selected")
		}
	})
}

func TestBeepOnFreeze(t *testing.T) {
	u, _ := newTestUI(t)
	sound := new(testPlayer)
	u.sound = sound
	u.update(u.picker.Snapshot())

	// Frozen from outside the UI, as the GPIO button does.
	u.update(u.picker.ToggleFreeze())
	if sound.plays != 1 {
		t.Fatalf("expected 1 beep, got %d", sound.plays)
	}
	u.update(u.picker.Snapshot())
	if sound.plays != 1 {
		t.Errorf("expected no beep while staying frozen, got %d", sound.plays)
	}
	u.update(u.picker.ToggleFreeze())
	u.update(u.picker.ToggleFreeze())
	if sound.plays != 2 {
		t.Errorf("expected 2 beeps, got %d", sound.plays)
	}
}

func TestPumpStops(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatal(err)
	}
	if err := screen.PostEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)); err != nil {
		t.Fatal(err)
	}

	var (
		events  = make(chan tcell.Event) // nobody reads
		done    = make(chan struct{})
		stopped = make(chan struct{})
	)
	go func() {
		pump(screen, events, done)
		close(stopped)
	}()
	close(done)
	screen.Fini()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("expected pump to stop")
	}
}
