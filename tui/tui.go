// Package tui is a terminal front-end for the color picker.
package tui

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/BeatGlow/colorspector"
	"github.com/BeatGlow/colorspector/picker"
)

// Option configures the UI.
type Option func(*UI)

// WithScreen uses the given screen instead of the terminal.
func WithScreen(screen tcell.Screen) Option {
	return func(u *UI) {
		u.screen = screen
	}
}

// WithLogger sets the logger.
func WithLogger(log *zap.Logger) Option {
	return func(u *UI) {
		if log != nil {
			u.log = log
		}
	}
}

// WithBeep plays a short tone whenever the picker freezes, whatever froze it.
func WithBeep() Option {
	return func(u *UI) {
		u.beep = true
	}
}

// WithHistorySize sets the number of history slots drawn. It should match the
// picker's history size.
func WithHistorySize(n int) Option {
	return func(u *UI) {
		if n > 0 {
			u.historySize = n
		}
	}
}

type player interface {
	play()
}

// UI draws the picker state on a terminal screen.
type UI struct {
	screen      tcell.Screen
	picker      *picker.Picker
	log         *zap.Logger
	beep        bool
	sound       player
	historySize int
	selected    int
	last        picker.Snapshot
}

// Run shows the picker until the user quits or the context is done. It does
// not poll the picker, run Picker.Run alongside it.
func Run(ctx context.Context, p *picker.Picker, opts ...Option) error {
	u := &UI{
		picker:      p,
		log:         zap.NewNop(),
		historySize: picker.DefaultHistorySize,
		selected:    -1,
	}
	for _, opt := range opts {
		opt(u)
	}

	if u.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		u.screen = screen
	}
	if err := u.screen.Init(); err != nil {
		return err
	}
	defer u.screen.Fini()

	if u.beep {
		sound, err := newBeeper()
		if err != nil {
			// Non-fatal, the picker works without sound
			u.log.Warn("audio initialization failed", zap.Error(err))
		} else {
			u.sound = sound
		}
	}

	var (
		events = make(chan tcell.Event, 16)
		done   = make(chan struct{})
	)
	defer close(done)
	go pump(u.screen, events, done)

	snapshots, cancel := p.Subscribe()
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case s, ok := <-snapshots:
			if !ok {
				return nil
			}
			u.update(s)
		case ev, ok := <-events:
			if !ok || !u.handle(ev) {
				return nil
			}
		}
	}
}

// pump forwards screen events until the screen is finalized or done is closed.
func pump(screen tcell.Screen, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized.
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

// update draws a new snapshot, and beeps if it is the one that froze the picker.
func (u *UI) update(s picker.Snapshot) {
	if s.Frozen && !u.last.Frozen && u.sound != nil {
		u.sound.play()
	}
	if !s.Frozen {
		u.selected = -1
	}
	u.draw(s)
}

// handle processes an event, and returns false if the user wants to quit.
func (u *UI) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		u.screen.Sync()
		u.draw(u.last)

	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyCtrlF:
			u.picker.ToggleFreeze()
		case tcell.KeyRight:
			u.step(1)
		case tcell.KeyLeft:
			u.step(-1)
		case tcell.KeyRune:
			switch r := ev.Rune(); {
			case r == 'q':
				return false
			case r == 'f' || r == ' ':
				u.picker.ToggleFreeze()
			case r >= '1' && r <= '9':
				u.selectHistory(int(r - '1'))
			case r == 'c':
				u.copy("name", u.last.Result.Title())
			case r == 'h':
				u.copy("hex", u.last.Result.Hex)
			case r == 'r':
				u.copy("rgb", u.last.Result.RGB())
			}
		}
	}
	return true
}

// step moves the history selection by delta entries, wrapping around at
// either end.
func (u *UI) step(delta int) {
	n := len(u.last.History)
	if n == 0 {
		return
	}
	i := u.selected + delta
	switch {
	case i < 0:
		i = n - 1
	case i >= n:
		i = 0
	}
	u.selectHistory(i)
}

func (u *UI) selectHistory(i int) {
	if _, err := u.picker.Select(i); err != nil {
		u.log.Debug("select from history", zap.Error(err))
		return
	}
	u.selected = i
}

func (u *UI) copy(what, value string) {
	u.screen.SetClipboard([]byte(value))
	u.last.Status = fmt.Sprintf("Copied the color %s to clipboard.", what)
	u.log.Debug("copied to clipboard", zap.String(what, value))
	u.draw(u.last)
}

// Layout, in cells.
const (
	swatchWidth  = 14
	swatchHeight = 6
	infoColumn   = swatchWidth + 4
	historyWidth = 4
)

var (
	styleTitle  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0x7d, 0x56, 0xf4)).Bold(true)
	styleLabel  = tcell.StyleDefault.Foreground(tcell.NewRGBColor(0xa0, 0xa0, 0xc0)).Bold(true)
	styleValue  = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleStatus = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.NewRGBColor(0x1e, 0x1e, 0x2e))
	styleEmpty  = tcell.StyleDefault.Background(tcell.NewRGBColor(0x31, 0x31, 0x45))
)

func swatchStyle(s colorspector.Sample) tcell.Style {
	c := tcell.NewRGBColor(int32(s.R), int32(s.G), int32(s.B))
	return tcell.StyleDefault.Background(c).Foreground(c)
}

func (u *UI) draw(s picker.Snapshot) {
	u.last = s
	u.screen.Clear()
	w, h := u.screen.Size()

	u.text(1, 0, styleTitle, "ColorSpector")
	if s.Frozen {
		u.text(w-9, 0, styleTitle.Reverse(true), " FROZEN ")
	}

	// Color preview.
	fill := swatchStyle(s.Result.Sample)
	for y := 0; y < swatchHeight; y++ {
		for x := 0; x < swatchWidth; x++ {
			u.screen.SetContent(2+x, 2+y, ' ', nil, fill)
		}
	}

	// Color information.
	rows := []struct {
		label string
		value string
	}{
		{"COLOR NAME", s.Result.Title()},
		{"HEX CODE", s.Result.Hex},
		{"RGB VALUES", fmt.Sprintf("%-3d, %-3d, %-3d", s.Result.Sample.R, s.Result.Sample.G, s.Result.Sample.B)},
	}
	for i, row := range rows {
		u.text(infoColumn, 2+i*2, styleLabel, row.label)
		u.text(infoColumn+12, 2+i*2, styleValue, row.value)
	}

	// History.
	y := 3 + swatchHeight
	u.text(1, y, styleLabel, "COLOR HISTORY")
	for i := 0; i < u.historySize; i++ {
		style := styleEmpty
		if i < len(s.History) {
			style = swatchStyle(s.History[i])
		}
		x := 2 + i*(historyWidth+1)
		for j := 0; j < historyWidth; j++ {
			u.screen.SetContent(x+j, y+1, ' ', nil, style)
		}
		label := styleLabel
		if i == u.selected && s.Frozen {
			label = label.Reverse(true)
		}
		u.text(x+1, y+2, label, fmt.Sprintf("%d", i+1))
	}

	// Status bar.
	for x := 0; x < w; x++ {
		u.screen.SetContent(x, h-1, ' ', nil, styleStatus)
	}
	u.text(1, h-1, styleStatus, s.Status)
	u.text(1, h-2, styleLabel, "f freeze · 1-9 ←/→ history · c/h/r copy · q quit")

	u.screen.Show()
}

func (u *UI) text(x, y int, style tcell.Style, s string) {
	for _, r := range s {
		u.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
