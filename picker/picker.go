// Package picker implements the screen color picker: it follows the pointer,
// names the color under it, and keeps a short history of frozen colors.
package picker

import (
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BeatGlow/colorspector"
	"github.com/BeatGlow/colorspector/capture"
)

// Defaults
const (
	DefaultInterval    = 50 * time.Millisecond
	DefaultHistorySize = 8
)

// Errors
var (
	ErrNoSuchEntry = errors.New("picker: no such history entry")
)

// Status messages.
const (
	statusReady    = "Point your cursor anywhere to detect colors..."
	statusFrozen   = "Color frozen. Unfreeze to continue detecting."
	statusError    = "An error occurred while detecting the color."
	statusDetect   = "Detecting color at X: %4d Y: %4d"
	statusSelected = "Selected color from history: %s"
)

// Snapshot is the state of the picker at one point in time.
type Snapshot struct {
	// Result for the current color.
	Result colorspector.Result

	// Position the current color was sampled at.
	Position image.Point

	// Frozen reports whether polling is suspended.
	Frozen bool

	// History of frozen colors, most recent first.
	History []colorspector.Sample

	// Status line for display.
	Status string

	// Err is the last sampling error, if the last poll failed.
	Err error
}

// Option configures a Picker.
type Option func(*Picker)

// WithInterval sets the polling interval.
func WithInterval(d time.Duration) Option {
	return func(p *Picker) {
		if d > 0 {
			p.interval = d
		}
	}
}

// WithHistorySize sets the number of history entries kept.
func WithHistorySize(n int) Option {
	return func(p *Picker) {
		if n > 0 {
			p.historySize = n
		}
	}
}

// WithLogger sets the logger, the default discards everything.
func WithLogger(log *zap.Logger) Option {
	return func(p *Picker) {
		if log != nil {
			p.log = log
		}
	}
}

// Picker follows the pointer and names the color under it. All methods are
// safe for concurrent use.
type Picker struct {
	sampler     capture.Sampler
	pointer     capture.Pointer
	namer       *colorspector.Namer
	interval    time.Duration
	historySize int
	log         *zap.Logger

	mu          sync.Mutex
	state       Snapshot
	subscribers map[chan Snapshot]struct{}
}

// New returns a Picker. A nil namer uses colorspector.DefaultNamer.
func New(sampler capture.Sampler, pointer capture.Pointer, namer *colorspector.Namer, opts ...Option) *Picker {
	if namer == nil {
		namer = colorspector.DefaultNamer
	}
	p := &Picker{
		sampler:     sampler,
		pointer:     pointer,
		namer:       namer,
		interval:    DefaultInterval,
		historySize: DefaultHistorySize,
		log:         zap.NewNop(),
		subscribers: make(map[chan Snapshot]struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}

	// Start out on white, like an empty screen.
	white := colorspector.Sample{R: 0xff, G: 0xff, B: 0xff}
	p.state = Snapshot{
		Result: namer.Nearest(white),
		Status: statusReady,
	}
	return p
}

// Run polls until the context is done, and returns its error.
func (p *Picker) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.log.Debug("picker started", zap.Duration("interval", p.interval))
	defer p.log.Debug("picker stopped")

	for {
		if _, err := p.Tick(ctx); err != nil && ctx.Err() != nil {
			return ctx.Err()
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

// Tick runs a single poll: read the pointer position, sample the color under
// it and name it. Nothing is sampled while frozen. Errors are logged and
// recorded in the snapshot status.
func (p *Picker) Tick(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return p.Snapshot(), err
	}
	if p.Frozen() {
		return p.Snapshot(), nil
	}

	pos, err := p.pointer.Position(ctx)
	if err != nil {
		return p.fail(ctx, fmt.Errorf("picker: pointer position: %w", err))
	}
	sample, err := p.sampler.Sample(ctx, pos)
	if err != nil {
		return p.fail(ctx, fmt.Errorf("picker: sample at %s: %w", pos, err))
	}
	result := p.namer.Nearest(sample)

	p.mu.Lock()
	if p.state.Frozen {
		// Frozen while we were sampling.
		s := p.copyState()
		p.mu.Unlock()
		return s, nil
	}
	changed := p.state.Result != result || p.state.Err != nil || !p.state.Position.Eq(pos)
	p.state.Result = result
	p.state.Position = pos
	p.state.Err = nil
	p.state.Status = fmt.Sprintf(statusDetect, pos.X, pos.Y)
	s := p.copyState()
	if changed {
		p.publish(s)
	}
	p.mu.Unlock()

	if changed {
		p.log.Debug("color detected",
			zap.Stringer("position", pos),
			zap.String("name", result.Name),
			zap.String("hex", result.Hex))
	}
	return s, nil
}

func (p *Picker) fail(ctx context.Context, err error) (Snapshot, error) {
	if ctx.Err() != nil {
		// Shutting down, not a detection error.
		return p.Snapshot(), err
	}
	p.log.Error("error during color detection", zap.Error(err))

	p.mu.Lock()
	defer p.mu.Unlock()
	p.state.Err = err
	p.state.Status = statusError
	s := p.copyState()
	p.publish(s)
	return s, err
}

// Frozen reports whether polling is suspended.
func (p *Picker) Frozen() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state.Frozen
}

// ToggleFreeze suspends or resumes polling. Freezing adds the current color to
// the history.
func (p *Picker) ToggleFreeze() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.Frozen = !p.state.Frozen
	if p.state.Frozen {
		p.state.Status = statusFrozen
		p.push(p.state.Result.Sample)
		p.log.Info("color frozen", zap.String("hex", p.state.Result.Hex))
	} else {
		p.state.Status = statusReady
		p.log.Info("color unfrozen")
	}
	s := p.copyState()
	p.publish(s)
	return s
}

// Select makes history entry i the current color and freezes the picker.
func (p *Picker) Select(i int) (Snapshot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if i < 0 || i >= len(p.state.History) {
		return p.copyState(), fmt.Errorf("%w: %d", ErrNoSuchEntry, i)
	}
	sample := p.state.History[i]
	p.state.Result = p.namer.Nearest(sample)
	p.state.Frozen = true
	p.state.Err = nil
	p.state.Status = fmt.Sprintf(statusSelected, sample.Hex())
	s := p.copyState()
	p.publish(s)
	return s, nil
}

// Snapshot returns the current state.
func (p *Picker) Snapshot() Snapshot {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.copyState()
}

// Subscribe returns a channel that receives every state change, and a function
// to cancel the subscription. Slow subscribers only see the latest state.
func (p *Picker) Subscribe() (<-chan Snapshot, func()) {
	c := make(chan Snapshot, 1)

	p.mu.Lock()
	p.subscribers[c] = struct{}{}
	c <- p.copyState()
	p.mu.Unlock()

	var once sync.Once
	return c, func() {
		once.Do(func() {
			p.mu.Lock()
			delete(p.subscribers, c)
			p.mu.Unlock()
			close(c)
		})
	}
}

// push adds a sample to the front of the history, unless it is already there.
// Must be called with the lock held.
func (p *Picker) push(s colorspector.Sample) {
	if len(p.state.History) > 0 && p.state.History[0] == s {
		return
	}
	history := make([]colorspector.Sample, 0, p.historySize)
	history = append(history, s)
	history = append(history, p.state.History...)
	if len(history) > p.historySize {
		history = history[:p.historySize]
	}
	p.state.History = history
}

// copyState must be called with the lock held.
func (p *Picker) copyState() Snapshot {
	s := p.state
	s.History = append([]colorspector.Sample(nil), p.state.History...)
	return s
}

// publish must be called with the lock held.
func (p *Picker) publish(s Snapshot) {
	for c := range p.subscribers {
		// Drop the stale snapshot, if any, so the latest one always fits.
		select {
		case <-c:
		default:
		}
		select {
		case c <- s:
		default:
		}
	}
}
