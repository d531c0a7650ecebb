// Package button toggles the picker with a push button on a GPIO pin.
package button

import (
	"context"
	"errors"
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// DefaultDebounce is the minimum time between two presses.
const DefaultDebounce = 50 * time.Millisecond

// poll is how long to wait for an edge before checking the context again.
const poll = 100 * time.Millisecond

// ErrPin is returned for unknown pins.
var ErrPin = errors.New("button: GPIO pin is invalid")

// Pin is the part of gpio.PinIn a Button uses.
type Pin interface {
	String() string
	In(pull gpio.Pull, edge gpio.Edge) error
	Read() gpio.Level
	WaitForEdge(timeout time.Duration) bool
}

// Button is an active low push button, wired between the pin and ground.
type Button struct {
	pin      Pin
	debounce time.Duration
	now      func() time.Time
}

// New initializes the host drivers and sets up the named pin, for example
// "GPIO17".
func New(name string) (*Button, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	pin := gpioreg.ByName(name)
	if pin == nil || pin == gpio.INVALID {
		return nil, fmt.Errorf("%w: %q", ErrPin, name)
	}
	return NewPin(pin)
}

// NewPin sets up the pin as input with pull-up, detecting falling edges.
func NewPin(pin Pin) (*Button, error) {
	if err := pin.In(gpio.PullUp, gpio.FallingEdge); err != nil {
		return nil, fmt.Errorf("button: setup %s: %w", pin, err)
	}
	return &Button{
		pin:      pin,
		debounce: DefaultDebounce,
		now:      time.Now,
	}, nil
}

func (b *Button) String() string {
	return fmt.Sprintf("button on %s", b.pin)
}

// Watch calls fn for every press until the context is done, and returns its
// error. Edges within the debounce time of the last press are ignored.
func (b *Button) Watch(ctx context.Context, fn func()) error {
	var last time.Time
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if !b.pin.WaitForEdge(poll) {
			continue
		}
		if b.pin.Read() != gpio.Low {
			// Released, or bounced back up.
			continue
		}
		if now := b.now(); last.IsZero() || now.Sub(last) >= b.debounce {
			last = now
			fn()
		}
	}
}
