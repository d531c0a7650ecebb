package capture

import (
	"context"
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/godbus/dbus/v5"
	"github.com/google/uuid"

	"github.com/BeatGlow/colorspector"
)

// --- XDG desktop portal constants ---
const (
	portalService          = "org.freedesktop.portal.Desktop"
	portalPath             = "/org/freedesktop/portal/desktop"
	portalPickColor        = "org.freedesktop.portal.Screenshot.PickColor"
	portalRequestInterface = "org.freedesktop.portal.Request"
	portalResponseMember   = "Response"

	portalResponseSuccess   uint32 = 0
	portalResponseCancelled uint32 = 1
)

// Portal asks the XDG desktop portal to let the user pick a color. This is the
// only way to read screen pixels on most Wayland compositors. The point passed
// to Sample is ignored, the compositor shows its own picker.
type Portal struct {
	conn *dbus.Conn
}

// OpenPortal connects to the session bus.
func OpenPortal() (*Portal, error) {
	conn, err := dbus.ConnectSessionBus()
	if err != nil {
		return nil, fmt.Errorf("capture: failed to connect to session bus: %w", err)
	}
	return &Portal{conn: conn}, nil
}

// Close disconnects from the session bus.
func (p *Portal) Close() error {
	return p.conn.Close()
}

func (p *Portal) Sample(ctx context.Context, _ image.Point) (colorspector.Sample, error) {
	token := "colorspector_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	path := requestPath(p.conn.Names()[0], token)

	// Subscribe before the call, the response may arrive before the call returns.
	match := []dbus.MatchOption{
		dbus.WithMatchObjectPath(path),
		dbus.WithMatchInterface(portalRequestInterface),
		dbus.WithMatchMember(portalResponseMember),
	}
	if err := p.conn.AddMatchSignal(match...); err != nil {
		return colorspector.Sample{}, fmt.Errorf("capture: portal subscribe: %w", err)
	}
	defer func() { _ = p.conn.RemoveMatchSignal(match...) }()

	signals := make(chan *dbus.Signal, 4)
	p.conn.Signal(signals)
	defer p.conn.RemoveSignal(signals)

	options := map[string]dbus.Variant{
		"handle_token": dbus.MakeVariant(token),
	}
	var handle dbus.ObjectPath
	if err := p.conn.Object(portalService, portalPath).
		CallWithContext(ctx, portalPickColor, 0, "", options).
		Store(&handle); err != nil {
		return colorspector.Sample{}, fmt.Errorf("capture: portal pick color: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return colorspector.Sample{}, ctx.Err()
		case signal, ok := <-signals:
			if !ok {
				return colorspector.Sample{}, fmt.Errorf("capture: portal connection closed")
			}
			if signal.Path != handle && signal.Path != path {
				continue
			}
			return parseResponse(signal.Body)
		}
	}
}

// requestPath is the object path the portal uses for a request with the given
// token, /org/freedesktop/portal/desktop/request/SENDER/TOKEN.
func requestPath(sender, token string) dbus.ObjectPath {
	sender = strings.ReplaceAll(strings.TrimPrefix(sender, ":"), ".", "_")
	return dbus.ObjectPath(portalPath + "/request/" + sender + "/" + token)
}

// parseResponse decodes the body of a Request.Response signal, (ua{sv}).
func parseResponse(body []interface{}) (colorspector.Sample, error) {
	if len(body) != 2 {
		return colorspector.Sample{}, fmt.Errorf("%w: portal response has %d values", ErrFormat, len(body))
	}
	code, ok := body[0].(uint32)
	if !ok {
		return colorspector.Sample{}, fmt.Errorf("%w: portal response code is %T", ErrFormat, body[0])
	}
	switch code {
	case portalResponseSuccess:
	case portalResponseCancelled:
		return colorspector.Sample{}, ErrCancelled
	default:
		return colorspector.Sample{}, fmt.Errorf("capture: portal request failed with code %d", code)
	}

	results, ok := body[1].(map[string]dbus.Variant)
	if !ok {
		return colorspector.Sample{}, fmt.Errorf("%w: portal results are %T", ErrFormat, body[1])
	}
	v, ok := results["color"]
	if !ok {
		return colorspector.Sample{}, fmt.Errorf("%w: portal results have no color", ErrFormat)
	}
	return parseColor(v)
}

// parseColor decodes a (ddd) color with channels in [0,1].
func parseColor(v dbus.Variant) (colorspector.Sample, error) {
	var channels []float64
	switch value := v.Value().(type) {
	case []interface{}:
		for _, c := range value {
			f, ok := c.(float64)
			if !ok {
				return colorspector.Sample{}, fmt.Errorf("%w: color channel is %T", ErrFormat, c)
			}
			channels = append(channels, f)
		}
	case []float64:
		channels = value
	default:
		return colorspector.Sample{}, fmt.Errorf("%w: color is %T", ErrFormat, value)
	}
	if len(channels) != 3 {
		return colorspector.Sample{}, fmt.Errorf("%w: color has %d channels", ErrFormat, len(channels))
	}
	return colorspector.Sample{
		R: unit8(channels[0]),
		G: unit8(channels[1]),
		B: unit8(channels[2]),
	}, nil
}

// unit8 scales a [0,1] value to [0,255].
func unit8(f float64) uint8 {
	switch {
	case math.IsNaN(f) || f <= 0:
		return 0
	case f >= 1:
		return 0xff
	default:
		return uint8(math.Round(f * 0xff))
	}
}
