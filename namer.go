package colorspector

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Metric is a color distance function used to rank palette entries.
type Metric uint8

// Supported metrics.
const (
	MetricRGB Metric = iota // Squared euclidean distance in RGB space
	MetricLab               // CIE76 ΔE in L*a*b* space
)

func (m Metric) String() string {
	switch m {
	case MetricRGB:
		return "rgb"
	case MetricLab:
		return "lab"
	default:
		return fmt.Sprintf("Metric(%d)", uint8(m))
	}
}

// ParseMetric parses a metric name as returned by Metric.String.
func ParseMetric(name string) (Metric, error) {
	switch name {
	case "", "rgb":
		return MetricRGB, nil
	case "lab":
		return MetricLab, nil
	default:
		return 0, fmt.Errorf("%w: unknown metric %q", ErrInvalidInput, name)
	}
}

// Result of a name lookup.
type Result struct {
	// Name of the matched palette entry.
	Name string

	// Hex code of the sample, #RRGGBB.
	Hex string

	// Sample is the input color.
	Sample Sample

	// Match is the color of the matched palette entry.
	Match Sample

	// Distance between Sample and Match, in units of the metric used.
	Distance float64
}

// Title is the name in title case, as shown to users.
func (r Result) Title() string {
	return cases.Title(language.English).String(r.Name)
}

// RGB returns the sample channels as "r, g, b".
func (r Result) RGB() string {
	return r.Sample.RGB()
}

// Exact reports whether the sample matches the palette entry exactly.
func (r Result) Exact() bool {
	return r.Sample == r.Match
}

// Option configures a Namer.
type Option func(*Namer) error

// WithMetric selects the distance metric.
func WithMetric(m Metric) Option {
	return func(n *Namer) error {
		switch m {
		case MetricRGB, MetricLab:
			n.metric = m
			return nil
		default:
			return fmt.Errorf("%w: unknown metric %s", ErrInvalidInput, m)
		}
	}
}

// Namer names colors after the closest entry of its palette. A Namer is
// immutable once created and safe for concurrent use.
type Namer struct {
	palette Palette
	metric  Metric
	lab     []colorful.Color
}

// NewNamer returns a Namer for the palette, or ErrEmptyPalette.
func NewNamer(p Palette, opts ...Option) (*Namer, error) {
	if len(p) == 0 {
		return nil, ErrEmptyPalette
	}
	n := &Namer{
		palette: append(Palette(nil), p...),
	}
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}
	if n.metric == MetricLab {
		n.lab = make([]colorful.Color, len(n.palette))
		for i, c := range n.palette {
			n.lab[i] = toColorful(c.Sample)
		}
	}
	return n, nil
}

// DefaultNamer uses the CSS palette and the RGB metric.
var DefaultNamer, _ = NewNamer(CSS)

// Palette returns a copy of the palette.
func (n *Namer) Palette() Palette {
	return append(Palette(nil), n.palette...)
}

// Metric returns the distance metric in use.
func (n *Namer) Metric() Metric {
	return n.metric
}

// Nearest returns the palette entry closest to s.
func (n *Namer) Nearest(s Sample) Result {
	if n.metric == MetricRGB {
		return n.palette.Nearest(s)
	}

	var (
		target   = toColorful(s)
		best     = 0
		bestDist = math.Inf(1)
	)
	for i, c := range n.lab {
		if d := target.DistanceLab(c); d < bestDist {
			best, bestDist = i, d
		}
	}
	c := n.palette[best]
	return Result{
		Name:     c.Name,
		Hex:      s.Hex(),
		Sample:   s,
		Match:    c.Sample,
		Distance: bestDist,
	}
}

// NearestName validates the channel values and returns the closest entry.
func (n *Namer) NearestName(r, g, b int) (Result, error) {
	s, err := NewSample(r, g, b)
	if err != nil {
		return Result{}, err
	}
	return n.Nearest(s), nil
}

func toColorful(s Sample) colorful.Color {
	return colorful.Color{
		R: float64(s.R) / 255,
		G: float64(s.G) / 255,
		B: float64(s.B) / 255,
	}
}
