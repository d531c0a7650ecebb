package colorspector

import "strings"

// NamedColor is a palette entry.
type NamedColor struct {
	Name   string
	Sample Sample
}

// Palette is an ordered list of named colors. Order matters: when two entries
// are equally close to a sample, the first one wins.
type Palette []NamedColor

// Lookup finds an entry by name, ignoring case.
func (p Palette) Lookup(name string) (NamedColor, bool) {
	for _, c := range p {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return NamedColor{}, false
}

// Index returns the index of the entry closest to s in RGB space. It panics
// if the palette is empty.
func (p Palette) Index(s Sample) int {
	if len(p) == 0 {
		panic("colorspector: nearest color in empty palette")
	}
	best, bestDist := 0, p[0].Sample.distance(s)
	for i := 1; i < len(p) && bestDist > 0; i++ {
		if d := p[i].Sample.distance(s); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Nearest returns the entry closest to s in RGB space.
func (p Palette) Nearest(s Sample) Result {
	c := p[p.Index(s)]
	return Result{
		Name:     c.Name,
		Hex:      s.Hex(),
		Sample:   s,
		Match:    c.Sample,
		Distance: float64(c.Sample.distance(s)),
	}
}

// Nearest returns the CSS color closest to s.
func Nearest(s Sample) Result {
	return CSS.Nearest(s)
}

// NearestName validates the channel values and returns the CSS color closest
// to them.
func NearestName(r, g, b int) (Result, error) {
	s, err := NewSample(r, g, b)
	if err != nil {
		return Result{}, err
	}
	return Nearest(s), nil
}
