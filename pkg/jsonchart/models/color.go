package models

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrGradient indicates a fill gradient could not be built from a color.
var ErrGradient = errors.New("cannot construct fill gradient")

const (
	// gradientStartAlpha scales the color alpha at the top stop.
	gradientStartAlpha = 0.8
	// gradientEndAlpha scales the top stop alpha at the bottom stop.
	gradientEndAlpha = 0.5
	// gradientAngle is the fill direction in degrees (vertical).
	gradientAngle = 90
)

// Color is a normalized RGBA color; every component is in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

var (
	// DefaultColor is used when the caller supplies no color.
	DefaultColor = Color{R: 0, G: 0, B: 1, A: 1}
	// Black is the bar fill used when the caller supplies no color.
	Black = Color{R: 0, G: 0, B: 0, A: 1}
	// Transparent is a fully transparent white.
	Transparent = Color{R: 1, G: 1, B: 1, A: 0}
)

// RGBA returns a color from normalized components.
func RGBA(r, g, b, a float64) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// Valid reports whether every component is finite and within [0,1].
func (c Color) Valid() bool {
	for _, v := range [...]float64{c.R, c.G, c.B, c.A} {
		if math.IsNaN(v) || v < 0 || v > 1 {
			return false
		}
	}
	return true
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// NRGBA converts c to a non-premultiplied 8-bit color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

// Hex returns the RRGGBB form of c, without alpha.
func (c Color) Hex() string {
	n := c.NRGBA()
	return fmt.Sprintf("%02X%02X%02X", n.R, n.G, n.B)
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// GradientStop is a color at a relative location along a gradient.
type GradientStop struct {
	Color    Color   `json:"color"`
	Location float64 `json:"location"`
}

// GradientSpec is a two-stop linear fill gradient.
// Stops are always derived from a base color by NewGradient.
type GradientSpec struct {
	// Start is the top stop.
	Start GradientStop `json:"start"`
	// End is the bottom stop.
	End GradientStop `json:"end"`
	// Angle is the fill direction in degrees; 90 is top-to-bottom.
	Angle float64 `json:"angle"`
}

// NewGradient derives the area fill gradient for base.
// The start stop carries 80% of the base alpha and the end stop half of that.
func NewGradient(base Color) (GradientSpec, error) {
	if !base.Valid() {
		return GradientSpec{}, fmt.Errorf("%w: color %+v out of range", ErrGradient, base)
	}
	start := base.A * gradientStartAlpha
	return GradientSpec{
		Start: GradientStop{Color: base.WithAlpha(start), Location: 0},
		End:   GradientStop{Color: base.WithAlpha(start * gradientEndAlpha), Location: 1},
		Angle: gradientAngle,
	}, nil
}

// At returns the interpolated color at t in [0,1], 0 being the start stop.
func (g GradientSpec) At(t float64) Color {
	switch {
	case t <= 0:
		return g.Start.Color
	case t >= 1:
		return g.End.Color
	}
	lerp := func(a, b float64) float64 { return a + (b-a)*t }
	s, e := g.Start.Color, g.End.Color
	return Color{R: lerp(s.R, e.R), G: lerp(s.G, e.G), B: lerp(s.B, e.B), A: lerp(s.A, e.A)}
}
