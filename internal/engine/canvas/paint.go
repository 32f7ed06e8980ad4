package canvas

import (
	"fmt"
	"image"
	"image/color"
	gomath "math"
	"strconv"
)

// Paint is a fill or stroke style.
type Paint interface {
	// source returns the colour source in device pixels.
	source(scale float64) image.Image
}

// Solid is a flat colour.
type Solid color.NRGBA

func (s Solid) source(float64) image.Image {
	return image.NewUniform(color.NRGBA(s))
}

// RGBA builds a Solid from 8-bit channels and a 0..1 alpha, the way CSS
// rgba() does.
func RGBA(r, g, b uint8, a float64) Solid {
	return Solid{R: r, G: g, B: b, A: alpha8(a)}
}

// WithAlpha returns the colour with its alpha replaced.
func (s Solid) WithAlpha(a float64) Solid {
	s.A = alpha8(a)
	return s
}

func alpha8(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 0xff
	}
	return uint8(gomath.Round(a * 0xff))
}

// Hex parses "#rrggbb" or "#rrggbbaa".
func Hex(s string) (Solid, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 && len(s) != 8 {
		return Solid{}, fmt.Errorf("invalid hex colour %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Solid{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return Solid{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustHex is Hex for package-level palette constants.
func MustHex(s string) Solid {
	c, err := Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Stop is a gradient colour stop at Offset in [0, 1].
type Stop struct {
	Offset float64
	Color  Solid
}

// Radial is a two-circle radial gradient. The colour at a point comes from
// the largest t for which the point lies on the circle interpolated between
// (X0, Y0, R0) and (X1, Y1, R1); t is clamped to [0, 1].
type Radial struct {
	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []Stop
}

// RadialFrom is the common single-centre gradient from r0 to r1.
func RadialFrom(x, y, r0, r1 float64, stops ...Stop) Radial {
	return Radial{X0: x, Y0: y, R0: r0, X1: x, Y1: y, R1: r1, Stops: stops}
}

func (g Radial) source(scale float64) image.Image {
	return &radialImage{
		x0: g.X0 * scale, y0: g.Y0 * scale, r0: g.R0 * scale,
		x1: g.X1 * scale, y1: g.Y1 * scale, r1: g.R1 * scale,
		stops: g.Stops,
	}
}

type radialImage struct {
	x0, y0, r0 float64
	x1, y1, r1 float64
	stops      []Stop
}

func (r *radialImage) ColorModel() color.Model { return color.NRGBAModel }

func (r *radialImage) Bounds() image.Rectangle {
	return image.Rect(-1<<24, -1<<24, 1<<24, 1<<24)
}

func (r *radialImage) At(x, y int) color.Color {
	t, ok := r.param(float64(x)+0.5, float64(y)+0.5)
	if !ok {
		return color.NRGBA{}
	}
	return color.NRGBA(r.colorAt(t))
}

// param solves |p - c(t)| = r(t) for the largest t with r(t) >= 0.
func (r *radialImage) param(px, py float64) (float64, bool) {
	cdx, cdy, dr := r.x1-r.x0, r.y1-r.y0, r.r1-r.r0
	pdx, pdy := px-r.x0, py-r.y0

	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + r.r0*dr
	c := pdx*pdx + pdy*pdy - r.r0*r.r0

	valid := func(t float64) bool { return r.r0+t*dr >= 0 }

	if gomath.Abs(a) < 1e-9 {
		if b == 0 {
			return 0, false
		}
		t := c / (2 * b)
		return clamp01(t), valid(t)
	}

	disc := b*b - a*c
	if disc < 0 {
		return 0, false
	}
	sq := gomath.Sqrt(disc)
	t1, t2 := (b+sq)/a, (b-sq)/a
	if t1 < t2 {
		t1, t2 = t2, t1
	}
	switch {
	case valid(t1):
		return clamp01(t1), true
	case valid(t2):
		return clamp01(t2), true
	}
	return 0, false
}

func (r *radialImage) colorAt(t float64) Solid {
	stops := r.stops
	if len(stops) == 0 {
		return Solid{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			a, b := stops[i-1], stops[i]
			span := b.Offset - a.Offset
			if span <= 0 {
				return b.Color
			}
			return lerpColor(a.Color, b.Color, (t-a.Offset)/span)
		}
	}
	return stops[len(stops)-1].Color
}

func lerpColor(a, b Solid, f float64) Solid {
	l := func(x, y uint8) uint8 {
		return uint8(gomath.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return Solid{R: l(a.R, b.R), G: l(a.G, b.G), B: l(a.B, b.B), A: l(a.A, b.A)}
}

func clamp01(t float64) float64 {
	return gomath.Max(0, gomath.Min(1, t))
}
