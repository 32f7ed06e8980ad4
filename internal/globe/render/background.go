package render

import (
	gomath "math"

	"github.com/Faultbox/shockglobe/internal/engine/canvas"
)

func drawBackground(dst Painter, v view) {
	dst.FillRect(0, 0, v.w, v.h, colorBackground)

	// The glow is transparent past 1.6R, so only its bounding square is filled.
	gr := v.r * 1.6
	dst.FillRect(v.cx-gr, v.cy-gr, gr*2, gr*2, canvas.RadialFrom(v.cx, v.cy, 0, gr,
		canvas.Stop{Offset: 0, Color: canvas.RGBA(18, 14, 10, 0.6)},
		canvas.Stop{Offset: 1, Color: canvas.RGBA(10, 10, 10, 0)},
	))
}

// Binary texture grid. Glyph choice and density come from a hash of the
// cell position so the field is identical every frame.
const (
	binaryFontSize = 7
	binaryStepX    = 9
	binaryStepY    = 13
)

var colorBinary = canvas.RGBA(42, 36, 30, 1)

func drawBinary(dst Painter, v view) {
	maxR := min(v.w, v.h) * 0.68
	for by := 10; float64(by) < v.h; by += binaryStepY {
		for bx := 4; float64(bx) < v.w; bx += binaryStepX {
			hash := (bx*1733 + by*9371) & 0xffff
			if hash&0xff > 88 {
				continue
			}
			dist := gomath.Hypot(float64(bx)-v.cx, float64(by)-v.cy)
			alpha := gomath.Max(0, 0.075-(dist/maxR)*0.065)
			if alpha < 0.005 {
				continue
			}
			glyph := "0"
			if (hash>>8)&1 == 1 {
				glyph = "1"
			}
			dst.FillText(glyph, float64(bx), float64(by), binaryFontSize, canvas.AlignLeft, colorBinary.WithAlpha(alpha))
		}
	}
}

// drawSphereShading adds the specular highlight and the rim light.
func drawSphereShading(dst Painter, v view) {
	dst.FillCircle(v.cx, v.cy, v.r, canvas.Radial{
		X0: v.cx - v.r*0.3, Y0: v.cy - v.r*0.25, R0: 0,
		X1: v.cx, Y1: v.cy, R1: v.r,
		Stops: []canvas.Stop{
			{Offset: 0, Color: canvas.RGBA(50, 40, 30, 0.06)},
			{Offset: 1, Color: canvas.RGBA(0, 0, 0, 0)},
		},
	})

	dst.FillCircle(v.cx, v.cy, v.r*1.06, canvas.RadialFrom(v.cx, v.cy, v.r*0.88, v.r*1.06,
		canvas.Stop{Offset: 0, Color: canvas.RGBA(25, 18, 12, 0)},
		canvas.Stop{Offset: 1, Color: canvas.RGBA(25, 18, 12, 0.18)},
	))
}

// orbit is a decorative ellipse fixed in screen space.
type orbit struct {
	tilt   float64
	rx, ry float64 // multiples of the sphere radius
	color  canvas.Solid
}

var orbits = []orbit{
	{tilt: 0.49, rx: 1.38, ry: 0.21, color: canvas.RGBA(165, 20, 20, 0.55)},
	{tilt: -1.08, rx: 1.26, ry: 0.17, color: canvas.RGBA(140, 15, 15, 0.38)},
}

func drawOrbitalRings(dst Painter, v view) {
	for _, o := range orbits {
		dst.StrokeEllipse(v.cx, v.cy, v.r*o.rx, v.r*o.ry, o.tilt, 0.9, o.color)
	}
}

func drawCorners(dst Painter, v view) {
	const s, p = 14, 12
	corners := [4][2]float64{{p, p}, {v.w - p, p}, {p, v.h - p}, {v.w - p, v.h - p}}

	var path canvas.Path
	for _, c := range corners {
		path.Line(c[0]-s, c[1], c[0]+s, c[1])
		path.Line(c[0], c[1]-s, c[0], c[1]+s)
	}
	dst.StrokePath(&path, 0.8, colorCorner)
}
