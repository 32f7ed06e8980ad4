// Package canvas is a small 2D raster surface with anti-aliased fills,
// strokes, gradients and monospace text, drawing into an image.RGBA.
package canvas

import (
	"fmt"
	"image"
	"image/draw"
	gomath "math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"go.uber.org/multierr"

	"github.com/Faultbox/shockglobe/pkg/math"
)

// Align is the horizontal anchor of FillText.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Canvas draws in logical units; every coordinate, radius and line width is
// multiplied by the pixel ratio before rasterization. Not safe for
// concurrent use.
type Canvas struct {
	img   *image.RGBA
	ras   *vector.Rasterizer
	scale float64
	w, h  float64

	font  *opentype.Font
	faces map[float64]font.Face
}

// New creates an empty canvas with the embedded Go Mono face loaded.
func New() (*Canvas, error) {
	f, err := opentype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse gomono: %w", err)
	}
	return &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, 0, 0)),
		ras:   vector.NewRasterizer(0, 0),
		scale: 1,
		font:  f,
		faces: make(map[float64]font.Face),
	}, nil
}

// Resize sets the logical size and pixel ratio. The backing image is
// ceil(w*dpr) x ceil(h*dpr) and is only reallocated when that changes.
func (c *Canvas) Resize(w, h, dpr float64) {
	if dpr <= 0 {
		dpr = 1
	}
	if dpr != c.scale {
		// Faces are cached by device size; a new ratio invalidates them.
		c.closeFaces()
	}
	c.w, c.h, c.scale = w, h, dpr

	pw := int(gomath.Ceil(w * dpr))
	ph := int(gomath.Ceil(h * dpr))
	if pw < 0 {
		pw = 0
	}
	if ph < 0 {
		ph = 0
	}
	if b := c.img.Bounds(); b.Dx() != pw || b.Dy() != ph {
		c.img = image.NewRGBA(image.Rect(0, 0, pw, ph))
	}
}

// Image returns the backing raster.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Size returns the logical size.
func (c *Canvas) Size() (w, h float64) {
	return c.w, c.h
}

// PixelRatio returns the device pixel ratio.
func (c *Canvas) PixelRatio() float64 {
	return c.scale
}

// Clear replaces every pixel with s.
func (c *Canvas) Clear(s Solid) {
	draw.Draw(c.img, c.img.Bounds(), s.source(1), image.Point{}, draw.Src)
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, p Paint) {
	if w <= 0 || h <= 0 {
		return
	}
	x0, y0 := x*c.scale, y*c.scale
	x1, y1 := (x+w)*c.scale, (y+h)*c.scale

	if isInt(x0) && isInt(y0) && isInt(x1) && isInt(y1) {
		r := image.Rect(int(x0), int(y0), int(x1), int(y1)).Intersect(c.img.Bounds())
		if !r.Empty() {
			draw.Draw(c.img, r, p.source(c.scale), r.Min, draw.Over)
		}
		return
	}

	c.fill(x0, y0, x1, y1, p, func(ox, oy float64) {
		c.moveTo(x0+ox, y0+oy)
		c.lineTo(x1+ox, y0+oy)
		c.lineTo(x1+ox, y1+oy)
		c.lineTo(x0+ox, y1+oy)
		c.ras.ClosePath()
	})
}

// kappa places cubic control points for a quarter circle.
const kappa = 0.5522847498

// FillCircle fills a disc.
func (c *Canvas) FillCircle(cx, cy, r float64, p Paint) {
	if r <= 0 {
		return
	}
	x, y, rr := cx*c.scale, cy*c.scale, r*c.scale
	c.fill(x-rr, y-rr, x+rr, y+rr, p, func(ox, oy float64) {
		x, y := x+ox, y+oy
		k := rr * kappa
		c.moveTo(x+rr, y)
		c.cubeTo(x+rr, y+k, x+k, y+rr, x, y+rr)
		c.cubeTo(x-k, y+rr, x-rr, y+k, x-rr, y)
		c.cubeTo(x-rr, y-k, x-k, y-rr, x, y-rr)
		c.cubeTo(x+k, y-rr, x+rr, y-k, x+rr, y)
		c.ras.ClosePath()
	})
}

// StrokePath strokes every sub-path of path with the given line width.
// All segments go through one rasterizer pass, so overlapping joins do not
// accumulate alpha.
func (c *Canvas) StrokePath(path *Path, width float64, p Paint) {
	if path == nil || path.Segments() == 0 || width <= 0 {
		return
	}
	c.strokeSubpaths(path.Subpaths(), width, p)
}

// StrokeCircle strokes a circle outline.
func (c *Canvas) StrokeCircle(cx, cy, r, width float64, p Paint) {
	c.StrokeEllipse(cx, cy, r, r, 0, width, p)
}

// StrokeEllipse strokes an ellipse with radii rx, ry rotated by rotation
// radians around its centre.
func (c *Canvas) StrokeEllipse(cx, cy, rx, ry, rotation, width float64, p Paint) {
	if rx <= 0 || ry <= 0 || width <= 0 {
		return
	}
	// Roughly one segment per three device pixels of circumference.
	n := int(gomath.Ceil(2 * gomath.Pi * gomath.Max(rx, ry) * c.scale / 3))
	if n < 24 {
		n = 24
	}
	sin, cos := gomath.Sincos(rotation)
	pts := make([]math.Vec2, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * gomath.Pi * float64(i) / float64(n)
		ex, ey := rx*gomath.Cos(a), ry*gomath.Sin(a)
		pts[i] = math.Vec2{X: cx + ex*cos - ey*sin, Y: cy + ex*sin + ey*cos}
	}
	c.strokeSubpaths([][]math.Vec2{pts}, width, p)
}

func (c *Canvas) strokeSubpaths(subs [][]math.Vec2, width float64, p Paint) {
	hw := width * c.scale / 2
	minX, minY := gomath.Inf(1), gomath.Inf(1)
	maxX, maxY := gomath.Inf(-1), gomath.Inf(-1)
	for _, sub := range subs {
		if len(sub) < 2 {
			continue
		}
		for _, pt := range sub {
			x, y := pt.X*c.scale, pt.Y*c.scale
			minX, minY = gomath.Min(minX, x), gomath.Min(minY, y)
			maxX, maxY = gomath.Max(maxX, x), gomath.Max(maxY, y)
		}
	}
	if gomath.IsInf(minX, 0) {
		return
	}

	c.fill(minX-hw, minY-hw, maxX+hw, maxY+hw, p, func(ox, oy float64) {
		for _, sub := range subs {
			for i := 1; i < len(sub); i++ {
				ax, ay := sub[i-1].X*c.scale+ox, sub[i-1].Y*c.scale+oy
				bx, by := sub[i].X*c.scale+ox, sub[i].Y*c.scale+oy
				c.segmentQuad(ax, ay, bx, by, hw)
			}
		}
	})
}

// segmentQuad adds the rectangle covering segment a-b. The winding is the
// same for every quad so overlaps add coverage instead of cancelling.
func (c *Canvas) segmentQuad(ax, ay, bx, by, hw float64) {
	dx, dy := bx-ax, by-ay
	l := gomath.Hypot(dx, dy)
	if l < 1e-9 {
		return
	}
	nx, ny := -dy/l*hw, dx/l*hw
	// Extend by half a width at both ends so consecutive quads overlap at
	// the joint.
	ex, ey := dx/l*hw*0.5, dy/l*hw*0.5
	ax, ay, bx, by = ax-ex, ay-ey, bx+ex, by+ey

	c.moveTo(ax+nx, ay+ny)
	c.lineTo(bx+nx, by+ny)
	c.lineTo(bx-nx, by-ny)
	c.lineTo(ax-nx, ay-ny)
	c.ras.ClosePath()
}

// fill rasterizes the shape built by build inside the device-space bounding
// box and composites p over the image. build receives the offset from
// device coordinates to rasterizer coordinates.
func (c *Canvas) fill(minX, minY, maxX, maxY float64, p Paint, build func(ox, oy float64)) {
	r := image.Rect(
		int(gomath.Floor(minX))-1, int(gomath.Floor(minY))-1,
		int(gomath.Ceil(maxX))+1, int(gomath.Ceil(maxY))+1,
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	c.ras.Reset(r.Dx(), r.Dy())
	build(float64(-r.Min.X), float64(-r.Min.Y))
	c.ras.Draw(c.img, r, p.source(c.scale), r.Min)
}

func (c *Canvas) moveTo(x, y float64) { c.ras.MoveTo(float32(x), float32(y)) }
func (c *Canvas) lineTo(x, y float64) { c.ras.LineTo(float32(x), float32(y)) }

func (c *Canvas) cubeTo(bx, by, cx, cy, dx, dy float64) {
	c.ras.CubeTo(float32(bx), float32(by), float32(cx), float32(cy), float32(dx), float32(dy))
}

// FillText draws s with its alphabetic baseline at y. size is the font size
// in logical pixels.
func (c *Canvas) FillText(s string, x, y, size float64, align Align, p Paint) {
	if s == "" {
		return
	}
	face, err := c.face(size)
	if err != nil {
		return
	}
	dx := x * c.scale
	if align != AlignLeft {
		w := float64(font.MeasureString(face, s)) / 64
		if align == AlignRight {
			dx -= w
		} else {
			dx -= w / 2
		}
	}
	d := font.Drawer{
		Dst:  c.img,
		Src:  p.source(c.scale),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(dx * 64), Y: fixed.Int26_6(y * c.scale * 64)},
	}
	d.DrawString(s)
}

// TextWidth returns the advance width of s in logical pixels.
func (c *Canvas) TextWidth(s string, size float64) float64 {
	face, err := c.face(size)
	if err != nil {
		return 0
	}
	return float64(font.MeasureString(face, s)) / 64 / c.scale
}

func (c *Canvas) face(size float64) (font.Face, error) {
	px := gomath.Round(size*c.scale*2) / 2
	if f, ok := c.faces[px]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    px,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("gomono face %.1fpx: %w", px, err)
	}
	c.faces[px] = f
	return f, nil
}

func (c *Canvas) closeFaces() error {
	var err error
	for k, f := range c.faces {
		err = multierr.Append(err, f.Close())
		delete(c.faces, k)
	}
	return err
}

// Close releases cached font faces.
func (c *Canvas) Close() error {
	return c.closeFaces()
}

func isInt(v float64) bool {
	return v == gomath.Trunc(v)
}
