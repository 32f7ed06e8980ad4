// Package render draws one frame of the globe: background decoration, the
// latitude/longitude grid, continent dots, propagation arcs with their
// travelling particles, markers, the epicenter and the HUD.
package render

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Faultbox/shockglobe/internal/engine/canvas"
	"github.com/Faultbox/shockglobe/internal/globe/scene"
	"github.com/Faultbox/shockglobe/pkg/math"
)

// Painter is the drawing surface a frame is painted on. Coordinates are
// logical pixels with the origin at the top left.
type Painter interface {
	FillRect(x, y, w, h float64, p canvas.Paint)
	FillCircle(cx, cy, r float64, p canvas.Paint)
	StrokePath(path *canvas.Path, width float64, p canvas.Paint)
	StrokeCircle(cx, cy, r, width float64, p canvas.Paint)
	StrokeEllipse(cx, cy, rx, ry, rotation, width float64, p canvas.Paint)
	FillText(s string, x, y, size float64, align canvas.Align, p canvas.Paint)
	TextWidth(s string, size float64) float64
}

// Options tunes the pipeline. Zero fields fall back to defaults.
type Options struct {
	FocalLength     float64
	RadiusRatio     float64
	ParticlesPerArc int
	ArcElevation    float64
	ArcSteps        int
}

// DefaultOptions returns the stock look.
func DefaultOptions() Options {
	return Options{
		FocalLength:     math.DefaultFocalLength,
		RadiusRatio:     0.36,
		ParticlesPerArc: 3,
		ArcElevation:    0.38,
		ArcSteps:        80,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.FocalLength <= 0 {
		o.FocalLength = d.FocalLength
	}
	if o.RadiusRatio <= 0 {
		o.RadiusRatio = d.RadiusRatio
	}
	if o.ParticlesPerArc <= 0 {
		o.ParticlesPerArc = d.ParticlesPerArc
	}
	if o.ArcElevation <= 0 {
		o.ArcElevation = d.ArcElevation
	}
	if o.ArcSteps <= 0 {
		o.ArcSteps = d.ArcSteps
	}
	return o
}

// Frame is the per-frame input: viewport, view rotation and animation clock.
type Frame struct {
	Width, Height float64
	Rotation      math.Rotation
	Clock         float64
}

// Pipeline paints frames. It keeps no per-frame state, but Draw must not be
// called concurrently.
type Pipeline struct {
	opts  Options
	caser cases.Caser
}

// New creates a pipeline.
func New(opts Options) *Pipeline {
	return &Pipeline{
		opts:  opts.withDefaults(),
		caser: cases.Upper(language.Und),
	}
}

// Options returns the effective options.
func (p *Pipeline) Options() Options {
	return p.opts
}

// Draw paints one frame of snap onto dst, back to front. Elements that are
// behind the focal plane or facing away where a front face is required are
// skipped for this frame.
func (p *Pipeline) Draw(dst Painter, snap *scene.Snapshot, f Frame) {
	if f.Width <= 0 || f.Height <= 0 {
		return
	}
	if snap == nil {
		snap = &scene.Snapshot{}
	}
	v := p.newView(f)

	drawBackground(dst, v)
	drawBinary(dst, v)
	drawGrid(dst, v)
	drawDots(dst, v, scene.ContinentDots())
	drawSphereShading(dst, v)
	drawOrbitalRings(dst, v)
	p.drawArcGhosts(dst, v, snap.Arcs)
	p.drawParticles(dst, v, snap.Arcs)
	p.drawDestinations(dst, v, snap.Arcs)
	p.drawMarkers(dst, v, snap.Markers)
	p.drawEpicenter(dst, v, snap.Epicenter)
	drawCorners(dst, v)
	p.drawHUD(dst, v, snap)
}

func (p *Pipeline) upper(s string) string {
	return p.caser.String(s)
}

// view holds the derived geometry of one frame.
type view struct {
	w, h   float64
	cx, cy float64
	r      float64
	rot    math.Rotation
	focal  float64
	clock  float64
}

func (p *Pipeline) newView(f Frame) view {
	return view{
		w: f.Width, h: f.Height,
		cx: f.Width / 2, cy: f.Height / 2,
		r:     min(f.Width, f.Height) * p.opts.RadiusRatio,
		rot:   f.Rotation,
		focal: p.opts.FocalLength,
		clock: f.Clock,
	}
}

// point places (lat, lng) at lift times the sphere radius and applies the
// view rotation. Every layer goes through here so nothing shears against
// the grid.
func (v view) point(lat, lng, lift float64) math.Vec3 {
	return v.rot.Apply(math.ToSphere(lat, lng, v.r*lift))
}

func (v view) project(p math.Vec3) (math.Projected, bool) {
	return math.Project(p, v.w, v.h, v.focal)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
