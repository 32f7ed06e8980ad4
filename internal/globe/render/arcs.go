package render

import (
	"github.com/Faultbox/shockglobe/internal/engine/canvas"
	"github.com/Faultbox/shockglobe/internal/globe/scene"
	"github.com/Faultbox/shockglobe/pkg/math"
)

func (p *Pipeline) arcPoint(v view, a scene.Arc, t float64) math.Vec3 {
	lat, lng, lift := a.At(t, p.opts.ArcElevation)
	return v.point(lat, lng, lift)
}

func (p *Pipeline) drawArcGhosts(dst Painter, v view, arcs []scene.Arc) {
	var path canvas.Path
	steps := p.opts.ArcSteps
	for _, a := range arcs {
		path.Reset()
		for i := 0; i <= steps; i++ {
			pt := p.arcPoint(v, a, float64(i)/float64(steps))
			if !pt.Facing() {
				path.Break()
				continue
			}
			pr, ok := v.project(pt)
			if !ok {
				path.Break()
				continue
			}
			path.LineTo(pr.X, pr.Y)
		}
		dst.StrokePath(&path, 0.7, ghostColor(a.Category))
	}
}

// drawParticles animates the shock particles. Each trail segment is culled
// on its own, so a trail crossing the horizon loses only its hidden part.
func (p *Pipeline) drawParticles(dst Painter, v view, arcs []scene.Arc) {
	n := p.opts.ParticlesPerArc
	var seg canvas.Path
	for idx, a := range arcs {
		for i := 0; i < n; i++ {
			headT := scene.ParticleHead(v.clock, idx, i, n)

			var prev *math.Projected
			for s := 0; s <= scene.ParticleTrailSteps; s++ {
				pt := p.arcPoint(v, a, scene.TrailT(headT, s))
				if !pt.Facing() {
					prev = nil
					continue
				}
				pr, ok := v.project(pt)
				if !ok {
					prev = nil
					continue
				}
				if prev != nil && s > 0 {
					alpha := float64(s) / scene.ParticleTrailSteps * 0.7
					seg.Reset()
					seg.Line(prev.X, prev.Y, pr.X, pr.Y)
					dst.StrokePath(&seg, 1.2, colorTrail.WithAlpha(alpha))
				}
				prev = &pr
			}

			head := p.arcPoint(v, a, headT)
			if !head.Facing() {
				continue
			}
			hp, ok := v.project(head)
			if !ok {
				continue
			}
			dst.FillCircle(hp.X, hp.Y, 8, canvas.RadialFrom(hp.X, hp.Y, 0, 8,
				canvas.Stop{Offset: 0, Color: canvas.RGBA(220, 35, 35, 0.8)},
				canvas.Stop{Offset: 1, Color: canvas.RGBA(190, 25, 25, 0)},
			))
			dst.FillCircle(hp.X, hp.Y, 1.5, colorHeadCore)
		}
	}
}

// drawDestinations marks where each arc lands. Crosshairs fade out as the
// destination rotates behind the globe; labels need a front face.
func (p *Pipeline) drawDestinations(dst Painter, v view, arcs []scene.Arc) {
	const cs = 5
	var cross canvas.Path
	for _, a := range arcs {
		pt := v.point(a.DestLat, a.DestLng, 1.01)
		if pt.Z < -v.r*0.08 {
			continue
		}
		pr, ok := v.project(pt)
		if !ok {
			continue
		}
		alpha := clamp(pt.Z/v.r+0.5, 0.18, 1)

		cross.Reset()
		cross.Line(pr.X-cs, pr.Y, pr.X+cs, pr.Y)
		cross.Line(pr.X, pr.Y-cs, pr.X, pr.Y+cs)
		dst.StrokePath(&cross, 0.8, colorDestCross.WithAlpha(alpha))

		if pt.Facing() && a.DestLabel != "" {
			dst.FillText(p.upper(a.DestLabel), pr.X+6, pr.Y-3, 8, canvas.AlignLeft, colorDestLabel.WithAlpha(alpha))
		}
	}
}
