package render

import (
	gomath "math"

	"github.com/Faultbox/shockglobe/internal/engine/canvas"
	"github.com/Faultbox/shockglobe/internal/globe/scene"
)

// markerPulsePeriod is one pulse-ring cycle in clock units; the clock moves
// 0.016 per frame, so this is about two seconds at 60 fps.
const markerPulsePeriod = 1.92

func (p *Pipeline) drawMarkers(dst Painter, v view, markers []scene.Marker) {
	for i, m := range markers {
		pt := v.point(m.Lat, m.Lng, 1)
		if pt.Z < -v.r*0.08 {
			continue
		}
		pr, ok := v.project(pt)
		if !ok {
			continue
		}
		alpha := clamp(pt.Z/v.r+0.5, 0.18, 1)
		col := severityColor(m.Severity())

		// Rings of neighbouring markers are offset so they do not pulse in step.
		phase := gomath.Mod(v.clock/markerPulsePeriod+float64(i)*0.13, 1)
		dst.StrokeCircle(pr.X, pr.Y, 5+9*phase, 1.5*(1-phase)+0.3, col.WithAlpha((1-phase)*0.5*alpha))

		dst.FillCircle(pr.X, pr.Y, 7, canvas.RadialFrom(pr.X, pr.Y, 0, 7,
			canvas.Stop{Offset: 0, Color: col.WithAlpha(0.45 * alpha)},
			canvas.Stop{Offset: 1, Color: col.WithAlpha(0)},
		))
		dst.FillCircle(pr.X, pr.Y, 2.5, col.WithAlpha(alpha))

		if pt.Facing() && m.Label != "" {
			dst.FillText(p.upper(m.Label), pr.X+7, pr.Y+3, 7, canvas.AlignLeft, colorDestLabel.WithAlpha(alpha*0.9))
		}
	}
}

// Epicenter pulse rings.
const (
	epicenterRings     = 3
	epicenterRingSpeed = 0.36
)

// drawEpicenter keeps the epicenter visible at reduced opacity just past the
// horizon so the user can track it while rotating.
func (p *Pipeline) drawEpicenter(dst Painter, v view, ep *scene.Epicenter) {
	if ep == nil {
		return
	}
	pt := v.point(ep.Lat, ep.Lng, 1.01)
	pr, ok := v.project(pt)
	if !ok || pt.Z <= -v.r*0.1 {
		return
	}
	ea := 0.3
	if pt.Facing() {
		ea = 1
	}
	ex, ey := pr.X, pr.Y

	dst.FillCircle(ex, ey, v.r*0.42, canvas.RadialFrom(ex, ey, 0, v.r*0.42,
		canvas.Stop{Offset: 0, Color: canvas.RGBA(180, 20, 20, ea*0.09)},
		canvas.Stop{Offset: 1, Color: canvas.RGBA(180, 20, 20, 0)},
	))

	for ring := 0; ring < epicenterRings; ring++ {
		phase := gomath.Mod(v.clock*epicenterRingSpeed+float64(ring)/epicenterRings, 1)
		dst.StrokeCircle(ex, ey, 6+phase*48, 1.8*(1-phase)+0.3, canvas.RGBA(190, 20, 20, (1-phase)*ea*0.85))
	}

	dst.FillCircle(ex, ey, 12, canvas.RadialFrom(ex, ey, 0, 12,
		canvas.Stop{Offset: 0, Color: canvas.RGBA(230, 30, 30, ea)},
		canvas.Stop{Offset: 1, Color: canvas.RGBA(190, 20, 20, 0)},
	))
	dst.FillCircle(ex, ey, 2.8, canvas.RGBA(240, 235, 228, ea))

	const cs, gap = 11, 5
	var cross canvas.Path
	cross.Line(ex-cs, ey, ex-gap, ey)
	cross.Line(ex+gap, ey, ex+cs, ey)
	cross.Line(ex, ey-cs, ex, ey-gap)
	cross.Line(ex, ey+gap, ex, ey+cs)
	dst.StrokePath(&cross, 0.8, canvas.RGBA(200, 25, 25, ea*0.7))

	if pt.Facing() {
		if ep.Label != "" {
			dst.FillText(p.upper(ep.Label), ex+8, ey-6, 8, canvas.AlignLeft, canvas.RGBA(180, 20, 20, ea*0.9))
		}
		dst.FillText("EPICENTER", ex+8, ey+4, 7, canvas.AlignLeft, canvas.RGBA(130, 60, 60, ea*0.65))
	}
}
