package render

import (
	"github.com/Faultbox/shockglobe/internal/engine/canvas"
	"github.com/Faultbox/shockglobe/internal/globe/scene"
)

// Grid layout in degrees.
const (
	gridLatMin  = -80
	gridLatMax  = 80
	gridSpacing = 15
	gridSample  = 3
)

func drawGrid(dst Painter, v view) {
	var path canvas.Path

	for lat := gridLatMin; lat <= gridLatMax; lat += gridSpacing {
		path.Reset()
		for lng := 0; lng <= 360; lng += gridSample {
			v.gridSample(&path, float64(lat), float64(lng))
		}
		dst.StrokePath(&path, 0.5, colorGrid)
	}

	for lng := 0; lng < 360; lng += gridSpacing {
		path.Reset()
		for lat := -90; lat <= 90; lat += gridSample {
			v.gridSample(&path, float64(lat), float64(lng))
		}
		dst.StrokePath(&path, 0.5, colorGrid)
	}
}

// gridSample appends one sample of a grid line. Back-facing samples end the
// current run so the line never jumps across the horizon.
func (v view) gridSample(path *canvas.Path, lat, lng float64) {
	p := v.point(lat, lng, 1)
	if !p.Facing() {
		path.Break()
		return
	}
	pr, ok := v.project(p)
	if !ok {
		return
	}
	path.LineTo(pr.X, pr.Y)
}

func drawDots(dst Painter, v view, dots []scene.Dot) {
	for _, d := range dots {
		p := v.point(d.Lat, d.Lng, 1)
		if !p.Facing() {
			continue
		}
		pr, ok := v.project(p)
		if !ok {
			continue
		}
		depth := p.Z / v.r
		dst.FillCircle(pr.X, pr.Y, 0.9, colorDot.WithAlpha(0.12+0.5*depth))
	}
}
