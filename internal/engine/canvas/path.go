package canvas

import "github.com/Faultbox/shockglobe/pkg/math"

// Path is a set of open sub-paths built with MoveTo/LineTo.
type Path struct {
	subs [][]math.Vec2
	pen  bool
}

// MoveTo starts a new sub-path.
func (p *Path) MoveTo(x, y float64) {
	p.subs = append(p.subs, []math.Vec2{{X: x, Y: y}})
	p.pen = true
}

// LineTo extends the current sub-path, starting one if the pen is up.
func (p *Path) LineTo(x, y float64) {
	if !p.pen {
		p.MoveTo(x, y)
		return
	}
	last := len(p.subs) - 1
	p.subs[last] = append(p.subs[last], math.Vec2{X: x, Y: y})
}

// Line adds a standalone segment.
func (p *Path) Line(x0, y0, x1, y1 float64) {
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
}

// Subpaths returns the sub-paths. Single-point sub-paths are kept; strokes
// skip them.
func (p *Path) Subpaths() [][]math.Vec2 {
	return p.subs
}

// Segments counts drawable segments.
func (p *Path) Segments() int {
	n := 0
	for _, s := range p.subs {
		if len(s) > 1 {
			n += len(s) - 1
		}
	}
	return n
}

// Break lifts the pen; the next LineTo starts a new sub-path.
func (p *Path) Break() {
	p.pen = false
}

// Reset clears the path, keeping its storage.
func (p *Path) Reset() {
	p.subs = p.subs[:0]
	p.pen = false
}
