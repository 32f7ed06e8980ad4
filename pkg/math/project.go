package math

// DefaultFocalLength is the perspective divisor used by the globe view.
const DefaultFocalLength = 680

// Projected is a view-space point mapped onto the viewport.
type Projected struct {
	X, Y  float64
	Scale float64
}

// Project maps a view-space point onto a width x height viewport centred on
// the origin. It returns false when the point sits on or behind the focal
// plane; callers skip the point for this frame.
func Project(p Vec3, width, height, focal float64) (Projected, bool) {
	d := p.Z + focal
	if d <= 0 {
		return Projected{}, false
	}
	s := focal / d
	return Projected{
		X:     p.X*s + width/2,
		Y:     -p.Y*s + height/2,
		Scale: s,
	}, true
}
