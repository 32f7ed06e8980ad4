package math

import "math"

// RotateYaw rotates p around the vertical (Y) axis.
func RotateYaw(p Vec3, angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{
		X: p.X*c + p.Z*s,
		Y: p.Y,
		Z: -p.X*s + p.Z*c,
	}
}

// RotatePitch rotates p around the horizontal (X) axis.
func RotatePitch(p Vec3, angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{
		X: p.X,
		Y: p.Y*c - p.Z*s,
		Z: p.Y*s + p.Z*c,
	}
}

// Rotation is the globe view orientation in radians. Angles are unbounded;
// they wrap through the periodicity of sin and cos.
type Rotation struct {
	Yaw   float64
	Pitch float64
}

// Apply transforms p into view space: yaw first, then pitch. Every caller
// that places something on the globe must go through Apply, otherwise those
// elements shear against the grid.
func (r Rotation) Apply(p Vec3) Vec3 {
	return RotatePitch(RotateYaw(p, r.Yaw), r.Pitch)
}
