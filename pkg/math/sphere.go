package math

import "math"

const degToRad = math.Pi / 180

// ToSphere converts latitude/longitude in degrees to a point on a sphere of
// the given radius. Longitude is offset by 180 degrees so the seam sits at the
// back of the default-facing hemisphere.
func ToSphere(lat, lng, radius float64) Vec3 {
	phi := (90 - lat) * degToRad
	theta := (lng + 180) * degToRad
	sinPhi := math.Sin(phi)
	return Vec3{
		X: -(radius * sinPhi * math.Cos(theta)),
		Y: radius * math.Cos(phi),
		Z: radius * sinPhi * math.Sin(theta),
	}
}

// FromSphere is the inverse of ToSphere. Longitude is normalized to
// [-180, 180). At the poles longitude is undefined and reported as -180.
func FromSphere(p Vec3) (lat, lng, radius float64) {
	radius = p.Length()
	if radius == 0 {
		return 0, 0, 0
	}
	c := p.Y / radius
	if c > 1 {
		c = 1
	} else if c < -1 {
		c = -1
	}
	lat = 90 - math.Acos(c)/degToRad
	theta := math.Atan2(p.Z, -p.X) / degToRad
	lng = WrapDegrees(theta - 180)
	return lat, lng, radius
}

// WrapDegrees maps an angle in degrees to [-180, 180).
func WrapDegrees(a float64) float64 {
	a = math.Mod(a+180, 360)
	if a < 0 {
		a += 360
	}
	return a - 180
}
