package math

import (
	"math"
	"testing"
)

func TestToSphereRadius(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 15 {
		for lng := -180.0; lng <= 180; lng += 20 {
			p := ToSphere(lat, lng, 200)
			if math.Abs(p.Length()-200) > 1e-9 {
				t.Fatalf("ToSphere(%v, %v) length = %v, want 200", lat, lng, p.Length())
			}
		}
	}
}

func TestToSphereRoundTrip(t *testing.T) {
	const eps = 1e-9

	for lat := -90.0; lat <= 90; lat += 7.5 {
		for lng := -180.0; lng <= 180; lng += 11.25 {
			gotLat, gotLng, r := FromSphere(ToSphere(lat, lng, 1))
			if math.Abs(gotLat-lat) > eps {
				t.Errorf("lat round trip (%v, %v): got %v", lat, lng, gotLat)
			}
			if math.Abs(r-1) > eps {
				t.Errorf("radius round trip (%v, %v): got %v", lat, lng, r)
			}
			// Longitude is undefined at the poles.
			if math.Abs(lat) == 90 {
				continue
			}
			if d := math.Abs(WrapDegrees(gotLng - lng)); d > 1e-7 {
				t.Errorf("lng round trip (%v, %v): got %v", lat, lng, gotLng)
			}
		}
	}
}

func TestToSphereAxes(t *testing.T) {
	tests := []struct {
		name     string
		lat, lng float64
		want     Vec3
	}{
		{"north pole", 90, 0, Vec3{0, 1, 0}},
		{"south pole", -90, 0, Vec3{0, -1, 0}},
		{"prime meridian", 0, 0, Vec3{1, 0, 0}},
		{"90 west faces viewer", 0, -90, Vec3{0, 0, 1}},
		{"90 east faces away", 0, 90, Vec3{0, 0, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToSphere(tt.lat, tt.lng, 1)
			if got.Distance(tt.want) > 1e-9 {
				t.Errorf("ToSphere(%v, %v) = %v, want %v", tt.lat, tt.lng, got, tt.want)
			}
		})
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0},
		{180, -180},
		{-180, -180},
		{190, -170},
		{-190, 170},
		{720, 0},
	}
	for _, tt := range tests {
		if got := WrapDegrees(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
