package present

import (
	"testing"

	"github.com/Faultbox/shockglobe/pkg/math"
)

func TestQuadVerticesCoverViewport(t *testing.T) {
	const w, h = 640, 480
	v := quadVertices(w, h)
	if len(v) != 6*4 {
		t.Fatalf("expected 6 vertices of 4 floats, got %d floats", len(v))
	}

	proj := math.Ortho(0, w, h, 0, -1, 1)
	for i := 0; i < 6; i++ {
		x, y, u, vv := v[i*4], v[i*4+1], v[i*4+2], v[i*4+3]
		if u != x/w || vv != y/h {
			t.Errorf("vertex %d: uv (%v,%v) does not follow position (%v,%v)", i, u, vv, x, y)
		}

		ndc := proj.TransformVec3(math.Vec3{X: float64(x), Y: float64(y)})
		if ndc.X < -1.0001 || ndc.X > 1.0001 || ndc.Y < -1.0001 || ndc.Y > 1.0001 {
			t.Errorf("vertex %d outside clip space: %+v", i, ndc)
		}
	}

	// Top-left of the image lands at the top-left of clip space.
	ndc := proj.TransformVec3(math.Vec3{})
	if ndc.X > -0.999 || ndc.Y < 0.999 {
		t.Errorf("origin should map to (-1, 1), got %+v", ndc)
	}
}
