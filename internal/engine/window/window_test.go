package window

import "testing"

func TestRatio(t *testing.T) {
	tests := []struct {
		logical, drawable int
		want              float64
	}{
		{800, 800, 1},
		{800, 1600, 2},
		{1000, 1500, 1.5},
		{0, 1600, 1},
		{800, 0, 1},
	}

	for _, tt := range tests {
		if got := ratio(tt.logical, tt.drawable); got != tt.want {
			t.Errorf("ratio(%d, %d) = %v, want %v", tt.logical, tt.drawable, got, tt.want)
		}
	}
}

func TestPixelRatioOverride(t *testing.T) {
	w := &Window{config: Config{PixelRatio: 3}}
	if got := w.PixelRatio(); got != 3 {
		t.Errorf("PixelRatio() = %v, want override 3", got)
	}
}
