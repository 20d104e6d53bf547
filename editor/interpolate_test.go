package editor

import (
	"math"
	"testing"
)

func TestInterpolatorNeverExceedsEndpoints(t *testing.T) {
	fn := interpolator(0, 1, 0.2, -0.3)
	for time := -0.5; time <= 1.5; time += 0.01 {
		v := fn(time)
		if v < -0.3 || v > 0.2 {
			t.Errorf("fn(%v) = %v, outside [-0.3, 0.2]", time, v)
		}
	}
}

func TestInterpolatorLinearInside(t *testing.T) {
	fn := interpolator(0, 1, 0.2, -0.3)
	for _, tc := range []struct {
		time float64
		want float32
	}{
		{0, 0.2},
		{0.5, -0.05},
		{1, -0.3},
	} {
		if got := fn(tc.time); math.Abs(float64(got-tc.want)) > 1e-6 {
			t.Errorf("fn(%v) = %v, want %v", tc.time, got, tc.want)
		}
	}
}

func TestInterpolatorZeroWidthSegment(t *testing.T) {
	fn := interpolator(0.5, 0.5, 0.2, -0.3)
	for _, time := range []float64{0, 0.5, 1} {
		if got := fn(time); got != -0.3 {
			t.Errorf("fn(%v) = %v, want the newer value -0.3", time, got)
		}
	}
}

func TestInterpolatorReversedAnchors(t *testing.T) {
	// dragging right to left: t1 < t0
	fn := interpolator(1, 0, -0.3, 0.2)
	if got := fn(0); math.Abs(float64(got-0.2)) > 1e-6 {
		t.Errorf("fn(0) = %v, want 0.2", got)
	}
	if got := fn(1); math.Abs(float64(got-(-0.3))) > 1e-6 {
		t.Errorf("fn(1) = %v, want -0.3", got)
	}
}
