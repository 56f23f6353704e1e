package pathwalk

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, including those inside points and samples, with an
// absolute tolerance.
func approx(epsilon float64) cmp.Option {
	return cmpopts.EquateApprox(0, epsilon)
}

func assertNear(t *testing.T, got Point, want Point, epsilon float64) {
	t.Helper()
	if d := got.Sub(want).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", got, want)
	}
}

func pointsOf(samples []Sample) []Point {
	out := make([]Point, len(samples))
	for i, s := range samples {
		out[i] = s.Point
	}
	return out
}

// tangentsOf returns the sample tangents in radians. Angles are returned as
// plain floats so that approx applies to them.
func tangentsOf(samples []Sample) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s.Tangent)
	}
	return out
}
