package pathwalk

import (
	"math"
	"testing"
)

func TestCubicBezEval(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	diff(t, Pt(0, 0), c.Eval(0))
	diff(t, Pt(10, 0), c.Eval(1))
	assertNear(t, c.Eval(0.5), Pt(5, 7.5), 1e-12)
}

func TestCubicBezDerivMatchesExpandedForm(t *testing.T) {
	// B′(t) = −3(1−t)²·P0 + 3(3t²−4t+1)·P1 + 3(2t−3t²)·P2 + 3t²·P3
	expanded := func(c CubicBez, t float64) Vec2 {
		a := -3 * (1 - t) * (1 - t)
		b := 3 * (3*t*t - 4*t + 1)
		cc := 3 * (2*t - 3*t*t)
		d := 3 * t * t
		return Vec(
			a*c.P0.X+b*c.P1.X+cc*c.P2.X+d*c.P3.X,
			a*c.P0.Y+b*c.P1.Y+cc*c.P2.Y+d*c.P3.Y,
		)
	}
	c := CubicBez{Pt(200, 200), Pt(50, 100), Pt(180, 300), Pt(200, 200)}
	for i := range 21 {
		tt := float64(i) / 20
		got := c.Deriv(tt)
		want := expanded(c, tt)
		if d := got.Sub(want).Hypot(); d > 1e-9 {
			t.Errorf("t=%g: got %s, want %s", tt, got, want)
		}
	}
}

func TestCubicBezDegenerateControls(t *testing.T) {
	// With the control points on top of the end points, the curve runs along
	// the chord, but not at the speed of a line.
	c := CubicBez{Pt(0, 0), Pt(0, 0), Pt(10, 0), Pt(10, 0)}
	assertNear(t, c.Eval(0.5), Pt(5, 0), 1e-12)
	// (3·0.75·0.0625 + 0.015625) · 10
	assertNear(t, c.Eval(0.25), Pt(1.5625, 0), 1e-12)
	if l := (Line{c.P0, c.P3}).Eval(0.25); l == c.Eval(0.25) {
		t.Errorf("cubic is parametrized like a line")
	}

	// The derivative vanishes at both ends; the direction comes from the
	// other control points.
	c = CubicBez{Pt(0, 0), Pt(0, 0), Pt(10, 10), Pt(10, 10)}
	if !c.Deriv(0).IsZero() || !c.Deriv(1).IsZero() {
		t.Fatal("expected zero derivatives at the end points")
	}
	diff(t,
		[]float64{math.Pi / 4, math.Pi / 4, math.Pi / 4},
		[]float64{float64(c.Tangent(0)), float64(c.Tangent(0.5)), float64(c.Tangent(1))},
		approx(1e-12))

	// All points coincide.
	c = CubicBez{Pt(1, 1), Pt(1, 1), Pt(1, 1), Pt(1, 1)}
	if got := c.Tangent(0.5); got != 0 {
		t.Errorf("got %v, want 0", got)
	}
}

func TestCubicBezTangents(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 0), Pt(0, 5), Pt(5, 5)}
	d0, d1 := c.Tangents()
	diff(t, Vec(0, 5), d0)
	diff(t, Vec(5, 0), d1)
}

func TestCubicBezSubsegment(t *testing.T) {
	c := CubicBez{Pt(3.1, 4.1), Pt(5.9, 2.6), Pt(5.3, 5.8), Pt(9.7, 9.3)}
	t0 := 0.1
	t1 := 0.8
	cs := c.Subsegment(t0, t1)
	epsilon := 1e-12
	n := 10
	for i := range n + 1 {
		tt := float64(i) / float64(n)
		ts := t0 + tt*(t1-t0)
		assertNear(t, c.Eval(ts), cs.Eval(tt), epsilon)
	}
}

func TestCubicBezArclen(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(3, 0)}
	if d := math.Abs(c.Arclen(DefaultAccuracy) - 3); d > 1e-12 {
		t.Errorf("got error %g", d)
	}

	// Compare against a finely flattened version of the curve.
	c = CubicBez{Pt(200, 100), Pt(50, 100), Pt(180, 300), Pt(90, 400)}
	const n = 100000
	var want float64
	prev := c.Eval(0)
	for i := 1; i <= n; i++ {
		pt := c.Eval(float64(i) / n)
		want += pt.Distance(prev)
		prev = pt
	}
	if d := math.Abs(c.Arclen(1e-9) - want); d > 1e-4 {
		t.Errorf("got error %g", d)
	}
}

func TestCubicBezBoundingBox(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(0, 10), Pt(10, 10), Pt(10, 0)}
	diff(t, Rect{0, 0, 10, 7.5}, c.BoundingBox(), approx(1e-12))

	// An S curve overshoots in x on both sides.
	c = CubicBez{Pt(0, 0), Pt(10, 0), Pt(-10, 10), Pt(0, 10)}
	bbox := c.BoundingBox()
	for i := range 101 {
		if pt := c.Eval(float64(i) / 100); !bbox.Contains(pt) {
			t.Errorf("%s is outside of %s", pt, bbox)
		}
	}
	if bbox.X1 <= 0 || bbox.X0 >= 0 {
		t.Errorf("bounding box %s doesn't include the overshoot", bbox)
	}
}
