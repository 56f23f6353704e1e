package pathwalk

import (
	"math"
	"testing"

	"golang.org/x/image/math/fixed"
)

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1)
	p4 := Pt(-7, -2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointLerpEndpoints(t *testing.T) {
	// Endpoints must be hit exactly, so that sampling a line lands on its end
	// point.
	p0 := Pt(0.1, 0.7)
	p1 := Pt(0.3, 1.9)
	if got := p0.Lerp(p1, 0); got != p0 {
		t.Errorf("got %s at t=0, want %s", got, p0)
	}
	if got := p0.Lerp(p1, 1); got != p1 {
		t.Errorf("got %s at t=1, want %s", got, p1)
	}
	assertNear(t, p0.Lerp(p1, 0.5), Pt(0.2, 1.3), 1e-12)
}

func TestPointFixed(t *testing.T) {
	pt := Pt(1.5, -2.25)
	want := fixed.Point26_6{X: 96, Y: -144}
	if got := pt.Fixed(); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := PtFromFixed(want); got != pt {
		t.Errorf("got %s, want %s", got, pt)
	}

	// 0.3 * 64 = 19.2
	if got := Pt(0.3, 0).Fixed().X; got != 19 {
		t.Errorf("got %v, want 19", got)
	}
}

func TestVec2Angle(t *testing.T) {
	tests := []struct {
		v    Vec2
		want float64
	}{
		{Vec(1, 0), 0},
		{Vec(0, 1), math.Pi / 2},
		{Vec(0, -1), -math.Pi / 2},
		{Vec(-1, 0), math.Pi},
		{Vec(1, 1), math.Pi / 4},
		{Vec(0, 0), 0},
		{Vec(math.Copysign(0, -1), 0), 0},
	}
	for _, tt := range tests {
		if got := tt.v.Angle(); math.Abs(float64(got)-tt.want) > 1e-12 {
			t.Errorf("%s: got %v, want %v", tt.v, float64(got), tt.want)
		}
	}
}

func TestAngleDegrees(t *testing.T) {
	if d := FromDegrees(90).Degrees(); math.Abs(d-90) > 1e-12 {
		t.Errorf("got %v degrees, want 90", d)
	}
	if r := FromDegrees(180).Radians(); math.Abs(r-math.Pi) > 1e-15 {
		t.Errorf("got %v radians, want π", r)
	}
}
