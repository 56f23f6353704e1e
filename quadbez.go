package pathwalk

var _ ParametricCurve = QuadBez{}

// QuadBez is a quadratic Bézier curve with start point P0, control point P1 and
// end point P2.
//
//	B(t)  = (1−t)²·P0 + 2(1−t)t·P1 + t²·P2
//	B′(t) = 2(1−t)·(P1−P0) + 2t·(P2−P1)
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

func (q QuadBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(q.P0).Mul(mt * mt)
	b := Vec2(q.P1).Mul(mt * 2.0)
	c := Vec2(q.P2).Mul(t)
	return Point(a.Add(b.Add(c).Mul(t)))
}

func (q QuadBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	return q.P1.Sub(q.P0).Mul(2 * mt).Add(q.P2.Sub(q.P1).Mul(2 * t))
}

// Tangent returns the direction of travel at t. Where the derivative vanishes
// because the control point coincides with an end point, the chord from start
// to end gives the direction instead.
func (q QuadBez) Tangent(t float64) Angle {
	d := q.Deriv(t)
	if d.IsZero() {
		d = q.P2.Sub(q.P0)
	}
	return d.Angle()
}

func (q QuadBez) Start() Point { return q.P0 }
func (q QuadBez) End() Point   { return q.P2 }

// Subsegment returns the part of the curve between t0 and t1, as a curve of
// its own.
func (q QuadBez) Subsegment(t0, t1 float64) QuadBez {
	p0 := q.Eval(t0)
	p2 := q.Eval(t1)
	p1 := p0.Translate(q.Deriv(t0).Mul(0.5 * (t1 - t0)))
	return QuadBez{p0, p1, p2}
}

// Raise returns a cubic Bézier segment that exactly represents this quadratic.
func (q QuadBez) Raise() CubicBez {
	return CubicBez{
		q.P0,
		q.P0.Translate(q.P1.Sub(q.P0).Mul(2.0 / 3.0)),
		q.P2.Translate(q.P1.Sub(q.P2).Mul(2.0 / 3.0)),
		q.P2,
	}
}

// Arclen returns the arc length of the curve.
func (q QuadBez) Arclen(accuracy float64) float64 {
	return arclen(q, 0, 1, accuracy)
}

func (q QuadBez) BoundingBox() Rect {
	return boundingBox(q)
}

func (q QuadBez) extrema() ([maxExtrema]float64, int) {
	// The derivative is linear, so each axis has at most one root.
	var out [maxExtrema]float64
	var n int
	d0 := q.P1.Sub(q.P0)
	dd := q.P2.Sub(q.P1).Sub(d0)
	if dd.X != 0 {
		if t := -d0.X / dd.X; t > 0 && t < 1 {
			out[n] = t
			n++
		}
	}
	if dd.Y != 0 {
		if t := -d0.Y / dd.Y; t > 0 && t < 1 {
			out[n] = t
			n++
		}
	}
	return out, n
}

func (q QuadBez) IsInf() bool {
	return q.P0.IsInf() || q.P1.IsInf() || q.P2.IsInf()
}

func (q QuadBez) IsNaN() bool {
	return q.P0.IsNaN() || q.P1.IsNaN() || q.P2.IsNaN()
}
