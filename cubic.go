package pathwalk

var _ ParametricCurve = CubicBez{}

// CubicBez is a cubic Bézier curve with start point P0, control points P1 and
// P2, and end point P3.
//
//	B(t)  = (1−t)³·P0 + 3(1−t)²t·P1 + 3(1−t)t²·P2 + t³·P3
//	B′(t) = 3(1−t)²·(P1−P0) + 6(1−t)t·(P2−P1) + 3t²·(P3−P2)
//
// A cubic whose control points coincide with its end points is not, in
// general, parametrized like a straight line: its speed drops to zero at both
// ends.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	return Point(a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t)))
}

func (c CubicBez) Deriv(t float64) Vec2 {
	mt := 1.0 - t
	return c.P1.Sub(c.P0).Mul(3 * mt * mt).
		Add(c.P2.Sub(c.P1).Mul(6 * mt * t)).
		Add(c.P3.Sub(c.P2).Mul(3 * t * t))
}

// Tangent returns the direction of travel at t.
//
// Where the derivative vanishes, the direction is taken from the nearest
// distinct control point: at the start from P0 towards P1, P2 or P3, at the end
// from P2, P1 or P0 towards P3, and in the interior along the chord. A curve
// whose points all coincide has angle 0.
func (c CubicBez) Tangent(t float64) Angle {
	d := c.Deriv(t)
	if !d.IsZero() {
		return d.Angle()
	}
	switch {
	case t <= 0:
		d0, _ := c.Tangents()
		return d0.Angle()
	case t >= 1:
		_, d1 := c.Tangents()
		return d1.Angle()
	default:
		return c.P3.Sub(c.P0).Angle()
	}
}

// Tangents returns the directions of the curve at its start and end. Unlike
// [CubicBez.Deriv], it is robust to control points coinciding with end points.
func (c CubicBez) Tangents() (Vec2, Vec2) {
	const epsilon = 1e-12
	var d0, d1 Vec2
	switch {
	case c.P1.Sub(c.P0).Hypot2() > epsilon:
		d0 = c.P1.Sub(c.P0)
	case c.P2.Sub(c.P0).Hypot2() > epsilon:
		d0 = c.P2.Sub(c.P0)
	default:
		d0 = c.P3.Sub(c.P0)
	}
	switch {
	case c.P3.Sub(c.P2).Hypot2() > epsilon:
		d1 = c.P3.Sub(c.P2)
	case c.P3.Sub(c.P1).Hypot2() > epsilon:
		d1 = c.P3.Sub(c.P1)
	default:
		d1 = c.P3.Sub(c.P0)
	}
	return d0, d1
}

func (c CubicBez) Start() Point { return c.P0 }
func (c CubicBez) End() Point   { return c.P3 }

// Subsegment returns the part of the curve between t0 and t1, as a curve of
// its own.
func (c CubicBez) Subsegment(t0, t1 float64) CubicBez {
	p0 := c.Eval(t0)
	p3 := c.Eval(t1)
	scale := (t1 - t0) / 3.0
	p1 := p0.Translate(c.Deriv(t0).Mul(scale))
	p2 := p3.Translate(c.Deriv(t1).Mul(scale).Negate())
	return CubicBez{p0, p1, p2, p3}
}

// Arclen returns the arc length of the curve.
func (c CubicBez) Arclen(accuracy float64) float64 {
	return arclen(c, 0, 1, accuracy)
}

func (c CubicBez) BoundingBox() Rect {
	return boundingBox(c)
}

func (c CubicBez) extrema() ([maxExtrema]float64, int) {
	var out [maxExtrema]float64
	var n int
	// The derivative is a quadratic per axis; with d0 = P1−P0, d1 = P2−P1 and
	// d2 = P3−P2 its roots are those of d0 + 2(d1−d0)t + (d0−2d1+d2)t².
	one := func(d0, d1, d2 float64) {
		a := d0 - 2*d1 + d2
		b := 2 * (d1 - d0)
		roots, m := solveQuadratic(d0, b, a)
		for _, t := range roots[:m] {
			if t > 0 && t < 1 {
				out[n] = t
				n++
			}
		}
	}
	d0 := c.P1.Sub(c.P0)
	d1 := c.P2.Sub(c.P1)
	d2 := c.P3.Sub(c.P2)
	one(d0.X, d1.X, d2.X)
	one(d0.Y, d1.Y, d2.Y)
	return out, n
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}
