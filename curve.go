package pathwalk

import (
	"math"
)

// DefaultAccuracy is a default value for functions that take an accuracy
// argument. It is suitable for general-purpose use, such as 2D graphics.
const DefaultAccuracy = 1e-6

// maxExtrema is the maximum number of interior extrema a cubic Bézier can
// have, two per axis.
const maxExtrema = 4

// maxArclenDepth bounds the recursion of the adaptive quadrature. Only curves
// with cusps get anywhere near it.
const maxArclenDepth = 12

// ParametricCurve describes a curve parametrized by a scalar t ∈ [0, 1].
type ParametricCurve interface {
	// Eval evaluates the curve at parameter t.
	Eval(t float64) Point
	// Deriv evaluates the first derivative of the curve at parameter t. Its
	// direction is the direction of travel, its magnitude the speed.
	Deriv(t float64) Vec2
	Start() Point
	End() Point
}

// boundingBox returns the smallest axis-aligned rectangle that encloses the
// curve in the range [0, 1].
func boundingBox(c interface {
	ParametricCurve
	extrema() ([maxExtrema]float64, int)
}) Rect {
	bbox := NewRectFromPoints(c.Start(), c.End())
	ex, n := c.extrema()
	for _, t := range ex[:n] {
		bbox = bbox.UnionPoint(c.Eval(t))
	}
	return bbox
}

// arclen returns the arc length of c between t0 and t1, computed with adaptive
// Gauss-Legendre quadrature over the curve's speed.
func arclen(c ParametricCurve, t0, t1, accuracy float64) float64 {
	if t1 <= t0 {
		return 0
	}
	return arclenAdaptive(c, t0, t1, gaussLegendre(c, t0, t1), accuracy, 0)
}

func arclenAdaptive(c ParametricCurve, t0, t1, whole, accuracy float64, depth int) float64 {
	mid := 0.5 * (t0 + t1)
	left := gaussLegendre(c, t0, mid)
	right := gaussLegendre(c, mid, t1)
	if depth >= maxArclenDepth || math.Abs(left+right-whole) <= accuracy {
		return left + right
	}
	return arclenAdaptive(c, t0, mid, left, accuracy*0.5, depth+1) +
		arclenAdaptive(c, mid, t1, right, accuracy*0.5, depth+1)
}

func gaussLegendre(c ParametricCurve, t0, t1 float64) float64 {
	half := 0.5 * (t1 - t0)
	mid := 0.5 * (t0 + t1)
	var sum float64
	for _, coeff := range gaussLegendreCoeffs16Half {
		wi, xi := coeff[0], coeff[1]
		sum += wi * (c.Deriv(mid+half*xi).Hypot() + c.Deriv(mid-half*xi).Hypot())
	}
	return sum * half
}

// solveForArclen returns the parameter at which the arc length from the start
// of c equals s. total must be the arc length of the whole curve.
//
// This is Newton's method on the arc length function, kept inside a
// bisection bracket so that flat spots in the speed can't throw it off.
func solveForArclen(c ParametricCurve, s, total, accuracy float64) float64 {
	if s <= 0 {
		return 0
	}
	if s >= total {
		return 1
	}
	lo, hi := 0.0, 1.0
	t := s / total
	for range 64 {
		f := arclen(c, 0, t, accuracy) - s
		if math.Abs(f) <= accuracy {
			break
		}
		if f > 0 {
			hi = t
		} else {
			lo = t
		}
		if hi-lo < 1e-15 {
			break
		}
		speed := c.Deriv(t).Hypot()
		next := t - f/speed
		if speed == 0 || !(next > lo && next < hi) {
			next = 0.5 * (lo + hi)
		}
		t = next
	}
	return t
}

// solveQuadratic finds the real roots of c0 + c1 x + c2 x² = 0.
//
// When the equation is (nearly) linear, the single root of the linear part is
// returned. When all coefficients are zero, no roots are returned.
func solveQuadratic(c0, c1, c2 float64) ([2]float64, int) {
	var out [2]float64
	sc0 := c0 / c2
	sc1 := c1 / c2
	if math.IsInf(sc0, 0) || math.IsInf(sc1, 0) || math.IsNaN(sc0) || math.IsNaN(sc1) {
		if c1 == 0 {
			return out, 0
		}
		out[0] = -c0 / c1
		return out, 1
	}
	arg := sc1*sc1 - 4*sc0
	switch {
	case arg < 0:
		return out, 0
	case arg == 0:
		out[0] = -0.5 * sc1
		return out, 1
	}
	// Avoid cancellation by computing the larger root first.
	root1 := -0.5 * (sc1 + math.Copysign(math.Sqrt(arg), sc1))
	root2 := sc0 / root1
	if root2 > root1 {
		root1, root2 = root2, root1
	}
	out[0], out[1] = root2, root1
	return out, 2
}

// Tables of Legendre-Gauss quadrature coefficients, adapted from:
// <https://pomax.github.io/bezierinfo/legendre-gauss.html>
//
// Each entry is a weight and the positive abscissa of a symmetric pair.
var gaussLegendreCoeffs16Half = [...][2]float64{
	{0.1894506104550685, 0.0950125098376374},
	{0.1826034150449236, 0.2816035507792589},
	{0.1691565193950025, 0.4580167776572274},
	{0.1495959888165767, 0.6178762444026438},
	{0.1246289712555339, 0.7554044083550030},
	{0.0951585116824928, 0.8656312023878318},
	{0.0622535239386479, 0.9445750230732326},
	{0.0271524594117541, 0.9894009349916499},
}
