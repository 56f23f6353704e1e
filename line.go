package pathwalk

// Line represents a line segment.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

var _ ParametricCurve = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line. The accuracy is ignored, the result
// is exact.
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Deriv returns the direction of the line, which is the same for every t.
func (l Line) Deriv(t float64) Vec2 {
	return l.P1.Sub(l.P0)
}

// Tangent returns the direction of travel along the line. A vertical line
// points at ±π/2; a line of zero length has angle 0.
func (l Line) Tangent(t float64) Angle {
	return l.Deriv(t).Angle()
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }

func (l Line) Subsegment(t0, t1 float64) Line {
	return Line{l.Eval(t0), l.Eval(t1)}
}

func (l Line) BoundingBox() Rect {
	return NewRectFromPoints(l.P0, l.P1)
}

func (l Line) IsInf() bool {
	return l.P0.IsInf() || l.P1.IsInf()
}

func (l Line) IsNaN() bool {
	return l.P0.IsNaN() || l.P1.IsNaN()
}
