package pathwalk

import (
	"fmt"
)

type SegmentKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveKind SegmentKind = iota + 1
	// Draw a line from the current location to the point.
	LineKind
	// Draw a quadratic Bézier using the current location, a control point and
	// an end point.
	QuadKind
	// Draw a cubic Bézier using the current location, two control points and
	// an end point.
	CubicKind
	// Draw a line back to the start of the path.
	CloseKind
)

func (k SegmentKind) String() string {
	switch k {
	case MoveKind:
		return "MoveTo"
	case LineKind:
		return "LineTo"
	case QuadKind:
		return "QuadTo"
	case CubicKind:
		return "CubicTo"
	case CloseKind:
		return "ClosePath"
	default:
		return fmt.Sprintf("SegmentKind(%d)", int(k))
	}
}

// Segment is one drawing instruction of a [Path]. The meaning of the points
// depends on the kind:
//
//   - MoveKind, LineKind: P0 is the target.
//   - QuadKind: P0 is the control point, P1 the target.
//   - CubicKind: P0 and P1 are the control points, P2 the target.
//   - CloseKind: no points are used.
//
// Use [MoveTo], [LineTo], [QuadTo], [CubicTo] and [ClosePath] to construct
// segments.
type Segment struct {
	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
}

func MoveTo(to Point) Segment {
	return Segment{Kind: MoveKind, P0: to}
}

func LineTo(to Point) Segment {
	return Segment{Kind: LineKind, P0: to}
}

func QuadTo(control, to Point) Segment {
	return Segment{Kind: QuadKind, P0: control, P1: to}
}

func CubicTo(control1, control2, to Point) Segment {
	return Segment{Kind: CubicKind, P0: control1, P1: control2, P2: to}
}

func ClosePath() Segment {
	return Segment{Kind: CloseKind}
}

// IsDrawing reports whether the segment draws something, that is, whether it
// is anything but a move.
func (seg Segment) IsDrawing() bool {
	return seg.Kind != MoveKind
}

// Target returns the point the pen is at after the segment. start is the start
// of the path, which is where ClosePath returns to.
func (seg Segment) Target(start Point) Point {
	switch seg.Kind {
	case MoveKind, LineKind:
		return seg.P0
	case QuadKind:
		return seg.P1
	case CubicKind:
		return seg.P2
	case CloseKind:
		return start
	default:
		panic(fmt.Sprintf("invalid segment kind %v", seg.Kind))
	}
}

// Curve resolves a drawing segment to a curve, given the current pen position
// from and the start of the path. It must not be called for moves.
func (seg Segment) Curve(from, start Point) Curve {
	switch seg.Kind {
	case LineKind:
		return Line{from, seg.P0}.Curve()
	case QuadKind:
		return QuadBez{from, seg.P0, seg.P1}.Curve()
	case CubicKind:
		return CubicBez{from, seg.P0, seg.P1, seg.P2}.Curve()
	case CloseKind:
		return Line{from, start}.Curve()
	case MoveKind:
		panic("moves cannot be resolved to curves")
	default:
		panic(fmt.Sprintf("invalid segment kind %v", seg.Kind))
	}
}

func (seg Segment) String() string {
	switch seg.Kind {
	case MoveKind, LineKind:
		return fmt.Sprintf("%s(%s)", seg.Kind, seg.P0)
	case QuadKind:
		return fmt.Sprintf("%s(%s, %s)", seg.Kind, seg.P0, seg.P1)
	case CubicKind:
		return fmt.Sprintf("%s(%s, %s, %s)", seg.Kind, seg.P0, seg.P1, seg.P2)
	case CloseKind:
		return "ClosePath()"
	default:
		return fmt.Sprintf("InvalidSegment(%d)", int(seg.Kind))
	}
}

func (seg Segment) IsInf() bool {
	return seg.P0.IsInf() || seg.P1.IsInf() || seg.P2.IsInf()
}

func (seg Segment) IsNaN() bool {
	return seg.P0.IsNaN() || seg.P1.IsNaN() || seg.P2.IsNaN()
}

// Curve is a drawing segment resolved against its start point. This type acts
// as a tagged union of [Line], [QuadBez] and [CubicBez]; Kind is one of
// LineKind, QuadKind and CubicKind. A ClosePath resolves to a line.
type Curve struct {
	// We don't use an interface so that curves can be stored and passed
	// around without allocating.

	Kind SegmentKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

var _ ParametricCurve = Curve{}

func (l Line) Curve() Curve     { return Curve{Kind: LineKind, P0: l.P0, P1: l.P1} }
func (q QuadBez) Curve() Curve  { return Curve{Kind: QuadKind, P0: q.P0, P1: q.P1, P2: q.P2} }
func (c CubicBez) Curve() Curve { return Curve{Kind: CubicKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3} }

// Line returns the line represented by this curve. This is only valid when Kind ==
// LineKind.
func (c Curve) Line() Line { return Line{c.P0, c.P1} }

// Quad returns the quadratic Bézier represented by this curve. This is only valid
// when Kind == QuadKind.
func (c Curve) Quad() QuadBez { return QuadBez{c.P0, c.P1, c.P2} }

// Cubic returns the cubic Bézier represented by this curve. This is only valid
// when Kind == CubicKind.
func (c Curve) Cubic() CubicBez { return CubicBez{c.P0, c.P1, c.P2, c.P3} }

func (c Curve) Eval(t float64) Point {
	switch c.Kind {
	case LineKind:
		return c.Line().Eval(t)
	case QuadKind:
		return c.Quad().Eval(t)
	case CubicKind:
		return c.Cubic().Eval(t)
	default:
		panic(fmt.Sprintf("invalid curve kind %v", c.Kind))
	}
}

func (c Curve) Deriv(t float64) Vec2 {
	switch c.Kind {
	case LineKind:
		return c.Line().Deriv(t)
	case QuadKind:
		return c.Quad().Deriv(t)
	case CubicKind:
		return c.Cubic().Deriv(t)
	default:
		panic(fmt.Sprintf("invalid curve kind %v", c.Kind))
	}
}

// Tangent returns the direction of travel at t.
func (c Curve) Tangent(t float64) Angle {
	switch c.Kind {
	case LineKind:
		return c.Line().Tangent(t)
	case QuadKind:
		return c.Quad().Tangent(t)
	case CubicKind:
		return c.Cubic().Tangent(t)
	default:
		panic(fmt.Sprintf("invalid curve kind %v", c.Kind))
	}
}

func (c Curve) Start() Point {
	return c.P0
}

func (c Curve) End() Point {
	switch c.Kind {
	case LineKind:
		return c.P1
	case QuadKind:
		return c.P2
	case CubicKind:
		return c.P3
	default:
		panic(fmt.Sprintf("invalid curve kind %v", c.Kind))
	}
}

func (c Curve) Subsegment(t0, t1 float64) Curve {
	switch c.Kind {
	case LineKind:
		return c.Line().Subsegment(t0, t1).Curve()
	case QuadKind:
		return c.Quad().Subsegment(t0, t1).Curve()
	case CubicKind:
		return c.Cubic().Subsegment(t0, t1).Curve()
	default:
		panic(fmt.Sprintf("invalid curve kind %v", c.Kind))
	}
}

func (c Curve) Arclen(accuracy float64) float64 {
	switch c.Kind {
	case LineKind:
		return c.Line().Arclen(accuracy)
	case QuadKind:
		return c.Quad().Arclen(accuracy)
	case CubicKind:
		return c.Cubic().Arclen(accuracy)
	default:
		panic(fmt.Sprintf("invalid curve kind %v", c.Kind))
	}
}

func (c Curve) BoundingBox() Rect {
	switch c.Kind {
	case LineKind:
		return c.Line().BoundingBox()
	case QuadKind:
		return c.Quad().BoundingBox()
	case CubicKind:
		return c.Cubic().BoundingBox()
	default:
		panic(fmt.Sprintf("invalid curve kind %v", c.Kind))
	}
}

// Segment returns the drawing segment corresponding to the curve, discarding the
// curve's start point.
func (c Curve) Segment() Segment {
	switch c.Kind {
	case LineKind:
		return LineTo(c.P1)
	case QuadKind:
		return QuadTo(c.P1, c.P2)
	case CubicKind:
		return CubicTo(c.P1, c.P2, c.P3)
	default:
		panic(fmt.Sprintf("invalid curve kind %v", c.Kind))
	}
}
