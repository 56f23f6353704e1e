package pathwalk

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"
)

type Point struct {
	X float64
	Y float64
}

// Pt returns the point (x, y).
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// PtFromFixed converts a 26.6 fixed point coordinate, as used by rasterizers
// and font renderers, to a Point.
func PtFromFixed(p fixed.Point26_6) Point {
	return Point{
		X: float64(p.X) / 64,
		Y: float64(p.Y) / 64,
	}
}

func (pt Point) Splat() (float64, float64) {
	return pt.X, pt.Y
}

func (pt Point) String() string {
	return fmt.Sprintf("(%g, %g)", pt.X, pt.Y)
}

// Fixed rounds the point to the nearest 26.6 fixed point coordinate.
func (pt Point) Fixed() fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(pt.X * 64)),
		Y: fixed.Int26_6(math.Round(pt.Y * 64)),
	}
}

func (pt Point) Translate(v Vec2) Point {
	return Point{
		X: pt.X + v.X,
		Y: pt.Y + v.Y,
	}
}

// Sub computes pt−o.
func (pt Point) Sub(o Point) Vec2 {
	return Vec2{
		X: pt.X - o.X,
		Y: pt.Y - o.Y,
	}
}

// Lerp linearly interpolates between two points. The result is exactly pt at
// t = 0 and exactly o at t = 1.
func (pt Point) Lerp(o Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*pt.X + t*o.X,
		Y: mt*pt.Y + t*o.Y,
	}
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Hypot(pt.X-o.X, pt.Y-o.Y)
}

// IsInf reports whether at least one of x and y is infinite.
func (pt Point) IsInf() bool {
	return math.IsInf(pt.X, 0) || math.IsInf(pt.Y, 0)
}

// IsNaN reports whether at least one of x and y is NaN.
func (pt Point) IsNaN() bool {
	return math.IsNaN(pt.X) || math.IsNaN(pt.Y)
}
