package pathwalk

import (
	"slices"

	"golang.org/x/image/math/fixed"
)

// Sample is a point on a path, paired with the direction of travel at that
// point.
type Sample struct {
	Point   Point
	Tangent Angle
}

// Fixed returns the sample's position as a 26.6 fixed point coordinate.
func (s Sample) Fixed() fixed.Point26_6 {
	return s.Point.Fixed()
}

// UniformSamples returns total+1 points, spaced evenly in path fraction from
// the start of the path (t = 0) to its end (t = 1). Each point is the current
// point of the path trimmed to [0, t]; see [Path.Eval].
//
// Because path fractions are not distances, consecutive points are farther
// apart on long segments than on short ones. Use [ArclenSamples] to space
// points evenly by distance.
//
// UniformSamples returns nil if the path is empty or doesn't start with a
// move, or if total < 1.
func UniformSamples(p Path, total int) []Point {
	if _, ok := p.StartPoint(); !ok || total < 1 {
		return nil
	}
	out := make([]Point, 0, total+1)
	for i := range total + 1 {
		pt, _ := p.Eval(float64(i) / float64(total))
		out = append(out, pt)
	}
	return out
}

// visit calls fn for every sample requested by counts, in path order. prev is
// the segment preceding seg, or the zero Segment for the first segment; next
// is the segment following seg, or the zero Segment for the last.
//
// For a move with a positive count, fn is called once with the move's target
// and t = 0. For a drawing segment with count n > 0, fn is called n times, with
// t = 1/n, 2/n, …, 1. The sample at t = 0 is skipped because it coincides with
// the previous segment's end. Segments with counts ≤ 0 produce no samples.
//
// It reports false if the path is empty or malformed, or if the number of
// counts doesn't match the number of segments.
func visit(p Path, counts []int, fn func(seg Segment, c Curve, next Segment, t float64)) bool {
	start, ok := p.StartPoint()
	if !ok || len(counts) != len(p) {
		return false
	}
	cur := start
	for i, seg := range p {
		var next Segment
		if i+1 < len(p) {
			next = p[i+1]
		}
		n := counts[i]
		switch seg.Kind {
		case MoveKind:
			if n > 0 {
				fn(seg, Curve{}, next, 0)
			}
		case LineKind, QuadKind, CubicKind, CloseKind:
			c := seg.Curve(cur, start)
			for k := 1; k <= n; k++ {
				// Evaluate at k/n rather than accumulating steps so that the last
				// sample lands exactly on t = 1.
				fn(seg, c, next, float64(k)/float64(n))
			}
		default:
			panic("invalid segment kind " + seg.Kind.String())
		}
		cur = seg.Target(start)
	}
	return true
}

// Samples returns points along the path, with an exact number of points per
// segment. counts must have one entry per segment of the path.
//
// A move with a positive count contributes its target. A drawing segment with
// count n > 0 contributes n points, evenly spaced in the segment's parameter,
// ending exactly at its end point; its start point is not repeated, as it is
// the end of whatever came before. Segments with a count of zero or less
// contribute nothing, but the pen still moves along them.
//
// For a path of k drawing segments that starts with a single move, a uniform
// count m > 0 produces 1 + k·m points.
//
// Samples returns nil if the path is empty or doesn't start with a move, or if
// len(counts) != len(p). Valid input that asks for no samples results in an
// empty, non-nil slice.
func Samples(p Path, counts []int) []Point {
	out := []Point{}
	ok := visit(p, counts, func(seg Segment, c Curve, next Segment, t float64) {
		if seg.Kind == MoveKind {
			out = append(out, seg.P0)
		} else {
			out = append(out, c.Eval(t))
		}
	})
	if !ok {
		return nil
	}
	return out
}

// SamplesN is like [Samples], using the same count n for every segment.
func SamplesN(p Path, n int) []Point {
	return Samples(p, uniformCounts(len(p), n))
}

// TangentSamples is like [Samples], but pairs every point with the direction
// of travel at that point. It produces exactly the points [Samples] produces.
//
// Lines and ClosePath segments point along their chord. Béziers point along
// their first derivative; where that vanishes, see [QuadBez.Tangent] and
// [CubicBez.Tangent]. A move has no direction of its own; it takes the initial
// direction of the drawing segment directly following it, so that a marker
// placed at the start of a subpath already faces the right way. A move that is
// followed by another move, or by nothing, has angle 0.
func TangentSamples(p Path, counts []int) []Sample {
	out := []Sample{}
	start, _ := p.StartPoint()
	ok := visit(p, counts, func(seg Segment, c Curve, next Segment, t float64) {
		if seg.Kind == MoveKind {
			var dir Angle
			if next.Kind != 0 && next.IsDrawing() {
				dir = next.Curve(seg.P0, start).Tangent(0)
			}
			out = append(out, Sample{seg.P0, dir})
		} else {
			out = append(out, Sample{c.Eval(t), c.Tangent(t)})
		}
	})
	if !ok {
		return nil
	}
	return out
}

// TangentSamplesN is like [TangentSamples], using the same count n for every
// segment.
func TangentSamplesN(p Path, n int) []Sample {
	return TangentSamples(p, uniformCounts(len(p), n))
}

func uniformCounts(segments, n int) []int {
	return slices.Repeat([]int{n}, segments)
}

// ArclenSamples returns n+1 samples spaced evenly by distance along the path,
// from its start to its end, each paired with the direction of travel. A marker
// stepping through them moves at constant speed.
//
// Moves are jumps and cover no distance. A sample that falls exactly on a jump
// is placed at the end of the segment before it.
//
// ArclenSamples returns nil if the path is empty or doesn't start with a move,
// or if n < 1. If the path has no length, every sample is at its current point.
func ArclenSamples(p Path, n int, accuracy float64) []Sample {
	start, ok := p.StartPoint()
	if !ok || n < 1 {
		return nil
	}

	type measured struct {
		c   Curve
		len float64
	}
	var curves []measured
	var total float64
	for _, c := range p.Curves() {
		l := c.Arclen(accuracy)
		curves = append(curves, measured{c, l})
		total += l
	}

	out := make([]Sample, 0, n+1)
	if total == 0 {
		pt, _ := p.CurrentPoint()
		var dir Angle
		if len(curves) == 0 {
			pt = start
		} else {
			dir = curves[len(curves)-1].c.Tangent(1)
		}
		for range n + 1 {
			out = append(out, Sample{pt, dir})
		}
		return out
	}

	// Samples are produced in increasing order of distance, so we can walk the
	// curves in lockstep.
	k := 0
	// offset is the distance from the start of the path to the start of
	// curves[k].
	offset := 0.0
	for i := range n + 1 {
		s := total * float64(i) / float64(n)
		for k < len(curves)-1 && s > offset+curves[k].len {
			offset += curves[k].len
			k++
		}
		m := curves[k]
		var t float64
		if i == n {
			t = 1
		} else if m.len > 0 {
			t = solveForArclen(m.c, s-offset, m.len, accuracy)
		}
		out = append(out, Sample{m.c.Eval(t), m.c.Tangent(t)})
	}
	return out
}
