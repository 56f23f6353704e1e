package pathwalk

import (
	"fmt"
	"io"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Path is an ordered sequence of segments describing a 2D vector shape.
//
// A well-formed path starts with a move, which defines its start point. Paths
// that don't are malformed; queries on them report nothing. A ClosePath
// segment draws a line back to the start of the path, not to the start of the
// current subpath.
//
// Paths are values. The functions in this package never modify a path they are
// given, and it is safe to query the same path from multiple goroutines.
type Path []Segment

// MoveTo appends a move to pt.
func (p *Path) MoveTo(pt Point) {
	*p = append(*p, MoveTo(pt))
}

// LineTo appends a line to pt.
func (p *Path) LineTo(pt Point) {
	*p = append(*p, LineTo(pt))
}

// QuadTo appends a quadratic Bézier with the given control point, ending at
// pt.
func (p *Path) QuadTo(control, pt Point) {
	*p = append(*p, QuadTo(control, pt))
}

// CubicTo appends a cubic Bézier with the given control points, ending at pt.
func (p *Path) CubicTo(control1, control2, pt Point) {
	*p = append(*p, CubicTo(control1, control2, pt))
}

// ClosePath appends a line back to the start of the path.
func (p *Path) ClosePath() {
	*p = append(*p, ClosePath())
}

// StartPoint returns the target of the path's first segment. It returns false
// if the path is empty or doesn't start with a move.
func (p Path) StartPoint() (Point, bool) {
	if len(p) == 0 || p[0].Kind != MoveKind {
		return Point{}, false
	}
	return p[0].P0, true
}

// CurrentPoint returns the position of the pen after the last segment. It
// returns false for empty and malformed paths.
func (p Path) CurrentPoint() (Point, bool) {
	start, ok := p.StartPoint()
	if !ok {
		return Point{}, false
	}
	return p[len(p)-1].Target(start), true
}

// Curves returns an iterator over the path's drawing segments, resolved to
// curves and keyed by their index in the path. Moves are skipped. The iterator
// yields nothing for malformed paths.
func (p Path) Curves() iter.Seq2[int, Curve] {
	return func(yield func(int, Curve) bool) {
		start, ok := p.StartPoint()
		if !ok {
			return
		}
		cur := start
		for i, seg := range p {
			if seg.IsDrawing() {
				if !yield(i, seg.Curve(cur, start)) {
					return
				}
			}
			cur = seg.Target(start)
		}
	}
}

func (p Path) drawingCount() int {
	n := 0
	for _, seg := range p {
		if seg.IsDrawing() {
			n++
		}
	}
	return n
}

func clampFraction(t float64) float64 {
	// This also maps NaN to 0.
	if !(t > 0) {
		return 0
	}
	return min(t, 1)
}

// locate maps a path fraction t ∈ [0, 1] to the index of a drawing segment
// (counting only drawing segments) and the parameter within that segment.
// Every one of the n drawing segments gets an equal share of [0, 1].
func locate(t float64, n int) (int, float64) {
	tt := t * float64(n)
	j := int(math.Floor(tt))
	if j >= n {
		j = n - 1
	}
	return j, tt - float64(j)
}

// Eval returns the point reached after travelling the fraction t of the path,
// which is the current point of the path trimmed to [0, t].
//
// Path fractions are not distances. Each drawing segment covers an equal
// share of [0, 1], no matter its length, so travelling at a constant rate of t
// moves at different speeds along different segments. Use [ArclenSamples] for
// constant speed.
//
// Eval returns false for empty and malformed paths. A path consisting only of
// moves evaluates to its current point.
func (p Path) Eval(t float64) (Point, bool) {
	if _, ok := p.StartPoint(); !ok {
		return Point{}, false
	}
	n := p.drawingCount()
	if n == 0 {
		return p.CurrentPoint()
	}
	j, u := locate(clampFraction(t), n)
	k := 0
	for _, c := range p.Curves() {
		if k == j {
			return c.Eval(u), true
		}
		k++
	}
	panic("unreachable")
}

// Trim returns the part of the path between the path fractions t0 and t1, as
// a new path that starts with a move to the point at t0. Fractions are clamped
// to [0, 1]. See [Path.Eval] for the meaning of path fractions.
//
// Moves that fall strictly inside the range are kept. Segments cut by the
// range, as well as ClosePath segments, become segments of the same shape
// ending at the cut; a ClosePath is always turned into a line, because the
// trimmed path has a different start point.
//
// Trim returns nil for empty and malformed paths, and when t1 < t0. A path
// consisting only of moves is returned unchanged.
func (p Path) Trim(t0, t1 float64) Path {
	start, ok := p.StartPoint()
	if !ok {
		return nil
	}
	t0, t1 = clampFraction(t0), clampFraction(t1)
	if t1 < t0 {
		return nil
	}
	n := p.drawingCount()
	if n == 0 {
		return slices.Clone(p)
	}
	j0, u0 := locate(t0, n)
	j1, u1 := locate(t1, n)

	var out Path
	cur := start
	// j is the index of the next drawing segment.
	j := 0
	for _, seg := range p {
		if j > j1 {
			break
		}
		if !seg.IsDrawing() {
			if j > j0 {
				out = append(out, seg)
			}
			cur = seg.Target(start)
			continue
		}

		c := seg.Curve(cur, start)
		cur = seg.Target(start)
		if j >= j0 {
			lo, hi := 0.0, 1.0
			if j == j0 {
				lo = u0
				out = append(out, MoveTo(c.Eval(u0)))
			}
			if j == j1 {
				hi = u1
			}
			if hi > lo {
				out = append(out, c.Subsegment(lo, hi).Segment())
			}
		}
		j++
	}
	return out
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing every point
// on the path, including the targets of moves. Control points are only
// included where the curve reaches them. Empty and malformed paths have a zero
// bounding box.
func (p Path) BoundingBox() Rect {
	start, ok := p.StartPoint()
	if !ok {
		return Rect{}
	}
	bbox := NewRectFromPoints(start, start)
	for _, seg := range p {
		if seg.Kind == MoveKind {
			bbox = bbox.UnionPoint(seg.P0)
		}
	}
	for _, c := range p.Curves() {
		bbox = bbox.Union(c.BoundingBox())
	}
	return bbox
}

// Arclen returns the total length of the path's drawing segments. Moves don't
// contribute to the length.
func (p Path) Arclen(accuracy float64) float64 {
	var l float64
	for _, c := range p.Curves() {
		l += c.Arclen(accuracy)
	}
	return l
}

func formatFloat(n float64, maxPrec int) string {
	if maxPrec <= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
	s := strconv.FormatFloat(n, 'f', maxPrec, 64)
	if strings.ContainsRune(s, '.') {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		s = "0"
	}
	return s
}

// String returns the path in the postfix description format understood by
// [ParseDescription], for example "0 0 m 10 0 l 15 5 10 10 q h".
func (p Path) String() string {
	sb := &strings.Builder{}
	pt := func(pt Point) {
		sb.WriteString(formatFloat(pt.X, 0))
		sb.WriteByte(' ')
		sb.WriteString(formatFloat(pt.Y, 0))
		sb.WriteByte(' ')
	}
	for i, seg := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch seg.Kind {
		case MoveKind:
			pt(seg.P0)
			sb.WriteByte('m')
		case LineKind:
			pt(seg.P0)
			sb.WriteByte('l')
		case QuadKind:
			pt(seg.P0)
			pt(seg.P1)
			sb.WriteByte('q')
		case CubicKind:
			pt(seg.P0)
			pt(seg.P1)
			pt(seg.P2)
			sb.WriteByte('c')
		case CloseKind:
			sb.WriteByte('h')
		default:
			fmt.Fprintf(sb, "<invalid segment kind %d>", int(seg.Kind))
		}
	}
	return sb.String()
}

// SVGOptions specifies optional settings for [Path.SVG] and [Path.WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts the path to a string of SVG path commands.
//
// See [Path.WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func (p Path) SVG(opts SVGOptions) string {
	sb := &strings.Builder{}
	p.WriteSVG(sb, opts)
	return sb.String()
}

// WriteSVG converts the path to a string of SVG path commands and writes it
// to w.
//
// The output uses absolute coordinates only and makes no attempt at being
// short.
func (p Path) WriteSVG(w io.Writer, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		return formatFloat(n, opts.MaxPrecision)
	}
	for i, seg := range p {
		if err != nil {
			return err
		}
		if i > 0 {
			writef(" ")
		}
		switch seg.Kind {
		case MoveKind:
			writef("M%s,%s", format(seg.P0.X), format(seg.P0.Y))
		case LineKind:
			writef("L%s,%s", format(seg.P0.X), format(seg.P0.Y))
		case QuadKind:
			writef("Q%s,%s %s,%s",
				format(seg.P0.X), format(seg.P0.Y),
				format(seg.P1.X), format(seg.P1.Y))
		case CubicKind:
			writef("C%s,%s %s,%s %s,%s",
				format(seg.P0.X), format(seg.P0.Y),
				format(seg.P1.X), format(seg.P1.Y),
				format(seg.P2.X), format(seg.P2.Y))
		case CloseKind:
			writef("Z")
		default:
			panic(fmt.Sprintf("invalid segment kind %v", seg.Kind))
		}
	}
	return err
}
