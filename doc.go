// Package pathwalk samples positions and directions of travel along 2D vector
// paths. It was written to drive marker animations, where a ticker advances
// an index into a precomputed sequence of samples and a sprite is placed, and
// possibly rotated, at each one.
//
// # Paths and segments
//
// A [Path] is a slice of [Segment] values, which are akin to drawing commands
// in graphics APIs like PostScript: [MoveTo], [LineTo], [QuadTo], [CubicTo]
// and [ClosePath]. Each command moves the current position of the pen, which
// acts as the start position of the following command. A path has to start
// with a move; the target of that move is the path's start point, and
// [ClosePath] draws a line back to it.
//
// Drawing segments resolved against their start points are represented by
// [Curve], which is a tagged union of [Line], [QuadBez] and [CubicBez]. Use
// [Path.Curves] to iterate over them.
//
// Paths can be parsed from SVG path data with [ParseSVG] and from the postfix
// description format of Core Graphics with [ParseDescription]. [Path.SVG] and
// [Path.String] produce the respective formats.
//
// # Sampling
//
// There are three ways of sampling a path, which differ in how samples are
// distributed:
//
//   - [UniformSamples] spaces points evenly in path fraction. Every drawing
//     segment gets an equal share of the path, no matter its length.
//   - [Samples] and [TangentSamples] take an exact number of samples per
//     segment, evenly spaced in the segment's own parameter. On Béziers this
//     concentrates samples where the curve moves slowly, which makes a marker
//     speed up and slow down with the curve's first derivative.
//   - [ArclenSamples] spaces samples evenly by distance, for constant speed.
//
// [TangentSamples] and [ArclenSamples] pair every point with the direction of
// travel, as an [Angle] in radians.
//
// Invalid input, such as an empty path, a path that doesn't start with a move,
// or a number of per-segment counts that doesn't match the number of segments,
// results in no samples rather than an error. Sampling never produces a
// partial result.
//
// All functions are pure; paths may be sampled concurrently.
//
// # Coordinates
//
// Coordinates are float64 values in a y-down system, as is usual for
// graphics, which means that positive angles rotate clockwise. [Point.Fixed]
// and [PtFromFixed] convert to and from the 26.6 fixed point coordinates used
// by rasterizers in golang.org/x/image.
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
package pathwalk
