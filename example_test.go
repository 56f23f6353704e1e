package pathwalk_test

import (
	"fmt"

	"honnef.co/go/pathwalk"
)

func ExampleTangentSamplesN() {
	var p pathwalk.Path
	p.MoveTo(pathwalk.Pt(0, 0))
	p.LineTo(pathwalk.Pt(10, 0))
	p.LineTo(pathwalk.Pt(10, 10))

	// One sample for the move, two for each line.
	for _, s := range pathwalk.TangentSamplesN(p, 2) {
		fmt.Printf("%s %.0f°\n", s.Point, s.Tangent.Degrees())
	}

	// Output:
	// (0, 0) 0°
	// (5, 0) 0°
	// (10, 0) 0°
	// (10, 5) 90°
	// (10, 10) 90°
}

func ExampleArclenSamples() {
	// The first line is much shorter than the second one, so it gets fewer of
	// the samples.
	p, err := pathwalk.ParseSVG("M0,0 L2,0 L2,6")
	if err != nil {
		panic(err)
	}
	for _, s := range pathwalk.ArclenSamples(p, 4, pathwalk.DefaultAccuracy) {
		fmt.Printf("(%.2f, %.2f) %.0f°\n", s.Point.X, s.Point.Y, s.Tangent.Degrees())
	}

	// Output:
	// (0.00, 0.00) 0°
	// (2.00, 0.00) 0°
	// (2.00, 2.00) 90°
	// (2.00, 4.00) 90°
	// (2.00, 6.00) 90°
}

func ExampleParseDescription() {
	p, err := pathwalk.ParseDescription("200 100 m 400 130 90 400 q 200 200 l h")
	if err != nil {
		panic(err)
	}
	fmt.Println(p.SVG(pathwalk.SVGOptions{}))

	// Output:
	// M200,100 Q400,130 90,400 L200,200 Z
}

// A marker animation precomputes its samples once and then advances an index
// on every tick of a timer, wrapping around at the end.
func Example_animation() {
	p := pathwalk.MustParseSVG("M200,100 Q400,130 90,400 L200,200 C50,100 180,300 200,200")
	frames := pathwalk.TangentSamplesN(p, 10)

	// In a real program, this loop would be driven by a time.Ticker.
	idx := 0
	for range 3 {
		s := frames[idx]
		fmt.Printf("draw at %s\n", s.Point)
		idx = (idx + 10) % len(frames)
	}
	fmt.Println(len(frames), "frames")

	// Output:
	// draw at (200, 100)
	// draw at (90, 400)
	// draw at (200, 200)
	// 31 frames
}
