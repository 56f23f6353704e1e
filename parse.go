package pathwalk

import (
	"fmt"

	"github.com/tdewolff/parse/v2/strconv"
)

// SyntaxError describes malformed path text.
type SyntaxError struct {
	// Offset is the 1-based byte position in the input at which the error was
	// detected.
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bad path: %s at position %d", e.Msg, e.Offset)
}

func syntaxError(offset int, format string, args ...any) error {
	return &SyntaxError{Offset: offset + 1, Msg: fmt.Sprintf(format, args...)}
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\n' || c == '\r' || c == '\t' || c == '\f'
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (isSpace(b[i]) || b[i] == ',') {
		i++
	}
	return i
}

func skipWhitespace(b []byte) int {
	i := 0
	for i < len(b) && isSpace(b[i]) {
		i++
	}
	return i
}

func isNumberStart(c byte) bool {
	return c >= '0' && c <= '9' || c == '.' || c == '-' || c == '+'
}

func reflect(ctrl, about Point) Point {
	return Pt(2*about.X-ctrl.X, 2*about.Y-ctrl.Y)
}

// closer tracks subpath starts for the close commands of both text formats,
// which return to the start of the current subpath. The first subpath closes
// with a ClosePath; later subpaths, whose start differs from the path's,
// close with an explicit line so that the geometry is preserved.
type closer struct {
	p        *Path
	subStart Point
}

func (cl *closer) move(pt Point) {
	cl.subStart = pt
	cl.p.MoveTo(pt)
}

func (cl *closer) close() Point {
	if start, _ := cl.p.StartPoint(); start == cl.subStart {
		cl.p.ClosePath()
	} else {
		cl.p.LineTo(cl.subStart)
	}
	return cl.subStart
}

var svgArgs = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'Q': 4,
	'T': 2,
	'C': 6,
	'S': 4,
	'Z': 0,
	'A': 7,
}

// ParseSVG parses SVG path data, such as "M10,10 L20,10 Q30,10 30,20 Z".
//
// Absolute and relative move, line, horizontal and vertical line, quadratic,
// smooth quadratic, cubic, smooth cubic and close commands are supported.
// Arc commands are not and result in a [*SyntaxError].
//
// Smooth curves are converted to regular curves, and horizontal and vertical
// lines to lines. A close command in any but the first subpath is converted to
// a line back to that subpath's start, because [ClosePath] returns to the
// start of the whole path.
//
// An empty string results in an empty path.
func ParseSVG(d string) (Path, error) {
	b := []byte(d)
	i := skipCommaWhitespace(b)
	if i == len(b) {
		return nil, nil
	}
	if b[i] != 'M' && b[i] != 'm' {
		return nil, syntaxError(i, "path must start with a move command")
	}

	var (
		p       Path
		cl      = closer{p: &p}
		cur     Point
		ctrl    Point
		cmd     byte
		prevCmd byte
		f       [7]float64
	)
	for {
		i += skipCommaWhitespace(b[i:])
		if i >= len(b) {
			break
		}

		if isNumberStart(b[i]) {
			// Implicit repetition of the previous command.
			if cmd == 0 || cmd == 'Z' || cmd == 'z' {
				return nil, syntaxError(i, "expected command")
			}
		} else {
			cmd = b[i]
			i++
		}

		upper := cmd
		rel := false
		if cmd >= 'a' && cmd <= 'z' {
			upper = cmd - ('a' - 'A')
			rel = true
		}
		nargs, ok := svgArgs[upper]
		if !ok {
			return nil, syntaxError(i-1, "unknown command '%c'", cmd)
		}
		if upper == 'A' {
			return nil, syntaxError(i-1, "arc commands are not supported")
		}
		for j := range nargs {
			i += skipCommaWhitespace(b[i:])
			num, n := strconv.ParseFloat(b[i:])
			if n == 0 {
				return nil, syntaxError(i, "sets of %d numbers should follow command '%c'", nargs, cmd)
			}
			f[j] = num
			i += n
		}

		pt := func(x, y float64) Point {
			if rel {
				return Pt(cur.X+x, cur.Y+y)
			}
			return Pt(x, y)
		}
		switch upper {
		case 'M':
			cur = pt(f[0], f[1])
			cl.move(cur)
			// Further coordinate pairs are implicit lines.
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			cur = pt(f[0], f[1])
			p.LineTo(cur)
		case 'H':
			x := f[0]
			if rel {
				x += cur.X
			}
			cur = Pt(x, cur.Y)
			p.LineTo(cur)
		case 'V':
			y := f[0]
			if rel {
				y += cur.Y
			}
			cur = Pt(cur.X, y)
			p.LineTo(cur)
		case 'Q':
			c := pt(f[0], f[1])
			end := pt(f[2], f[3])
			p.QuadTo(c, end)
			ctrl, cur = c, end
		case 'T':
			c := cur
			if prevCmd == 'Q' || prevCmd == 'T' {
				c = reflect(ctrl, cur)
			}
			end := pt(f[0], f[1])
			p.QuadTo(c, end)
			ctrl, cur = c, end
		case 'C':
			c1 := pt(f[0], f[1])
			c2 := pt(f[2], f[3])
			end := pt(f[4], f[5])
			p.CubicTo(c1, c2, end)
			ctrl, cur = c2, end
		case 'S':
			c1 := cur
			if prevCmd == 'C' || prevCmd == 'S' {
				c1 = reflect(ctrl, cur)
			}
			c2 := pt(f[0], f[1])
			end := pt(f[2], f[3])
			p.CubicTo(c1, c2, end)
			ctrl, cur = c2, end
		case 'Z':
			cur = cl.close()
		}
		prevCmd = upper
	}
	return p, nil
}

// MustParseSVG is like [ParseSVG] but panics on error.
func MustParseSVG(d string) Path {
	p, err := ParseSVG(d)
	if err != nil {
		panic(err)
	}
	return p
}

// ParseDescription parses the postfix path description format of Core
// Graphics, in which operands precede their operator:
//
//	x y m                  move to (x, y)
//	x y l                  line to (x, y)
//	cx cy x y q            quadratic Bézier with control point (cx, cy)
//	c1x c1y c2x c2y x y c  cubic Bézier
//	x y w h re             rectangle, as a closed subpath
//	h                      close subpath
//
// For example, "200 100 m 400 130 90 400 q 200 200 l h". As in [ParseSVG],
// closing any but the first subpath produces a line back to its start.
//
// An empty string results in an empty path.
func ParseDescription(s string) (Path, error) {
	b := []byte(s)
	var (
		p        Path
		cl       = closer{p: &p}
		operands []float64
		i        int
	)
	for {
		i += skipWhitespace(b[i:])
		if i >= len(b) {
			break
		}
		if isNumberStart(b[i]) {
			num, n := strconv.ParseFloat(b[i:])
			if n == 0 {
				return nil, syntaxError(i, "malformed number")
			}
			operands = append(operands, num)
			i += n
			continue
		}

		opStart := i
		for i < len(b) && b[i] >= 'a' && b[i] <= 'z' {
			i++
		}
		op := string(b[opStart:i])
		if op == "" {
			return nil, syntaxError(opStart, "unexpected character '%c'", b[opStart])
		}
		var want int
		switch op {
		case "m", "l":
			want = 2
		case "q":
			want = 4
		case "c":
			want = 6
		case "re":
			want = 4
		case "h":
			want = 0
		default:
			return nil, syntaxError(opStart, "unknown operator %q", op)
		}
		if len(operands) != want {
			return nil, syntaxError(opStart, "operator %q takes %d operands, got %d", op, want, len(operands))
		}
		if len(p) == 0 && op != "m" && op != "re" {
			return nil, syntaxError(opStart, "path must start with a move")
		}

		o := operands
		switch op {
		case "m":
			cl.move(Pt(o[0], o[1]))
		case "l":
			p.LineTo(Pt(o[0], o[1]))
		case "q":
			p.QuadTo(Pt(o[0], o[1]), Pt(o[2], o[3]))
		case "c":
			p.CubicTo(Pt(o[0], o[1]), Pt(o[2], o[3]), Pt(o[4], o[5]))
		case "re":
			x, y, w, h := o[0], o[1], o[2], o[3]
			cl.move(Pt(x, y))
			p.LineTo(Pt(x+w, y))
			p.LineTo(Pt(x+w, y+h))
			p.LineTo(Pt(x, y+h))
			cl.close()
		case "h":
			cl.close()
		}
		operands = operands[:0]
	}
	if len(operands) != 0 {
		return nil, syntaxError(len(b)-1, "%d operands without an operator", len(operands))
	}
	return p, nil
}
