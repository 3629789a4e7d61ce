package style

import "github.com/madsen/postscript-graph/pkg/ps"

// palette is the color rotation for series inner colors.
var palette = []ps.Color{
	ps.RGB(1, 0, 0),
	ps.RGB(0, 0.6, 0),
	ps.RGB(0, 0, 1),
	ps.RGB(0.8, 0.6, 0),
	ps.RGB(0.7, 0, 0.7),
	ps.RGB(0, 0.6, 0.6),
}

// greys is the rotation used when color is disabled.
var greys = []float64{0, 0.35, 0.55, 0.7, 0.85}

// dashPatterns advance once per full palette cycle, so a chart with
// more series than colors stays readable.
var dashPatterns = [][]float64{
	nil,
	{3, 3},
	{6, 3},
	{1, 2},
	{6, 3, 1, 3},
}

var shapes = []Shape{ShapePlus, ShapeCross, ShapeSquare, ShapeCircle, ShapeDiamond}

// Sequence generates drawing-parameter records with auto-cycling
// semantics. The zero value starts at the beginning of every rotation.
// A Sequence mutates on each Next call and is not safe for unguarded
// concurrent use.
type Sequence struct {
	n int
}

// NewSequence returns a sequence positioned at the start of all
// rotations.
func NewSequence() *Sequence { return &Sequence{} }

// Next returns the drawing parameters for the next data series and
// advances the sequence.
func (s *Sequence) Next(opts Options) Record {
	n := s.n
	s.n++

	inner := s.innerColor(n, opts)
	dash := dashPatterns[(n/s.cycleLen(opts))%len(dashPatterns)]
	shape := shapes[n%len(shapes)]
	w := opts.lineWidth()

	// Outer strokes default to the complement of the chart background,
	// resolved by the chart once the background is known.
	outer := ps.Complement()

	return Record{
		Line: Line{
			Inner: inner, Outer: outer,
			InnerWidth: w, OuterWidth: w * 2,
			Dashes: dash,
		},
		Bar: Bar{
			Fill: inner, Edge: outer, EdgeWidth: w / 2,
		},
		Point: Point{
			Shape: shape, Size: opts.pointSize(),
			Inner: inner, Outer: outer,
			InnerWidth: w, OuterWidth: w * 2,
		},
	}
}

func (s *Sequence) cycleLen(opts Options) int {
	if opts.UseColor {
		return len(palette)
	}
	return len(greys)
}

func (s *Sequence) innerColor(n int, opts Options) ps.Color {
	if opts.UseColor {
		return palette[n%len(palette)]
	}
	return ps.Grey(greys[n%len(greys)])
}
