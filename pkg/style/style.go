// Package style hands chart builders their drawing parameters.
//
// A Record is an opaque parameter bag: colors, widths, dash patterns,
// point shape and size for one data series. Records come from a
// Sequence, an explicitly owned generator that permutes the palette on
// every request so consecutive series stay distinguishable. There is no
// package-level counter: callers construct a Sequence and thread it
// through their charts, and must guard it themselves if they share one
// across goroutines.
package style

import "github.com/madsen/postscript-graph/pkg/ps"

// Shape selects the glyph drawn for XY chart points.
type Shape int

const (
	ShapePlus Shape = iota
	ShapeCross
	ShapeSquare
	ShapeCircle
	ShapeDiamond
)

// Name returns the PostScript procedure suffix for the shape.
func (s Shape) Name() string {
	switch s {
	case ShapePlus:
		return "plus"
	case ShapeCross:
		return "cross"
	case ShapeSquare:
		return "square"
	case ShapeCircle:
		return "circle"
	default:
		return "diamond"
	}
}

// Line holds the stroke parameters for line drawing. Lines draw in two
// passes: a wider outer stroke under a narrower inner one, so the inner
// color reads against any background.
type Line struct {
	Inner, Outer           ps.Color
	InnerWidth, OuterWidth float64
	Dashes                 []float64
}

// Bar holds the fill and edge parameters for bar drawing.
type Bar struct {
	Fill, Edge ps.Color
	EdgeWidth  float64
}

// Point holds the glyph parameters for point drawing.
type Point struct {
	Shape                  Shape
	Size                   float64
	Inner, Outer           ps.Color
	InnerWidth, OuterWidth float64
}

// Record is the full drawing-parameter set for one data series.
type Record struct {
	Line  Line
	Bar   Bar
	Point Point
}

// Options tunes what a Sequence hands out.
type Options struct {
	UseColor  bool    // cycle RGB palette instead of grey shades
	LineWidth float64 // base inner line width; default 1
	PointSize float64 // point glyph size; default 4
}

func (o Options) lineWidth() float64 {
	if o.LineWidth <= 0 {
		return 1
	}
	return o.LineWidth
}

func (o Options) pointSize() float64 {
	if o.PointSize <= 0 {
		return 4
	}
	return o.PointSize
}
