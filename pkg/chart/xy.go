package chart

import (
	"github.com/madsen/postscript-graph/pkg/errors"
	"github.com/madsen/postscript-graph/pkg/paper"
	"github.com/madsen/postscript-graph/pkg/ps"
	"github.com/madsen/postscript-graph/pkg/style"
)

// shapeProcsetName identifies the point-glyph procset. Registration is
// idempotent, so any number of XY charts can share one document.
const shapeProcsetName = "psgraph-shapes"

// shapeProcset draws point glyphs centered on x y with extent s. Every
// procedure takes x y s and leaves the stack clean.
const shapeProcset = `/sh-plus { /s exch def /y exch def /x exch def
  newpath x s 2 div sub y moveto s 0 rlineto
  x y s 2 div sub moveto 0 s rlineto stroke } bind def
/sh-cross { /s exch def /y exch def /x exch def /h s 2 div def
  newpath x h sub y h sub moveto s s rlineto
  x h sub y h add moveto s s neg rlineto stroke } bind def
/sh-square { /s exch def /y exch def /x exch def /h s 2 div def
  newpath x h sub y h sub moveto
  s 0 rlineto 0 s rlineto s neg 0 rlineto closepath stroke } bind def
/sh-circle { /s exch def /y exch def /x exch def
  newpath x y s 2 div 0 360 arc stroke } bind def
/sh-diamond { /s exch def /y exch def /x exch def /h s 2 div def
  newpath x y h add moveto h h neg rlineto h neg h neg rlineto
  h neg h rlineto closepath stroke } bind def
`

// XY is a scatter/line chart over numeric x and y axes. Both axes are
// derived from the data when the configuration leaves them zero.
type XY struct {
	cfg    Config
	doc    *ps.Document
	paper  *paper.Paper
	series []XYSeries
	styles []style.Record
}

// NewXY validates the data, derives missing axis ranges, and computes
// the layout.
func NewXY(doc *ps.Document, cfg Config, series []XYSeries, seq *style.Sequence) (*XY, error) {
	if doc == nil {
		return nil, errors.New(errors.ErrCodeMissingSink, "no document sink available")
	}
	if len(series) == 0 {
		return nil, errors.New(errors.ErrCodeMissingData, "xy chart needs at least one series")
	}
	for _, s := range series {
		if len(s.Points) == 0 {
			return nil, errors.New(errors.ErrCodeMissingData, "series %q has no points", s.Name)
		}
	}

	minX, maxX, minY, maxY := pointBounds(series)
	if cfg.X.Low == 0 && cfg.X.High == 0 {
		if minX == maxX {
			return nil, errors.New(errors.ErrCodeBadData,
				"x values are all %g, cannot derive an axis range", minX)
		}
		cfg.X.Low, cfg.X.High = minX, maxX
	}
	if cfg.Y.Low == 0 && cfg.Y.High == 0 {
		cfg.Y.Low, cfg.Y.High = autoRange(minY, maxY)
	}
	if cfg.Page.Bound == (ps.Box{}) {
		cfg.Page.Bound = doc.PageBox()
	}
	if seq == nil {
		seq = style.NewSequence()
	}

	p, err := paper.New(paper.Options{Page: cfg.Page, X: cfg.X, Y: cfg.Y})
	if err != nil {
		return nil, err
	}

	styles := make([]style.Record, len(series))
	for i := range series {
		styles[i] = seq.Next(cfg.Style)
	}

	return &XY{
		cfg:    cfg,
		doc:    doc,
		paper:  p,
		series: series,
		styles: styles,
	}, nil
}

func pointBounds(series []XYSeries) (minX, maxX, minY, maxY float64) {
	first := series[0].Points[0]
	minX, maxX = first.X, first.X
	minY, maxY = first.Y, first.Y
	for _, s := range series {
		for _, pt := range s.Points {
			if pt.X < minX {
				minX = pt.X
			}
			if pt.X > maxX {
				maxX = pt.X
			}
			if pt.Y < minY {
				minY = pt.Y
			}
			if pt.Y > maxY {
				maxY = pt.Y
			}
		}
	}
	return minX, maxX, minY, maxY
}

// Paper exposes the computed layout.
func (c *XY) Paper() *paper.Paper { return c.paper }

// Render emits the graph paper, then lines under points under the key.
func (c *XY) Render() error {
	e, err := ps.NewEmitter(c.doc)
	if err != nil {
		return err
	}
	bg := c.cfg.background()

	drawFrame(e, c.paper, &c.cfg)

	for si, s := range c.series {
		st := c.styles[si]
		if c.cfg.showLines() && len(s.Points) > 1 {
			e.Comment("series " + s.Name + " lines")
			c.drawLines(e, s.Points, st.Line, bg)
		}
		if c.cfg.showPoints() {
			e.Comment("series " + s.Name + " points")
			for _, pt := range s.Points {
				px, py := c.paper.PhysicalPoint(pt.X, pt.Y)
				drawPoint(e, st.Point, bg, px, py)
			}
		}
	}

	return drawKey(e, c.paper, bg, xyKeyEntries(c.series, c.styles))
}

// drawLines strokes a polyline twice: the wide outer color first, then
// the narrower dashed inner stroke on top.
func (c *XY) drawLines(e *ps.Emitter, points []Point, ln style.Line, bg ps.Color) {
	e.SetColor(ln.Outer.Resolve(bg))
	e.SetLineWidth(ln.OuterWidth)
	e.SetDash(nil)
	c.strokePath(e, points)

	e.SetColor(ln.Inner.Resolve(bg))
	e.SetLineWidth(ln.InnerWidth)
	e.SetDash(ln.Dashes)
	c.strokePath(e, points)
	e.SetDash(nil)
}

func (c *XY) strokePath(e *ps.Emitter, points []Point) {
	for i := 1; i < len(points); i++ {
		x1, y1 := c.paper.PhysicalPoint(points[i-1].X, points[i-1].Y)
		x2, y2 := c.paper.PhysicalPoint(points[i].X, points[i].Y)
		e.Line(x1, y1, x2, y2)
	}
}

// drawPoint emits one glyph in two passes, registering the shape
// procset on first use.
func drawPoint(e *ps.Emitter, pt style.Point, bg ps.Color, x, y float64) {
	doc := e.Document()
	doc.AddProcedure(shapeProcsetName, shapeProcset)

	e.SetColor(pt.Outer.Resolve(bg))
	e.SetLineWidth(pt.OuterWidth)
	doc.Appendf("%.4f %.4f %.6g sh-%s", x, y, pt.Size, pt.Shape.Name())

	e.SetColor(pt.Inner.Resolve(bg))
	e.SetLineWidth(pt.InnerWidth)
	doc.Appendf("%.4f %.4f %.6g sh-%s", x, y, pt.Size, pt.Shape.Name())
}

func xyKeyEntries(series []XYSeries, styles []style.Record) []keyEntry {
	entries := make([]keyEntry, len(series))
	for i, s := range series {
		entries[i] = keyEntry{label: s.Name, style: styles[i]}
	}
	return entries
}
