package chart

import (
	"github.com/madsen/postscript-graph/pkg/paper"
	"github.com/madsen/postscript-graph/pkg/ps"
)

// gridGrey is the shade used for graph-paper lines inside the plot.
var gridGrey = ps.Grey(0.8)

// drawFrame emits the graph paper for a computed layout: background,
// grid lines, axis marks at every depth, mark labels, titles, and the
// heading. Charts call this before their own items so data draws on
// top.
func drawFrame(e *ps.Emitter, p *paper.Paper, cfg *Config) {
	bg := cfg.background()
	fg := ps.Complement().Resolve(bg)
	plot := p.GraphArea()

	e.Comment("graph paper")
	e.SetColor(bg)
	e.Rect(plot, true)

	drawXMarks(e, p, fg)
	drawYMarks(e, p, fg)

	e.SetColor(fg)
	e.SetLineWidth(1)
	e.SetDash(nil)
	e.Rect(plot, false)

	drawXLabels(e, p, fg)
	drawYLabels(e, p, fg)
	drawTitles(e, p, cfg, fg)
}

// markDepth returns the shallowest subdivision depth whose mark stride
// divides position i.
func markDepth(factors []int, i int) int {
	total := 1
	for _, f := range factors {
		total *= f
	}
	stride := total
	for d, f := range factors {
		stride /= f
		if i%stride == 0 {
			return d
		}
	}
	return len(factors) - 1
}

func drawXMarks(e *ps.Emitter, p *paper.Paper, fg ps.Color) {
	plot := p.GraphArea()
	x := p.X()
	total := x.MarkCount()

	e.SetLineWidth(0.4)
	for i := 0; i <= total; i++ {
		px := plot.Left + float64(i)*x.MarkGap()
		depth := markDepth(x.Factors(), i)
		if depth == 0 {
			e.SetColor(gridGrey)
			e.Line(px, plot.Bottom, px, plot.Top)
		}
		e.SetColor(fg)
		e.Line(px, plot.Bottom, px, plot.Bottom-x.MarkLength(depth))
	}
}

func drawYMarks(e *ps.Emitter, p *paper.Paper, fg ps.Color) {
	plot := p.GraphArea()
	y := p.Y()
	total := y.MarkCount()

	e.SetLineWidth(0.4)
	for i := 0; i <= total; i++ {
		py := plot.Bottom + float64(i)*y.MarkGap()
		depth := markDepth(y.Factors(), i)
		if depth == 0 {
			e.SetColor(gridGrey)
			e.Line(plot.Left, py, plot.Right, py)
		}
		e.SetColor(fg)
		e.Line(plot.Left, py, plot.Left-y.MarkLength(depth), py)
	}
}

// xLabelPositions returns the logical positions labels draw at. On a
// centered categorical axis the draw position shifts half a slot while
// the marks stay put.
func xLabelPositions(x *paper.AxisLayout) []float64 {
	if !x.Categorical() {
		return x.Scale.Values
	}
	positions := make([]float64, len(x.Scale.Labels))
	for i := range positions {
		positions[i] = float64(i)
		if x.Centered() {
			positions[i] += 0.5
		}
	}
	return positions
}

func drawXLabels(e *ps.Emitter, p *paper.Paper, fg ps.Color) {
	plot := p.GraphArea()
	x := p.X()
	e.SetColor(fg)
	e.Font(x.Font(), x.FontSize())

	pad := x.Spec.MarkMax + p.Y().Spec.FontSize/2
	for i, pos := range xLabelPositions(x) {
		label := x.Labels()[i]
		px := x.Transform.ToPhysical(pos)
		if x.Rotate() {
			// Rotated labels read upward and end just below the axis.
			e.Text(px+x.FontSize()/3, plot.Bottom-pad, label, ps.AlignRight, 90)
			continue
		}
		e.Text(px, plot.Bottom-pad-x.FontSize(), label, ps.AlignCenter, 0)
	}
}

func drawYLabels(e *ps.Emitter, p *paper.Paper, fg ps.Color) {
	plot := p.GraphArea()
	y := p.Y()
	e.SetColor(fg)
	e.Font(y.Font(), y.FontSize())

	pad := y.Spec.MarkMax + 2
	for i, pos := range yLabelPositions(y) {
		py := y.Transform.ToPhysical(pos)
		e.Text(plot.Left-pad, py-y.FontSize()/3, y.Labels()[i], ps.AlignRight, 0)
	}
}

func yLabelPositions(y *paper.AxisLayout) []float64 {
	if !y.Categorical() {
		return y.Scale.Values
	}
	positions := make([]float64, len(y.Scale.Labels))
	for i := range positions {
		positions[i] = float64(i)
		if y.Centered() {
			positions[i] += 0.5
		}
	}
	return positions
}

func drawTitles(e *ps.Emitter, p *paper.Paper, cfg *Config, fg ps.Color) {
	heading := p.HeadingArea()
	plot := p.GraphArea()
	e.SetColor(fg)

	if cfg.Page.Heading != "" {
		size := cfg.Page.HeadingSize
		if size == 0 {
			size = paper.DefaultHeadingSize
		}
		font := cfg.Page.HeadingFont
		if font == "" {
			font = paper.DefaultHeadingFont
		}
		e.Font(font, size)
		e.Text((heading.Left+heading.Right)/2, heading.Top-size, cfg.Page.Heading, ps.AlignCenter, 0)
	}

	if t := p.Y().Title(); t != "" {
		e.Font(p.Y().Font(), p.Y().FontSize())
		e.Text(p.Y().Area.Left, heading.Bottom, t, ps.AlignLeft, 0)
	}
	if t := p.X().Title(); t != "" {
		e.Font(p.X().Font(), p.X().FontSize())
		e.Text((plot.Left+plot.Right)/2, p.X().Area.Bottom, t, ps.AlignCenter, 0)
	}
}
