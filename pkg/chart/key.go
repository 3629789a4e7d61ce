package chart

import (
	"github.com/madsen/postscript-graph/pkg/paper"
	"github.com/madsen/postscript-graph/pkg/ps"
	"github.com/madsen/postscript-graph/pkg/style"
)

// keyEntry is one row in the chart key: a style sample next to the
// series name. Bar entries draw a filled swatch, everything else draws
// a line segment with the series point glyph on top.
type keyEntry struct {
	label string
	style style.Record
	bar   bool
}

const (
	keySampleWidth = 20
	keyRowGap      = 4
)

// drawKey renders the entries into the reserved key strip, top down.
// A paper without a key strip makes this a no-op, so charts can call
// it unconditionally.
func drawKey(e *ps.Emitter, p *paper.Paper, bg ps.Color, entries []keyEntry) error {
	area, ok := p.KeyArea()
	if !ok || len(entries) == 0 {
		return nil
	}

	e.Comment("key")
	font := p.Y().Font()
	size := p.Y().FontSize()
	e.Font(font, size)

	rowHeight := size + keyRowGap
	y := area.Top - rowHeight
	for _, entry := range entries {
		if y < area.Bottom {
			break
		}
		mid := y + size*0.4

		if entry.bar {
			swatch := ps.Box{
				Left:   area.Left,
				Bottom: y,
				Right:  area.Left + keySampleWidth,
				Top:    y + size*0.8,
			}
			st := entry.style.Bar
			e.SetColor(st.Fill.Resolve(bg))
			e.Rect(swatch, true)
			e.SetColor(st.Edge.Resolve(bg))
			e.SetLineWidth(st.EdgeWidth)
			e.Rect(swatch, false)
		} else {
			drawKeySample(e, entry.style, bg, area.Left, mid)
		}

		e.SetColor(ps.Black.Resolve(bg))
		e.Text(area.Left+keySampleWidth+keyRowGap, y, entry.label, ps.AlignLeft, 0)
		y -= rowHeight
	}
	return nil
}

func drawKeySample(e *ps.Emitter, st style.Record, bg ps.Color, left, mid float64) {
	ln := st.Line
	e.SetColor(ln.Outer.Resolve(bg))
	e.SetLineWidth(ln.OuterWidth)
	e.SetDash(nil)
	e.Line(left, mid, left+keySampleWidth, mid)
	e.SetColor(ln.Inner.Resolve(bg))
	e.SetLineWidth(ln.InnerWidth)
	e.SetDash(ln.Dashes)
	e.Line(left, mid, left+keySampleWidth, mid)
	e.SetDash(nil)

	drawPoint(e, st.Point, bg, left+keySampleWidth/2, mid)
}
