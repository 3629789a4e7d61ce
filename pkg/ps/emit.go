package ps

import (
	"fmt"
	"strings"

	"github.com/madsen/postscript-graph/pkg/errors"
)

// Text alignment for Emitter.Text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// coreProcsetName identifies the base drawing procset every emitter
// registers on its document.
const coreProcsetName = "psgraph-core"

// coreProcset defines the show variants and the line/box helpers the
// emitter calls. Arguments are pushed by the generated statements.
const coreProcset = `/gsl { newpath moveto lineto stroke } bind def
/gsb { newpath moveto lineto lineto lineto closepath } bind def
/cshow { dup stringwidth pop 2 div neg 0 rmoveto show } bind def
/rshow { dup stringwidth pop neg 0 rmoveto show } bind def
/selfont { exch findfont exch scalefont setfont } bind def
`

// Emitter builds drawing statements onto a Document. It holds no layout
// state of its own: callers pass fully resolved page coordinates.
type Emitter struct {
	doc *Document
}

// NewEmitter wraps a document sink. A nil document is a fatal resource
// error: no output target exists to accumulate statements.
func NewEmitter(d *Document) (*Emitter, error) {
	if d == nil {
		return nil, errors.New(errors.ErrCodeMissingSink, "no document sink available")
	}
	d.AddProcedure(coreProcsetName, coreProcset)
	return &Emitter{doc: d}, nil
}

// Document returns the underlying sink, for registering chart-specific
// procsets.
func (e *Emitter) Document() *Document { return e.doc }

// Comment writes a PostScript comment line into the page body.
func (e *Emitter) Comment(s string) {
	e.doc.Appendf("%% %s", s)
}

// SetColor emits the color-selection statement for an explicit color.
func (e *Emitter) SetColor(c Color) {
	e.doc.Append(c.PS())
}

// SetLineWidth emits a setlinewidth statement.
func (e *Emitter) SetLineWidth(w float64) {
	e.doc.Appendf("%.6g setlinewidth", w)
}

// SetDash emits a setdash statement; an empty pattern restores solid
// lines.
func (e *Emitter) SetDash(pattern []float64) {
	parts := make([]string, len(pattern))
	for i, p := range pattern {
		parts[i] = fmt.Sprintf("%.6g", p)
	}
	e.doc.Appendf("[%s] 0 setdash", strings.Join(parts, " "))
}

// Font emits a font selection statement.
func (e *Emitter) Font(name string, size float64) {
	e.doc.Appendf("/%s %.6g selfont", name, size)
}

// Line strokes a line between two page points.
func (e *Emitter) Line(x1, y1, x2, y2 float64) {
	e.doc.Appendf("%.4f %.4f %.4f %.4f gsl", x2, y2, x1, y1)
}

// Rect outlines or fills the given box.
func (e *Emitter) Rect(b Box, fill bool) {
	op := "stroke"
	if fill {
		op = "fill"
	}
	e.doc.Appendf("%.4f %.4f %.4f %.4f %.4f %.4f %.4f %.4f gsb %s",
		b.Left, b.Top, b.Right, b.Top, b.Right, b.Bottom, b.Left, b.Bottom, op)
}

// Text shows a string at a page point with the given alignment,
// optionally rotated counterclockwise by rotate degrees around the
// anchor point.
func (e *Emitter) Text(x, y float64, s string, align Align, rotate float64) {
	show := "show"
	switch align {
	case AlignCenter:
		show = "cshow"
	case AlignRight:
		show = "rshow"
	}
	if rotate != 0 {
		e.doc.Appendf("gsave %.4f %.4f translate %.4f rotate 0 0 moveto (%s) %s grestore",
			x, y, rotate, escape(s), show)
		return
	}
	e.doc.Appendf("%.4f %.4f moveto (%s) %s", x, y, escape(s), show)
}
