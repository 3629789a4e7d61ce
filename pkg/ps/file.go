package ps

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/madsen/postscript-graph/pkg/errors"
)

// Box is a rectangle in page coordinates (PostScript points,
// origin bottom-left).
type Box struct {
	Left, Bottom, Right, Top float64
}

// Width returns the horizontal span of the box.
func (b Box) Width() float64 { return b.Right - b.Left }

// Height returns the vertical span of the box.
func (b Box) Height() float64 { return b.Top - b.Bottom }

// paperSizes maps named paper formats to (width, height) in points.
var paperSizes = map[string][2]float64{
	"A0":      {2384, 3370},
	"A1":      {1684, 2384},
	"A2":      {1191, 1684},
	"A3":      {842, 1191},
	"A4":      {595, 842},
	"A5":      {420, 595},
	"Letter":  {612, 792},
	"Legal":   {612, 1008},
	"Tabloid": {792, 1224},
}

// PaperSize is one named page format.
type PaperSize struct {
	Name          string
	Width, Height float64 // points, portrait orientation
}

// PaperSizes returns the supported named formats sorted by name.
func PaperSizes() []PaperSize {
	sizes := make([]PaperSize, 0, len(paperSizes))
	for name, wh := range paperSizes {
		sizes = append(sizes, PaperSize{Name: name, Width: wh[0], Height: wh[1]})
	}
	sort.Slice(sizes, func(i, j int) bool { return sizes[i].Name < sizes[j].Name })
	return sizes
}

// Options configures a new Document.
type Options struct {
	Paper     string // named paper size; default "A4"
	Landscape bool   // swap paper width and height
	Bound     *Box   // explicit bounding box, overrides Paper
	EPS       bool   // emit EPSF-3.0 framing instead of a standalone program
	Title     string // DSC %%Title comment
}

// Document accumulates drawing statements and procedure sets for one
// output file. The zero value is not usable; construct with New.
type Document struct {
	bound Box
	eps   bool
	title string

	procOrder []string
	procs     map[string]string
	body      bytes.Buffer
}

// New creates an empty document for the requested page geometry.
// An unknown paper name or an inverted explicit bounding box is a fatal
// configuration error.
func New(opts Options) (*Document, error) {
	bound, err := resolveBound(opts)
	if err != nil {
		return nil, err
	}
	return &Document{
		bound: bound,
		eps:   opts.EPS,
		title: opts.Title,
		procs: make(map[string]string),
	}, nil
}

func resolveBound(opts Options) (Box, error) {
	if opts.Bound != nil {
		b := *opts.Bound
		if err := errors.ValidateBox("bounding box", b.Left, b.Bottom, b.Right, b.Top); err != nil {
			return Box{}, err
		}
		return b, nil
	}
	name := opts.Paper
	if name == "" {
		name = "A4"
	}
	size, ok := paperSizes[name]
	if !ok {
		return Box{}, errors.New(errors.ErrCodeInvalidPaper, "unknown paper size %q", name)
	}
	w, h := size[0], size[1]
	if opts.Landscape {
		w, h = h, w
	}
	return Box{Right: w, Top: h}, nil
}

// PageBox returns the document's bounding box.
func (d *Document) PageBox() Box { return d.bound }

// AddProcedure registers a named procedure set. Re-adding an existing
// name is a no-op, which makes repeated registration from multiple
// charts sharing one document safe.
func (d *Document) AddProcedure(name, code string) {
	if _, ok := d.procs[name]; ok {
		return
	}
	d.procs[name] = code
	d.procOrder = append(d.procOrder, name)
}

// HasProcedure reports whether a procedure set is already registered.
func (d *Document) HasProcedure(name string) bool {
	_, ok := d.procs[name]
	return ok
}

// Append adds raw drawing statements to the page body.
func (d *Document) Append(code string) {
	d.body.WriteString(code)
	if !strings.HasSuffix(code, "\n") {
		d.body.WriteByte('\n')
	}
}

// Appendf adds formatted drawing statements to the page body.
func (d *Document) Appendf(format string, args ...any) {
	fmt.Fprintf(&d.body, format, args...)
	if !strings.HasSuffix(format, "\n") {
		d.body.WriteByte('\n')
	}
}

// Bytes serializes the document with DSC framing.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer

	if d.eps {
		buf.WriteString("%!PS-Adobe-3.0 EPSF-3.0\n")
	} else {
		buf.WriteString("%!PS-Adobe-3.0\n")
	}
	fmt.Fprintf(&buf, "%%%%BoundingBox: %.0f %.0f %.0f %.0f\n",
		d.bound.Left, d.bound.Bottom, d.bound.Right, d.bound.Top)
	if d.title != "" {
		fmt.Fprintf(&buf, "%%%%Title: (%s)\n", escape(d.title))
	}
	if len(d.procOrder) > 0 {
		fmt.Fprintf(&buf, "%%%%DocumentSuppliedResources: procset %s\n",
			strings.Join(d.procOrder, " "))
	}
	buf.WriteString("%%EndComments\n")

	if len(d.procOrder) > 0 {
		buf.WriteString("%%BeginProlog\n")
		for _, name := range d.procOrder {
			fmt.Fprintf(&buf, "%%%%BeginResource: procset %s\n", name)
			code := d.procs[name]
			buf.WriteString(code)
			if !strings.HasSuffix(code, "\n") {
				buf.WriteByte('\n')
			}
			buf.WriteString("%%EndResource\n")
		}
		buf.WriteString("%%EndProlog\n")
	}

	if !d.eps {
		buf.WriteString("%%Page: 1 1\n")
	}
	buf.Write(d.body.Bytes())
	if !d.eps {
		buf.WriteString("showpage\n")
	}
	buf.WriteString("%%Trailer\n%%EOF\n")
	return buf.Bytes()
}

// WriteTo serializes the document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(d.Bytes())
	return int64(n), err
}

// WriteFile serializes the document to the named file.
func (d *Document) WriteFile(path string) error {
	if err := os.WriteFile(path, d.Bytes(), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// escape makes a string safe inside a PostScript (...) literal.
func escape(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `(`, `\(`, `)`, `\)`)
	return r.Replace(s)
}
