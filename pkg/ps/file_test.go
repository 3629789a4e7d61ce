package ps

import (
	"strings"
	"testing"

	"github.com/madsen/postscript-graph/pkg/errors"
)

func TestNewResolvesPaper(t *testing.T) {
	tests := []struct {
		name      string
		opts      Options
		wantW     float64
		wantH     float64
	}{
		{"default A4", Options{}, 595, 842},
		{"letter", Options{Paper: "Letter"}, 612, 792},
		{"landscape", Options{Paper: "A4", Landscape: true}, 842, 595},
		{"explicit bound", Options{Bound: &Box{Left: 10, Bottom: 20, Right: 250, Top: 500}}, 240, 480},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := New(tt.opts)
			if err != nil {
				t.Fatalf("New error: %v", err)
			}
			b := d.PageBox()
			if b.Width() != tt.wantW || b.Height() != tt.wantH {
				t.Errorf("page = %vx%v, want %vx%v", b.Width(), b.Height(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestNewInvalid(t *testing.T) {
	if _, err := New(Options{Paper: "Napkin"}); !errors.Is(err, errors.ErrCodeInvalidPaper) {
		t.Errorf("unknown paper: code = %v, want INVALID_PAPER", errors.GetCode(err))
	}
	bad := &Box{Left: 100, Bottom: 0, Right: 50, Top: 100}
	if _, err := New(Options{Bound: bad}); !errors.Is(err, errors.ErrCodeInvalidLayout) {
		t.Errorf("inverted box: code = %v, want INVALID_LAYOUT", errors.GetCode(err))
	}
}

func TestAddProcedureIdempotent(t *testing.T) {
	d, err := New(Options{})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	d.AddProcedure("chart", "/bar { } def")
	d.AddProcedure("chart", "/other { } def") // ignored
	if !d.HasProcedure("chart") {
		t.Fatal("procedure not registered")
	}

	out := string(d.Bytes())
	if strings.Count(out, "/bar { } def") != 1 {
		t.Errorf("procedure body should appear exactly once:\n%s", out)
	}
	if strings.Contains(out, "/other") {
		t.Error("re-adding a name must be a no-op")
	}
}

func TestBytesDSCFraming(t *testing.T) {
	d, err := New(Options{Paper: "A4", Title: "Sales (Q3)"})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	d.AddProcedure("p1", "/a { } def")
	d.Append("0 0 moveto")

	out := string(d.Bytes())
	for _, want := range []string{
		"%!PS-Adobe-3.0\n",
		"%%BoundingBox: 0 0 595 842",
		`%%Title: (Sales \(Q3\))`,
		"%%BeginResource: procset p1",
		"%%Page: 1 1",
		"0 0 moveto",
		"showpage",
		"%%EOF",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBytesEPS(t *testing.T) {
	d, err := New(Options{EPS: true})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	out := string(d.Bytes())
	if !strings.HasPrefix(out, "%!PS-Adobe-3.0 EPSF-3.0\n") {
		t.Errorf("EPS header missing:\n%s", out)
	}
	if strings.Contains(out, "showpage") || strings.Contains(out, "%%Page:") {
		t.Error("EPS output must not contain page framing")
	}
}

func TestAppendNewlines(t *testing.T) {
	d, err := New(Options{})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	d.Append("a")
	d.Appendf("%d b", 2)
	out := string(d.Bytes())
	if !strings.Contains(out, "a\n2 b\n") {
		t.Errorf("statements should be newline separated:\n%s", out)
	}
}

func TestPaperSizes(t *testing.T) {
	sizes := PaperSizes()
	if len(sizes) != len(paperSizes) {
		t.Fatalf("PaperSizes() returned %d entries, want %d", len(sizes), len(paperSizes))
	}
	for i := 1; i < len(sizes); i++ {
		if sizes[i-1].Name >= sizes[i].Name {
			t.Errorf("sizes not sorted: %q before %q", sizes[i-1].Name, sizes[i].Name)
		}
	}
	for _, s := range sizes {
		if s.Name == "A4" && (s.Width != 595 || s.Height != 842) {
			t.Errorf("A4 = %gx%g, want 595x842", s.Width, s.Height)
		}
	}
}
