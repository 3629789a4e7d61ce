package chart

import (
	"strings"
	"testing"

	"github.com/madsen/postscript-graph/pkg/errors"
	"github.com/madsen/postscript-graph/pkg/paper"
	"github.com/madsen/postscript-graph/pkg/ps"
)

func testDoc(t *testing.T) *ps.Document {
	t.Helper()
	doc, err := ps.New(ps.Options{Bound: &ps.Box{Right: 250, Top: 500}})
	if err != nil {
		t.Fatalf("ps.New: %v", err)
	}
	return doc
}

func TestNewBarErrors(t *testing.T) {
	labels := []string{"Jan", "Feb"}
	series := []BarSeries{{Name: "widgets", Values: []float64{3, 5}}}

	t.Run("nil document", func(t *testing.T) {
		_, err := NewBar(nil, Config{}, labels, series, nil)
		if got := errors.GetCode(err); got != errors.ErrCodeMissingSink {
			t.Errorf("code = %v, want %v", got, errors.ErrCodeMissingSink)
		}
	})

	t.Run("no series", func(t *testing.T) {
		_, err := NewBar(testDoc(t), Config{}, labels, nil, nil)
		if got := errors.GetCode(err); got != errors.ErrCodeMissingData {
			t.Errorf("code = %v, want %v", got, errors.ErrCodeMissingData)
		}
	})

	t.Run("value count mismatch", func(t *testing.T) {
		bad := []BarSeries{{Name: "widgets", Values: []float64{3}}}
		_, err := NewBar(testDoc(t), Config{}, labels, bad, nil)
		if got := errors.GetCode(err); got != errors.ErrCodeBadData {
			t.Errorf("code = %v, want %v", got, errors.ErrCodeBadData)
		}
	})
}

func TestNewBarLayout(t *testing.T) {
	labels := []string{"Jan", "Feb", "Mar"}
	series := []BarSeries{{Name: "widgets", Values: []float64{3, 5, 4}}}

	t.Run("categorical x axis", func(t *testing.T) {
		b, err := NewBar(testDoc(t), Config{}, labels, series, nil)
		if err != nil {
			t.Fatalf("NewBar: %v", err)
		}
		x := b.Paper().X()
		if !x.Categorical() || !x.Centered() || !x.Rotate() {
			t.Errorf("x axis flags = categorical %v centered %v rotate %v, want all true",
				x.Categorical(), x.Centered(), x.Rotate())
		}
		if got, want := x.LabelsRequired(), 3; got != want {
			t.Errorf("LabelsRequired = %d, want %d", got, want)
		}
	})

	t.Run("auto y range anchors at zero", func(t *testing.T) {
		b, err := NewBar(testDoc(t), Config{}, labels, series, nil)
		if err != nil {
			t.Fatalf("NewBar: %v", err)
		}
		y := b.Paper().Y()
		if y.Low() != 0 || y.High() != 5 {
			t.Errorf("y range = [%g, %g], want [0, 5]", y.Low(), y.High())
		}
	})

	t.Run("explicit y range rounds outward", func(t *testing.T) {
		cfg := Config{Y: paper.Axis{Low: 123, High: 456.7}}
		b, err := NewBar(testDoc(t), cfg, labels, series, nil)
		if err != nil {
			t.Fatalf("NewBar: %v", err)
		}
		y := b.Paper().Y()
		if y.Low() != 100 || y.High() != 500 {
			t.Errorf("y range = [%g, %g], want [100, 500]", y.Low(), y.High())
		}
	})

	t.Run("page bound comes from the document", func(t *testing.T) {
		b, err := NewBar(testDoc(t), Config{}, labels, series, nil)
		if err != nil {
			t.Fatalf("NewBar: %v", err)
		}
		plot := b.Paper().GraphArea()
		if plot.Right >= 250 || plot.Top >= 500 {
			t.Errorf("plot %+v escapes the 250x500 page", plot)
		}
	})
}

func TestBarRender(t *testing.T) {
	labels := []string{"Jan", "Feb", "Mar"}
	series := []BarSeries{
		{Name: "widgets", Values: []float64{3, 5, 4}},
		{Name: "gadgets", Values: []float64{2, 1, 6}},
	}

	doc := testDoc(t)
	cfg := Config{Page: paper.Page{Heading: "Production", KeyWidth: 60}}
	b, err := NewBar(doc, cfg, labels, series, nil)
	if err != nil {
		t.Fatalf("NewBar: %v", err)
	}
	if err := b.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := string(doc.Bytes())
	for _, want := range []string{
		"% graph paper",
		"% bars",
		"% key",
		"gsb fill",    // bar fills
		"(Jan)",       // slot label
		"(widgets)",   // key entry
		"(gadgets)",   // key entry
		"(Production)",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if !doc.HasProcedure("psgraph-core") {
		t.Error("core procset not registered")
	}
}

func TestBarRenderDeterministic(t *testing.T) {
	labels := []string{"Jan", "Feb"}
	series := []BarSeries{{Name: "widgets", Values: []float64{3, 5}}}

	render := func() string {
		doc := testDoc(t)
		b, err := NewBar(doc, Config{}, labels, series, nil)
		if err != nil {
			t.Fatalf("NewBar: %v", err)
		}
		if err := b.Render(); err != nil {
			t.Fatalf("Render: %v", err)
		}
		return string(doc.Bytes())
	}

	if render() != render() {
		t.Error("two identical renders produced different output")
	}
}
