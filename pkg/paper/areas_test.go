package paper

import (
	"math"
	"testing"

	"github.com/madsen/postscript-graph/pkg/errors"
	"github.com/madsen/postscript-graph/pkg/ps"
)

func TestVerticalBarArea(t *testing.T) {
	p, err := New(barOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	plot := p.GraphArea()
	slot := plot.Width() / 3

	b, err := p.VerticalBarArea(1, 456.7)
	if err != nil {
		t.Fatalf("VerticalBarArea error: %v", err)
	}
	if math.Abs(b.Width()-slot) > 1e-9 {
		t.Errorf("bar width = %v, want slot width %v", b.Width(), slot)
	}
	if math.Abs(b.Left-(plot.Left+slot)) > 1e-9 {
		t.Errorf("bar left = %v, want %v", b.Left, plot.Left+slot)
	}
	if b.Bottom != plot.Bottom {
		t.Errorf("bar bottom = %v, want plot floor %v", b.Bottom, plot.Bottom)
	}
	wantTop := p.Y().Transform.ToPhysical(456.7)
	if math.Abs(b.Top-wantTop) > 1e-9 {
		t.Errorf("bar top = %v, want %v", b.Top, wantTop)
	}
}

func TestVerticalBarAreaErrors(t *testing.T) {
	p, err := New(barOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if _, err := p.VerticalBarArea(3, 100); !errors.Is(err, errors.ErrCodeInvalidAxis) {
		t.Errorf("out-of-range index: code = %v, want INVALID_AXIS", errors.GetCode(err))
	}
	if _, err := p.VerticalBarArea(-1, 100); err == nil {
		t.Error("negative index should fail")
	}

	numeric, err := New(Options{
		Page: Page{Bound: ps.Box{Right: 400, Top: 400}},
		X:    Axis{Low: 0, High: 10},
		Y:    Axis{Low: 0, High: 1},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if _, err := numeric.VerticalBarArea(0, 0.5); !errors.Is(err, errors.ErrCodeInvalidAxis) {
		t.Errorf("numeric axis: code = %v, want INVALID_AXIS", errors.GetCode(err))
	}
}

func TestHorizontalBarArea(t *testing.T) {
	p, err := New(Options{
		Page: Page{Bound: ps.Box{Right: 500, Top: 300}},
		X:    Axis{Low: 0, High: 100},
		Y:    Axis{Labels: []string{"alpha", "beta"}, Center: true},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	plot := p.GraphArea()

	b, err := p.HorizontalBarArea(0, 75)
	if err != nil {
		t.Fatalf("HorizontalBarArea error: %v", err)
	}
	if b.Left != plot.Left {
		t.Errorf("bar left = %v, want plot edge %v", b.Left, plot.Left)
	}
	if math.Abs(b.Height()-plot.Height()/2) > 1e-9 {
		t.Errorf("bar height = %v, want half plot %v", b.Height(), plot.Height()/2)
	}
	wantRight := p.X().Transform.ToPhysical(75)
	if math.Abs(b.Right-wantRight) > 1e-9 {
		t.Errorf("bar right = %v, want %v", b.Right, wantRight)
	}

	if _, err := p.HorizontalBarArea(2, 10); !errors.Is(err, errors.ErrCodeInvalidAxis) {
		t.Errorf("out-of-range index: code = %v, want INVALID_AXIS", errors.GetCode(err))
	}
}

func TestMarkLength(t *testing.T) {
	p, err := New(barOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	y := p.Y()
	if got := y.MarkLength(0); got != DefaultMarkMax {
		t.Errorf("depth 0 length = %v, want %v", got, DefaultMarkMax)
	}
	last := len(y.Factors()) - 1
	if last > 0 {
		if got := y.MarkLength(last); got != DefaultMarkMin {
			t.Errorf("deepest length = %v, want %v", got, DefaultMarkMin)
		}
		if y.MarkLength(0) < y.MarkLength(last) {
			t.Error("outer marks should not be shorter than inner marks")
		}
	}
}
