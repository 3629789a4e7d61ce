package scale

import (
	"math"
	"testing"

	"github.com/madsen/postscript-graph/pkg/errors"
)

func TestCalculateReferenceRange(t *testing.T) {
	// Reference fixture: a y axis of 123..456.7 with 11 requested labels
	// resolves to 100..500 in steps of 50.
	r, err := Calculate("y", Input{
		Low: 123, High: 456.7,
		Extent:     400,
		LabelCount: 11,
		MinMarkGap: 5,
	})
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}

	if r.Low != 100 {
		t.Errorf("Low = %v, want 100", r.Low)
	}
	if r.High != 500 {
		t.Errorf("High = %v, want 500", r.High)
	}
	if r.Factors[0] != 8 {
		t.Errorf("Factors[0] = %d, want 8", r.Factors[0])
	}
	if r.Spreads[0] != 50 {
		t.Errorf("Spreads[0] = %v, want 50", r.Spreads[0])
	}
	if r.LabelDepth != 0 {
		t.Errorf("LabelDepth = %d, want 0", r.LabelDepth)
	}

	want := []string{"100", "150", "200", "250", "300", "350", "400", "450", "500"}
	if len(r.Labels) != len(want) {
		t.Fatalf("Labels = %v, want %v", r.Labels, want)
	}
	for i := range want {
		if r.Labels[i] != want[i] {
			t.Errorf("Labels[%d] = %q, want %q", i, r.Labels[i], want[i])
		}
	}
}

func TestCalculateOutwardRounding(t *testing.T) {
	// For any non-negative low the resolved range never clips the data.
	tests := []struct {
		name      string
		low, high float64
	}{
		{"mid decade", 123, 456.7},
		{"small fractional", 0.13, 0.89},
		{"across decades", 7, 3200},
		{"already round", 0, 100},
		{"tight range", 99, 101},
		{"large values", 12345, 98765},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Calculate("x", Input{
				Low: tt.low, High: tt.high,
				Extent:     500,
				LabelCount: 10,
				MinMarkGap: 4,
			})
			if err != nil {
				t.Fatalf("Calculate error: %v", err)
			}
			if r.Low > tt.low {
				t.Errorf("Low = %v clips data low %v", r.Low, tt.low)
			}
			if r.High < tt.high {
				t.Errorf("High = %v clips data high %v", r.High, tt.high)
			}
		})
	}
}

func TestCalculateMarkGapInvariant(t *testing.T) {
	// product(Factors) * MarkGap must reproduce the physical extent.
	tests := []struct {
		name   string
		in     Input
	}{
		{"default", Input{Low: 0, High: 1, Extent: 360, LabelCount: 11, MinMarkGap: 5}},
		{"wide extent", Input{Low: 5, High: 95, Extent: 1000, LabelCount: 6, MinMarkGap: 3}},
		{"coarse gap", Input{Low: 123, High: 456.7, Extent: 200, LabelCount: 8, MinMarkGap: 40}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Calculate("y", tt.in)
			if err != nil {
				t.Fatalf("Calculate error: %v", err)
			}
			got := float64(r.MarkCount()) * r.MarkGap
			if math.Abs(got-tt.in.Extent) > 1e-9*tt.in.Extent {
				t.Errorf("MarkCount*MarkGap = %v, want extent %v", got, tt.in.Extent)
			}
			if len(r.Factors) != len(r.Spreads) {
				t.Errorf("len(Factors) = %d != len(Spreads) = %d", len(r.Factors), len(r.Spreads))
			}
		})
	}
}

func TestCalculateLabelSequence(t *testing.T) {
	r, err := Calculate("y", Input{Low: 0, High: 10, Extent: 300, LabelCount: 11, MinMarkGap: 6})
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}

	// The label count at the chosen depth is the cumulative mark count
	// plus the fencepost at the top.
	count := 1
	for _, f := range r.Factors[:r.LabelDepth+1] {
		count *= f
	}
	if len(r.Labels) != count+1 {
		t.Errorf("len(Labels) = %d, want %d", len(r.Labels), count+1)
	}

	// Last label is the exact resolved high, not an accumulated sum.
	if r.Values[len(r.Values)-1] != r.High {
		t.Errorf("last value = %v, want exact High %v", r.Values[len(r.Values)-1], r.High)
	}
	for i := 1; i < len(r.Values); i++ {
		if r.Values[i] <= r.Values[i-1] {
			t.Errorf("values not increasing at %d: %v", i, r.Values)
		}
	}
}

func TestCalculateClampsLabelCount(t *testing.T) {
	r, err := Calculate("y", Input{Low: 0, High: 100, Extent: 100, LabelCount: -3, MinMarkGap: 10})
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if len(r.Labels) == 0 {
		t.Error("expected labels even for clamped request")
	}
}

func TestCalculateInvalidInput(t *testing.T) {
	tests := []struct {
		name string
		in   Input
		code errors.Code
	}{
		{"reversed range", Input{Low: 10, High: 5, Extent: 100, LabelCount: 5, MinMarkGap: 5}, errors.ErrCodeInvalidRange},
		{"degenerate range", Input{Low: 7, High: 7, Extent: 100, LabelCount: 5, MinMarkGap: 5}, errors.ErrCodeInvalidRange},
		{"zero extent", Input{Low: 0, High: 1, Extent: 0, LabelCount: 5, MinMarkGap: 5}, errors.ErrCodeInvalidExtent},
		{"zero gap", Input{Low: 0, High: 1, Extent: 100, LabelCount: 5, MinMarkGap: 0}, errors.ErrCodeInvalidExtent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate("y", tt.in)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestCalculateDeterministic(t *testing.T) {
	in := Input{Low: 123, High: 456.7, Extent: 400, LabelCount: 11, MinMarkGap: 5}
	a, err := Calculate("y", in)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	b, err := Calculate("y", in)
	if err != nil {
		t.Fatalf("Calculate error: %v", err)
	}
	if a.Low != b.Low || a.High != b.High || a.MarkGap != b.MarkGap || len(a.Factors) != len(b.Factors) {
		t.Errorf("repeated calculation differs: %+v vs %+v", a, b)
	}
}
