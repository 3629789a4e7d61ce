package scale

import (
	"math"
	"testing"

	"github.com/madsen/postscript-graph/pkg/errors"
)

func TestTransformRoundTrip(t *testing.T) {
	tests := []struct {
		name                       string
		logLow, logHigh            float64
		physLow, physHigh          float64
		samples                    []float64
	}{
		{"unit to page", 0, 1, 40, 540, []float64{0, 0.25, 0.5, 1}},
		{"offset range", 100, 500, 30, 430, []float64{100, 123, 456.7, 500}},
		{"negative logical", -50, 50, 0, 200, []float64{-50, -1, 0, 17.5, 50}},
		{"inverted physical", 0, 10, 500, 100, []float64{0, 3, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, err := NewTransform("x", tt.logLow, tt.logHigh, tt.physLow, tt.physHigh)
			if err != nil {
				t.Fatalf("NewTransform error: %v", err)
			}
			for _, v := range tt.samples {
				got := tr.ToLogical(tr.ToPhysical(v))
				tol := 1e-9 * math.Max(1, math.Abs(v))
				if math.Abs(got-v) > tol {
					t.Errorf("round trip %v = %v, diff %v", v, got, got-v)
				}
			}
		})
	}
}

func TestTransformEndpoints(t *testing.T) {
	tr, err := NewTransform("y", 100, 500, 30, 430)
	if err != nil {
		t.Fatalf("NewTransform error: %v", err)
	}
	if got := tr.ToPhysical(100); got != 30 {
		t.Errorf("ToPhysical(low) = %v, want 30", got)
	}
	if got := tr.ToPhysical(500); got != 430 {
		t.Errorf("ToPhysical(high) = %v, want 430", got)
	}
	if got := tr.ToLogical(30); got != 100 {
		t.Errorf("ToLogical(physLow) = %v, want 100", got)
	}
}

func TestTransformDegenerate(t *testing.T) {
	_, err := NewTransform("y", 7, 7, 0, 100)
	if err == nil {
		t.Fatal("expected error for degenerate range")
	}
	if !errors.Is(err, errors.ErrCodeInvalidRange) {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodeInvalidRange)
	}
}
