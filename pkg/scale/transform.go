package scale

import "github.com/madsen/postscript-graph/pkg/errors"

// Transform maps logical (data-space) values to physical (page-space)
// coordinates for one axis, and back. The inverse coefficients are
// derived algebraically at construction so the round trip is exact up
// to floating-point precision.
type Transform struct {
	m, c   float64 // logical → physical
	im, ic float64 // physical → logical: (1/m, -c/m)
}

// NewTransform derives the affine coefficients mapping the logical
// interval [logLow, logHigh] onto the physical interval [physLow,
// physHigh]. A degenerate logical range is a fatal configuration error:
// the forward multiplier would divide by zero.
func NewTransform(axis string, logLow, logHigh, physLow, physHigh float64) (Transform, error) {
	if logHigh == logLow {
		return Transform{}, errors.New(errors.ErrCodeInvalidRange,
			"%s axis: degenerate transform range [%g, %g]", axis, logLow, logHigh)
	}
	m := (physHigh - physLow) / (logHigh - logLow)
	c := physLow - m*logLow
	return Transform{m: m, c: c, im: 1 / m, ic: -c / m}, nil
}

// ToPhysical maps a logical value to its page coordinate.
func (t Transform) ToPhysical(v float64) float64 { return t.m*v + t.c }

// ToLogical maps a page coordinate back to its logical value.
func (t Transform) ToLogical(p float64) float64 { return t.im*p + t.ic }
