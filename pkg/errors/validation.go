package errors

// Numeric option validation helpers. These are shared by the scale
// calculator and layout engine so that all configuration failures carry
// the same codes and name the offending axis/field.

// ValidateRange checks that low < high for the named axis.
// Equal values are a degenerate range and rejected: the layout engine
// cannot subdivide a zero-width interval.
func ValidateRange(axis string, low, high float64) error {
	if low > high {
		return New(ErrCodeInvalidRange, "%s axis: low %g greater than high %g", axis, low, high)
	}
	if low == high {
		return New(ErrCodeInvalidRange, "%s axis: degenerate range [%g, %g]", axis, low, high)
	}
	return nil
}

// ValidatePositive checks that the named field is strictly positive.
func ValidatePositive(field string, v float64) error {
	if v <= 0 {
		return New(ErrCodeInvalidExtent, "%s must be positive, got %g", field, v)
	}
	return nil
}

// ValidateBox checks that a bounding box has positive width and height.
func ValidateBox(name string, left, bottom, right, top float64) error {
	if right <= left {
		return New(ErrCodeInvalidLayout, "%s: right %g not greater than left %g", name, right, left)
	}
	if top <= bottom {
		return New(ErrCodeInvalidLayout, "%s: top %g not greater than bottom %g", name, top, bottom)
	}
	return nil
}

// ValidateLabels checks a categorical label list: it must be non-empty
// and contain no empty strings (an empty label would collapse a bar slot
// caption silently).
func ValidateLabels(axis string, labels []string) error {
	if len(labels) == 0 {
		return New(ErrCodeInvalidAxis, "%s axis: empty label list", axis)
	}
	for i, l := range labels {
		if l == "" {
			return New(ErrCodeInvalidAxis, "%s axis: label %d is empty", axis, i)
		}
	}
	return nil
}
