package scale

import "github.com/madsen/postscript-graph/pkg/errors"

// Categorical lays out an axis carrying N explicit string labels. No
// scale search happens: the logical range is the index range 0..N, with
// one mark per index plus a trailing fencepost so that N labels delimit
// N bar slots. When centered is set, label draw positions shift half a
// mark gap toward the slot centers; mark positions are unchanged.
func Categorical(axis string, labels []string, extent float64, centered bool) (*Resolved, error) {
	if err := errors.ValidateLabels(axis, labels); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositive(axis+" axis physical extent", extent); err != nil {
		return nil, err
	}

	n := len(labels)
	return &Resolved{
		Low:         0,
		High:        float64(n),
		Factors:     []int{n},
		Spreads:     []float64{1},
		MarkGap:     extent / float64(n),
		LabelDepth:  0,
		Labels:      append([]string(nil), labels...),
		Categorical: true,
		Centered:    centered,
	}, nil
}
