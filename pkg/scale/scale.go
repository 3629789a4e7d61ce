package scale

import (
	"math"
	"strconv"

	"github.com/madsen/postscript-graph/pkg/errors"
)

// Input holds the parameters for a numeric axis scale computation.
type Input struct {
	Low, High  float64 // logical data range; Low < High required
	Extent     float64 // physical extent available for the axis (> 0)
	LabelCount int     // requested number of text labels; values < 1 are clamped to 1
	MinMarkGap float64 // smallest allowed physical gap between marks (> 0)
}

// Resolved is the outcome of a scale computation.
//
// Factors holds the subdivision nesting, most-significant first: Factors[0]
// is the number of major intervals across the axis, each later entry the
// number of sub-marks one level divides its parent into. Spreads[i] is the
// logical width of one mark at depth i. The product of all factors times
// MarkGap equals the physical extent the axis was computed for.
type Resolved struct {
	Low, High   float64
	Factors     []int
	Spreads     []float64
	MarkGap     float64
	LabelDepth  int
	Labels      []string
	Values      []float64 // numeric label values; nil for categorical axes
	Categorical bool
	Centered    bool // categorical only: draw labels half a gap toward slot centers
}

// MarkCount returns the total number of innermost mark intervals,
// i.e. the product of all subdivision factors.
func (r *Resolved) MarkCount() int {
	n := 1
	for _, f := range r.Factors {
		n *= f
	}
	return n
}

// candidate pairs a nice step multiplier with its canonical first
// subdivision factor. The order is significant: ties in the label-count
// search resolve to the earliest entry, which keeps output reproducible.
var candidates = []struct {
	mult float64
	sub  int
}{
	{0.2, 2},
	{0.5, 5},
	{1, 2},
	{2, 2},
	{5, 5},
}

const fpSlack = 1e-9

// Calculate computes a nice scale for a numeric axis. The axis name is
// used only in error messages.
func Calculate(axis string, in Input) (*Resolved, error) {
	if err := errors.ValidateRange(axis, in.Low, in.High); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositive(axis+" axis physical extent", in.Extent); err != nil {
		return nil, err
	}
	if err := errors.ValidatePositive(axis+" axis mark gap", in.MinMarkGap); err != nil {
		return nil, err
	}
	want := in.LabelCount
	if want < 1 {
		want = 1
	}

	rng := in.High - in.Low
	magnitude := math.Pow(10, math.Floor(math.Log10(rng)))

	// Search the fixed candidate list for the step whose resulting label
	// count lands nearest the requested count. Strict < keeps the earliest
	// candidate on ties.
	var (
		bestDist = math.MaxInt
		bestLow  float64
		bestN    int
		bestStep float64
		bestSub  int
	)
	for _, c := range candidates {
		step := c.mult * magnitude
		low, n := roundOutward(in.Low, in.High, step)
		if dist := abs(n + 1 - want); dist < bestDist {
			bestDist = dist
			bestLow, bestN, bestStep, bestSub = low, n, step, c.sub
		}
	}

	r := &Resolved{
		Low:     bestLow,
		High:    bestLow + float64(bestN)*bestStep,
		Factors: []int{bestN},
		Spreads: []float64{bestStep},
	}
	subdivide(r, in.Extent, in.MinMarkGap, bestSub)
	r.MarkGap = in.Extent / float64(r.MarkCount())
	r.LabelDepth = chooseLabelDepth(r.Factors, want)
	r.Values = labelValues(r)
	r.Labels = formatLabels(r.Values)
	return r, nil
}

// roundOutward extends low down to a step multiple and returns it with the
// number of whole steps needed to cover high. A negative low that already
// sits exactly on a step boundary is pushed one further step down so the
// mark at the origin is never suppressed.
func roundOutward(low, high, step float64) (float64, int) {
	rounded := step * math.Floor(low/step)
	if low < 0 && rounded == low {
		rounded -= step
	}
	n := int(math.Ceil((high - rounded) / step * (1 - fpSlack)))
	if n < 1 {
		n = 1
	}
	return rounded, n
}

// subdivide nests mark levels until the next subdivision would fall under
// the minimum physical gap. Factors alternate 2, 5, 2, 5, ... starting
// from the candidate's canonical value, with a final partial step (5 then
// 2) to use remaining headroom.
func subdivide(r *Resolved, extent, minGap float64, first int) {
	total := r.Factors[0]
	next := first
	for extent/float64(total*next) >= minGap {
		total *= next
		r.Factors = append(r.Factors, next)
		r.Spreads = append(r.Spreads, r.Spreads[len(r.Spreads)-1]/float64(next))
		if next == 2 {
			next = 5
		} else {
			next = 2
		}
	}
	for _, f := range []int{5, 2} {
		if extent/float64(total*f) >= minGap {
			r.Factors = append(r.Factors, f)
			r.Spreads = append(r.Spreads, r.Spreads[len(r.Spreads)-1]/float64(f))
			break
		}
	}
}

// chooseLabelDepth picks the depth whose cumulative label count lands
// nearest the requested count, comparing the two depths that straddle the
// target. Ties favor the shallower depth.
func chooseLabelDepth(factors []int, want int) int {
	count := 1
	for depth, f := range factors {
		prev := count
		count *= f
		if count+1 >= want {
			if depth == 0 {
				return 0
			}
			if abs(prev+1-want) <= abs(count+1-want) {
				return depth - 1
			}
			return depth
		}
	}
	return len(factors) - 1
}

// labelValues walks a multi-radix counter across Factors[0..LabelDepth],
// converting counter state to logical values via Spreads. The exact
// resolved High is appended as the last value rather than accumulated,
// which guards against floating-point drift from repeated addition.
func labelValues(r *Resolved) []float64 {
	n := 1
	for _, f := range r.Factors[:r.LabelDepth+1] {
		n *= f
	}
	digits := make([]int, r.LabelDepth+1)
	values := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		v := r.Low
		for j, d := range digits {
			v += float64(d) * r.Spreads[j]
		}
		values = append(values, v)
		for j := r.LabelDepth; j >= 0; j-- {
			digits[j]++
			if digits[j] < r.Factors[j] {
				break
			}
			digits[j] = 0
		}
	}
	return append(values, r.High)
}

func formatLabels(values []float64) []string {
	labels := make([]string, len(values))
	for i, v := range values {
		labels[i] = FormatValue(v)
	}
	return labels
}

// FormatValue renders a logical value the way axis labels print it:
// shortest representation within 10 significant digits, so accumulated
// floating-point noise does not leak into label text.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 10, 64)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
