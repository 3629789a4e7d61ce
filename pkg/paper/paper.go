package paper

import (
	"github.com/madsen/postscript-graph/pkg/errors"
	"github.com/madsen/postscript-graph/pkg/ps"
	"github.com/madsen/postscript-graph/pkg/scale"
)

// labelCharWidth approximates the width of one label character as a
// fraction of the font size, for strip sizing before any text is laid
// out. Helvetica digits average a little under 0.6 em.
const labelCharWidth = 0.6

// numericLabelChars is the length estimate used for numeric mark labels
// when the label text is not yet known at strip-reservation time.
const numericLabelChars = 6

// Paper is the computed layout for one chart: reserved page regions,
// per-axis scales, and the logical↔physical transforms. It is immutable
// once New returns.
type Paper struct {
	page    Page
	plot    ps.Box
	heading ps.Box
	key     ps.Box
	hasKey  bool
	x, y    AxisLayout
}

// AxisLayout holds the resolved state of one axis: the defaulted spec,
// the computed scale, the affine transform, and the page strip the axis
// occupies.
type AxisLayout struct {
	Spec      Axis
	Scale     *scale.Resolved
	Transform scale.Transform
	Area      ps.Box
}

// New computes the full chart layout. Every option is resolved and
// validated here; the returned Paper performs no further computation.
//
// The reservation order is fixed: heading strip, y-axis strip, x-axis
// strip, key strip, and whatever remains is the plot area. A
// non-positive plot area is a fatal configuration error, never clamped.
func New(opts Options) (*Paper, error) {
	opts.Page.applyDefaults()
	opts.X.applyDefaults()
	opts.Y.applyDefaults()
	if err := validateOptions(&opts); err != nil {
		return nil, err
	}

	bound := opts.Page.Bound
	if err := errors.ValidateBox("page bounding box", bound.Left, bound.Bottom, bound.Right, bound.Top); err != nil {
		return nil, err
	}

	p := &Paper{page: opts.Page}
	p.x.Spec = opts.X
	p.y.Spec = opts.Y

	margin := opts.Page.Margin
	spacing := opts.Page.Spacing

	// Heading strip: heading font plus one axis-title line.
	headingHeight := opts.Page.HeadingSize + opts.Y.FontSize + 2*spacing
	yWidth := yStripWidth(&opts.Y, spacing)
	xHeight := xStripHeight(&opts.X, spacing)

	keyWidth := 0.0
	if opts.Page.KeyWidth > 0 {
		keyWidth = opts.Page.KeyWidth + spacing
	}

	p.plot = ps.Box{
		Left:   bound.Left + margin + yWidth,
		Bottom: bound.Bottom + margin + xHeight,
		Right:  bound.Right - margin - keyWidth,
		Top:    bound.Top - margin - headingHeight,
	}
	if p.plot.Width() <= 0 || p.plot.Height() <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout,
			"plot area %gx%g not positive after reserving strips", p.plot.Width(), p.plot.Height())
	}

	p.heading = ps.Box{
		Left: p.plot.Left, Bottom: p.plot.Top + spacing,
		Right: p.plot.Right, Top: bound.Top - margin,
	}
	p.x.Area = ps.Box{
		Left: p.plot.Left, Bottom: bound.Bottom + margin,
		Right: p.plot.Right, Top: p.plot.Bottom,
	}
	p.y.Area = ps.Box{
		Left: bound.Left + margin, Bottom: p.plot.Bottom,
		Right: p.plot.Left, Top: p.plot.Top,
	}
	if opts.Page.KeyWidth > 0 {
		p.hasKey = true
		p.key = ps.Box{
			Left: p.plot.Right + spacing, Bottom: p.plot.Bottom,
			Right: bound.Right - margin, Top: p.plot.Top,
		}
	}

	if err := resolveAxis(&p.x, "x", p.plot.Width()); err != nil {
		return nil, err
	}
	if err := resolveAxis(&p.y, "y", p.plot.Height()); err != nil {
		return nil, err
	}

	var err error
	p.x.Transform, err = scale.NewTransform("x", p.x.Scale.Low, p.x.Scale.High, p.plot.Left, p.plot.Right)
	if err != nil {
		return nil, err
	}
	p.y.Transform, err = scale.NewTransform("y", p.y.Scale.Low, p.y.Scale.High, p.plot.Bottom, p.plot.Top)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// validateOptions rejects sizing options that survived defaulting with a
// non-positive value. Defaults replace zero only, so an explicit negative
// margin or font size would otherwise flow straight into strip arithmetic.
func validateOptions(opts *Options) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"page margin", opts.Page.Margin},
		{"page spacing", opts.Page.Spacing},
		{"heading size", opts.Page.HeadingSize},
	} {
		if err := errors.ValidatePositive(f.name, f.v); err != nil {
			return err
		}
	}
	if opts.Page.KeyWidth < 0 {
		return errors.New(errors.ErrCodeInvalidLayout,
			"key width must not be negative, got %g", opts.Page.KeyWidth)
	}
	for _, ax := range []struct {
		name string
		a    *Axis
	}{{"x", &opts.X}, {"y", &opts.Y}} {
		for _, f := range []struct {
			field string
			v     float64
		}{
			{"font size", ax.a.FontSize},
			{"mark gap", ax.a.MinMarkGap},
			{"inner mark length", ax.a.MarkMin},
			{"outer mark length", ax.a.MarkMax},
		} {
			if err := errors.ValidatePositive(ax.name+" axis "+f.field, f.v); err != nil {
				return err
			}
		}
	}
	return nil
}

func resolveAxis(a *AxisLayout, name string, extent float64) error {
	var err error
	if a.Spec.Categorical() {
		a.Scale, err = scale.Categorical(name, a.Spec.Labels, extent, a.Spec.Center)
		return err
	}
	a.Scale, err = scale.Calculate(name, scale.Input{
		Low:        a.Spec.Low,
		High:       a.Spec.High,
		Extent:     extent,
		LabelCount: a.Spec.LabelCount,
		MinMarkGap: a.Spec.MinMarkGap,
	})
	return err
}

// yStripWidth reserves the y-axis strip: a fixed default, widened to fit
// the longest label when explicit unrotated labels are present.
func yStripWidth(a *Axis, spacing float64) float64 {
	if a.Categorical() && !a.Rotate {
		if w := float64(longestLabel(a.Labels))*labelCharWidth*a.FontSize + spacing; w > DefaultYAxisWidth {
			return w
		}
	}
	return DefaultYAxisWidth
}

// xStripHeight reserves the x-axis strip. Rotated labels stand on end,
// so the strip height grows with the longest label; unrotated labels
// need a fixed two lines.
func xStripHeight(a *Axis, spacing float64) float64 {
	if a.Rotate {
		chars := numericLabelChars
		if a.Categorical() {
			chars = longestLabel(a.Labels)
		}
		return float64(chars)*labelCharWidth*a.FontSize + spacing
	}
	return 2*a.FontSize + spacing
}

func longestLabel(labels []string) int {
	n := 0
	for _, l := range labels {
		if len(l) > n {
			n = len(l)
		}
	}
	return n
}
