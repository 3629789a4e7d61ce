package paper

// Accessors mirroring the resolved per-axis fields, for chart builders
// and drawing code that should not reach into the scale internals.

// Low returns the resolved (rounded) logical low bound.
func (a *AxisLayout) Low() float64 { return a.Scale.Low }

// High returns the resolved (rounded) logical high bound.
func (a *AxisLayout) High() float64 { return a.Scale.High }

// Labels returns the label text sequence for the axis.
func (a *AxisLayout) Labels() []string { return a.Scale.Labels }

// LabelsRequired returns the number of explicit labels on a categorical
// axis, or the count of generated labels on a numeric one.
func (a *AxisLayout) LabelsRequired() int {
	if a.Scale.Categorical {
		return len(a.Spec.Labels)
	}
	return len(a.Scale.Labels)
}

// MarkGap returns the physical distance between the innermost marks.
func (a *AxisLayout) MarkGap() float64 { return a.Scale.MarkGap }

// MarkCount returns the total innermost mark interval count.
func (a *AxisLayout) MarkCount() int { return a.Scale.MarkCount() }

// Factors returns the subdivision nesting, most-significant first.
func (a *AxisLayout) Factors() []int { return a.Scale.Factors }

// LabelDepth returns the deepest mark depth that receives text labels.
func (a *AxisLayout) LabelDepth() int { return a.Scale.LabelDepth }

// Categorical reports whether the axis carries explicit string labels.
func (a *AxisLayout) Categorical() bool { return a.Scale.Categorical }

// Centered reports whether categorical labels draw shifted onto slot
// centers.
func (a *AxisLayout) Centered() bool { return a.Scale.Centered }

// Rotate reports whether mark labels draw rotated.
func (a *AxisLayout) Rotate() bool { return a.Spec.Rotate }

// Title returns the axis title.
func (a *AxisLayout) Title() string { return a.Spec.Title }

// Font returns the axis label font name.
func (a *AxisLayout) Font() string { return a.Spec.Font }

// FontSize returns the axis label font size in points.
func (a *AxisLayout) FontSize() float64 { return a.Spec.FontSize }

// MarkLength returns the physical tick length for marks at the given
// depth, interpolated between the configured outermost and innermost
// lengths. Depth 0 marks are the longest.
func (a *AxisLayout) MarkLength(depth int) float64 {
	levels := len(a.Scale.Factors)
	if levels <= 1 || depth <= 0 {
		return a.Spec.MarkMax
	}
	if depth >= levels-1 {
		return a.Spec.MarkMin
	}
	step := (a.Spec.MarkMax - a.Spec.MarkMin) / float64(levels-1)
	return a.Spec.MarkMax - float64(depth)*step
}
