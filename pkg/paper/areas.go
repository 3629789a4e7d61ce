package paper

import (
	"github.com/madsen/postscript-graph/pkg/errors"
	"github.com/madsen/postscript-graph/pkg/ps"
)

// GraphArea returns the central plot rectangle.
func (p *Paper) GraphArea() ps.Box { return p.plot }

// HeadingArea returns the strip reserved for the chart heading.
func (p *Paper) HeadingArea() ps.Box { return p.heading }

// KeyArea returns the key/legend strip and whether one was reserved.
func (p *Paper) KeyArea() (ps.Box, bool) { return p.key, p.hasKey }

// X returns the resolved x-axis layout.
func (p *Paper) X() *AxisLayout { return &p.x }

// Y returns the resolved y-axis layout.
func (p *Paper) Y() *AxisLayout { return &p.y }

// PhysicalPoint maps a logical point to page coordinates.
func (p *Paper) PhysicalPoint(x, y float64) (float64, float64) {
	return p.x.Transform.ToPhysical(x), p.y.Transform.ToPhysical(y)
}

// LogicalPoint maps a page point back to logical coordinates.
func (p *Paper) LogicalPoint(px, py float64) (float64, float64) {
	return p.x.Transform.ToLogical(px), p.y.Transform.ToLogical(py)
}

// VerticalBarArea returns the rectangle for bar slot index on a
// categorical x axis, rising from the plot floor to the logical top
// value. Calling it on a non-categorical x axis, or with an index
// outside the label range, is a configuration error.
func (p *Paper) VerticalBarArea(index int, top float64) (ps.Box, error) {
	if !p.x.Scale.Categorical {
		return ps.Box{}, errors.New(errors.ErrCodeInvalidAxis, "x axis: vertical bars need a categorical axis")
	}
	if index < 0 || index >= len(p.x.Scale.Labels) {
		return ps.Box{}, errors.New(errors.ErrCodeInvalidAxis,
			"x axis: bar index %d outside 0..%d", index, len(p.x.Scale.Labels)-1)
	}
	return ps.Box{
		Left:   p.x.Transform.ToPhysical(float64(index)),
		Bottom: p.plot.Bottom,
		Right:  p.x.Transform.ToPhysical(float64(index + 1)),
		Top:    p.y.Transform.ToPhysical(top),
	}, nil
}

// HorizontalBarArea returns the rectangle for bar slot index on a
// categorical y axis, extending from the plot edge to the logical
// right value.
func (p *Paper) HorizontalBarArea(index int, right float64) (ps.Box, error) {
	if !p.y.Scale.Categorical {
		return ps.Box{}, errors.New(errors.ErrCodeInvalidAxis, "y axis: horizontal bars need a categorical axis")
	}
	if index < 0 || index >= len(p.y.Scale.Labels) {
		return ps.Box{}, errors.New(errors.ErrCodeInvalidAxis,
			"y axis: bar index %d outside 0..%d", index, len(p.y.Scale.Labels)-1)
	}
	return ps.Box{
		Left:   p.plot.Left,
		Bottom: p.y.Transform.ToPhysical(float64(index)),
		Right:  p.x.Transform.ToPhysical(right),
		Top:    p.y.Transform.ToPhysical(float64(index + 1)),
	}, nil
}
