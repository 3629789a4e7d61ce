package chart

import (
	"github.com/madsen/postscript-graph/pkg/paper"
	"github.com/madsen/postscript-graph/pkg/ps"
	"github.com/madsen/postscript-graph/pkg/style"
)

// Config bundles the recognized option groups for chart construction:
// page layout, the two axes, style cycling, and the chart background.
// Absent fields take defaults; invalid explicit values fail
// construction.
type Config struct {
	Page       paper.Page
	X, Y       paper.Axis
	Style      style.Options
	Background ps.Color // unset counts as white
	ShowLines  *bool    // XY charts: draw connecting lines (default true)
	ShowPoints *bool    // XY charts: draw point glyphs (default true)
}

func (c *Config) background() ps.Color {
	if !c.Background.IsSet() {
		return ps.White
	}
	return c.Background
}

func (c *Config) showLines() bool {
	return c.ShowLines == nil || *c.ShowLines
}

func (c *Config) showPoints() bool {
	return c.ShowPoints == nil || *c.ShowPoints
}

// autoRange derives a [low, high] pair from data bounds when the caller
// left the axis range unset. Non-negative data is anchored at zero so
// bars and areas grow from the origin; negative data keeps its own
// minimum.
func autoRange(min, max float64) (float64, float64) {
	low := min
	if low > 0 {
		low = 0
	}
	return low, max
}
