package paper

import "github.com/madsen/postscript-graph/pkg/ps"

// Layout defaults. Defaults substitute for absent options only; invalid
// explicit values fail construction instead of being replaced.
const (
	DefaultMargin      = 10.0
	DefaultSpacing     = 4.0
	DefaultLabelCount  = 11
	DefaultMinMarkGap  = 5.0
	DefaultYAxisWidth  = 30.0
	DefaultFont        = "Helvetica"
	DefaultFontSize    = 10.0
	DefaultHeadingFont = "Helvetica-Bold"
	DefaultHeadingSize = 15.0
	DefaultMarkMin     = 2.0
	DefaultMarkMax     = 8.0
)

// Axis is the per-axis configuration. When Labels is non-empty the axis
// is categorical: Low/High are ignored and the index range 0..N is laid
// out instead.
type Axis struct {
	Low, High  float64  // logical bounds; ignored in categorical mode
	LabelCount int      // requested number of text labels
	MinMarkGap float64  // smallest allowed physical gap between marks
	Labels     []string // explicit labels; switches the axis to categorical mode
	Title      string
	Font       string
	FontSize   float64
	Rotate     bool    // draw mark labels rotated 90 degrees
	Center     bool    // categorical: draw labels centered on slots
	MarkMin    float64 // physical length of the innermost marks
	MarkMax    float64 // physical length of the outermost marks
}

// Categorical reports whether the axis carries explicit string labels.
func (a *Axis) Categorical() bool { return len(a.Labels) > 0 }

func (a *Axis) applyDefaults() {
	if a.LabelCount == 0 {
		a.LabelCount = DefaultLabelCount
	}
	if a.MinMarkGap == 0 {
		a.MinMarkGap = DefaultMinMarkGap
	}
	if a.Font == "" {
		a.Font = DefaultFont
	}
	if a.FontSize == 0 {
		a.FontSize = DefaultFontSize
	}
	if a.MarkMin == 0 {
		a.MarkMin = DefaultMarkMin
	}
	if a.MarkMax == 0 {
		a.MarkMax = DefaultMarkMax
	}
}

// Page is the chart-wide page configuration.
type Page struct {
	Bound       ps.Box // page bounding box; usually the document's PageBox
	Margin      float64
	Spacing     float64
	Heading     string
	HeadingFont string
	HeadingSize float64
	KeyWidth    float64 // reserved key/legend strip width; 0 reserves nothing
}

func (p *Page) applyDefaults() {
	if p.Margin == 0 {
		p.Margin = DefaultMargin
	}
	if p.Spacing == 0 {
		p.Spacing = DefaultSpacing
	}
	if p.HeadingFont == "" {
		p.HeadingFont = DefaultHeadingFont
	}
	if p.HeadingSize == 0 {
		p.HeadingSize = DefaultHeadingSize
	}
}

// Options bundles everything New needs. The engine copies the option
// structs by value; callers may reuse them afterwards.
type Options struct {
	Page Page
	X, Y Axis
}
