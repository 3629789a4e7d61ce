package ps

import "fmt"

// colorKind discriminates the two phases a color value can be in.
type colorKind int

const (
	colorUnset colorKind = iota
	colorGrey
	colorRGB
	colorComplement
)

// Color is a drawing color. It is either an explicit grey or RGB value,
// or the deferred "complement of background" value that resolves once
// the chart background is known. Deferred colors must be resolved
// before PS is asked for; emitting an unresolved color is a programming
// error and panics.
type Color struct {
	kind    colorKind
	r, g, b float64
}

// Grey returns an explicit greyscale color; v is clamped to [0, 1].
func Grey(v float64) Color {
	return Color{kind: colorGrey, r: clamp01(v)}
}

// RGB returns an explicit RGB color; components are clamped to [0, 1].
func RGB(r, g, b float64) Color {
	return Color{kind: colorRGB, r: clamp01(r), g: clamp01(g), b: clamp01(b)}
}

// Complement returns the deferred complement-of-background color.
func Complement() Color {
	return Color{kind: colorComplement}
}

// Black and White are the common explicit endpoints.
var (
	Black = Grey(0)
	White = Grey(1)
)

// IsDeferred reports whether the color still awaits resolution against
// a background.
func (c Color) IsDeferred() bool { return c.kind == colorComplement }

// IsSet reports whether the color was assigned at all. The zero value
// is unset, which lets configurations distinguish "absent" from an
// explicit black.
func (c Color) IsSet() bool { return c.kind != colorUnset }

// Resolve returns the explicit color, computing the complement of
// background for deferred values. Explicit colors resolve to
// themselves; an unset background counts as white.
func (c Color) Resolve(background Color) Color {
	switch c.kind {
	case colorUnset:
		return White
	case colorComplement:
	default:
		return c
	}
	bg := background
	if !bg.IsSet() || bg.kind == colorComplement {
		bg = White
	}
	switch bg.kind {
	case colorGrey:
		return Grey(1 - bg.r)
	default:
		return RGB(1-bg.r, 1-bg.g, 1-bg.b)
	}
}

// PS returns the PostScript statement selecting this color.
func (c Color) PS() string {
	switch c.kind {
	case colorGrey:
		return fmt.Sprintf("%.4g setgray", c.r)
	case colorRGB:
		return fmt.Sprintf("%.4g %.4g %.4g setrgbcolor", c.r, c.g, c.b)
	default:
		panic("ps: unresolved deferred color")
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
