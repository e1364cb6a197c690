package values

import (
	"fmt"
	"math"
	"strings"
)

// BorderStyle enumerates the recognized border line styles.
type BorderStyle int

const (
	BorderNone BorderStyle = iota
	BorderHidden
	BorderSolid
	BorderDashed
	BorderDotted
	BorderInset
	BorderOutset
)

func (s BorderStyle) String() string {
	switch s {
	case BorderHidden:
		return "hidden"
	case BorderSolid:
		return "solid"
	case BorderDashed:
		return "dashed"
	case BorderDotted:
		return "dotted"
	case BorderInset:
		return "inset"
	case BorderOutset:
		return "outset"
	default:
		return "none"
	}
}

// ParseBorderStyle parses a border style keyword.
func ParseBorderStyle(s string) (BorderStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return BorderNone, nil
	case "hidden":
		return BorderHidden, nil
	case "solid":
		return BorderSolid, nil
	case "dashed":
		return BorderDashed, nil
	case "dotted":
		return BorderDotted, nil
	case "inset":
		return BorderInset, nil
	case "outset":
		return BorderOutset, nil
	default:
		return BorderNone, fmt.Errorf("unsupported border style %q", s)
	}
}

// Uniform reports whether the style can be painted as part of one solid
// (or absent) border. Dashed and dotted sides need per-side stroking.
func (s BorderStyle) Uniform() bool {
	return s != BorderDashed && s != BorderDotted
}

// ParseBorderWidth parses a border width: the keywords thin/medium/thick map
// to 1/3/5 pixels, anything else is a Length converted via the baseline.
func ParseBorderWidth(s string, b Baseline) (float64, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "thin":
		return 1, nil
	case "medium":
		return 3, nil
	case "thick":
		return 5, nil
	}
	l, err := ParseLength(s)
	if err != nil {
		return 0, err
	}
	return l.Pixels(b), nil
}

// Edge identifies one side of a box.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// BorderSide describes one side of a border. When CurrentColor is set the
// side is painted with the element's text color.
type BorderSide struct {
	Width        float64
	Style        BorderStyle
	Color        Color
	CurrentColor bool
}

// bevelDarken is the fixed darkening applied to inset/outset sides. There is
// no lighten operation, darkening opposing sides approximates the bevel.
const bevelDarken = 0.3

// EffectiveColor returns the stroke color for the side when it sits on the
// given edge. Inset darkens top/left, outset darkens bottom/right.
func (b BorderSide) EffectiveColor(edge Edge, current Color) Color {
	c := b.Color
	if b.CurrentColor {
		c = current
	}
	switch {
	case b.Style == BorderInset && (edge == EdgeTop || edge == EdgeLeft):
		c = c.Darken(bevelDarken)
	case b.Style == BorderOutset && (edge == EdgeBottom || edge == EdgeRight):
		c = c.Darken(bevelDarken)
	}
	return c
}

// DefaultDashPattern is the on/off interval sequence, in multiples of the
// border width, used to stroke dashed sides.
var DefaultDashPattern = []float64{3, 2}

// DashPattern returns the stroke intervals for the side: [w,w] for dotted,
// the dash array scaled by width for dashed, and a single effectively
// infinite interval for everything else.
func (b BorderSide) DashPattern(dash []float64) []float64 {
	switch b.Style {
	case BorderDotted:
		return []float64{b.Width, b.Width}
	case BorderDashed:
		if len(dash) == 0 {
			dash = DefaultDashPattern
		}
		out := make([]float64, len(dash))
		for i, d := range dash {
			out[i] = d * b.Width
		}
		return out
	default:
		return []float64{math.MaxFloat32}
	}
}
