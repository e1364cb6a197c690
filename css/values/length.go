package values

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultFontSize is the fallback reference font size when no baseline
// information is available.
const DefaultFontSize = 16

// LengthUnit enumerates the units a Length can carry. UnitAbsolute and
// UnitRelative are pseudo-units produced by the CSS size keywords
// (medium, small, larger, ...).
type LengthUnit int

const (
	UnitNone LengthUnit = iota
	UnitPx
	UnitIn
	UnitEm
	UnitEx
	UnitRem
	UnitDpi
	UnitDppx
	UnitAbsolute
	UnitRelative
)

func (u LengthUnit) String() string {
	switch u {
	case UnitPx:
		return "px"
	case UnitIn:
		return "in"
	case UnitEm:
		return "em"
	case UnitEx:
		return "ex"
	case UnitRem:
		return "rem"
	case UnitDpi:
		return "dpi"
	case UnitDppx:
		return "dppx"
	case UnitAbsolute:
		return "absolute"
	case UnitRelative:
		return "relative"
	default:
		return ""
	}
}

// Baseline carries the reference font sizes used to convert relative lengths
// to device pixels: Em from the nearest ancestor, Rem from the root defaults.
type Baseline struct {
	Em  float64
	Rem float64
}

// DefaultBaseline returns the baseline used when neither a parent nor a
// defaults block provides a font size.
func DefaultBaseline() Baseline {
	return Baseline{Em: DefaultFontSize, Rem: DefaultFontSize}
}

// Length is a numeric value with an optional unit.
type Length struct {
	Value float64
	Unit  LengthUnit
}

// Size keywords map onto the absolute/relative pseudo-units: absolute values
// are steps away from the root font size, relative ones from the parent.
var sizeKeywords = map[string]Length{
	"xx-small": {Value: -3, Unit: UnitAbsolute},
	"x-small":  {Value: -2, Unit: UnitAbsolute},
	"small":    {Value: -1, Unit: UnitAbsolute},
	"medium":   {Value: 0, Unit: UnitAbsolute},
	"large":    {Value: 1, Unit: UnitAbsolute},
	"x-large":  {Value: 2, Unit: UnitAbsolute},
	"xx-large": {Value: 3, Unit: UnitAbsolute},
	"larger":   {Value: 1, Unit: UnitRelative},
	"smaller":  {Value: -1, Unit: UnitRelative},
}

// ParseLength parses a length token: a number with an optional unit, or one
// of the CSS size keywords.
func ParseLength(s string) (Length, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Length{}, fmt.Errorf("empty length")
	}
	if l, ok := sizeKeywords[s]; ok {
		return l, nil
	}

	end := 0
	for end < len(s) {
		c := s[end]
		if c == '-' || c == '+' || c == '.' || (c >= '0' && c <= '9') {
			end++
			continue
		}
		break
	}
	value, err := strconv.ParseFloat(s[:end], 64)
	if err != nil {
		return Length{}, fmt.Errorf("unsupported length %q", s)
	}

	var unit LengthUnit
	switch s[end:] {
	case "":
		unit = UnitNone
	case "px":
		unit = UnitPx
	case "in":
		unit = UnitIn
	case "em":
		unit = UnitEm
	case "ex":
		unit = UnitEx
	case "rem":
		unit = UnitRem
	case "dpi":
		unit = UnitDpi
	case "dppx", "x":
		unit = UnitDppx
	default:
		return Length{}, fmt.Errorf("unsupported length unit %q", s[end:])
	}
	return Length{Value: value, Unit: unit}, nil
}

// Pixels converts the length to device pixels against the baseline context.
func (l Length) Pixels(b Baseline) float64 {
	switch l.Unit {
	case UnitIn:
		return l.Value * 96
	case UnitEm:
		return l.Value * b.Em
	case UnitEx:
		return l.Value * b.Em * 0.5
	case UnitRem:
		return l.Value * b.Rem
	case UnitAbsolute:
		return b.Rem + l.Value
	case UnitRelative:
		return b.Em + l.Value
	default:
		// bare numbers, px and resolution units pass through unchanged
		return l.Value
	}
}
