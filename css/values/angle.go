package values

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AngleUnit enumerates the units an Angle can carry.
type AngleUnit int

const (
	AngleDeg AngleUnit = iota
	AngleRad
	AngleGrad
	AngleTurn
)

func (u AngleUnit) String() string {
	switch u {
	case AngleRad:
		return "rad"
	case AngleGrad:
		return "grad"
	case AngleTurn:
		return "turn"
	default:
		return "deg"
	}
}

// Angle is a numeric value with an angular unit. Bare numbers are degrees.
type Angle struct {
	Value float64
	Unit  AngleUnit
}

// ParseAngle parses an angle token like "45deg", "0.5turn" or "1.2rad".
func ParseAngle(s string) (Angle, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	unit := AngleDeg
	switch {
	case strings.HasSuffix(s, "grad"):
		unit, s = AngleGrad, strings.TrimSuffix(s, "grad")
	case strings.HasSuffix(s, "rad"):
		unit, s = AngleRad, strings.TrimSuffix(s, "rad")
	case strings.HasSuffix(s, "deg"):
		unit, s = AngleDeg, strings.TrimSuffix(s, "deg")
	case strings.HasSuffix(s, "turn"):
		unit, s = AngleTurn, strings.TrimSuffix(s, "turn")
	}
	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Angle{}, fmt.Errorf("unsupported angle %q", s)
	}
	return Angle{Value: value, Unit: unit}, nil
}

// Radians converts the angle to radians.
func (a Angle) Radians() float64 {
	switch a.Unit {
	case AngleRad:
		return a.Value
	case AngleGrad:
		return a.Value * 0.015708
	case AngleTurn:
		return a.Value / 6.28319
	default:
		return a.Value * math.Pi / 180
	}
}

// Degrees converts the angle to degrees.
func (a Angle) Degrees() float64 {
	return a.Radians() * 180 / math.Pi
}
