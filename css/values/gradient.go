package values

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// GradientKind distinguishes linear and radial gradients.
type GradientKind int

const (
	GradientLinear GradientKind = iota
	GradientRadial
)

// Alignment is a point relative to the unit square: (-1,-1) is the top-left
// corner, (1,1) the bottom-right, (0,0) the center.
type Alignment struct {
	X, Y float64
}

// PlaceholderStop marks a color stop whose position was not written in the
// stylesheet. The first and last placeholders are rewritten to 0 and 1; any
// interior ones are kept for the renderer to deal with.
const PlaceholderStop = -1

// GradientStop is a color with a position along the gradient axis (0..1).
type GradientStop struct {
	Color    Color
	Position float64
}

// Gradient is a parsed linear-gradient() or radial-gradient() value. Begin
// and End are antipodal points on the unit square.
type Gradient struct {
	Kind  GradientKind
	Begin Alignment
	End   Alignment
	Stops []GradientStop
}

// Alignment points at the 45-degree sector boundaries, starting at 0deg
// ("to top") and going clockwise through the corners and edge midpoints.
var sectorPoints = [9]Alignment{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1},
}

// alignmentForAngle converts a gradient angle in degrees to the end point on
// the unit square: the angle is normalized to [0,360), quantized into its
// 45-degree sector and linearly interpolated between the sector boundaries.
func alignmentForAngle(deg float64) Alignment {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}
	sector := int(d / 45)
	frac := (d - float64(sector)*45) / 45
	a, b := sectorPoints[sector], sectorPoints[sector+1]
	return Alignment{
		X: a.X + (b.X-a.X)*frac,
		Y: a.Y + (b.Y-a.Y)*frac,
	}
}

var directionKeywords = map[string]Alignment{
	"top":          {0, -1},
	"bottom":       {0, 1},
	"left":         {-1, 0},
	"right":        {1, 0},
	"top left":     {-1, -1},
	"left top":     {-1, -1},
	"top right":    {1, -1},
	"right top":    {1, -1},
	"bottom left":  {-1, 1},
	"left bottom":  {-1, 1},
	"bottom right": {1, 1},
	"right bottom": {1, 1},
}

// ParseGradient parses a linear-gradient() or radial-gradient() value. The
// first comma-separated item may be a direction ("to <side-or-corner>" or a
// bare angle); the rest are "color [stop%]" pairs.
func ParseGradient(s string) (*Gradient, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	var (
		kind  GradientKind
		inner string
	)
	switch {
	case strings.HasPrefix(lower, "linear-gradient(") && strings.HasSuffix(lower, ")"):
		kind, inner = GradientLinear, s[len("linear-gradient("):len(s)-1]
	case strings.HasPrefix(lower, "radial-gradient(") && strings.HasSuffix(lower, ")"):
		kind, inner = GradientRadial, s[len("radial-gradient("):len(s)-1]
	default:
		return nil, fmt.Errorf("unsupported gradient %q", s)
	}

	// gradients run top to bottom unless a direction says otherwise
	g := &Gradient{Kind: kind, Begin: Alignment{0, -1}, End: Alignment{0, 1}}

	parts := SplitCommaList(inner)
	if len(parts) == 0 {
		return nil, fmt.Errorf("empty gradient %q", s)
	}
	if end, ok := parseDirection(parts[0]); ok {
		g.End = end
		g.Begin = Alignment{X: -end.X, Y: -end.Y}
		parts = parts[1:]
	}

	for _, part := range parts {
		stop, err := parseStop(part)
		if err != nil {
			return nil, err
		}
		g.Stops = append(g.Stops, stop)
	}
	if len(g.Stops) > 0 {
		if g.Stops[0].Position == PlaceholderStop {
			g.Stops[0].Position = 0
		}
		if last := len(g.Stops) - 1; g.Stops[last].Position == PlaceholderStop {
			g.Stops[last].Position = 1
		}
	}
	return g, nil
}

func parseDirection(s string) (Alignment, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if rest, ok := strings.CutPrefix(s, "to "); ok {
		if a, ok := directionKeywords[strings.Join(strings.Fields(rest), " ")]; ok {
			return a, true
		}
		return Alignment{}, false
	}
	// a bare angle, but not a color stop like "red" or "#f00"
	if a, err := ParseAngle(s); err == nil {
		return alignmentForAngle(a.Degrees()), true
	}
	return Alignment{}, false
}

func parseStop(s string) (GradientStop, error) {
	toks := SplitTokens(s)
	if len(toks) == 0 || len(toks) > 2 {
		return GradientStop{}, fmt.Errorf("unsupported gradient stop %q", s)
	}
	color, err := ParseColor(toks[0])
	if err != nil {
		return GradientStop{}, err
	}
	stop := GradientStop{Color: color, Position: PlaceholderStop}
	if len(toks) == 2 {
		p := strings.TrimSuffix(toks[1], "%")
		if p == toks[1] {
			return GradientStop{}, fmt.Errorf("unsupported gradient stop position %q", toks[1])
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return GradientStop{}, fmt.Errorf("unsupported gradient stop position %q", toks[1])
		}
		stop.Position = v / 100
	}
	return stop, nil
}
