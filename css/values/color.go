package values

import (
	"fmt"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit RGBA color.
type Color struct {
	R, G, B, A uint8
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns the color with a different alpha channel.
func (c Color) WithAlpha(a uint8) Color {
	c.A = a
	return c
}

// Darken blends the color towards black by the given fraction (0..1),
// keeping the alpha channel.
func (c Color) Darken(fraction float64) Color {
	col := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	r, g, b := col.BlendRgb(colorful.Color{}, fraction).RGB255()
	return Color{R: r, G: g, B: b, A: c.A}
}

func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor parses a color token: #rrggbb, #rrggbbaa, a named web color,
// rgb()/rgba() with 0-255 channels, or hsl()/hsla() with degrees and
// percentages. The optional alpha is a 0-1 float.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)

	if c, ok := namedColors[lower]; ok {
		return c, nil
	}
	if strings.HasPrefix(lower, "#") {
		return parseHexColor(lower[1:])
	}
	if inner, ok := functionArgs(lower, "rgb", "rgba"); ok {
		return parseRGBColor(inner)
	}
	if inner, ok := functionArgs(lower, "hsl", "hsla"); ok {
		return parseHSLColor(inner)
	}
	return Color{}, fmt.Errorf("unsupported color %q", s)
}

// functionArgs returns the argument list of s when it is a call to one of
// the given function names.
func functionArgs(s string, names ...string) (string, bool) {
	if !strings.HasSuffix(s, ")") {
		return "", false
	}
	for _, name := range names {
		if strings.HasPrefix(s, name+"(") {
			return s[len(name)+1 : len(s)-1], true
		}
	}
	return "", false
}

func parseHexColor(hex string) (Color, error) {
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("unsupported hex color %q", "#"+hex)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return Color{}, fmt.Errorf("unsupported hex color %q", "#"+hex)
	}
	if len(hex) == 8 {
		return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

func parseRGBColor(args string) (Color, error) {
	parts := SplitCommaList(args)
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("rgb() expects 3 or 4 arguments, got %d", len(parts))
	}
	var channels [3]uint8
	for i := range 3 {
		v, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil || v < 0 || v > 255 {
			return Color{}, fmt.Errorf("unsupported rgb() channel %q", parts[i])
		}
		channels[i] = uint8(v)
	}
	alpha := uint8(255)
	if len(parts) == 4 {
		a, err := parseAlpha(parts[3])
		if err != nil {
			return Color{}, err
		}
		alpha = a
	}
	return Color{R: channels[0], G: channels[1], B: channels[2], A: alpha}, nil
}

func parseHSLColor(args string) (Color, error) {
	parts := SplitCommaList(args)
	if len(parts) != 3 && len(parts) != 4 {
		return Color{}, fmt.Errorf("hsl() expects 3 or 4 arguments, got %d", len(parts))
	}
	hue, err := ParseAngle(parts[0])
	if err != nil {
		return Color{}, fmt.Errorf("unsupported hsl() hue %q", parts[0])
	}
	sat, err := parsePercent(parts[1])
	if err != nil {
		return Color{}, err
	}
	light, err := parsePercent(parts[2])
	if err != nil {
		return Color{}, err
	}
	alpha := uint8(255)
	if len(parts) == 4 {
		if alpha, err = parseAlpha(parts[3]); err != nil {
			return Color{}, err
		}
	}
	r, g, b := colorful.Hsl(hue.Degrees(), sat, light).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

func parsePercent(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !strings.HasSuffix(s, "%") {
		return 0, fmt.Errorf("expected percentage, got %q", s)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
	if err != nil {
		return 0, fmt.Errorf("expected percentage, got %q", s)
	}
	return v / 100, nil
}

func parseAlpha(s string) (uint8, error) {
	a, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || a < 0 || a > 1 {
		return 0, fmt.Errorf("unsupported alpha %q", s)
	}
	return uint8(a*255 + 0.5), nil
}
