package values

import (
	"fmt"
)

// Shadow is a parsed box-shadow or text-shadow value.
type Shadow struct {
	Dx, Dy float64
	Blur   float64
	Spread float64
	Color  Color
}

// ParseShadow parses "dx dy [blur [spread]] [color]". Missing trailing
// fields default to zero offsets and opaque black.
func ParseShadow(s string, b Baseline) (Shadow, error) {
	toks := SplitTokens(s)
	if len(toks) < 2 {
		return Shadow{}, fmt.Errorf("unsupported shadow %q", s)
	}

	sh := Shadow{Color: RGB(0, 0, 0)}
	lengths := make([]float64, 0, 4)
	for len(toks) > 0 && len(lengths) < 4 {
		l, err := ParseLength(toks[0])
		if err != nil {
			break
		}
		lengths = append(lengths, l.Pixels(b))
		toks = toks[1:]
	}
	if len(lengths) < 2 {
		return Shadow{}, fmt.Errorf("shadow %q needs at least dx and dy", s)
	}
	sh.Dx, sh.Dy = lengths[0], lengths[1]
	if len(lengths) > 2 {
		sh.Blur = lengths[2]
	}
	if len(lengths) > 3 {
		sh.Spread = lengths[3]
	}

	switch len(toks) {
	case 0:
	case 1:
		c, err := ParseColor(toks[0])
		if err != nil {
			return Shadow{}, err
		}
		sh.Color = c
	default:
		return Shadow{}, fmt.Errorf("unsupported shadow %q", s)
	}
	return sh, nil
}
