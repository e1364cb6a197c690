package values

import (
	"fmt"
	"strconv"
	"strings"
)

var romanNumerals = []struct {
	value  int
	symbol string
}{
	{1000, "m"}, {900, "cm"}, {500, "d"}, {400, "cd"},
	{100, "c"}, {90, "xc"}, {50, "l"}, {40, "xl"},
	{10, "x"}, {9, "ix"}, {5, "v"}, {4, "iv"}, {1, "i"},
}

func toRoman(n int) string {
	var b strings.Builder
	for _, r := range romanNumerals {
		for n >= r.value {
			b.WriteString(r.symbol)
			n -= r.value
		}
	}
	return b.String()
}

// base-26 letter encoding: 1 -> a, 26 -> z, 27 -> aa
func toAlpha(n int) string {
	var b []byte
	for n > 0 {
		n--
		b = append([]byte{byte('a' + n%26)}, b...)
		n /= 26
	}
	return string(b)
}

// ListMarker renders the marker for the list item at the given 1-based
// ordinal per list-style-type. Symbolic types (disc, circle, square) are
// returned by name with symbolic=true for the renderer to draw as a glyph;
// any unrecognized style type is returned verbatim.
func ListMarker(styleType string, ordinal, total int) (text string, symbolic bool) {
	switch strings.ToLower(strings.TrimSpace(styleType)) {
	case "decimal":
		return strconv.Itoa(ordinal), false
	case "decimal-leading-zero":
		return fmt.Sprintf("%0*d", len(strconv.Itoa(total)), ordinal), false
	case "lower-alpha", "lower-latin":
		return toAlpha(ordinal), false
	case "upper-alpha", "upper-latin":
		return strings.ToUpper(toAlpha(ordinal)), false
	case "lower-greek":
		return string(rune('α' + ordinal - 1)), false
	case "lower-roman":
		return toRoman(ordinal), false
	case "upper-roman":
		return strings.ToUpper(toRoman(ordinal)), false
	case "disc", "circle", "square":
		return strings.ToLower(strings.TrimSpace(styleType)), true
	default:
		return styleType, false
	}
}
