package css

import (
	"strings"

	"styl/css/values"
)

// declaration is a raw name/value pair produced by the parser.
type declaration struct {
	name  string
	value string
}

// Four-sided shorthands distribute their tokens positionally: one token
// covers all four aspects, two alternate, three mirror the second, four or
// more map one-to-one.
func positional(tokens []string, n int) []string {
	out := make([]string, n)
	for i := range out {
		switch len(tokens) {
		case 0:
		case 1:
			out[i] = tokens[0]
		case 2:
			out[i] = tokens[i%2]
		case 3:
			if i == 3 {
				out[i] = tokens[1]
			} else {
				out[i] = tokens[i]
			}
		default:
			if i < len(tokens) {
				out[i] = tokens[i]
			}
		}
	}
	return out
}

var edgeNames = [4]string{"top", "right", "bottom", "left"}

var cornerNames = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

// sequential shorthands assign their tokens one-to-one to an ordered list
// of sub-properties; trailing sub-properties without a token stay unset.
var sequentialShorthands = map[string][]string{
	"border":          {"border-width", "border-style", "border-color"},
	"border-top":      {"border-top-width", "border-top-style", "border-top-color"},
	"border-right":    {"border-right-width", "border-right-style", "border-right-color"},
	"border-bottom":   {"border-bottom-width", "border-bottom-style", "border-bottom-color"},
	"border-left":     {"border-left-width", "border-left-style", "border-left-color"},
	"text-decoration": {"text-decoration-line", "text-decoration-style", "text-decoration-color"},
	"text-stroke":     {"text-stroke-width", "text-stroke-color"},
}

// IsShorthand reports whether the name expands into longhand declarations
// at parse time.
func IsShorthand(name string) bool {
	switch name {
	case "font", "margin", "padding", "border-width", "border-style", "border-color", "border-radius":
		return true
	}
	_, ok := sequentialShorthands[name]
	return ok
}

// expandShorthand rewrites one shorthand declaration into its longhand
// parts, recursing when a part is itself a shorthand.
func expandShorthand(name, value string) []declaration {
	tokens := values.SplitTokens(value)
	var out []declaration

	emit := func(name, value string) {
		if value == "" {
			return
		}
		if IsShorthand(name) {
			out = append(out, expandShorthand(name, value)...)
			return
		}
		out = append(out, declaration{name: name, value: value})
	}

	switch name {
	case "font":
		for _, d := range expandFont(tokens) {
			emit(d.name, d.value)
		}
	case "margin", "padding":
		for i, v := range positional(tokens, 4) {
			emit(name+"-"+edgeNames[i], v)
		}
	case "border-width", "border-style", "border-color":
		aspect := strings.TrimPrefix(name, "border-")
		for i, v := range positional(tokens, 4) {
			emit("border-"+edgeNames[i]+"-"+aspect, v)
		}
	case "border-radius":
		for i, v := range positional(tokens, 4) {
			emit("border-"+cornerNames[i]+"-radius", v)
		}
	default:
		subs := sequentialShorthands[name]
		for i, sub := range subs {
			if i < len(tokens) {
				emit(sub, tokens[i])
			}
		}
	}
	return out
}

// font has its own positional grammar: 1 token is the family, 2 are
// size and family, 3 add the weight, 4 or more add the style; everything
// past the size belongs to the family (case preserved).
func expandFont(tokens []string) []declaration {
	var style, weight, size string
	var family []string
	switch len(tokens) {
	case 0:
		return nil
	case 1:
		family = tokens
	case 2:
		size, family = tokens[0], tokens[1:]
	case 3:
		weight, size, family = tokens[0], tokens[1], tokens[2:]
	default:
		style, weight, size, family = tokens[0], tokens[1], tokens[2], tokens[3:]
	}

	var out []declaration
	if style != "" {
		out = append(out, declaration{"font-style", style})
	}
	if weight != "" {
		out = append(out, declaration{"font-weight", weight})
	}
	if size != "" {
		out = append(out, declaration{"font-size", size})
	}
	if len(family) > 0 {
		out = append(out, declaration{"font-family", strings.Join(family, " ")})
	}
	return out
}
