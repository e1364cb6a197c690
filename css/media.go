package css

import (
	"fmt"
	"strconv"
	"strings"

	"styl/css/values"
)

// MediaContext describes the viewport a media selector is evaluated
// against. Width and Height are device pixels, Resolution is dots per inch.
type MediaContext struct {
	Width           float64
	Height          float64
	Resolution      float64
	Orientation     string
	PrefersContrast string
	InvertedColors  string
	ColorScheme     string
}

// mediaFeature is one parenthesized "name op value" condition.
type mediaFeature struct {
	name  string
	op    string
	value string
}

// MediaSelector is the polymorphic selector variant used by @media rules:
// it ignores element attributes and matches viewport features instead.
// Features within one query combine with AND; the comma-separated queries
// of a list combine with OR.
type MediaSelector struct {
	Raw    string
	groups [][]mediaFeature
}

// ParseMediaQuery parses a comma-separated media query list. Bare words
// (media types like "screen") carry no condition and are ignored; every
// parenthesized group must be a feature expression.
func ParseMediaQuery(s string) (MediaSelector, error) {
	m := MediaSelector{Raw: strings.TrimSpace(s)}
	for _, query := range strings.Split(m.Raw, ",") {
		features, err := parseMediaGroup(query)
		if err != nil {
			return MediaSelector{}, err
		}
		m.groups = append(m.groups, features)
	}
	return m, nil
}

func parseMediaGroup(s string) ([]mediaFeature, error) {
	var features []mediaFeature
	rest := s
	for {
		open := strings.IndexByte(rest, '(')
		if open < 0 {
			return features, nil
		}
		closing := strings.IndexByte(rest[open:], ')')
		if closing < 0 {
			return nil, fmt.Errorf("unbalanced parenthesis in media query %q", s)
		}
		f, err := parseMediaFeature(rest[open+1 : open+closing])
		if err != nil {
			return nil, err
		}
		features = append(features, f)
		rest = rest[open+closing+1:]
	}
}

// feature operators, longest first so "<=" wins over "<"
var mediaOps = []string{"<=", ">=", "<", ">", "=", ":"}

func parseMediaFeature(s string) (mediaFeature, error) {
	s = strings.TrimSpace(s)
	for _, op := range mediaOps {
		idx := strings.Index(s, op)
		if idx < 0 {
			continue
		}
		f := mediaFeature{
			name:  strings.ToLower(strings.TrimSpace(s[:idx])),
			op:    op,
			value: strings.TrimSpace(s[idx+len(op):]),
		}
		if f.op == ":" {
			f.op = "="
		}
		// min-/max- prefixes rewrite to strict comparisons against the
		// bare feature name
		if name, ok := strings.CutPrefix(f.name, "min-"); ok {
			f.name, f.op = name, ">"
		} else if name, ok := strings.CutPrefix(f.name, "max-"); ok {
			f.name, f.op = name, "<"
		}
		if f.name == "" || f.value == "" {
			return mediaFeature{}, fmt.Errorf("malformed media feature %q", s)
		}
		return f, nil
	}
	return mediaFeature{}, fmt.Errorf("malformed media feature %q", s)
}

// Matches evaluates the query list against the context. A nil context
// never matches; an unknown feature name makes its query evaluate false.
func (m MediaSelector) Matches(ctx *MediaContext) bool {
	if ctx == nil {
		return false
	}
	for _, features := range m.groups {
		match := true
		for _, f := range features {
			if !f.eval(ctx) {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func (f mediaFeature) eval(ctx *MediaContext) bool {
	switch f.name {
	case "width":
		want, err := featurePixels(f.value)
		return err == nil && compare(ctx.Width, want, f.op)
	case "height":
		want, err := featurePixels(f.value)
		return err == nil && compare(ctx.Height, want, f.op)
	case "aspect-ratio":
		want, err := parseRatio(f.value)
		if err != nil || ctx.Height == 0 {
			return false
		}
		return compare(ctx.Width/ctx.Height, want, f.op)
	case "resolution":
		want, err := parseResolution(f.value)
		return err == nil && compare(ctx.Resolution, want, f.op)
	case "orientation":
		return f.op == "=" && strings.EqualFold(ctx.Orientation, f.value)
	case "prefers-contrast":
		return f.op == "=" && strings.EqualFold(ctx.PrefersContrast, f.value)
	case "inverted-colors":
		return f.op == "=" && strings.EqualFold(ctx.InvertedColors, f.value)
	case "prefers-color-scheme":
		return f.op == "=" && strings.EqualFold(ctx.ColorScheme, f.value)
	default:
		return false
	}
}

func compare(have, want float64, op string) bool {
	switch op {
	case "<":
		return have < want
	case ">":
		return have > want
	case "<=":
		return have <= want
	case ">=":
		return have >= want
	default:
		return have == want
	}
}

func featurePixels(s string) (float64, error) {
	l, err := values.ParseLength(s)
	if err != nil {
		return 0, err
	}
	return l.Pixels(values.DefaultBaseline()), nil
}

// parseRatio accepts a W/H literal like "16/9" or a plain length.
func parseRatio(s string) (float64, error) {
	if w, h, ok := strings.Cut(s, "/"); ok {
		wv, werr := strconv.ParseFloat(strings.TrimSpace(w), 64)
		hv, herr := strconv.ParseFloat(strings.TrimSpace(h), 64)
		if werr != nil || herr != nil || hv == 0 {
			return 0, fmt.Errorf("malformed aspect ratio %q", s)
		}
		return wv / hv, nil
	}
	return featurePixels(s)
}

// parseResolution compares in dots per inch; dppx counts 96 dpi per unit.
func parseResolution(s string) (float64, error) {
	l, err := values.ParseLength(s)
	if err != nil {
		return 0, err
	}
	if l.Unit == values.UnitDppx {
		return l.Value * 96, nil
	}
	return l.Value, nil
}
