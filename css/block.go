package css

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"styl/css/values"
)

// decl is a stored raw value with the stylesheet line it came from.
type decl struct {
	value string
	line  int
}

// PropertyBlock is an immutable mapping from property or variable name to
// a raw string value. A block optionally references a parent block (the
// inheritance chain) and an initial-values block (registry defaults); both
// are non-owning, read-only and acyclic, scoped to one resolution.
type PropertyBlock struct {
	decls   map[string]decl
	parent  *PropertyBlock
	initial *PropertyBlock
}

// blockBuilder accumulates declarations before the block is frozen.
// Overlay order is last-writer-wins per key.
type blockBuilder struct {
	decls map[string]decl
}

func newBlockBuilder() *blockBuilder {
	return &blockBuilder{decls: make(map[string]decl)}
}

func (bb *blockBuilder) set(name, value string, line int) {
	bb.decls[strings.ToLower(strings.TrimSpace(name))] = decl{value: strings.TrimSpace(value), line: line}
}

func (bb *blockBuilder) overlay(b *PropertyBlock) {
	for name, d := range b.decls {
		bb.decls[name] = d
	}
}

// freeze seals the builder into an immutable block. The builder must not
// be reused afterwards.
func (bb *blockBuilder) freeze(parent, initial *PropertyBlock) *PropertyBlock {
	b := &PropertyBlock{decls: bb.decls, parent: parent, initial: initial}
	bb.decls = nil
	return b
}

// DefaultBlock builds a block holding every registry property at its
// initial value, suitable as the initial-values chain of a resolution.
func DefaultBlock() *PropertyBlock {
	bb := newBlockBuilder()
	for _, p := range Properties() {
		bb.set(p.String(), p.Initial(), 0)
	}
	return bb.freeze(nil, nil)
}

// Len reports the number of declarations stored directly in the block.
func (b *PropertyBlock) Len() int {
	if b == nil {
		return 0
	}
	return len(b.decls)
}

// Names lists the directly stored declaration names, sorted.
func (b *PropertyBlock) Names() []string {
	if b == nil {
		return nil
	}
	out := make([]string, 0, len(b.decls))
	for name := range b.decls {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Get resolves a raw value by name, walking the parent chain for
// inherited names and the initial-values chain as the last fallback, and
// interpreting the sentinel keywords and var() substitution. The second
// return is false when the value is absent.
func (b *PropertyBlock) Get(name string) (string, bool, error) {
	return b.get(strings.ToLower(strings.TrimSpace(name)), make(map[string]bool))
}

func (b *PropertyBlock) get(name string, visited map[string]bool) (string, bool, error) {
	if b == nil {
		return "", false, nil
	}
	d, ok := b.decls[name]
	if !ok {
		if inheritedName(name) && b.parent != nil {
			if v, ok, err := b.parent.get(name, visited); err != nil || ok {
				return v, ok, err
			}
		}
		return b.initial.get(name, visited)
	}

	switch d.value {
	case "none":
		return "", false, nil
	case "unset":
		if inheritedName(name) && b.parent != nil {
			if v, ok, err := b.parent.get(name, visited); err != nil || ok {
				return v, ok, err
			}
		}
		return b.initial.get(name, visited)
	case "initial":
		return b.initial.get(name, visited)
	case "inherit":
		if !inheritedName(name) {
			return "", false, fmt.Errorf("line %d: inherit on non-inheritable property %q", d.line, name)
		}
		return b.parent.get(name, visited)
	}

	if strings.Contains(d.value, "var(") {
		v, err := b.substitute(d.value, d.line, visited)
		if err != nil {
			return "", false, err
		}
		return v, true, nil
	}
	return d.value, true, nil
}

// substitute replaces every var(--x) occurrence, resolving the referenced
// variable through the same lookup machinery. The visited set breaks
// reference cycles.
func (b *PropertyBlock) substitute(value string, line int, visited map[string]bool) (string, error) {
	var out strings.Builder
	for {
		idx := strings.Index(value, "var(")
		if idx < 0 {
			out.WriteString(value)
			return out.String(), nil
		}
		closing := strings.IndexByte(value[idx:], ')')
		if closing < 0 {
			return "", fmt.Errorf("line %d: unterminated var() in %q", line, value)
		}
		ref := strings.ToLower(strings.TrimSpace(value[idx+4 : idx+closing]))
		if visited[ref] {
			return "", fmt.Errorf("line %d: circular variable reference %q", line, ref)
		}
		visited[ref] = true
		v, ok, err := b.get(ref, visited)
		delete(visited, ref)
		if err != nil {
			return "", err
		}
		if !ok {
			return "", fmt.Errorf("line %d: undefined variable %q", line, ref)
		}
		out.WriteString(value[:idx])
		out.WriteString(v)
		value = value[idx+closing+1:]
	}
}

// baseline derives the font metric context for length conversion: em from
// the parent's resolved font size, rem from the defaults chain.
func (b *PropertyBlock) baseline() values.Baseline {
	bl := values.DefaultBaseline()
	if b != nil && b.initial != nil {
		if l, ok, err := b.initial.Length(PFontSize); err == nil && ok {
			bl.Rem = l.Pixels(values.DefaultBaseline())
		}
	}
	if b != nil && b.parent != nil {
		if l, ok, err := b.parent.Length(PFontSize); err == nil && ok {
			bl.Em = l.Pixels(values.DefaultBaseline())
		}
	}
	return bl
}

// Keyword returns the resolved value lowercased, for properties whose
// grammar is a plain keyword.
func (b *PropertyBlock) Keyword(p Property) (string, bool, error) {
	v, ok, err := b.Get(p.String())
	if err != nil || !ok {
		return "", ok, err
	}
	return strings.ToLower(v), true, nil
}

// FontFamily returns the family list verbatim, case preserved.
func (b *PropertyBlock) FontFamily() (string, bool, error) {
	return b.Get(PFontFamily.String())
}

// Float parses the resolved value as a plain number.
func (b *PropertyBlock) Float(p Property) (float64, bool, error) {
	v, ok, err := b.Get(p.String())
	if err != nil || !ok {
		return 0, ok, err
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false, fmt.Errorf("property %s: malformed number %q", p, v)
	}
	return f, true, nil
}

// Length parses the resolved value as a length against the block's
// baseline context.
func (b *PropertyBlock) Length(p Property) (values.Length, bool, error) {
	v, ok, err := b.Get(p.String())
	if err != nil || !ok {
		return values.Length{}, ok, err
	}
	l, err := values.ParseLength(v)
	if err != nil {
		return values.Length{}, false, fmt.Errorf("property %s: %w", p, err)
	}
	return l, true, nil
}

// Pixels resolves a length property straight to device pixels.
func (b *PropertyBlock) Pixels(p Property) (float64, bool, error) {
	l, ok, err := b.Length(p)
	if err != nil || !ok {
		return 0, ok, err
	}
	return l.Pixels(b.baseline()), true, nil
}

// Color parses the resolved value as a color. The currentcolor keyword
// resolves through the block's color property.
func (b *PropertyBlock) Color(p Property) (values.Color, bool, error) {
	v, ok, err := b.Get(p.String())
	if err != nil || !ok {
		return values.Color{}, ok, err
	}
	if strings.EqualFold(v, "currentcolor") {
		if p == PColor {
			return values.Color{}, false, fmt.Errorf("property %s: currentcolor refers to itself", p)
		}
		return b.Color(PColor)
	}
	c, err := values.ParseColor(v)
	if err != nil {
		return values.Color{}, false, fmt.Errorf("property %s: %w", p, err)
	}
	return c, true, nil
}

// Gradient parses the resolved value as a gradient, for image-valued
// properties like background-image.
func (b *PropertyBlock) Gradient(p Property) (*values.Gradient, bool, error) {
	v, ok, err := b.Get(p.String())
	if err != nil || !ok {
		return nil, ok, err
	}
	g, err := values.ParseGradient(v)
	if err != nil {
		return nil, false, fmt.Errorf("property %s: %w", p, err)
	}
	return g, true, nil
}

// Shadows parses the resolved value as a comma-separated shadow list.
func (b *PropertyBlock) Shadows(p Property) ([]values.Shadow, error) {
	v, ok, err := b.Get(p.String())
	if err != nil || !ok {
		return nil, err
	}
	bl := b.baseline()
	var out []values.Shadow
	for _, part := range values.SplitCommaList(v) {
		s, err := values.ParseShadow(part, bl)
		if err != nil {
			return nil, fmt.Errorf("property %s: %w", p, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Marker renders the list symbol for an item at ordinal position in a
// list of total items, per the block's list-style-type.
func (b *PropertyBlock) Marker(ordinal, total int) (string, bool, error) {
	style, ok, err := b.Keyword(PListStyleType)
	if err != nil || !ok {
		return "", ok, err
	}
	text, symbolic := values.ListMarker(style, ordinal, total)
	return text, symbolic, nil
}

// Border is the four-sided border composite built from the twelve border
// longhands, indexed by values.Edge.
type Border struct {
	Sides [4]values.BorderSide
}

// Uniform reports whether every side can be stroked as one plain border:
// no dashed or dotted side, and width, style and color equal on all sides.
func (b Border) Uniform() bool {
	for _, s := range b.Sides {
		if !s.Style.Uniform() {
			return false
		}
	}
	first := b.Sides[0]
	for _, s := range b.Sides[1:] {
		if s != first {
			return false
		}
	}
	return true
}

// Patterns returns the per-side dash patterns for stroking a non-uniform
// border. The dash argument configures the dashed style interval.
func (b Border) Patterns(dash []float64) [4][]float64 {
	var out [4][]float64
	for i, s := range b.Sides {
		out[i] = s.DashPattern(dash)
	}
	return out
}

var borderLonghands = [4][3]Property{
	values.EdgeTop:    {PBorderTopWidth, PBorderTopStyle, PBorderTopColor},
	values.EdgeRight:  {PBorderRightWidth, PBorderRightStyle, PBorderRightColor},
	values.EdgeBottom: {PBorderBottomWidth, PBorderBottomStyle, PBorderBottomColor},
	values.EdgeLeft:   {PBorderLeftWidth, PBorderLeftStyle, PBorderLeftColor},
}

// Border assembles the border composite from the longhand properties. An
// absent style leaves the side at BorderNone with zero width.
func (b *PropertyBlock) Border() (Border, error) {
	var out Border
	bl := b.baseline()
	for edge, ps := range borderLonghands {
		side := &out.Sides[edge]

		style, ok, err := b.Keyword(ps[1])
		if err != nil {
			return Border{}, err
		}
		if ok {
			side.Style, err = values.ParseBorderStyle(style)
			if err != nil {
				return Border{}, fmt.Errorf("property %s: %w", ps[1], err)
			}
		}
		if side.Style == values.BorderNone || side.Style == values.BorderHidden {
			continue
		}

		width, ok, err := b.Get(ps[0].String())
		if err != nil {
			return Border{}, err
		}
		if ok {
			side.Width, err = values.ParseBorderWidth(width, bl)
			if err != nil {
				return Border{}, fmt.Errorf("property %s: %w", ps[0], err)
			}
		}

		raw, ok, err := b.Get(ps[2].String())
		if err != nil {
			return Border{}, err
		}
		if ok && strings.EqualFold(raw, "currentcolor") {
			side.CurrentColor = true
			side.Color, _, err = b.Color(PColor)
			if err != nil {
				return Border{}, err
			}
		} else if ok {
			side.Color, err = values.ParseColor(raw)
			if err != nil {
				return Border{}, fmt.Errorf("property %s: %w", ps[2], err)
			}
		}
	}
	return out, nil
}
