package css

import "strings"

// Property is a key into the closed catalog of recognized longhand
// properties. Raw names are mapped to keys only at the parser boundary.
type Property uint8

const (
	propertyInvalid Property = iota

	// inherited
	PColor
	PCursor
	PDirection
	PFontFamily
	PFontSize
	PFontStyle
	PFontWeight
	PLetterSpacing
	PLineHeight
	PListStyleImage
	PListStylePosition
	PListStyleType
	PTextAlign
	PTextIndent
	PTextShadow
	PTextTransform
	PVisibility
	PWhiteSpace
	PWordSpacing

	// box model
	PDisplay
	PPosition
	PTop
	PRight
	PBottom
	PLeft
	PZIndex
	PWidth
	PHeight
	PMinWidth
	PMinHeight
	PMaxWidth
	PMaxHeight
	PAspectRatio
	PBoxSizing
	PMarginTop
	PMarginRight
	PMarginBottom
	PMarginLeft
	PPaddingTop
	PPaddingRight
	PPaddingBottom
	PPaddingLeft
	POverflow
	PVerticalAlign

	// borders
	PBorderTopWidth
	PBorderRightWidth
	PBorderBottomWidth
	PBorderLeftWidth
	PBorderTopStyle
	PBorderRightStyle
	PBorderBottomStyle
	PBorderLeftStyle
	PBorderTopColor
	PBorderRightColor
	PBorderBottomColor
	PBorderLeftColor
	PBorderTopLeftRadius
	PBorderTopRightRadius
	PBorderBottomRightRadius
	PBorderBottomLeftRadius
	POutlineWidth
	POutlineStyle
	POutlineColor

	// background and effects
	PBackgroundColor
	PBackgroundImage
	PBackgroundRepeat
	PBackgroundPosition
	PBackgroundSize
	PBoxShadow
	POpacity
	PObjectFit
	PTransform

	// text decoration
	PTextDecorationLine
	PTextDecorationStyle
	PTextDecorationColor
	PTextStrokeWidth
	PTextStrokeColor

	// flex container and items
	PFlexDirection
	PFlexWrap
	PFlexGrow
	PFlexShrink
	PFlexBasis
	PAlignItems
	PAlignSelf
	PAlignContent
	PJustifyContent
	PGap
	PRowGap
	PColumnGap

	propertyMax
)

// Descriptor is one registry entry: the raw name, the initial (default)
// value and whether the property inherits from the parent block.
type Descriptor struct {
	Name      string
	Initial   string
	Inherited bool
}

var descriptors = [propertyMax]Descriptor{
	PColor:             {"color", "black", true},
	PCursor:            {"cursor", "auto", true},
	PDirection:         {"direction", "ltr", true},
	PFontFamily:        {"font-family", "sans-serif", true},
	PFontSize:          {"font-size", "medium", true},
	PFontStyle:         {"font-style", "normal", true},
	PFontWeight:        {"font-weight", "normal", true},
	PLetterSpacing:     {"letter-spacing", "0", true},
	PLineHeight:        {"line-height", "normal", true},
	PListStyleImage:    {"list-style-image", "none", true},
	PListStylePosition: {"list-style-position", "outside", true},
	PListStyleType:     {"list-style-type", "disc", true},
	PTextAlign:         {"text-align", "left", true},
	PTextIndent:        {"text-indent", "0", true},
	PTextShadow:        {"text-shadow", "none", true},
	PTextTransform:     {"text-transform", "none", true},
	PVisibility:        {"visibility", "visible", true},
	PWhiteSpace:        {"white-space", "normal", true},
	PWordSpacing:       {"word-spacing", "0", true},

	PDisplay:       {"display", "block", false},
	PPosition:      {"position", "static", false},
	PTop:           {"top", "auto", false},
	PRight:         {"right", "auto", false},
	PBottom:        {"bottom", "auto", false},
	PLeft:          {"left", "auto", false},
	PZIndex:        {"z-index", "0", false},
	PWidth:         {"width", "auto", false},
	PHeight:        {"height", "auto", false},
	PMinWidth:      {"min-width", "0", false},
	PMinHeight:     {"min-height", "0", false},
	PMaxWidth:      {"max-width", "none", false},
	PMaxHeight:     {"max-height", "none", false},
	PAspectRatio:   {"aspect-ratio", "auto", false},
	PBoxSizing:     {"box-sizing", "content-box", false},
	PMarginTop:     {"margin-top", "0", false},
	PMarginRight:   {"margin-right", "0", false},
	PMarginBottom:  {"margin-bottom", "0", false},
	PMarginLeft:    {"margin-left", "0", false},
	PPaddingTop:    {"padding-top", "0", false},
	PPaddingRight:  {"padding-right", "0", false},
	PPaddingBottom: {"padding-bottom", "0", false},
	PPaddingLeft:   {"padding-left", "0", false},
	POverflow:      {"overflow", "visible", false},
	PVerticalAlign: {"vertical-align", "baseline", false},

	PBorderTopWidth:          {"border-top-width", "medium", false},
	PBorderRightWidth:        {"border-right-width", "medium", false},
	PBorderBottomWidth:       {"border-bottom-width", "medium", false},
	PBorderLeftWidth:         {"border-left-width", "medium", false},
	PBorderTopStyle:          {"border-top-style", "none", false},
	PBorderRightStyle:        {"border-right-style", "none", false},
	PBorderBottomStyle:       {"border-bottom-style", "none", false},
	PBorderLeftStyle:         {"border-left-style", "none", false},
	PBorderTopColor:          {"border-top-color", "currentcolor", false},
	PBorderRightColor:        {"border-right-color", "currentcolor", false},
	PBorderBottomColor:       {"border-bottom-color", "currentcolor", false},
	PBorderLeftColor:         {"border-left-color", "currentcolor", false},
	PBorderTopLeftRadius:     {"border-top-left-radius", "0", false},
	PBorderTopRightRadius:    {"border-top-right-radius", "0", false},
	PBorderBottomRightRadius: {"border-bottom-right-radius", "0", false},
	PBorderBottomLeftRadius:  {"border-bottom-left-radius", "0", false},
	POutlineWidth:            {"outline-width", "medium", false},
	POutlineStyle:            {"outline-style", "none", false},
	POutlineColor:            {"outline-color", "currentcolor", false},

	PBackgroundColor:    {"background-color", "transparent", false},
	PBackgroundImage:    {"background-image", "none", false},
	PBackgroundRepeat:   {"background-repeat", "repeat", false},
	PBackgroundPosition: {"background-position", "left top", false},
	PBackgroundSize:     {"background-size", "auto", false},
	PBoxShadow:          {"box-shadow", "none", false},
	POpacity:            {"opacity", "1", false},
	PObjectFit:          {"object-fit", "fill", false},
	PTransform:          {"transform", "none", false},

	PTextDecorationLine:  {"text-decoration-line", "none", false},
	PTextDecorationStyle: {"text-decoration-style", "solid", false},
	PTextDecorationColor: {"text-decoration-color", "currentcolor", false},
	PTextStrokeWidth:     {"text-stroke-width", "0", false},
	PTextStrokeColor:     {"text-stroke-color", "currentcolor", false},

	PFlexDirection:  {"flex-direction", "row", false},
	PFlexWrap:       {"flex-wrap", "nowrap", false},
	PFlexGrow:       {"flex-grow", "0", false},
	PFlexShrink:     {"flex-shrink", "1", false},
	PFlexBasis:      {"flex-basis", "auto", false},
	PAlignItems:     {"align-items", "stretch", false},
	PAlignSelf:      {"align-self", "auto", false},
	PAlignContent:   {"align-content", "stretch", false},
	PJustifyContent: {"justify-content", "flex-start", false},
	PGap:            {"gap", "0", false},
	PRowGap:         {"row-gap", "0", false},
	PColumnGap:      {"column-gap", "0", false},
}

var propertyByName = func() map[string]Property {
	m := make(map[string]Property, propertyMax)
	for p := propertyInvalid + 1; p < propertyMax; p++ {
		m[descriptors[p].Name] = p
	}
	return m
}()

// PropertyByName maps a raw (case-insensitive) property name to its key.
func PropertyByName(name string) (Property, bool) {
	p, ok := propertyByName[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// String returns the raw stylesheet name of the property.
func (p Property) String() string {
	if p <= propertyInvalid || p >= propertyMax {
		return ""
	}
	return descriptors[p].Name
}

// Initial returns the registry default value for the property.
func (p Property) Initial() string {
	if p <= propertyInvalid || p >= propertyMax {
		return ""
	}
	return descriptors[p].Initial
}

// Inherited reports whether the property inherits from the parent block.
func (p Property) Inherited() bool {
	if p <= propertyInvalid || p >= propertyMax {
		return false
	}
	return descriptors[p].Inherited
}

// Properties enumerates all registered longhand properties, so callers can
// seed defaults or dump the registry.
func Properties() []Property {
	out := make([]Property, 0, propertyMax-1)
	for p := propertyInvalid + 1; p < propertyMax; p++ {
		out = append(out, p)
	}
	return out
}

const (
	// VariablePrefix marks variable declarations, stored verbatim and
	// resolved through var().
	VariablePrefix = "--"
	// internalPrefix marks engine-internal properties that bypass the
	// registry check.
	internalPrefix = "-styl-"
)

// IsVariable reports whether the name declares a variable.
func IsVariable(name string) bool {
	return strings.HasPrefix(name, VariablePrefix)
}

func isInternal(name string) bool {
	return strings.HasPrefix(name, internalPrefix)
}

// inheritedName reports inheritance for a raw name: registry properties per
// their descriptor, variables always (so var() lookups follow the parent
// chain), anything else never.
func inheritedName(name string) bool {
	if IsVariable(name) {
		return true
	}
	if p, ok := PropertyByName(name); ok {
		return p.Inherited()
	}
	return false
}
