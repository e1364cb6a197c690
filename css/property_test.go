package css_test

import (
	"testing"

	"styl/css"
)

func TestPropertyRegistry(t *testing.T) {
	props := css.Properties()
	if len(props) < 80 {
		t.Fatalf("registry holds %d properties, expected the full catalog", len(props))
	}
	seen := make(map[string]bool, len(props))
	for _, p := range props {
		name := p.String()
		if name == "" {
			t.Errorf("property %d has no name", p)
			continue
		}
		if seen[name] {
			t.Errorf("duplicate property name %q", name)
		}
		seen[name] = true

		back, ok := css.PropertyByName(name)
		if !ok || back != p {
			t.Errorf("PropertyByName(%q) = %v, %v; want %v", name, back, ok, p)
		}
	}
}

func TestPropertyByNameNormalizes(t *testing.T) {
	p, ok := css.PropertyByName("  Font-Size ")
	if !ok || p != css.PFontSize {
		t.Errorf("PropertyByName = %v, %v; want PFontSize", p, ok)
	}
	if _, ok := css.PropertyByName("not-a-property"); ok {
		t.Error("unknown name must not resolve")
	}
}

func TestPropertyInheritance(t *testing.T) {
	inherited := []css.Property{
		css.PColor, css.PFontSize, css.PFontFamily, css.PTextAlign, css.PListStyleType,
	}
	for _, p := range inherited {
		if !p.Inherited() {
			t.Errorf("%s must inherit", p)
		}
	}
	notInherited := []css.Property{
		css.PBackgroundColor, css.PMarginTop, css.PBorderTopWidth, css.PDisplay, css.POpacity,
	}
	for _, p := range notInherited {
		if p.Inherited() {
			t.Errorf("%s must not inherit", p)
		}
	}
}

func TestPropertyInitials(t *testing.T) {
	tests := []struct {
		p    css.Property
		want string
	}{
		{css.PColor, "black"},
		{css.PFontSize, "medium"},
		{css.PBackgroundColor, "transparent"},
		{css.PBorderTopWidth, "medium"},
		{css.PBorderTopColor, "currentcolor"},
		{css.PFlexShrink, "1"},
	}
	for _, tc := range tests {
		if got := tc.p.Initial(); got != tc.want {
			t.Errorf("%s initial = %q, want %q", tc.p, got, tc.want)
		}
	}
}

func TestIsVariable(t *testing.T) {
	if !css.IsVariable("--accent") {
		t.Error("--accent is a variable")
	}
	if css.IsVariable("color") {
		t.Error("color is not a variable")
	}
}
