package css_test

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"styl/css"
	"styl/css/values"
)

func resolve(t *testing.T, text string, q css.Query) *css.PropertyBlock {
	t.Helper()
	sheet := mustParse(t, text)
	return css.NewResolver(zap.NewNop()).Resolve(sheet, q)
}

const cascadeSheet = `
div {
	color: green;
}
.cls {
	color: blue;
}
#id {
	color: red;
}
`

func TestResolveSpecificityOrder(t *testing.T) {
	tests := []struct {
		name string
		q    css.Query
		want string
	}{
		{"id beats class beats type", css.Query{Type: "div", ID: "id", Classes: []string{"cls"}}, "red"},
		{"class beats type", css.Query{Type: "div", Classes: []string{"cls"}}, "blue"},
		{"type only", css.Query{Type: "div"}, "green"},
	}
	for _, tc := range tests {
		block := resolve(t, cascadeSheet, tc.q)
		v, ok, err := block.Get("color")
		if err != nil || !ok || v != tc.want {
			t.Errorf("%s: color = %q, %v, %v; want %q", tc.name, v, ok, err, tc.want)
		}
	}
}

func TestResolveLaterRuleWinsOnTie(t *testing.T) {
	block := resolve(t, `
div {
	color: green;
}
div {
	color: purple;
}
`, css.Query{Type: "div"})
	v, _, err := block.Get("color")
	if err != nil || v != "purple" {
		t.Errorf("color = %q, %v; want purple (later rule of equal specificity)", v, err)
	}
}

func TestResolveInheritance(t *testing.T) {
	r := css.NewResolver(zap.NewNop())
	parentSheet := mustParse(t, `
div {
	color: red;
	background-color: yellow;
}
`)
	parent := r.Resolve(parentSheet, css.Query{Type: "div"})

	child := r.Resolve(nil, css.Query{Type: "span", Parent: parent})

	c, ok, err := child.Color(css.PColor)
	if err != nil || !ok {
		t.Fatalf("child color: %v, %v", ok, err)
	}
	if c != values.RGB(255, 0, 0) {
		t.Errorf("child color = %v, want inherited red", c)
	}

	// background-color does not inherit, it falls to its default
	bg, ok, err := child.Get("background-color")
	if err != nil {
		t.Fatalf("background-color: %v", err)
	}
	if ok && bg == "yellow" {
		t.Errorf("background-color = %q, must not inherit", bg)
	}
}

func TestResolveVariableSubstitution(t *testing.T) {
	block := resolve(t, `
--mycolor: blue;
div {
	border: 3px solid var(--mycolor);
}
`, css.Query{Type: "div"})

	border, err := block.Border()
	if err != nil {
		t.Fatalf("Border: %v", err)
	}
	if !border.Uniform() {
		t.Error("expected a uniform border")
	}
	side := border.Sides[values.EdgeTop]
	if side.Width != 3 {
		t.Errorf("width = %v, want 3", side.Width)
	}
	if side.Style != values.BorderSolid {
		t.Errorf("style = %v, want solid", side.Style)
	}
	if side.Color != values.RGB(0, 0, 255) {
		t.Errorf("color = %v, want blue", side.Color)
	}
}

func TestResolveBlockVariableOverridesGlobal(t *testing.T) {
	block := resolve(t, `
--accent: blue;
div {
	--accent: green;
	color: var(--accent);
}
`, css.Query{Type: "div"})
	v, _, err := block.Get("color")
	if err != nil || v != "green" {
		t.Errorf("color = %q, %v; want green", v, err)
	}
}

func TestResolveCircularVariable(t *testing.T) {
	block := resolve(t, `
div {
	--a: var(--b);
	--b: var(--a);
	color: var(--a);
}
`, css.Query{Type: "div"})
	_, _, err := block.Get("color")
	if err == nil || !strings.Contains(err.Error(), "circular variable reference") {
		t.Errorf("err = %v, want circular variable reference", err)
	}
}

func TestResolveSelfReferentialVariable(t *testing.T) {
	block := resolve(t, `
div {
	--a: var(--a);
	color: var(--a);
}
`, css.Query{Type: "div"})
	if _, _, err := block.Get("color"); err == nil {
		t.Error("expected circular variable error")
	}
}

func TestResolveSentinels(t *testing.T) {
	r := css.NewResolver(zap.NewNop())
	parentSheet := mustParse(t, `
div {
	color: red;
}
`)
	parent := r.Resolve(parentSheet, css.Query{Type: "div"})

	childSheet := mustParse(t, `
span {
	color: olive;
	text-shadow: none;
}
span.reset {
	color: unset;
}
span.explicit {
	color: inherit;
}
`)

	// none resolves to absent
	block := r.Resolve(childSheet, css.Query{Type: "span", Parent: parent})
	if _, ok, err := block.Get("text-shadow"); err != nil || ok {
		t.Errorf("text-shadow = present(%v), err %v; want absent", ok, err)
	}

	// unset on an inherited property falls back to the parent
	block = r.Resolve(childSheet, css.Query{Type: "span", Classes: []string{"reset"}, Parent: parent})
	if v, _, err := block.Get("color"); err != nil || v != "red" {
		t.Errorf("unset color = %q, %v; want parent red", v, err)
	}

	// explicit inherit does the same
	block = r.Resolve(childSheet, css.Query{Type: "span", Classes: []string{"explicit"}, Parent: parent})
	if v, _, err := block.Get("color"); err != nil || v != "red" {
		t.Errorf("inherit color = %q, %v; want parent red", v, err)
	}
}

func TestResolveInitialSentinel(t *testing.T) {
	block := resolve(t, `
div {
	color: initial;
}
`, css.Query{Type: "div"})
	v, ok, err := block.Get("color")
	if err != nil || !ok || v != css.PColor.Initial() {
		t.Errorf("color = %q, %v, %v; want registry initial %q", v, ok, err, css.PColor.Initial())
	}
}

func TestResolveInheritOnNonInheritable(t *testing.T) {
	block := resolve(t, `
div {
	background-color: inherit;
}
`, css.Query{Type: "div"})
	_, _, err := block.Get("background-color")
	if err == nil {
		t.Error("inherit on a non-inheritable property must fail")
	}
}

func TestResolveMediaGating(t *testing.T) {
	const sheet = `
div {
	color: green;
}
@media (width <= 600px) {
	div {
		color: red;
	}
}
`
	tests := []struct {
		name  string
		media *css.MediaContext
		want  string
	}{
		{"narrow viewport", &css.MediaContext{Width: 400}, "red"},
		{"wide viewport", &css.MediaContext{Width: 800}, "green"},
		{"no media context", nil, "green"},
	}
	for _, tc := range tests {
		block := resolve(t, sheet, css.Query{Type: "div", Media: tc.media})
		v, _, err := block.Get("color")
		if err != nil || v != tc.want {
			t.Errorf("%s: color = %q, %v; want %q", tc.name, v, err, tc.want)
		}
	}
}

func TestResolveDeterminism(t *testing.T) {
	sheet := mustParse(t, cascadeSheet+`
.cls {
	margin: 1px 2px;
	font-size: 12px;
}
`)
	r := css.NewResolver(zap.NewNop())
	q := css.Query{Type: "div", ID: "id", Classes: []string{"cls"}}

	a := r.Resolve(sheet, q)
	b := r.Resolve(sheet, q)
	if len(a.Names()) == 0 {
		t.Fatal("expected declarations")
	}
	for _, name := range a.Names() {
		av, aok, aerr := a.Get(name)
		bv, bok, berr := b.Get(name)
		if av != bv || aok != bok || (aerr == nil) != (berr == nil) {
			t.Errorf("%s: %q/%v/%v != %q/%v/%v", name, av, aok, aerr, bv, bok, berr)
		}
	}
}

func TestResolverWithTheme(t *testing.T) {
	themeSheet := mustParse(t, `
button {
	color: var(--theme-fg);
}
`)
	theme := &css.Theme{
		Variables: map[string]string{"--theme-fg": "navy"},
		Rules:     themeSheet.Rules,
	}

	r := css.NewResolver(zap.NewNop()).WithTheme(theme)

	// theme rule applies on its own
	block := r.Resolve(nil, css.Query{Type: "button"})
	c, ok, err := block.Color(css.PColor)
	if err != nil || !ok || c != values.RGB(0, 0, 128) {
		t.Errorf("theme color = %v, %v, %v; want navy", c, ok, err)
	}

	// a stylesheet rule of equal specificity overrides the theme
	block = resolveWith(t, r, `
button {
	color: maroon;
}
`, css.Query{Type: "button"})
	c, _, err = block.Color(css.PColor)
	if err != nil || c != values.RGB(128, 0, 0) {
		t.Errorf("color = %v, %v; want maroon", c, err)
	}
}

func resolveWith(t *testing.T, r *css.Resolver, text string, q css.Query) *css.PropertyBlock {
	t.Helper()
	return r.Resolve(mustParse(t, text), q)
}
