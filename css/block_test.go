package css_test

import (
	"testing"

	"go.uber.org/zap"

	"styl/css"
	"styl/css/values"
)

func TestBlockPixelsUsesParentFontSize(t *testing.T) {
	r := css.NewResolver(zap.NewNop())
	parent := r.Resolve(mustParse(t, `
div {
	font-size: 20px;
}
`), css.Query{Type: "div"})

	block := r.Resolve(mustParse(t, `
span {
	margin-top: 2em;
	padding-top: 2rem;
}
`), css.Query{Type: "span", Parent: parent})

	px, ok, err := block.Pixels(css.PMarginTop)
	if err != nil || !ok {
		t.Fatalf("margin-top: %v, %v", ok, err)
	}
	if px != 40 {
		t.Errorf("2em with 20px parent = %v, want 40", px)
	}

	// rem resolves against the defaults chain font size (medium, 16)
	px, ok, err = block.Pixels(css.PPaddingTop)
	if err != nil || !ok {
		t.Fatalf("padding-top: %v, %v", ok, err)
	}
	if px != 32 {
		t.Errorf("2rem = %v, want 32", px)
	}
}

func TestBlockKeywordLowercases(t *testing.T) {
	block := resolve(t, `
div {
	text-align: CENTER;
}
`, css.Query{Type: "div"})
	v, ok, err := block.Keyword(css.PTextAlign)
	if err != nil || !ok || v != "center" {
		t.Errorf("text-align = %q, %v, %v; want center", v, ok, err)
	}
}

func TestBlockFontFamilyPreservesCase(t *testing.T) {
	block := resolve(t, `
div {
	font-family: Liberation Serif;
}
`, css.Query{Type: "div"})
	v, ok, err := block.FontFamily()
	if err != nil || !ok || v != "Liberation Serif" {
		t.Errorf("font-family = %q, %v, %v; want Liberation Serif", v, ok, err)
	}
}

func TestBlockFloat(t *testing.T) {
	block := resolve(t, `
div {
	opacity: 0.5;
}
`, css.Query{Type: "div"})
	f, ok, err := block.Float(css.POpacity)
	if err != nil || !ok || f != 0.5 {
		t.Errorf("opacity = %v, %v, %v; want 0.5", f, ok, err)
	}
}

func TestBlockLazyValueError(t *testing.T) {
	// bad values parse fine and only fail at typed access
	block := resolve(t, `
div {
	color: notacolor;
}
`, css.Query{Type: "div"})
	if _, _, err := block.Color(css.PColor); err == nil {
		t.Error("expected a lazy value error for notacolor")
	}
}

func TestBlockShadows(t *testing.T) {
	block := resolve(t, `
div {
	box-shadow: 1px 2px 3px black, 4px 5px;
}
`, css.Query{Type: "div"})
	shadows, err := block.Shadows(css.PBoxShadow)
	if err != nil {
		t.Fatalf("Shadows: %v", err)
	}
	if len(shadows) != 2 {
		t.Fatalf("shadows = %d, want 2", len(shadows))
	}
	if shadows[0].Dx != 1 || shadows[0].Dy != 2 || shadows[0].Blur != 3 {
		t.Errorf("first shadow = %+v", shadows[0])
	}
	if shadows[1].Dx != 4 || shadows[1].Dy != 5 || shadows[1].Color != values.RGB(0, 0, 0) {
		t.Errorf("second shadow = %+v", shadows[1])
	}
}

func TestBlockGradient(t *testing.T) {
	block := resolve(t, `
div {
	background-image: linear-gradient(to right, red, blue);
}
`, css.Query{Type: "div"})
	g, ok, err := block.Gradient(css.PBackgroundImage)
	if err != nil || !ok {
		t.Fatalf("Gradient: %v, %v", ok, err)
	}
	if g.Kind != values.GradientLinear {
		t.Errorf("kind = %v, want linear", g.Kind)
	}
	if len(g.Stops) != 2 {
		t.Errorf("stops = %d, want 2", len(g.Stops))
	}
}

func TestBlockMarker(t *testing.T) {
	block := resolve(t, `
ol {
	list-style-type: upper-roman;
}
`, css.Query{Type: "ol"})
	text, symbolic, err := block.Marker(4, 10)
	if err != nil {
		t.Fatalf("Marker: %v", err)
	}
	if symbolic {
		t.Error("upper-roman must not be symbolic")
	}
	if text != "IV" {
		t.Errorf("marker = %q, want IV", text)
	}
}

func TestBlockBorderCurrentColor(t *testing.T) {
	block := resolve(t, `
div {
	color: teal;
	border-top-style: solid;
	border-top-width: 2px;
}
`, css.Query{Type: "div"})
	border, err := block.Border()
	if err != nil {
		t.Fatalf("Border: %v", err)
	}
	top := border.Sides[values.EdgeTop]
	if !top.CurrentColor {
		t.Error("default border color must be currentcolor")
	}
	if top.Color != values.RGB(0, 128, 128) {
		t.Errorf("color = %v, want teal", top.Color)
	}
	if top.Width != 2 {
		t.Errorf("width = %v, want 2", top.Width)
	}
}

func TestBlockBorderDashPatterns(t *testing.T) {
	block := resolve(t, `
div {
	border: 2px dotted black;
	border-bottom-style: dashed;
}
`, css.Query{Type: "div"})
	border, err := block.Border()
	if err != nil {
		t.Fatalf("Border: %v", err)
	}
	if border.Uniform() {
		t.Error("dotted/dashed border must not be uniform")
	}
	patterns := border.Patterns(nil)
	top := patterns[values.EdgeTop]
	if len(top) != 2 || top[0] != 2 || top[1] != 2 {
		t.Errorf("dotted pattern = %v, want [2 2]", top)
	}
	bottom := patterns[values.EdgeBottom]
	if len(bottom) != 2 || bottom[0] != 6 || bottom[1] != 4 {
		t.Errorf("dashed pattern = %v, want [6 4]", bottom)
	}
}

func TestDefaultBlock(t *testing.T) {
	block := css.DefaultBlock()
	if block.Len() != len(css.Properties()) {
		t.Errorf("defaults = %d declarations, want %d", block.Len(), len(css.Properties()))
	}
	v, ok, err := block.Get("font-size")
	if err != nil || !ok || v != "medium" {
		t.Errorf("font-size default = %q, %v, %v; want medium", v, ok, err)
	}
	// none-valued defaults read back as absent
	if _, ok, err := block.Get("text-shadow"); err != nil || ok {
		t.Errorf("text-shadow default must be absent, got present=%v err=%v", ok, err)
	}
}
