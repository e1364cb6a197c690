package css_test

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"styl/css"
)

func mustParse(t *testing.T, text string) *css.Stylesheet {
	t.Helper()
	sheet, err := css.NewParser(zap.NewNop()).Parse(text)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return sheet
}

func TestParseBasicRule(t *testing.T) {
	sheet := mustParse(t, `
// a comment
div {
	color: red;
	margin-top: 4px;
}
`)
	if sheet.Len() != 1 {
		t.Fatalf("rules = %d, want 1", sheet.Len())
	}
	r := sheet.Rules[0]
	if r.Selector == nil || r.Selector.Type != "div" {
		t.Fatalf("unexpected selector: %+v", r.Selector)
	}
	v, ok, err := r.Block.Get("color")
	if err != nil || !ok || v != "red" {
		t.Errorf("color = %q, %v, %v; want red", v, ok, err)
	}
}

func TestParseSelectorList(t *testing.T) {
	sheet := mustParse(t, `
h1, h2, .title {
	font-weight: bold;
}
`)
	if sheet.Len() != 3 {
		t.Fatalf("rules = %d, want 3 (one per selector)", sheet.Len())
	}
	// all three share the same block
	if sheet.Rules[0].Block != sheet.Rules[1].Block || sheet.Rules[1].Block != sheet.Rules[2].Block {
		t.Error("selector list rules should share one block")
	}
}

func TestParseBraceOnOwnLine(t *testing.T) {
	sheet := mustParse(t, `
div
{
	color: red;
}
`)
	if sheet.Len() != 1 {
		t.Fatalf("rules = %d, want 1", sheet.Len())
	}
}

func TestParseBlockComment(t *testing.T) {
	sheet := mustParse(t, `
/* spans
   several
   lines */
div { /* inline */
	color: red; /* trailing */
}
`)
	v, ok, err := sheet.Rules[0].Block.Get("color")
	if err != nil || !ok || v != "red" {
		t.Errorf("color = %q, %v, %v; want red", v, ok, err)
	}
}

func TestParseTopLevelVariables(t *testing.T) {
	sheet := mustParse(t, `
--main-color: blue;
--gap: 4px;
div {
	color: red;
}
`)
	if sheet.Variables["--main-color"] != "blue" {
		t.Errorf("--main-color = %q, want blue", sheet.Variables["--main-color"])
	}
	if sheet.Variables["--gap"] != "4px" {
		t.Errorf("--gap = %q, want 4px", sheet.Variables["--gap"])
	}
}

func TestParseBorderShorthand(t *testing.T) {
	sheet := mustParse(t, `
div {
	border: 3px solid black;
}
`)
	block := sheet.Rules[0].Block
	want := map[string]string{
		"border-top-width":    "3px",
		"border-right-width":  "3px",
		"border-bottom-width": "3px",
		"border-left-width":   "3px",
		"border-top-style":    "solid",
		"border-right-style":  "solid",
		"border-bottom-style": "solid",
		"border-left-style":   "solid",
		"border-top-color":    "black",
		"border-right-color":  "black",
		"border-bottom-color": "black",
		"border-left-color":   "black",
	}
	for name, wantv := range want {
		v, ok, err := block.Get(name)
		if err != nil || !ok || v != wantv {
			t.Errorf("%s = %q, %v, %v; want %q", name, v, ok, err, wantv)
		}
	}
}

func TestParseMarginShorthand(t *testing.T) {
	tests := []struct {
		value string
		want  [4]string // top right bottom left
	}{
		{"4px", [4]string{"4px", "4px", "4px", "4px"}},
		{"1px 2px", [4]string{"1px", "2px", "1px", "2px"}},
		{"1px 2px 3px", [4]string{"1px", "2px", "3px", "2px"}},
		{"1px 2px 3px 4px", [4]string{"1px", "2px", "3px", "4px"}},
	}
	edges := [4]string{"top", "right", "bottom", "left"}
	for _, tc := range tests {
		sheet := mustParse(t, "div {\n\tmargin: "+tc.value+";\n}\n")
		block := sheet.Rules[0].Block
		for i, edge := range edges {
			v, ok, err := block.Get("margin-" + edge)
			if err != nil || !ok || v != tc.want[i] {
				t.Errorf("margin: %q: margin-%s = %q, %v, %v; want %q",
					tc.value, edge, v, ok, err, tc.want[i])
			}
		}
	}
}

func TestParseFontShorthand(t *testing.T) {
	sheet := mustParse(t, `
div {
	font: italic bold 12px Liberation Serif;
}
`)
	block := sheet.Rules[0].Block
	for name, want := range map[string]string{
		"font-style":  "italic",
		"font-weight": "bold",
		"font-size":   "12px",
		"font-family": "Liberation Serif",
	} {
		v, ok, err := block.Get(name)
		if err != nil || !ok || v != want {
			t.Errorf("%s = %q, %v, %v; want %q", name, v, ok, err, want)
		}
	}
}

func TestParseMediaBlock(t *testing.T) {
	sheet := mustParse(t, `
@media (width <= 600px) {
	div {
		color: red;
	}
	p {
		color: blue;
	}
}
`)
	if sheet.Len() != 1 {
		t.Fatalf("rules = %d, want 1", sheet.Len())
	}
	m := sheet.Rules[0]
	if m.Media == nil {
		t.Fatal("expected a media rule")
	}
	if len(m.Rules) != 2 {
		t.Fatalf("media sub-rules = %d, want 2", len(m.Rules))
	}
	if m.Media.Raw != "(width <= 600px)" {
		t.Errorf("media raw = %q, want the parsed query text", m.Media.Raw)
	}
	if !m.Media.Matches(&css.MediaContext{Width: 400}) {
		t.Error("stored media selector must match a 400px viewport")
	}
}

func TestParseMediaSelectorsIndependent(t *testing.T) {
	sheet := mustParse(t, `
@media (width <= 600px) {
	div {
		color: red;
	}
}
@media (orientation = landscape) {
	div {
		color: blue;
	}
}
`)
	if sheet.Len() != 2 {
		t.Fatalf("rules = %d, want 2", sheet.Len())
	}
	narrow, wide := sheet.Rules[0].Media, sheet.Rules[1].Media
	if narrow == wide {
		t.Fatal("media rules must not share one selector")
	}
	if narrow.Raw != "(width <= 600px)" || wide.Raw != "(orientation = landscape)" {
		t.Fatalf("media raw = %q, %q; each block must keep its own selector", narrow.Raw, wide.Raw)
	}
	ctx := &css.MediaContext{Width: 400, Orientation: "landscape"}
	if !narrow.Matches(ctx) || !wide.Matches(ctx) {
		t.Error("both stored selectors must evaluate against the context")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		line int
	}{
		{"missing colon", "div {\n\tred;\n}\n", 2},
		{"missing semicolon", "div {\n\tcolor: red\n}\n", 2},
		{"two declarations packed", "div {\n\tcolor: red; margin-top: 1px;\n}\n", 2},
		{"unknown property", "div {\n\tcolour: red;\n}\n", 2},
		{"unmatched close", "}\n", 1},
		{"unclosed rule", "div {\n\tcolor: red;\n", 2},
		{"nested media", "@media (width < 10px) {\n@media (width < 5px) {\n}\n}\n", 2},
		{"junk after selector", "div\ncolor: red;\n", 2},
		{"unterminated comment", "/* never closed\ndiv {\n\tcolor: red;\n}\n", 4},
	}
	for _, tc := range tests {
		_, err := css.Parse(tc.text)
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		var perr *css.ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%s: error %T is not a ParseError", tc.name, err)
			continue
		}
		if perr.Line != tc.line {
			t.Errorf("%s: line = %d, want %d (%v)", tc.name, perr.Line, tc.line, err)
		}
	}
}

func TestParseUnknownPropertyMessage(t *testing.T) {
	_, err := css.Parse("div {\n\tfrobnicate: yes;\n}\n")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "frobnicate") || !strings.Contains(err.Error(), "line 2") {
		t.Errorf("error %q should name the property and the line", err)
	}
}
