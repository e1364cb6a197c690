package css_test

import (
	"testing"

	"styl/css"
)

func TestMediaSelectorMatches(t *testing.T) {
	narrow := &css.MediaContext{Width: 400, Height: 800}
	wide := &css.MediaContext{Width: 1200, Height: 600}

	tests := []struct {
		query string
		ctx   *css.MediaContext
		want  bool
	}{
		{"screen (width <= 600px)", narrow, true},
		{"screen (width <= 600px)", wide, false},
		{"(width >= 600px)", wide, true},
		{"(width: 400px)", narrow, true},
		{"(min-width: 600px)", wide, true},
		{"(min-width: 600px)", narrow, false},
		{"(max-width: 600px)", narrow, true},
		{"(max-height: 700px)", wide, true},
		{"(width < 600px) (height < 900px)", narrow, true},
		{"(width < 600px) (height < 100px)", narrow, false},
		// comma-separated queries combine with OR
		{"(width < 500px), (width > 1000px)", narrow, true},
		{"(width < 500px), (width > 1000px)", wide, true},
		{"(width < 500px), (width > 1000px)", &css.MediaContext{Width: 700}, false},
		// aspect ratio as W/H literal
		{"(aspect-ratio: 2/1)", wide, true},
		{"(aspect-ratio > 1/1)", wide, true},
		{"(aspect-ratio > 1/1)", narrow, false},
		// unknown feature fails the whole query
		{"(hover: hover)", wide, false},
		// bare media type with no features matches anything
		{"screen", wide, true},
	}
	for _, tc := range tests {
		m, err := css.ParseMediaQuery(tc.query)
		if err != nil {
			t.Fatalf("ParseMediaQuery(%q): %v", tc.query, err)
		}
		if got := m.Matches(tc.ctx); got != tc.want {
			t.Errorf("Matches(%q, %+v) = %v, want %v", tc.query, tc.ctx, got, tc.want)
		}
	}
}

func TestMediaSelectorNilContext(t *testing.T) {
	m, err := css.ParseMediaQuery("(width < 600px)")
	if err != nil {
		t.Fatal(err)
	}
	if m.Matches(nil) {
		t.Error("media query matched nil context")
	}
}

func TestMediaSelectorFeatures(t *testing.T) {
	ctx := &css.MediaContext{
		Width:           800,
		Height:          600,
		Resolution:      192,
		Orientation:     "landscape",
		PrefersContrast: "more",
		InvertedColors:  "none",
		ColorScheme:     "dark",
	}
	tests := []struct {
		query string
		want  bool
	}{
		{"(orientation: landscape)", true},
		{"(orientation: portrait)", false},
		{"(resolution >= 2dppx)", true},
		{"(resolution: 192dpi)", true},
		{"(min-resolution: 300dpi)", false},
		{"(prefers-contrast: more)", true},
		{"(inverted-colors: none)", true},
		{"(prefers-color-scheme: dark)", true},
		{"(prefers-color-scheme: light)", false},
	}
	for _, tc := range tests {
		m, err := css.ParseMediaQuery(tc.query)
		if err != nil {
			t.Fatalf("ParseMediaQuery(%q): %v", tc.query, err)
		}
		if got := m.Matches(ctx); got != tc.want {
			t.Errorf("Matches(%q) = %v, want %v", tc.query, got, tc.want)
		}
	}
}

func TestParseMediaQueryErrors(t *testing.T) {
	for _, in := range []string{
		"(width <= 600px",
		"(: 600px)",
		"(width)",
		"(width <=)",
	} {
		if _, err := css.ParseMediaQuery(in); err == nil {
			t.Errorf("ParseMediaQuery(%q): expected error", in)
		}
	}
}
