package css

// Theme is what a host platform contributes to resolution: default
// variables (palette colors, fonts) available to every var() lookup, and
// extra rules considered before any stylesheet rule, so stylesheets
// override the theme at equal specificity.
type Theme struct {
	Variables map[string]string
	Rules     []Rule
}
