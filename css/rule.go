package css

// Rule binds a selector to a block of declarations. Exactly one of
// Selector or Media is active: element rules carry a Selector and a
// Block, media rules carry a Media query and the nested Rules it gates.
type Rule struct {
	Selector *Selector
	Block    *PropertyBlock

	Media *MediaSelector
	Rules []Rule
}

// Stylesheet is an ordered collection of parsed rules plus the top-level
// variable declarations that apply to every resolution.
type Stylesheet struct {
	Rules     []Rule
	Variables map[string]string
}

// Len reports the number of top-level rules.
func (s *Stylesheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.Rules)
}
