package css

import (
	"fmt"
	"strings"
)

// Selector targets elements by type name, identifier and class list. The
// wildcard type "*" matches any element type. Classes may include virtual
// state entries like ":hover", matched as ordinary class tokens.
type Selector struct {
	Type    string
	ID      string
	Classes []string
}

// ParseSelector parses a selector like "button.primary:hover#send". A
// selector without an explicit type gets the wildcard type.
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Selector{}, fmt.Errorf("empty selector")
	}
	if strings.ContainsAny(s, " \t>+~[") {
		return Selector{}, fmt.Errorf("unsupported selector %q: combinators and attributes are not supported", s)
	}

	sel := Selector{Type: "*"}
	// split into segments at '.', '#' and ':'; ':' stays part of the
	// class token (virtual state)
	start := 0
	flush := func(end int) error {
		seg := s[start:end]
		switch seg[0] {
		case '.':
			if len(seg) == 1 {
				return fmt.Errorf("empty class in selector %q", s)
			}
			sel.Classes = append(sel.Classes, seg[1:])
		case '#':
			if len(seg) == 1 {
				return fmt.Errorf("empty id in selector %q", s)
			}
			if sel.ID != "" {
				return fmt.Errorf("multiple ids in selector %q", s)
			}
			sel.ID = seg[1:]
		case ':':
			if len(seg) == 1 {
				return fmt.Errorf("empty state in selector %q", s)
			}
			sel.Classes = append(sel.Classes, seg)
		default:
			sel.Type = seg
		}
		return nil
	}
	for i := 1; i < len(s); i++ {
		if s[i] == '.' || s[i] == '#' || s[i] == ':' {
			if err := flush(i); err != nil {
				return Selector{}, err
			}
			start = i
		}
	}
	if err := flush(len(s)); err != nil {
		return Selector{}, err
	}
	return sel, nil
}

func (s Selector) String() string {
	var b strings.Builder
	b.WriteString(s.Type)
	if s.ID != "" {
		b.WriteByte('#')
		b.WriteString(s.ID)
	}
	for _, c := range s.Classes {
		if !strings.HasPrefix(c, ":") {
			b.WriteByte('.')
		}
		b.WriteString(c)
	}
	return b.String()
}

// Specificity scores the selector against a query; 0 means no match. Ids
// dominate classes dominate types, collapsed into one integer space.
func (s Selector) Specificity(q Query) int {
	score := 0
	switch {
	case s.Type == "*":
		score++
	case strings.EqualFold(s.Type, q.Type):
		score += 5
	default:
		return 0
	}

	if len(s.Classes) > 0 {
		if len(q.Classes) == 0 {
			return 0
		}
		for _, c := range s.Classes {
			if !containsFold(q.Classes, c) {
				return 0
			}
		}
		score += len(s.Classes) * 1000
	}

	if s.ID != "" {
		if !strings.EqualFold(s.ID, q.ID) {
			return 0
		}
		score += 1_000_000
	}
	return score
}

func containsFold(list []string, s string) bool {
	for _, v := range list {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}

// Query describes the element a caller wants styles for. Parent supplies
// the inheritance chain, Media the viewport for media rules; both are
// optional and only read for the duration of one Resolve call.
type Query struct {
	Type    string
	ID      string
	Classes []string
	Parent  *PropertyBlock
	Media   *MediaContext
}
