package css

import (
	"strings"

	"go.uber.org/zap"
)

// Parser turns stylesheet text into an ordered rule sequence. The grammar
// is strictly line-oriented: one selector header, declaration or brace per
// line. Parsing stops at the first error, there is no partial result.
type Parser struct {
	log *zap.Logger
}

func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

// Parse is a convenience wrapper for one-off parsing without a logger.
func Parse(text string) (*Stylesheet, error) {
	return NewParser(nil).Parse(text)
}

type parseState int

const (
	stateTop parseState = iota
	stateRule
	stateMedia
	stateMediaRule
)

type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingRule
	pendingMedia
)

func (p *Parser) Parse(text string) (*Stylesheet, error) {
	sheet := &Stylesheet{Variables: make(map[string]string)}

	var (
		inComment  bool
		state      = stateTop
		pending    = pendingNone
		selectors  []Selector
		bb         *blockBuilder
		media      MediaSelector
		mediaRules []Rule
	)

	openRule := func() {
		bb = newBlockBuilder()
		if state == stateMedia {
			state = stateMediaRule
		} else {
			state = stateRule
		}
	}
	closeRule := func() {
		block := bb.freeze(nil, nil)
		for i := range selectors {
			r := Rule{Selector: &selectors[i], Block: block}
			if state == stateMediaRule {
				mediaRules = append(mediaRules, r)
			} else {
				sheet.Rules = append(sheet.Rules, r)
			}
		}
		if state == stateMediaRule {
			state = stateMedia
		} else {
			state = stateTop
		}
		selectors, bb = nil, nil
	}

	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, raw := range lines {
		lineNo := i + 1
		line := strings.TrimSpace(stripComments(raw, &inComment))
		if line == "" {
			continue
		}

		if pending != pendingNone {
			if line != "{" {
				return nil, parseErrorf(lineNo, "expected '{', got %q", line)
			}
			if pending == pendingMedia {
				state = stateMedia
			} else {
				openRule()
			}
			pending = pendingNone
			continue
		}

		switch state {
		case stateTop, stateMedia:
			switch {
			case line == "}":
				if state == stateMedia {
					m := media
					sheet.Rules = append(sheet.Rules, Rule{Media: &m, Rules: mediaRules})
					media, mediaRules = MediaSelector{}, nil
					state = stateTop
					continue
				}
				return nil, parseErrorf(lineNo, "unmatched '}'")

			case strings.HasPrefix(line, "@media"):
				if state == stateMedia {
					return nil, parseErrorf(lineNo, "media blocks cannot nest")
				}
				header := strings.TrimSpace(strings.TrimPrefix(line, "@media"))
				opened := strings.HasSuffix(header, "{")
				header = strings.TrimSpace(strings.TrimSuffix(header, "{"))
				m, err := ParseMediaQuery(header)
				if err != nil {
					return nil, parseErrorf(lineNo, "%s", err)
				}
				media = m
				if opened {
					state = stateMedia
				} else {
					pending = pendingMedia
				}

			case state == stateTop && strings.HasPrefix(line, VariablePrefix):
				name, value, err := splitDeclaration(line, lineNo)
				if err != nil {
					return nil, err
				}
				sheet.Variables[strings.ToLower(name)] = value

			default:
				opened := strings.HasSuffix(line, "{")
				header := strings.TrimSpace(strings.TrimSuffix(line, "{"))
				if header == "" {
					return nil, parseErrorf(lineNo, "selector list expected before '{'")
				}
				selectors = nil
				for _, s := range strings.Split(header, ",") {
					sel, err := ParseSelector(s)
					if err != nil {
						return nil, parseErrorf(lineNo, "%s", err)
					}
					selectors = append(selectors, sel)
				}
				if opened {
					openRule()
				} else {
					pending = pendingRule
				}
			}

		case stateRule, stateMediaRule:
			if line == "}" {
				closeRule()
				continue
			}
			if err := p.parseDeclaration(bb, line, lineNo); err != nil {
				return nil, err
			}
		}
	}

	if inComment {
		return nil, parseErrorf(len(lines), "unterminated block comment")
	}
	if state != stateTop || pending != pendingNone {
		return nil, parseErrorf(len(lines), "unexpected end of stylesheet")
	}

	p.log.Debug("parsed stylesheet",
		zap.Int("rules", len(sheet.Rules)),
		zap.Int("variables", len(sheet.Variables)))
	return sheet, nil
}

// splitDeclaration splits "name: value;" and enforces one declaration per
// line. Value case is preserved for font-family and path-like values.
func splitDeclaration(line string, lineNo int) (string, string, error) {
	name, value, ok := strings.Cut(line, ":")
	if !ok {
		return "", "", parseErrorf(lineNo, "missing ':' in declaration %q", line)
	}
	name = strings.TrimSpace(name)
	value = strings.TrimSpace(value)
	if name == "" {
		return "", "", parseErrorf(lineNo, "missing property name in %q", line)
	}
	if !strings.HasSuffix(value, ";") {
		return "", "", parseErrorf(lineNo, "missing ';' in declaration %q", line)
	}
	value = strings.TrimSpace(strings.TrimSuffix(value, ";"))
	if value == "" {
		return "", "", parseErrorf(lineNo, "missing value in %q", line)
	}
	if strings.Contains(value, ";") {
		return "", "", parseErrorf(lineNo, "one declaration per line in %q", line)
	}
	return name, value, nil
}

func (p *Parser) parseDeclaration(bb *blockBuilder, line string, lineNo int) error {
	name, value, err := splitDeclaration(line, lineNo)
	if err != nil {
		return err
	}
	if IsVariable(name) {
		bb.set(name, value, lineNo)
		return nil
	}

	name = strings.ToLower(name)
	if IsShorthand(name) {
		for _, d := range expandShorthand(name, value) {
			if _, ok := PropertyByName(d.name); !ok {
				return parseErrorf(lineNo, "unsupported property %q", d.name)
			}
			bb.set(d.name, d.value, lineNo)
		}
		return nil
	}
	if _, ok := PropertyByName(name); !ok && !isInternal(name) {
		return parseErrorf(lineNo, "unsupported property %q", name)
	}
	bb.set(name, value, lineNo)
	return nil
}

// stripComments removes a // tail and any /* */ spans, carrying the
// in-block flag across lines.
func stripComments(s string, inBlock *bool) string {
	var b strings.Builder
	i := 0
	for i < len(s) {
		if *inBlock {
			j := strings.Index(s[i:], "*/")
			if j < 0 {
				return b.String()
			}
			*inBlock = false
			i += j + 2
			continue
		}
		if strings.HasPrefix(s[i:], "/*") {
			*inBlock = true
			i += 2
			continue
		}
		if strings.HasPrefix(s[i:], "//") {
			return b.String()
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
