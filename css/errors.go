// Package css implements the stylesheet engine: a line-oriented parser, the
// selector and specificity model, the property registry and the cascade
// resolver producing typed property blocks.
package css

import "fmt"

// ParseError is a fatal stylesheet error tied to a source line. Parsing
// stops at the first one, no partial stylesheet is returned.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

func parseErrorf(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Msg: fmt.Sprintf(format, args...)}
}
