// Package values implements the typed value domain of the stylesheet
// language: lengths, angles, colors, gradients, border sides, shadows and
// list markers, together with their string-grammar parsers.
package values

import (
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
)

// SplitTokens splits a property value into space- or comma-separated tokens.
// Function calls like rgb(0, 0, 255) stay together as a single token.
func SplitTokens(s string) []string {
	return tokenize(s, true)
}

// SplitCommaList splits a value on top-level commas only, keeping
// space-separated groups like "red 20%" together.
func SplitCommaList(s string) []string {
	return tokenize(s, false)
}

func tokenize(s string, spaceSplits bool) []string {
	lexer := css.NewLexer(parse.NewInputString(s))

	var (
		out   []string
		cur   strings.Builder
		depth int
	)
	flush := func() {
		if t := strings.TrimSpace(cur.String()); t != "" {
			out = append(out, t)
		}
		cur.Reset()
	}
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			flush()
			return out
		case css.FunctionToken, css.LeftParenthesisToken:
			depth++
			cur.Write(data)
		case css.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
			cur.Write(data)
		case css.WhitespaceToken:
			if depth == 0 && spaceSplits {
				flush()
			} else if cur.Len() > 0 {
				// normalize runs of whitespace inside functions and
				// comma-separated groups to a single space
				cur.WriteByte(' ')
			}
		case css.CommaToken:
			if depth == 0 {
				flush()
			} else {
				cur.Write(data)
			}
		default:
			cur.Write(data)
		}
	}
}
