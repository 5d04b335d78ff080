// File: format.go
// Title: Token Reconstruction
// Description: Renders a token sequence back to source text that lexes to
//              the same kinds.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package lexer

import (
	"strings"

	"github.com/dipakw/inside/foundation/lang/token"
)

// Format joins tokens with single spaces, re-quoting string literals.
// EOF tokens are omitted. A string containing `"` is quoted with backticks.
func Format(toks []token.Token) string {
	var b strings.Builder
	for _, tok := range toks {
		if tok.Kind == token.EOF {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		if tok.Kind == token.Str {
			quote := `"`
			if strings.Contains(tok.Text, `"`) {
				quote = "`"
			}
			b.WriteString(quote + tok.Text + quote)
			continue
		}
		b.WriteString(tok.Text)
	}
	return b.String()
}

// Kinds returns the kind of every token, in order
func Kinds(toks []token.Token) []token.Kind {
	kinds := make([]token.Kind, len(toks))
	for i, tok := range toks {
		kinds[i] = tok.Kind
	}
	return kinds
}
