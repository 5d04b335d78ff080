// File: matcher.go
// Title: Token Matcher Primitives
// Description: Lookahead and consume operations over a token sequence,
//              parameterised by which whitespace kinds to skip after a
//              match.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package parser

import (
	"slices"

	mdwerror "github.com/dipakw/inside/foundation/core/error"
	"github.com/dipakw/inside/foundation/lang/diag"
	"github.com/dipakw/inside/foundation/lang/token"
)

// Spacing selects the whitespace skipped after a group matches
type Spacing int

const (
	// SpacingNone skips nothing
	SpacingNone Spacing = iota
	// SpacingInline skips spaces and tabs
	SpacingInline
	// SpacingMultiline skips spaces, tabs and end-of-line tokens
	SpacingMultiline
)

var (
	inlineSpace    = []token.Kind{token.Space, token.Tab}
	multilineSpace = []token.Kind{token.Space, token.Tab, token.EOL}
)

// Kinds returns the token kinds skipped under s
func (s Spacing) Kinds() []token.Kind {
	switch s {
	case SpacingInline:
		return inlineSpace
	case SpacingMultiline:
		return multilineSpace
	default:
		return nil
	}
}

func (s Spacing) String() string {
	switch s {
	case SpacingInline:
		return "inline"
	case SpacingMultiline:
		return "multiline"
	default:
		return "none"
	}
}

// Group matches one token whose kind is in Kinds, then skips Spacing
type Group struct {
	Kinds   []token.Kind
	Spacing Spacing
}

// Match builds a Group
func Match(spacing Spacing, kinds ...token.Kind) Group {
	return Group{Kinds: kinds, Spacing: spacing}
}

func (g Group) accepts(k token.Kind) bool {
	return slices.Contains(g.Kinds, k)
}

// cursor is a position in a token sequence that always ends with EOF.
// Reads past the end return the final EOF token.
type cursor struct {
	name string
	toks []token.Token
	idx  int
}

func newCursor(name string, toks []token.Token) *cursor {
	if n := len(toks); n == 0 || toks[n-1].Kind != token.EOF {
		eof := token.Token{Kind: token.EOF, Line: 1, Column: 1}
		if n > 0 {
			last := toks[n-1]
			eof.Line, eof.Column = last.Line, last.Column+len([]rune(last.Text))
		}
		toks = append(slices.Clip(toks), eof)
	}
	return &cursor{name: name, toks: toks}
}

// at returns the token at an absolute index, clamped to EOF
func (c *cursor) at(i int) token.Token {
	if i >= len(c.toks) {
		return c.toks[len(c.toks)-1]
	}
	return c.toks[i]
}

// current returns the token at offset from the cursor
func (c *cursor) current(offset int) token.Token {
	return c.at(c.idx + offset)
}

// skip counts the tokens from index i whose kinds are in set
func (c *cursor) skip(i int, set []token.Kind) int {
	n := 0
	for i+n < len(c.toks) && slices.Contains(set, c.toks[i+n].Kind) {
		n++
	}
	return n
}

// burn advances past every token whose kind is in set
func (c *cursor) burn(set []token.Kind) {
	c.idx += c.skip(c.idx, set)
}

// peekSeq reports whether groups match in order starting at offset,
// applying each group's spacing before the next. It never moves the cursor.
func (c *cursor) peekSeq(offset int, groups ...Group) bool {
	i := c.idx + offset
	for _, g := range groups {
		if !g.accepts(c.at(i).Kind) {
			return false
		}
		i++
		i += c.skip(i, g.Spacing.Kinds())
	}
	return true
}

// peekKind reports whether the token at offset has one of kinds
func (c *cursor) peekKind(offset int, kinds ...token.Kind) bool {
	return slices.Contains(kinds, c.current(offset).Kind)
}

// peekKinds reports whether the tokens from offset have exactly the kinds
// in seq, with no spacing skipped
func (c *cursor) peekKinds(offset int, seq ...token.Kind) bool {
	for i, k := range seq {
		if c.current(offset+i).Kind != k {
			return false
		}
	}
	return true
}

// grab consumes one token per group, skipping each group's spacing after
// its match. On a mismatch it reports the offending token; tokens matched
// before the mismatch stay consumed.
func (c *cursor) grab(groups ...Group) ([]token.Token, error) {
	out := make([]token.Token, 0, len(groups))
	for _, g := range groups {
		tok := c.current(0)
		if !g.accepts(tok.Kind) {
			return nil, c.unexpected(tok)
		}
		out = append(out, tok)
		if c.idx < len(c.toks) {
			c.idx++
		}
		c.burn(g.Spacing.Kinds())
	}
	return out, nil
}

// unexpected builds the diagnostic for tok
func (c *cursor) unexpected(tok token.Token) *diag.Error {
	if tok.Kind == token.EOF {
		return diag.Parse(c.name, mdwerror.CodeParseUnexpectedEOF, tok.Line, tok.Column, "unexpected end of file")
	}
	return diag.Parse(c.name, mdwerror.CodeParseUnexpectedToken, tok.Line, tok.Column, "unexpected %q (%s)", tok.Text, tok.Kind)
}
