// File: token.go
// Title: Token Kinds
// Description: The Kind enumeration and the Token value.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package token

import (
	"fmt"
)

// Kind identifies the category of a token
type Kind uint16

// Invalid is returned by Classify for text that is not a token
const Invalid Kind = 0

// Dictionary tokens
const (
	EOF Kind = iota + 100
	Ident
	Int
	Bool
	Str
	Float
)

// Keywords
const (
	Fix Kind = iota + 200
	Var
)

// Punctuation and operators
const (
	Equal Kind = iota + 300
	Plus
	Minus
	Star
	Slash
	Less
	Greater
	Bang
	Colon
	Semicolon
	Dot
	Comma
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Pipe
	Amp
	Caret
	Percent
	Hash
	DQuote
	SQuote
	Backtick
	Backslash
	Tilde
)

// Whitespace
const (
	Space Kind = iota + 400
	Tab
	EOL
)

var kindNames = map[Kind]string{
	Invalid: "invalid",

	EOF:   "eof",
	Ident: "ident",
	Int:   "int",
	Bool:  "bool",
	Str:   "str",
	Float: "float",

	Fix: "fix",
	Var: "var",

	Equal:     "equal",
	Plus:      "plus",
	Minus:     "minus",
	Star:      "star",
	Slash:     "slash",
	Less:      "less",
	Greater:   "greater",
	Bang:      "bang",
	Colon:     "colon",
	Semicolon: "semicolon",
	Dot:       "dot",
	Comma:     "comma",
	LParen:    "lparen",
	RParen:    "rparen",
	LBrace:    "lbrace",
	RBrace:    "rbrace",
	LBracket:  "lbracket",
	RBracket:  "rbracket",
	Pipe:      "pipe",
	Amp:       "amp",
	Caret:     "caret",
	Percent:   "percent",
	Hash:      "hash",
	DQuote:    "dquote",
	SQuote:    "squote",
	Backtick:  "backtick",
	Backslash: "backslash",
	Tilde:     "tilde",

	Space: "space",
	Tab:   "tab",
	EOL:   "eol",
}

// symbols maps keyword and punctuation kinds back to their source text
var symbols = func() map[Kind]string {
	m := make(map[Kind]string)
	for text, e := range table {
		if e.kind == Bool || e.kind.IsWhitespace() {
			continue
		}
		m[e.kind] = text
	}
	return m
}()

// String returns a stable lowercase name such as "ident" or "rparen"
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", uint16(k))
}

// Symbol returns the source text of a keyword or punctuation kind, and ""
// for kinds whose text varies
func (k Kind) Symbol() string {
	return symbols[k]
}

// IsLiteral reports whether k is a literal value kind
func (k Kind) IsLiteral() bool {
	switch k {
	case Int, Float, Bool, Str:
		return true
	}
	return false
}

// IsKeyword reports whether k is a reserved word
func (k Kind) IsKeyword() bool {
	return k == Fix || k == Var
}

// IsWhitespace reports whether k is space, tab or end-of-line
func (k Kind) IsWhitespace() bool {
	return k == Space || k == Tab || k == EOL
}

// IsOperator reports whether k is one of the binary arithmetic operators
func (k Kind) IsOperator() bool {
	switch k {
	case Plus, Minus, Star, Slash:
		return true
	}
	return false
}

// Token is a lexical unit with its source position. Line and Column are
// 1-based and locate the first character.
type Token struct {
	Kind   Kind
	Text   string
	Line   int
	Column int
}

// String returns a debug representation such as ident("a")@1:5
func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d:%d", t.Kind, t.Text, t.Line, t.Column)
}

// Describe renders the token for diagnostics
func (t Token) Describe() string {
	if t.Kind == EOF {
		return "end of file"
	}
	return fmt.Sprintf("%q (%s)", t.Text, t.Kind)
}
