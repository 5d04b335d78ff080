// File: classify.go
// Title: Token Classifier
// Description: Maps a single character or an accumulated fragment to a
//              token kind and reports whether it is a hard separator.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package token

type entry struct {
	kind Kind
	sep  bool
}

// table is built once at init and never mutated
var table = map[string]entry{
	"fix":   {Fix, false},
	"var":   {Var, false},
	"true":  {Bool, false},
	"false": {Bool, false},

	"=":  {Equal, true},
	"+":  {Plus, true},
	"-":  {Minus, true},
	"*":  {Star, true},
	"/":  {Slash, true},
	"<":  {Less, true},
	">":  {Greater, true},
	"!":  {Bang, true},
	":":  {Colon, true},
	";":  {Semicolon, true},
	".":  {Dot, true},
	",":  {Comma, true},
	"(":  {LParen, true},
	")":  {RParen, true},
	"{":  {LBrace, true},
	"}":  {RBrace, true},
	"[":  {LBracket, true},
	"]":  {RBracket, true},
	"|":  {Pipe, true},
	"&":  {Amp, true},
	"^":  {Caret, true},
	"%":  {Percent, true},
	"#":  {Hash, true},
	`"`:  {DQuote, true},
	"'":  {SQuote, true},
	"`":  {Backtick, true},
	`\`:  {Backslash, true},
	"~":  {Tilde, true},
	" ":  {Space, true},
	"\t": {Tab, true},
	"\r": {Space, true},
	"\n": {EOL, true},
}

// Lookup consults only the exact-match table
func Lookup(text string) (Kind, bool, bool) {
	e, ok := table[text]
	return e.kind, e.sep, ok
}

// Classify returns the kind of text and whether it is a hard separator.
// Resolution order: exact table match, identifier shape, all digits.
// Unclassifiable text yields Invalid.
func Classify(text string) (Kind, bool) {
	if kind, sep, ok := Lookup(text); ok {
		return kind, sep
	}
	if IsIdent(text) {
		return Ident, false
	}
	if IsInt(text) {
		return Int, false
	}
	return Invalid, false
}

// ClassifyByte is Classify for a single byte, without allocating
func ClassifyByte(b byte) (Kind, bool) {
	return Classify(byteStrings[b])
}

var byteStrings = func() (s [256]string) {
	for i := range s {
		s[i] = string([]byte{byte(i)})
	}
	return s
}()

// IsIdent reports whether text is an ASCII letter or underscore followed
// by ASCII letters, digits or underscores
func IsIdent(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// IsInt reports whether text is a non-empty run of ASCII digits
func IsInt(text string) bool {
	if text == "" {
		return false
	}
	for i := 0; i < len(text); i++ {
		if text[i] < '0' || text[i] > '9' {
			return false
		}
	}
	return true
}
