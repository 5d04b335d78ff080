// File: classify_test.go
// Title: Classifier Tests
// Description: Tests for kind resolution order and separator flags.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package token

import (
	"testing"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		text    string
		want    Kind
		wantSep bool
	}{
		// keywords and literals from the table
		{"var", Var, false},
		{"fix", Fix, false},
		{"true", Bool, false},
		{"false", Bool, false},

		// punctuation
		{"=", Equal, true},
		{"+", Plus, true},
		{"(", LParen, true},
		{",", Comma, true},
		{`"`, DQuote, true},
		{"`", Backtick, true},
		{"~", Tilde, true},

		// whitespace
		{" ", Space, true},
		{"\t", Tab, true},
		{"\r", Space, true},
		{"\n", EOL, true},

		// shapes
		{"a", Ident, false},
		{"_tmp1", Ident, false},
		{"Var", Ident, false},
		{"variable", Ident, false},
		{"0", Int, false},
		{"12345", Int, false},

		// invalid
		{"1a", Invalid, false},
		{"a-b", Invalid, false},
		{"$", Invalid, false},
		{"é", Invalid, false},
		{"", Invalid, false},
		{"EOF", Ident, false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, sep := Classify(tt.text)
			if got != tt.want || sep != tt.wantSep {
				t.Errorf("Classify(%q) = (%v, %v), want (%v, %v)", tt.text, got, sep, tt.want, tt.wantSep)
			}
		})
	}
}

func TestClassifyByteMatchesClassify(t *testing.T) {
	for b := 0; b < 128; b++ {
		wantKind, wantSep := Classify(string(rune(b)))
		gotKind, gotSep := ClassifyByte(byte(b))
		if gotKind != wantKind || gotSep != wantSep {
			t.Errorf("ClassifyByte(%d) = (%v, %v), want (%v, %v)", b, gotKind, gotSep, wantKind, wantSep)
		}
	}
}

func TestLookupIgnoresShapes(t *testing.T) {
	if _, _, ok := Lookup("abc"); ok {
		t.Error("Lookup() should only match the exact table")
	}
	if kind, sep, ok := Lookup(";"); !ok || kind != Semicolon || !sep {
		t.Errorf("Lookup(;) = %v, %v, %v", kind, sep, ok)
	}
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{EOF, "eof"},
		{Ident, "ident"},
		{Float, "float"},
		{Var, "var"},
		{Star, "star"},
		{RParen, "rparen"},
		{EOL, "eol"},
		{Kind(999), "kind(999)"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("%d.String() = %q, want %q", uint16(tt.kind), got, tt.want)
		}
	}
}

func TestKindSymbol(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Plus, "+"},
		{RParen, ")"},
		{Backslash, `\`},
		{Var, "var"},
		{Ident, ""},
		{Bool, ""},
		{Space, ""},
	}
	for _, tt := range tests {
		if got := tt.kind.Symbol(); got != tt.want {
			t.Errorf("%v.Symbol() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	if !Int.IsLiteral() || Ident.IsLiteral() {
		t.Error("IsLiteral() mismatch")
	}
	if !Slash.IsOperator() || Equal.IsOperator() {
		t.Error("IsOperator() mismatch")
	}
	if !EOL.IsWhitespace() || Comma.IsWhitespace() {
		t.Error("IsWhitespace() mismatch")
	}
	if !Fix.IsKeyword() || Bool.IsKeyword() {
		t.Error("IsKeyword() mismatch")
	}
}

func TestTokenDescribe(t *testing.T) {
	tok := Token{Kind: RParen, Text: ")", Line: 1, Column: 16}
	if got := tok.Describe(); got != `")" (rparen)` {
		t.Errorf("Describe() = %q", got)
	}
	if got := (Token{Kind: EOF}).Describe(); got != "end of file" {
		t.Errorf("Describe() = %q", got)
	}
	if got := tok.String(); got != `rparen(")")@1:16` {
		t.Errorf("String() = %q", got)
	}
}
