// Package lexer turns source text into the token sequence consumed by the
// parser.
//
// Package: lexer
// Title: Lexer
// Description: A single forward pass over the source with an accumulation
//              buffer. Hard separators end buffered text, `"` and backtick
//              open string literals, whitespace only drives position
//              tracking. The result always ends with exactly one EOF token.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	lx := lexer.New(lexer.DefaultConfig())
//	toks, err := lx.Tokenize(lexer.Input{Name: "main.in", Code: "var a = 1"})
package lexer
