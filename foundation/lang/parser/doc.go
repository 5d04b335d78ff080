// Package parser builds syntax trees from token sequences by recursive
// descent.
//
// Package: parser
// Title: Parser
// Description: Grammar rules are written against a small set of matcher
//              primitives: non-mutating lookahead (peekSeq, peekKind,
//              peekKinds) decides which alternative applies, and grab
//              consumes it. Once a rule grabs there is no backtracking,
//              and the first error ends the parse.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Grammar:
//
//	program  = { binding } EOF
//	binding  = ( "var" | "fix" ) ident "=" expr
//	expr     = atom { ( "+" | "-" | "*" | "/" ) atom }
//	atom     = ident "(" args ")" | "(" expr ")" | int "." int
//	         | bool | str | int | ident
//	args     = { expr [ "," ] }
//
// All four operators share one precedence level and fold left to right,
// so 1 + 2 * 3 parses as (1 + 2) * 3.
package parser
