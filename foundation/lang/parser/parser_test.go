// File: parser_test.go
// Title: Parser Tests
// Description: Tests for statement and expression rules, error positions
//              and the nesting limit, driven through the lexer.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial test suite

package parser

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	mdwerror "github.com/dipakw/inside/foundation/core/error"
	mdwlog "github.com/dipakw/inside/foundation/core/log"
	"github.com/dipakw/inside/foundation/lang/ast"
	"github.com/dipakw/inside/foundation/lang/diag"
	"github.com/dipakw/inside/foundation/lang/lexer"
	"github.com/dipakw/inside/foundation/lang/token"
)

func parseSource(t *testing.T, p *Parser, code string) (*ast.Program, error) {
	t.Helper()
	toks, err := lexer.Tokenize(lexer.Input{Name: "test.in", Code: code})
	if err != nil {
		t.Fatalf("Tokenize(%q) error = %v", code, err)
	}
	return p.Parse("test.in", toks)
}

func lit(kind token.Kind, text string) *ast.LitExpr { return &ast.LitExpr{Kind: kind, Text: text} }
func ident(name string) *ast.IdentExpr              { return &ast.IdentExpr{Name: name} }
func bin(l ast.Expr, op token.Kind, r ast.Expr) *ast.BinExpr {
	return &ast.BinExpr{Left: l, Op: op, Right: r}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		code string
		want []ast.Stmt
	}{
		{
			name: "var binding",
			code: "var a = 1",
			want: []ast.Stmt{&ast.VarStmt{Name: "a", Expr: lit(token.Int, "1")}},
		},
		{
			name: "single precedence level folds left",
			code: "fix b = 1 + 2 * 3",
			want: []ast.Stmt{&ast.FixStmt{Name: "b", Expr: bin(bin(lit(token.Int, "1"), token.Plus, lit(token.Int, "2")), token.Star, lit(token.Int, "3"))}},
		},
		{
			name: "left associativity",
			code: "var c = a - b - c",
			want: []ast.Stmt{&ast.VarStmt{Name: "c", Expr: bin(bin(ident("a"), token.Minus, ident("b")), token.Minus, ident("c"))}},
		},
		{
			name: "parentheses group",
			code: "var d = 1 / (2 - x)",
			want: []ast.Stmt{&ast.VarStmt{Name: "d", Expr: bin(lit(token.Int, "1"), token.Slash, bin(lit(token.Int, "2"), token.Minus, ident("x")))}},
		},
		{
			name: "call with arguments",
			code: `var e = f(1, "two", g())`,
			want: []ast.Stmt{&ast.VarStmt{Name: "e", Expr: &ast.CallExpr{Name: "f", Args: []ast.Expr{
				lit(token.Int, "1"),
				lit(token.Str, "two"),
				&ast.CallExpr{Name: "g", Args: []ast.Expr{}},
			}}}},
		},
		{
			name: "separator is optional",
			code: "var f = max(1 2)",
			want: []ast.Stmt{&ast.VarStmt{Name: "f", Expr: &ast.CallExpr{Name: "max", Args: []ast.Expr{lit(token.Int, "1"), lit(token.Int, "2")}}}},
		},
		{
			name: "dotted number becomes float",
			code: "var g = 3.14 * r",
			want: []ast.Stmt{&ast.VarStmt{Name: "g", Expr: bin(lit(token.Float, "3.14"), token.Star, ident("r"))}},
		},
		{
			name: "spaced dotted number is still a float",
			code: "var h = 1 . 5",
			want: []ast.Stmt{&ast.VarStmt{Name: "h", Expr: lit(token.Float, "1.5")}},
		},
		{
			name: "literals",
			code: "var i = true\nfix j = `raw` + \"\"",
			want: []ast.Stmt{
				&ast.VarStmt{Name: "i", Expr: lit(token.Bool, "true")},
				&ast.FixStmt{Name: "j", Expr: bin(lit(token.Str, "raw"), token.Plus, lit(token.Str, ""))},
			},
		},
		{
			name: "statements need no separator",
			code: "var a = 1 var b = a",
			want: []ast.Stmt{
				&ast.VarStmt{Name: "a", Expr: lit(token.Int, "1")},
				&ast.VarStmt{Name: "b", Expr: ident("a")},
			},
		},
		{
			name: "empty source",
			code: "\n\n",
			want: []ast.Stmt{},
		},
	}

	p := New(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := parseSource(t, p, tt.code)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			want := &ast.Program{Name: "test.in", Body: tt.want}
			if !reflect.DeepEqual(prog, want) {
				t.Errorf("Parse() =\n%s\nwant\n%s", prog, want)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantText string
		wantCode mdwerror.Code
		wantLine int
		wantCol  int
	}{
		{"trailing separator", "var c = f(1, 2,)", `unexpected ")" (rparen)`, mdwerror.CodeParseUnexpectedToken, 1, 16},
		{"statement without keyword", "a = 1", `unexpected "a" (ident)`, mdwerror.CodeParseUnexpectedToken, 1, 1},
		{"missing name", "var = 1", `unexpected "=" (equal)`, mdwerror.CodeParseUnexpectedToken, 1, 5},
		{"missing equals", "fix a 1", `unexpected "1" (int)`, mdwerror.CodeParseUnexpectedToken, 1, 7},
		{"missing expression", "var a =", "unexpected end of file", mdwerror.CodeParseUnexpectedEOF, 1, 8},
		{"dangling operator", "var a = 1 +\n", "unexpected end of file", mdwerror.CodeParseUnexpectedEOF, 2, 1},
		{"unclosed paren", "var a = (1", "unexpected end of file", mdwerror.CodeParseUnexpectedEOF, 1, 11},
		{"unclosed call", "var a = f(1,\n2", "unexpected end of file", mdwerror.CodeParseUnexpectedEOF, 2, 2},
		{"stray close paren", "var a = )", `unexpected ")" (rparen)`, mdwerror.CodeParseUnexpectedToken, 1, 9},
		{"leading separator", "var a = f(,)", `unexpected "," (comma)`, mdwerror.CodeParseUnexpectedToken, 1, 11},
		{"two atoms", "var a = 1 2", `unexpected "2" (int)`, mdwerror.CodeParseUnexpectedToken, 1, 11},
		{"second statement fails", "var a = 1\nvar b = *", `unexpected "*" (star)`, mdwerror.CodeParseUnexpectedToken, 2, 9},
	}

	p := New(Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := parseSource(t, p, tt.code)
			if err == nil {
				t.Fatalf("Parse() = %s, want error", prog)
			}
			if prog != nil {
				t.Error("partial program returned with error")
			}

			d, ok := diag.As(err)
			if !ok {
				t.Fatalf("error %T is not a diagnostic", err)
			}
			if d.Text != tt.wantText || d.Code != tt.wantCode {
				t.Errorf("diagnostic = %q (%s), want %q (%s)", d.Text, d.Code, tt.wantText, tt.wantCode)
			}
			if d.Line != tt.wantLine || d.Column != tt.wantCol {
				t.Errorf("position = %d:%d, want %d:%d", d.Line, d.Column, tt.wantLine, tt.wantCol)
			}
			if d.Stage != diag.StageParse || d.Name != "test.in" {
				t.Errorf("stage/name = %s/%q", d.Stage, d.Name)
			}
		})
	}
}

func TestMaxDepth(t *testing.T) {
	tests := []struct {
		name     string
		maxDepth int
		code     string
		wantErr  bool
		wantCol  int
	}{
		{"within limit", 4, "var a = (((1)))", false, 0},
		{"parens over limit", 3, "var a = (((1)))", true, 12},
		{"call arguments count", 2, "var a = f(g(1))", true, 13},
		{"operators do not nest", 1, "var a = 1 + 2 - 3 * 4", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSource(t, New(Options{MaxDepth: tt.maxDepth}), tt.code)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr {
				return
			}
			d, _ := diag.As(err)
			if d.Code != mdwerror.CodeParseTooDeep || d.Column != tt.wantCol {
				t.Errorf("diagnostic = %v (%s)", d, d.Code)
			}
		})
	}
}

func TestDefaultMaxDepth(t *testing.T) {
	p := New(Options{})
	if p.MaxDepth() != DefaultMaxDepth {
		t.Fatalf("MaxDepth() = %d", p.MaxDepth())
	}

	deep := "var a = " + strings.Repeat("(", 300) + "1" + strings.Repeat(")", 300)
	_, err := parseSource(t, p, deep)
	if !mdwerror.HasCode(diagCore(err), mdwerror.CodeParseTooDeep) {
		t.Errorf("error = %v, want nesting error", err)
	}
	if err != nil && !strings.Contains(err.Error(), "maximum depth of 256") {
		t.Errorf("message = %q", err.Error())
	}
}

func diagCore(err error) error {
	if d, ok := diag.As(err); ok {
		return d.Core()
	}
	return err
}

func TestParseWithoutTrailingEOF(t *testing.T) {
	prog, err := Parse("x.in", nil)
	if err != nil || len(prog.Body) != 0 {
		t.Fatalf("Parse(nil) = %v, %v", prog, err)
	}

	toks := []token.Token{
		{Kind: token.Var, Text: "var", Line: 1, Column: 1},
		{Kind: token.Ident, Text: "a", Line: 1, Column: 5},
		{Kind: token.Equal, Text: "=", Line: 1, Column: 7},
	}
	_, err = Parse("x.in", toks)
	d, ok := diag.As(err)
	if !ok || d.Text != "unexpected end of file" || d.Column != 8 {
		t.Errorf("error = %v", err)
	}
	if len(toks) != 3 {
		t.Error("input slice was modified")
	}
}

func TestParseLogsStatements(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{Level: mdwlog.LevelTrace, Format: mdwlog.FormatLogfmt, Output: &buf})

	if _, err := parseSource(t, New(Options{Logger: logger}), "var a = 1\nfix b = 2"); err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "statement parsed"); got != 2 {
		t.Errorf("logged %d statements, want 2:\n%s", got, buf.String())
	}
}
