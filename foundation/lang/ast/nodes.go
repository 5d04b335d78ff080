// Package ast defines the syntax tree produced by the parser.
//
// File: nodes.go
// Title: Syntax Tree Nodes
// Description: Statements and expressions of the inside language. Nodes are
//              plain data; String renders each node back to source syntax.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
package ast

import (
	"strconv"
	"strings"

	"github.com/dipakw/inside/foundation/lang/token"
)

// Node is implemented by every tree node
type Node interface {
	String() string
	node()
}

// Stmt is a statement node
type Stmt interface {
	Node
	stmt()
}

// Expr is an expression node
type Expr interface {
	Node
	expr()
}

// Program is the root of a parsed source
type Program struct {
	Name string
	Body []Stmt
}

// VarStmt introduces a mutable binding
type VarStmt struct {
	Name string
	Expr Expr
}

// FixStmt introduces an immutable binding
type FixStmt struct {
	Name string
	Expr Expr
}

// SetStmt reassigns an existing binding
type SetStmt struct {
	Name string
	Expr Expr
}

// IfStmt is a conditional. A nil Fail means there is no else branch.
type IfStmt struct {
	Cond Expr
	Pass []Stmt
	Fail []Stmt
}

// ExprStmt evaluates an expression for effect
type ExprStmt struct {
	Expr Expr
}

// BinExpr is a binary operation; Op is an operator kind such as token.Plus
type BinExpr struct {
	Left  Expr
	Op    token.Kind
	Right Expr
}

// LitExpr is a literal with its raw source text. Kind is one of
// token.Int, token.Float, token.Bool or token.Str.
type LitExpr struct {
	Kind token.Kind
	Text string
}

// CallExpr invokes a function by name
type CallExpr struct {
	Name string
	Args []Expr
}

// IdentExpr references a binding
type IdentExpr struct {
	Name string
}

func (*Program) node()   {}
func (*VarStmt) node()   {}
func (*FixStmt) node()   {}
func (*SetStmt) node()   {}
func (*IfStmt) node()    {}
func (*ExprStmt) node()  {}
func (*BinExpr) node()   {}
func (*LitExpr) node()   {}
func (*CallExpr) node()  {}
func (*IdentExpr) node() {}

func (*VarStmt) stmt()  {}
func (*FixStmt) stmt()  {}
func (*SetStmt) stmt()  {}
func (*IfStmt) stmt()   {}
func (*ExprStmt) stmt() {}

func (*BinExpr) expr()   {}
func (*LitExpr) expr()   {}
func (*CallExpr) expr()  {}
func (*IdentExpr) expr() {}

// String renders one statement per line
func (p *Program) String() string {
	lines := make([]string, len(p.Body))
	for i, s := range p.Body {
		lines[i] = s.String()
	}
	return strings.Join(lines, "\n")
}

func (s *VarStmt) String() string  { return "var " + s.Name + " = " + s.Expr.String() }
func (s *FixStmt) String() string  { return "fix " + s.Name + " = " + s.Expr.String() }
func (s *SetStmt) String() string  { return s.Name + " = " + s.Expr.String() }
func (s *ExprStmt) String() string { return s.Expr.String() }

func (s *IfStmt) String() string {
	var b strings.Builder
	b.WriteString("if " + s.Cond.String() + " {")
	writeBlock(&b, s.Pass)
	b.WriteString("}")
	if s.Fail != nil {
		b.WriteString(" else {")
		writeBlock(&b, s.Fail)
		b.WriteString("}")
	}
	return b.String()
}

func writeBlock(b *strings.Builder, body []Stmt) {
	for _, s := range body {
		b.WriteString(" " + s.String() + ";")
	}
	if len(body) > 0 {
		b.WriteString(" ")
	}
}

// String parenthesises the operation so grouping is explicit
func (e *BinExpr) String() string {
	return "(" + e.Left.String() + " " + e.Op.Symbol() + " " + e.Right.String() + ")"
}

func (e *LitExpr) String() string {
	if e.Kind == token.Str {
		if strings.Contains(e.Text, `"`) {
			return "`" + e.Text + "`"
		}
		return strconv.Quote(e.Text)
	}
	return e.Text
}

func (e *CallExpr) String() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = a.String()
	}
	return e.Name + "(" + strings.Join(args, ", ") + ")"
}

func (e *IdentExpr) String() string { return e.Name }
