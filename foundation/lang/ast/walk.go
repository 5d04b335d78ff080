// File: walk.go
// Title: Tree Traversal
// Description: Depth-first traversal over syntax trees.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

// Visitor is called for each node by Walk. If Visit returns nil the
// children of node are skipped; otherwise they are walked with the
// returned visitor.
type Visitor interface {
	Visit(node Node) Visitor
}

// Walk traverses node depth-first in source order
func Walk(v Visitor, node Node) {
	if node == nil {
		return
	}
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Program:
		walkStmts(v, n.Body)
	case *VarStmt:
		walkExpr(v, n.Expr)
	case *FixStmt:
		walkExpr(v, n.Expr)
	case *SetStmt:
		walkExpr(v, n.Expr)
	case *ExprStmt:
		walkExpr(v, n.Expr)
	case *IfStmt:
		walkExpr(v, n.Cond)
		walkStmts(v, n.Pass)
		walkStmts(v, n.Fail)
	case *BinExpr:
		walkExpr(v, n.Left)
		walkExpr(v, n.Right)
	case *CallExpr:
		for _, a := range n.Args {
			walkExpr(v, a)
		}
	}
}

func walkStmts(v Visitor, list []Stmt) {
	for _, s := range list {
		Walk(v, s)
	}
}

// walkExpr guards against typed nil expressions in hand-built trees
func walkExpr(v Visitor, e Expr) {
	if e != nil {
		Walk(v, e)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(node Node) Visitor {
	if f(node) {
		return f
	}
	return nil
}

// Inspect walks node calling f for each node; returning false skips the
// node's children
func Inspect(node Node, f func(Node) bool) {
	Walk(inspector(f), node)
}

// Stats summarises a tree
type Stats struct {
	Statements int
	Calls      int
	Literals   int
	Idents     int
	MaxDepth   int
}

// Collect gathers Stats for node. Depth counts nested expressions below a
// statement, so a single literal has depth 1.
func Collect(node Node) Stats {
	var st Stats
	var depth func(e Expr) int
	depth = func(e Expr) int {
		switch n := e.(type) {
		case *BinExpr:
			return 1 + max(depth(n.Left), depth(n.Right))
		case *CallExpr:
			d := 0
			for _, a := range n.Args {
				d = max(d, depth(a))
			}
			return 1 + d
		case nil:
			return 0
		default:
			return 1
		}
	}

	Inspect(node, func(n Node) bool {
		switch n := n.(type) {
		case *VarStmt:
			st.Statements++
			st.MaxDepth = max(st.MaxDepth, depth(n.Expr))
		case *FixStmt:
			st.Statements++
			st.MaxDepth = max(st.MaxDepth, depth(n.Expr))
		case *SetStmt:
			st.Statements++
			st.MaxDepth = max(st.MaxDepth, depth(n.Expr))
		case *ExprStmt:
			st.Statements++
			st.MaxDepth = max(st.MaxDepth, depth(n.Expr))
		case *IfStmt:
			st.Statements++
			st.MaxDepth = max(st.MaxDepth, depth(n.Cond))
		case *CallExpr:
			st.Calls++
		case *LitExpr:
			st.Literals++
		case *IdentExpr:
			st.Idents++
		}
		return true
	})
	return st
}
