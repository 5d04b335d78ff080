// File: dump.go
// Title: Tree Serialisation
// Description: Converts trees to plain maps and slices for JSON and YAML
//              encoders. Every node map carries a "node" discriminator.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package ast

// Dump returns a map representation of node, or nil for a nil node
func Dump(node Node) map[string]interface{} {
	switch n := node.(type) {
	case *Program:
		return map[string]interface{}{"node": "program", "name": n.Name, "body": dumpStmts(n.Body)}
	case *VarStmt:
		return map[string]interface{}{"node": "var", "name": n.Name, "expr": dumpExpr(n.Expr)}
	case *FixStmt:
		return map[string]interface{}{"node": "fix", "name": n.Name, "expr": dumpExpr(n.Expr)}
	case *SetStmt:
		return map[string]interface{}{"node": "set", "name": n.Name, "expr": dumpExpr(n.Expr)}
	case *ExprStmt:
		return map[string]interface{}{"node": "expr", "expr": dumpExpr(n.Expr)}
	case *IfStmt:
		m := map[string]interface{}{"node": "if", "cond": dumpExpr(n.Cond), "pass": dumpStmts(n.Pass)}
		if n.Fail != nil {
			m["fail"] = dumpStmts(n.Fail)
		}
		return m
	case *BinExpr:
		return map[string]interface{}{"node": "bin", "op": n.Op.Symbol(), "left": dumpExpr(n.Left), "right": dumpExpr(n.Right)}
	case *LitExpr:
		return map[string]interface{}{"node": "lit", "kind": n.Kind.String(), "text": n.Text}
	case *CallExpr:
		args := make([]interface{}, len(n.Args))
		for i, a := range n.Args {
			args[i] = dumpExpr(a)
		}
		return map[string]interface{}{"node": "call", "name": n.Name, "args": args}
	case *IdentExpr:
		return map[string]interface{}{"node": "ident", "name": n.Name}
	default:
		return nil
	}
}

func dumpStmts(list []Stmt) []interface{} {
	out := make([]interface{}, len(list))
	for i, s := range list {
		out[i] = Dump(s)
	}
	return out
}

func dumpExpr(e Expr) interface{} {
	if e == nil {
		return nil
	}
	return Dump(e)
}
