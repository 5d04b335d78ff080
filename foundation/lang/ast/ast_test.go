package ast

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/dipakw/inside/foundation/lang/token"
)

func lit(kind token.Kind, text string) *LitExpr { return &LitExpr{Kind: kind, Text: text} }

func sampleProgram() *Program {
	return &Program{
		Name: "sample.in",
		Body: []Stmt{
			&VarStmt{Name: "a", Expr: lit(token.Int, "1")},
			&FixStmt{Name: "b", Expr: &BinExpr{
				Left:  &BinExpr{Left: lit(token.Int, "1"), Op: token.Plus, Right: &IdentExpr{Name: "a"}},
				Op:    token.Star,
				Right: &CallExpr{Name: "f", Args: []Expr{lit(token.Str, "x y"), lit(token.Float, "2.5")}},
			}},
		},
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"program", sampleProgram(), "var a = 1\nfix b = ((1 + a) * f(\"x y\", 2.5))"},
		{"set", &SetStmt{Name: "a", Expr: lit(token.Bool, "true")}, "a = true"},
		{"expr statement", &ExprStmt{Expr: &CallExpr{Name: "print"}}, "print()"},
		{"string with quote", lit(token.Str, `say "hi"`), "`say \"hi\"`"},
		{"if without else", &IfStmt{Cond: &IdentExpr{Name: "ok"}, Pass: []Stmt{&SetStmt{Name: "a", Expr: lit(token.Int, "2")}}}, "if ok { a = 2; }"},
		{"if with empty else", &IfStmt{Cond: &IdentExpr{Name: "ok"}, Pass: nil, Fail: []Stmt{}}, "if ok {} else {}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInspectOrder(t *testing.T) {
	var got []string
	Inspect(sampleProgram(), func(n Node) bool {
		switch n := n.(type) {
		case *IdentExpr:
			got = append(got, "ident:"+n.Name)
		case *CallExpr:
			got = append(got, "call:"+n.Name)
		case *LitExpr:
			got = append(got, "lit:"+n.Text)
		}
		return true
	})

	want := []string{"lit:1", "lit:1", "ident:a", "call:f", "lit:x y", "lit:2.5"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("visit order = %v, want %v", got, want)
	}
}

func TestInspectSkipsChildren(t *testing.T) {
	count := 0
	Inspect(sampleProgram(), func(n Node) bool {
		count++
		_, isCall := n.(*CallExpr)
		return !isCall
	})
	// program, var, lit, fix, bin, bin, lit, ident, call
	if count != 9 {
		t.Errorf("visited %d nodes, want 9", count)
	}
}

func TestCollect(t *testing.T) {
	got := Collect(sampleProgram())
	want := Stats{Statements: 2, Calls: 1, Literals: 4, Idents: 1, MaxDepth: 3}
	if got != want {
		t.Errorf("Collect() = %+v, want %+v", got, want)
	}
}

func TestDump(t *testing.T) {
	data, err := json.Marshal(Dump(sampleProgram()))
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["node"] != "program" || decoded["name"] != "sample.in" {
		t.Fatalf("root = %v", decoded)
	}

	body := decoded["body"].([]interface{})
	fix := body[1].(map[string]interface{})
	bin := fix["expr"].(map[string]interface{})
	if bin["op"] != "*" {
		t.Errorf("op = %v", bin["op"])
	}
	call := bin["right"].(map[string]interface{})
	args := call["args"].([]interface{})
	if first := args[0].(map[string]interface{}); first["kind"] != "str" || first["text"] != "x y" {
		t.Errorf("first arg = %v", first)
	}

	ifDump := Dump(&IfStmt{Cond: &IdentExpr{Name: "c"}})
	if _, ok := ifDump["fail"]; ok {
		t.Error("if without else should not dump a fail branch")
	}
	if Dump(nil) != nil {
		t.Error("Dump(nil) should be nil")
	}
}
