package diag

import (
	"fmt"
	"testing"

	mdwerror "github.com/dipakw/inside/foundation/core/error"
)

func TestErrorRendering(t *testing.T) {
	err := Parse("main.in", mdwerror.CodeParseUnexpectedToken, 1, 16, "unexpected %q (%s)", ")", ")")

	if got, want := err.Error(), `main.in:1:16: unexpected ")" ())`; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if got := err.Position(); got != "1:16" {
		t.Errorf("Position() = %q", got)
	}
	if err.Stage != StageParse {
		t.Errorf("Stage = %v", err.Stage)
	}
}

func TestCore(t *testing.T) {
	err := Lex("a.in", mdwerror.CodeLexUnterminatedString, 2, 3, "unexpected end of file")
	core := err.Core()

	if core.Code() != mdwerror.CodeLexUnterminatedString {
		t.Errorf("Code() = %v", core.Code())
	}
	if core.Operation() != "lex" {
		t.Errorf("Operation() = %q", core.Operation())
	}
	details := core.Details()
	if details["line"] != 2 || details["column"] != 3 || details["source"] != "a.in" {
		t.Errorf("Details() = %v", details)
	}
	if core.Severity() != mdwerror.SeverityLow {
		t.Errorf("Severity() = %v", core.Severity())
	}
}

func TestAs(t *testing.T) {
	inner := Lex("a.in", mdwerror.CodeLexInvalidToken, 1, 1, "invalid token: %s", "1a")
	wrapped := fmt.Errorf("compile: %w", inner)

	got, ok := As(wrapped)
	if !ok || got != inner {
		t.Errorf("As() = %v, %v", got, ok)
	}
	if _, ok := As(fmt.Errorf("plain")); ok {
		t.Error("As() matched a plain error")
	}
}
