package render

import (
	"errors"
	"strings"
	"testing"

	mdwerror "github.com/dipakw/inside/foundation/core/error"
	"github.com/dipakw/inside/foundation/lang/diag"
	"github.com/dipakw/inside/foundation/lang/lexer"
)

func TestDiagnostic(t *testing.T) {
	tests := []struct {
		name   string
		source string
		d      *diag.Error
		want   string
	}{
		{
			name:   "caret under column",
			source: "var c = f(1, 2,)",
			d:      diag.Parse("main.in", mdwerror.CodeParseUnexpectedToken, 1, 16, `unexpected ")" (rparen)`),
			want: "error[PARSE_UNEXPECTED_TOKEN]: unexpected \")\" (rparen)\n" +
				"  --> main.in:1:16\n" +
				"   |\n" +
				" 1 | var c = f(1, 2,)\n" +
				"   |                ^\n",
		},
		{
			name:   "second line with tab",
			source: "var a = 1\n\tvar b = $",
			d:      diag.Lex("x.in", mdwerror.CodeLexInvalidToken, 2, 10, "invalid token: $"),
			want: "error[LEX_INVALID_TOKEN]: invalid token: $\n" +
				"  --> x.in:2:10\n" +
				"   |\n" +
				" 2 | \tvar b = $\n" +
				"   | \t        ^\n",
		},
		{
			name:   "end of file after last line",
			source: "var a = 1 +\n",
			d:      diag.Parse("e.in", mdwerror.CodeParseUnexpectedEOF, 2, 1, "unexpected end of file"),
			want: "error[PARSE_UNEXPECTED_EOF]: unexpected end of file\n" +
				"  --> e.in:2:1\n" +
				"   |\n" +
				" 2 | \n" +
				"   | ^\n",
		},
		{
			name:   "line out of range",
			source: "var a = 1",
			d:      diag.Parse("o.in", mdwerror.CodeParseUnexpectedEOF, 7, 3, "unexpected end of file"),
			want: "error[PARSE_UNEXPECTED_EOF]: unexpected end of file\n" +
				"  --> o.in:7:3\n",
		},
	}

	r := New(false)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Diagnostic(tt.source, tt.d); got != tt.want {
				t.Errorf("Diagnostic() =\n%s\nwant\n%s", got, tt.want)
			}
		})
	}
}

func TestError(t *testing.T) {
	r := New(false)

	coded := mdwerror.New("source exceeds maximum length of 8 bytes").WithCode(mdwerror.CodeInvalidInput)
	if got, want := r.Error("", coded), "error[INVALID_INPUT]: source exceeds maximum length of 8 bytes\n"; got != want {
		t.Errorf("Error(coded) = %q, want %q", got, want)
	}
	if got, want := r.Error("", errors.New("boom")), "error: boom\n"; got != want {
		t.Errorf("Error(plain) = %q, want %q", got, want)
	}

	d := diag.Parse("p.in", mdwerror.CodeParseUnexpectedEOF, 1, 8, "unexpected end of file")
	if got := r.Error("var a =", d); !strings.Contains(got, "^") {
		t.Errorf("Error(diag) has no caret:\n%s", got)
	}
}

func TestSuccess(t *testing.T) {
	r := New(false)
	if got := r.Success("a.in", 1); got != "ok  a.in (1 statement)\n" {
		t.Errorf("Success() = %q", got)
	}
	if got := r.Success("b.in", 3); got != "ok  b.in (3 statements)\n" {
		t.Errorf("Success() = %q", got)
	}
}

func TestTokens(t *testing.T) {
	toks, err := lexer.Tokenize(lexer.Input{Name: "t.in", Code: `fix s = "hi"`})
	if err != nil {
		t.Fatal(err)
	}

	want := "" +
		"POS   KIND   TEXT\n" +
		"1:1   fix    \"fix\"\n" +
		"1:5   ident  \"s\"\n" +
		"1:7   equal  \"=\"\n" +
		"1:10  str    \"hi\"\n" +
		"1:13  eof    \"\"\n"
	if got := New(false).Tokens(toks); got != want {
		t.Errorf("Tokens() =\n%s\nwant\n%s", got, want)
	}
}

func TestColorRendering(t *testing.T) {
	d := diag.Parse("c.in", mdwerror.CodeParseUnexpectedToken, 1, 1, "x")
	plain := New(false).Diagnostic("a", d)
	colored := New(true).Diagnostic("a", d)

	if !strings.Contains(colored, "x") || !strings.Contains(colored, "c.in:1:1") {
		t.Errorf("colored output lost content:\n%s", colored)
	}
	if len(colored) < len(plain) {
		t.Errorf("colored output shorter than plain")
	}
}

func TestTable(t *testing.T) {
	got := New(false).Table(
		[]string{"ID", "STATUS", "SOURCE"},
		[][]string{
			{"1a2b", "ok", "a.in"},
			{"3c", "failed", "longer.in"},
		},
	)
	want := "" +
		"ID    STATUS  SOURCE\n" +
		"1a2b  ok      a.in\n" +
		"3c    failed  longer.in\n"
	if got != want {
		t.Errorf("Table() =\n%s\nwant\n%s", got, want)
	}
}
