// ============================================================================
// inside - front end for a small expression language
// ============================================================================
//
// Package:     render
// Description: Diagnostic excerpts with a caret pointer and token tables
// Author:      dipakw
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	mdwerror "github.com/dipakw/inside/foundation/core/error"
	"github.com/dipakw/inside/foundation/lang/diag"
	"github.com/dipakw/inside/foundation/lang/token"
	"github.com/dipakw/inside/foundation/utils/stringx"
)

// maxExcerptWidth caps the rendered source line
const maxExcerptWidth = 120

// Renderer formats compiler output for a terminal. Without color it emits
// plain text.
type Renderer struct {
	color bool
}

// New creates a renderer
func New(color bool) *Renderer {
	return &Renderer{color: color}
}

func (r *Renderer) paint(style lipgloss.Style, text string) string {
	if !r.color || text == "" {
		return text
	}
	return style.Render(text)
}

// Diagnostic renders d with the offending source line and a caret under
// its column:
//
//	error[PARSE_UNEXPECTED_TOKEN]: unexpected ")" (rparen)
//	  --> main.in:1:16
//	   |
//	 1 | var c = f(1, 2,)
//	   |                ^
func (r *Renderer) Diagnostic(source string, d *diag.Error) string {
	var b strings.Builder

	b.WriteString(r.paint(ErrorStyle, fmt.Sprintf("error[%s]", d.Code)))
	b.WriteString(": " + d.Text + "\n")

	number := " " + strconv.Itoa(d.Line)
	gutter := strings.Repeat(" ", len(number))
	b.WriteString(gutter + r.paint(GutterStyle, "-->") + " " +
		r.paint(LocationStyle, fmt.Sprintf("%s:%d:%d", d.Name, d.Line, d.Column)) + "\n")

	line := stringx.Line(source, d.Line)
	if d.Line < 1 || (line == "" && d.Column > 1) {
		return b.String()
	}

	bar := r.paint(GutterStyle, "|")
	b.WriteString(gutter + " " + bar + "\n")
	b.WriteString(r.paint(GutterStyle, number) + " " + bar + " " +
		stringx.Truncate(line, maxExcerptWidth, "...") + "\n")
	b.WriteString(gutter + " " + bar + " " + caretPad(line, d.Column) + r.paint(CaretStyle, "^") + "\n")
	return b.String()
}

// caretPad returns the indentation placing a caret under column col of line.
// Tabs are copied so the caret lines up however the terminal expands them.
func caretPad(line string, col int) string {
	var b strings.Builder
	i := 1
	for _, r := range line {
		if i >= col {
			break
		}
		if r == '\t' {
			b.WriteRune('\t')
		} else {
			b.WriteRune(' ')
		}
		i++
	}
	for ; i < col; i++ {
		b.WriteRune(' ')
	}
	return b.String()
}

// Error renders any compile error. Diagnostics get a source excerpt; coded
// errors show their code.
func (r *Renderer) Error(source string, err error) string {
	if d, ok := diag.As(err); ok {
		return r.Diagnostic(source, d)
	}
	if e, ok := mdwerror.As(err); ok && e.Code() != mdwerror.CodeUnknown {
		return r.paint(ErrorStyle, fmt.Sprintf("error[%s]", e.Code())) + ": " + err.Error() + "\n"
	}
	return r.paint(ErrorStyle, "error") + ": " + err.Error() + "\n"
}

// Success renders a one-line summary for a source that compiled
func (r *Renderer) Success(name string, statements int) string {
	noun := "statements"
	if statements == 1 {
		noun = "statement"
	}
	return r.paint(OKStyle, "ok") + "  " + name + " " + r.paint(MutedStyle, fmt.Sprintf("(%d %s)", statements, noun)) + "\n"
}

// Tokens renders toks as a table of position, kind and text
func (r *Renderer) Tokens(toks []token.Token) string {
	rows := make([][]string, len(toks))
	for i, tok := range toks {
		rows[i] = []string{
			fmt.Sprintf("%d:%d", tok.Line, tok.Column),
			tok.Kind.String(),
			strconv.Quote(tok.Text),
		}
	}
	return r.Table([]string{"POS", "KIND", "TEXT"}, rows)
}

// Table renders rows under headers with columns padded to a common width.
// The last column is not padded.
func (r *Renderer) Table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for c, h := range headers {
		widths[c] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for c, cell := range row {
			if c < len(widths) && lipgloss.Width(cell) > widths[c] {
				widths[c] = lipgloss.Width(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(r.row(headers, widths, HeaderStyle))
	for _, row := range rows {
		b.WriteString(r.row(row, widths, MutedStyle))
	}
	return b.String()
}

func (r *Renderer) row(cells []string, widths []int, first lipgloss.Style) string {
	parts := make([]string, len(cells))
	for c, cell := range cells {
		if c < len(cells)-1 && c < len(widths) {
			cell += strings.Repeat(" ", widths[c]-lipgloss.Width(cell))
		}
		if c == 0 {
			cell = r.paint(first, cell)
		}
		parts[c] = cell
	}
	return strings.Join(parts, "  ") + "\n"
}
