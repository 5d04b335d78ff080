// Package diag defines the positioned diagnostic returned by the lexer and
// the parser.
//
// File: diag.go
// Title: Positioned Diagnostics
// Description: A single error located in a named source. Each stage stops
//              at its first failure, so a compile run yields at most one.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
package diag

import (
	"errors"
	"fmt"

	mdwerror "github.com/dipakw/inside/foundation/core/error"
)

// Stage names the front-end pass that produced a diagnostic
type Stage string

const (
	StageLex   Stage = "lex"
	StageParse Stage = "parse"
)

// Error is a diagnostic located at Line:Column of the source called Name
type Error struct {
	Name   string
	Text   string
	Line   int
	Column int
	Stage  Stage
	Code   mdwerror.Code
}

// Error renders name:line:column: text
func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s", e.Name, e.Line, e.Column, e.Text)
}

// Position renders line:column
func (e *Error) Position() string {
	return fmt.Sprintf("%d:%d", e.Line, e.Column)
}

// Core converts the diagnostic to a structured error carrying its code,
// stage and position as details
func (e *Error) Core() *mdwerror.Error {
	return mdwerror.New(e.Text).
		WithCode(e.Code).
		WithOperation(string(e.Stage)).
		WithDetails(map[string]interface{}{
			"source": e.Name,
			"line":   e.Line,
			"column": e.Column,
		})
}

// Lex builds a lexer diagnostic
func Lex(name string, code mdwerror.Code, line, column int, format string, args ...interface{}) *Error {
	return &Error{Name: name, Text: fmt.Sprintf(format, args...), Line: line, Column: column, Stage: StageLex, Code: code}
}

// Parse builds a parser diagnostic
func Parse(name string, code mdwerror.Code, line, column int, format string, args ...interface{}) *Error {
	return &Error{Name: name, Text: fmt.Sprintf(format, args...), Line: line, Column: column, Stage: StageParse, Code: code}
}

// As returns the diagnostic in err's chain, if any
func As(err error) (*Error, bool) {
	var d *Error
	if errors.As(err, &d) {
		return d, true
	}
	return nil, false
}
