// Package lang is the entry point to the inside language front end.
//
// Package: lang
// Title: Front End Engine
// Description: Engine ties the lexer and the parser together behind one
//              API with input limits, request-scoped logging and timing.
//              Settings maps a loaded configuration onto engine options.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Usage:
//
//	engine := lang.NewEngine(lang.Options{Logger: logger})
//	prog, err := engine.Parse(ctx, "main.in", "var a = 1 + 2")
//	if d, ok := diag.As(err); ok {
//	    fmt.Println(d.Line, d.Column, d.Text)
//	}
package lang
