// Package log provides structured logging for the inside tooling.
//
// Package: log
// Title: Structured Logging
// Description: Leveled, structured logging with JSON, text, console and logfmt
//              output. Loggers are immutable: every With* call returns a copy
//              so request-scoped loggers can be derived safely.
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
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//	logger = logger.WithField("component", "lexer").WithRequestID(id)
//	logger.Debug("tokenized", log.Fields{"tokens": len(toks)})
//
//	timer := logger.StartTimer("parse")
//	defer timer.Stop()
package log
