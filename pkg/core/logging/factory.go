// ============================================================================
// inside - front end for a small expression language
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating loggers from settings
// Author:      dipakw
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	mdwlog "github.com/dipakw/inside/foundation/core/log"
	"github.com/dipakw/inside/foundation/lang"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name shown in text output
	Name string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format (json, text, console, logfmt)
	Format string

	// Output defaults to stderr so command output on stdout stays clean
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a foundation logger. Unknown levels fall back to info and
// unknown formats to json.
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	level, _ := mdwlog.ParseLevel(cfg.Level)
	format, _ := mdwlog.ParseFormat(cfg.Format)

	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.Name,
	})
}

// FromSettings creates a logger from loaded settings. Verbose lowers the
// level to debug unless settings already ask for trace.
func FromSettings(name string, s lang.Settings, verbose bool, output io.Writer) *mdwlog.Logger {
	level := s.LogLevel
	if verbose && level > mdwlog.LevelDebug {
		level = mdwlog.LevelDebug
	}
	return NewLogger(LoggerConfig{
		Name:   name,
		Level:  level.String(),
		Format: s.LogFormat.String(),
		Output: output,
	})
}
