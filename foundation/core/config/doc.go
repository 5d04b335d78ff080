// Package config loads layered settings for the inside tooling.
//
// Package: config
// Title: Configuration Management
// Description: Reads TOML or YAML settings files into a nested map and
//              exposes dot-path getters. Environment variables named
//              <PREFIX>_<SECTION>_<KEY> override file values, and defaults
//              fill in anything the file leaves out.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation
//
// Example settings file (inside.toml):
//
//	[lexer]
//	deny = ["$", "@"]
//	allow_unicode_strings = true
//
//	[parser]
//	max_depth = 128
//
//	[log]
//	level = "debug"
//	format = "text"
//
// Usage:
//
//	cfg, err := config.LoadWithOptions("inside.toml", config.LoadOptions{EnvPrefix: "INSIDE"})
//	depth := cfg.GetInt("parser.max_depth", 256)
package config
