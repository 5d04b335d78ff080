// File: config.go
// Title: Lexer Configuration
// Description: The per-byte permission table gating which characters may
//              appear in source text.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package lexer

import (
	"unicode/utf8"
)

// Config controls which characters the lexer accepts. Allow is indexed by
// ASCII code. Runes above ASCII are only accepted inside string literals,
// and only when AllowUnicodeStrings is set.
type Config struct {
	Allow               [128]bool
	AllowUnicodeStrings bool
}

// DefaultConfig allows printable ASCII plus tab, line feed and carriage
// return
func DefaultConfig() Config {
	var cfg Config
	for c := 0x20; c < 0x7f; c++ {
		cfg.Allow[c] = true
	}
	cfg.Allow['\t'] = true
	cfg.Allow['\n'] = true
	cfg.Allow['\r'] = true
	return cfg
}

// Permit allows every ASCII character in chars; others are ignored
func (c *Config) Permit(chars string) {
	c.set(chars, true)
}

// Deny forbids every ASCII character in chars; others are ignored
func (c *Config) Deny(chars string) {
	c.set(chars, false)
}

func (c *Config) set(chars string, allow bool) {
	for i := 0; i < len(chars); i++ {
		if chars[i] < utf8.RuneSelf {
			c.Allow[chars[i]] = allow
		}
	}
}

// Allowed reports whether r may appear at a position inside or outside a
// string literal
func (c *Config) Allowed(r rune, inString bool) bool {
	if r >= 0 && r < utf8.RuneSelf {
		return c.Allow[r]
	}
	return inString && c.AllowUnicodeStrings
}
