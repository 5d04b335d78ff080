// Package stringx provides small string helpers shared by the inside
// packages: blank checks, rune-safe truncation and line splitting.
package stringx
