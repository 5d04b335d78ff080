// ============================================================================
// inside - front end for a small expression language
// ============================================================================
//
// Package:     version
// Description: Central version management for the tool and its components
// Author:      dipakw
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package version

// Version constants for inside components
const (
	// Tool version
	Platform = "0.1.0"

	// Component versions
	Lexer   = "0.1.0"
	Parser  = "0.1.0"
	Journal = "0.1.0"
)

// Build metadata, set through -ldflags
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "lexer":
		return Lexer
	case "parser":
		return Parser
	case "journal":
		return Journal
	default:
		return Platform
	}
}

// Components lists the component names known to ComponentVersion
func Components() []string {
	return []string{"lexer", "parser", "journal"}
}
