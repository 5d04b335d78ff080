package version

import (
	"regexp"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Platform", Platform},
		{"Lexer", Lexer},
		{"Parser", Parser},
		{"Journal", Journal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		name     string
		service  string
		expected string
	}{
		{"lexer", "lexer", Lexer},
		{"parser", "parser", Parser},
		{"journal", "journal", Journal},
		{"unknown component", "unknown", Platform},
		{"empty component", "", Platform},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComponentVersion(tt.service); got != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.service, got, tt.expected)
			}
		})
	}
}

func TestComponents(t *testing.T) {
	for _, name := range Components() {
		if ComponentVersion(name) == "" {
			t.Errorf("component %q has no version", name)
		}
	}
}
