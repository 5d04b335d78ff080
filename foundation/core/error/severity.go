// File: severity.go
// Title: Error Severity Levels
// Description: Severity levels used to pick the log level for an error.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow covers problems in user input, such as syntax errors
	SeverityLow Severity = iota

	// SeverityMedium is the default for errors without a more specific code
	SeverityMedium

	// SeverityHigh covers failures of the tool itself (storage, configuration)
	SeverityHigh

	// SeverityCritical makes the tool unusable
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// GetSeverityFromCode determines the severity level for an error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeStorageError, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound,
		CodeLexInvalidToken, CodeLexDisallowedChar, CodeLexUnterminatedString,
		CodeParseUnexpectedToken, CodeParseUnexpectedEOF, CodeParseTooDeep:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
