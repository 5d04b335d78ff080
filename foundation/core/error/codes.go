// File: codes.go
// Title: Error Code Definitions
// Description: Error codes used across the front end, configuration, storage
//              and CLI layers.
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial code set

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Lexical analysis
	CodeLexInvalidToken       Code = "LEX_INVALID_TOKEN"
	CodeLexDisallowedChar     Code = "LEX_DISALLOWED_CHAR"
	CodeLexUnterminatedString Code = "LEX_UNTERMINATED_STRING"

	// Parsing
	CodeParseUnexpectedToken Code = "PARSE_UNEXPECTED_TOKEN"
	CodeParseUnexpectedEOF   Code = "PARSE_UNEXPECTED_EOF"
	CodeParseTooDeep         Code = "PARSE_TOO_DEEP"

	// Configuration
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeInvalidConfig Code = "INVALID_CONFIG"

	// Storage
	CodeStorageError Code = "STORAGE_ERROR"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeLexInvalidToken, CodeLexDisallowedChar, CodeLexUnterminatedString,
		CodeParseUnexpectedToken, CodeParseUnexpectedEOF, CodeParseTooDeep,
		CodeConfigError, CodeInvalidConfig,
		CodeStorageError:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeLexInvalidToken, CodeLexDisallowedChar, CodeLexUnterminatedString:
		return "lexer"
	case CodeParseUnexpectedToken, CodeParseUnexpectedEOF, CodeParseTooDeep:
		return "parser"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeStorageError:
		return "storage"
	default:
		return "generic"
	}
}

// IsSyntax reports whether the code describes a problem in user source text.
func (c Code) IsSyntax() bool {
	cat := c.Category()
	return cat == "lexer" || cat == "parser"
}
