// Package error provides the structured error type shared by the inside tooling.
//
// Package: error
// Title: Structured Error Handling
// Description: Coded, severity-ranked errors with details and operation context.
//              Positioned source diagnostics live in lang/diag and convert into
//              this type when they leave the front end (logging, CLI output).
// Author: dipakw
// Version: v0.1.0
// Created: 2026-10-19
// Modified: 2026-10-19
//
// Change History:
// - 2026-10-19 v0.1.0: Initial implementation with codes, severities and wrapping
//
// Usage:
//
//	import mdwerror "github.com/dipakw/inside/foundation/core/error"
//
//	err := mdwerror.New("config file not found").
//		WithCode(mdwerror.CodeNotFound).
//		WithOperation("config.Load").
//		WithDetail("filePath", path)
//
//	if mdwerror.HasCode(err, mdwerror.CodeNotFound) {
//		// fall back to defaults
//	}
package error
