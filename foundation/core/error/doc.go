// Package error provides structured error handling for the boole solver.
//
// Package: error
// Title: boole Structured Error Framework
// Description: This package implements a rich error type with codes,
//              severities, details, and stack traces while staying compatible
//              with Go's standard error interface and errors.Is/As chains.
//              The code set separates user mistakes (usage, file access,
//              syntax) from configuration problems and internal failures so
//              the command-line boundary can report and exit uniformly.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation with coded errors
//
// Features:
// - Structured errors with codes, severities, and key-value details
// - Error wrapping with chain-depth protection
// - Stack trace capture for debugging
// - JSON marshaling for structured logging
// - Severity derivation from error codes
//
// Usage:
//   import booleerror "github.com/msto63/boole/foundation/core/error"
//
//   // Create a coded error
//   err := booleerror.New("expected ')' but found end of input").
//     WithCode(booleerror.CodeSyntax).
//     WithDetail("line", 3).
//     WithOperation("parse")
//
//   // Wrap an underlying error
//   err = booleerror.Wrap(ioErr, "unable to open file").
//     WithCode(booleerror.CodeFileAccess)
//
//   // Inspect at the boundary
//   if booleerror.HasCode(err, booleerror.CodeSyntax) {
//     // report and exit nonzero
//   }
package error
