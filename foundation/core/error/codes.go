// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the boole solver. These codes separate
//              user mistakes (usage, file access, syntax) from configuration
//              problems and internal failures.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the boole solver
const (
	// Generic codes
	CodeUnknown  Code = "UNKNOWN"
	CodeInternal Code = "INTERNAL"

	// Command-line surface: every member of this group is fatal to a run
	CodeUsage      Code = "USAGE"
	CodeFileAccess Code = "FILE_ACCESS"
	CodeSyntax     Code = "SYNTAX"

	// Expression engine
	CodeEvaluation Code = "EVALUATION"
	CodeValidation Code = "VALIDATION_FAILED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal,
		CodeUsage, CodeFileAccess, CodeSyntax,
		CodeEvaluation, CodeValidation,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUsage, CodeFileAccess, CodeSyntax:
		return "cli"
	case CodeEvaluation, CodeValidation:
		return "engine"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}

// IsFatal reports whether an error carrying this code terminates a solver run.
// Every categorized failure is fatal; only unknown plain errors leave room for
// the caller to decide.
func (c Code) IsFatal() bool {
	return c != CodeUnknown
}
