// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and log-level mapping. User mistakes rank low,
//              configuration problems medium, broken invariants critical.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a routine user mistake
	// Examples: bad invocation, unreadable file, malformed expression
	SeverityLow Severity = iota

	// SeverityMedium indicates a problem in the environment or setup
	// Examples: malformed configuration file, unsupported option value
	SeverityMedium

	// SeverityHigh indicates misuse of the library surface
	// Examples: evaluating against an incomplete model
	SeverityHigh

	// SeverityCritical indicates a broken internal invariant
	// Examples: malformed expression tree after parsing
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

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeEvaluation:
		return SeverityHigh

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium

	case CodeUsage, CodeFileAccess, CodeSyntax, CodeValidation:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
