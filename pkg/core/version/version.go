// ============================================================================
// boole - Boolean Algebra Terms Solver
// ============================================================================
//
// Package:     version
// Description: Central version management for the boole tool
// Author:      Mike Stoffels with Claude
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

// Version constants for the boole tool and its components
const (
	// Tool version
	Tool = "1.0.0"

	// Component versions
	Engine = "1.0.0"
	Parser = "1.0.0"
	Solver = "1.0.0"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "engine":
		return Engine
	case "parser":
		return Parser
	case "solver":
		return Solver
	default:
		return Tool
	}
}
