// File: doc.go
// Title: Map Utilities Package Documentation
// Description: Package documentation for the mapx utility module
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial documentation

/*
Package mapx provides generic, type-safe map operations used across
boole packages for key extraction, copying, and comparison.

All functions treat their inputs as immutable and return new values.
A nil input yields a nil result where that is meaningful. Functions
returning slices make no ordering promise; sort the result when the
order matters.

# Usage

	model := map[string]bool{"a": true, "b": false}

	names := mapx.Keys(model)
	sort.Strings(names)
	// names == []string{"a", "b"}

	copy := mapx.Clone(model)
	same := mapx.Equal(model, copy)
	// same == true
*/
package mapx
