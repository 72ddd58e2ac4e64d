// File: doc.go
// Title: Slice Utilities Package Documentation
// Description: Package documentation for the slicex utility module
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial documentation

/*
Package slicex provides generic, type-safe slice operations used across
boole packages for filtering, transformation, deduplication, and lookup.

All functions treat their inputs as immutable and return new slices.
A nil input yields a nil result where that is meaningful.

# Usage

	names := slicex.Unique([]string{"b", "a", "b", "c"})
	// names == []string{"b", "a", "c"}

	idx := slicex.IndexOf(names, "a")
	// idx == 1

	pairs := slicex.Map(names, func(n string) string {
		return n + "=true"
	})
*/
package slicex
