// File: doc.go
// Title: String Utilities Package Documentation
// Description: Package documentation for the stringx utility module
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial documentation

/*
Package stringx provides string utilities that extend the Go standard
library with operations commonly needed across boole packages.

All functions are Unicode-safe and allocation conscious. ASCII inputs
take optimized fast paths where that matters, for example in padding.

# Highlights

  - Emptiness and blankness checks (IsEmpty, IsBlank and inverses)
  - Unicode-aware truncation with ellipsis support
  - Left and right padding for aligned text output
  - Line splitting that normalizes \r\n and \r endings
  - Default value chains (FirstNonEmpty, FirstNonBlank)
  - String interning for high-frequency strings such as variable names

# Usage

	if stringx.IsBlank(line) {
		continue // skip empty input lines
	}

	name := stringx.Intern(token.Value)
	excerpt := stringx.Truncate(expression, 60, "...")
*/
package stringx
