// File: doc.go
// Title: File Utilities Package Documentation
// Description: Package documentation for the filex utility module
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial documentation

/*
Package filex provides file system helpers used by boole for reading
expression input files.

The existence checks (Exists, IsFile, IsDir, IsReadable) never return
errors; they answer a yes/no question so callers can produce their own
domain errors. The reading helpers wrap failures with the offending
path for context.

# Usage

	if !filex.IsFile(path) || !filex.IsReadable(path) {
		return fmt.Errorf("unable to open file '%s'", path)
	}

	lines, err := filex.ReadLines(path)
	if err != nil {
		return err
	}
*/
package filex
