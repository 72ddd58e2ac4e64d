// Package log provides structured logging capabilities for the boole solver.
//
// Package: log
// Title: boole Structured Logging Framework
// Description: This package implements a structured logging system with run
//              context, multiple output formats, log levels, and tight
//              integration with the boole error handling system. It supports
//              performance timing for the parse and solve phases while keeping
//              diagnostics on stderr so result output owns stdout.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - Structured logging with JSON, text, console, and logfmt formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with run IDs and custom fields
// - Integration with the boole error system for automatic error logging
// - Performance metrics and timing measurements with checkpoints
// - Diagnostics default to stderr, leaving stdout to solver results
//
// Usage:
//   import boolelog "github.com/msto63/boole/foundation/core/log"
//
//   // Create a logger with context
//   logger := log.New().
//     WithLevel(log.LevelDebug).
//     WithFormat(log.FormatText).
//     WithName("solver").
//     WithRunID("3f2c8a1e")
//
//   // Log messages with different levels
//   logger.Info("expressions parsed", log.Int("expressions", 3))
//   logger.Error("input rejected", log.Err(err))
//   logger.Debug("enumerating assignments", log.Fields{
//     "variables": 4,
//     "space":     16,
//   })
//
//   // Log performance metrics
//   timer := logger.StartTimer("solve")
//   // ... enumerate assignments
//   timer.Checkpoint("parse")
//   timer.Stop()
package log
