// File: bat.go
// Title: BAT Engine Interface
// Description: Provides the main engine for working with sets of boolean
//              algebra terms: parsing expression lines into trees and
//              solving the resulting set by exhaustive assignment
//              enumeration. Integrates parser, AST, and solver.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial engine implementation

package bat

import (
	"bufio"
	"io"

	booleerror "github.com/msto63/boole/foundation/core/error"
	boolelog "github.com/msto63/boole/foundation/core/log"
	boolestringx "github.com/msto63/boole/foundation/utils/stringx"

	"github.com/msto63/boole/foundation/bat/ast"
	"github.com/msto63/boole/foundation/bat/parser"
	"github.com/msto63/boole/foundation/bat/solver"
)

// Engine coordinates parsing and solving of boolean expression sets
type Engine struct {
	parser  *parser.Parser
	logger  *boolelog.Logger
	options Options
}

// Options configures the engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to the default logger)
	Logger *boolelog.Logger

	// MaxLineLength limits the length of a single expression line (default: 4096)
	MaxLineLength int
}

// NewEngine creates a new engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	options := Options{
		Logger:        boolelog.GetDefault(),
		MaxLineLength: 4096,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxLineLength > 0 {
			options.MaxLineLength = provided.MaxLineLength
		}
	}

	logger := options.Logger.WithField("component", "bat-engine")

	engine := &Engine{
		parser: parser.New(parser.Options{
			Logger:         logger,
			MaxInputLength: options.MaxLineLength,
		}),
		logger:  logger,
		options: options,
	}

	engine.logger.Debug("bat engine initialized", boolelog.Fields{
		"maxLineLength": options.MaxLineLength,
	})

	return engine, nil
}

// Parse parses a single expression line into a tree. Blank input is
// rejected; when reading whole files use ParseReader, which skips
// blank lines instead.
func (e *Engine) Parse(line string) (ast.Expr, error) {
	if boolestringx.IsBlank(line) {
		return nil, booleerror.New("expression line is blank").
			WithCode(booleerror.CodeValidation).
			WithOperation("bat.Parse")
	}

	expr, err := e.parser.Parse(line)
	if err != nil {
		return nil, booleerror.Wrap(err, "invalid expression").
			WithCode(booleerror.CodeSyntax).
			WithOperation("bat.Parse").
			WithDetail("expression", boolestringx.Truncate(line, 80, "..."))
	}

	return expr, nil
}

// Validate checks a single line for syntax errors without keeping the tree
func (e *Engine) Validate(line string) error {
	_, err := e.Parse(line)
	return err
}

// ParseReader reads expression lines from r and parses every non-blank
// line into one tree. Blank lines are skipped. The first syntax error
// aborts the whole read and carries the 1-based line number.
func (e *Engine) ParseReader(r io.Reader) ([]ast.Expr, error) {
	scanner := bufio.NewScanner(r)

	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, booleerror.Wrap(err, "reading expression input failed").
			WithCode(booleerror.CodeFileAccess).
			WithOperation("bat.ParseReader")
	}

	return e.parseLines(lines)
}

// ParseString parses a whole multi-line input in one call. Like
// ParseReader it skips blank lines and numbers syntax errors.
func (e *Engine) ParseString(input string) ([]ast.Expr, error) {
	return e.parseLines(boolestringx.SplitLines(input))
}

// parseLines parses each non-blank line, attaching 1-based line numbers
// to syntax errors
func (e *Engine) parseLines(lines []string) ([]ast.Expr, error) {
	var exprs []ast.Expr

	for i, line := range lines {
		if boolestringx.IsBlank(line) {
			continue
		}

		expr, err := e.parser.Parse(line)
		if err != nil {
			return nil, booleerror.Wrapf(err, "line %d: invalid expression", i+1).
				WithCode(booleerror.CodeSyntax).
				WithOperation("bat.ParseReader").
				WithDetail("line", i+1).
				WithDetail("expression", boolestringx.Truncate(line, 80, "..."))
		}

		exprs = append(exprs, expr)
	}

	e.logger.Debug("Expression set parsed", boolelog.Fields{
		"lines":       len(lines),
		"expressions": len(exprs),
	})

	return exprs, nil
}

// NewSolver builds a solver over the given expression set, sharing the
// engine's logger. Use it when enumeration control is needed, for
// example for truth tables.
func (e *Engine) NewSolver(exprs []ast.Expr) (*solver.Solver, error) {
	return solver.New(exprs, solver.Options{Logger: e.logger})
}

// Solve enumerates all assignments for the given expression set and
// returns the satisfying ones
func (e *Engine) Solve(exprs []ast.Expr) (*solver.Result, error) {
	s, err := e.NewSolver(exprs)
	if err != nil {
		return nil, err
	}
	return s.Solve(), nil
}

// SolveReader parses all expressions from r and solves the set
func (e *Engine) SolveReader(r io.Reader) (*solver.Result, error) {
	timer := e.logger.StartTimer("bat_run")

	exprs, err := e.ParseReader(r)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	timer.Checkpoint("parsed", boolelog.Fields{
		"expressions": len(exprs),
	})

	result, err := e.Solve(exprs)
	if err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	timer.WithFields(boolelog.Fields{
		"tested":    result.Tested,
		"solutions": result.Count(),
	}).Stop()

	return result, nil
}
