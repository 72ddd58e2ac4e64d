// File: doc.go
// Title: Boolean Expression Parser Package Documentation
// Description: Provides lexical analysis and recursive-descent parsing
//              of infix boolean expressions into expression trees.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial parser implementation

/*
Package parser implements lexing and parsing of boolean expression lines.

# Syntax

One line holds one expression. Variables are runs of letters, digits and
underscores; 0 and 1 are the constants false and true. Operators in
order of precedence, loosest first:

	=             equivalence
	| nor nand >  disjunction, negated forms, implication
	& ^           conjunction, exclusive-or
	!             negation (binds tightest)

All binary operators are left-associative, so a = b = c parses as
((a = b) = c). The keywords nor and nand match case-insensitively;
parentheses group as usual.

# Usage

	p := parser.New()
	expr, err := p.Parse("(a | b) & !c")
	if err != nil {
	    var parseErr *parser.ParseError
	    if errors.As(err, &parseErr) {
	        fmt.Println(parseErr.Pos, parseErr.Message)
	    }
	}

The lexer never fails: unknown characters become symbol tokens and the
parser reports them as syntax errors with a 1-based column. A line that
parses but has tokens left over (for example "a b") is also rejected,
since that almost always means a missing operator.
*/
package parser
