// File: parser.go
// Title: Boolean Expression Parser
// Description: Implements recursive-descent parsing of infix boolean
//              expressions with single-token lookahead. Three binary
//              precedence tiers (equivalence lowest, then disjunction
//              and implication, then conjunction and exclusive-or) are
//              all left-associative; negation binds tightest.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"

	boolelog "github.com/msto63/boole/foundation/core/log"
	boolestringx "github.com/msto63/boole/foundation/utils/stringx"

	"github.com/msto63/boole/foundation/bat/ast"
)

// Options configures parser behavior
type Options struct {
	// Logger for parser operations (optional, defaults to the default logger)
	Logger *boolelog.Logger

	// MaxInputLength limits expression line length in bytes (default: 4096)
	MaxInputLength int
}

// ParseError describes a syntax error within one expression line
type ParseError struct {
	// Message names what was expected or found
	Message string

	// Pos is the 0-based byte offset of the offending token
	Pos int

	// Token is the offending token; an EOF token when input ended early
	Token Token
}

// Error implements the error interface. The column is 1-based; for an
// early end of input it points just past the last character.
func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error at column %d: %s", e.Pos+1, e.Message)
}

// Parser parses boolean expression lines into expression trees
type Parser struct {
	lexer   *Lexer
	current Token
	logger  *boolelog.Logger
	options Options
}

// New creates a new parser with the given options
func New(opts ...Options) *Parser {
	options := Options{
		MaxInputLength: 4096,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxInputLength > 0 {
			options.MaxInputLength = provided.MaxInputLength
		}
	}
	if options.Logger == nil {
		options.Logger = boolelog.GetDefault()
	}

	return &Parser{
		logger:  options.Logger.WithField("component", "bat-parser"),
		options: options,
	}
}

// Parse parses a single expression line into a tree. The line must hold
// exactly one expression: tokens left over after a complete parse are a
// syntax error (usually a missing operator between two terms).
func (p *Parser) Parse(input string) (ast.Expr, error) {
	if len(input) > p.options.MaxInputLength {
		return nil, &ParseError{
			Message: fmt.Sprintf("expression exceeds maximum length (%d > %d)", len(input), p.options.MaxInputLength),
			Pos:     p.options.MaxInputLength,
		}
	}

	p.lexer = NewLexer(input)
	p.current = Token{}
	p.advance()

	p.logger.Debug("Parsing boolean expression", boolelog.Fields{
		"input":  boolestringx.Truncate(input, 80, "..."),
		"length": len(input),
	})

	expr, err := p.parseEquivExpr()
	if err != nil {
		p.logger.Warn("Expression parsing failed", boolelog.Fields{
			"input": boolestringx.Truncate(input, 80, "..."),
			"error": err.Error(),
		})
		return nil, err
	}

	if p.current.Type != TokenEOF {
		err := p.parseError(fmt.Sprintf("unexpected %s after complete expression (missing operator?)", describeToken(p.current)))
		p.logger.Warn("Expression parsing failed", boolelog.Fields{
			"input": boolestringx.Truncate(input, 80, "..."),
			"error": err.Error(),
		})
		return nil, err
	}

	p.logger.Debug("Expression parsed", boolelog.Fields{
		"expression": expr.String(),
	})

	return expr, nil
}

// parseEquivExpr parses the lowest precedence tier: equivalence chains
func (p *Parser) parseEquivExpr() (ast.Expr, error) {
	left, err := p.parseJunctionExpr()
	if err != nil {
		return nil, err
	}

	for p.current.Type == TokenEquiv {
		pos := ast.Position{Offset: p.current.Pos}
		p.advance()

		right, err := p.parseJunctionExpr()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{Left: left, Op: ast.OpEquiv, Right: right, Pos: pos}
	}

	return left, nil
}

// parseJunctionExpr parses the middle tier: disjunction, its negated
// keyword forms, and implication
func (p *Parser) parseJunctionExpr() (ast.Expr, error) {
	left, err := p.parseTermExpr()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.Op
		switch p.current.Type {
		case TokenOr:
			op = ast.OpOr
		case TokenNor:
			op = ast.OpNor
		case TokenNand:
			op = ast.OpNand
		case TokenImplies:
			op = ast.OpImplies
		default:
			return left, nil
		}

		pos := ast.Position{Offset: p.current.Pos}
		p.advance()

		right, err := p.parseTermExpr()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{Left: left, Op: op, Right: right, Pos: pos}
	}
}

// parseTermExpr parses the tight tier: conjunction and exclusive-or
func (p *Parser) parseTermExpr() (ast.Expr, error) {
	left, err := p.parseUnaryExpr()
	if err != nil {
		return nil, err
	}

	for {
		var op ast.Op
		switch p.current.Type {
		case TokenAnd:
			op = ast.OpAnd
		case TokenXor:
			op = ast.OpXor
		default:
			return left, nil
		}

		pos := ast.Position{Offset: p.current.Pos}
		p.advance()

		right, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}

		left = &ast.BinaryExpr{Left: left, Op: op, Right: right, Pos: pos}
	}
}

// parseUnaryExpr parses negations. Negation binds tighter than every
// binary operator and nests directly, so !!a and !(a | b) both work.
func (p *Parser) parseUnaryExpr() (ast.Expr, error) {
	if p.current.Type == TokenNot {
		pos := ast.Position{Offset: p.current.Pos}
		p.advance()

		operand, err := p.parseUnaryExpr()
		if err != nil {
			return nil, err
		}

		return &ast.UnaryExpr{Op: ast.OpNot, Expr: operand, Pos: pos}, nil
	}

	return p.parsePrimaryExpr()
}

// parsePrimaryExpr parses parenthesized groups and leaves. The word
// tokens 0 and 1 become constants, every other word is a variable.
func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	switch p.current.Type {
	case TokenLeftParen:
		p.advance()

		expr, err := p.parseEquivExpr()
		if err != nil {
			return nil, err
		}

		if p.current.Type != TokenRightParen {
			return nil, p.parseError(fmt.Sprintf("expected ')', got %s", describeToken(p.current)))
		}
		p.advance()

		return expr, nil

	case TokenIdentifier:
		token := p.current
		p.advance()

		pos := ast.Position{Offset: token.Pos}
		switch token.Value {
		case "0":
			return &ast.ConstExpr{Value: false, Pos: pos}, nil
		case "1":
			return &ast.ConstExpr{Value: true, Pos: pos}, nil
		}

		// Variable names repeat heavily across an expression set, so
		// intern them and share one string per name.
		return &ast.VarExpr{Name: boolestringx.Intern(token.Value), Pos: pos}, nil

	default:
		return nil, p.parseError(fmt.Sprintf("expected expression, got %s", describeToken(p.current)))
	}
}

// advance moves to the next token
func (p *Parser) advance() {
	p.current = p.lexer.NextToken()
}

// parseError creates a ParseError at the current token
func (p *Parser) parseError(message string) *ParseError {
	return &ParseError{
		Message: message,
		Pos:     p.current.Pos,
		Token:   p.current,
	}
}

// describeToken names a token for error messages
func describeToken(token Token) string {
	if token.Type == TokenEOF {
		return "end of input"
	}
	return fmt.Sprintf("'%s'", token.Value)
}

// ParseExpression parses a single line with a default parser
func ParseExpression(input string) (ast.Expr, error) {
	return New().Parse(input)
}
