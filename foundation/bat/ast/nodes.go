// File: nodes.go
// Title: Boolean Expression AST Nodes
// Description: Defines the closed set of expression nodes produced by the
//              bat parser. Operator nodes carry a typed operator enum,
//              leaves are free variables or the constants 0/1. Trees are
//              immutable after construction.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial AST implementation

package ast

import (
	"fmt"

	boolestringx "github.com/msto63/boole/foundation/utils/stringx"
)

// Op identifies a boolean operator.
type Op int

const (
	// OpNot is logical negation (!), the only unary operator
	OpNot Op = iota

	// OpAnd is conjunction (&)
	OpAnd

	// OpXor is exclusive or (^)
	OpXor

	// OpOr is disjunction (|)
	OpOr

	// OpNor is negated disjunction (keyword nor)
	OpNor

	// OpNand is negated conjunction (keyword nand)
	OpNand

	// OpImplies is material implication (>)
	OpImplies

	// OpEquiv is equivalence (=)
	OpEquiv
)

// String returns the operator as it is written in expression source.
func (op Op) String() string {
	switch op {
	case OpNot:
		return "!"
	case OpAnd:
		return "&"
	case OpXor:
		return "^"
	case OpOr:
		return "|"
	case OpNor:
		return "nor"
	case OpNand:
		return "nand"
	case OpImplies:
		return ">"
	case OpEquiv:
		return "="
	default:
		return "UNKNOWN"
	}
}

// Name returns a descriptive operator name for diagnostics and logging.
func (op Op) Name() string {
	switch op {
	case OpNot:
		return "NOT"
	case OpAnd:
		return "AND"
	case OpXor:
		return "XOR"
	case OpOr:
		return "OR"
	case OpNor:
		return "NOR"
	case OpNand:
		return "NAND"
	case OpImplies:
		return "IMPLIES"
	case OpEquiv:
		return "EQUIV"
	default:
		return "UNKNOWN"
	}
}

// Unary reports whether the operator takes a single operand.
func (op Op) Unary() bool {
	return op == OpNot
}

// Binary reports whether the operator takes two operands.
func (op Op) Binary() bool {
	switch op {
	case OpAnd, OpXor, OpOr, OpNor, OpNand, OpImplies, OpEquiv:
		return true
	default:
		return false
	}
}

// Position describes where a node begins within its source line.
type Position struct {
	// Offset is the 0-based byte offset of the node's first token
	Offset int
}

// Column returns the 1-based column used in error messages.
func (p Position) Column() int {
	return p.Offset + 1
}

// String returns a human-readable position description.
func (p Position) String() string {
	return fmt.Sprintf("column %d", p.Column())
}

// Node is the base interface for all AST nodes.
type Node interface {
	// String returns a parenthesized source representation of the node
	String() string

	// Accept implements the visitor pattern
	Accept(visitor Visitor) interface{}

	// Position returns the node's position within its source line
	Position() Position

	// Validate checks the structural invariants of the node and its children
	Validate() error
}

// Expr is the interface implemented by all expression nodes. The
// unexported marker method closes the set: every implementation lives
// in this package, so evaluation can match exhaustively.
type Expr interface {
	Node
	exprNode()
}

// BinaryExpr applies a binary operator to two sub-expressions.
type BinaryExpr struct {
	Left  Expr
	Op    Op
	Right Expr
	Pos   Position
}

// String returns the fully parenthesized form, e.g. "((a & b) | c)".
func (e *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", e.Left, e.Op, e.Right)
}

// Accept implements the visitor pattern
func (e *BinaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitBinaryExpr(e)
}

// Position returns the position of the operator token
func (e *BinaryExpr) Position() Position {
	return e.Pos
}

// Validate checks that both operands are present and the operator is binary
func (e *BinaryExpr) Validate() error {
	if !e.Op.Binary() {
		return fmt.Errorf("operator %s cannot take two operands", e.Op.Name())
	}
	if e.Left == nil {
		return fmt.Errorf("binary %s expression is missing its left operand", e.Op)
	}
	if e.Right == nil {
		return fmt.Errorf("binary %s expression is missing its right operand", e.Op)
	}
	if err := e.Left.Validate(); err != nil {
		return err
	}
	return e.Right.Validate()
}

func (e *BinaryExpr) exprNode() {}

// UnaryExpr applies a unary operator to a sub-expression.
type UnaryExpr struct {
	Op   Op
	Expr Expr
	Pos  Position
}

// String returns the negated form, e.g. "!a" or "!(a & b)".
func (e *UnaryExpr) String() string {
	return fmt.Sprintf("%s%s", e.Op, e.Expr)
}

// Accept implements the visitor pattern
func (e *UnaryExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitUnaryExpr(e)
}

// Position returns the position of the operator token
func (e *UnaryExpr) Position() Position {
	return e.Pos
}

// Validate checks that the operand is present and the operator is unary
func (e *UnaryExpr) Validate() error {
	if !e.Op.Unary() {
		return fmt.Errorf("operator %s cannot take a single operand", e.Op.Name())
	}
	if e.Expr == nil {
		return fmt.Errorf("unary %s expression is missing its operand", e.Op)
	}
	return e.Expr.Validate()
}

func (e *UnaryExpr) exprNode() {}

// VarExpr is a free variable leaf.
type VarExpr struct {
	Name string
	Pos  Position
}

// String returns the variable name
func (e *VarExpr) String() string {
	return e.Name
}

// Accept implements the visitor pattern
func (e *VarExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitVarExpr(e)
}

// Position returns the position of the name token
func (e *VarExpr) Position() Position {
	return e.Pos
}

// Validate checks that the variable carries a name
func (e *VarExpr) Validate() error {
	if boolestringx.IsBlank(e.Name) {
		return fmt.Errorf("variable leaf has no name")
	}
	return nil
}

func (e *VarExpr) exprNode() {}

// ConstExpr is a constant truth value leaf, written as 0 or 1 in
// expression source. Constants are never free variables.
type ConstExpr struct {
	Value bool
	Pos   Position
}

// String returns the source form of the constant
func (e *ConstExpr) String() string {
	if e.Value {
		return "1"
	}
	return "0"
}

// Accept implements the visitor pattern
func (e *ConstExpr) Accept(visitor Visitor) interface{} {
	return visitor.VisitConstExpr(e)
}

// Position returns the position of the constant token
func (e *ConstExpr) Position() Position {
	return e.Pos
}

// Validate always succeeds, a constant has no invariants to break
func (e *ConstExpr) Validate() error {
	return nil
}

func (e *ConstExpr) exprNode() {}
