// File: visitor.go
// Title: AST Visitor Pattern Implementation
// Description: Provides the visitor interface for expression tree
//              traversal together with the built-in visitors: the
//              indented tree renderer behind the --ast flag and the
//              free-variable collector feeding the solver.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial visitor implementation

package ast

import (
	"sort"
	"strings"

	booleslicex "github.com/msto63/boole/foundation/utils/slicex"
)

// Visitor defines the visitor pattern interface for expression trees.
type Visitor interface {
	VisitBinaryExpr(expr *BinaryExpr) interface{}
	VisitUnaryExpr(expr *UnaryExpr) interface{}
	VisitVarExpr(expr *VarExpr) interface{}
	VisitConstExpr(expr *ConstExpr) interface{}
}

// BaseVisitor provides a default implementation that walks children and
// returns nil. Note that dispatch through an embedded BaseVisitor stays
// on the base type, so visitors that rely on traversal must implement
// every method themselves.
type BaseVisitor struct{}

// VisitBinaryExpr visits both operands
func (v *BaseVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	if expr.Left != nil {
		expr.Left.Accept(v)
	}
	if expr.Right != nil {
		expr.Right.Accept(v)
	}
	return nil
}

// VisitUnaryExpr visits the operand
func (v *BaseVisitor) VisitUnaryExpr(expr *UnaryExpr) interface{} {
	if expr.Expr != nil {
		expr.Expr.Accept(v)
	}
	return nil
}

// VisitVarExpr does nothing by default
func (v *BaseVisitor) VisitVarExpr(expr *VarExpr) interface{} {
	return nil
}

// VisitConstExpr does nothing by default
func (v *BaseVisitor) VisitConstExpr(expr *ConstExpr) interface{} {
	return nil
}

// StringVisitor renders an expression tree in the indented node/leaf
// format printed by the --ast flag:
//
//	- node: &
//	  - node: var
//	    - value: a
//	  - node: var
//	    - value: b
//
// Operator nodes show the operator as written in source, leaves show
// their value one level deeper. Indentation is two spaces per depth.
type StringVisitor struct {
	BaseVisitor
	buffer strings.Builder
	indent int
}

// NewStringVisitor creates a new tree renderer
func NewStringVisitor() *StringVisitor {
	return &StringVisitor{}
}

// VisitBinaryExpr renders the operator and both operands
func (v *StringVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	v.writeNode(expr.Op.String())
	v.indent++
	if expr.Left != nil {
		expr.Left.Accept(v)
	}
	if expr.Right != nil {
		expr.Right.Accept(v)
	}
	v.indent--
	return nil
}

// VisitUnaryExpr renders the operator and its operand
func (v *StringVisitor) VisitUnaryExpr(expr *UnaryExpr) interface{} {
	v.writeNode(expr.Op.String())
	v.indent++
	if expr.Expr != nil {
		expr.Expr.Accept(v)
	}
	v.indent--
	return nil
}

// VisitVarExpr renders a variable leaf
func (v *StringVisitor) VisitVarExpr(expr *VarExpr) interface{} {
	v.writeLeaf(expr.Name)
	return nil
}

// VisitConstExpr renders a constant leaf in source form (0 or 1),
// tagged like a variable leaf so dumps stay comparable across versions
func (v *StringVisitor) VisitConstExpr(expr *ConstExpr) interface{} {
	v.writeLeaf(expr.String())
	return nil
}

// Result returns the rendered tree
func (v *StringVisitor) Result() string {
	return v.buffer.String()
}

// Reset clears the visitor for reuse
func (v *StringVisitor) Reset() {
	v.buffer.Reset()
	v.indent = 0
}

// writeNode emits "- node: <label>" at the current indentation
func (v *StringVisitor) writeNode(label string) {
	v.writeIndent(v.indent)
	v.buffer.WriteString("- node: ")
	v.buffer.WriteString(label)
	v.buffer.WriteString("\n")
}

// writeLeaf emits a leaf node line followed by its value one level deeper
func (v *StringVisitor) writeLeaf(value string) {
	v.writeNode("var")
	v.writeIndent(v.indent + 1)
	v.buffer.WriteString("- value: ")
	v.buffer.WriteString(value)
	v.buffer.WriteString("\n")
}

// writeIndent emits two spaces per depth level
func (v *StringVisitor) writeIndent(depth int) {
	for i := 0; i < depth; i++ {
		v.buffer.WriteString("  ")
	}
}

// CollectorVisitor walks expression trees and records their parts:
// every variable occurrence in traversal order, every constant and
// every operator. One collector may visit several trees in a row to
// gather the union of an expression set.
type CollectorVisitor struct {
	BaseVisitor
	Variables []string
	Constants []bool
	Operators []Op
}

// NewCollectorVisitor creates a new collector
func NewCollectorVisitor() *CollectorVisitor {
	return &CollectorVisitor{}
}

// VisitBinaryExpr records the operator and descends into both operands
func (v *CollectorVisitor) VisitBinaryExpr(expr *BinaryExpr) interface{} {
	v.Operators = append(v.Operators, expr.Op)
	if expr.Left != nil {
		expr.Left.Accept(v)
	}
	if expr.Right != nil {
		expr.Right.Accept(v)
	}
	return nil
}

// VisitUnaryExpr records the operator and descends into the operand
func (v *CollectorVisitor) VisitUnaryExpr(expr *UnaryExpr) interface{} {
	v.Operators = append(v.Operators, expr.Op)
	if expr.Expr != nil {
		expr.Expr.Accept(v)
	}
	return nil
}

// VisitVarExpr records a variable occurrence
func (v *CollectorVisitor) VisitVarExpr(expr *VarExpr) interface{} {
	v.Variables = append(v.Variables, expr.Name)
	return nil
}

// VisitConstExpr records a constant occurrence
func (v *CollectorVisitor) VisitConstExpr(expr *ConstExpr) interface{} {
	v.Constants = append(v.Constants, expr.Value)
	return nil
}

// Reset clears all collected data
func (v *CollectorVisitor) Reset() {
	v.Variables = nil
	v.Constants = nil
	v.Operators = nil
}

// TreeString renders an expression in the indented node/leaf format.
func TreeString(expr Expr) string {
	if expr == nil {
		return ""
	}
	visitor := NewStringVisitor()
	expr.Accept(visitor)
	return visitor.Result()
}

// Variables returns the free variables of the given expressions,
// deduplicated and sorted ascending in byte order. Constants do not
// count as variables. The sorted order is what fixes the bit order of
// the solver's enumeration, so it must stay deterministic.
func Variables(exprs ...Expr) []string {
	collector := NewCollectorVisitor()
	for _, expr := range exprs {
		if expr != nil {
			expr.Accept(collector)
		}
	}

	names := booleslicex.Unique(collector.Variables)
	sort.Strings(names)
	return names
}
