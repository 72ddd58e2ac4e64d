// File: doc.go
// Title: Boolean Expression AST Package Documentation
// Description: Defines the expression tree nodes for parsed boolean
//              expressions. Provides visitor patterns for rendering and
//              analysis.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial AST implementation

/*
Package ast defines the expression tree structures for parsed boolean
expressions.

The node set is closed: BinaryExpr, UnaryExpr, VarExpr and ConstExpr are
the only implementations of the Expr interface, which lets evaluation
match exhaustively over node kinds and operators. Trees are immutable
after parsing.

The AST enables:
  - Structured representation of boolean expressions
  - Free-variable collection for assignment enumeration
  - Indented tree rendering for expression inspection
  - Structural validation of parsed trees
*/
package ast
