// File: doc.go
// Title: Solver Package Documentation
// Description: Provides exhaustive assignment enumeration and expression
//              evaluation for sets of boolean expression trees.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial solver implementation

/*
Package solver enumerates all truth-value assignments for the free
variables of an expression set and reports the satisfying ones.

The variable list is the sorted union over all expressions. Enumeration
starts with every variable false and counts upward in binary, the first
(lexicographically smallest) variable acting as the least significant
bit. n variables therefore produce exactly 2^n assignments in a
deterministic order; zero variables produce the single empty assignment.

An assignment is a solution when every expression of the set evaluates
to true. Solve stops evaluating an assignment at the first false
expression; Enumerate always computes every expression so its callback
sees the complete row, which is what a truth table needs.

	s, err := solver.New(exprs)
	if err != nil {
	    return err
	}
	result := s.Solve()
	for _, model := range result.Models {
	    fmt.Println(model)
	}

Evaluate computes a single expression against an explicit model and is
independent of enumeration.
*/
package solver
