// File: solver.go
// Title: Expression Set Solver
// Description: Implements evaluation of expression trees and exhaustive
//              enumeration of all variable assignments for a set of
//              expressions. An assignment is a solution when every
//              expression of the set evaluates to true.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial solver implementation

package solver

import (
	"fmt"
	"math"
	"time"

	booleerror "github.com/msto63/boole/foundation/core/error"
	boolelog "github.com/msto63/boole/foundation/core/log"
	booleslicex "github.com/msto63/boole/foundation/utils/slicex"

	"github.com/msto63/boole/foundation/bat/ast"
)

// Model maps variable names to truth values
type Model map[string]bool

// Options configures solver behavior
type Options struct {
	// Logger for solver operations (optional, defaults to the default logger)
	Logger *boolelog.Logger
}

// Result holds the outcome of a completed enumeration
type Result struct {
	// Models lists the satisfying assignments in enumeration order
	Models []Model

	// Tested is the number of assignments visited, always 2^n
	Tested uint64

	// Elapsed is the wall-clock enumeration time
	Elapsed time.Duration
}

// Count returns the number of satisfying assignments
func (r *Result) Count() int {
	return len(r.Models)
}

// IsEmpty returns true when no assignment satisfies the set
func (r *Result) IsEmpty() bool {
	return len(r.Models) == 0
}

// String summarizes the result
func (r *Result) String() string {
	return fmt.Sprintf("%d of %d assignments satisfy the set (%v)", len(r.Models), r.Tested, r.Elapsed)
}

// Solver enumerates variable assignments for a fixed expression set
type Solver struct {
	exprs      []ast.Expr
	assignment *Assignment
	logger     *boolelog.Logger
	options    Options
}

// New creates a solver over the given expression set. Every expression
// is validated up front; the free variables of the whole set span the
// enumeration space. An empty set is legal and has the single empty
// assignment as its only (vacuous) solution.
func New(exprs []ast.Expr, opts ...Options) (*Solver, error) {
	options := Options{}
	if len(opts) > 0 && opts[0].Logger != nil {
		options.Logger = opts[0].Logger
	}
	if options.Logger == nil {
		options.Logger = boolelog.GetDefault()
	}

	for i, expr := range exprs {
		if expr == nil {
			return nil, booleerror.Newf("expression %d is nil", i+1).
				WithCode(booleerror.CodeValidation).
				WithOperation("solver.New")
		}
		if err := expr.Validate(); err != nil {
			return nil, booleerror.Wrapf(err, "expression %d is invalid", i+1).
				WithCode(booleerror.CodeValidation).
				WithOperation("solver.New").
				WithDetail("expression", expr.String())
		}
	}

	variables := ast.Variables(exprs...)

	solver := &Solver{
		exprs:      booleslicex.Clone(exprs),
		assignment: NewAssignment(variables),
		logger:     options.Logger.WithField("component", "bat-solver"),
		options:    options,
	}

	solver.logger.Debug("Solver initialized", boolelog.Fields{
		"expressions": len(exprs),
		"variables":   len(variables),
	})

	return solver, nil
}

// Variables returns the sorted free variables of the expression set
func (s *Solver) Variables() []string {
	return s.assignment.Names()
}

// Expressions returns the expression set in input order
func (s *Solver) Expressions() []ast.Expr {
	return booleslicex.Clone(s.exprs)
}

// Space returns the number of assignments to enumerate, 2^n for n
// variables. The value saturates beyond 63 variables; the enumeration
// itself never computes it.
func (s *Solver) Space() uint64 {
	n := s.assignment.Len()
	if n >= 64 {
		return math.MaxUint64
	}
	return uint64(1) << n
}

// Solve enumerates every assignment in numeric order and collects the
// ones satisfying all expressions. Within one assignment evaluation
// stops at the first expression that comes out false.
func (s *Solver) Solve() *Result {
	timer := s.logger.StartTimer("bat_solve")

	s.assignment.Reset()

	result := &Result{}
	for {
		result.Tested++

		if s.satisfied() {
			result.Models = append(result.Models, s.assignment.Model())
		}

		if !s.assignment.Next() {
			break
		}
	}

	result.Elapsed = timer.WithFields(boolelog.Fields{
		"tested":    result.Tested,
		"solutions": len(result.Models),
	}).Stop()

	return result
}

// Enumerate visits every assignment in enumeration order and calls fn
// with the assignment and the per-expression truth values. Unlike
// Solve it always evaluates every expression, which makes it suitable
// for truth tables. Enumeration stops early when fn returns false.
// It returns the number of assignments visited.
func (s *Solver) Enumerate(fn func(a *Assignment, results []bool) bool) uint64 {
	s.assignment.Reset()

	results := make([]bool, len(s.exprs))
	var visited uint64

	for {
		visited++

		for i, expr := range s.exprs {
			results[i] = evalExpr(expr, s.assignment.values, s.assignment.index)
		}

		if !fn(s.assignment, results) {
			return visited
		}
		if !s.assignment.Next() {
			return visited
		}
	}
}

// satisfied reports whether the current assignment makes every
// expression of the set true
func (s *Solver) satisfied() bool {
	for _, expr := range s.exprs {
		if !evalExpr(expr, s.assignment.values, s.assignment.index) {
			return false
		}
	}
	return true
}

// Evaluate computes the truth value of a single expression under the
// given model. Every free variable of the expression must be bound in
// the model.
func Evaluate(expr ast.Expr, model Model) (bool, error) {
	if expr == nil {
		return false, booleerror.New("expression is nil").
			WithCode(booleerror.CodeValidation).
			WithOperation("solver.Evaluate")
	}
	if err := expr.Validate(); err != nil {
		return false, booleerror.Wrap(err, "expression is invalid").
			WithCode(booleerror.CodeValidation).
			WithOperation("solver.Evaluate")
	}

	variables := ast.Variables(expr)
	values := make([]bool, len(variables))
	index := make(map[string]int, len(variables))

	for i, name := range variables {
		value, ok := model[name]
		if !ok {
			return false, booleerror.Newf("variable '%s' is not bound in the model", name).
				WithCode(booleerror.CodeEvaluation).
				WithOperation("solver.Evaluate").
				WithDetail("variable", name)
		}
		values[i] = value
		index[name] = i
	}

	return evalExpr(expr, values, index), nil
}

// evalExpr computes the truth value of expr under the given variable
// values. Both operands of a binary node are always evaluated; there is
// no short-circuit inside a tree. The node set is closed and trees are
// validated before evaluation, so the default branches are unreachable.
func evalExpr(expr ast.Expr, values []bool, index map[string]int) bool {
	switch e := expr.(type) {
	case *ast.ConstExpr:
		return e.Value

	case *ast.VarExpr:
		return values[index[e.Name]]

	case *ast.UnaryExpr:
		return !evalExpr(e.Expr, values, index)

	case *ast.BinaryExpr:
		left := evalExpr(e.Left, values, index)
		right := evalExpr(e.Right, values, index)

		switch e.Op {
		case ast.OpAnd:
			return left && right
		case ast.OpXor:
			return left != right
		case ast.OpOr:
			return left || right
		case ast.OpNor:
			return !(left || right)
		case ast.OpNand:
			return !(left && right)
		case ast.OpImplies:
			return !left || right
		case ast.OpEquiv:
			return left == right
		default:
			panic(fmt.Sprintf("unhandled binary operator %q", e.Op.Name()))
		}

	default:
		panic(fmt.Sprintf("unhandled expression node %T", expr))
	}
}
