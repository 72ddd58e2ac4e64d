// File: assignment.go
// Title: Variable Assignment Counter
// Description: Implements the truth-value assignment over a sorted
//              variable list. The assignment acts as a binary counter:
//              the first variable is the least significant bit, so
//              advancing it walks all 2^n combinations in numeric order.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial assignment implementation

package solver

import (
	"fmt"
	"sort"
	"strings"

	booleslicex "github.com/msto63/boole/foundation/utils/slicex"
)

// Assignment is one row of the enumeration: a truth value for every
// free variable. Variables are kept sorted ascending; the first one is
// the least significant bit of the counter, so it flips fastest.
type Assignment struct {
	names  []string
	values []bool
	index  map[string]int
}

// NewAssignment creates an all-false assignment over the given variable
// names. The names are copied, deduplicated and sorted, so callers may
// pass raw collector output.
func NewAssignment(names []string) *Assignment {
	sorted := booleslicex.Unique(names)
	sort.Strings(sorted)

	index := make(map[string]int, len(sorted))
	for i, name := range sorted {
		index[name] = i
	}

	return &Assignment{
		names:  sorted,
		values: make([]bool, len(sorted)),
		index:  index,
	}
}

// Next advances to the next assignment in enumeration order by
// incrementing the binary counter with carry. It returns false exactly
// when the counter wraps back to all false, which happens after the
// last of the 2^n assignments. With zero variables it wraps
// immediately: the single empty assignment is the whole space.
func (a *Assignment) Next() bool {
	for i := range a.values {
		if !a.values[i] {
			a.values[i] = true
			return true
		}
		a.values[i] = false
	}
	return false
}

// Reset returns the assignment to the all-false starting state
func (a *Assignment) Reset() {
	for i := range a.values {
		a.values[i] = false
	}
}

// Names returns a copy of the sorted variable names
func (a *Assignment) Names() []string {
	return booleslicex.Clone(a.names)
}

// Values returns a copy of the current truth values, ordered like Names
func (a *Assignment) Values() []bool {
	return booleslicex.Clone(a.values)
}

// Len returns the number of variables
func (a *Assignment) Len() int {
	return len(a.names)
}

// Value returns the current truth value of the named variable. The
// second result is false when the variable is not part of the
// assignment.
func (a *Assignment) Value(name string) (bool, bool) {
	i, ok := a.index[name]
	if !ok {
		return false, false
	}
	return a.values[i], true
}

// Model returns the current assignment as a name-to-value map snapshot
func (a *Assignment) Model() Model {
	model := make(Model, len(a.names))
	for i, name := range a.names {
		model[name] = a.values[i]
	}
	return model
}

// Ordinal returns the numeric value of the counter, first variable as
// least significant bit. It identifies the assignment's position in
// enumeration order. Beyond 64 variables the ordinal wraps.
func (a *Assignment) Ordinal() uint64 {
	var n uint64
	for i := len(a.values) - 1; i >= 0; i-- {
		n <<= 1
		if a.values[i] {
			n |= 1
		}
	}
	return n
}

// String renders the assignment as space-separated name=value pairs in
// variable order, e.g. "a=true b=false". Empty for zero variables.
func (a *Assignment) String() string {
	if len(a.names) == 0 {
		return ""
	}

	var b strings.Builder
	for i, name := range a.names {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%t", name, a.values[i])
	}
	return b.String()
}
