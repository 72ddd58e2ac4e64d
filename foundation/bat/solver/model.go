// File: model.go
// Title: Assignment Snapshot Helpers
// Description: Provides methods on the Model type, the name-to-value
//              snapshot handed out by the solver for every satisfying
//              assignment. Models outlive the enumeration, so they can
//              be copied, compared, and rendered independently.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial model helpers

package solver

import (
	"fmt"
	"sort"
	"strings"

	boolemapx "github.com/msto63/boole/foundation/utils/mapx"
)

// Names returns the model's variable names sorted ascending
func (m Model) Names() []string {
	names := boolemapx.Keys(m)
	sort.Strings(names)
	return names
}

// Clone returns an independent copy of the model
func (m Model) Clone() Model {
	return Model(boolemapx.Clone(m))
}

// Equal reports whether both models bind the same variables to the
// same values
func (m Model) Equal(other Model) bool {
	return boolemapx.Equal(m, other)
}

// Value returns the truth value of the named variable. The second
// result is false when the variable is not bound in the model.
func (m Model) Value(name string) (bool, bool) {
	value, ok := m[name]
	return value, ok
}

// String renders the model as space-separated name=value pairs in
// sorted variable order, e.g. "a=true b=false". Empty for an empty
// model, which matches how the one solution of a variable-free set is
// reported.
func (m Model) String() string {
	var b strings.Builder
	for i, name := range m.Names() {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%t", name, m[name])
	}
	return b.String()
}
