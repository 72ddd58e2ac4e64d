// File: example_test.go
// Title: Slice Utilities Examples
// Description: Testable examples for the slicex module
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial examples

package slicex_test

import (
	"fmt"
	"sort"

	"github.com/msto63/boole/foundation/utils/slicex"
)

func ExampleUnique() {
	names := slicex.Unique([]string{"b", "a", "b", "c", "a"})
	sort.Strings(names)
	fmt.Println(names)
	// Output: [a b c]
}

func ExampleMap() {
	variables := []string{"a", "b"}
	pairs := slicex.Map(variables, func(name string) string {
		return name + "=true"
	})
	fmt.Println(pairs)
	// Output: [a=true b=true]
}

func ExampleIndexOf() {
	variables := []string{"a", "b", "c"}
	fmt.Println(slicex.IndexOf(variables, "b"))
	fmt.Println(slicex.IndexOf(variables, "z"))
	// Output:
	// 1
	// -1
}
