// File: example_test.go
// Title: String Utilities Examples
// Description: Testable examples for the stringx module
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial examples

package stringx_test

import (
	"fmt"

	"github.com/msto63/boole/foundation/utils/stringx"
)

func ExampleIsBlank() {
	fmt.Println(stringx.IsBlank("   "))
	fmt.Println(stringx.IsBlank("a & b"))
	// Output:
	// true
	// false
}

func ExampleTruncate() {
	expr := "(a | b) & (c | d) & (e | f) & (g | h)"
	fmt.Println(stringx.Truncate(expr, 20, "..."))
	// Output: (a | b) & (c | d)...
}

func ExamplePadLeft() {
	for _, n := range []string{"1", "10", "100"} {
		fmt.Println(stringx.PadLeft(n, 4, ' '))
	}
	// Output:
	//    1
	//   10
	//  100
}

func ExampleFirstNonBlank() {
	flagValue := "  "
	envValue := ""
	fmt.Println(stringx.FirstNonBlank(flagValue, envValue, "default.toml"))
	// Output: default.toml
}
