// File: example_test.go
// Title: Error Package Examples
// Description: Examples demonstrating practical usage of coded errors in
//              the solver pipeline.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-08-10
// Modified: 2025-08-10
//
// Change History:
// - 2025-08-10 v0.1.0: Initial example implementation

package error_test

import (
	"errors"
	"fmt"

	booleerror "github.com/msto63/boole/foundation/core/error"
)

func ExampleNew() {
	err := booleerror.New("expected ')' but found end of input").
		WithCode(booleerror.CodeSyntax).
		WithDetail("line", 3)

	fmt.Println(err.Error())
	fmt.Println(err.Code())
	fmt.Println(err.Severity())
	// Output:
	// expected ')' but found end of input
	// SYNTAX
	// low
}

func ExampleWrap() {
	cause := errors.New("no such file or directory")
	err := booleerror.Wrap(cause, "unable to open file 'exprs.txt'").
		WithCode(booleerror.CodeFileAccess)

	fmt.Println(err.Error())
	fmt.Println(errors.Is(err, cause))
	// Output:
	// unable to open file 'exprs.txt': no such file or directory
	// true
}

func ExampleHasCode() {
	err := booleerror.New("unknown flag").WithCode(booleerror.CodeUsage)

	fmt.Println(booleerror.HasCode(err, booleerror.CodeUsage))
	fmt.Println(booleerror.HasCode(err, booleerror.CodeSyntax))
	// Output:
	// true
	// false
}

func ExampleGetCode() {
	coded := booleerror.New("bad input").WithCode(booleerror.CodeValidation)
	plain := errors.New("plain error")

	fmt.Println(booleerror.GetCode(coded))
	fmt.Println(booleerror.GetCode(plain))
	// Output:
	// VALIDATION_FAILED
	// UNKNOWN
}
