package main

import (
	"fmt"
	"os"

	"github.com/msto63/boole/cmd/boole/cmd"
	booleerror "github.com/msto63/boole/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "[Error] %v\n", err)
		if booleerror.HasCode(err, booleerror.CodeUsage) {
			fmt.Fprintln(os.Stderr, "Run 'boole --help' for usage.")
		}
		os.Exit(1)
	}
}
