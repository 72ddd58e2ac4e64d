package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/boole/foundation/bat"
	booleerror "github.com/msto63/boole/foundation/core/error"
	boolestringx "github.com/msto63/boole/foundation/utils/stringx"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Validate a term file without solving it",
	Long: `Parses every expression of the file and reports each broken line
with its syntax error. The solver never runs, so check is fast even
for files with many variables.

Examples:
  boole check terms.txt`,
	Args: requireInputFile,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	_, logger, err := setup()
	if err != nil {
		return err
	}

	engine, err := bat.NewEngine(bat.Options{Logger: logger})
	if err != nil {
		return err
	}

	lines, err := readInputLines(args[0])
	if err != nil {
		return err
	}

	checked := 0
	invalid := 0

	for i, line := range lines {
		if boolestringx.IsBlank(line) {
			continue
		}

		checked++
		if err := engine.Validate(line); err != nil {
			invalid++
			fmt.Printf("line %d: %v\n", i+1, err)
		}
	}

	if invalid > 0 {
		return booleerror.Newf("%d of %d expressions are invalid", invalid, checked).
			WithCode(booleerror.CodeSyntax).
			WithDetail("file", args[0])
	}

	fmt.Printf("[Info] All %d expressions are valid.\n", checked)
	return nil
}
