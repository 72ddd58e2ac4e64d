package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/boole/foundation/bat/parser"
	boolestringx "github.com/msto63/boole/foundation/utils/stringx"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens <file>",
	Short: "Show the token stream of every expression",
	Long: `Prints the lexer output for every non-blank line of the file, one
token per row with its column. Useful when a syntax error message alone
does not show how the input was read.

Examples:
  boole tokens terms.txt`,
	Args: requireInputFile,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	lines, err := readInputLines(args[0])
	if err != nil {
		return err
	}

	for i, line := range lines {
		if boolestringx.IsBlank(line) {
			continue
		}

		fmt.Printf("line %d: %s\n", i+1, line)
		for _, token := range parser.TokenizeInput(line) {
			fmt.Printf("  %3d  %s\n", token.Column(), token)
		}
	}

	return nil
}
