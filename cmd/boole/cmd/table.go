package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/msto63/boole/foundation/bat"
	"github.com/msto63/boole/foundation/bat/solver"
	boolelog "github.com/msto63/boole/foundation/core/log"
	boolestringx "github.com/msto63/boole/foundation/utils/stringx"
)

var tableCmd = &cobra.Command{
	Use:   "table <file>",
	Short: "Print the full truth table of a term file",
	Long: `Evaluates every expression of the file under every possible
assignment and prints the complete truth table: one column per
variable, one column per expression and a final set column that is 1
exactly on the solution rows. Cells hold 1 for true and 0 for false.

The table has 2^n rows for n variables, so this is only practical for
small files.

Examples:
  boole table terms.txt`,
	Args: requireInputFile,
	RunE: runTable,
}

func init() {
	rootCmd.AddCommand(tableCmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
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

	exprs, err := engine.ParseString(strings.Join(lines, "\n"))
	if err != nil {
		return err
	}

	// Column headers reuse the source text so the table matches the file
	var labels []string
	for _, line := range lines {
		if !boolestringx.IsBlank(line) {
			labels = append(labels, strings.TrimSpace(line))
		}
	}

	slv, err := engine.NewSolver(exprs)
	if err != nil {
		return err
	}

	vars := slv.Variables()
	if len(vars) > cfg.Solve.MaxVariables {
		logger.Warn("Variable count exceeds the configured threshold, the table will be huge", boolelog.Fields{
			"variables": len(vars),
			"threshold": cfg.Solve.MaxVariables,
		})
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)

	header := append(append([]string{}, vars...), labels...)
	header = append(header, "set")
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	sep := make([]string, len(header))
	for i := range sep {
		sep[i] = "---"
	}
	fmt.Fprintln(tw, strings.Join(sep, "\t"))

	slv.Enumerate(func(a *solver.Assignment, results []bool) bool {
		row := make([]string, 0, len(header))
		for _, v := range a.Values() {
			row = append(row, bit(v))
		}

		all := true
		for _, r := range results {
			row = append(row, bit(r))
			all = all && r
		}
		row = append(row, bit(all))

		fmt.Fprintln(tw, strings.Join(row, "\t"))
		return true
	})

	return tw.Flush()
}

// bit renders a truth value as a table cell
func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
