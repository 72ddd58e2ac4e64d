package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	booleerror "github.com/msto63/boole/foundation/core/error"
	boolelog "github.com/msto63/boole/foundation/core/log"
	boolefilex "github.com/msto63/boole/foundation/utils/filex"
	"github.com/msto63/boole/internal/runner"
	"github.com/msto63/boole/pkg/core/config"
)

var (
	cfgFile  string
	verbose  bool
	printAST bool
)

var rootCmd = &cobra.Command{
	Use:   "boole [flags] <file>",
	Short: "Brute-force solver for boolean algebra terms",
	Long: `boole reads a file of boolean algebra terms, one expression per
line, and searches for solutions by testing every possible combination
of truth values. A combination is a solution when all expressions of
the file are true at the same time.

Operators from strongest to weakest binding:
  !                not
  &  ^             and, exclusive or
  |  nor  nand  >  or, not-or, not-and, implication
  =                equivalence

Variables are words like a, x1 or motor_on; the words 0 and 1 are the
constants false and true. Blank lines are skipped.

Examples:
  boole terms.txt
  boole --ast terms.txt
  boole check terms.txt
  boole table terms.txt`,
	Args:          requireInputFile,
	RunE:          runSolve,
	SilenceErrors: true,
	SilenceUsage:  true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./boole.toml, see BOOLE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose diagnostics on stderr")
	rootCmd.Flags().BoolVar(&printAST, "ast", false, "print each expression tree before solving")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return booleerror.Wrap(err, "invalid command line").
			WithCode(booleerror.CodeUsage)
	})
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	r, err := runner.New(runner.Options{
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		return err
	}

	return r.Run(args[0], runner.RunOptions{PrintAST: printAST})
}

// requireInputFile accepts exactly one positional argument, the term file
func requireInputFile(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return booleerror.Newf("expected exactly one input file, got %d arguments", len(args)).
			WithCode(booleerror.CodeUsage)
	}
	return nil
}

// setup loads the configuration and builds the logger shared by the commands
func setup() (*config.Config, *boolelog.Logger, error) {
	var (
		cfg *config.Config
		err error
	)

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return nil, nil, err
	}

	logger := boolelog.NewWithConfig(cfg.LoggerConfig(verbose))

	return cfg, logger, nil
}

// readInputLines loads the term file for the inspection commands,
// keeping blank lines so reported line numbers match the file
func readInputLines(path string) ([]string, error) {
	if !boolefilex.IsFile(path) || !boolefilex.IsReadable(path) {
		return nil, booleerror.New(fmt.Sprintf("Unable to open file '%s'", path)).
			WithCode(booleerror.CodeFileAccess).
			WithDetail("path", path)
	}

	return boolefilex.ReadLines(path)
}
