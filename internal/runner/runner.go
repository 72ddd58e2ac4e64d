package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"

	"github.com/msto63/boole/foundation/bat"
	"github.com/msto63/boole/foundation/bat/ast"
	"github.com/msto63/boole/foundation/bat/solver"
	booleerror "github.com/msto63/boole/foundation/core/error"
	boolelog "github.com/msto63/boole/foundation/core/log"
	boolefilex "github.com/msto63/boole/foundation/utils/filex"
	"github.com/msto63/boole/pkg/core/config"
)

// Runner executes the complete pipeline for one input file: read the
// expressions, parse them, enumerate all assignments and report every
// solution. User-facing lines go to out; diagnostics go to the logger.
type Runner struct {
	engine *bat.Engine
	logger *boolelog.Logger
	cfg    *config.Config
	out    io.Writer
}

// Options holds the runner dependencies
type Options struct {
	Config *config.Config
	Logger *boolelog.Logger

	// Out receives the user-facing result lines (default: os.Stdout)
	Out io.Writer
}

// RunOptions adjust a single run
type RunOptions struct {
	// PrintAST prints each expression tree before solving
	PrintAST bool
}

// New creates a runner
func New(opts Options) (*Runner, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.Default()
	}

	logger := opts.Logger
	if logger == nil {
		logger = boolelog.GetDefault()
	}

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	engine, err := bat.NewEngine(bat.Options{Logger: logger})
	if err != nil {
		return nil, err
	}

	return &Runner{
		engine: engine,
		logger: logger,
		cfg:    cfg,
		out:    out,
	}, nil
}

// Run reads the file, parses every non-blank line into an expression,
// enumerates all variable assignments and prints each one that
// satisfies the whole set, followed by a summary line. An assignment
// counts as a solution only if every expression evaluates to true.
func (r *Runner) Run(path string, opts RunOptions) error {
	runID := uuid.New().String()[:8]
	logger := r.logger.WithRunID(runID)

	timer := logger.StartTimer("boole_run")

	logger.Info("Starting run", boolelog.Fields{
		"file": path,
	})

	exprs, err := r.parseFile(path)
	if err != nil {
		timer.StopWithError(err)
		return err
	}

	timer.Checkpoint("parsed", boolelog.Fields{
		"expressions": len(exprs),
	})

	if opts.PrintAST || r.cfg.Solve.PrintAST {
		r.printTrees(exprs)
	}

	slv, err := solver.New(exprs, solver.Options{Logger: logger})
	if err != nil {
		timer.StopWithError(err)
		return err
	}

	vars := slv.Variables()
	if len(vars) > r.cfg.Solve.MaxVariables {
		logger.Warn("Variable count exceeds the configured threshold, this run may take very long", boolelog.Fields{
			"variables": len(vars),
			"threshold": r.cfg.Solve.MaxVariables,
		})
	}

	result := slv.Solve()

	for _, model := range result.Models {
		fmt.Fprintln(r.out, formatSolution(model))
	}
	fmt.Fprintf(r.out, "[Info] %d out of %d possible results are solutions.\n",
		result.Count(), result.Tested)

	logger.Info("Run complete", boolelog.Fields{
		"solutions":  result.Count(),
		"tested":     result.Tested,
		"solve_time": result.Elapsed.String(),
	})

	timer.WithFields(boolelog.Fields{
		"solutions": result.Count(),
	}).Stop()

	return nil
}

// parseFile checks access and parses every non-blank line of the file
func (r *Runner) parseFile(path string) ([]ast.Expr, error) {
	if !boolefilex.IsFile(path) || !boolefilex.IsReadable(path) {
		return nil, booleerror.New(fmt.Sprintf("Unable to open file '%s'", path)).
			WithCode(booleerror.CodeFileAccess).
			WithOperation("runner.Run").
			WithDetail("path", path)
	}

	content, err := boolefilex.ReadString(path)
	if err != nil {
		return nil, booleerror.Wrap(err, fmt.Sprintf("Unable to open file '%s'", path)).
			WithCode(booleerror.CodeFileAccess).
			WithOperation("runner.Run").
			WithDetail("path", path)
	}

	return r.engine.ParseString(content)
}

// printTrees prints one numbered tree block per expression
func (r *Runner) printTrees(exprs []ast.Expr) {
	for i, expr := range exprs {
		fmt.Fprintf(r.out, "Expression %d:\n", i+1)
		fmt.Fprint(r.out, ast.TreeString(expr))
	}
}

// formatSolution renders one satisfying assignment as a result line.
// Variables appear in sorted order, each as name=value; the variable-free
// case yields the bare prefix.
func formatSolution(model solver.Model) string {
	pairs := model.String()
	if pairs == "" {
		return "[Info] Found a solution:"
	}
	return "[Info] Found a solution: " + pairs
}
