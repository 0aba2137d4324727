package dimacs

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/constraint-framework/backtrack/cmd/internal/options"
	"github.com/constraint-framework/backtrack/pkg/csp/solver"
)

func NewDimacsCommand() *cobra.Command {
	var strategy string
	var progressEvery uint64

	cmd := &cobra.Command{
		Use:   "dimacs <path>",
		Short: "Solves a sat problem given in dimacs format",
		Long: `Solves a sat problem given in dimacs format. For instance:
c
c this is a comment
c header: p cnf <number of variables> <number of clauses>
p cnf 2 2
c clauses end in zero, negative means 'not'
c 0 (zero) is not a valid literal
1 2 0
1 -2 0
c cnf: (1 or 2) and (1 or not 2)
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], strategy, progressEvery)
		},
	}
	cmd.Flags().StringVar(&strategy, "strategy", string(solver.StrategyPlain), "variable ordering strategy (plain, mrv or sat)")
	cmd.Flags().Uint64Var(&progressEvery, "progress-every", 0, "log progress every N trial assignments")
	return cmd
}

func run(path, strategy string, progressEvery uint64) error {
	dimacsFile, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening dimacs file (%s): %w", path, err)
	}
	defer dimacsFile.Close()

	d, err := NewDimacs(dimacsFile)
	if err != nil {
		return fmt.Errorf("error parsing dimacs file (%s): %w", path, err)
	}

	p, err := NewProblem(d)
	if err != nil {
		return err
	}
	so, err := options.NewSolver[bool](strategy, progressEvery, len(p.Variables()))
	if err != nil {
		return err
	}

	result, err := so.Solve(context.Background(), p)
	if err != nil {
		return err
	}
	if !result.Found() {
		fmt.Println("no solution found")
		return nil
	}
	fmt.Println("solution found:")
	for i := 1; i <= d.NumVariables(); i++ {
		id := VariableID(i)
		fmt.Printf("%s = %t\n", id, result.Assignment[id])
	}
	return nil
}
