package queens

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/constraint-framework/backtrack/cmd/internal/options"
	"github.com/constraint-framework/backtrack/pkg/csp/solver"
)

func NewQueensCommand() *cobra.Command {
	var n int
	var strategy string
	var countBound int
	var progressEvery uint64

	cmd := &cobra.Command{
		Use:   "queens",
		Short: "Places n non-attacking queens on an n x n board",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(n, strategy, countBound, progressEvery)
		},
	}
	cmd.Flags().IntVar(&n, "n", 8, "board size")
	cmd.Flags().StringVar(&strategy, "strategy", string(solver.StrategyPlain), "variable ordering strategy (plain, mrv or sat)")
	cmd.Flags().IntVar(&countBound, "count", 0, "count solutions up to this bound instead of returning one")
	cmd.Flags().Uint64Var(&progressEvery, "progress-every", 0, "log progress every N trial assignments")
	return cmd
}

func run(n int, strategy string, countBound int, progressEvery uint64) error {
	p, err := NewProblem(n)
	if err != nil {
		return err
	}
	so, err := options.NewSolver[int](strategy, progressEvery, len(p.Variables()))
	if err != nil {
		return err
	}

	if countBound > 0 {
		count, err := so.CountSolutions(context.Background(), p, countBound)
		if err != nil {
			return err
		}
		fmt.Printf("%d solution(s) found (bound %d)\n", count, countBound)
		return nil
	}

	result, err := so.Solve(context.Background(), p)
	if err != nil {
		return err
	}
	if !result.Found() {
		fmt.Println("no solution found")
		return nil
	}
	fmt.Print(Board(n, result.Assignment))
	return nil
}
