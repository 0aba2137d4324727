package sudoku

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/constraint-framework/backtrack/cmd/internal/options"
	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/solver"
)

func NewSudokuCommand() *cobra.Command {
	var size int
	var puzzlePath string
	var strategy string
	var countBound int
	var progressEvery uint64

	cmd := &cobra.Command{
		Use:   "sudoku",
		Short: "Returns a solved sudoku board",
		Long: `Solves a 4x4 or 9x9 sudoku. Puzzles are read from --puzzle, one line
per row, digits for givens and '.' or '0' for blanks:

1.3.
.4.2
2.4.
.3.1

Without --puzzle a built-in 4x4 sample is solved, or an empty board when
--size is 9.`,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if puzzlePath == "" {
				return nil
			}
			if _, err := os.Stat(puzzlePath); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", puzzlePath)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(size, puzzlePath, strategy, countBound, progressEvery)
		},
	}
	cmd.Flags().IntVar(&size, "size", 4, "board size (4 or 9)")
	cmd.Flags().StringVar(&puzzlePath, "puzzle", "", "path to a puzzle file")
	cmd.Flags().StringVar(&strategy, "strategy", string(solver.StrategyMRV), "variable ordering strategy (plain, mrv or sat)")
	cmd.Flags().IntVar(&countBound, "count", 0, "count solutions up to this bound instead of returning one")
	cmd.Flags().Uint64Var(&progressEvery, "progress-every", 0, "log progress every N trial assignments")
	return cmd
}

func run(size int, puzzlePath, strategy string, countBound int, progressEvery uint64) error {
	givens, err := loadGivens(size, puzzlePath)
	if err != nil {
		return err
	}

	p, err := NewProblem(size, givens)
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
	fmt.Print(Grid(size, result.Assignment))
	return nil
}

func loadGivens(size int, puzzlePath string) (map[csp.Identifier]int, error) {
	if puzzlePath != "" {
		puzzleFile, err := os.Open(puzzlePath)
		if err != nil {
			return nil, fmt.Errorf("error opening puzzle file (%s): %w", puzzlePath, err)
		}
		defer puzzleFile.Close()
		givens, err := ParsePuzzle(puzzleFile, size)
		if err != nil {
			return nil, fmt.Errorf("error parsing puzzle file (%s): %w", puzzlePath, err)
		}
		return givens, nil
	}
	if size == 4 {
		return ParsePuzzle(strings.NewReader(SamplePuzzle), size)
	}
	return nil, nil
}
