package root

import (
	"github.com/spf13/cobra"

	"github.com/constraint-framework/backtrack/cmd/australia"
	"github.com/constraint-framework/backtrack/cmd/dimacs"
	"github.com/constraint-framework/backtrack/cmd/queens"
	"github.com/constraint-framework/backtrack/cmd/sudoku"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "backtrack",
		Short: "Backtrack is a constraint satisfaction problem solver",
		Long: `A generic constraint satisfaction problem (CSP) framework written in Go.
Variables, finite domains and constraints go in; backtracking search
(plain order, MRV-ordered, or SAT-backed) finds or counts satisfying
assignments.`,
	}

	// add sub-commands
	rootCmd.AddCommand(australia.NewAustraliaCommand())
	rootCmd.AddCommand(queens.NewQueensCommand())
	rootCmd.AddCommand(sudoku.NewSudokuCommand())
	rootCmd.AddCommand(dimacs.NewDimacsCommand())

	return rootCmd
}
