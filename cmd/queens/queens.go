package queens

import (
	"fmt"

	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/constraint"
)

// ColumnID returns the identifier for the queen in the given column,
// counting from 1.
func ColumnID(column int) csp.Identifier {
	return csp.Identifier(fmt.Sprintf("c%d", column))
}

// NewProblem builds an n-queens CSP: one variable per column holding the
// row of that column's queen, with a pairwise constraint per column pair
// forbidding shared rows and diagonals.
func NewProblem(n int) (*csp.Problem[int], error) {
	if n < 1 {
		return nil, fmt.Errorf("board size must be positive, got %d", n)
	}

	rows := make([]int, n)
	for i := range rows {
		rows[i] = i + 1
	}

	p := csp.NewProblem[int]()
	columns := make([]csp.Identifier, n)
	for i := range columns {
		columns[i] = ColumnID(i + 1)
		if err := p.AddVariable(columns[i], rows); err != nil {
			return nil, err
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			a, b := columns[i], columns[j]
			distance := j - i
			c := constraint.Predicate(
				fmt.Sprintf("queens %s and %s do not attack each other", a, b),
				[]csp.Identifier{a, b},
				func(values []int) bool {
					if values[0] == values[1] {
						return false
					}
					diff := values[0] - values[1]
					if diff < 0 {
						diff = -diff
					}
					return diff != distance
				},
			)
			if err := p.AddConstraint(c); err != nil {
				return nil, err
			}
		}
	}
	return p, nil
}

// Board renders an assignment as an n x n grid with Q marking queens.
func Board(n int, assignment csp.Assignment[int]) string {
	board := ""
	for row := 1; row <= n; row++ {
		for column := 1; column <= n; column++ {
			if assignment[ColumnID(column)] == row {
				board += "Q"
			} else {
				board += "."
			}
			if column != n {
				board += " "
			}
		}
		board += "\n"
	}
	return board
}
