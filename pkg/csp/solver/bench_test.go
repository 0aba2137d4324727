package solver_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/constraint"
	"github.com/constraint-framework/backtrack/pkg/csp/solver"
)

// benchmarkProblem is an 8-queens instance: one variable per column
// holding the queen's row, pairwise no-attack constraints.
func benchmarkProblem(b *testing.B) *csp.Problem[int] {
	const n = 8
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i + 1
	}
	columns := make([]csp.Identifier, n)
	for i := range columns {
		columns[i] = csp.Identifier(fmt.Sprintf("c%d", i+1))
	}

	p := csp.NewProblem[int]()
	for _, column := range columns {
		if err := p.AddVariable(column, rows); err != nil {
			b.Fatal(err)
		}
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			distance := j - i
			c := constraint.Predicate(
				fmt.Sprintf("%s and %s do not attack", columns[i], columns[j]),
				[]csp.Identifier{columns[i], columns[j]},
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
				b.Fatal(err)
			}
		}
	}
	return p
}

func benchmarkSolve(b *testing.B, strategy solver.Strategy) {
	p := benchmarkProblem(b)
	s, err := solver.New(solver.WithStrategy[int](strategy))
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		result, err := s.Solve(context.Background(), p)
		if err != nil {
			b.Fatal(err)
		}
		if !result.Found() {
			b.Fatal("expected a solution")
		}
	}
}

func BenchmarkSolvePlain(b *testing.B) {
	benchmarkSolve(b, solver.StrategyPlain)
}

func BenchmarkSolveMRV(b *testing.B) {
	benchmarkSolve(b, solver.StrategyMRV)
}

func BenchmarkSolveSAT(b *testing.B) {
	benchmarkSolve(b, solver.StrategySAT)
}
