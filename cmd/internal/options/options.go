package options

import (
	"github.com/sirupsen/logrus"

	"github.com/constraint-framework/backtrack/internal/progress"
	"github.com/constraint-framework/backtrack/pkg/csp/solver"
)

// NewSolver builds a solver from the flags shared by the demo commands:
// the strategy name and an optional progress-logging interval.
func NewSolver[V comparable](strategy string, progressEvery uint64, variables int) (*solver.Solver[V], error) {
	opts := []solver.Option[V]{
		solver.WithStrategy[V](solver.Strategy(strategy)),
	}
	if progressEvery > 0 {
		tracer := progress.Tracer[V]{
			Log:       logrus.New(),
			Variables: variables,
		}
		opts = append(opts, solver.WithTracer[V](tracer, progressEvery))
	}
	return solver.New(opts...)
}
