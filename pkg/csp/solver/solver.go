package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/constraint-framework/backtrack/internal/sat"
	"github.com/constraint-framework/backtrack/pkg/csp"
)

// ErrIncomplete is returned when the context is cancelled before the
// search space has been exhausted.
var ErrIncomplete = errors.New("cancelled before a solution could be found")

// Strategy selects how the engine picks the next variable to assign.
type Strategy string

const (
	// StrategyPlain tries unassigned variables in problem insertion
	// order, the first by that order at every step.
	StrategyPlain Strategy = "plain"
	// StrategyMRV picks the unassigned variable with the fewest values
	// still consistent with the current assignment, ties broken by
	// insertion order. Fail-first: narrow variables are assigned before
	// wide-open ones.
	StrategyMRV Strategy = "mrv"
	// StrategySAT hands the problem to a SAT backend instead of
	// backtracking over it directly.
	StrategySAT Strategy = "sat"
)

// Result describes the outcome of a single Solve invocation.
type Result[V comparable] struct {
	// Assignment is the first solution found, or nil when none exists.
	Assignment csp.Assignment[V]
	// Attempts counts the candidate values the backtracking engine
	// examined, including ones the consistency check rejected. The sat
	// strategy performs no trials and reports zero.
	Attempts uint64
}

func (r *Result[V]) Found() bool {
	return r.Assignment != nil
}

type Solver[V comparable] struct {
	strategy Strategy
	tracer   csp.Tracer[V]
	every    uint64
}

func New[V comparable](options ...Option[V]) (*Solver[V], error) {
	s := Solver[V]{}
	for _, option := range append(options, defaults[V]()...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option[V comparable] func(s *Solver[V]) error

func WithStrategy[V comparable](strategy Strategy) Option[V] {
	return func(s *Solver[V]) error {
		switch strategy {
		case StrategyPlain, StrategyMRV, StrategySAT:
			s.strategy = strategy
			return nil
		default:
			return fmt.Errorf("unknown strategy %q", strategy)
		}
	}
}

// WithTracer registers an observer invoked roughly every `every` trial
// assignments during backtracking search. The sat strategy performs no
// trials and never invokes the tracer.
func WithTracer[V comparable](t csp.Tracer[V], every uint64) Option[V] {
	return func(s *Solver[V]) error {
		if every == 0 {
			return fmt.Errorf("tracer interval must be positive")
		}
		s.tracer = t
		s.every = every
		return nil
	}
}

func defaults[V comparable]() []Option[V] {
	return []Option[V]{
		func(s *Solver[V]) error {
			if s.strategy == "" {
				s.strategy = StrategyPlain
			}
			return nil
		},
		func(s *Solver[V]) error {
			if s.tracer == nil {
				s.tracer = csp.DefaultTracer[V]{}
			}
			return nil
		},
	}
}

// Solve searches for an assignment satisfying every constraint of the
// problem. A problem with no solution yields a Result with a nil
// Assignment, not an error; errors are reserved for cancellation and for
// faults in the sat encoding.
func (s *Solver[V]) Solve(ctx context.Context, p *csp.Problem[V]) (*Result[V], error) {
	if s.strategy == StrategySAT {
		assignment, err := sat.Solve(p)
		if err != nil {
			return nil, err
		}
		return &Result[V]{Assignment: assignment}, nil
	}

	sr := s.newSearch(ctx, p)
	assignment, ok := sr.do(csp.Assignment[V]{})
	if sr.err != nil {
		return nil, sr.err
	}
	result := &Result[V]{Attempts: sr.attempts}
	if ok {
		result.Assignment = assignment
	}
	return result, nil
}

// CountSolutions returns the number of solutions, capped at bound. The
// bound is inclusive: search stops the instant it is reached. A bound of
// zero or less counts nothing and returns 0.
func (s *Solver[V]) CountSolutions(ctx context.Context, p *csp.Problem[V], bound int) (int, error) {
	if bound <= 0 {
		return 0, nil
	}
	if s.strategy == StrategySAT {
		return sat.Count(p, bound)
	}

	sr := s.newSearch(ctx, p)
	sr.bound = bound
	sr.count(csp.Assignment[V]{})
	if sr.err != nil {
		return 0, sr.err
	}
	return sr.found, nil
}

func (s *Solver[V]) newSearch(ctx context.Context, p *csp.Problem[V]) *search[V] {
	sr := &search[V]{
		ctx:    ctx,
		p:      p,
		tracer: s.tracer,
		every:  s.every,
	}
	switch s.strategy {
	case StrategyMRV:
		sr.pick = minimumRemainingValues(p)
	default:
		sr.pick = firstUnassigned(p)
	}
	return sr
}
