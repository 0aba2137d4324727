package solver

import (
	"context"
	"maps"

	"github.com/constraint-framework/backtrack/pkg/csp"
)

// search is one backtracking invocation: a recursive depth-first walk
// over trial assignments. The problem is read-only throughout; the only
// mutable state is the assignment under construction, confined to this
// invocation.
type search[V comparable] struct {
	ctx      context.Context
	p        *csp.Problem[V]
	pick     func(assignment csp.Assignment[V]) (csp.Identifier, bool)
	tracer   csp.Tracer[V]
	every    uint64
	attempts uint64
	depth    int
	current  csp.Assignment[V]
	bound    int
	found    int
	err      error
}

var _ csp.SearchPosition[int] = &search[int]{}

func (s *search[V]) Assignment() csp.Assignment[V] {
	return s.current
}

func (s *search[V]) Attempts() uint64 {
	return s.attempts
}

func (s *search[V]) Depth() int {
	return s.depth
}

// do returns the first complete consistent assignment reachable from the
// given partial assignment, or reports failure once every value of every
// variable along every branch has been exhausted. Each rejected trial is
// retracted before the next sibling value is tried, so no state leaks
// between sibling branches.
func (s *search[V]) do(assignment csp.Assignment[V]) (csp.Assignment[V], bool) {
	if s.err != nil {
		return nil, false
	}
	if s.ctx.Err() != nil {
		s.err = ErrIncomplete
		return nil, false
	}
	if s.p.IsComplete(assignment) {
		return maps.Clone(assignment), true
	}

	id, ok := s.pick(assignment)
	if !ok {
		return nil, false
	}

	s.depth++
	defer func() { s.depth-- }()

	for _, value := range s.p.Domain(id) {
		s.observe(assignment)
		if !s.p.IsConsistent(id, value, assignment) {
			continue
		}
		assignment[id] = value
		result, ok := s.do(assignment)
		delete(assignment, id)
		if ok {
			return result, true
		}
		if s.err != nil {
			return nil, false
		}
	}
	return nil, false
}

// count walks the same tree as do but treats every solution as a failed
// branch after tallying it, stopping as soon as the bound is reached.
func (s *search[V]) count(assignment csp.Assignment[V]) {
	if s.err != nil || s.found >= s.bound {
		return
	}
	if s.ctx.Err() != nil {
		s.err = ErrIncomplete
		return
	}
	if s.p.IsComplete(assignment) {
		s.found++
		return
	}

	id, ok := s.pick(assignment)
	if !ok {
		return
	}

	s.depth++
	defer func() { s.depth-- }()

	for _, value := range s.p.Domain(id) {
		if s.found >= s.bound {
			return
		}
		s.observe(assignment)
		if !s.p.IsConsistent(id, value, assignment) {
			continue
		}
		assignment[id] = value
		s.count(assignment)
		delete(assignment, id)
		if s.err != nil {
			return
		}
	}
}

func (s *search[V]) observe(assignment csp.Assignment[V]) {
	s.attempts++
	if s.every > 0 && s.attempts%s.every == 0 {
		s.current = assignment
		s.tracer.Trace(s)
		s.current = nil
	}
}

// firstUnassigned is the plain strategy's selector: the first variable in
// insertion order without an entry in the assignment.
func firstUnassigned[V comparable](p *csp.Problem[V]) func(csp.Assignment[V]) (csp.Identifier, bool) {
	return func(assignment csp.Assignment[V]) (csp.Identifier, bool) {
		for _, id := range p.Variables() {
			if _, ok := assignment[id]; !ok {
				return id, true
			}
		}
		return "", false
	}
}

// minimumRemainingValues ranks unassigned variables by how many of their
// domain values are still consistent with the current assignment and
// selects the narrowest, first-in-order on ties. The ranking is computed
// fresh at every call; stored domains are never shrunk.
func minimumRemainingValues[V comparable](p *csp.Problem[V]) func(csp.Assignment[V]) (csp.Identifier, bool) {
	return func(assignment csp.Assignment[V]) (csp.Identifier, bool) {
		var best csp.Identifier
		bestRemaining := -1
		for _, id := range p.Variables() {
			if _, ok := assignment[id]; ok {
				continue
			}
			remaining := 0
			for _, value := range p.Domain(id) {
				if p.IsConsistent(id, value, assignment) {
					remaining++
				}
			}
			if bestRemaining < 0 || remaining < bestRemaining {
				best = id
				bestRemaining = remaining
			}
		}
		if bestRemaining < 0 {
			return "", false
		}
		return best, true
	}
}
