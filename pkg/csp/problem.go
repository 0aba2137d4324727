package csp

import "slices"

// Problem is a constraint satisfaction problem: a set of variables, a
// finite domain of candidate values per variable, and a collection of
// constraints over those variables.
//
// A Problem is built once through AddVariable and AddConstraint and is
// read-only during search: domains are consulted for candidate
// enumeration but never pruned. Multiple searches over the same Problem
// may therefore run concurrently, each with its own Assignment.
type Problem[V comparable] struct {
	inorder     []Identifier
	domains     map[Identifier][]V
	constraints []Constraint[V]
	byVariable  map[Identifier][]Constraint[V]
}

func NewProblem[V comparable]() *Problem[V] {
	return &Problem[V]{
		domains:    make(map[Identifier][]V),
		byVariable: make(map[Identifier][]Constraint[V]),
	}
}

// AddVariable registers a variable and its domain. The domain is copied
// with duplicate values dropped, preserving first-seen order; that order
// is the value order every search strategy iterates in.
func (p *Problem[V]) AddVariable(id Identifier, domain []V) error {
	if _, ok := p.domains[id]; ok {
		return DuplicateVariable(id)
	}
	if len(domain) == 0 {
		return EmptyDomain(id)
	}
	values := make([]V, 0, len(domain))
	for _, value := range domain {
		if !slices.Contains(values, value) {
			values = append(values, value)
		}
	}
	p.inorder = append(p.inorder, id)
	p.domains[id] = values
	return nil
}

// AddConstraint registers a constraint. Every variable in its scope must
// already have been added to the Problem.
func (p *Problem[V]) AddConstraint(c Constraint[V]) error {
	scope := c.Scope()
	if len(scope) == 0 {
		return ErrEmptyScope
	}
	for _, id := range scope {
		if _, ok := p.domains[id]; !ok {
			return UnknownVariable(id)
		}
	}
	p.constraints = append(p.constraints, c)
	seen := make(map[Identifier]struct{}, len(scope))
	for _, id := range scope {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		p.byVariable[id] = append(p.byVariable[id], c)
	}
	return nil
}

// Variables returns the variables in the order they were added. Callers
// must not modify the returned slice.
func (p *Problem[V]) Variables() []Identifier {
	return p.inorder
}

// Domain returns the candidate values for the given variable in iteration
// order, or nil for an unknown variable. Callers must not modify the
// returned slice.
func (p *Problem[V]) Domain(id Identifier) []V {
	return p.domains[id]
}

// Constraints returns the constraints in the order they were added.
func (p *Problem[V]) Constraints() []Constraint[V] {
	return p.constraints
}

// IsConsistent reports whether assigning value to the given variable, on
// top of the variables already present in assignment, violates no
// constraint whose scope that extended assignment fully covers.
// Constraints with an unassigned variable in scope are not yet checkable
// and are skipped; no forward pruning happens here.
func (p *Problem[V]) IsConsistent(id Identifier, value V, assignment Assignment[V]) bool {
	for _, c := range p.byVariable[id] {
		values, covered := p.scopeValues(c, id, value, assignment)
		if !covered {
			continue
		}
		if !c.Satisfied(values) {
			return false
		}
	}
	return true
}

// IsComplete reports whether the assignment covers every variable and
// nothing else.
func (p *Problem[V]) IsComplete(assignment Assignment[V]) bool {
	if len(assignment) != len(p.inorder) {
		return false
	}
	for _, id := range p.inorder {
		if _, ok := assignment[id]; !ok {
			return false
		}
	}
	return true
}

// IsSolution reports whether the assignment is complete and satisfies
// every constraint. This is the authoritative acceptance test;
// IsConsistent is the incremental approximation used during search.
func (p *Problem[V]) IsSolution(assignment Assignment[V]) bool {
	if !p.IsComplete(assignment) {
		return false
	}
	for _, c := range p.constraints {
		scope := c.Scope()
		values := make([]V, len(scope))
		for i, sid := range scope {
			values[i] = assignment[sid]
		}
		if !c.Satisfied(values) {
			return false
		}
	}
	return true
}

// scopeValues reads the constraint's scope from assignment extended with
// {id: value}, reporting whether the scope is fully covered.
func (p *Problem[V]) scopeValues(c Constraint[V], id Identifier, value V, assignment Assignment[V]) ([]V, bool) {
	scope := c.Scope()
	values := make([]V, len(scope))
	for i, sid := range scope {
		if sid == id {
			values[i] = value
			continue
		}
		v, ok := assignment[sid]
		if !ok {
			return nil, false
		}
		values[i] = v
	}
	return values, true
}
