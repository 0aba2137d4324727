package constraint

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-air/gini/z"

	"github.com/constraint-framework/backtrack/pkg/csp"
)

// AllowedConstraint is an explicit relation: an enumerated set of value
// tuples, one per allowed combination of the scope's variables. Explicit
// storage is only tractable when the relation is combinatorially small;
// use an implicit constraint otherwise.
type AllowedConstraint[V comparable] struct {
	scope  []csp.Identifier
	tuples [][]V
}

var _ csp.CNFConstraint[int] = &AllowedConstraint[int]{}

func (c *AllowedConstraint[V]) String() string {
	return fmt.Sprintf("%s in %d allowed tuples", joinScope(c.scope), len(c.tuples))
}

func (c *AllowedConstraint[V]) Scope() []csp.Identifier {
	return c.scope
}

func (c *AllowedConstraint[V]) Satisfied(values []V) bool {
	for _, tuple := range c.tuples {
		if slices.Equal(tuple, values) {
			return true
		}
	}
	return false
}

func (c *AllowedConstraint[V]) Apply(lm csp.LitMapping[V]) z.Lit {
	circuit := lm.LogicCircuit()
	m := circuit.F
	for _, tuple := range c.tuples {
		member := circuit.T
		for i, value := range tuple {
			member = circuit.And(member, lm.LitOf(c.scope[i], value))
		}
		m = circuit.Or(m, member)
	}
	return m
}

// Allowed returns an explicit constraint permitting exactly the given
// value tuples over the scope. Tuples are copied; each must have one
// value per scope position.
func Allowed[V comparable](scope []csp.Identifier, tuples ...[]V) csp.Constraint[V] {
	copied := make([][]V, len(tuples))
	for i, tuple := range tuples {
		copied[i] = slices.Clone(tuple)
	}
	return &AllowedConstraint[V]{
		scope:  slices.Clone(scope),
		tuples: copied,
	}
}

// PredicateConstraint is an implicit relation: a boolean test over the
// scope's values. The test must be pure and total over the value type;
// determinism guarantees do not hold otherwise.
type PredicateConstraint[V comparable] struct {
	description string
	scope       []csp.Identifier
	test        func(values []V) bool
}

var _ csp.Constraint[int] = &PredicateConstraint[int]{}

func (c *PredicateConstraint[V]) String() string {
	return c.description
}

func (c *PredicateConstraint[V]) Scope() []csp.Identifier {
	return c.scope
}

func (c *PredicateConstraint[V]) Satisfied(values []V) bool {
	return c.test(values)
}

// Predicate returns an implicit constraint satisfied when test returns
// true for the scope's values, given in scope order.
func Predicate[V comparable](description string, scope []csp.Identifier, test func(values []V) bool) csp.Constraint[V] {
	return &PredicateConstraint[V]{
		description: description,
		scope:       slices.Clone(scope),
		test:        test,
	}
}

type NotEqualConstraint[V comparable] struct {
	a, b csp.Identifier
}

var _ csp.CNFConstraint[int] = &NotEqualConstraint[int]{}

func (c *NotEqualConstraint[V]) String() string {
	return fmt.Sprintf("%s and %s differ", c.a, c.b)
}

func (c *NotEqualConstraint[V]) Scope() []csp.Identifier {
	return []csp.Identifier{c.a, c.b}
}

func (c *NotEqualConstraint[V]) Satisfied(values []V) bool {
	return values[0] != values[1]
}

func (c *NotEqualConstraint[V]) Apply(lm csp.LitMapping[V]) z.Lit {
	circuit := lm.LogicCircuit()
	m := circuit.T
	for _, value := range lm.Domain(c.a) {
		m = circuit.And(m, circuit.Or(lm.LitOf(c.a, value).Not(), lm.LitOf(c.b, value).Not()))
	}
	return m
}

// NotEqual returns a binary constraint requiring the two variables to
// take different values.
func NotEqual[V comparable](a, b csp.Identifier) csp.Constraint[V] {
	return &NotEqualConstraint[V]{a: a, b: b}
}

type AllDifferentConstraint[V comparable] struct {
	ids []csp.Identifier
}

var _ csp.CNFConstraint[int] = &AllDifferentConstraint[int]{}

func (c *AllDifferentConstraint[V]) String() string {
	return fmt.Sprintf("%s are all different", joinScope(c.ids))
}

func (c *AllDifferentConstraint[V]) Scope() []csp.Identifier {
	return c.ids
}

func (c *AllDifferentConstraint[V]) Satisfied(values []V) bool {
	seen := make(map[V]struct{}, len(values))
	for _, value := range values {
		if _, ok := seen[value]; ok {
			return false
		}
		seen[value] = struct{}{}
	}
	return true
}

func (c *AllDifferentConstraint[V]) Apply(lm csp.LitMapping[V]) z.Lit {
	circuit := lm.LogicCircuit()
	m := circuit.T
	for _, value := range c.values(lm) {
		ms := make([]z.Lit, len(c.ids))
		for i, id := range c.ids {
			ms[i] = lm.LitOf(id, value)
		}
		m = circuit.And(m, circuit.CardSort(ms).Leq(1))
	}
	return m
}

// values returns the union of the scope's domains, deduplicated in
// first-seen order so the encoding is deterministic.
func (c *AllDifferentConstraint[V]) values(lm csp.LitMapping[V]) []V {
	var union []V
	for _, id := range c.ids {
		for _, value := range lm.Domain(id) {
			if !slices.Contains(union, value) {
				union = append(union, value)
			}
		}
	}
	return union
}

// AllDifferent returns an n-ary constraint requiring every scope variable
// to take a distinct value. An explicit rendering of the same relation
// would need one tuple per permutation, so it is implicit by necessity.
func AllDifferent[V comparable](ids ...csp.Identifier) csp.Constraint[V] {
	return &AllDifferentConstraint[V]{ids: slices.Clone(ids)}
}

func joinScope(scope []csp.Identifier) string {
	s := make([]string, len(scope))
	for i, id := range scope {
		s[i] = string(id)
	}
	return strings.Join(s, ", ")
}
