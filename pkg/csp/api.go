package csp

import (
	"errors"
	"fmt"

	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"
)

// Identifier values uniquely identify particular variables within a
// Problem.
type Identifier string

func (id Identifier) String() string {
	return string(id)
}

// IdentifierFromString returns an Identifier based on a provided
// string.
func IdentifierFromString(s string) Identifier {
	return Identifier(s)
}

// Assignment is a partial mapping from variables to chosen values. It is
// complete when it holds an entry for every variable of the Problem it is
// being built against.
type Assignment[V comparable] map[Identifier]V

// Constraint implementations restrict the combinations of values the
// variables in their scope may take in a solution.
type Constraint[V comparable] interface {
	String() string
	// Scope returns the ordered variables the constraint applies to.
	Scope() []Identifier
	// Satisfied reports whether the given values, one per scope position
	// in scope order, satisfy the constraint. Callers must cover the full
	// scope before invoking it.
	Satisfied(values []V) bool
}

// LitMapping performs translation between the variables and values of a
// Problem and the literals that appear in the SAT formula used by the sat
// strategy.
type LitMapping[V comparable] interface {
	// LitOf returns the positive literal meaning "this variable takes
	// this value", or the circuit's false constant when the value is not
	// in the variable's domain.
	LitOf(id Identifier, value V) z.Lit
	Domain(id Identifier) []V
	LogicCircuit() *logic.C
}

// CNFConstraint is implemented by constraints that can express themselves
// directly as a logic gate for the sat strategy. Constraints without it
// are encoded by enumerating their scope's domain product, which is only
// tractable for small scopes.
type CNFConstraint[V comparable] interface {
	Constraint[V]
	Apply(lm LitMapping[V]) z.Lit
}

// DuplicateVariable is returned when a variable is added to a Problem
// more than once.
type DuplicateVariable Identifier

func (e DuplicateVariable) Error() string {
	return fmt.Sprintf("variable %q added twice", Identifier(e))
}

// UnknownVariable is returned when a constraint scope references a
// variable the Problem does not hold.
type UnknownVariable Identifier

func (e UnknownVariable) Error() string {
	return fmt.Sprintf("constraint scope references unknown variable %q", Identifier(e))
}

// EmptyDomain is returned when a variable is added with no candidate
// values. An empty domain makes every branch of a search infeasible, so
// it is rejected at construction rather than deep inside recursion.
type EmptyDomain Identifier

func (e EmptyDomain) Error() string {
	return fmt.Sprintf("variable %q has an empty domain", Identifier(e))
}

// ErrEmptyScope is returned when a constraint applies to no variables.
var ErrEmptyScope = errors.New("constraint scope is empty")
