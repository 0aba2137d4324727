package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/constraint"
)

func TestSatisfied(t *testing.T) {
	type tc struct {
		Name       string
		Constraint csp.Constraint[int]
		Values     []int
		Expected   bool
	}

	pair := []csp.Identifier{"a", "b"}
	sumIsEven := constraint.Predicate("a+b is even", pair, func(values []int) bool {
		return (values[0]+values[1])%2 == 0
	})

	for _, tt := range []tc{
		{
			Name:       "allowed member",
			Constraint: constraint.Allowed(pair, []int{1, 2}, []int{2, 1}),
			Values:     []int{2, 1},
			Expected:   true,
		},
		{
			Name:       "allowed non-member",
			Constraint: constraint.Allowed(pair, []int{1, 2}, []int{2, 1}),
			Values:     []int{1, 1},
			Expected:   false,
		},
		{
			Name:       "allowed empty tuple set",
			Constraint: constraint.Allowed[int](pair),
			Values:     []int{1, 2},
			Expected:   false,
		},
		{
			Name:       "predicate holds",
			Constraint: sumIsEven,
			Values:     []int{1, 3},
			Expected:   true,
		},
		{
			Name:       "predicate fails",
			Constraint: sumIsEven,
			Values:     []int{1, 2},
			Expected:   false,
		},
		{
			Name:       "not equal differs",
			Constraint: constraint.NotEqual[int]("a", "b"),
			Values:     []int{1, 2},
			Expected:   true,
		},
		{
			Name:       "not equal same",
			Constraint: constraint.NotEqual[int]("a", "b"),
			Values:     []int{7, 7},
			Expected:   false,
		},
		{
			Name:       "all different distinct",
			Constraint: constraint.AllDifferent[int]("a", "b", "c"),
			Values:     []int{1, 2, 3},
			Expected:   true,
		},
		{
			Name:       "all different duplicate",
			Constraint: constraint.AllDifferent[int]("a", "b", "c"),
			Values:     []int{1, 2, 1},
			Expected:   false,
		},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, tt.Constraint.Satisfied(tt.Values))
		})
	}
}

func TestScope(t *testing.T) {
	assert.Equal(t,
		[]csp.Identifier{"x", "y"},
		constraint.NotEqual[int]("x", "y").Scope(),
	)
	assert.Equal(t,
		[]csp.Identifier{"x", "y", "z"},
		constraint.AllDifferent[int]("x", "y", "z").Scope(),
	)
}

func TestAllowedCopiesTuples(t *testing.T) {
	tuple := []int{1, 2}
	c := constraint.Allowed([]csp.Identifier{"a", "b"}, tuple)
	tuple[0] = 9
	assert.True(t, c.Satisfied([]int{1, 2}))
	assert.False(t, c.Satisfied([]int{9, 2}))
}
