package sat

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/constraint"
)

func triangleProblem(t *testing.T) *csp.Problem[string] {
	t.Helper()
	p := csp.NewProblem[string]()
	colors := []string{"red", "green", "blue"}
	for _, id := range []csp.Identifier{"A", "B", "C"} {
		require.NoError(t, p.AddVariable(id, colors))
	}
	require.NoError(t, p.AddConstraint(constraint.NotEqual[string]("A", "B")))
	require.NoError(t, p.AddConstraint(constraint.NotEqual[string]("B", "C")))
	require.NoError(t, p.AddConstraint(constraint.NotEqual[string]("A", "C")))
	return p
}

func TestSolve(t *testing.T) {
	p := triangleProblem(t)
	assignment, err := Solve(p)
	require.NoError(t, err)
	require.NotNil(t, assignment)
	assert.True(t, p.IsSolution(assignment))
}

func TestSolveUnsatisfiable(t *testing.T) {
	p := csp.NewProblem[int]()
	require.NoError(t, p.AddVariable("X", []int{1}))
	require.NoError(t, p.AddVariable("Y", []int{1}))
	require.NoError(t, p.AddConstraint(constraint.NotEqual[int]("X", "Y")))

	assignment, err := Solve(p)
	require.NoError(t, err)
	assert.Nil(t, assignment)
}

func TestSolveAllowedConstraint(t *testing.T) {
	p := csp.NewProblem[int]()
	require.NoError(t, p.AddVariable("a", []int{1, 2, 3}))
	require.NoError(t, p.AddVariable("b", []int{1, 2, 3}))
	require.NoError(t, p.AddConstraint(constraint.Allowed(
		[]csp.Identifier{"a", "b"},
		[]int{1, 3},
		[]int{2, 2},
	)))

	assignment, err := Solve(p)
	require.NoError(t, err)
	require.NotNil(t, assignment)
	assert.True(t, p.IsSolution(assignment))
}

func TestSolvePredicateFallback(t *testing.T) {
	p := csp.NewProblem[int]()
	require.NoError(t, p.AddVariable("a", []int{1, 2, 3}))
	require.NoError(t, p.AddVariable("b", []int{1, 2, 3}))
	require.NoError(t, p.AddConstraint(constraint.Predicate(
		"a+b = 5",
		[]csp.Identifier{"a", "b"},
		func(values []int) bool { return values[0]+values[1] == 5 },
	)))

	assignment, err := Solve(p)
	require.NoError(t, err)
	require.NotNil(t, assignment)
	assert.Equal(t, 5, assignment["a"]+assignment["b"])
}

func TestSolveEnumerationLimit(t *testing.T) {
	p := csp.NewProblem[bool]()
	scope := make([]csp.Identifier, 21)
	for i := range scope {
		scope[i] = csp.Identifier(fmt.Sprintf("v%d", i))
		require.NoError(t, p.AddVariable(scope[i], []bool{true, false}))
	}
	// 2^21 tuples exceeds the fallback encoding cap
	require.NoError(t, p.AddConstraint(constraint.Predicate(
		"at least one is true",
		scope,
		func(values []bool) bool {
			for _, value := range values {
				if value {
					return true
				}
			}
			return false
		},
	)))

	_, err := Solve(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "scope too large")
}

func TestCount(t *testing.T) {
	for _, tt := range []struct {
		name     string
		bound    int
		expected int
	}{
		{name: "bound above the solution count", bound: 100, expected: 6},
		{name: "bound reached exactly", bound: 6, expected: 6},
		{name: "bound caps the count", bound: 2, expected: 2},
		{name: "zero bound counts nothing", bound: 0, expected: 0},
		{name: "negative bound counts nothing", bound: -1, expected: 0},
	} {
		t.Run(tt.name, func(t *testing.T) {
			count, err := Count(triangleProblem(t), tt.bound)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, count)
		})
	}
}

func TestCountUnsatisfiable(t *testing.T) {
	p := csp.NewProblem[int]()
	require.NoError(t, p.AddVariable("X", []int{1}))
	require.NoError(t, p.AddVariable("Y", []int{1}))
	require.NoError(t, p.AddConstraint(constraint.NotEqual[int]("X", "Y")))

	count, err := Count(p, 10)
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}
