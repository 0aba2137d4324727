package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/z"

	"github.com/constraint-framework/backtrack/pkg/csp"
)

const satisfiable = 1

// Solve encodes the problem as CNF, runs the SAT solver, and decodes the
// model back into an assignment. A nil assignment with a nil error means
// the problem is unsatisfiable.
func Solve[V comparable](p *csp.Problem[V]) (csp.Assignment[V], error) {
	g := gini.New()
	litMap, err := newLitMapping(p)
	if err != nil {
		return nil, err
	}
	litMap.AddConstraints(g)

	if g.Solve() != satisfiable {
		return nil, nil
	}
	assignment := litMap.Selection(g)
	if derr := litMap.Error(); derr != nil {
		return nil, derr
	}
	return assignment, nil
}

// Count returns the number of distinct solutions, capped at bound, by
// blocking each found model and re-solving until the formula becomes
// unsatisfiable or the bound is reached.
func Count[V comparable](p *csp.Problem[V], bound int) (int, error) {
	if bound <= 0 {
		return 0, nil
	}
	g := gini.New()
	litMap, err := newLitMapping(p)
	if err != nil {
		return 0, err
	}
	litMap.AddConstraints(g)

	count := 0
	for count < bound {
		if g.Solve() != satisfiable {
			break
		}
		assignment := litMap.Selection(g)
		if derr := litMap.Error(); derr != nil {
			return 0, derr
		}
		count++
		blockModel(g, litMap, assignment)
	}
	return count, nil
}

// blockModel adds a clause rejecting exactly the given assignment.
func blockModel[V comparable](g inter.S, litMap *litMapping[V], assignment csp.Assignment[V]) {
	for _, id := range litMap.p.Variables() {
		g.Add(litMap.LitOf(id, assignment[id]).Not())
	}
	g.Add(z.LitNull)
}
