package sat

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-air/gini/inter"
	"github.com/go-air/gini/logic"
	"github.com/go-air/gini/z"

	"github.com/constraint-framework/backtrack/pkg/csp"
)

// enumerationLimit caps the domain-product fallback used for constraints
// that do not encode themselves.
const enumerationLimit = 1 << 20

type litKey[V comparable] struct {
	id    csp.Identifier
	value V
}

type inconsistentLitMapping []error

func (inconsistentLitMapping) Error() string {
	return "internal solver failure"
}

// litMapping performs translation between a Problem's variables and
// values and the literals that appear in the SAT formula: one boolean
// literal per (variable, value) pair, an exactly-one gate per variable,
// and one gate per constraint.
type litMapping[V comparable] struct {
	p     *csp.Problem[V]
	lits  map[litKey[V]]z.Lit
	gates []z.Lit
	c     *logic.C
	errs  inconsistentLitMapping
}

// newLitMapping returns a litMapping with the problem's variables and
// constraints encoded into its logic circuit.
func newLitMapping[V comparable](p *csp.Problem[V]) (*litMapping[V], error) {
	d := &litMapping[V]{
		p:    p,
		lits: make(map[litKey[V]]z.Lit),
		c:    logic.NewC(),
	}

	// each variable takes exactly one of its domain values
	for _, id := range p.Variables() {
		domain := p.Domain(id)
		ms := make([]z.Lit, len(domain))
		for i, value := range domain {
			ms[i] = d.LitOf(id, value)
		}
		gate := d.c.Ors(ms...)
		if len(ms) > 1 {
			gate = d.c.And(gate, d.c.CardSort(ms).Leq(1))
		}
		d.gates = append(d.gates, gate)
	}

	for _, constraint := range p.Constraints() {
		m, err := d.applyConstraint(constraint)
		if err != nil {
			return nil, err
		}
		if m == z.LitNull {
			continue
		}
		d.gates = append(d.gates, m)
	}
	return d, nil
}

func (d *litMapping[V]) applyConstraint(constraint csp.Constraint[V]) (z.Lit, error) {
	if applier, ok := constraint.(csp.CNFConstraint[V]); ok {
		return applier.Apply(d), nil
	}
	return d.enumerate(constraint)
}

// enumerate encodes an opaque constraint by walking its scope's domain
// product and blocking every tuple the constraint rejects.
func (d *litMapping[V]) enumerate(constraint csp.Constraint[V]) (z.Lit, error) {
	scope := constraint.Scope()
	size := 1
	for _, id := range scope {
		size *= len(d.p.Domain(id))
		if size > enumerationLimit {
			return z.LitNull, fmt.Errorf("constraint %s: scope too large to encode (more than %d tuples)", constraint, enumerationLimit)
		}
	}

	m := d.c.T
	values := make([]V, len(scope))
	var walk func(i int)
	walk = func(i int) {
		if i == len(scope) {
			if constraint.Satisfied(values) {
				return
			}
			blocked := make([]z.Lit, len(scope))
			for j, id := range scope {
				blocked[j] = d.LitOf(id, values[j]).Not()
			}
			m = d.c.And(m, d.c.Ors(blocked...))
			return
		}
		for _, value := range d.p.Domain(scope[i]) {
			values[i] = value
			walk(i + 1)
		}
	}
	walk(0)
	return m, nil
}

// LitOf returns the positive literal meaning "id takes value", or the
// circuit's false constant when the value is outside id's domain.
func (d *litMapping[V]) LitOf(id csp.Identifier, value V) z.Lit {
	key := litKey[V]{id: id, value: value}
	if m, ok := d.lits[key]; ok {
		return m
	}
	if !slices.Contains(d.p.Domain(id), value) {
		return d.c.F
	}
	m := d.c.Lit()
	d.lits[key] = m
	return m
}

func (d *litMapping[V]) Domain(id csp.Identifier) []V {
	return d.p.Domain(id)
}

func (d *litMapping[V]) LogicCircuit() *logic.C {
	return d.c
}

// AddConstraints translates the circuit to CNF on the solver g and
// asserts every gate as a unit clause.
func (d *litMapping[V]) AddConstraints(g inter.S) {
	d.c.ToCnf(g)
	for _, m := range d.gates {
		g.Add(m)
		g.Add(z.LitNull)
	}
}

// Selection decodes the solver's model back into an assignment, reading
// the one true value literal per variable.
func (d *litMapping[V]) Selection(g inter.S) csp.Assignment[V] {
	assignment := make(csp.Assignment[V], len(d.p.Variables()))
	for _, id := range d.p.Variables() {
		found := false
		for _, value := range d.p.Domain(id) {
			if g.Value(d.LitOf(id, value)) {
				assignment[id] = value
				found = true
				break
			}
		}
		if !found {
			d.errs = append(d.errs, fmt.Errorf("no value selected for variable %s", id))
		}
	}
	return assignment
}

// Error returns a single error value aggregating all errors encountered
// during the litMapping's lifetime, or nil if there have been none. A
// non-nil return likely indicates a bug in the encoding.
func (d *litMapping[V]) Error() error {
	if len(d.errs) == 0 {
		return nil
	}
	s := make([]string, len(d.errs))
	for i, err := range d.errs {
		s[i] = err.Error()
	}
	return fmt.Errorf("%d errors encountered: %s", len(s), strings.Join(s, ", "))
}
