package dimacs

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/constraint"
)

// Clause is a disjunction of literals. A positive literal names a
// variable that must be true, a negative one a variable that must be
// false; at least one literal must hold.
type Clause []int

func (c Clause) String() string {
	s := make([]string, len(c))
	for i, lit := range c {
		s[i] = strconv.Itoa(lit)
	}
	return strings.Join(s, " ")
}

// Dimacs holds a CNF problem parsed from DIMACS format
// see: https://logic.pdmi.ras.ru/~basolver/dimacs.html
type Dimacs struct {
	numVariables int
	clauses      []Clause
}

func (d *Dimacs) NumVariables() int {
	return d.numVariables
}

func (d *Dimacs) Clauses() []Clause {
	return d.clauses
}

// NewDimacs parses a DIMACS formatted stream: comment lines starting
// with 'c', a 'p cnf <variables> <clauses>' header, then one
// zero-terminated clause per line.
func NewDimacs(r io.Reader) (*Dimacs, error) {
	numVariables := 0
	numClauses := 0
	var clauses []Clause
	sawHeader := false

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}

		fields := strings.Fields(line)
		if fields[0] == "p" {
			if sawHeader {
				return nil, fmt.Errorf("invalid dimacs format: duplicate header (%s)", line)
			}
			if len(fields) != 4 || fields[1] != "cnf" {
				return nil, fmt.Errorf("invalid statement: (%s). Valid format is p cnf <variables> <clauses>", line)
			}
			var err error
			if numVariables, err = strconv.Atoi(fields[2]); err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", fields[2], line)
			}
			if numClauses, err = strconv.Atoi(fields[3]); err != nil {
				return nil, fmt.Errorf("invalid number (%s) in statement (%s)", fields[3], line)
			}
			sawHeader = true
			clauses = make([]Clause, 0, numClauses)
			continue
		}

		if !sawHeader {
			return nil, fmt.Errorf("invalid dimacs format: missing header 'p cnf <variables> <clauses>'")
		}
		clause, err := parseClause(fields, numVariables)
		if err != nil {
			return nil, fmt.Errorf("invalid clause (%s): %w", line, err)
		}
		clauses = append(clauses, clause)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dimacs data: %w", err)
	}

	if !sawHeader || numVariables == 0 || numClauses == 0 {
		return nil, fmt.Errorf("invalid format: no variables or clauses found")
	}
	if len(clauses) != numClauses {
		return nil, fmt.Errorf("invalid format: number of clauses in header differ from the total number of clauses")
	}

	return &Dimacs{
		numVariables: numVariables,
		clauses:      clauses,
	}, nil
}

func parseClause(fields []string, numVariables int) (Clause, error) {
	if fields[len(fields)-1] != "0" {
		return nil, fmt.Errorf("does not end with 0")
	}
	fields = fields[:len(fields)-1]
	clause := make(Clause, 0, len(fields))
	for _, field := range fields {
		lit, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%s is not a number", field)
		}
		if lit == 0 {
			return nil, fmt.Errorf("0 is not a valid variable")
		}
		if lit > numVariables || lit < -numVariables {
			return nil, fmt.Errorf("%s is not a valid variable", field)
		}
		clause = append(clause, lit)
	}
	if len(clause) == 0 {
		return nil, fmt.Errorf("clause is empty")
	}
	return clause, nil
}

// VariableID returns the identifier of the DIMACS variable with the
// given (positive) number.
func VariableID(variable int) csp.Identifier {
	return csp.Identifier(strconv.Itoa(variable))
}

// NewProblem turns a parsed CNF into a boolean CSP: one variable per
// DIMACS variable with domain {true, false} and one clause-disjunction
// constraint per clause.
func NewProblem(d *Dimacs) (*csp.Problem[bool], error) {
	p := csp.NewProblem[bool]()
	for i := 1; i <= d.NumVariables(); i++ {
		if err := p.AddVariable(VariableID(i), []bool{true, false}); err != nil {
			return nil, err
		}
	}

	for _, clause := range d.Clauses() {
		scope := make([]csp.Identifier, len(clause))
		wanted := make([]bool, len(clause))
		for i, lit := range clause {
			variable := lit
			if variable < 0 {
				variable = -variable
			}
			scope[i] = VariableID(variable)
			wanted[i] = lit > 0
		}
		c := constraint.Predicate(
			fmt.Sprintf("clause (%s) holds", clause),
			scope,
			func(values []bool) bool {
				for i, value := range values {
					if value == wanted[i] {
						return true
					}
				}
				return false
			},
		)
		if err := p.AddConstraint(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}
