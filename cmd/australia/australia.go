package australia

import (
	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/constraint"
)

// Regions lists the seven Australian states and territories in the order
// they enter the problem.
var Regions = []csp.Identifier{"WA", "NT", "SA", "Q", "NSW", "V", "T"}

// adjacencies are the ten borders between regions; adjacent regions must
// be colored differently.
var adjacencies = [][2]csp.Identifier{
	{"WA", "NT"},
	{"WA", "SA"},
	{"NT", "SA"},
	{"NT", "Q"},
	{"SA", "Q"},
	{"SA", "NSW"},
	{"SA", "V"},
	{"Q", "NSW"},
	{"NSW", "V"},
	{"V", "T"},
}

// DefaultColors is the classic three-color palette for the instance.
var DefaultColors = []string{"red", "green", "blue"}

// NewProblem builds the Australia map-coloring CSP over the given palette.
func NewProblem(colors []string) (*csp.Problem[string], error) {
	p := csp.NewProblem[string]()
	for _, region := range Regions {
		if err := p.AddVariable(region, colors); err != nil {
			return nil, err
		}
	}
	for _, adjacency := range adjacencies {
		if err := p.AddConstraint(constraint.NotEqual[string](adjacency[0], adjacency[1])); err != nil {
			return nil, err
		}
	}
	return p, nil
}
