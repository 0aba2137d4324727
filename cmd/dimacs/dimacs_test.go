package dimacs_test

import (
	"context"
	"strings"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/constraint-framework/backtrack/cmd/dimacs"
	"github.com/constraint-framework/backtrack/pkg/csp/solver"
)

func TestDimacs(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Dimacs Suite")
}

var _ = Describe("Dimacs", func() {
	It("should fail if there is no header", func() {
		_, err := dimacs.NewDimacs(strings.NewReader("1 2 3 0\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should fail if there are no clauses", func() {
		_, err := dimacs.NewDimacs(strings.NewReader("p cnf 3 3\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should fail if a clause does not end with 0", func() {
		_, err := dimacs.NewDimacs(strings.NewReader("p cnf 3 1\n1 2 3\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should fail if a literal is out of range", func() {
		_, err := dimacs.NewDimacs(strings.NewReader("p cnf 3 1\n1 2 4 0\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should fail if the clause count does not match the header", func() {
		_, err := dimacs.NewDimacs(strings.NewReader("p cnf 3 2\n1 2 3 0\n"))
		Expect(err).To(HaveOccurred())
	})

	It("should parse valid dimacs", func() {
		d, err := dimacs.NewDimacs(strings.NewReader("c a comment\np cnf 3 2\n1 2 3 0\n-1 -2 0\n"))
		Expect(err).ToNot(HaveOccurred())
		Expect(d.NumVariables()).To(Equal(3))
		Expect(d.Clauses()).To(Equal([]dimacs.Clause{{1, 2, 3}, {-1, -2}}))
	})
})

var _ = Describe("NewProblem", func() {
	It("should create one boolean variable per dimacs variable", func() {
		d, err := dimacs.NewDimacs(strings.NewReader("p cnf 3 1\n1 2 3 0\n"))
		Expect(err).ToNot(HaveOccurred())
		p, err := dimacs.NewProblem(d)
		Expect(err).ToNot(HaveOccurred())
		Expect(p.Variables()).To(HaveLen(3))
		Expect(p.Constraints()).To(HaveLen(1))
		Expect(p.Domain(dimacs.VariableID(1))).To(Equal([]bool{true, false}))
	})

	It("should solve a satisfiable formula", func() {
		d, err := dimacs.NewDimacs(strings.NewReader("p cnf 2 2\n1 2 0\n1 -2 0\n"))
		Expect(err).ToNot(HaveOccurred())
		p, err := dimacs.NewProblem(d)
		Expect(err).ToNot(HaveOccurred())

		s, err := solver.New(solver.WithStrategy[bool](solver.StrategyPlain))
		Expect(err).ToNot(HaveOccurred())
		result, err := s.Solve(context.Background(), p)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Found()).To(BeTrue())
		Expect(p.IsSolution(result.Assignment)).To(BeTrue())
		Expect(result.Assignment[dimacs.VariableID(1)]).To(BeTrue())
	})

	It("should report no solution for a contradiction", func() {
		d, err := dimacs.NewDimacs(strings.NewReader("p cnf 1 2\n1 0\n-1 0\n"))
		Expect(err).ToNot(HaveOccurred())
		p, err := dimacs.NewProblem(d)
		Expect(err).ToNot(HaveOccurred())

		s, err := solver.New(solver.WithStrategy[bool](solver.StrategyPlain))
		Expect(err).ToNot(HaveOccurred())
		result, err := s.Solve(context.Background(), p)
		Expect(err).ToNot(HaveOccurred())
		Expect(result.Found()).To(BeFalse())
	})
})
