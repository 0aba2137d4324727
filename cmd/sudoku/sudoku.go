package sudoku

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/constraint-framework/backtrack/pkg/csp"
	"github.com/constraint-framework/backtrack/pkg/csp/constraint"
)

// CellID returns the identifier for the cell at the given row and
// column, both counting from 1.
func CellID(row, col int) csp.Identifier {
	return csp.Identifier(fmt.Sprintf("r%dc%d", row, col))
}

func boxSize(size int) (int, error) {
	switch size {
	case 4:
		return 2, nil
	case 9:
		return 3, nil
	default:
		return 0, fmt.Errorf("board size must be 4 or 9, got %d", size)
	}
}

// NewProblem builds a size x size sudoku CSP. Cells are added in
// row-major order with the domain 1..size; a given reduces its cell's
// domain to that single value. Rows, columns and boxes each carry an
// all-different constraint.
func NewProblem(size int, givens map[csp.Identifier]int) (*csp.Problem[int], error) {
	box, err := boxSize(size)
	if err != nil {
		return nil, err
	}

	values := make([]int, size)
	for i := range values {
		values[i] = i + 1
	}

	p := csp.NewProblem[int]()
	for row := 1; row <= size; row++ {
		for col := 1; col <= size; col++ {
			id := CellID(row, col)
			domain := values
			if given, ok := givens[id]; ok {
				if given < 1 || given > size {
					return nil, fmt.Errorf("cell %s: given %d out of range 1..%d", id, given, size)
				}
				domain = []int{given}
			}
			if err := p.AddVariable(id, domain); err != nil {
				return nil, err
			}
		}
	}

	for row := 1; row <= size; row++ {
		ids := make([]csp.Identifier, size)
		for col := 1; col <= size; col++ {
			ids[col-1] = CellID(row, col)
		}
		if err := p.AddConstraint(constraint.AllDifferent[int](ids...)); err != nil {
			return nil, err
		}
	}

	for col := 1; col <= size; col++ {
		ids := make([]csp.Identifier, size)
		for row := 1; row <= size; row++ {
			ids[row-1] = CellID(row, col)
		}
		if err := p.AddConstraint(constraint.AllDifferent[int](ids...)); err != nil {
			return nil, err
		}
	}

	for boxRow := 0; boxRow < size; boxRow += box {
		for boxCol := 0; boxCol < size; boxCol += box {
			ids := make([]csp.Identifier, 0, size)
			for i := 1; i <= box; i++ {
				for j := 1; j <= box; j++ {
					ids = append(ids, CellID(boxRow+i, boxCol+j))
				}
			}
			if err := p.AddConstraint(constraint.AllDifferent[int](ids...)); err != nil {
				return nil, err
			}
		}
	}

	return p, nil
}

// ParsePuzzle reads a puzzle: one line per row, one character per cell,
// digits for givens and '.' or '0' for blanks. Spaces within a line and
// blank lines are ignored.
func ParsePuzzle(r io.Reader, size int) (map[csp.Identifier]int, error) {
	if _, err := boxSize(size); err != nil {
		return nil, err
	}

	givens := make(map[csp.Identifier]int)
	row := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.ReplaceAll(strings.TrimSpace(scanner.Text()), " ", "")
		if line == "" {
			continue
		}
		row++
		if row > size {
			return nil, fmt.Errorf("puzzle has more than %d rows", size)
		}
		cells := []rune(line)
		if len(cells) != size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", row, len(cells), size)
		}
		for col, cell := range cells {
			switch {
			case cell == '.' || cell == '0':
				continue
			case cell >= '1' && cell <= '9':
				value := int(cell - '0')
				if value > size {
					return nil, fmt.Errorf("row %d: value %d out of range 1..%d", row, value, size)
				}
				givens[CellID(row, col+1)] = value
			default:
				return nil, fmt.Errorf("row %d: invalid cell %q", row, cell)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading puzzle: %w", err)
	}
	if row != size {
		return nil, fmt.Errorf("puzzle has %d rows, want %d", row, size)
	}
	return givens, nil
}

// SamplePuzzle is a consistent 4x4 instance with eight givens, used when
// no puzzle file is supplied.
const SamplePuzzle = `1.3.
.4.2
2.4.
.3.1
`

// Grid renders an assignment as a size x size digit grid in the style of
// the puzzle format, with blanks for missing cells.
func Grid(size int, assignment csp.Assignment[int]) string {
	grid := ""
	for row := 1; row <= size; row++ {
		for col := 1; col <= size; col++ {
			if value, ok := assignment[CellID(row, col)]; ok {
				grid += fmt.Sprintf("%d", value)
			} else {
				grid += " "
			}
			if col != size {
				grid += " "
			}
		}
		grid += "\n"
	}
	return grid
}
