// Package sudoku provides the grid data model shared by the prover and the
// verifier: the 9x9 grid, its row/column/box geometry and the digit-coverage
// predicate that defines Sudoku validity.
package sudoku

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Size is the side length of the grid and the number of digits.
	Size = 9
	// BoxSize is the side length of a 3x3 box.
	BoxSize = 3
	// NbCells is the total number of cells in a grid.
	NbCells = Size * Size
)

// Grid is a 9x9 Sudoku grid in row-major order. In a puzzle, 0 marks a blank
// cell; in a solution every cell is in [1,9].
type Grid [NbCells]uint8

var errGridLength = errors.New("sudoku: grid must have 81 cells")

// Parse builds a Grid from its 81-digit string form, row by row. '0' and '.'
// both denote a blank cell; whitespace is ignored.
func Parse(s string) (Grid, error) {
	var g Grid
	i := 0
	for _, r := range s {
		switch {
		case r == '.' || (r >= '0' && r <= '9'):
			if i >= NbCells {
				return Grid{}, errGridLength
			}
			if r == '.' {
				g[i] = 0
			} else {
				g[i] = uint8(r - '0')
			}
			i++
		case r == ' ' || r == '\n' || r == '\t' || r == '\r' || r == '|':
			// skip
		default:
			return Grid{}, fmt.Errorf("sudoku: unexpected character %q in grid", r)
		}
	}
	if i != NbCells {
		return Grid{}, errGridLength
	}
	return g, nil
}

// MustParse is like Parse but panics on malformed input. Use for constants.
func MustParse(s string) Grid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}

// At returns the cell value at (row, col).
func (g Grid) At(row, col int) uint8 {
	return g[cellIndex(row, col)]
}

// Row returns the values of row i.
func (g Grid) Row(i int) [Size]uint8 {
	return g.gather(RowIndices(i))
}

// Column returns the values of column i.
func (g Grid) Column(i int) [Size]uint8 {
	return g.gather(ColumnIndices(i))
}

// Box returns the values of box i (boxes numbered row-major).
func (g Grid) Box(i int) [Size]uint8 {
	return g.gather(BoxIndices(i))
}

func (g Grid) gather(indices [Size]int) [Size]uint8 {
	var out [Size]uint8
	for t, idx := range indices {
		out[t] = g[idx]
	}
	return out
}

// Valid reports whether g is a valid completed solution: every row, column
// and box contains each digit 1..9 exactly once.
func (g Grid) Valid() bool {
	for i := 0; i < Size; i++ {
		row, col, box := g.Row(i), g.Column(i), g.Box(i)
		if !CoversDigits(row[:]) || !CoversDigits(col[:]) || !CoversDigits(box[:]) {
			return false
		}
	}
	return true
}

// ValidPuzzle reports whether g is a well-formed puzzle: every cell is blank
// or a digit in [1,9].
func (g Grid) ValidPuzzle() bool {
	for _, v := range g {
		if v > Size {
			return false
		}
	}
	return true
}

// Solves reports whether g is a valid solution of puzzle: g is a valid
// completed grid and matches every non-blank puzzle cell.
func (g Grid) Solves(puzzle Grid) bool {
	if !g.Valid() {
		return false
	}
	for i, v := range puzzle {
		if v != 0 && v != g[i] {
			return false
		}
	}
	return true
}

// String renders the grid with box separators; blank cells print as '.'.
func (g Grid) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		if r > 0 && r%BoxSize == 0 {
			sb.WriteString("------+-------+------\n")
		}
		for c := 0; c < Size; c++ {
			if c > 0 {
				sb.WriteByte(' ')
				if c%BoxSize == 0 {
					sb.WriteString("| ")
				}
			}
			v := g.At(r, c)
			if v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
