package sudoku

import "fmt"

// cellIndex maps (row, col) to the row-major cell index.
func cellIndex(row, col int) int {
	if row < 0 || row >= Size || col < 0 || col >= Size {
		panic(fmt.Sprintf("sudoku: cell (%d,%d) out of range", row, col))
	}
	return row*Size + col
}

// RowIndices returns the 9 cell indices of row i, left to right.
func RowIndices(i int) [Size]int {
	checkGroupIndex(i)
	var out [Size]int
	for c := 0; c < Size; c++ {
		out[c] = i*Size + c
	}
	return out
}

// ColumnIndices returns the 9 cell indices of column i, top to bottom.
func ColumnIndices(i int) [Size]int {
	checkGroupIndex(i)
	var out [Size]int
	for r := 0; r < Size; r++ {
		out[r] = r*Size + i
	}
	return out
}

// BoxIndices returns the 9 cell indices of box i, row-major within the box.
// Boxes are numbered row-major: box 0 is top-left, box 8 bottom-right.
func BoxIndices(i int) [Size]int {
	checkGroupIndex(i)
	top := (i / BoxSize) * BoxSize
	left := (i % BoxSize) * BoxSize
	var out [Size]int
	for t := 0; t < Size; t++ {
		r := top + t/BoxSize
		c := left + t%BoxSize
		out[t] = r*Size + c
	}
	return out
}

func checkGroupIndex(i int) {
	if i < 0 || i >= Size {
		panic(fmt.Sprintf("sudoku: group index %d out of range", i))
	}
}
