package mask

import "fmt"

// dims validates that z is non-empty and rectangular, then returns its
// (rows, cols). Violations are programmer errors and panic.
func dims(z [][]bool) (int, int) {
	if len(z) == 0 || len(z[0]) == 0 {
		panic("mask: empty zero-presence matrix")
	}
	cols := len(z[0])
	for i, row := range z {
		if len(row) != cols {
			panic(fmt.Sprintf("mask: ragged zero-presence matrix: row %d has %d entries, want %d",
				i, len(row), cols))
		}
	}

	return len(z), cols
}

// RowZeros returns, for each row of z, the number of residual zeros in it.
func RowZeros(z [][]bool) []int {
	rows, _ := dims(z)

	counts := make([]int, rows)
	for i, row := range z {
		for _, set := range row {
			if set {
				counts[i]++
			}
		}
	}

	return counts
}

// ColZeros returns, for each column of z, the number of residual zeros in it.
func ColZeros(z [][]bool) []int {
	_, cols := dims(z)

	counts := make([]int, cols)
	for _, row := range z {
		for j, set := range row {
			if set {
				counts[j]++
			}
		}
	}

	return counts
}

// RowWithMaxZeros returns a row mask selecting exactly the first row whose
// residual zero count is maximal (ties break to the lowest index).
func RowWithMaxZeros(z [][]bool) []bool {
	counts := RowZeros(z)

	sel := make([]bool, len(counts))
	sel[argmax(counts)] = true

	return sel
}

// ColWithMaxZeros returns a column mask selecting exactly the first column
// whose residual zero count is maximal (ties break to the lowest index).
func ColWithMaxZeros(z [][]bool) []bool {
	counts := ColZeros(z)

	sel := make([]bool, len(counts))
	sel[argmax(counts)] = true

	return sel
}

// ExpandRows broadcasts a row mask into a rows×cols element mask marking
// every cell on a selected row.
func ExpandRows(rowMask []bool, cols int) [][]bool {
	if len(rowMask) == 0 || cols <= 0 {
		panic("mask: ExpandRows requires a non-empty mask and cols > 0")
	}

	out := make([][]bool, len(rowMask))
	for i, set := range rowMask {
		out[i] = make([]bool, cols)
		if set {
			for j := range out[i] {
				out[i][j] = true
			}
		}
	}

	return out
}

// ExpandCols broadcasts a column mask into a rows×cols element mask marking
// every cell on a selected column.
func ExpandCols(colMask []bool, rows int) [][]bool {
	if len(colMask) == 0 || rows <= 0 {
		panic("mask: ExpandCols requires a non-empty mask and rows > 0")
	}

	out := make([][]bool, rows)
	for i := range out {
		out[i] = make([]bool, len(colMask))
		copy(out[i], colMask)
	}

	return out
}

// Count returns the number of selected lines in a mask.
func Count(m []bool) int {
	n := 0
	for _, set := range m {
		if set {
			n++
		}
	}

	return n
}

// Any reports whether any residual zero remains in z.
func Any(z [][]bool) bool {
	for _, row := range z {
		for _, set := range row {
			if set {
				return true
			}
		}
	}

	return false
}

// argmax returns the index of the first maximal entry of counts.
func argmax(counts []int) int {
	best := 0
	for i, c := range counts {
		if c > counts[best] {
			best = i
		}
	}

	return best
}
