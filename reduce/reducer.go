package reduce

// Rows returns a copy of m with each row's minimum subtracted from every
// entry in that row. The input is never mutated.
//
// Postcondition: every row of the result holds at least one exact zero and
// no entry is negative (assuming finite input). Subtracting exactly the
// minimum found over the same float64 representation guarantees the zero
// is representable, so downstream equality-to-zero tests are safe.
//
// Ragged input is a programmer error and panics via the mask layer's
// conventions; the validated entry point is ToOptimalCover.
//
// Complexity: O(n²).
func Rows(m [][]float64) [][]float64 {
	out := make([][]float64, len(m))
	for i, row := range m {
		lineMin := row[0]
		for _, v := range row[1:] {
			if v < lineMin {
				lineMin = v
			}
		}
		out[i] = make([]float64, len(row))
		for j, v := range row {
			out[i][j] = v - lineMin
		}
	}

	return out
}

// Cols returns a copy of m with each column's minimum subtracted from
// every entry in that column. The input is never mutated.
//
// Postcondition: symmetric to Rows — at least one exact zero per column,
// no negative entries for finite input.
//
// Complexity: O(n²).
func Cols(m [][]float64) [][]float64 {
	rows := len(m)
	cols := len(m[0])

	mins := make([]float64, cols)
	copy(mins, m[0])
	for _, row := range m[1:] {
		for j, v := range row {
			if v < mins[j] {
				mins[j] = v
			}
		}
	}

	out := make([][]float64, rows)
	for i, row := range m {
		out[i] = make([]float64, cols)
		for j, v := range row {
			out[i][j] = v - mins[j]
		}
	}

	return out
}
