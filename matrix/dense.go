// Package matrix provides the dense storage primitive for assignment-cost
// computations. Dense is a concrete, row-major implementation of a square
// cost matrix, storing elements in a flat slice for performance and cache
// friendliness. Finiteness of every entry is enforced at ingestion so that
// downstream kernels never have to re-validate.
package matrix

import (
	"fmt"
	"math"
)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major n×n matrix of float64 values.
// n is the dimension and data holds n*n elements in row-major order.
// Invariant: every stored value is finite (no NaN, no ±Inf).
type Dense struct {
	n    int       // dimension (rows == cols == n)
	data []float64 // flat backing storage, length == n*n
}

// NewDense creates an n×n Dense matrix initialized to zeros.
// Returns ErrBadShape when n <= 0.
// Complexity: O(n²) time and memory.
func NewDense(n int) (*Dense, error) {
	// Validate dimension before allocating.
	if n <= 0 {
		return nil, ErrBadShape
	}

	return &Dense{n: n, data: make([]float64, n*n)}, nil
}

// FromRows builds a Dense from row slices, copying every value.
// Stage 1 (Validate): rows non-empty, square, every entry finite.
// Stage 2 (Copy): values are copied; the caller keeps ownership of rows.
// Errors: ErrBadShape (empty input), ErrNonSquare (ragged or rectangular
// input), ErrNaNInf (non-finite entry).
// Complexity: O(n²).
func FromRows(rows [][]float64) (*Dense, error) {
	n := len(rows)
	if n == 0 {
		return nil, ErrBadShape
	}

	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("matrix.FromRows: row %d has %d entries, want %d: %w",
				i, len(row), n, ErrNonSquare)
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf("FromRows", i, j, ErrNaNInf)
			}
			data = append(data, v)
		}
	}

	return &Dense{n: n, data: data}, nil
}

// Dim returns the matrix dimension n.
// Complexity: O(1).
func (m *Dense) Dim() int {
	return m.n
}

// indexOf computes the flat index for (row, col), guarding the nil
// receiver (ErrNilMatrix) and the bounds (ErrOutOfRange).
// Complexity: O(1).
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if m == nil {
		return 0, denseErrorf(method, row, col, ErrNilMatrix)
	}
	if row < 0 || row >= m.n || col < 0 || col >= m.n {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.n + col, nil
}

// At retrieves the element at (row, col).
// Returns ErrNilMatrix on a nil receiver and ErrOutOfRange on an invalid
// index.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Returns ErrNilMatrix on a nil receiver, ErrOutOfRange on an invalid
// index, and ErrNaNInf when v is not finite (the finiteness invariant is
// enforced on every write).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy of the matrix.
// Complexity: O(n²).
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)

	return &Dense{n: m.n, data: data}
}

// RowSlices returns the matrix as freshly allocated row slices.
// Mutating the result never affects the Dense.
// Complexity: O(n²).
func (m *Dense) RowSlices() [][]float64 {
	rows := make([][]float64, m.n)
	for i := 0; i < m.n; i++ {
		rows[i] = make([]float64, m.n)
		copy(rows[i], m.data[i*m.n:(i+1)*m.n])
	}

	return rows
}

// Equal reports whether m and o have the same dimension and identical
// values under exact float64 equality. A nil argument is never equal.
// Complexity: O(n²).
func (m *Dense) Equal(o *Dense) bool {
	if o == nil || m.n != o.n {
		return false
	}
	for i, v := range m.data {
		if v != o.data[i] {
			return false
		}
	}

	return true
}
