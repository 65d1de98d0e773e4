package mask_test

import (
	"testing"

	"github.com/katalvlaran/hungarian/mask"
	"github.com/stretchr/testify/assert"
)

// z3 is the residual zero set of the reduced 3×3 reference matrix
// [[15,15,0],[0,0,10],[5,5,0]]: zeros at (0,2), (1,0), (1,1), (2,2).
func z3() [][]bool {
	return [][]bool{
		{false, false, true},
		{true, true, false},
		{false, false, true},
	}
}

// TestRowZeros counts residual zeros per row.
func TestRowZeros(t *testing.T) {
	assert.Equal(t, []int{1, 2, 1}, mask.RowZeros(z3()))
}

// TestColZeros counts residual zeros per column.
func TestColZeros(t *testing.T) {
	assert.Equal(t, []int{1, 1, 2}, mask.ColZeros(z3()))
}

// TestRowWithMaxZeros selects the single row with the most residual zeros.
func TestRowWithMaxZeros(t *testing.T) {
	assert.Equal(t, []bool{false, true, false}, mask.RowWithMaxZeros(z3()))
}

// TestColWithMaxZeros selects the single column with the most residual zeros.
func TestColWithMaxZeros(t *testing.T) {
	assert.Equal(t, []bool{false, false, true}, mask.ColWithMaxZeros(z3()))
}

// TestArgmax_TieBreaksLowestIndex pins the tie-break policy: when several
// lines share the maximal count, the lowest index wins.
func TestArgmax_TieBreaksLowestIndex(t *testing.T) {
	tied := [][]bool{
		{true, false},
		{true, false},
	}
	// Rows tie at one zero each; columns tie is impossible here (2 vs 0).
	assert.Equal(t, []bool{true, false}, mask.RowWithMaxZeros(tied), "first tied row wins")
	assert.Equal(t, []bool{true, false}, mask.ColWithMaxZeros(tied), "column 0 strictly wins")

	allTied := [][]bool{
		{true, true},
		{true, true},
	}
	assert.Equal(t, []bool{true, false}, mask.RowWithMaxZeros(allTied), "all-tied rows pick index 0")
	assert.Equal(t, []bool{true, false}, mask.ColWithMaxZeros(allTied), "all-tied columns pick index 0")
}

// TestExpandRows broadcasts a row mask to a full element mask.
func TestExpandRows(t *testing.T) {
	got := mask.ExpandRows([]bool{false, true}, 3)
	assert.Equal(t, [][]bool{
		{false, false, false},
		{true, true, true},
	}, got)
}

// TestExpandCols broadcasts a column mask to a full element mask.
func TestExpandCols(t *testing.T) {
	got := mask.ExpandCols([]bool{true, false, false}, 2)
	assert.Equal(t, [][]bool{
		{true, false, false},
		{true, false, false},
	}, got)
}

// TestExpandCols_DetachedRows ensures every broadcast row is an independent
// copy of the source mask.
func TestExpandCols_DetachedRows(t *testing.T) {
	src := []bool{true, false}
	got := mask.ExpandCols(src, 2)

	got[0][0] = false
	assert.True(t, src[0], "mutating the broadcast must not write back into the mask")
	assert.True(t, got[1][0], "sibling rows must be unaffected")
}

// TestCountAndAny covers the two scalar helpers.
func TestCountAndAny(t *testing.T) {
	assert.Equal(t, 0, mask.Count([]bool{false, false}))
	assert.Equal(t, 2, mask.Count([]bool{true, false, true}))

	assert.True(t, mask.Any(z3()))
	assert.False(t, mask.Any([][]bool{{false}, {false}}))
}

// TestShapeViolationsPanic pins the fail-fast policy: empty or ragged
// zero-presence matrices are programmer errors.
func TestShapeViolationsPanic(t *testing.T) {
	assert.Panics(t, func() { mask.RowZeros(nil) }, "empty matrix must panic")
	assert.Panics(t, func() { mask.ColZeros([][]bool{}) }, "empty matrix must panic")
	assert.Panics(t, func() { mask.RowZeros([][]bool{{true}, {true, false}}) }, "ragged matrix must panic")
	assert.Panics(t, func() { mask.ExpandRows(nil, 3) }, "empty mask must panic")
	assert.Panics(t, func() { mask.ExpandCols([]bool{true}, 0) }, "rows <= 0 must panic")
}
