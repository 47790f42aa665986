package ca_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlca/ca"
)

// hairEye is the classic hair colour × eye colour contingency table
// (Snee, 1974): 4 hair rows × 4 eye columns, all margins positive,
// strong association — a non-trivial fixture for every stage.
func hairEye() [][]float64 {
	return [][]float64{
		{68, 20, 15, 5},   // Black
		{119, 84, 54, 29}, // Brown
		{26, 17, 14, 14},  // Red
		{7, 94, 10, 16},   // Blond
	}
}

// proportionalRows is a table whose rows are scalar multiples of one
// another: perfect independence, zero residuals, no informative axes.
func proportionalRows() [][]float64 {
	return [][]float64{
		{1, 2, 3},
		{2, 4, 6},
		{3, 6, 9},
	}
}

// diagonal3 is the perfect-association scenario: three rows projecting to
// three mutually equidistant points, two equal non-trivial axes.
func diagonal3() [][]float64 {
	return [][]float64{
		{10, 0, 0},
		{0, 10, 0},
		{0, 0, 10},
	}
}

// mustTable builds a Table or fails the test immediately.
func mustTable(t *testing.T, values [][]float64, opts ...ca.TableOption) *ca.Table {
	t.Helper()
	tb, err := ca.NewTable(values, opts...)
	require.NoError(t, err, "fixture table must be valid")

	return tb
}

// mustModel normalizes a table or fails the test immediately.
func mustModel(t *testing.T, values [][]float64) *ca.FrequencyModel {
	t.Helper()
	fm, err := ca.Normalize(mustTable(t, values))
	require.NoError(t, err, "fixture model must normalize")

	return fm
}
