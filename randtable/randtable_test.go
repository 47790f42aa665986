package randtable_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlca/ca"
	"github.com/katalvlaran/lvlca/randtable"
)

// TestIndependent_Deterministic verifies bit-for-bit reproducibility per
// seed and that different seeds actually change the draw.
func TestIndependent_Deterministic(t *testing.T) {
	opts := randtable.DefaultOptions()
	opts.Seed = 7

	a, err := randtable.Independent(4, 5, &opts)
	require.NoError(t, err)
	b, err := randtable.Independent(4, 5, &opts)
	require.NoError(t, err)

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			assert.Equal(t, a.At(i, j), b.At(i, j), "equal seeds must reproduce equal tables")
		}
	}

	opts.Seed = 8
	c, err := randtable.Independent(4, 5, &opts)
	require.NoError(t, err)
	differs := false
	for i := 0; i < a.Rows() && !differs; i++ {
		for j := 0; j < a.Cols(); j++ {
			if a.At(i, j) != c.At(i, j) {
				differs = true
				break
			}
		}
	}
	assert.True(t, differs, "different seeds must produce different tables")
}

// TestGenerate_ValidCounts verifies generated tables hold non-negative
// integer counts with strictly positive margins — they must flow through
// Normalize without a degenerate-margin error.
func TestGenerate_ValidCounts(t *testing.T) {
	opts := randtable.DefaultOptions()
	opts.Seed = 3

	tb, err := randtable.Associated(6, 4, 0.5, &opts)
	require.NoError(t, err)
	assert.Equal(t, 6, tb.Rows())
	assert.Equal(t, 4, tb.Cols())

	for i := 0; i < tb.Rows(); i++ {
		for j := 0; j < tb.Cols(); j++ {
			v := tb.At(i, j)
			assert.GreaterOrEqual(t, v, 0.0)
			assert.Equal(t, math.Trunc(v), v, "counts must be integers")
		}
	}

	_, err = ca.Normalize(tb)
	assert.NoError(t, err, "generated margins must be strictly positive")
}

// TestAssociated_RaisesInertia verifies that injected association shows up
// as total inertia well above the sampling noise of an independent table.
func TestAssociated_RaisesInertia(t *testing.T) {
	opts := randtable.DefaultOptions()
	opts.Seed = 11

	indep, err := randtable.Independent(5, 4, &opts)
	require.NoError(t, err)
	assoc, err := randtable.Associated(5, 4, 0.8, &opts)
	require.NoError(t, err)

	resIndep, err := ca.Analyze(indep, nil)
	require.NoError(t, err)
	resAssoc, err := ca.Analyze(assoc, nil)
	require.NoError(t, err)

	assert.Less(t, resIndep.TotalInertia, 0.15, "independence model must carry only sampling noise")
	assert.Greater(t, resAssoc.TotalInertia, 0.3, "strength 0.8 must carry substantial inertia")
	assert.Greater(t, resAssoc.TotalInertia, resIndep.TotalInertia)
}

// TestAssociated_ZeroStrengthMatchesIndependent verifies the mixture
// degenerates exactly to the independence model at strength 0.
func TestAssociated_ZeroStrengthMatchesIndependent(t *testing.T) {
	opts := randtable.DefaultOptions()
	opts.Seed = 5

	a, err := randtable.Independent(3, 3, &opts)
	require.NoError(t, err)
	b, err := randtable.Associated(3, 3, 0, &opts)
	require.NoError(t, err)

	for i := 0; i < a.Rows(); i++ {
		for j := 0; j < a.Cols(); j++ {
			assert.Equal(t, a.At(i, j), b.At(i, j))
		}
	}
}

// TestGenerate_BadInput covers the sentinel error paths.
func TestGenerate_BadInput(t *testing.T) {
	_, err := randtable.Independent(1, 5, nil)
	assert.ErrorIs(t, err, randtable.ErrBadDimensions)

	_, err = randtable.Independent(5, 1, nil)
	assert.ErrorIs(t, err, randtable.ErrBadDimensions)

	opts := randtable.DefaultOptions()
	opts.Total = 0
	_, err = randtable.Independent(3, 3, &opts)
	assert.ErrorIs(t, err, randtable.ErrBadTotal)

	_, err = randtable.Associated(3, 3, -0.1, nil)
	assert.ErrorIs(t, err, randtable.ErrBadStrength)

	_, err = randtable.Associated(3, 3, 1.1, nil)
	assert.ErrorIs(t, err, randtable.ErrBadStrength)

	_, err = randtable.Associated(3, 3, math.NaN(), nil)
	assert.ErrorIs(t, err, randtable.ErrBadStrength)
}
