package ca_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvlca/ca"
)

// decomposeHairEye runs stages 1–3 on the fixture, returning S and its
// factorization for reuse across assertions.
func decomposeHairEye(t *testing.T) (*mat.Dense, *ca.Factorization) {
	t.Helper()
	fm := mustModel(t, hairEye())
	s, err := ca.StandardizedResiduals(fm)
	require.NoError(t, err)
	fact, err := ca.Decompose(s, ca.DefaultEpsilon)
	require.NoError(t, err)

	return s, fact
}

// TestDecompose_Reconstruction verifies the round trip: U·diag(σ)·Vᵗ must
// rebuild S within 1e-8 (the discarded axes carry σ < ε).
func TestDecompose_Reconstruction(t *testing.T) {
	s, fact := decomposeHairEye(t)
	k := fact.Axes()
	require.Positive(t, k, "associated table must have informative axes")

	rows, cols := s.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			rebuilt := 0.0
			for kk := 0; kk < k; kk++ {
				rebuilt += fact.U.At(i, kk) * fact.Sigma[kk] * fact.V.At(j, kk)
			}
			assert.InDelta(t, s.At(i, j), rebuilt, 1e-8, "U·Σ·Vᵗ must reconstruct S")
		}
	}
}

// TestDecompose_SigmaContract checks ordering, positivity and the axis cap
// K ≤ min(R,C)−1 (the trivial constant-profile axis is always dropped).
func TestDecompose_SigmaContract(t *testing.T) {
	s, fact := decomposeHairEye(t)
	rows, cols := s.Dims()

	maxAxes := rows - 1
	if cols < rows {
		maxAxes = cols - 1
	}
	assert.LessOrEqual(t, fact.Axes(), maxAxes, "trivial axis must not survive")

	for kk, sigma := range fact.Sigma {
		assert.GreaterOrEqual(t, sigma, ca.DefaultEpsilon, "retained σ must be ≥ ε")
		if kk > 0 {
			assert.LessOrEqual(t, sigma, fact.Sigma[kk-1], "σ must be descending")
		}
	}

	for kk, lambda := range fact.Eigenvalues() {
		assert.InDelta(t, fact.Sigma[kk]*fact.Sigma[kk], lambda, 1e-15, "λ must equal σ²")
	}
}

// TestDecompose_Independence verifies that a perfectly independent table
// retains zero axes: every eigenvalue is numerically null.
func TestDecompose_Independence(t *testing.T) {
	fm := mustModel(t, proportionalRows())
	s, err := ca.StandardizedResiduals(fm)
	require.NoError(t, err)

	fact, err := ca.Decompose(s, ca.DefaultEpsilon)
	require.NoError(t, err)
	assert.Zero(t, fact.Axes(), "independence must leave no informative axes")
	assert.Empty(t, fact.Eigenvalues())
	assert.Nil(t, fact.U)
	assert.Nil(t, fact.V)
}

// TestDecompose_BadInput covers the nil, non-finite and tolerance guards.
func TestDecompose_BadInput(t *testing.T) {
	_, err := ca.Decompose(nil, ca.DefaultEpsilon)
	assert.ErrorIs(t, err, ca.ErrNilMatrix)

	s := mat.NewDense(2, 2, []float64{1, math.NaN(), 0, 1})
	_, err = ca.Decompose(s, ca.DefaultEpsilon)
	assert.ErrorIs(t, err, ca.ErrNotFinite)
	assert.Contains(t, err.Error(), "Decompose", "error must name the stage")

	s = mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	_, err = ca.Decompose(s, -1)
	assert.ErrorIs(t, err, ca.ErrBadOption)

	_, err = ca.Decompose(s, math.Inf(1))
	assert.ErrorIs(t, err, ca.ErrBadOption)
}
