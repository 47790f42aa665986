// Package ca: stage 4 — factorial coordinates.

package ca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Coordinates derives the principal factorial coordinates
//
//	F = D_r^(-1/2) · U · diag(σ)   (rows,    R×K)
//	G = D_c^(-1/2) · V · diag(σ)   (columns, C×K)
//
// F and G live in the same Euclidean space, and this is the defining
// property of CA: the chi-square distance between two row profiles equals
// the Euclidean distance between the corresponding rows of F (identically
// for columns and G) when all informative axes are retained.
//
// Stage 1 (Validate): non-nil factorization, mass lengths matching U/V,
// strictly positive masses.
// Stage 2 (Execute): F_ik = U_ik·σ_k/√r_i in a fixed i→k loop; same for G.
//
// An empty factorization (K == 0) yields nil F and G with no error.
//
// Errors: ErrNilFactorization, ErrDimensionMismatch,
// ErrZeroRowMargin / ErrZeroColMargin (non-positive mass, wrapped with
// the offending index).
// Complexity: O((R+C)·K).
func Coordinates(f *Factorization, rowMass, colMass []float64) (F, G *mat.Dense, err error) {
	if f == nil {
		return nil, nil, caErrorf(opCoordinates, ErrNilFactorization)
	}
	k := f.Axes()
	if k == 0 {
		return nil, nil, nil
	}

	ur, uk := f.U.Dims()
	vr, vk := f.V.Dims()
	if uk != k || vk != k || ur != len(rowMass) || vr != len(colMass) {
		return nil, nil, caErrorf(opCoordinates, ErrDimensionMismatch)
	}

	F, err = scaleByMass(f.U, f.Sigma, rowMass, ErrZeroRowMargin)
	if err != nil {
		return nil, nil, err
	}
	G, err = scaleByMass(f.V, f.Sigma, colMass, ErrZeroColMargin)
	if err != nil {
		return nil, nil, err
	}

	return F, G, nil
}

// scaleByMass computes out_ik = basis_ik · σ_k / √mass_i, the shared
// kernel behind both coordinate matrices.
func scaleByMass(basis *mat.Dense, sigma, mass []float64, marginErr error) (*mat.Dense, error) {
	n, k := basis.Dims()
	out := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		m := mass[i]
		if m <= 0 || math.IsNaN(m) || math.IsInf(m, 0) {
			return nil, fmt.Errorf("%s: index %d: %w", opCoordinates, i, marginErr)
		}
		invSqrt := 1.0 / math.Sqrt(m)
		for kk := 0; kk < k; kk++ {
			out.Set(i, kk, basis.At(i, kk)*sigma[kk]*invSqrt)
		}
	}

	return out, nil
}
