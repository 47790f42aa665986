// Package ca: stage 5 — contribution and representation-quality diagnostics.

package ca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Diagnostics carries the per-point, per-axis quality measures of a CA
// solution. All entries are non-negative. For every axis k the CTR column
// sums to 1 (share of the axis's inertia owned by each point); for every
// point the COS² row sums to at most 1 (share of the point's squared
// distance to the centroid captured by the retained axes).
type Diagnostics struct {
	RowCTR  *mat.Dense // R×K contributions of rows to axes
	ColCTR  *mat.Dense // C×K contributions of columns to axes
	RowCos2 *mat.Dense // R×K representation quality of rows
	ColCos2 *mat.Dense // C×K representation quality of columns
}

// ComputeDiagnostics derives CTR and COS² from the factorial coordinates.
//
//	CTR[i,k]  = mass_i · F[i,k]² / λ_k, renormalized so each axis column
//	            sums to exactly 1 (pins the invariant against FP drift).
//	COS²[i,k] = F[i,k]² / Σ_m F[i,m]², the sum running over ALL retained
//	            axes. A point exactly at the centroid (zero total squared
//	            coordinate) is a valid boundary case: its COS² row is 0.
//
// Passing empty inputs (K == 0, nil F and G with empty eigenvalues) is
// legal and yields an empty Diagnostics — the independent-table case.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch, ErrZeroEigenvalue (a null
// λ_k reached this stage — reported, never silently turned into NaN).
// Complexity: O((R+C)·K).
func ComputeDiagnostics(F, G *mat.Dense, rowMass, colMass, eigenvalues []float64) (*Diagnostics, error) {
	k := len(eigenvalues)
	if k == 0 {
		if F != nil || G != nil {
			return nil, caErrorf(opDiagnostics, ErrDimensionMismatch)
		}
		return &Diagnostics{}, nil
	}
	if F == nil || G == nil {
		return nil, caErrorf(opDiagnostics, ErrNilMatrix)
	}

	fr, fk := F.Dims()
	gr, gk := G.Dims()
	if fk != k || gk != k || fr != len(rowMass) || gr != len(colMass) {
		return nil, caErrorf(opDiagnostics, ErrDimensionMismatch)
	}
	for kk, lambda := range eigenvalues {
		if lambda <= 0 || math.IsNaN(lambda) || math.IsInf(lambda, 0) {
			return nil, fmt.Errorf("%s: axis %d: %w", opDiagnostics, kk+1, ErrZeroEigenvalue)
		}
	}

	rowCTR, err := contributions(F, rowMass, eigenvalues)
	if err != nil {
		return nil, err
	}
	colCTR, err := contributions(G, colMass, eigenvalues)
	if err != nil {
		return nil, err
	}

	return &Diagnostics{
		RowCTR:  rowCTR,
		ColCTR:  colCTR,
		RowCos2: squaredCosines(F),
		ColCos2: squaredCosines(G),
	}, nil
}

// contributions computes mass_i·coord_ik²/λ_k and renormalizes every axis
// column to sum to 1. A zero column total means the supplied eigenvalues
// do not belong to these coordinates.
func contributions(coords *mat.Dense, mass, eigenvalues []float64) (*mat.Dense, error) {
	n, k := coords.Dims()
	out := mat.NewDense(n, k, nil)
	for kk := 0; kk < k; kk++ {
		colSum := 0.0
		for i := 0; i < n; i++ {
			v := coords.At(i, kk)
			ctr := mass[i] * v * v / eigenvalues[kk]
			out.Set(i, kk, ctr)
			colSum += ctr
		}
		if colSum <= 0 {
			return nil, fmt.Errorf("%s: axis %d has zero inertia: %w", opDiagnostics, kk+1, ErrZeroEigenvalue)
		}
		inv := 1.0 / colSum
		for i := 0; i < n; i++ {
			out.Set(i, kk, out.At(i, kk)*inv)
		}
	}

	return out, nil
}

// squaredCosines computes coord_ik² / Σ_m coord_im², with the centroid
// fallback: a zero-distance point gets an all-zero row instead of NaN.
func squaredCosines(coords *mat.Dense) *mat.Dense {
	n, k := coords.Dims()
	out := mat.NewDense(n, k, nil)
	for i := 0; i < n; i++ {
		rowSum := 0.0
		for kk := 0; kk < k; kk++ {
			v := coords.At(i, kk)
			rowSum += v * v
		}
		if rowSum == 0 {
			continue // point at the centroid: COS² row stays 0
		}
		inv := 1.0 / rowSum
		for kk := 0; kk < k; kk++ {
			v := coords.At(i, kk)
			out.Set(i, kk, v*v*inv)
		}
	}

	return out
}
