// Package ca: stage 2 — independence residuals.

package ca

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// StandardizedResiduals builds the matrix of standardized residuals
//
//	S = D_r^(-1/2) · (P − r·cᵗ) · D_c^(-1/2)
//
// i.e. S_ij = (P_ij − r_i·c_j) / √(r_i·c_j): the departure of each cell
// from the independence model r·cᵗ, rescaled so that the sum of squared
// entries of S equals the chi-square statistic of independence divided by
// the grand total (the total inertia). S is the zero matrix iff rows and
// columns are independent in P.
//
// Stage 1 (Validate): non-nil model with consistent shapes; masses are
// already strictly positive past Normalize.
// Stage 2 (Execute): single deterministic i→j pass; 1/√r_i hoisted per row.
//
// Errors: ErrNilModel, ErrDimensionMismatch, ErrNotFinite.
// Complexity: O(R·C).
func StandardizedResiduals(fm *FrequencyModel) (*mat.Dense, error) {
	if fm == nil || fm.P == nil {
		return nil, caErrorf(opResiduals, ErrNilModel)
	}
	rows, cols := fm.P.Dims()
	if len(fm.RowMass) != rows || len(fm.ColMass) != cols {
		return nil, caErrorf(opResiduals, ErrDimensionMismatch)
	}

	// Precompute 1/√c_j once; the row factor is hoisted per row below.
	invSqrtC := make([]float64, cols)
	for j, c := range fm.ColMass {
		if c <= 0 || math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, caErrorf(opResiduals, ErrNotFinite)
		}
		invSqrtC[j] = 1.0 / math.Sqrt(c)
	}

	s := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		r := fm.RowMass[i]
		if r <= 0 || math.IsNaN(r) || math.IsInf(r, 0) {
			return nil, caErrorf(opResiduals, ErrNotFinite)
		}
		invSqrtR := 1.0 / math.Sqrt(r)
		for j := 0; j < cols; j++ {
			expected := r * fm.ColMass[j]
			s.Set(i, j, (fm.P.At(i, j)-expected)*invSqrtR*invSqrtC[j])
		}
	}

	return s, nil
}

// TotalInertia returns the sum of squared entries of the standardized
// residual matrix: the chi-square statistic divided by the grand total.
// Returns 0 for a nil matrix. Complexity: O(R·C).
func TotalInertia(s *mat.Dense) float64 {
	if s == nil {
		return 0
	}
	rows, cols := s.Dims()
	total := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := s.At(i, j)
			total += v * v
		}
	}

	return total
}
