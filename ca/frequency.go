// Package ca: stage 1 — frequency normalization.

package ca

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// FrequencyModel holds the joint relative-frequency matrix P (entries in
// [0,1], summing to 1) together with the row-mass vector RowMass (r) and
// column-mass vector ColMass (c). Invariants past Normalize:
// r_i = Σ_j P_ij, c_j = Σ_i P_ij, Σr = Σc = 1, and every mass is
// strictly positive.
type FrequencyModel struct {
	P       *mat.Dense // R×C joint frequencies
	RowMass []float64  // length R, sums to 1
	ColMass []float64  // length C, sums to 1
}

// Normalize converts a contingency table into its FrequencyModel:
// P = N/n with n the grand total, r the row sums of P, c the column sums.
// Stage 1 (Validate): non-nil table (entry validity is guaranteed by NewTable).
// Stage 2 (Execute): single deterministic i→j pass accumulating P, r, c.
// Stage 3 (Finalize): reject structurally empty margins — a zero-mass
// row or column would divide by zero in the residual stage.
//
// Errors: ErrNilTable; ErrZeroRowMargin / ErrZeroColMargin wrapped with
// the offending index.
// Complexity: O(R·C).
func Normalize(t *Table) (*FrequencyModel, error) {
	if t == nil {
		return nil, caErrorf(opNormalize, ErrNilTable)
	}

	rows, cols := t.Rows(), t.Cols()
	p := mat.NewDense(rows, cols, nil)
	rowMass := make([]float64, rows)
	colMass := make([]float64, cols)

	inv := 1.0 / t.Total() // total > 0 guaranteed by NewTable
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			f := t.At(i, j) * inv
			p.Set(i, j, f)
			rowMass[i] += f
			colMass[j] += f
		}
	}

	// A margin of exactly zero means the category never occurs; its
	// profile is undefined and the pipeline must stop here.
	for i, r := range rowMass {
		if r == 0 {
			return nil, fmt.Errorf("%s: row %d: %w", opNormalize, i, ErrZeroRowMargin)
		}
	}
	for j, c := range colMass {
		if c == 0 {
			return nil, fmt.Errorf("%s: column %d: %w", opNormalize, j, ErrZeroColMargin)
		}
	}

	return &FrequencyModel{P: p, RowMass: rowMass, ColMass: colMass}, nil
}
