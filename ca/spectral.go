// Package ca: stage 3 — spectral decomposition.
// The numerical SVD itself is delegated to gonum's dense routines; this
// stage owns the surrounding contract: finiteness validation, ε-filtering
// of numerically null axes, and removal of the trivial constant-profile
// axis so that at most min(R,C)−1 axes survive.

package ca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Factorization is the reduced SVD of the standardized residual matrix:
// S ≈ U·diag(Sigma)·Vᵗ over the retained axes. U is R×K with orthonormal
// columns, V is C×K, Sigma holds K singular values in descending order,
// all ≥ the ε passed to Decompose.
//
// K may be zero: a table whose rows and columns are independent has no
// informative axes. In that case U and V are nil and Sigma is empty;
// downstream stages accept the empty factorization and produce empty
// outputs rather than failing.
//
// Column signs of U and V are implementation-defined (inherent SVD
// ambiguity) — consumers must not rely on them.
type Factorization struct {
	U     *mat.Dense // R×K, nil when K == 0
	V     *mat.Dense // C×K, nil when K == 0
	Sigma []float64  // length K, descending, each ≥ ε
}

// Axes returns the number of retained axes K.
func (f *Factorization) Axes() int {
	if f == nil {
		return 0
	}
	return len(f.Sigma)
}

// Eigenvalues returns λ_k = σ_k² for every retained axis, descending.
func (f *Factorization) Eigenvalues() []float64 {
	if f == nil {
		return nil
	}
	out := make([]float64, len(f.Sigma))
	for k, s := range f.Sigma {
		out[k] = s * s
	}

	return out
}

// Decompose factorizes the standardized residual matrix S.
// Stage 1 (Validate): non-nil S, finite entries (fail-fast with the stage
// name rather than letting NaN leak into the factorization), sane ε.
// Stage 2 (Execute): thin SVD via gonum; singular values arrive descending.
// Stage 3 (Finalize): retain axes with σ_k ≥ ε, capped at min(R,C)−1 —
// the trivial axis tied to the constant profile is dropped explicitly
// here rather than trusting it to come back as exactly zero.
//
// Errors: ErrNilMatrix, ErrBadOption (ε negative or non-finite),
// ErrNotFinite, ErrFactorizationFailed.
// Complexity: O(min(R,C)²·max(R,C)), dominated by the SVD.
func Decompose(s *mat.Dense, eps float64) (*Factorization, error) {
	if s == nil {
		return nil, caErrorf(opDecompose, ErrNilMatrix)
	}
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		return nil, caErrorf(opDecompose, ErrBadOption)
	}

	rows, cols := s.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if v := s.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: entry (%d,%d): %w", opDecompose, i, j, ErrNotFinite)
			}
		}
	}

	var svd mat.SVD
	if ok := svd.Factorize(s, mat.SVDThin); !ok {
		return nil, caErrorf(opDecompose, ErrFactorizationFailed)
	}
	sigma := svd.Values(nil) // descending, length min(R,C)

	// Count informative axes: σ ≥ ε, at most min(R,C)−1 (the trivial
	// constant-profile axis always occupies one slot of the full rank).
	maxAxes := min(rows, cols) - 1
	k := 0
	for k < len(sigma) && k < maxAxes && sigma[k] >= eps {
		k++
	}
	if k == 0 {
		return &Factorization{}, nil // independent table: no axes
	}

	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Copy the retained leading columns into fresh, right-sized storage
	// so the Factorization does not alias SVD workspace.
	uk := mat.NewDense(rows, k, nil)
	uk.Copy(u.Slice(0, rows, 0, k))
	vk := mat.NewDense(cols, k, nil)
	vk.Copy(v.Slice(0, cols, 0, k))

	return &Factorization{U: uk, V: vk, Sigma: sigma[:k:k]}, nil
}

// truncate returns a factorization restricted to the leading maxAxes axes,
// or f unchanged when the cap does not bite. Used by Analyze for the
// MaxAxes option; inputs are never mutated.
func truncate(f *Factorization, maxAxes int) *Factorization {
	if maxAxes <= 0 || f.Axes() <= maxAxes {
		return f
	}
	rows, _ := f.U.Dims()
	cols, _ := f.V.Dims()
	uk := mat.NewDense(rows, maxAxes, nil)
	uk.Copy(f.U.Slice(0, rows, 0, maxAxes))
	vk := mat.NewDense(cols, maxAxes, nil)
	vk.Copy(f.V.Slice(0, cols, 0, maxAxes))

	return &Factorization{U: uk, V: vk, Sigma: f.Sigma[:maxAxes:maxAxes]}
}
