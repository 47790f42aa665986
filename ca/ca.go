// Package ca — public facade.
//
// Purpose:
//   - Provide the single entry point (Analyze) that chains the five
//     pipeline stages without duplicating any of their logic.
//   - Keep error wrapping uniform: every stage failure surfaces with an
//     operation tag, and sentinels stay matchable via errors.Is.
//
// Determinism & Policy:
//   - Data flows strictly forward; every stage returns fresh immutable
//     values and never reads back from a later stage.
//   - All configuration travels explicitly through Options; there is no
//     package-level mutable state.

package ca

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Operation name constants for unified error wrapping.
const (
	opNewTable    = "NewTable"
	opNormalize   = "Normalize"
	opResiduals   = "StandardizedResiduals"
	opDecompose   = "Decompose"
	opCoordinates = "Coordinates"
	opDiagnostics = "ComputeDiagnostics"
	opAnalyze     = "Analyze"
)

// caErrorf wraps err with an operation tag, preserving the sentinel for
// errors.Is. Call only with err != nil.
func caErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Result is the complete output of a Correspondence Analysis run:
// everything the presentation layer consumes, with axes delivered in
// descending order of explained inertia so "axis 1, axis 2" always
// denotes the two most informative dimensions. Immutable once returned.
type Result struct {
	// RowLabels and ColLabels pass through from the input table.
	RowLabels []string
	ColLabels []string

	// RowMass and ColMass are the marginal relative frequencies.
	RowMass []float64
	ColMass []float64

	// RowCoords (R×K) and ColCoords (C×K) are the principal factorial
	// coordinates F and G. Both are nil when Axes() == 0.
	RowCoords *mat.Dense
	ColCoords *mat.Dense

	// Eigenvalues λ_k = σ_k², descending. InertiaPercent[k] is
	// 100·λ_k/TotalInertia; the percentages of all informative axes sum
	// to 100 (a MaxAxes cap truncates the list without renormalizing).
	Eigenvalues    []float64
	InertiaPercent []float64

	// TotalInertia is the chi-square statistic divided by the grand
	// total: the sum of squared standardized residuals.
	TotalInertia float64

	// Diag holds CTR and COS² matrices for rows and columns.
	Diag *Diagnostics
}

// Axes returns the number of retained factorial axes.
func (r *Result) Axes() int {
	return len(r.Eigenvalues)
}

// Analyze runs the full five-stage pipeline on t:
// frequency normalization → standardized residuals → SVD → factorial
// coordinates → CTR/COS² diagnostics. A nil opts means DefaultOptions().
//
// The computation is deterministic and pure: the same table and options
// always produce the same Result (up to the inherent sign ambiguity of
// the singular vectors — compare squared quantities across runs).
//
// Errors: any sentinel from the individual stages, each detected at the
// earliest stage able to observe it; a table with a structurally empty
// margin never reaches the decomposition.
func Analyze(t *Table, opts *Options) (*Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	fm, err := Normalize(t)
	if err != nil {
		return nil, caErrorf(opAnalyze, err)
	}

	s, err := StandardizedResiduals(fm)
	if err != nil {
		return nil, caErrorf(opAnalyze, err)
	}
	totalInertia := TotalInertia(s)

	fact, err := Decompose(s, o.Epsilon)
	if err != nil {
		return nil, caErrorf(opAnalyze, err)
	}
	fact = truncate(fact, o.MaxAxes)

	F, G, err := Coordinates(fact, fm.RowMass, fm.ColMass)
	if err != nil {
		return nil, caErrorf(opAnalyze, err)
	}

	eigenvalues := fact.Eigenvalues()
	diag, err := ComputeDiagnostics(F, G, fm.RowMass, fm.ColMass, eigenvalues)
	if err != nil {
		return nil, caErrorf(opAnalyze, err)
	}

	percent := make([]float64, len(eigenvalues))
	for k, lambda := range eigenvalues {
		percent[k] = 100 * lambda / totalInertia // totalInertia ≥ λ_1 > 0 when K ≥ 1
	}

	return &Result{
		RowLabels:      t.RowLabels(),
		ColLabels:      t.ColLabels(),
		RowMass:        fm.RowMass,
		ColMass:        fm.ColMass,
		RowCoords:      F,
		ColCoords:      G,
		Eigenvalues:    eigenvalues,
		InertiaPercent: percent,
		TotalInertia:   totalInertia,
		Diag:           diag,
	}, nil
}
