// Package ca: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the ca
// package. All stages MUST return these sentinels and tests MUST check them
// via errors.Is. No stage panics on user-triggered error conditions.

package ca

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "ca: ..." for consistency and to allow easy
// grepping across logs. When context is essential (an offending index, a
// stage name), wrap with fmt.Errorf("ctx: %w", ErrX) at the call site —
// callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil input -> shape -> entry validity (negative/NaN/Inf) -> zero total
// -> labels -> zero margins -> decomposition -> diagnostics.

var (
	// ErrNilTable indicates a nil *Table was passed into the pipeline.
	ErrNilTable = errors.New("ca: table is nil")

	// ErrRaggedTable indicates input rows of differing lengths.
	ErrRaggedTable = errors.New("ca: all rows must have the same length")

	// ErrTableTooSmall indicates fewer than two rows or two columns;
	// no meaningful factorial axes exist below 2×2.
	ErrTableTooSmall = errors.New("ca: table must have at least 2 rows and 2 columns")

	// ErrNegativeEntry indicates a negative count in the input table.
	ErrNegativeEntry = errors.New("ca: table entries must be non-negative")

	// ErrZeroTotal indicates the grand total of the table is zero,
	// so no frequency normalization is possible.
	ErrZeroTotal = errors.New("ca: table total must be positive")

	// ErrNotFinite signals a NaN or ±Inf value where finite values are
	// required: at ingestion, in the residual matrix, or in the
	// decomposition inputs.
	ErrNotFinite = errors.New("ca: NaN or Inf encountered")

	// ErrLabelMismatch indicates label counts that disagree with the
	// table dimensions.
	ErrLabelMismatch = errors.New("ca: label count does not match table dimensions")

	// ErrZeroRowMargin indicates a structurally empty row: its mass is
	// zero and its profile cannot be normalized.
	ErrZeroRowMargin = errors.New("ca: row margin is zero")

	// ErrZeroColMargin indicates a structurally empty column.
	ErrZeroColMargin = errors.New("ca: column margin is zero")

	// ErrNilModel indicates a nil *FrequencyModel argument.
	ErrNilModel = errors.New("ca: frequency model is nil")

	// ErrNilMatrix indicates a nil matrix argument to a stage.
	ErrNilMatrix = errors.New("ca: matrix is nil")

	// ErrNilFactorization indicates a nil *Factorization argument.
	ErrNilFactorization = errors.New("ca: factorization is nil")

	// ErrDimensionMismatch indicates stage inputs whose shapes disagree,
	// e.g. a mass vector shorter than the coordinate matrix it weights.
	ErrDimensionMismatch = errors.New("ca: dimension mismatch")

	// ErrFactorizationFailed indicates the underlying dense SVD routine
	// failed to converge on the residual matrix.
	ErrFactorizationFailed = errors.New("ca: singular value decomposition failed")

	// ErrZeroEigenvalue indicates a zero (or negative) eigenvalue reached
	// the diagnostics stage; ε-filtering in Decompose should prevent this.
	ErrZeroEigenvalue = errors.New("ca: zero eigenvalue in diagnostics")

	// ErrBadOption marks a nonsensical option value (negative or
	// non-finite Epsilon, negative MaxAxes).
	ErrBadOption = errors.New("ca: invalid option value")
)
