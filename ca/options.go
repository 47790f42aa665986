// Package ca: pipeline configuration.
// Options follow the plain-struct + DefaultOptions() convention: callers
// copy the defaults, adjust fields, and pass a pointer (nil means defaults).
// There is no ambient state — Epsilon travels explicitly into Decompose.

package ca

import "math"

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultEpsilon is the tolerance below which a singular value is
	// treated as numerically null and its axis discarded. The trivial
	// constant-profile axis lands here as floating-point noise.
	DefaultEpsilon = 1e-10

	// DefaultMaxAxes keeps every informative axis (no extra cap).
	DefaultMaxAxes = 0
)

// Options configures a Correspondence Analysis run.
//
// Fields:
//   - Epsilon — null-singular-value tolerance used by Decompose.
//     Must be finite and non-negative.
//   - MaxAxes — optional cap on the number of retained axes after
//     ε-filtering; 0 keeps all informative axes. Must be ≥ 0.
//
// Example:
//
//	opts := ca.DefaultOptions()
//	opts.MaxAxes = 2 // keep only the plane usually plotted
//	res, err := ca.Analyze(table, &opts)
type Options struct {
	Epsilon float64
	MaxAxes int
}

// DefaultOptions returns the documented defaults:
// Epsilon=1e-10, MaxAxes=0 (keep all informative axes).
func DefaultOptions() Options {
	return Options{
		Epsilon: DefaultEpsilon,
		MaxAxes: DefaultMaxAxes,
	}
}

// validate reports ErrBadOption for nonsensical values.
// Complexity: O(1).
func (o Options) validate() error {
	if math.IsNaN(o.Epsilon) || math.IsInf(o.Epsilon, 0) || o.Epsilon < 0 {
		return caErrorf(opAnalyze, ErrBadOption)
	}
	if o.MaxAxes < 0 {
		return caErrorf(opAnalyze, ErrBadOption)
	}

	return nil
}
