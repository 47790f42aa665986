// Package randtable defines options and sentinel errors for synthetic
// contingency-table generation.
package randtable

import "errors"

// Sentinel errors for randtable operations.
var (
	// ErrBadDimensions indicates fewer than two rows or two columns.
	ErrBadDimensions = errors.New("randtable: table must have at least 2 rows and 2 columns")
	// ErrBadTotal indicates a target grand total below 1.
	ErrBadTotal = errors.New("randtable: total must be at least 1")
	// ErrBadStrength indicates an association strength outside [0,1].
	ErrBadStrength = errors.New("randtable: strength must be in [0,1]")
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultTotal is the target grand total of generated tables.
	DefaultTotal = 1000.0

	// DefaultSeed seeds the random source; generation is fully
	// deterministic per seed.
	DefaultSeed = 1

	// marginAlpha is the Gamma shape used for sampling margins.
	// Moderate concentration: masses vary but stay comfortably positive.
	marginAlpha = 5.0
)

// Options configures table generation.
//
// Fields:
//   - Total — target grand total of the counts (expected, not exact:
//     cells are Poisson draws around it). Must be ≥ 1.
//   - Seed  — seed of the random source; equal seeds reproduce equal
//     tables bit for bit.
//
// Example:
//
//	opts := randtable.DefaultOptions()
//	opts.Seed = 42
//	table, err := randtable.Associated(4, 5, 0.6, &opts)
type Options struct {
	Total float64
	Seed  uint64
}

// DefaultOptions returns the documented defaults: Total=1000, Seed=1.
func DefaultOptions() Options {
	return Options{
		Total: DefaultTotal,
		Seed:  DefaultSeed,
	}
}
