// Package randtable generates synthetic contingency tables for feeding
// the Correspondence Analysis pipeline: independence-model tables for
// null scenarios and block-associated tables with tunable strength.
//
// What:
//
//   - Independent: counts drawn from a Poisson model around expected
//     counts n·r_i·c_j, with margins r, c sampled from normalized Gamma
//     draws — independent up to sampling noise.
//   - Associated: a (1−strength)/strength mixture of the independence
//     model with a diagonal-band pattern, producing tables whose
//     factorial axes carry genuine association.
//
// Why:
//
//   - Demos and benchmarks need realistic tables without shipping data.
//   - Property tests need both null tables (no informative axes) and
//     associated tables (inertia concentrated on leading axes).
//
// Determinism:
//
//	Generation is a pure function of (dimensions, strength, Options):
//	the same Seed always reproduces the same table. There is no global
//	randomness. A deterministic fix-up bumps one cell in any sampled
//	all-zero row or column so every generated table has positive margins
//	and flows through ca.Normalize without a degenerate-margin error.
//
// Complexity: O(R·C) draws per table.
//
// Errors:
//
//   - ErrBadDimensions: rows or cols < 2 (no meaningful axes below 2×2).
//   - ErrBadTotal: target grand total < 1.
//   - ErrBadStrength: association strength outside [0,1].
package randtable
