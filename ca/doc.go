// Package ca implements Correspondence Analysis (CA) of a contingency
// table: a joint low-dimensional map of row and column categories that
// approximates the chi-square distances between their profiles.
//
// What:
//
//   - Table: an immutable, labeled R×C matrix of non-negative counts.
//   - Normalize: counts → joint frequencies P plus row/column masses r, c.
//   - StandardizedResiduals: P, r, c → S = D_r^(-1/2)·(P − r·cᵗ)·D_c^(-1/2).
//   - Decompose: S → U, Σ, V via dense SVD (gonum), with ε-filtering of
//     numerically null axes and removal of the trivial constant-profile axis.
//   - Coordinates: F = D_r^(-1/2)·U·Σ and G = D_c^(-1/2)·V·Σ.
//   - ComputeDiagnostics: per-axis contributions (CTR) and representation
//     quality (COS²) for every row and column point.
//   - Analyze: the facade running all five stages in order.
//
// Why:
//
//   - Survey analysis: which answer categories attract which respondent groups.
//   - Text mining: terms and documents positioned on shared semantic axes.
//   - Ecology, market research — anywhere two categorical variables interact.
//
// Pipeline invariants:
//
//   - Σr_i = Σc_j = 1; all masses strictly positive past Normalize.
//   - Sum of squared entries of S equals the table's chi-square statistic
//     divided by the grand total (the total inertia).
//   - Singular values are delivered in descending order; at most
//     min(R,C)−1 informative axes are retained.
//   - Per axis k, Σ_i CTR[i,k] = 1; per point, Σ_k COS²[i,k] ≤ 1.
//   - Singular-vector signs are NOT canonical: any axis may flip between
//     runs or library versions. Compare squared or absolute quantities.
//
// Complexity:
//
//   - Normalize, StandardizedResiduals, Coordinates, ComputeDiagnostics:
//     O(R·C) time each, O(R·C) memory.
//   - Decompose: dominated by the dense SVD, O(min(R,C)²·max(R,C)).
//
// Errors:
//
//   - ErrNilTable, ErrRaggedTable, ErrTableTooSmall, ErrNegativeEntry,
//     ErrZeroTotal, ErrNotFinite, ErrLabelMismatch: rejected at ingestion.
//   - ErrZeroRowMargin / ErrZeroColMargin: structurally empty margin,
//     reported with the offending index before any decomposition runs.
//   - ErrFactorizationFailed: the underlying SVD did not converge.
//   - ErrZeroEigenvalue: a null axis reached the diagnostics stage.
//   - ErrBadOption: nonsensical Epsilon or MaxAxes.
//
// A point lying exactly at the table centroid is a valid boundary case,
// not a failure: its COS² row is defined as all zeros.
package ca
