// Package render turns a Correspondence Analysis result into consumable
// output: an aligned text report and a factorial-map image.
//
// What:
//
//   - Summary: eigenvalue/inertia decomposition plus per-point
//     coordinates, contributions (CTR) and representation quality (COS²)
//     for the first factorial plane, written as aligned text.
//   - ScatterMap: the symmetric factorial map — rows and columns plotted
//     together on axes 1×2 — saved as PNG/SVG/PDF (extension-driven).
//
// Why:
//
//	The pipeline in ca/ deliberately computes and never presents; this
//	package is the presentation consumer of its output boundary
//	(coordinates with labels, inertia vector, diagnostics).
//
// Caveats:
//
//   - Axis orientation is not canonical: maps from different runs may be
//     mirrored. Distances and groupings, not signs, carry the meaning.
//   - A map needs a plane: results with fewer than two retained axes are
//     rejected with ErrNoAxes (Summary still works and says so).
//
// Errors:
//
//   - ErrNilResult: nil *ca.Result.
//   - ErrNilWriter: nil output writer for Summary.
//   - ErrNoAxes: fewer than two retained axes for ScatterMap.
//   - ErrEmptyPath: no output path for ScatterMap.
//   - ErrBadDims: non-positive image dimensions.
package render
