// Package lvlca maps the rows and columns of a contingency table onto a
// shared low-dimensional factorial space — classical Correspondence
// Analysis, from raw counts to publication-ready diagnostics.
//
// 🚀 What is lvlca?
//
//	A small, deterministic library that brings together:
//		• Contingency tables: labeled, validated, immutable count matrices
//		• The CA pipeline: frequencies → residuals → SVD → coordinates → CTR/COS²
//		• Synthetic data: seeded independent and associated random tables
//		• Rendering: aligned text summaries & factorial scatter maps
//
// ✨ Why choose lvlca?
//
//   - Fail-fast guarantees – every stage validates its own numeric preconditions
//   - Sentinel errors – match with errors.Is, context comes wrapped
//   - Pure functions – no global state, no hidden randomness, no locks
//   - Library-grade SVD – dense decomposition delegated to gonum
//
// Everything is organized under three subpackages:
//
//	ca/        — the five-stage Correspondence Analysis pipeline
//	randtable/ — seeded synthetic contingency-table generation
//	render/    — text summaries and factorial-map images
//
// Quick ASCII picture of the pipeline:
//
//	counts ──▶ P, r, c ──▶ S ──▶ U·Σ·Vᵗ ──▶ F, G ──▶ CTR, COS²
//
//	one joint map: rows and columns plotted in the same plane,
//	axes ordered by the share of association (inertia) they explain.
//
// Dive into ca/doc.go for the mathematical contract of each stage.
//
//	go get github.com/katalvlaran/lvlca
package lvlca
