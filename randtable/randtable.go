package randtable

import (
	"math"

	xrand "golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/lvlca/ca"
)

// Independent generates a rows×cols contingency table from the
// independence model: margins sampled from normalized Gamma draws, cell
// counts from Poisson around n·r_i·c_j. A nil opts means DefaultOptions().
//
// The result has no built-in association: running it through ca.Analyze
// yields only sampling-noise inertia.
//
// Errors: ErrBadDimensions, ErrBadTotal.
// Complexity: O(R·C).
func Independent(rows, cols int, opts *Options) (*ca.Table, error) {
	return generate(rows, cols, 0, opts)
}

// Associated generates a rows×cols table mixing the independence model
// with a diagonal-band association pattern:
//
//	E[n_ij] = Total · ((1−strength)·r_i·c_j + strength·band_ij)
//
// where band_ij routes each column's share 1/C to one "matching" row.
// strength=0 reduces to Independent (identical draws for equal seeds);
// strength=1 concentrates all expected mass on the band.
//
// Errors: ErrBadDimensions, ErrBadTotal, ErrBadStrength.
// Complexity: O(R·C).
func Associated(rows, cols int, strength float64, opts *Options) (*ca.Table, error) {
	if math.IsNaN(strength) || strength < 0 || strength > 1 {
		return nil, ErrBadStrength
	}

	return generate(rows, cols, strength, opts)
}

// generate is the shared sampling kernel behind Independent and Associated.
// Draw order is fixed (margins row-first, then cells i→j) so equal seeds
// reproduce equal tables regardless of the entry point.
func generate(rows, cols int, strength float64, opts *Options) (*ca.Table, error) {
	if rows < 2 || cols < 2 {
		return nil, ErrBadDimensions
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if math.IsNaN(o.Total) || o.Total < 1 {
		return nil, ErrBadTotal
	}

	src := xrand.NewSource(o.Seed)
	gamma := distuv.Gamma{Alpha: marginAlpha, Beta: 1, Src: src}

	rowMass := sampleMargins(rows, gamma)
	colMass := sampleMargins(cols, gamma)

	// Expected cell weights: mixture of independence and diagonal band.
	values := make([][]float64, rows)
	for i := range values {
		values[i] = make([]float64, cols)
	}
	bandShare := 1.0 / float64(cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			w := (1 - strength) * rowMass[i] * colMass[j]
			if i == bandRow(j, rows, cols) {
				w += strength * bandShare
			}
			if lambda := o.Total * w; lambda > 0 {
				values[i][j] = distuv.Poisson{Lambda: lambda, Src: src}.Rand()
			}
		}
	}

	ensurePositiveMargins(values)

	return ca.NewTable(values)
}

// sampleMargins draws n Gamma variates and normalizes them to a strictly
// positive probability vector.
func sampleMargins(n int, gamma distuv.Gamma) []float64 {
	out := make([]float64, n)
	sum := 0.0
	for i := range out {
		out[i] = gamma.Rand()
		sum += out[i]
	}
	for i := range out {
		out[i] /= sum
	}

	return out
}

// bandRow maps column j onto its associated row: the diagonal when the
// table is square, a proportional band otherwise.
func bandRow(j, rows, cols int) int {
	return j * rows / cols
}

// ensurePositiveMargins bumps one cell in any all-zero row or column so
// the table normalizes without a degenerate-margin error. The bump is
// deterministic (first column / first row) and at most R+C counts, which
// is negligible against Total.
func ensurePositiveMargins(values [][]float64) {
	for i := range values {
		if rowSum(values[i]) == 0 {
			values[i][0]++
		}
	}
	for j := range values[0] {
		colSum := 0.0
		for i := range values {
			colSum += values[i][j]
		}
		if colSum == 0 {
			values[0][j]++
		}
	}
}

func rowSum(row []float64) float64 {
	sum := 0.0
	for _, v := range row {
		sum += v
	}

	return sum
}
