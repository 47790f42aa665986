package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/katalvlaran/lvlca/ca"
)

// summaryAxes bounds the per-point columns to the plane people read:
// coordinates, CTR and COS² are printed for axes 1..min(2,K).
const summaryAxes = 2

// Summary writes an aligned text report of a CA result: the eigenvalue
// decomposition with cumulative inertia, then one block per side (rows,
// columns) with mass, coordinates, CTR and COS² on the first plane.
//
// A result with zero retained axes (independent table) produces a short
// note instead of empty tables.
//
// Errors: ErrNilWriter, ErrNilResult, plus any write error from w.
// Complexity: O((R+C)·K) formatting work.
func Summary(w io.Writer, res *ca.Result) error {
	if w == nil {
		return ErrNilWriter
	}
	if res == nil {
		return ErrNilResult
	}

	k := res.Axes()
	if k == 0 {
		_, err := fmt.Fprintf(w, "No informative axes: rows and columns are independent (total inertia %.6f).\n", res.TotalInertia)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "Axis\tEigenvalue\tInertia\tCumulative\n")
	cumulative := 0.0
	for kk := 0; kk < k; kk++ {
		cumulative += res.InertiaPercent[kk]
		fmt.Fprintf(tw, "%d\t%.6f\t%.2f%%\t%.2f%%\n",
			kk+1, res.Eigenvalues[kk], res.InertiaPercent[kk], cumulative)
	}
	fmt.Fprintf(tw, "\nTotal inertia\t%.6f\t\t\n\n", res.TotalInertia)

	shown := summaryAxes
	if k < shown {
		shown = k
	}
	writePointBlock(tw, "Rows", res.RowLabels, res.RowMass, res, shown, true)
	fmt.Fprintln(tw)
	writePointBlock(tw, "Columns", res.ColLabels, res.ColMass, res, shown, false)

	return tw.Flush()
}

// writePointBlock prints one side of the solution. rows selects between
// the row matrices (F, RowCTR, RowCos2) and the column ones.
func writePointBlock(w io.Writer, heading string, labels []string, mass []float64, res *ca.Result, shown int, rows bool) {
	coords, ctr, cos2 := res.ColCoords, res.Diag.ColCTR, res.Diag.ColCos2
	if rows {
		coords, ctr, cos2 = res.RowCoords, res.Diag.RowCTR, res.Diag.RowCos2
	}

	fmt.Fprintf(w, "%s\tMass", heading)
	for kk := 1; kk <= shown; kk++ {
		fmt.Fprintf(w, "\tAxis%d", kk)
	}
	for kk := 1; kk <= shown; kk++ {
		fmt.Fprintf(w, "\tCTR%d", kk)
	}
	for kk := 1; kk <= shown; kk++ {
		fmt.Fprintf(w, "\tCOS2-%d", kk)
	}
	fmt.Fprintln(w)

	for i, label := range labels {
		fmt.Fprintf(w, "%s\t%.4f", label, mass[i])
		for kk := 0; kk < shown; kk++ {
			fmt.Fprintf(w, "\t%+.4f", coords.At(i, kk))
		}
		for kk := 0; kk < shown; kk++ {
			fmt.Fprintf(w, "\t%.3f", ctr.At(i, kk))
		}
		for kk := 0; kk < shown; kk++ {
			fmt.Fprintf(w, "\t%.3f", cos2.At(i, kk))
		}
		fmt.Fprintln(w)
	}
}
