// Package ca: input data model.
// Table is the single entry point of the pipeline: once constructed it is
// immutable, fully validated, and safe to share between any number of
// read-only consumers.

package ca

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Table is an immutable R×C contingency table of non-negative counts with
// row and column labels. Construct it with NewTable; the zero value is not
// usable. Labels pass through the pipeline unchanged and surface again on
// the Result for the presentation layer.
type Table struct {
	data      *mat.Dense // R×C counts, defensively copied at construction
	rowLabels []string   // length R
	colLabels []string   // length C
	total     float64    // grand total, strictly positive
}

// TableOption customizes Table construction (labels only; numeric policy
// is not optional). Options are validated inside NewTable so that a Table
// can never exist in an inconsistent state.
type TableOption func(*tableConfig)

type tableConfig struct {
	rowLabels []string
	colLabels []string
}

// WithRowLabels attaches row labels; the count must equal the number of
// table rows or NewTable fails with ErrLabelMismatch.
func WithRowLabels(labels ...string) TableOption {
	return func(c *tableConfig) { c.rowLabels = labels }
}

// WithColLabels attaches column labels; the count must equal the number of
// table columns or NewTable fails with ErrLabelMismatch.
func WithColLabels(labels ...string) TableOption {
	return func(c *tableConfig) { c.colLabels = labels }
}

// NewTable builds an immutable contingency table from values.
// Stage 1 (Validate): rectangular shape, R≥2 and C≥2, finite non-negative
// entries, positive grand total, label counts.
// Stage 2 (Prepare): defensive copy into dense row-major storage; default
// labels "R1…", "C1…" where none are supplied.
// Stage 3 (Finalize): return the Table or the first violated sentinel.
//
// Errors: ErrTableTooSmall, ErrRaggedTable, ErrNotFinite (with the
// offending cell), ErrNegativeEntry (with the offending cell),
// ErrZeroTotal, ErrLabelMismatch.
// Complexity: O(R·C) time and memory.
func NewTable(values [][]float64, opts ...TableOption) (*Table, error) {
	rows := len(values)
	if rows < 2 {
		return nil, caErrorf(opNewTable, ErrTableTooSmall)
	}
	cols := len(values[0])
	if cols < 2 {
		return nil, caErrorf(opNewTable, ErrTableTooSmall)
	}

	// Validate rectangularity before touching any entry.
	for i := 1; i < rows; i++ {
		if len(values[i]) != cols {
			return nil, fmt.Errorf("%s: row %d: %w", opNewTable, i, ErrRaggedTable)
		}
	}

	// Copy and validate entries in one deterministic i→j pass.
	data := mat.NewDense(rows, cols, nil)
	total := 0.0
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v := values[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%s: entry (%d,%d): %w", opNewTable, i, j, ErrNotFinite)
			}
			if v < 0 {
				return nil, fmt.Errorf("%s: entry (%d,%d): %w", opNewTable, i, j, ErrNegativeEntry)
			}
			data.Set(i, j, v)
			total += v
		}
	}
	if total <= 0 {
		return nil, caErrorf(opNewTable, ErrZeroTotal)
	}

	// Gather label options.
	var cfg tableConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rowLabels != nil && len(cfg.rowLabels) != rows {
		return nil, fmt.Errorf("%s: %d row labels for %d rows: %w", opNewTable, len(cfg.rowLabels), rows, ErrLabelMismatch)
	}
	if cfg.colLabels != nil && len(cfg.colLabels) != cols {
		return nil, fmt.Errorf("%s: %d column labels for %d columns: %w", opNewTable, len(cfg.colLabels), cols, ErrLabelMismatch)
	}

	return &Table{
		data:      data,
		rowLabels: defaultLabels(cfg.rowLabels, "R", rows),
		colLabels: defaultLabels(cfg.colLabels, "C", cols),
		total:     total,
	}, nil
}

// defaultLabels returns the supplied labels (copied) or generated
// placeholders "R1".."Rn" / "C1".."Cn".
func defaultLabels(supplied []string, prefix string, n int) []string {
	out := make([]string, n)
	if supplied != nil {
		copy(out, supplied)
		return out
	}
	for i := 0; i < n; i++ {
		out[i] = fmt.Sprintf("%s%d", prefix, i+1)
	}

	return out
}

// Rows returns the number of table rows. Complexity: O(1).
func (t *Table) Rows() int {
	r, _ := t.data.Dims()
	return r
}

// Cols returns the number of table columns. Complexity: O(1).
func (t *Table) Cols() int {
	_, c := t.data.Dims()
	return c
}

// At returns the count at (row, col). Indexes follow gonum convention and
// panic when out of range (programmer error, not data error).
func (t *Table) At(row, col int) float64 {
	return t.data.At(row, col)
}

// Total returns the grand total of the table, always > 0.
func (t *Table) Total() float64 {
	return t.total
}

// RowLabels returns a copy of the row labels (length Rows()).
func (t *Table) RowLabels() []string {
	out := make([]string, len(t.rowLabels))
	copy(out, t.rowLabels)
	return out
}

// ColLabels returns a copy of the column labels (length Cols()).
func (t *Table) ColLabels() []string {
	out := make([]string, len(t.colLabels))
	copy(out, t.colLabels)
	return out
}
