package ca_test

import (
	"testing"

	"github.com/katalvlaran/lvlca/ca"
)

// benchTable builds a deterministic dense 40×25 count table: large enough
// that the SVD dominates, small enough for a stable benchmark.
func benchTable(b *testing.B) *ca.Table {
	b.Helper()
	const rows, cols = 40, 25
	values := make([][]float64, rows)
	for i := 0; i < rows; i++ {
		values[i] = make([]float64, cols)
		for j := 0; j < cols; j++ {
			values[i][j] = float64((i*31+j*17)%23 + 1)
		}
	}
	tb, err := ca.NewTable(values)
	if err != nil {
		b.Fatal(err)
	}

	return tb
}

func BenchmarkAnalyze(b *testing.B) {
	tb := benchTable(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ca.Analyze(tb, nil); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkNormalize(b *testing.B) {
	tb := benchTable(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ca.Normalize(tb); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecompose(b *testing.B) {
	fm, err := ca.Normalize(benchTable(b))
	if err != nil {
		b.Fatal(err)
	}
	s, err := ca.StandardizedResiduals(fm)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ca.Decompose(s, ca.DefaultEpsilon); err != nil {
			b.Fatal(err)
		}
	}
}
