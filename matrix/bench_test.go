// SPDX-License-Identifier: MIT
// Package matrix_test provides benchmarks for the factorization and product
// kernels, using deterministic random fill.
package matrix_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnum/matrix"
)

// benchSizes are the Float matrix sizes to benchmark.
var benchSizes = []int{32, 64, 128}

// sinks to defeat dead-code elimination
var (
	sinkF *matrix.Dense[F]
	sinkQ *matrix.Dense[Q]
	sinkS F
)

func randomFloat(b *testing.B, n int, s int64) *matrix.Dense[F] {
	b.Helper()
	rng := rand.New(rand.NewSource(s))
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = rng.NormFloat64()
		}
	}

	return MustFloat(b, rows)
}

// tridiagonal returns the n×n second-difference matrix; its exact inverse has
// small entries, so R64 never overflows.
func tridiagonal(n int) [][]int64 {
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		rows[i][i] = 2
		if i > 0 {
			rows[i][i-1] = -1
		}
		if i+1 < n {
			rows[i][i+1] = -1
		}
	}

	return rows
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := randomFloat(b, n, 1337), randomFloat(b, n, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = m
			}
		})
	}
}

func BenchmarkLUP(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomFloat(b, n, 7)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, u, _, err := matrix.LUP(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = u
			}
		})
	}
}

func BenchmarkDet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomFloat(b, n, 11)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				d, err := matrix.Det(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkS = d
			}
		})
	}
}

func BenchmarkInverse(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := randomFloat(b, n, 23)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkF = m
			}
		})
	}
}

func BenchmarkInverseRational(b *testing.B) {
	b.ReportAllocs()
	for _, n := range []int{8, 16} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			a := MustIntsQ(b, tridiagonal(n))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m, err := matrix.Inverse(a)
				if err != nil {
					b.Fatal(err)
				}
				sinkQ = m
			}
		})
	}
}
