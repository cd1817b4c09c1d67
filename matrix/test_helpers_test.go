// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures over both scalar instantiations.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/rational"
)

type (
	F = matrix.Float
	Q = rational.R64
)

// seed keeps every randomized test reproducible.
const seed = 20240917

// scenarioA is the 4×4 matrix with LU factors
// L = [[1,0,0,0],[-2,1,0,0],[3,5,1,0],[5,2,1,1]] and
// U = [[1,1,1,-5],[0,-4,3,3],[0,0,-2,-2],[0,0,0,-4]], det −32.
var scenarioA = [][]int64{
	{1, 1, 1, -5},
	{-2, -6, 1, 13},
	{3, -17, 16, -2},
	{5, -3, 9, -25},
}

// inverseA has a documented inverse, see TestInverse_Known.
var inverseA = [][]int64{
	{1, 4, 5, -1},
	{-2, 3, -1, 0},
	{2, 1, 1, 0},
	{3, -1, 2, 1},
}

// MustFloat builds a Dense[Float] from rows or fails the test.
func MustFloat(t testing.TB, rows [][]float64) *matrix.Dense[F] {
	t.Helper()
	conv := make([][]F, len(rows))
	for i, r := range rows {
		conv[i] = make([]F, len(r))
		for j, v := range r {
			conv[i][j] = F(v)
		}
	}
	m, err := matrix.FromRows(conv)
	require.NoError(t, err)

	return m
}

// MustIntsF builds a Dense[Float] from integer rows.
func MustIntsF(t testing.TB, rows [][]int64) *matrix.Dense[F] {
	t.Helper()
	m, err := matrix.FromInts(rows, func(v int64) F { return F(v) })
	require.NoError(t, err)

	return m
}

// MustIntsQ builds a Dense[R64] from integer rows.
func MustIntsQ(t testing.TB, rows [][]int64) *matrix.Dense[Q] {
	t.Helper()
	m, err := matrix.FromInts(rows, rational.Int64)
	require.NoError(t, err)

	return m
}

// MustIdentity returns the n×n identity.
func MustIdentity[T matrix.Field[T]](t testing.TB, n int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.Identity[T](n)
	require.NoError(t, err)

	return m
}

// MustMul returns a·b or fails the test.
func MustMul[T matrix.Field[T]](t testing.TB, a, b *matrix.Dense[T]) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.Mul(a, b)
	require.NoError(t, err)

	return m
}

// RequireClose fails unless a and b agree within atol element-wise.
func RequireClose[T matrix.Field[T]](t testing.TB, want, got *matrix.Dense[T], atol float64) {
	t.Helper()
	ok, err := matrix.AllClose(got, want, 0, atol)
	require.NoError(t, err)
	require.True(t, ok, "want:\n%s\ngot:\n%s", want, got)
}

// randomInts returns an n×n matrix with entries in [-limit, limit].
func randomInts(rng *rand.Rand, n int, limit int64) [][]int64 {
	rows := make([][]int64, n)
	for i := range rows {
		rows[i] = make([]int64, n)
		for j := range rows[i] {
			rows[i][j] = rng.Int63n(2*limit+1) - limit
		}
	}

	return rows
}

// toFloats flattens a Dense[Float] row-major.
func toFloats(t testing.TB, m *matrix.Dense[F]) []float64 {
	t.Helper()
	out := make([]float64, 0, m.Len())
	for k := 0; k < m.Len(); k++ {
		v, err := m.AtIndex(k)
		require.NoError(t, err)
		out = append(out, float64(v))
	}

	return out
}
