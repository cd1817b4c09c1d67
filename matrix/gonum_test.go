// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnum/matrix"
)

func TestGonum_RoundTrip(t *testing.T) {
	t.Parallel()
	a := MustFloat(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	g, err := matrix.ToGonum(a)
	require.NoError(t, err)
	r, c := g.Dims()
	assert.Equal(t, [2]int{2, 3}, [2]int{r, c})
	assert.Equal(t, 6.0, g.At(1, 2))

	back, err := matrix.FromGonum(g)
	require.NoError(t, err)
	assert.True(t, back.Equal(a))

	// gonum views work too
	tr, err := matrix.FromGonum(g.T())
	require.NoError(t, err)
	want, err := matrix.Transpose(a)
	require.NoError(t, err)
	assert.True(t, tr.Equal(want))
}

func TestGonum_Errors(t *testing.T) {
	t.Parallel()
	_, err := matrix.ToGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.FromGonum(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	g := mat.NewDense(1, 2, []float64{1, math.NaN()})
	_, err = matrix.FromGonum(g)
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	m, err := matrix.FromGonum(g, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	assert.Equal(t, 2, m.Cols())
}

// TestGonum_Oracle checks Det, Inverse and LUPSolve against gonum's LAPACK
// backed implementations on random dense matrices.
func TestGonum_Oracle(t *testing.T) {
	t.Parallel()
	rng := rand.New(rand.NewSource(seed + 3))
	checked := 0
	for trial := 0; trial < 100; trial++ {
		n := 2 + rng.Intn(5)
		data := make([]float64, n*n)
		for k := range data {
			data[k] = rng.NormFloat64()
		}
		g := mat.NewDense(n, n, data)
		if mat.Cond(g, 2) > 1e4 {
			continue
		}
		checked++
		a, err := matrix.FromGonum(g)
		require.NoError(t, err)

		want := mat.Det(g)
		got, err := matrix.Det(a)
		require.NoError(t, err, "trial %d", trial)
		assert.InDelta(t, want, float64(got), 1e-8*math.Max(1, math.Abs(want)), "det, trial %d", trial)

		var inv mat.Dense
		require.NoError(t, inv.Inverse(g))
		mine, err := matrix.Inverse(a)
		require.NoError(t, err, "trial %d", trial)
		oracle, err := matrix.FromGonum(&inv)
		require.NoError(t, err)
		ok, err := matrix.AllClose(mine, oracle, 1e-6, 1e-6)
		require.NoError(t, err)
		assert.True(t, ok, "inverse, trial %d:\nmine:\n%s\ngonum:\n%v", trial, mine, mat.Formatted(&inv))

		b := make([]float64, n)
		for i := range b {
			b[i] = rng.NormFloat64()
		}
		var x mat.VecDense
		require.NoError(t, x.SolveVec(g, mat.NewVecDense(n, b)))
		bv := make(matrix.Vector[F], n)
		for i := range b {
			bv[i] = F(b[i])
		}
		xs, err := matrix.LUPSolve(a, bv)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			assert.InDelta(t, x.AtVec(i), float64(xs[i]), 1e-6*math.Max(1, math.Abs(x.AtVec(i))), "solve, trial %d", trial)
		}
	}
	assert.Greater(t, checked, 50)
}
