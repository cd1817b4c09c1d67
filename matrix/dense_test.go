// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/rational"
)

func TestNewDense_DefaultZero(t *testing.T) {
	t.Parallel()
	m, err := matrix.NewDense[F](2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, 6, m.Len())
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			v, err := m.At(i, j)
			require.NoError(t, err)
			assert.Zero(t, v)
		}
	}

	q, err := matrix.NewDense[Q](1, 1)
	require.NoError(t, err)
	v, _ := q.At(0, 0)
	assert.True(t, v.IsZero())
}

func TestNewDense_InvalidDimensions(t *testing.T) {
	t.Parallel()
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 3}} {
		_, err := matrix.NewDense[F](dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	}
	_, err := matrix.FromRows[F](nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.Identity[F](0)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestFromRows_Ragged(t *testing.T) {
	t.Parallel()
	_, err := matrix.FromRows([][]F{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrBadShape)
}

func TestAtSet_OutOfRange(t *testing.T) {
	t.Parallel()
	m := MustFloat(t, [][]float64{{1, 2}, {3, 4}})
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		_, err := m.At(ij[0], ij[1])
		require.ErrorIs(t, err, matrix.ErrOutOfRange)
		require.ErrorIs(t, m.Set(ij[0], ij[1], 1), matrix.ErrOutOfRange)
	}
	_, err := m.AtIndex(4)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	v, err := m.AtIndex(3)
	require.NoError(t, err)
	assert.Equal(t, F(4), v)
}

func TestSet_NaNPolicy(t *testing.T) {
	t.Parallel()
	strict, err := matrix.NewDense[F](1, 1)
	require.NoError(t, err)
	require.ErrorIs(t, strict.Set(0, 0, F(math.NaN())), matrix.ErrNaNInf)
	require.ErrorIs(t, strict.Set(0, 0, F(math.Inf(-1))), matrix.ErrNaNInf)

	loose, err := matrix.NewDense[F](1, 1, matrix.WithNoValidateNaNInf())
	require.NoError(t, err)
	require.NoError(t, loose.Set(0, 0, F(math.Inf(1))))

	_, err = matrix.FromRows([][]F{{F(math.NaN())}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	// the policy travels with derived matrices
	c := loose.Clone()
	require.NoError(t, c.Set(0, 0, F(math.NaN())))
}

func TestRowCol(t *testing.T) {
	t.Parallel()
	m := MustFloat(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	assert.Equal(t, matrix.Vector[F]{4, 5, 6}, m.Row(1))
	assert.Equal(t, matrix.Vector[F]{3, 6}, m.Col(2))

	// copies, not views
	r := m.Row(0)
	r[0] = 100
	v, _ := m.At(0, 0)
	assert.Equal(t, F(1), v)

	assert.Panics(t, func() { m.Row(2) })
	assert.Panics(t, func() { m.Row(-1) })
	assert.Panics(t, func() { m.Col(3) })
}

func TestClone_Independent(t *testing.T) {
	t.Parallel()
	m := MustIntsQ(t, [][]int64{{1, 2}, {3, 4}})
	c := m.Clone()
	require.True(t, c.Equal(m))
	require.NoError(t, c.Set(0, 0, rational.Must[int64, uint64](1, 2)))
	assert.False(t, c.Equal(m))
	v, _ := m.At(0, 0)
	assert.Equal(t, rational.Int64(1), v)
}

func TestEqual_Shapes(t *testing.T) {
	t.Parallel()
	a := MustFloat(t, [][]float64{{1, 2}})
	b := MustFloat(t, [][]float64{{1}, {2}})
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a.Clone()))

	var nilM *matrix.Dense[F]
	assert.False(t, a.Equal(nilM))
}

func TestIdentity(t *testing.T) {
	t.Parallel()
	id := MustIdentity[Q](t, 3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			v, _ := id.At(i, j)
			if i == j {
				assert.Equal(t, rational.Int64(1), v)
			} else {
				assert.True(t, v.IsZero())
			}
		}
	}
}

func TestString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "[1, 2.5]\n[-3, 0]\n", MustFloat(t, [][]float64{{1, 2.5}, {-3, 0}}).String())
	q := MustIntsQ(t, [][]int64{{1, -2}})
	assert.Equal(t, "[1/1, -2/1]\n", q.String())
}
