// SPDX-License-Identifier: MIT

package surd_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvnum/factor"
	"github.com/katalvlaran/lvnum/rational"
	"github.com/katalvlaran/lvnum/surd"
)

func r64(n int64, d uint64) rational.R64 { return rational.Must(n, d) }

func TestSurd_ZeroValue(t *testing.T) {
	t.Parallel()
	var s surd.S64
	assert.True(t, s.IsZero())
	assert.Equal(t, uint64(1), s.Radicand())
	assert.Equal(t, "(0/1)*sqrt(1)", s.String())
	r, ok := s.Rational()
	require.True(t, ok)
	assert.True(t, r.IsZero())
}

func TestNew_Canonical(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		coef     rational.R64
		radicand uint64
		want     string
	}{
		{"square-free", r64(1, 1), 6, "(1/1)*sqrt(6)"},
		{"twelve", r64(1, 1), 12, "(2/1)*sqrt(3)"},
		{"fifty", r64(3, 2), 50, "(15/2)*sqrt(2)"},
		{"perfect square", r64(-1, 3), 36, "(-2/1)*sqrt(1)"},
		{"zero coefficient", r64(0, 1), 50, "(0/1)*sqrt(1)"},
		{"prime power", r64(1, 1), 2 * 2 * 2 * 2 * 2, "(4/1)*sqrt(2)"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			s, err := surd.New(tc.coef, tc.radicand)
			require.NoError(t, err)
			assert.Equal(t, tc.want, s.String())
		})
	}
}

func TestNew_Errors(t *testing.T) {
	t.Parallel()
	_, err := surd.New(r64(1, 1), 0)
	require.ErrorIs(t, err, surd.ErrZeroRadicand)

	_, err = surd.New(r64(1, 1), 2*10403, factor.WithBudget(1), factor.WithStepLimit(1))
	require.ErrorIs(t, err, factor.ErrIncomplete)

	assert.Panics(t, func() { surd.Must(r64(1, 1), 0) })
}

func TestSqrt(t *testing.T) {
	t.Parallel()
	s, err := surd.Sqrt(r64(25, 7))
	require.NoError(t, err)
	assert.Equal(t, "(5/7)*sqrt(7)", s.String())
	assert.Equal(t, r64(25, 7), s.Squared())

	s, err = surd.Sqrt(r64(9, 4))
	require.NoError(t, err)
	r, ok := s.Rational()
	require.True(t, ok)
	assert.Equal(t, r64(3, 2), r)

	s, err = surd.Sqrt(r64(0, 1))
	require.NoError(t, err)
	assert.True(t, s.IsZero())

	_, err = surd.Sqrt(r64(-1, 2))
	require.ErrorIs(t, err, surd.ErrNegative)
}

func TestSqrt_SquaredRoundTrip(t *testing.T) {
	t.Parallel()
	for n := int64(1); n <= 60; n++ {
		for d := uint64(1); d <= 60; d++ {
			r := r64(n, d)
			s, err := surd.Sqrt(r)
			require.NoError(t, err)
			require.Equal(t, r, s.Squared(), "sqrt(%s)^2", r)
		}
	}
}

func TestSquared_UnitCoefficient(t *testing.T) {
	t.Parallel()
	for k := uint64(1); k <= 500; k++ {
		s, err := surd.New(r64(1, 1), k)
		require.NoError(t, err)
		require.Equal(t, rational.Int64(int64(k)), s.Squared(), "k=%d", k)
	}
}

func TestMulDiv(t *testing.T) {
	t.Parallel()
	root := func(k uint64) surd.S64 { return surd.Must(r64(1, 1), k) }

	r, ok := root(2).Mul(root(2)).Rational()
	require.True(t, ok)
	assert.Equal(t, rational.Int64(2), r)

	assert.Equal(t, "(2/1)*sqrt(15)", root(6).Mul(root(10)).String())
	assert.Equal(t, "(6/1)*sqrt(1)", root(12).Mul(root(3)).String())

	q := root(2).Div(root(3))
	assert.Equal(t, "(1/3)*sqrt(6)", q.String())
	assert.Equal(t, r64(2, 3), q.Squared())

	q = surd.Must(r64(3, 1), 10).Div(surd.Must(r64(-1, 2), 6))
	assert.Equal(t, r64(-2, 1), q.Coef())
	assert.Equal(t, uint64(15), q.Radicand())
	assert.InDelta(t, 3*math.Sqrt(10)/(-0.5*math.Sqrt(6)), q.Float64(), 1e-12)

	assert.Panics(t, func() { root(2).Div(surd.S64{}) })
}

func TestMul_Overflow(t *testing.T) {
	t.Parallel()
	a := surd.Must(rational.Int32(1), uint32(65537))
	b := surd.Must(rational.Int32(1), uint32(65539))
	_, err := a.CheckedMul(b)
	require.ErrorIs(t, err, rational.ErrOverflow)
	assert.Panics(t, func() { a.Mul(b) })

	// the same product fits the wide radicand
	wide := surd.Must(r64(1, 1), 65537).Mul(surd.Must(r64(1, 1), 65539))
	assert.Equal(t, uint64(65537*65539), wide.Radicand())
}

func TestRationalOps(t *testing.T) {
	t.Parallel()
	s := surd.Must(r64(1, 1), 3)
	assert.Equal(t, "(3/4)*sqrt(3)", s.MulRational(r64(3, 4)).String())
	assert.Equal(t, "(4/3)*sqrt(3)", s.DivRational(r64(3, 4)).String())
	assert.True(t, s.MulRational(r64(0, 1)).Equal(surd.S64{}))
	assert.Equal(t, "(-1/1)*sqrt(3)", s.Neg().String())
	assert.Equal(t, s, s.Neg().Abs())
	assert.Equal(t, -1, s.Neg().Sign())
	assert.Panics(t, func() { s.DivRational(r64(0, 1)) })

	_, ok := s.Rational()
	assert.False(t, ok)
}

func TestFloat(t *testing.T) {
	t.Parallel()
	s := surd.Must(r64(1, 1), 2)
	assert.InDelta(t, math.Sqrt2, s.Float64(), 1e-15)

	f, err := surd.FromFloat[int64, uint64](0.375)
	require.NoError(t, err)
	assert.Equal(t, "(3/8)*sqrt(1)", f.String())

	_, err = surd.FromFloat[int64, uint64](math.NaN())
	require.ErrorIs(t, err, rational.ErrNotFinite)

	assert.Equal(t, surd.FromRational(r64(3, 8)), f)
}
