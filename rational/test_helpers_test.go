// SPDX-License-Identifier: MIT
// Package rational_test contains test helpers.
//
// Purpose:
//   - Deterministic random fixtures for the algebraic-law tests.
//   - Invariant checks shared by every test that constructs a value.

package rational_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnum/factor"
	"github.com/katalvlaran/lvnum/rational"
	"github.com/stretchr/testify/require"
)

// seed keeps every random sample reproducible.
const seed = 20240917

// sampleSize is the number of random values drawn per property.
const sampleSize = 500

// r32 builds an R32 literal or fails the test.
func r32(t *testing.T, num int32, den uint32) rational.R32 {
	t.Helper()
	v, err := rational.New32(num, den)
	require.NoError(t, err)

	return v
}

// randomR32 draws n rationals with components below limit (limit keeps sums
// and products inside 32 bits).
func randomR32(n int, limit int32) []rational.R32 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]rational.R32, n)
	for i := range out {
		num := rng.Int31n(2*limit+1) - limit
		den := uint32(rng.Int31n(limit) + 1)
		out[i] = rational.Must(num, den)
	}

	return out
}

// requireCanonical asserts den >= 1 and gcd(|num|, den) == 1.
func requireCanonical[I rational.Int, U rational.Uint](t *testing.T, r rational.Rational[I, U]) {
	t.Helper()
	require.GreaterOrEqual(t, uint64(r.Den()), uint64(1), "denominator must be positive: %s", r)
	n := r.Num()
	if n < 0 {
		n = -n
	}
	g := factor.GCD(uint64(n), uint64(r.Den()))
	if n == 0 {
		require.Equal(t, uint64(1), uint64(r.Den()), "zero must be 0/1: %s", r)

		return
	}
	require.Equal(t, uint64(1), g, "not reduced: %s", r)
}
