// SPDX-License-Identifier: MIT

package rational

import (
	"errors"
	"math"
	"math/bits"

	"github.com/katalvlaran/lvnum/factor"
)

// Float64 returns num/den as a float64 (one correctly rounded division of the
// two converted components).
func (r Rational[I, U]) Float64() float64 {
	return float64(r.num) / float64(r.Den())
}

// Float32 returns num/den as a float32.
func (r Rational[I, U]) Float32() float32 {
	return float32(r.Float64())
}

// FromFloat returns the rational closest to f whose components fit the
// target width.
//
// Implementation:
//   - Stage 1: factor.BestRational(f, MaxInt), a Stern–Brocot search on the
//     fractional part; fails if the integer part alone exceeds MaxInt.
//   - Stage 2: assemble the numerator whole·den + num in 128 bits. When it does
//     not fit, approximate the fractional part alone under the denominator
//     bound MaxInt/(whole+1) and add the integer part back, so large values
//     with long fractions keep their integer part exactly.
//   - Stage 3: as a last resort (the fraction rounded up to the next
//     integer), halve numerator and denominator with rounding until both
//     fit; a denominator of 1 that still does not fit is ErrOverflow.
//   - Stage 4: canonicalize through build.
//
// Errors: ErrNotFinite for NaN/Inf, ErrOverflow for out-of-range magnitudes.
func FromFloat[I Int, U Uint](f float64) (Rational[I, U], error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Rational[I, U]{}, rationalErrorf(opFromFloat, ErrNotFinite)
	}
	limit := maxNum[U]()
	a, err := approximate(f, limit)
	if err != nil {
		return Rational[I, U]{}, rationalErrorf(opFromFloat, err)
	}
	hi, lo := mixedToFraction(a)
	if hi != 0 || lo > limit {
		// Keep the integer part and refit only the fraction: with den at
		// most MaxInt/(whole+1) the numerator whole·den + num stays in range.
		frac := math.Abs(f) - float64(a.Whole)
		if frac < 0 {
			frac = 0
		}
		fa, err := factor.BestRational(frac, max(limit/(a.Whole+1), 1))
		if err != nil {
			return Rational[I, U]{}, rationalErrorf(opFromFloat, err)
		}
		fa.Whole += a.Whole
		fa.Negative = a.Negative
		a = fa
		hi, lo = mixedToFraction(a)
	}

	var carry uint64
	d := a.Den
	for hi != 0 || lo > limit || d > maxDen[U]() {
		if d == 1 {
			return Rational[I, U]{}, rationalErrorf(opFromFloat, ErrOverflow)
		}
		lo, carry = bits.Add64(lo, 1, 0)
		hi += carry
		lo = lo>>1 | hi<<63
		hi >>= 1
		d = (d + 1) >> 1
	}

	r, err := build[I, U](a.Negative, lo, d)
	if err != nil {
		return r, rationalErrorf(opFromFloat, err)
	}

	return r, nil
}

// approximate maps factor.ErrRange onto ErrOverflow.
func approximate(f float64, bound uint64) (factor.Approximation, error) {
	a, err := factor.BestRational(f, bound)
	if errors.Is(err, factor.ErrRange) {
		return a, ErrOverflow
	}

	return a, err
}

// mixedToFraction returns whole·den + num as a 128-bit (hi, lo) pair.
func mixedToFraction(a factor.Approximation) (hi, lo uint64) {
	hi, lo = bits.Mul64(a.Whole, a.Den)
	var carry uint64
	lo, carry = bits.Add64(lo, a.Num, 0)

	return hi + carry, lo
}

// Convert re-expresses r in another width. Widening always succeeds;
// narrowing returns ErrOverflow when a component does not fit.
func Convert[I2 Int, U2 Uint, I Int, U Uint](r Rational[I, U]) (Rational[I2, U2], error) {
	neg, n, d := r.parts()
	v, err := build[I2, U2](neg, n, d)
	if err != nil {
		return v, rationalErrorf(opConvert, err)
	}

	return v, nil
}
