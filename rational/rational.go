// SPDX-License-Identifier: MIT

package rational

import "github.com/katalvlaran/lvnum/factor"

// Int is the numerator constraint. Pair it with the Uint of the same width.
type Int interface {
	~int32 | ~int64
}

// Uint is the denominator constraint. Pair it with the Int of the same width.
type Uint interface {
	~uint32 | ~uint64
}

// Rational is an exact fraction num/den in canonical reduced form.
// den is stored as den-1 so that the zero value is 0/1.
//
// Only the same-width pairings R32 and R64 are meaningful; the limits of a
// value are derived from U.
type Rational[I Int, U Uint] struct {
	num I
	den U // denominator - 1
}

// R32 is a rational with a 32-bit signed numerator and 32-bit denominator.
type R32 = Rational[int32, uint32]

// R64 is a rational with a 64-bit signed numerator and 64-bit denominator.
type R64 = Rational[int64, uint64]

// maxNum is the largest numerator magnitude, symmetric around zero.
func maxNum[U Uint]() uint64 { return uint64(^U(0) >> 1) }

// maxDen is the largest denominator.
func maxDen[U Uint]() uint64 { return uint64(^U(0)) }

// MaxInt returns the largest numerator magnitude a Rational[I, U] can hold.
func MaxInt[I Int, U Uint]() uint64 { return maxNum[U]() }

// build reduces the magnitude pair n/d, checks the width and applies the sign.
// It is the single funnel every constructing operation passes through.
func build[I Int, U Uint](neg bool, n, d uint64) (Rational[I, U], error) {
	if d == 0 {
		return Rational[I, U]{}, ErrDivideByZero
	}
	if n == 0 {
		return Rational[I, U]{}, nil
	}
	if g := factor.GCD(n, d); g > 1 {
		n, d = n/g, d/g
	}
	if n > maxNum[U]() || d > maxDen[U]() {
		return Rational[I, U]{}, ErrOverflow
	}
	v := I(n)
	if neg {
		v = -v
	}

	return Rational[I, U]{num: v, den: U(d - 1)}, nil
}

// New returns num/den in canonical form.
// Errors: ErrDivideByZero when den == 0; ErrOverflow when num is the minimum
// value of I (its magnitude has no positive counterpart).
func New[I Int, U Uint](num I, den U) (Rational[I, U], error) {
	r, err := build[I, U](num < 0, magnitude(num), uint64(den))
	if err != nil {
		return r, rationalErrorf(opNew, err)
	}

	return r, nil
}

// Must is New that panics on error. Intended for literals and tests.
func Must[I Int, U Uint](num I, den U) Rational[I, U] {
	r, err := New(num, den)
	if err != nil {
		panic(err)
	}

	return r
}

// FromPair returns num/den where both parts are signed; the sign is folded
// into the numerator.
func FromPair[I Int, U Uint](num, den I) (Rational[I, U], error) {
	r, err := build[I, U]((num < 0) != (den < 0), magnitude(num), magnitude(den))
	if err != nil {
		return r, rationalErrorf(opNew, err)
	}

	return r, nil
}

// FromMagnitudes returns ±n/d from unsigned magnitudes, for callers that
// compute with uint64 parts (the surd package does).
func FromMagnitudes[I Int, U Uint](neg bool, n, d uint64) (Rational[I, U], error) {
	r, err := build[I, U](neg, n, d)
	if err != nil {
		return r, rationalErrorf(opNew, err)
	}

	return r, nil
}

// FromInt returns v/1. Panics with ErrOverflow only for the minimum value of I.
func FromInt[I Int, U Uint](v I) Rational[I, U] {
	return Must[I, U](v, 1)
}

// New32 is New for R32.
func New32(num int32, den uint32) (R32, error) { return New(num, den) }

// New64 is New for R64.
func New64(num int64, den uint64) (R64, error) { return New(num, den) }

// Int32 returns v as an R32.
func Int32(v int32) R32 { return FromInt[int32, uint32](v) }

// Int64 returns v as an R64.
func Int64(v int64) R64 { return FromInt[int64, uint64](v) }

// magnitude returns |v| as uint64; the minimum value maps to 2^(w-1).
func magnitude[I Int](v I) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}

	return uint64(v)
}

// Num returns the signed numerator.
func (r Rational[I, U]) Num() I { return r.num }

// Den returns the denominator (always >= 1).
func (r Rational[I, U]) Den() U { return r.den + 1 }

// parts returns sign and magnitudes, the shape every kernel works on.
func (r Rational[I, U]) parts() (neg bool, n, d uint64) {
	return r.num < 0, magnitude(r.num), uint64(r.den) + 1
}

// Zero returns 0/1 (the zero value).
func (r Rational[I, U]) Zero() Rational[I, U] { return Rational[I, U]{} }

// One returns 1/1, the multiplicative identity.
func (r Rational[I, U]) One() Rational[I, U] { return Rational[I, U]{num: 1} }

// IsZero reports whether r == 0.
func (r Rational[I, U]) IsZero() bool { return r.num == 0 }

// NearZero reports whether r is exactly zero. Rational arithmetic is exact,
// so the tolerance used for floating-point scalars is ignored.
func (r Rational[I, U]) NearZero(_ float64) bool { return r.num == 0 }

// IsPositive reports r > 0.
func (r Rational[I, U]) IsPositive() bool { return r.num > 0 }

// IsNegative reports r < 0.
func (r Rational[I, U]) IsNegative() bool { return r.num < 0 }

// IsInt reports whether the denominator is 1.
func (r Rational[I, U]) IsInt() bool { return r.den == 0 }

// Sign returns -1, 0 or +1.
func (r Rational[I, U]) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return 1
	default:
		return 0
	}
}
