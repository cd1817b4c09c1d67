// SPDX-License-Identifier: MIT

package surd

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/katalvlaran/lvnum/factor"
	"github.com/katalvlaran/lvnum/rational"
)

// Surd is coef × √radicand with radicand square-free and >= 1.
// radicand is stored as radicand-1 so that the zero value is 0×√1.
// A zero coefficient always carries radicand 1.
type Surd[I rational.Int, U rational.Uint] struct {
	coef rational.Rational[I, U]
	rad  U // radicand - 1
}

// S32 is a surd over R32 with a 32-bit radicand.
type S32 = Surd[int32, uint32]

// S64 is a surd over R64 with a 64-bit radicand.
type S64 = Surd[int64, uint64]

// New returns coef × √radicand in canonical form.
//
// Implementation:
//   - Stage 1: reject radicand 0 (ErrZeroRadicand).
//   - Stage 2: split radicand = root² · rest with factor.LargestSquare.
//   - Stage 3: coef·root becomes the coefficient, rest the radicand.
//
// Errors: ErrZeroRadicand; factor.ErrIncomplete when the radicand could not be
// fully factored (the square part would be unknown); rational.ErrOverflow.
func New[I rational.Int, U rational.Uint](coef rational.Rational[I, U], radicand U, opts ...factor.Option) (Surd[I, U], error) {
	if radicand == 0 {
		return Surd[I, U]{}, surdErrorf(opNew, ErrZeroRadicand)
	}
	root, rest, err := factor.LargestSquare(uint64(radicand), opts...)
	if err != nil {
		return Surd[I, U]{}, surdErrorf(opNew, err)
	}
	r, err := rational.FromMagnitudes[I, U](false, root, 1)
	if err != nil {
		return Surd[I, U]{}, surdErrorf(opNew, err)
	}
	c, err := coef.CheckedMul(r)
	if err != nil {
		return Surd[I, U]{}, surdErrorf(opNew, err)
	}

	return canonical(c, rest), nil
}

// Must is New that panics on error. Intended for literals and tests.
func Must[I rational.Int, U rational.Uint](coef rational.Rational[I, U], radicand U) Surd[I, U] {
	s, err := New(coef, radicand)
	if err != nil {
		panic(err)
	}

	return s
}

// canonical assembles a surd from an already square-free radicand.
func canonical[I rational.Int, U rational.Uint](c rational.Rational[I, U], radicand uint64) Surd[I, U] {
	if c.IsZero() {
		return Surd[I, U]{}
	}

	return Surd[I, U]{coef: c, rad: U(radicand - 1)}
}

// FromRational returns r × √1.
func FromRational[I rational.Int, U rational.Uint](r rational.Rational[I, U]) Surd[I, U] {
	return Surd[I, U]{coef: r}
}

// FromFloat returns the best rational approximation of f as a surd over √1.
func FromFloat[I rational.Int, U rational.Uint](f float64) (Surd[I, U], error) {
	r, err := rational.FromFloat[I, U](f)
	if err != nil {
		return Surd[I, U]{}, err
	}

	return FromRational(r), nil
}

// Sqrt returns √r exactly.
//
// With r = n/d, both n and d are split into square and square-free parts,
// n = a²·n', d = b²·d', giving √r = a/(b·d') × √(n'·d').
//
// Errors: ErrNegative for r < 0; rational.ErrOverflow when n'·d' does not fit
// the radicand width; factor.ErrIncomplete as in New.
func Sqrt[I rational.Int, U rational.Uint](r rational.Rational[I, U], opts ...factor.Option) (Surd[I, U], error) {
	if r.IsNegative() {
		return Surd[I, U]{}, surdErrorf(opSqrt, ErrNegative)
	}
	if r.IsZero() {
		return Surd[I, U]{}, nil
	}

	a, n, err := factor.LargestSquare(uint64(r.Num()), opts...)
	if err != nil {
		return Surd[I, U]{}, surdErrorf(opSqrt, err)
	}
	b, d, err := factor.LargestSquare(uint64(r.Den()), opts...)
	if err != nil {
		return Surd[I, U]{}, surdErrorf(opSqrt, err)
	}

	rad, err := radicandProduct[U](n, d)
	if err != nil {
		return Surd[I, U]{}, surdErrorf(opSqrt, err)
	}
	// b·d' divides the original denominator, so it fits.
	c, err := rational.FromMagnitudes[I, U](false, a, b*d)
	if err != nil {
		return Surd[I, U]{}, surdErrorf(opSqrt, err)
	}

	return canonical(c, rad), nil
}

// radicandProduct returns x·y when it fits U. For coprime square-free x and y
// the product is square-free again.
func radicandProduct[U rational.Uint](x, y uint64) (uint64, error) {
	hi, lo := bits.Mul64(x, y)
	if hi != 0 || lo > uint64(^U(0)) {
		return 0, rational.ErrOverflow
	}

	return lo, nil
}

// Coef returns the rational coefficient.
func (s Surd[I, U]) Coef() rational.Rational[I, U] { return s.coef }

// Radicand returns the square-free radicand (always >= 1).
func (s Surd[I, U]) Radicand() U { return s.rad + 1 }

// IsZero reports whether s == 0.
func (s Surd[I, U]) IsZero() bool { return s.coef.IsZero() }

// Rational returns s as a rational when the radicand is 1.
func (s Surd[I, U]) Rational() (rational.Rational[I, U], bool) {
	if s.rad != 0 {
		return rational.Rational[I, U]{}, false
	}

	return s.coef, true
}

// CheckedSquared returns coef² × radicand, or rational.ErrOverflow.
func (s Surd[I, U]) CheckedSquared() (rational.Rational[I, U], error) {
	c2, err := s.coef.CheckedMul(s.coef)
	if err != nil {
		return c2, err
	}
	r, err := rational.FromMagnitudes[I, U](false, uint64(s.rad)+1, 1)
	if err != nil {
		return r, err
	}

	return c2.CheckedMul(r)
}

// Squared returns s² as a rational; it is always exact.
// Panics with rational.ErrOverflow if the result does not fit.
func (s Surd[I, U]) Squared() rational.Rational[I, U] {
	v, err := s.CheckedSquared()
	if err != nil {
		panic(err)
	}

	return v
}

// CheckedMul returns s × o.
//
// With g = gcd(r1, r2), r1 = g·x and r2 = g·y for coprime square-free x, y:
// √r1·√r2 = g·√(x·y), and x·y is square-free without refactoring.
func (s Surd[I, U]) CheckedMul(o Surd[I, U]) (Surd[I, U], error) {
	r1, r2 := uint64(s.rad)+1, uint64(o.rad)+1
	g := factor.GCD(r1, r2)
	rad, err := radicandProduct[U](r1/g, r2/g)
	if err != nil {
		return Surd[I, U]{}, surdErrorf(opMul, err)
	}
	gr, err := rational.FromMagnitudes[I, U](false, g, 1)
	if err != nil {
		return Surd[I, U]{}, surdErrorf(opMul, err)
	}
	c, err := s.coef.CheckedMul(o.coef)
	if err == nil {
		c, err = c.CheckedMul(gr)
	}
	if err != nil {
		return Surd[I, U]{}, surdErrorf(opMul, err)
	}

	return canonical(c, rad), nil
}

// CheckedDiv returns s / o, or rational.ErrDivideByZero when o is zero.
//
// √r1/√r2 = √(x/y) = √(x·y)/y with x, y as in CheckedMul, so the quotient
// stays exact instead of truncating r1/r2.
func (s Surd[I, U]) CheckedDiv(o Surd[I, U]) (Surd[I, U], error) {
	if o.coef.IsZero() {
		return Surd[I, U]{}, surdErrorf(opDiv, rational.ErrDivideByZero)
	}
	r1, r2 := uint64(s.rad)+1, uint64(o.rad)+1
	g := factor.GCD(r1, r2)
	x, y := r1/g, r2/g
	rad, err := radicandProduct[U](x, y)
	if err != nil {
		return Surd[I, U]{}, surdErrorf(opDiv, err)
	}
	yr, err := rational.FromMagnitudes[I, U](false, y, 1)
	if err != nil {
		return Surd[I, U]{}, surdErrorf(opDiv, err)
	}
	c, err := s.coef.CheckedDiv(o.coef)
	if err == nil {
		c, err = c.CheckedDiv(yr)
	}
	if err != nil {
		return Surd[I, U]{}, surdErrorf(opDiv, err)
	}

	return canonical(c, rad), nil
}

// Mul returns s × o. Panics with rational.ErrOverflow if the result does not fit.
func (s Surd[I, U]) Mul(o Surd[I, U]) Surd[I, U] { return must(s.CheckedMul(o)) }

// Div returns s / o. Panics with rational.ErrDivideByZero when o is zero.
func (s Surd[I, U]) Div(o Surd[I, U]) Surd[I, U] { return must(s.CheckedDiv(o)) }

// MulRational returns s × r.
func (s Surd[I, U]) MulRational(r rational.Rational[I, U]) Surd[I, U] {
	return canonical(s.coef.Mul(r), uint64(s.rad)+1)
}

// DivRational returns s / r. Panics with rational.ErrDivideByZero when r is zero.
func (s Surd[I, U]) DivRational(r rational.Rational[I, U]) Surd[I, U] {
	return canonical(s.coef.Div(r), uint64(s.rad)+1)
}

// Neg returns -s.
func (s Surd[I, U]) Neg() Surd[I, U] { return Surd[I, U]{coef: s.coef.Neg(), rad: s.rad} }

// Abs returns |s|.
func (s Surd[I, U]) Abs() Surd[I, U] { return Surd[I, U]{coef: s.coef.Abs(), rad: s.rad} }

// Sign returns the sign of the coefficient: -1, 0 or +1.
func (s Surd[I, U]) Sign() int { return s.coef.Sign() }

// Equal reports value equality; canonical form makes it structural.
func (s Surd[I, U]) Equal(o Surd[I, U]) bool { return s == o }

// Float64 returns coef × √radicand as a float64.
func (s Surd[I, U]) Float64() float64 {
	return s.coef.Float64() * math.Sqrt(float64(s.rad)+1)
}

// String formats s as "({coef})*sqrt({radicand})", e.g. "(5/7)*sqrt(7)".
func (s Surd[I, U]) String() string {
	return fmt.Sprintf("(%s)*sqrt(%d)", s.coef, s.Radicand())
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
