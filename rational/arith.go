// SPDX-License-Identifier: MIT

package rational

import (
	"math/bits"

	"github.com/katalvlaran/lvnum/factor"
)

// mul64 returns a*b or ErrOverflow when the product needs more than 64 bits.
func mul64(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}

	return lo, nil
}

// sum is the shared kernel of Add and Sub.
//
// Implementation:
//   - Stage 1: common denominator d = lcm(ad, bd), not ad·bd, to bound growth.
//   - Stage 2: scale both magnitudes to d (checked 64-bit products).
//   - Stage 3: signed magnitude addition, then canonicalize through build.
//
// Complexity: O(log d) for the gcd calls.
func (r Rational[I, U]) sum(o Rational[I, U], negate bool) (Rational[I, U], error) {
	an, a, ad := r.parts()
	bn, b, bd := o.parts()
	if negate {
		bn = !bn
	}
	if b == 0 {
		return r, nil
	}
	if a == 0 {
		return build[I, U](bn, b, bd)
	}

	d, err := mul64(ad/factor.GCD(ad, bd), bd)
	if err != nil {
		return Rational[I, U]{}, err
	}
	x, err := mul64(a, d/ad)
	if err != nil {
		return Rational[I, U]{}, err
	}
	y, err := mul64(b, d/bd)
	if err != nil {
		return Rational[I, U]{}, err
	}

	if an == bn {
		s, carry := bits.Add64(x, y, 0)
		if carry != 0 {
			return Rational[I, U]{}, ErrOverflow
		}

		return build[I, U](an, s, d)
	}
	if x >= y {
		return build[I, U](an, x-y, d)
	}

	return build[I, U](bn, y-x, d)
}

// product multiplies r by n/d given as sign and magnitudes. Cross-reducing
// before multiplying keeps the intermediates as small as the result.
func (r Rational[I, U]) product(neg bool, n, d uint64) (Rational[I, U], error) {
	an, a, ad := r.parts()
	g1 := factor.GCD(a, d)
	g2 := factor.GCD(n, ad)
	if g1 == 0 || g2 == 0 {
		// both a and d (or n and ad) are zero: only reachable with d == 0
		return Rational[I, U]{}, ErrDivideByZero
	}
	num, err := mul64(a/g1, n/g2)
	if err != nil {
		return Rational[I, U]{}, err
	}
	den, err := mul64(ad/g2, d/g1)
	if err != nil {
		return Rational[I, U]{}, err
	}

	return build[I, U](an != neg, num, den)
}

// CheckedAdd returns r + o, or ErrOverflow.
func (r Rational[I, U]) CheckedAdd(o Rational[I, U]) (Rational[I, U], error) {
	v, err := r.sum(o, false)
	if err != nil {
		return v, rationalErrorf(opAdd, err)
	}

	return v, nil
}

// CheckedSub returns r - o, or ErrOverflow.
func (r Rational[I, U]) CheckedSub(o Rational[I, U]) (Rational[I, U], error) {
	v, err := r.sum(o, true)
	if err != nil {
		return v, rationalErrorf(opSub, err)
	}

	return v, nil
}

// CheckedMul returns r * o, or ErrOverflow.
func (r Rational[I, U]) CheckedMul(o Rational[I, U]) (Rational[I, U], error) {
	bn, b, bd := o.parts()
	v, err := r.product(bn, b, bd)
	if err != nil {
		return v, rationalErrorf(opMul, err)
	}

	return v, nil
}

// CheckedDiv returns r / o, or ErrDivideByZero / ErrOverflow.
func (r Rational[I, U]) CheckedDiv(o Rational[I, U]) (Rational[I, U], error) {
	if o.num == 0 {
		return Rational[I, U]{}, rationalErrorf(opDiv, ErrDivideByZero)
	}
	bn, b, bd := o.parts()
	v, err := r.product(bn, bd, b)
	if err != nil {
		return v, rationalErrorf(opDiv, err)
	}

	return v, nil
}

// Add returns r + o. Panics with ErrOverflow if the result does not fit.
func (r Rational[I, U]) Add(o Rational[I, U]) Rational[I, U] { return must(r.CheckedAdd(o)) }

// Sub returns r - o. Panics with ErrOverflow if the result does not fit.
func (r Rational[I, U]) Sub(o Rational[I, U]) Rational[I, U] { return must(r.CheckedSub(o)) }

// Mul returns r * o. Panics with ErrOverflow if the result does not fit.
func (r Rational[I, U]) Mul(o Rational[I, U]) Rational[I, U] { return must(r.CheckedMul(o)) }

// Div returns r / o. Panics with ErrDivideByZero when o is zero.
func (r Rational[I, U]) Div(o Rational[I, U]) Rational[I, U] { return must(r.CheckedDiv(o)) }

// MulInt returns r * k.
func (r Rational[I, U]) MulInt(k I) Rational[I, U] {
	return must(r.product(k < 0, magnitude(k), 1))
}

// DivInt returns r / k. Panics with ErrDivideByZero when k == 0.
func (r Rational[I, U]) DivInt(k I) Rational[I, U] {
	if k == 0 {
		panic(rationalErrorf(opDiv, ErrDivideByZero))
	}

	return must(r.product(k < 0, 1, magnitude(k)))
}

// Neg returns -r. Never overflows: numerator magnitudes are symmetric.
func (r Rational[I, U]) Neg() Rational[I, U] { return Rational[I, U]{num: -r.num, den: r.den} }

// Abs returns |r|.
func (r Rational[I, U]) Abs() Rational[I, U] {
	if r.num < 0 {
		return r.Neg()
	}

	return r
}

// Reciprocal returns 1/r, or ErrDivideByZero when r is zero.
func (r Rational[I, U]) Reciprocal() (Rational[I, U], error) {
	neg, n, d := r.parts()
	if n == 0 {
		return Rational[I, U]{}, rationalErrorf(opReciprocal, ErrDivideByZero)
	}
	v, err := build[I, U](neg, d, n)
	if err != nil {
		return v, rationalErrorf(opReciprocal, err)
	}

	return v, nil
}

// Pow returns r^k for k >= 0 by repeated squaring; r^0 == 1.
func (r Rational[I, U]) Pow(k uint) Rational[I, U] {
	out := r.One()
	base := r
	for k > 0 {
		if k&1 == 1 {
			out = out.Mul(base)
		}
		k >>= 1
		if k > 0 {
			base = base.Mul(base)
		}
	}

	return out
}

// must turns an arithmetic error into a panic; operator-style methods use it.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}

	return v
}
