// SPDX-License-Identifier: MIT

package rational

import "math/bits"

// Cmp returns -1 if r < o, 0 if r == o, +1 if r > o.
//
// Implementation: signs decide first; for equal signs the magnitudes are
// cross-multiplied in 128 bits (a·bd vs b·ad), which is exact for every
// width, so ordering never overflows.
func (r Rational[I, U]) Cmp(o Rational[I, U]) int {
	if r == o {
		return 0
	}
	rs, os := r.Sign(), o.Sign()
	if rs != os {
		if rs < os {
			return -1
		}

		return 1
	}

	_, a, ad := r.parts()
	_, b, bd := o.parts()
	xh, xl := bits.Mul64(a, bd)
	yh, yl := bits.Mul64(b, ad)
	c := cmp128(xh, xl, yh, yl)
	if rs < 0 {
		return -c
	}

	return c
}

func cmp128(xh, xl, yh, yl uint64) int {
	switch {
	case xh < yh:
		return -1
	case xh > yh:
		return 1
	case xl < yl:
		return -1
	case xl > yl:
		return 1
	default:
		return 0
	}
}

// Less reports r < o.
func (r Rational[I, U]) Less(o Rational[I, U]) bool { return r.Cmp(o) < 0 }

// Equal reports r == o. Canonical form makes this plain struct equality.
func (r Rational[I, U]) Equal(o Rational[I, U]) bool { return r == o }

// Min returns the smaller of r and o.
func (r Rational[I, U]) Min(o Rational[I, U]) Rational[I, U] {
	if o.Less(r) {
		return o
	}

	return r
}

// Max returns the larger of r and o.
func (r Rational[I, U]) Max(o Rational[I, U]) Rational[I, U] {
	if r.Less(o) {
		return o
	}

	return r
}
