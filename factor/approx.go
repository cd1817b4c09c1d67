// SPDX-License-Identifier: MIT

package factor

import "math"

// maxTerms caps the continued-fraction terms BestRational walks through.
// A float64 has at most ~75 terms before its mantissa is exhausted.
const maxTerms = 128

// twoTo64 is 2^64 as a float64, the first value whose integer part cannot be
// held in a uint64.
const twoTo64 = 1 << 64

// Approximation is a signed mixed number Whole + Num/Den with 0 <= Num < Den.
// Keeping the integer part separate means the search never needs a numerator
// wider than its denominator bound.
type Approximation struct {
	Negative bool
	Whole    uint64
	Num      uint64
	Den      uint64
}

// Float64 returns the approximation as a float64.
func (a Approximation) Float64() float64 {
	v := float64(a.Whole) + float64(a.Num)/float64(a.Den)
	if a.Negative {
		return -v
	}

	return v
}

// BestRational returns the fraction with denominator <= bound that is closest
// to f, found by a Stern–Brocot mediant search on the fractional part of |f|.
//
// Implementation:
//   - Stage 1: reject NaN/Inf (ErrNotFinite), bound 0 (ErrBound), and inputs
//     whose integer part alone exceeds bound (ErrRange).
//   - Stage 2: narrow [nl/dl, nr/dr] = [0/1, 1/1] around frac. Runs of moves
//     in the same direction are batched: k consecutive left moves collapse to
//     nl += k·nr, dl += k·dr, which is one continued-fraction term.
//   - Stage 3: stop when a bound or mediant equals frac exactly, or when the
//     next mediant denominator would exceed bound; return the closer bound
//     (the left one on a tie).
//
// Complexity: O(maxTerms) iterations, O(1) memory.
func BestRational(f float64, bound uint64) (Approximation, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Approximation{}, ErrNotFinite
	}
	if bound == 0 {
		return Approximation{}, ErrBound
	}

	neg := math.Signbit(f) && f != 0
	abs := math.Abs(f)
	if abs >= twoTo64 {
		return Approximation{}, ErrRange
	}
	ip := math.Floor(abs)
	whole := uint64(ip)
	if whole > bound {
		return Approximation{}, ErrRange
	}
	frac := abs - ip

	out := Approximation{Negative: neg, Whole: whole, Den: 1}
	if frac == 0 {
		return out, nil
	}

	nl, dl := uint64(0), uint64(1)
	nr, dr := uint64(1), uint64(1)
	var (
		mn, md uint64
		mv     float64
		k      uint64
	)
	for term := 0; term < maxTerms; term++ {
		mn, md = nl+nr, dl+dr
		if md > bound || md < dl {
			break
		}
		mv = float64(mn) / float64(md)
		if mv == frac {
			nl, dl, nr, dr = mn, md, mn, md
			break
		}

		if mv < frac {
			// frac lies right of the mediant: pull the left bound k steps.
			k = batch(frac*float64(dl)-float64(nl), float64(nr)-frac*float64(dr), (bound-dl)/dr)
			if k > 1 && float64(nl+k*nr)/float64(dl+k*dr) > frac {
				k--
			}
			nl, dl = nl+k*nr, dl+k*dr
			if float64(nl)/float64(dl) == frac {
				nr, dr = nl, dl
				break
			}
		} else {
			// frac lies left of the mediant: pull the right bound k steps.
			k = batch(float64(nr)-frac*float64(dr), frac*float64(dl)-float64(nl), (bound-dr)/dl)
			if k > 1 && float64(nr+k*nl)/float64(dr+k*dl) < frac {
				k--
			}
			nr, dr = nr+k*nl, dr+k*dl
			if float64(nr)/float64(dr) == frac {
				nl, dl = nr, dr
				break
			}
		}
	}

	errL := frac - float64(nl)/float64(dl)
	errR := float64(nr)/float64(dr) - frac
	if errL <= errR {
		out.Num, out.Den = nl, dl
	} else {
		out.Num, out.Den = nr, dr
	}
	if out.Num == out.Den {
		out.Whole++
		out.Num, out.Den = 0, 1
	}

	return out, nil
}

// batch returns ⌊num/den⌋ clamped to [1, limit]. A non-positive den (the
// bound already sits on frac up to rounding) means "move as far as allowed".
func batch(num, den float64, limit uint64) uint64 {
	if limit < 1 {
		return 1
	}
	if den <= 0 {
		return limit
	}
	q := math.Floor(num / den)
	if q < 1 {
		return 1
	}
	if q >= float64(limit) {
		return limit
	}

	return uint64(q)
}
