// SPDX-License-Identifier: MIT

package factor

import (
	"fmt"
	"slices"
)

// trialDivisors are checked before any rho attempt; they also catch the
// degenerate even inputs on which the rho polynomial cycles immediately.
var trialDivisors = [...]uint64{2, 3, 5}

// Factorize returns the prime factors of n as an ascending multiset
// (Factorize(24) == [2 2 2 3]). Factorize(1) returns an empty slice.
//
// Implementation:
//   - Stage 1: validate n > 0 and resolve options.
//   - Stage 2: work-list split loop. Each cofactor is tested against the
//     trial divisors 2, 3, 5, then for primality (exact), and only then handed
//     to Pollard's rho with up to `budget` polynomial constants.
//   - Stage 3: sort. Any cofactor rho could not split is kept in the result
//     and reported through *IncompleteError (errors.Is(err, ErrIncomplete)).
//
// Errors:
//   - ErrZero when n == 0.
//   - *IncompleteError when the budget ran out on some composite; the returned
//     slice is then a valid but coarser factorization (its product is still n).
//
// Determinism: the polynomial constants are 1, 2, …, budget; no randomness.
func Factorize(n uint64, opts ...Option) ([]uint64, error) {
	if n == 0 {
		return nil, ErrZero
	}
	o := gatherOptions(opts...)

	var (
		out   = make([]uint64, 0, 8)
		stuck []uint64
		work  = []uint64{n}
		m, d  uint64
		split bool
	)
	for len(work) > 0 {
		m = work[len(work)-1]
		work = work[:len(work)-1]
		if m == 1 {
			continue
		}

		if d = smallDivisor(m); d != 0 {
			out = append(out, d)
			work = append(work, m/d)
			continue
		}
		if IsPrime(m) {
			out = append(out, m)
			continue
		}

		d, split = rho(m, o.budget, o.stepLimit)
		if !split {
			stuck = append(stuck, m)
			continue
		}
		work = append(work, d, m/d)
	}

	slices.Sort(out)
	if len(stuck) == 0 {
		return out, nil
	}

	slices.Sort(stuck)
	out = append(out, stuck...)
	slices.Sort(out)

	return out, &IncompleteError{Composites: stuck}
}

// smallDivisor returns the first trial divisor of m, or 0.
func smallDivisor(m uint64) uint64 {
	for _, p := range trialDivisors {
		if m%p == 0 && m != p {
			return p
		}
	}

	return 0
}

// rho runs Pollard's rho with Floyd cycle detection on the polynomial
// x² + c mod n, for c = 1..budget. It returns a non-trivial divisor of n and
// true, or (0, false) when every attempt degenerated (d == n) or hit the step cap.
// n must be odd, composite and free of the trial divisors.
func rho(n uint64, budget, stepLimit int) (uint64, bool) {
	var x, y, d, diff uint64
	for c := uint64(1); c <= uint64(budget); c++ {
		x, y, d = 2, 2, 1
		for step := 0; d == 1 && step < stepLimit; step++ {
			x = rhoStep(x, c, n)
			y = rhoStep(rhoStep(y, c, n), c, n)
			if x > y {
				diff = x - y
			} else {
				diff = y - x
			}
			d = GCD(diff, n)
		}
		if d != 1 && d != n {
			return d, true
		}
	}

	return 0, false
}

// rhoStep returns x² + c mod n without leaving 64 bits.
func rhoStep(x, c, n uint64) uint64 {
	return addMod(mulMod(x, x, n), c%n, n)
}

// Square is one extracted square factor: Square == Root*Root.
type Square struct {
	Root   uint64
	Square uint64
}

// SquareFactors groups the prime factors of n and returns, for every prime p
// of multiplicity m >= 2, the even part p^(2·⌊m/2⌋) together with its root.
// Dividing n by the product of all Square fields leaves a square-free number.
//
// Errors: ErrZero for n == 0; factorization errors are passed through wrapped,
// so errors.Is(err, ErrIncomplete) identifies an exhausted budget.
func SquareFactors(n uint64, opts ...Option) ([]Square, error) {
	primes, err := Factorize(n, opts...)
	if err != nil {
		return nil, fmt.Errorf("SquareFactors(%d): %w", n, err)
	}

	var out []Square
	for i := 0; i < len(primes); {
		j := i
		for j < len(primes) && primes[j] == primes[i] {
			j++
		}
		if half := (j - i) / 2; half > 0 {
			root := uint64(1)
			for k := 0; k < half; k++ {
				root *= primes[i]
			}
			out = append(out, Square{Root: root, Square: root * root})
		}
		i = j
	}

	return out, nil
}

// LargestSquare returns r such that r² is the largest square dividing n,
// together with the square-free remainder n / r².
func LargestSquare(n uint64, opts ...Option) (root, rest uint64, err error) {
	squares, err := SquareFactors(n, opts...)
	if err != nil {
		return 0, 0, err
	}
	root, rest = 1, n
	for _, s := range squares {
		root *= s.Root
		rest /= s.Square
	}

	return root, rest, nil
}
