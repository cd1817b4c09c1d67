// SPDX-License-Identifier: MIT

package factor

import "golang.org/x/exp/constraints"

// GCD returns the greatest common divisor of a and b (Euclid).
// GCD(0, b) == b and GCD(0, 0) == 0.
//
// Complexity: O(log min(a,b)).
func GCD[U constraints.Unsigned](a, b U) U {
	for a != 0 {
		a, b = b%a, a
	}

	return b
}

// LCM returns the least common multiple of a and b.
// It divides before multiplying (a/gcd*b) to keep intermediates small, but the
// caller must still ensure the result fits U; on overflow the value wraps with
// Go's unsigned semantics. Use LCMChecked when that is not guaranteed.
// LCM(0, x) == 0.
func LCM[U constraints.Unsigned](a, b U) U {
	if a == 0 || b == 0 {
		return 0
	}

	return a / GCD(a, b) * b
}

// LCMChecked is LCM with overflow detection; it returns ErrOverflow instead of
// a wrapped value.
func LCMChecked[U constraints.Unsigned](a, b U) (U, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	q := a / GCD(a, b)
	r := q * b
	if r/b != q {
		return 0, ErrOverflow
	}

	return r, nil
}
