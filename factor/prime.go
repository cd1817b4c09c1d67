// SPDX-License-Identifier: MIT

package factor

import "math/bits"

// millerRabinWitnesses is a witness set that makes Miller–Rabin deterministic
// for every n < 2^64.
var millerRabinWitnesses = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// mulMod returns a*b mod m without overflow, using the 128-bit product.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	if hi >= m {
		hi %= m
	}

	return bits.Rem64(hi, lo, m)
}

// addMod returns a + b mod m for a, b < m. The true sum is below 2m, so one
// conditional subtraction reduces it even when the 64-bit add carries.
func addMod(a, b, m uint64) uint64 {
	s, carry := bits.Add64(a, b, 0)
	if carry != 0 || s >= m {
		s -= m
	}

	return s
}

// powMod returns b^e mod m by square-and-multiply.
func powMod(b, e, m uint64) uint64 {
	result := uint64(1) % m
	b %= m
	for e > 0 {
		if e&1 == 1 {
			result = mulMod(result, b, m)
		}
		b = mulMod(b, b, m)
		e >>= 1
	}

	return result
}

// IsPrime reports whether n is prime. Exact for every uint64.
//
// Implementation:
//   - Stage 1: small cases and trial division by the witness primes.
//   - Stage 2: write n-1 = d·2^s and run strong-probable-prime rounds for
//     each witness; the fixed witness set is sufficient below 2^64.
//
// Complexity: O(k·log n) modular multiplications, k = 12.
func IsPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for _, p := range millerRabinWitnesses {
		if n%p == 0 {
			return n == p
		}
	}

	d := n - 1
	s := bits.TrailingZeros64(d)
	d >>= uint(s)

	for _, a := range millerRabinWitnesses {
		x := powMod(a, d, n)
		if x == 1 || x == n-1 {
			continue
		}
		composite := true
		for r := 1; r < s; r++ {
			x = mulMod(x, x, n)
			if x == n-1 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}

	return true
}
