// SPDX-License-Identifier: MIT

// Package factor provides the integer number theory that the rest of lvnum is
// built on: greatest common divisors, least common multiples, bounded
// Pollard's rho factorization, square-factor extraction, and the
// Stern–Brocot search for best rational approximations of a float64.
//
// What & Why:
//
//	rational reduces every value through GCD and LCM, surd pulls perfect
//	squares out of a radicand through SquareFactors, and rational.FromFloat
//	turns a float into a fraction through BestRational. All routines are pure
//	functions over fixed-width unsigned integers: no allocation beyond the
//	returned slices, no global state, safe for concurrent use.
//
// Termination:
//
//	Every loop is bounded. Pollard's rho carries an attempt budget (see
//	WithBudget) and a per-attempt step cap; when the budget runs out the
//	factorization is reported as incomplete through ErrIncomplete, which is
//	never confused with "this number is prime" (IsPrime is exact for uint64).
//
// Complexity:
//
//	GCD/LCM: O(log min(a,b)).
//	IsPrime: O(k log³ n) with the fixed 12-witness set.
//	Factorize: expected O(n^¼) per split, bounded by budget × step cap.
//	BestRational: O(number of continued-fraction terms) ≤ 128 iterations.
package factor
