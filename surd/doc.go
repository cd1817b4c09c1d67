// SPDX-License-Identifier: MIT

// Package surd implements exact square roots of rationals as
// coefficient × √radicand with a square-free integer radicand.
//
// What & Why:
//
//	A Surd keeps √2/3 or 5·√7 exact where a float would round. New pulls every
//	perfect-square factor out of the radicand (via factor.LargestSquare) and
//	into the rational coefficient, so each value has exactly one
//	representation and == is value equality.
//
// Closure:
//
//	Surds are closed under multiplication and division but not under addition
//	(√2 + √3 has no coefficient × √radicand form), so there is deliberately no
//	Add or Sub. Squared always yields a rational; Rational succeeds only when
//	the radicand is 1.
//
// Errors: ErrZeroRadicand for a zero radicand, ErrNegative for the square root
// of a negative rational; component overflow panics or returns
// rational.ErrOverflow exactly like the rational package.
package surd
