// SPDX-License-Identifier: MIT

// Package rational implements exact fractions over fixed-width integers.
//
// What & Why:
//
//	Rational[I, U] stores a signed numerator I and an unsigned denominator U
//	in canonical reduced form: the denominator is at least 1 and
//	gcd(|numerator|, denominator) == 1 after every constructing operation, so
//	two equal values are always == and print identically. R32 and R64 are the
//	two instantiations the rest of lvnum uses.
//
// Zero value:
//
//	The denominator is stored biased by one, which makes the Go zero value the
//	valid rational 0/1. A zero Rational is therefore the additive identity of
//	the matrix engine without any explicit initialization.
//
// Overflow policy:
//
//	Components never wrap. Constructors, parsers and the Checked* methods
//	return ErrOverflow; the plain operators (Add, Sub, Mul, Div) panic with an
//	error wrapping ErrOverflow, just as Go integer division by zero panics.
//	Numerator magnitudes are limited to MaxInt (2^31-1 or 2^63-1) so Neg and
//	Abs can never overflow.
//
// Text form:
//
//	String prints "{-}{numerator}/{denominator}"; Parse reads that form back
//	as well as decimal literals "[-]digits[.digits]". The pair round-trips
//	exactly.
//
// Concurrency: values are immutable; safe to share between goroutines.
package rational
