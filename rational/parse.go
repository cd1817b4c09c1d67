// SPDX-License-Identifier: MIT

package rational

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// maxDecimalDigits is the longest fractional part whose power-of-ten
// denominator still fits a uint64 (10^19 < 2^64).
const maxDecimalDigits = 19

// String formats r as "{-}{numerator}/{denominator}", e.g. "-3/10", "0/1".
// A canonical value always prints the same string.
func (r Rational[I, U]) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.Den())
}

// MarshalText implements encoding.TextMarshaler using String.
func (r Rational[I, U]) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse.
// The receiver is replaced as a whole; it is never left half-written.
func (r *Rational[I, U]) UnmarshalText(text []byte) error {
	v, err := Parse[I, U](string(text))
	if err != nil {
		return err
	}
	*r = v

	return nil
}

// Parse reads a rational from s. Accepted forms:
//
//	[+|-]digits[.digits]   decimal literal, e.g. "-0.3" → -3/10
//	[+|-]digits/digits     fraction, e.g. "6/8" → 3/4 (the String form)
//
// A decimal literal becomes an exact fraction over a power of ten and is then
// reduced. Either side of the '.' may be empty, but not both.
//
// Errors: ErrSyntax for malformed input, ErrOverflow when a component does not
// fit, ErrDivideByZero for a zero fraction denominator.
func Parse[I Int, U Uint](s string) (Rational[I, U], error) {
	body, neg := s, false
	switch {
	case strings.HasPrefix(body, "-"):
		body, neg = body[1:], true
	case strings.HasPrefix(body, "+"):
		body = body[1:]
	}

	var (
		r   Rational[I, U]
		err error
	)
	if num, den, ok := strings.Cut(body, "/"); ok {
		r, err = parseFraction[I, U](neg, num, den)
	} else {
		r, err = parseDecimal[I, U](neg, body)
	}
	if err != nil {
		return Rational[I, U]{}, fmt.Errorf("rational.%s(%q): %w", opParse, s, err)
	}

	return r, nil
}

// Parse32 is Parse for R32.
func Parse32(s string) (R32, error) { return Parse[int32, uint32](s) }

// Parse64 is Parse for R64.
func Parse64(s string) (R64, error) { return Parse[int64, uint64](s) }

func parseFraction[I Int, U Uint](neg bool, num, den string) (Rational[I, U], error) {
	if !allDigits(num) || !allDigits(den) || num == "" || den == "" {
		return Rational[I, U]{}, ErrSyntax
	}
	n, err := parseDigits(num)
	if err != nil {
		return Rational[I, U]{}, err
	}
	d, err := parseDigits(den)
	if err != nil {
		return Rational[I, U]{}, err
	}

	return build[I, U](neg, n, d)
}

func parseDecimal[I Int, U Uint](neg bool, body string) (Rational[I, U], error) {
	intPart, fracPart, _ := strings.Cut(body, ".")
	if intPart == "" && fracPart == "" {
		return Rational[I, U]{}, ErrSyntax
	}
	if !allDigits(intPart) || !allDigits(fracPart) {
		return Rational[I, U]{}, ErrSyntax
	}
	// trailing zeros only inflate the power of ten
	fracPart = strings.TrimRight(fracPart, "0")
	if len(fracPart) > maxDecimalDigits {
		return Rational[I, U]{}, ErrOverflow
	}

	n, err := parseDigits(intPart + fracPart)
	if err != nil {
		return Rational[I, U]{}, err
	}
	d := uint64(1)
	for i := 0; i < len(fracPart); i++ {
		d *= 10
	}

	return build[I, U](neg, n, d)
}

// parseDigits parses a non-empty run of ASCII digits; "" is 0 so that ".5"
// and "5." are accepted.
func parseDigits(s string) (uint64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, ErrOverflow
		}

		return 0, ErrSyntax
	}

	return v, nil
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
