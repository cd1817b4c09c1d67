// SPDX-License-Identifier: MIT
// Package rational: sentinel error set.
// Every message is prefixed with "rational: ..."; match with errors.Is.

package rational

import (
	"errors"
	"fmt"
)

var (
	// ErrDivideByZero is returned (or panicked, from Div) when a denominator
	// would become zero: New(n, 0), Reciprocal of zero, division by zero.
	ErrDivideByZero = errors.New("rational: divide by zero")

	// ErrOverflow signals that a result does not fit the fixed-width components.
	ErrOverflow = errors.New("rational: component overflow")

	// ErrSyntax signals a malformed textual rational.
	ErrSyntax = errors.New("rational: invalid syntax")

	// ErrNotFinite signals a NaN or ±Inf float input.
	ErrNotFinite = errors.New("rational: value is not finite")
)

// Operation name constants for uniform error wrapping.
const (
	opNew        = "New"
	opAdd        = "Add"
	opSub        = "Sub"
	opMul        = "Mul"
	opDiv        = "Div"
	opReciprocal = "Reciprocal"
	opFromFloat  = "FromFloat"
	opParse      = "Parse"
	opConvert    = "Convert"
)

// rationalErrorf wraps err with an operation tag, preserving it for errors.Is.
// Use only when err != nil.
func rationalErrorf(tag string, err error) error {
	return fmt.Errorf("rational.%s: %w", tag, err)
}
