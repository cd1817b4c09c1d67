// SPDX-License-Identifier: MIT
// Package factor: sentinel error set.
// Every message is prefixed with "factor: ..." and callers match with errors.Is.

package factor

import (
	"errors"
	"fmt"
)

var (
	// ErrZero is returned when zero is passed where a positive integer is required
	// (factorizing or square-splitting 0 has no meaning).
	ErrZero = errors.New("factor: zero has no factorization")

	// ErrIncomplete signals that Pollard's rho exhausted its budget on at least one
	// composite. It is distinct from a prime result: primes are detected exactly.
	ErrIncomplete = errors.New("factor: factorization incomplete")

	// ErrOverflow is returned by checked helpers when the result does not fit the width.
	ErrOverflow = errors.New("factor: integer overflow")

	// ErrRange is returned by BestRational when the integer part of the input alone
	// exceeds the magnitude bound.
	ErrRange = errors.New("factor: value exceeds magnitude bound")

	// ErrNotFinite is returned by BestRational for NaN and ±Inf inputs.
	ErrNotFinite = errors.New("factor: value is not finite")

	// ErrBound is returned by BestRational when the denominator bound is zero.
	ErrBound = errors.New("factor: denominator bound must be > 0")
)

// IncompleteError carries the composites Pollard's rho could not split.
// It unwraps to ErrIncomplete so errors.Is keeps working.
type IncompleteError struct {
	// Composites lists, ascending, every cofactor left unsplit.
	Composites []uint64
}

// Error implements error.
func (e *IncompleteError) Error() string {
	return fmt.Sprintf("%s: unsplit composites %v", ErrIncomplete.Error(), e.Composites)
}

// Unwrap exposes ErrIncomplete to errors.Is.
func (e *IncompleteError) Unwrap() error { return ErrIncomplete }
