// SPDX-License-Identifier: MIT
// Package surd: sentinel error set. Messages are prefixed with "surd: ...".

package surd

import (
	"errors"
	"fmt"
)

var (
	// ErrZeroRadicand is returned when a surd is constructed over √0.
	// Zero is represented by a zero coefficient over radicand 1.
	ErrZeroRadicand = errors.New("surd: radicand must be > 0")

	// ErrNegative is returned by Sqrt for negative input.
	ErrNegative = errors.New("surd: square root of a negative value")
)

const (
	opNew  = "New"
	opMul  = "Mul"
	opDiv  = "Div"
	opSqrt = "Sqrt"
)

func surdErrorf(tag string, err error) error {
	return fmt.Errorf("surd.%s: %w", tag, err)
}
