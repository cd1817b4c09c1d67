// SPDX-License-Identifier: MIT

package matrix

import (
	"cmp"
	"math"
	"strconv"
)

// Field is the capability set a scalar needs for every kernel in this
// package. The Go zero value of T must be the additive identity.
//
// rational.Rational[I, U] satisfies Field as is; Float adapts float64.
type Field[T any] interface {
	comparable
	Add(T) T
	Sub(T) T
	Mul(T) T
	Div(T) T
	Neg() T
	Abs() T
	// One returns the multiplicative identity; the receiver is ignored.
	One() T
	Cmp(T) int
	IsZero() bool
	// NearZero reports |v| <= eps; exact scalars may ignore eps.
	NearZero(eps float64) bool
	Float64() float64
}

// Float is float64 as a Field.
type Float float64

func (a Float) Add(b Float) Float { return a + b }
func (a Float) Sub(b Float) Float { return a - b }
func (a Float) Mul(b Float) Float { return a * b }

// Div is IEEE division; kernels guard pivots before dividing.
func (a Float) Div(b Float) Float { return a / b }
func (a Float) Neg() Float        { return -a }
func (a Float) Abs() Float        { return Float(math.Abs(float64(a))) }
func (Float) One() Float          { return 1 }
func (a Float) Cmp(b Float) int   { return cmp.Compare(a, b) }
func (a Float) IsZero() bool      { return a == 0 }
func (a Float) Float64() float64  { return float64(a) }

// NearZero reports |a| <= eps.
func (a Float) NearZero(eps float64) bool { return math.Abs(float64(a)) <= eps }

// String formats a with the shortest representation that round-trips.
func (a Float) String() string { return strconv.FormatFloat(float64(a), 'g', -1, 64) }

// one returns the multiplicative identity of T.
func one[T Field[T]]() T {
	var z T

	return z.One()
}
