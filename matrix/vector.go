// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math"
)

// Vector is a fixed-length sequence of scalars. Operations never mutate the
// receiver; length mismatches return ErrDimensionMismatch.
type Vector[T Field[T]] []T

// Basis returns the n-length unit vector with 1 at index i.
// Panics with ErrOutOfRange when i is not in [0, n).
func Basis[T Field[T]](n, i int) Vector[T] {
	if i < 0 || i >= n {
		panic(fmt.Errorf("Basis(%d,%d): %w", n, i, ErrOutOfRange))
	}
	v := make(Vector[T], n)
	v[i] = one[T]()

	return v
}

// zip applies f pairwise to equally long vectors.
func (v Vector[T]) zip(o Vector[T], f func(a, b T) T) (Vector[T], error) {
	if err := ValidateVecLen(o, len(v)); err != nil {
		return nil, matrixErrorf(opVector, err)
	}
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = f(v[i], o[i])
	}

	return out, nil
}

// Dot returns Σ v[i]·o[i].
func (v Vector[T]) Dot(o Vector[T]) (T, error) {
	var sum T
	if err := ValidateVecLen(o, len(v)); err != nil {
		return sum, matrixErrorf(opVector, err)
	}
	for i := range v {
		sum = sum.Add(v[i].Mul(o[i]))
	}

	return sum, nil
}

// Add returns v + o.
func (v Vector[T]) Add(o Vector[T]) (Vector[T], error) {
	return v.zip(o, func(a, b T) T { return a.Add(b) })
}

// Sub returns v - o.
func (v Vector[T]) Sub(o Vector[T]) (Vector[T], error) {
	return v.zip(o, func(a, b T) T { return a.Sub(b) })
}

// Mul returns the element-wise product.
func (v Vector[T]) Mul(o Vector[T]) (Vector[T], error) {
	return v.zip(o, func(a, b T) T { return a.Mul(b) })
}

// Div returns the element-wise quotient, or ErrDivideByZero when any o[i] is zero.
func (v Vector[T]) Div(o Vector[T]) (Vector[T], error) {
	for i := range o {
		if o[i].IsZero() {
			return nil, matrixErrorf(opVector, fmt.Errorf("component %d: %w", i, ErrDivideByZero))
		}
	}

	return v.zip(o, func(a, b T) T { return a.Div(b) })
}

// Scale returns s·v.
func (v Vector[T]) Scale(s T) Vector[T] {
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = v[i].Mul(s)
	}

	return out
}

// DivScalar returns v/s, or ErrDivideByZero when s is zero.
func (v Vector[T]) DivScalar(s T) (Vector[T], error) {
	if s.IsZero() {
		return nil, matrixErrorf(opVector, ErrDivideByZero)
	}
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = v[i].Div(s)
	}

	return out, nil
}

// Recip returns the element-wise reciprocal, or ErrDivideByZero.
func (v Vector[T]) Recip() (Vector[T], error) {
	ones := make(Vector[T], len(v))
	for i := range ones {
		ones[i] = one[T]()
	}

	return ones.Div(v)
}

// Neg returns -v.
func (v Vector[T]) Neg() Vector[T] {
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = v[i].Neg()
	}

	return out
}

// Sum returns Σ v[i].
func (v Vector[T]) Sum() T {
	var sum T
	for _, x := range v {
		sum = sum.Add(x)
	}

	return sum
}

// SqSum returns Σ v[i]², exact for exact scalars.
func (v Vector[T]) SqSum() T {
	var sum T
	for _, x := range v {
		sum = sum.Add(x.Mul(x))
	}

	return sum
}

// Mag returns the Euclidean length √SqSum as a float64.
func (v Vector[T]) Mag() float64 { return math.Sqrt(v.SqSum().Float64()) }

// Equal reports exact element-wise equality.
func (v Vector[T]) Equal(o Vector[T]) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if v[i] != o[i] {
			return false
		}
	}

	return true
}

// AsRow returns v as a 1×n matrix. Errors: ErrInvalidDimensions for an empty v.
func (v Vector[T]) AsRow() (*Dense[T], error) {
	m, err := NewDense[T](1, len(v), WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	copy(m.data, v)

	return m, nil
}

// AsCol returns v as an n×1 matrix. Errors: ErrInvalidDimensions for an empty v.
func (v Vector[T]) AsCol() (*Dense[T], error) {
	m, err := NewDense[T](len(v), 1, WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	copy(m.data, v)

	return m, nil
}

// Normalize returns v / |v|. Square roots leave exact arithmetic, so this is
// defined for Float vectors only. Errors: ErrZeroVector.
func Normalize(v Vector[Float]) (Vector[Float], error) {
	mag := v.Mag()
	if mag == 0 {
		return nil, matrixErrorf(opVector, ErrZeroVector)
	}

	return v.Scale(Float(1 / mag)), nil
}
