// SPDX-License-Identifier: MIT
// Package matrix: element-wise and product kernels.
//
// Purpose:
//   - Shape-validated arithmetic over any Field scalar.
//   - Every kernel allocates a fresh result; operands are never mutated.
//
// Notes:
//   - Kernels validate through ValidateSameShape/ValidateSquare and wrap the
//     sentinel with matrixErrorf at the facade.

package matrix

import (
	"fmt"
	"math"
)

// addSub computes element-wise out = a + b or a - b.
//
// Implementation:
//   - Stage 1: ValidateSameShape(a, b). Allocate result with a's policy.
//   - Stage 2: single flat loop 0..n-1.
//
// Complexity: Time O(r*c), Space O(r*c).
func addSub[T Field[T]](a, b *Dense[T], sub bool, opTag string) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	res := newLike(a, a.r, a.c)
	for k := range a.data {
		if sub {
			res.data[k] = a.data[k].Sub(b.data[k])
		} else {
			res.data[k] = a.data[k].Add(b.data[k])
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add[T Field[T]](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[T Field[T]](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Hadamard computes the element-wise product C = A ∘ B.
func Hadamard[T Field[T]](a, b *Dense[T]) (*Dense[T], error) {
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opHadamard, err)
	}
	res := newLike(a, a.r, a.c)
	for k := range a.data {
		res.data[k] = a.data[k].Mul(b.data[k])
	}

	return res, nil
}

// Mul performs standard matrix multiplication C = A × B.
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: i→k→j with row-major strides; zero A[i,k] rows of work are skipped.
//
// Complexity: Time O(r*n*c), Space O(r*c).
func Mul[T Field[T]](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if a.c != b.r {
		return nil, matrixErrorf(opMul, ErrDimensionMismatch)
	}

	aRows, aCols, bCols := a.r, a.c, b.c
	res := newLike(a, aRows, bCols)
	var (
		i, j, k                int
		av                     T
		rowA, rowB, rowOffsetR int
	)
	for i = 0; i < aRows; i++ {
		rowA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = a.data[rowA+k]
			if av.IsZero() {
				continue
			}
			rowB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] = res.data[rowOffsetR+j].Add(av.Mul(b.data[rowB+j]))
			}
		}
	}

	return res, nil
}

// MulVec returns A·x (x treated as a column).
func MulVec[T Field[T]](a *Dense[T], x Vector[T]) (Vector[T], error) {
	if a == nil {
		return nil, matrixErrorf(opMulVec, ErrNilMatrix)
	}
	if err := ValidateVecLen(x, a.c); err != nil {
		return nil, matrixErrorf(opMulVec, err)
	}
	out := make(Vector[T], a.r)
	for i := 0; i < a.r; i++ {
		var sum T
		base := i * a.c
		for j := 0; j < a.c; j++ {
			sum = sum.Add(a.data[base+j].Mul(x[j]))
		}
		out[i] = sum
	}

	return out, nil
}

// VecMul returns xᵀ·A (x treated as a row).
func VecMul[T Field[T]](x Vector[T], a *Dense[T]) (Vector[T], error) {
	if a == nil {
		return nil, matrixErrorf(opVecMul, ErrNilMatrix)
	}
	if err := ValidateVecLen(x, a.r); err != nil {
		return nil, matrixErrorf(opVecMul, err)
	}
	out := make(Vector[T], a.c)
	for i := 0; i < a.r; i++ {
		if x[i].IsZero() {
			continue
		}
		base := i * a.c
		for j := 0; j < a.c; j++ {
			out[j] = out[j].Add(x[i].Mul(a.data[base+j]))
		}
	}

	return out, nil
}

// Transpose returns mᵀ; the original is never mutated.
// Complexity: Time O(r*c), Space O(r*c).
func Transpose[T Field[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return transpose(m), nil
}

func transpose[T Field[T]](m *Dense[T]) *Dense[T] {
	res := newLike(m, m.c, m.r)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			res.data[j*m.r+i] = m.data[i*m.c+j]
		}
	}

	return res
}

// Scale returns alpha·m.
func Scale[T Field[T]](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := newLike(m, m.r, m.c)
	for k, v := range m.data {
		res.data[k] = v.Mul(alpha)
	}

	return res, nil
}

// DivScalar returns m/alpha. Errors: ErrNilMatrix, ErrDivideByZero.
func DivScalar[T Field[T]](m *Dense[T], alpha T) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opDivScalar, err)
	}
	if alpha.IsZero() {
		return nil, matrixErrorf(opDivScalar, ErrDivideByZero)
	}
	res := newLike(m, m.r, m.c)
	for k, v := range m.data {
		res.data[k] = v.Div(alpha)
	}

	return res, nil
}

// Resize returns a rows×cols copy of m: the overlapping top-left block is
// kept and new cells are zero.
func Resize[T Field[T]](m *Dense[T], rows, cols int) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opResize, err)
	}
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opResize, ErrInvalidDimensions)
	}
	res := newLike(m, rows, cols)
	w := min(cols, m.c)
	for i := 0; i < min(rows, m.r); i++ {
		copy(res.data[i*cols:i*cols+w], m.data[i*m.c:i*m.c+w])
	}

	return res, nil
}

// Map converts every element of m through f into a matrix of another scalar
// type, e.g. Dense[Float] → Dense[rational.R64]. The first error aborts.
func Map[S Field[S], T Field[T]](m *Dense[T], f func(T) (S, error), opts ...Option) (*Dense[S], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	res, err := NewDense[S](m.r, m.c, opts...)
	if err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	for k, v := range m.data {
		s, err := f(v)
		if err != nil {
			return nil, matrixErrorf(opMap, fmt.Errorf("element (%d,%d): %w", k/m.c, k%m.c, err))
		}
		if err = res.Set(k/m.c, k%m.c, s); err != nil {
			return nil, matrixErrorf(opMap, err)
		}
	}

	return res, nil
}

// ToFloat converts m to floating point through Field.Float64.
func ToFloat[T Field[T]](m *Dense[T]) (*Dense[Float], error) {
	return Map(m, func(v T) (Float, error) { return Float(v.Float64()), nil }, WithNoValidateNaNInf())
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes,
// comparing through Field.Float64. Negative tolerances are normalized.
// Errors: ErrNaNInf for a non-finite tolerance, shape errors.
func AllClose[T Field[T]](a, b *Dense[T], rtol, atol float64) (bool, error) {
	if isNonFinite(rtol) || isNonFinite(atol) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateSameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for k := range a.data {
		av, bv := a.data[k].Float64(), b.data[k].Float64()
		if math.Abs(av-bv) > atol+rtol*math.Abs(bv) {
			return false, nil
		}
	}

	return true, nil
}

// RowSums returns r where r[i] = Σ_j m[i,j].
func RowSums[T Field[T]](m *Dense[T]) (Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	out := make(Vector[T], m.r)
	for i := range out {
		out[i] = Vector[T](m.data[i*m.c : (i+1)*m.c]).Sum()
	}

	return out, nil
}

// ColSums returns c where c[j] = Σ_i m[i,j].
func ColSums[T Field[T]](m *Dense[T]) (Vector[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	out := make(Vector[T], m.c)
	for k, v := range m.data {
		out[k%m.c] = out[k%m.c].Add(v)
	}

	return out, nil
}

// Trace returns Σ m[i,i]. Errors: ErrNonSquare.
func Trace[T Field[T]](m *Dense[T]) (T, error) {
	var sum T
	if err := ValidateSquare(m); err != nil {
		return sum, matrixErrorf(opTrace, err)
	}
	for i := 0; i < m.r; i++ {
		sum = sum.Add(m.data[i*m.c+i])
	}

	return sum, nil
}
