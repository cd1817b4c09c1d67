// SPDX-License-Identifier: MIT

// Package matrix: Dense is the concrete row-major matrix, storing elements in
// a flat slice for cache friendliness.
package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major r×c matrix of T.
type Dense[T Field[T]] struct {
	r, c           int  // number of rows and columns
	data           []T  // flat backing storage, length == r*c
	validateNaNInf bool // finite-value policy fixed at creation
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): resolve options and allocate flat backing slice.
// Complexity: O(r*c) time and memory.
func NewDense[T Field[T]](rows, cols int, opts ...Option) (*Dense[T], error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols), validateNaNInf: o.validateNaNInf}, nil
}

// newLike allocates a zero matrix carrying m's policy. Dimensions are trusted.
func newLike[T Field[T]](m *Dense[T], rows, cols int) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols), validateNaNInf: m.validateNaNInf}
}

// FromRows builds a matrix from a slice of equally long rows; the input is
// copied. Errors: ErrInvalidDimensions for no rows or empty rows, ErrBadShape
// for ragged input, ErrNaNInf under the finite-value policy.
func FromRows[T Field[T]](rows [][]T, opts ...Option) (*Dense[T], error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf(opFromRows, ErrInvalidDimensions)
	}
	m, err := NewDense[T](len(rows), len(rows[0]), opts...)
	if err != nil {
		return nil, matrixErrorf(opFromRows, err)
	}
	for i, row := range rows {
		if len(row) != m.c {
			return nil, matrixErrorf(opFromRows, fmt.Errorf("row %d has %d values, want %d: %w", i, len(row), m.c, ErrBadShape))
		}
		for j, v := range row {
			if err = m.Set(i, j, v); err != nil {
				return nil, matrixErrorf(opFromRows, err)
			}
		}
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity[T Field[T]](n int, opts ...Option) (*Dense[T], error) {
	m, err := NewDense[T](n, n, opts...)
	if err != nil {
		return nil, err
	}
	u := one[T]()
	for i := 0; i < n; i++ {
		m.data[i*n+i] = u
	}

	return m, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Len returns the number of elements, the bound for AtIndex.
func (m *Dense[T]) Len() int { return len(m.data) }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf("At", row, col)
	if err != nil {
		var zero T

		return zero, err
	}

	return m.data[idx], nil
}

// AtIndex retrieves the element at row-major linear index k.
func (m *Dense[T]) AtIndex(k int) (T, error) {
	if k < 0 || k >= len(m.data) {
		var zero T

		return zero, fmt.Errorf("Dense.AtIndex(%d): %w", k, ErrOutOfRange)
	}

	return m.data[k], nil
}

// Set assigns v at (row, col).
// Errors: ErrOutOfRange; ErrNaNInf when the finite-value policy is on and v
// is not finite.
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && isNonFinite(v.Float64()) {
		return denseErrorf("Set", row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Row returns a copy of row i. Panics with ErrOutOfRange for a bad index.
func (m *Dense[T]) Row(i int) Vector[T] {
	if i < 0 || i >= m.r {
		panic(denseErrorf("Row", i, 0, ErrOutOfRange))
	}
	out := make(Vector[T], m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out
}

// Col returns a copy of column j. Panics with ErrOutOfRange for a bad index.
func (m *Dense[T]) Col(j int) Vector[T] {
	if j < 0 || j >= m.c {
		panic(denseErrorf("Col", 0, j, ErrOutOfRange))
	}
	out := make(Vector[T], m.r)
	for i := 0; i < m.r; i++ {
		out[i] = m.data[i*m.c+j]
	}

	return out
}

// Clone returns a deep copy of m.
// Complexity: O(r*c) time and memory.
func (m *Dense[T]) Clone() *Dense[T] {
	out := newLike(m, m.r, m.c)
	copy(out.data, m.data)

	return out
}

// Equal reports exact element-wise equality of two same-shaped matrices.
func (m *Dense[T]) Equal(o *Dense[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.r != o.r || m.c != o.c {
		return false
	}
	for k := range m.data {
		if m.data[k] != o.data[k] {
			return false
		}
	}

	return true
}

// String formats m one bracketed row per line, e.g. "[1, 2]\n[3, 4]\n".
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprint(&sb, m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}

// ValidateNotNil ensures the matrix reference is non-nil.
func ValidateNotNil[T Field[T]](m *Dense[T]) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b are non-nil with equal dimensions.
func ValidateSameShape[T Field[T]](a, b *Dense[T]) error {
	if a == nil || b == nil {
		return ErrNilMatrix
	}
	if a.r != b.r || a.c != b.c {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare ensures m is non-nil and square.
func ValidateSquare[T Field[T]](m *Dense[T]) error {
	if m == nil {
		return ErrNilMatrix
	}
	if m.r != m.c {
		return ErrNonSquare
	}

	return nil
}

// ValidateVecLen ensures len(x) == n.
func ValidateVecLen[T Field[T]](x Vector[T], n int) error {
	if len(x) != n {
		return ErrDimensionMismatch
	}

	return nil
}
