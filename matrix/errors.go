// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All algorithms return these sentinels (optionally wrapped with an operation
// tag) and tests check them via errors.Is. Panics are reserved for programmer
// errors: invalid options and out-of-range Row/Col.

package matrix

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "matrix: ..." for consistency.
// Kernels wrap with matrixErrorf(opTag, err) at the facade.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrBadShape is returned for ragged row input (rows of unequal length).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) return this; Row/Col panic with it.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, or Mul where a.Cols != b.Rows.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNaNInf signals a NaN or ±Inf value under the finite-value policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNilMatrix indicates that a nil *Dense (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrSingular is returned when no decomposition exists: a zero pivot in
	// LU, a singular input to LUP, or a determinant below tolerance in Inverse.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrDivideByZero is returned by element-wise vector division,
	// reciprocals and DivScalar when a divisor is zero.
	ErrDivideByZero = errors.New("matrix: division by zero")

	// ErrZeroVector is returned when normalizing a vector of zero magnitude.
	ErrZeroVector = errors.New("matrix: zero vector")
)

// Operation name constants for unified error wrapping.
const (
	opNew          = "NewDense"
	opFromRows     = "FromRows"
	opAdd          = "Add"
	opSub          = "Sub"
	opMul          = "Mul"
	opHadamard     = "Hadamard"
	opScale        = "Scale"
	opDivScalar    = "DivScalar"
	opTranspose    = "Transpose"
	opMulVec       = "MulVec"
	opVecMul       = "VecMul"
	opResize       = "Resize"
	opMap          = "Map"
	opAllClose     = "AllClose"
	opLU           = "LU"
	opLUP          = "LUP"
	opDet          = "Det"
	opDetLaplace   = "DetLaplace"
	opForwardSub   = "ForwardSub"
	opBackSub      = "BackSub"
	opLUPSolve     = "LUPSolve"
	opLUSolve      = "LUSolve"
	opInverse      = "Inverse"
	opMinor        = "Minor"
	opCofactor     = "Cofactor"
	opAdjoint      = "Adjoint"
	opInverseAdj   = "InverseAdjoint"
	opVector       = "Vector"
	opToGonum      = "ToGonum"
	opFromGonum    = "FromGonum"
	opRowSums      = "RowSums"
	opColSums      = "ColSums"
	opTrace        = "Trace"
	opFromRational = "FromFloatRational"
)

// matrixErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}
