// SPDX-License-Identifier: MIT

// Package matrix is a dense matrix/vector engine generic over its scalar.
//
// What & Why:
//
//	The same kernels (LU, LUP, determinant, triangular solves, inverse,
//	cofactor/adjoint) run over floating-point scalars (Float) and over exact
//	rationals (rational.R32, rational.R64). Any type satisfying Field works;
//	its Go zero value must be the additive identity.
//
//	On Float the decompositions are the usual numerical kernels; on rationals
//	they are exact, so P·A == L·U and A·A⁻¹ == I hold with ==, not within a
//	tolerance.
//
// Shapes:
//
//	Dimensions are fixed at construction. Binary operations validate shapes
//	and return ErrDimensionMismatch; At/Set return ErrOutOfRange. Row and Col
//	treat an out-of-range index as a programmer error and panic.
//
// Failure is a value:
//
//	A matrix without a decomposition is not exceptional. LU, LUP, Det,
//	LUPSolve and Inverse report ErrSingular and never return partial results.
//
// Exact scalars:
//
//	Rational arithmetic is fixed width. A kernel whose intermediate does not
//	fit panics with rational.ErrOverflow, like the rational operators do.
//
// Complexity:
//
//	Rows/Cols/At/Set are O(1); Mul is O(r·n·c); LU, LUP, Det and Inverse are
//	O(n³); DetLaplace and Cofactor are O(n!) and meant for small or exact work.
//
// Interop: ToGonum and FromGonum convert Dense[Float] to and from gonum's
// *mat.Dense.
package matrix
