// Package lvnum is a small toolkit for exact arithmetic: integer number
// theory, fixed-width fractions, quadratic surds and a generic linear-algebra
// engine that runs the same algorithms over float64 or over fractions.
//
// What is inside?
//
//	factor/    gcd/lcm, primality, bounded Pollard's rho, square factors,
//	           Stern–Brocot best rational approximation
//	rational/  Rational[I, U] in two widths (R32, R64), checked and
//	           panicking arithmetic, "{-}n/d" text form and parser
//	surd/      coefficient × √radicand with canonical square-free radicands
//	matrix/    Dense[T] and Vector[T] over any Field: products, LU, LUP,
//	           determinant, substitution, solve, inverse, minor/cofactor/adjoint
//
// Why exact?
//
//   - Ill-conditioned systems lose digits in float64; over rationals the
//     answer is the answer, or an explicit overflow error.
//   - Failures are values: a singular matrix, a budget-exhausted
//     factorization or an out-of-width fraction come back as sentinel errors
//     matched with errors.Is.
//   - Interop: matrix.ToGonum / FromGonum hand float matrices to gonum for
//     SVD, eigen and friends.
//
// Quick example:
//
//	a, _ := matrix.FromInts([][]int64{{2, -1}, {-1, 2}}, rational.Int64)
//	inv, _ := matrix.Inverse(a)
//	fmt.Print(inv) // [2/3, 1/3]\n[1/3, 2/3]
//
//	go get github.com/katalvlaran/lvnum
package lvnum
