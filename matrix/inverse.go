// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Inverse computes A⁻¹ by LUP substitution against each basis vector.
//
// Implementation:
//   - Stage 1: ValidateSquare; factor P·A = L·U once (ErrSingular if none).
//   - Stage 2: det = ±Π U[i,i]; ErrSingular when det.NearZero(eps). Floats
//     compare |det| against WithEpsilon (DefaultEpsilon); rationals require
//     det == 0 exactly.
//   - Stage 3: for each i solve A·x = e_i through the shared factors and
//     store x as column i of the result.
//
// Behavior highlights:
//   - A failed solve fails the whole inverse; no partial matrix escapes.
//   - The input is read-only.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func Inverse[T Field[T]](m *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	o := gatherOptions(opts...)

	f, err := factorLUP(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if det := diagProduct(f.u, f.sign()); det.NearZero(o.eps) {
		return nil, matrixErrorf(opInverse, fmt.Errorf("det %v: %w", det, ErrSingular))
	}

	n := m.r
	inv := newLike(m, n, n)
	for col := 0; col < n; col++ {
		x, err := f.solve(Basis[T](n, col))
		if err != nil {
			return nil, matrixErrorf(opInverse, err)
		}
		for i := 0; i < n; i++ {
			inv.data[i*n+col] = x[i]
		}
	}

	return inv, nil
}

// Minor returns m without the given row and column.
// Errors: ErrNilMatrix, ErrInvalidDimensions when m has a single row or
// column, ErrOutOfRange for a bad index.
func Minor[T Field[T]](m *Dense[T], row, col int) (*Dense[T], error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if m.r <= 1 || m.c <= 1 {
		return nil, matrixErrorf(opMinor, ErrInvalidDimensions)
	}
	if _, err := m.indexOf("Minor", row, col); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}

	out := newLike(m, m.r-1, m.c-1)
	k := 0
	for i := 0; i < m.r; i++ {
		if i == row {
			continue
		}
		for j := 0; j < m.c; j++ {
			if j == col {
				continue
			}
			out.data[k] = m.data[i*m.c+j]
			k++
		}
	}

	return out, nil
}

// Cofactor returns C with C[i,j] = (-1)^(i+j)·det(Minor(i,j)), each minor
// determinant taken by Laplace expansion. The cofactor matrix of a 1×1
// matrix is [1].
func Cofactor[T Field[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	return cofactor(m), nil
}

func cofactor[T Field[T]](m *Dense[T]) *Dense[T] {
	n := m.r
	out := newLike(m, n, n)
	if n == 1 {
		out.data[0] = one[T]()

		return out
	}
	sub := make([]T, (n-1)*(n-1))
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			minorInto(sub, m.data, n, i, j)
			d := laplace(sub, n-1)
			if (i+j)%2 == 1 {
				d = d.Neg()
			}
			out.data[i*n+j] = d
		}
	}

	return out
}

// Adjoint returns the transposed cofactor matrix, adj(A) with A·adj(A) = det(A)·I.
func Adjoint[T Field[T]](m *Dense[T]) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opAdjoint, err)
	}

	return transpose(cofactor(m)), nil
}

// InverseAdjoint computes A⁻¹ = adj(A) / det(A) with a Laplace determinant.
// Slower than Inverse but free of pivot divisions, so for rationals every
// intermediate stays exact. The tolerance check matches Inverse.
func InverseAdjoint[T Field[T]](m *Dense[T], opts ...Option) (*Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverseAdj, err)
	}
	o := gatherOptions(opts...)

	det := laplace(m.data, m.r)
	if det.NearZero(o.eps) {
		return nil, matrixErrorf(opInverseAdj, fmt.Errorf("det %v: %w", det, ErrSingular))
	}
	adj := transpose(cofactor(m))
	for k, v := range adj.data {
		adj.data[k] = v.Div(det)
	}

	return adj, nil
}
