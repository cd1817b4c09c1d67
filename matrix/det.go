// SPDX-License-Identifier: MIT

package matrix

// Det returns the determinant as the product of U's diagonal.
//
// Implementation:
//   - LUP; det(A) = det(P)·Π U[i,i] with det(P) = ±1 from the permutation
//     parity.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrSingular when A has no LUP
// decomposition, which only happens for singular A. DetLaplace is defined
// for every square matrix and agrees with Det whenever Det succeeds.
//
// Complexity: Time O(n^3), Space O(n^2).
func Det[T Field[T]](m *Dense[T]) (T, error) {
	var zero T
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDet, err)
	}
	f, err := factorLUP(m)
	if err != nil {
		return zero, matrixErrorf(opDet, err)
	}

	return diagProduct(f.u, f.sign()), nil
}

func diagProduct[T Field[T]](u *Dense[T], sign int) T {
	n := u.r
	d := one[T]()
	for i := 0; i < n; i++ {
		d = d.Mul(u.data[i*n+i])
	}
	if sign < 0 {
		return d.Neg()
	}

	return d
}

// DetLaplace returns the determinant by cofactor expansion along row 0 with
// alternating signs. It never fails on a square matrix and is exact for
// exact scalars, at O(n!) cost.
func DetLaplace[T Field[T]](m *Dense[T]) (T, error) {
	var zero T
	if err := ValidateSquare(m); err != nil {
		return zero, matrixErrorf(opDetLaplace, err)
	}

	return laplace(m.data, m.r), nil
}

// laplace expands the n×n row-major block a along its first row.
func laplace[T Field[T]](a []T, n int) T {
	switch n {
	case 1:
		return a[0]
	case 2:
		return a[0].Mul(a[3]).Sub(a[1].Mul(a[2]))
	}
	var sum T
	sub := make([]T, (n-1)*(n-1))
	for col := 0; col < n; col++ {
		if a[col].IsZero() {
			continue
		}
		minorInto(sub, a, n, 0, col)
		term := a[col].Mul(laplace(sub, n-1))
		if col%2 == 0 {
			sum = sum.Add(term)
		} else {
			sum = sum.Sub(term)
		}
	}

	return sum
}

// minorInto writes a without row and col into dst, which holds (n-1)² values.
func minorInto[T Field[T]](dst, a []T, n, row, col int) {
	k := 0
	for i := 0; i < n; i++ {
		if i == row {
			continue
		}
		for j := 0; j < n; j++ {
			if j == col {
				continue
			}
			dst[k] = a[i*n+j]
			k++
		}
	}
}
