// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// ForwardSub solves L·x = b for lower-triangular L with unit diagonal:
// x[0] = b[0], x[i] = b[i] - Σ_{j<i} L[i,j]·x[j]. The diagonal of L is not
// read. Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionMismatch.
func ForwardSub[T Field[T]](l *Dense[T], b Vector[T]) (Vector[T], error) {
	if err := ValidateSquare(l); err != nil {
		return nil, matrixErrorf(opForwardSub, err)
	}
	if err := ValidateVecLen(b, l.r); err != nil {
		return nil, matrixErrorf(opForwardSub, err)
	}

	return forwardSub(l, b), nil
}

func forwardSub[T Field[T]](l *Dense[T], b Vector[T]) Vector[T] {
	n := l.r
	x := make(Vector[T], n)
	for i := 0; i < n; i++ {
		v := b[i]
		for j := 0; j < i; j++ {
			v = v.Sub(l.data[i*n+j].Mul(x[j]))
		}
		x[i] = v
	}

	return x
}

// BackSub solves U·x = b for upper-triangular U, last index first:
// x[i] = (b[i] - Σ_{j>i} U[i,j]·x[j]) / U[i,i].
// Errors: ErrSingular for a zero diagonal entry, shape errors as ForwardSub.
func BackSub[T Field[T]](u *Dense[T], b Vector[T]) (Vector[T], error) {
	if err := ValidateSquare(u); err != nil {
		return nil, matrixErrorf(opBackSub, err)
	}
	if err := ValidateVecLen(b, u.r); err != nil {
		return nil, matrixErrorf(opBackSub, err)
	}
	x, err := backSub(u, b)
	if err != nil {
		return nil, matrixErrorf(opBackSub, err)
	}

	return x, nil
}

func backSub[T Field[T]](u *Dense[T], b Vector[T]) (Vector[T], error) {
	n := u.r
	x := make(Vector[T], n)
	for i := n - 1; i >= 0; i-- {
		v := b[i]
		for j := i + 1; j < n; j++ {
			v = v.Sub(u.data[i*n+j].Mul(x[j]))
		}
		pivot := u.data[i*n+i]
		if pivot.IsZero() {
			return nil, fmt.Errorf("pivot %d: %w", i, ErrSingular)
		}
		x[i] = v.Div(pivot)
	}

	return x, nil
}

// LUPSolve solves A·x = b: decompose with LUP, permute b by P, forward
// substitute through L, back substitute through U.
// Errors: ErrSingular when no decomposition exists or U has a zero pivot,
// shape errors otherwise. Nothing partial is returned on failure.
func LUPSolve[T Field[T]](a *Dense[T], b Vector[T]) (Vector[T], error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opLUPSolve, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf(opLUPSolve, err)
	}
	f, err := factorLUP(a)
	if err != nil {
		return nil, matrixErrorf(opLUPSolve, err)
	}
	x, err := f.solve(b)
	if err != nil {
		return nil, matrixErrorf(opLUPSolve, err)
	}

	return x, nil
}

// LUSolve is LUPSolve without pivoting; it fails on inputs LU rejects.
func LUSolve[T Field[T]](a *Dense[T], b Vector[T]) (Vector[T], error) {
	if err := ValidateSquare(a); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	if err := ValidateVecLen(b, a.r); err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	l, u, err := doolittle(a)
	if err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}
	x, err := backSub(u, forwardSub(l, b))
	if err != nil {
		return nil, matrixErrorf(opLUSolve, err)
	}

	return x, nil
}
