// SPDX-License-Identifier: MIT

package matrix

// LU computes the Doolittle factorization A = L*U with unit diagonal on L
// (no pivoting).
//
// Implementation:
//   - Stage 1: Validate m (not nil, square); allocate L, U; set diag(L)=1.
//   - Stage 2: For i=0..n-1, build row i of U from partial dot products
//     against rows 0..i-1, then column i of L by dividing by U[i,i].
//
// Behavior highlights:
//   - A pivot is required only when something is divided by it, so a zero
//     U[n-1,n-1] is returned as is (the matrix is singular but decomposes).
//   - For Float the zero test is exact, as for rationals.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular (a required pivot is zero).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU[T Field[T]](m *Dense[T]) (*Dense[T], *Dense[T], error) {
	if err := ValidateSquare(m); err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}
	l, u, err := doolittle(m)
	if err != nil {
		return nil, nil, matrixErrorf(opLU, err)
	}

	return l, u, nil
}

// doolittle is the unvalidated LU kernel shared by LU and LUP.
func doolittle[T Field[T]](m *Dense[T]) (*Dense[T], *Dense[T], error) {
	n := m.r
	l := newLike(m, n, n)
	u := newLike(m, n, n)
	unit := one[T]()

	var (
		i, j, k int
		sum     T
		pivot   T
	)
	for i = 0; i < n; i++ {
		// Row i of U for columns j >= i.
		for j = i; j < n; j++ {
			var zero T
			sum = zero
			for k = 0; k < i; k++ {
				sum = sum.Add(l.data[i*n+k].Mul(u.data[k*n+j]))
			}
			u.data[i*n+j] = m.data[i*n+j].Sub(sum)
		}
		l.data[i*n+i] = unit

		pivot = u.data[i*n+i]
		if i < n-1 && pivot.IsZero() {
			return nil, nil, ErrSingular
		}
		// Column i of L for rows j > i.
		for j = i + 1; j < n; j++ {
			var zero T
			sum = zero
			for k = 0; k < i; k++ {
				sum = sum.Add(l.data[j*n+k].Mul(u.data[k*n+i]))
			}
			l.data[j*n+i] = m.data[j*n+i].Sub(sum).Div(pivot)
		}
	}

	return l, u, nil
}

// LUP computes L, U and a permutation matrix P with P·A = L·U.
//
// Implementation:
//   - Stage 1: for each column i in turn, select among the rows not selected
//     yet the one whose entry in column i has the largest magnitude. Only a
//     strictly greater magnitude promotes a new candidate, so ties keep the
//     first row encountered.
//   - Stage 2: P has a 1 at (i, perm[i]); run Doolittle on P·A.
//   - Stage 3: when P·A has no Doolittle decomposition, eliminate again with
//     partial pivoting: at step k the pivot is the largest magnitude in
//     column k of the partially eliminated rows k..n-1.
//
// Behavior highlights:
//   - Stage 1 looks at A itself, so for most inputs P is fixed before
//     factoring. Stage 3 only runs when that order hits a zero pivot.
//   - Partial pivoting fails only when some column k < n-1 is zero on and
//     below the diagonal after elimination, i.e. A is singular.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare, ErrSingular.
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LUP[T Field[T]](m *Dense[T]) (l, u, p *Dense[T], err error) {
	if err = ValidateSquare(m); err != nil {
		return nil, nil, nil, matrixErrorf(opLUP, err)
	}
	f, err := factorLUP(m)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opLUP, err)
	}

	return f.l, f.u, f.permutationMatrix(m), nil
}

// lupFactors is an LUP decomposition with P kept as an index vector:
// row i of P·A is row perm[i] of A.
type lupFactors[T Field[T]] struct {
	l, u *Dense[T]
	perm []int
}

// factorLUP is the unvalidated LUP kernel; m must be square.
func factorLUP[T Field[T]](m *Dense[T]) (lupFactors[T], error) {
	n := m.r
	perm := pivotOrder(m)

	pa := newLike(m, n, n)
	for i, src := range perm {
		copy(pa.data[i*n:(i+1)*n], m.data[src*n:(src+1)*n])
	}
	l, u, err := doolittle(pa)
	if err != nil {
		return partialPivot(m)
	}

	return lupFactors[T]{l: l, u: u, perm: perm}, nil
}

// partialPivot is Gaussian elimination with row exchanges chosen on the
// partially eliminated matrix. Like doolittle it accepts a zero last pivot.
func partialPivot[T Field[T]](m *Dense[T]) (lupFactors[T], error) {
	n := m.r
	u := m.Clone()
	l := newLike(m, n, n)
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	var zero T
	for k := 0; k < n; k++ {
		best, bestMag := k, u.data[k*n+k].Abs()
		for i := k + 1; i < n; i++ {
			if mag := u.data[i*n+k].Abs(); mag.Cmp(bestMag) > 0 {
				best, bestMag = i, mag
			}
		}
		if best != k {
			swapRows(u, k, best)
			swapRows(l, k, best) // only columns < k are filled
			perm[k], perm[best] = perm[best], perm[k]
		}

		pivot := u.data[k*n+k]
		if pivot.IsZero() {
			if k < n-1 {
				return lupFactors[T]{}, ErrSingular
			}
			continue
		}
		for i := k + 1; i < n; i++ {
			f := u.data[i*n+k].Div(pivot)
			l.data[i*n+k] = f
			u.data[i*n+k] = zero
			if f.IsZero() {
				continue
			}
			for j := k + 1; j < n; j++ {
				u.data[i*n+j] = u.data[i*n+j].Sub(f.Mul(u.data[k*n+j]))
			}
		}
	}
	unit := one[T]()
	for i := 0; i < n; i++ {
		l.data[i*n+i] = unit
	}

	return lupFactors[T]{l: l, u: u, perm: perm}, nil
}

// swapRows exchanges rows i and j of a square matrix in place.
func swapRows[T Field[T]](m *Dense[T], i, j int) {
	n := m.c
	for k := 0; k < n; k++ {
		m.data[i*n+k], m.data[j*n+k] = m.data[j*n+k], m.data[i*n+k]
	}
}

// pivotOrder returns the row selected for every column, by magnitude.
func pivotOrder[T Field[T]](m *Dense[T]) []int {
	n := m.r
	used := make([]bool, n)
	perm := make([]int, n)
	for i := 0; i < n; i++ {
		best := -1
		var bestMag T
		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			mag := m.data[j*n+i].Abs()
			if best < 0 || mag.Cmp(bestMag) > 0 {
				best, bestMag = j, mag
			}
		}
		used[best] = true
		perm[i] = best
	}

	return perm
}

// permutationMatrix materializes P from perm.
func (f lupFactors[T]) permutationMatrix(like *Dense[T]) *Dense[T] {
	n := len(f.perm)
	p := newLike(like, n, n)
	unit := one[T]()
	for i, src := range f.perm {
		p.data[i*n+src] = unit
	}

	return p
}

// sign returns det(P) as +1 or -1: (-1)^(n - number of cycles).
func (f lupFactors[T]) sign() int {
	n := len(f.perm)
	seen := make([]bool, n)
	cycles := 0
	for i := 0; i < n; i++ {
		if seen[i] {
			continue
		}
		cycles++
		for j := i; !seen[j]; j = f.perm[j] {
			seen[j] = true
		}
	}
	if (n-cycles)%2 == 0 {
		return 1
	}

	return -1
}

// permute returns P·b.
func (f lupFactors[T]) permute(b Vector[T]) Vector[T] {
	out := make(Vector[T], len(b))
	for i, src := range f.perm {
		out[i] = b[src]
	}

	return out
}

// solve runs forward then back substitution for P·A·x = P·b.
func (f lupFactors[T]) solve(b Vector[T]) (Vector[T], error) {
	y := forwardSub(f.l, f.permute(b))

	return backSub(f.u, y)
}
