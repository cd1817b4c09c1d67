// SPDX-License-Identifier: MIT

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a gonum *mat.Dense, for callers that want gonum's
// BLAS/LAPACK-backed routines (SVD, eigen, QR) on the same data.
func ToGonum(m *Dense[Float]) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	data := make([]float64, len(m.data))
	for k, v := range m.data {
		data[k] = float64(v)
	}

	return mat.NewDense(m.r, m.c, data), nil
}

// FromGonum copies any gonum mat.Matrix into a Dense[Float].
// Errors: ErrInvalidDimensions for an empty matrix, ErrNaNInf under the
// finite-value policy.
func FromGonum(g mat.Matrix, opts ...Option) (*Dense[Float], error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	m, err := NewDense[Float](r, c, opts...)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = m.Set(i, j, Float(g.At(i, j))); err != nil {
				return nil, matrixErrorf(opFromGonum, err)
			}
		}
	}

	return m, nil
}
