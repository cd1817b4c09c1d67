// SPDX-License-Identifier: MIT

package matrix

import "github.com/katalvlaran/lvnum/rational"

// FromFloatRational converts a Float matrix to exact rationals element by
// element with rational.FromFloat (best approximation within the width).
// Errors: rational.ErrOverflow or rational.ErrNotFinite for the first
// element that cannot be represented.
func FromFloatRational[I rational.Int, U rational.Uint](m *Dense[Float]) (*Dense[rational.Rational[I, U]], error) {
	out, err := Map(m, func(v Float) (rational.Rational[I, U], error) {
		return rational.FromFloat[I, U](float64(v))
	})
	if err != nil {
		return nil, matrixErrorf(opFromRational, err)
	}

	return out, nil
}

// FromInts builds a matrix of T from integer rows, e.g. test fixtures and
// exact inputs. conv maps one integer to T (rational.Int64, or Float via a
// closure).
func FromInts[T Field[T]](rows [][]int64, conv func(int64) T, opts ...Option) (*Dense[T], error) {
	out := make([][]T, len(rows))
	for i, row := range rows {
		out[i] = make([]T, len(row))
		for j, v := range row {
			out[i][j] = conv(v)
		}
	}

	return FromRows(out, opts...)
}
