// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvnum/matrix"
	"github.com/katalvlaran/lvnum/rational"
)

// ExampleLUPSolve solves A·x = b exactly over rationals.
func ExampleLUPSolve() {
	a, err := matrix.FromInts([][]int64{
		{1, 1, 1, -5},
		{-2, -6, 1, 13},
		{3, -17, 16, -2},
		{5, -3, 9, -25},
	}, rational.Int64)
	if err != nil {
		panic(err)
	}
	b := matrix.Vector[rational.R64]{
		rational.Int64(-14), rational.Int64(41), rational.Int64(9), rational.Int64(-74),
	}
	x, err := matrix.LUPSolve(a, b)
	if err != nil {
		panic(err)
	}
	det, _ := matrix.Det(a)
	fmt.Println(x)
	fmt.Println(det)
	// Output:
	// [1/1 2/1 3/1 4/1]
	// -32/1
}

// ExampleInverse inverts a tridiagonal matrix without rounding.
func ExampleInverse() {
	a, err := matrix.FromInts([][]int64{
		{2, -1, 0},
		{-1, 2, -1},
		{0, -1, 2},
	}, rational.Int64)
	if err != nil {
		panic(err)
	}
	inv, err := matrix.Inverse(a)
	if err != nil {
		panic(err)
	}
	fmt.Print(inv)
	// Output:
	// [3/4, 1/2, 1/4]
	// [1/2, 1/1, 1/2]
	// [1/4, 1/2, 3/4]
}

// ExampleCofactor shows the cofactor matrix and the adjoint identity
// A·adj(A) = det(A)·I.
func ExampleCofactor() {
	a, _ := matrix.FromInts([][]int64{
		{2, -1, 0},
		{-1, 2, -1},
		{0, -1, 2},
	}, rational.Int64)
	c, _ := matrix.Cofactor(a)
	adj, _ := matrix.Adjoint(a)
	p, _ := matrix.Mul(a, adj)
	fmt.Print(c)
	fmt.Print(p)
	// Output:
	// [3/1, 2/1, 1/1]
	// [2/1, 4/1, 2/1]
	// [1/1, 2/1, 3/1]
	// [4/1, 0/1, 0/1]
	// [0/1, 4/1, 0/1]
	// [0/1, 0/1, 4/1]
}
