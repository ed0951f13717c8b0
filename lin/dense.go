// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lin

import (
	"github.com/cpmech/gosl/chk"

	"gonum.org/v1/gonum/mat"
)

// Dense implements System with dense storage and an LU solve. The
// augmented matrices produced by Lagrange-multiplier constraints are
// symmetric but indefinite, so a plain LU factorisation is used.
type Dense struct {
	n int
	a *mat.Dense
	b *mat.VecDense
	x *mat.VecDense
}

// NewDense returns a new dense linear system
func NewDense() *Dense { return new(Dense) }

// SetSystemOrder sets the order of the system. Storage is reallocated by
// the Initialize functions.
func (o *Dense) SetSystemOrder(n int) { o.n = n }

// Order returns the order of the system
func (o *Dense) Order() int { return o.n }

// InitializeMatrix allocates the matrix and fills it with zeros
func (o *Dense) InitializeMatrix() {
	if o.n < 1 {
		chk.Panic("cannot initialise matrix with order=%d", o.n)
	}
	o.a = mat.NewDense(o.n, o.n, nil)
}

// InitializeVector allocates the right-hand-side vector and fills it
// with zeros
func (o *Dense) InitializeVector() {
	if o.n < 1 {
		chk.Panic("cannot initialise vector with order=%d", o.n)
	}
	o.b = mat.NewVecDense(o.n, nil)
}

// InitializeSolution allocates the solution vector and fills it with
// zeros
func (o *Dense) InitializeSolution() {
	if o.n < 1 {
		chk.Panic("cannot initialise solution with order=%d", o.n)
	}
	o.x = mat.NewVecDense(o.n, nil)
}

// AddMatrixValue accumulates value into entry (i,j)
func (o *Dense) AddMatrixValue(i, j int, value float64) {
	o.a.Set(i, j, o.a.At(i, j)+value)
}

// SetMatrixValue overwrites entry (i,j)
func (o *Dense) SetMatrixValue(i, j int, value float64) {
	o.a.Set(i, j, value)
}

// GetMatrixValue returns entry (i,j)
func (o *Dense) GetMatrixValue(i, j int) float64 {
	return o.a.At(i, j)
}

// AddVectorValue accumulates value into the i-th entry
func (o *Dense) AddVectorValue(i int, value float64) {
	o.b.SetVec(i, o.b.AtVec(i)+value)
}

// SetVectorValue overwrites the i-th entry
func (o *Dense) SetVectorValue(i int, value float64) {
	o.b.SetVec(i, value)
}

// GetVectorValue returns the i-th entry
func (o *Dense) GetVectorValue(i int) float64 {
	return o.b.AtVec(i)
}

// Solve solves A·x = b
func (o *Dense) Solve() error {
	if o.a == nil || o.b == nil || o.x == nil {
		return chk.Err("matrix, vector and solution must be initialised before Solve")
	}
	if err := o.x.SolveVec(o.a, o.b); err != nil {
		return chk.Err("dense solve failed: %v", err)
	}
	return nil
}

// GetSolution returns the i-th entry of the solution
func (o *Dense) GetSolution(i int) float64 {
	return o.x.AtVec(i)
}
