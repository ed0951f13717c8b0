// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lin defines the linear-system backend driven by the solver and
// provides a dense in-memory implementation.
package lin

// System is the capability of a linear-system backend. One System
// instance is exclusively owned by one solver for a full solve cycle:
// SetSystemOrder and the Initialize functions size and reset the storage;
// the Add functions accumulate; the Set functions overwrite.
type System interface {
	SetSystemOrder(n int)
	InitializeMatrix()
	InitializeVector()
	InitializeSolution()

	AddMatrixValue(i, j int, value float64)
	SetMatrixValue(i, j int, value float64)
	GetMatrixValue(i, j int) float64

	AddVectorValue(i int, value float64)
	SetVectorValue(i int, value float64)
	GetVectorValue(i int) float64

	Solve() error
	GetSolution(i int) float64

	Order() int
}
