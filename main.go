// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/sankhesh/gofes/fem"
	"github.com/sankhesh/gofes/lin"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
			chk.Verbose = true
			chk.CallerInfo(3)
		}
	}()

	// input
	fnamepath, _ := io.ArgToFilename(0, "model", ".fem", true)

	// read model
	sol := fem.NewSolver(lin.NewDense())
	status(sol.ReadFile(fnamepath))
	io.Pf("model: %d nodes, %d materials, %d elements, %d loads\n",
		len(sol.Nodes), len(sol.Mats), len(sol.Elems), len(sol.Loads))

	// number DOFs, assemble and solve for dimension 0
	sol.GenerateGFN()
	io.Pf("number of global DOFs = %d\n", sol.Ngfn)
	status(sol.AssembleK())
	io.Pf("number of constraints = %d\n", sol.Nmfc)
	status(sol.AssembleF(0))
	status(sol.DecomposeK())
	status(sol.Solve())
	sol.UpdateDisplacements()

	// displacements
	io.Pf("\n%6s%16s%16s\n", "node", "ux", "uy")
	for _, n := range sol.Nodes {
		ux, uy := 0.0, 0.0
		if len(n.U) > 0 {
			ux = n.U[0]
		}
		if len(n.U) > 1 {
			uy = n.U[1]
		}
		io.Pf("%6d%16.8f%16.8f\n", n.Num, ux, uy)
	}
}

func status(err error) {
	if err != nil {
		chk.Panic("%v", err)
	}
}
