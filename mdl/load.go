// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import "github.com/sankhesh/gofes/lin"

// Load is the capability common to all load objects. SetSolution hands
// the load a reference to the linear-system backend before force
// assembly, so that solution-dependent loads can read results back.
type Load interface {
	Object
	SetSolution(sys lin.System)
}

// NodalLoad applies forces directly to the DOFs of one point of one
// element. Values holds one slice of DOFs-per-point entries per solve
// dimension, concatenated.
type NodalLoad interface {
	Load
	Target() (e Element, pt int)
	Values() []float64
}

// ElemLoad is a load handled by the elements themselves through Fe. An
// empty target list means the load applies to every element.
type ElemLoad interface {
	Load
	Targets() []Element
}

// loadBase implements the solution wiring shared by all load kinds
type loadBase struct {
	sys lin.System
}

// SetSolution stores a reference to the linear-system backend
func (o *loadBase) SetSolution(sys lin.System) { o.sys = sys }
