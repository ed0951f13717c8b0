// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"bytes"

	"github.com/sankhesh/gofes/inp"

	"github.com/cpmech/gosl/io"
)

// LoadNode applies a force vector to the DOFs of one point of one
// element.
//  Payload: id elemId pt n F0 ... F{n-1}
// n must be a multiple of the element's DOFs per point; the extra slices
// carry the values of further solve dimensions.
type LoadNode struct {
	loadBase
	Num int       // global number read from the stream
	El  Element   // the element owning the loaded point
	Pt  int       // local point index
	F   []float64 // force values
}

// Id returns the global number
func (o *LoadNode) Id() int { return o.Num }

// Category returns CatLoad
func (o *LoadNode) Category() Category { return CatLoad }

// Target returns the element and local point the load applies to
func (o *LoadNode) Target() (e Element, pt int) { return o.El, o.Pt }

// Values returns the force values
func (o *LoadNode) Values() []float64 { return o.F }

// ReadData reads the payload
func (o *LoadNode) ReadData(s *inp.Scanner, info *ReadInfo) (err error) {
	if info == nil {
		return inp.Errf(s.Pos(), "nodal load requires the element collection to resolve references")
	}
	if o.Num, err = s.Int(); err != nil {
		return
	}
	pos := s.Pos()
	var eid int
	if eid, err = s.Int(); err != nil {
		return
	}
	if o.El, err = FindElement(info.Elems, eid, pos); err != nil {
		return
	}
	pos = s.Pos()
	if o.Pt, err = s.Int(); err != nil {
		return
	}
	if o.Pt < 0 || o.Pt >= o.El.NumPoints() {
		return inp.Errf(pos, "nodal load %d targets point %d but element %d has %d points", o.Num, o.Pt, eid, o.El.NumPoints())
	}
	pos = s.Pos()
	var n int
	if n, err = s.Int(); err != nil {
		return
	}
	if n < 1 {
		return inp.Errf(pos, "nodal load %d has invalid number of values %d", o.Num, n)
	}
	o.F = make([]float64, n)
	for i := range o.F {
		if o.F[i], err = s.Float(); err != nil {
			return
		}
	}
	return
}

// WriteData writes the token and payload
func (o *LoadNode) WriteData(buf *bytes.Buffer) {
	io.Ff(buf, "<load-node> %d %d %d %d", o.Num, o.El.Id(), o.Pt, len(o.F))
	for _, f := range o.F {
		io.Ff(buf, " %g", f)
	}
	io.Ff(buf, "\n")
}

func init() {
	SetAllocator("load-node", func() Object { return new(LoadNode) })
}
