// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"bytes"
	"math"

	"github.com/sankhesh/gofes/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Rod is a 2D structural rod element (for axial loads only) with 2 nodes
// and a constant stiffness matrix; no numerical integration is needed.
//  Payload: id matId nodeId nodeId
type Rod struct {
	DofMap

	// basic data
	Num int       // global number read from the stream
	Mat *Elastic  // material parameters
	Nod [2]*Node  // the two points
	Nu  int       // total number of unknowns == 2 * ndim
	L   float64   // length of rod

	// matrices
	K [][]float64 // [nu][nu] element K matrix
}

// Id returns the global number
func (o *Rod) Id() int { return o.Num }

// Category returns CatElement
func (o *Rod) Category() Category { return CatElement }

// NumPoints returns the number of points
func (o *Rod) NumPoints() int { return 2 }

// Point returns the i-th point
func (o *Rod) Point(i int) *Node { return o.Nod[i] }

// Ke returns the local stiffness matrix
func (o *Rod) Ke() [][]float64 { return o.K }

// Fe returns the local force vector for a given load. Gravity loads are
// lumped: half the rod's weight goes to each point DOF, one slice per
// solve dimension.
func (o *Rod) Fe(ld ElemLoad) ([]float64, error) {
	switch l := ld.(type) {
	case *LoadGrav:
		w := 0.5 * o.Mat.Rho * o.Mat.A * o.L
		fe := make([]float64, o.Nu*len(l.G))
		for d, g := range l.G {
			for j := 0; j < o.Nu; j++ {
				fe[j+d*o.Nu] = w * g
			}
		}
		return fe, nil
	}
	return nil, chk.Err("rod %d cannot compute local forces for load %d", o.Num, ld.Id())
}

// ReadData reads the payload and precomputes the stiffness matrix
func (o *Rod) ReadData(s *inp.Scanner, info *ReadInfo) (err error) {
	if info == nil {
		return inp.Errf(s.Pos(), "rod requires the node and material collections to resolve references")
	}
	if o.Num, err = s.Int(); err != nil {
		return
	}

	// material
	pos := s.Pos()
	var matId int
	if matId, err = s.Int(); err != nil {
		return
	}
	mat, err := FindMaterial(info.Mats, matId, pos)
	if err != nil {
		return
	}
	var ok bool
	if o.Mat, ok = mat.(*Elastic); !ok {
		return inp.Errf(pos, "rod %d requires an elastic material; material %d is not one", o.Num, matId)
	}

	// points
	for i := 0; i < 2; i++ {
		pos = s.Pos()
		var nid int
		if nid, err = s.Int(); err != nil {
			return
		}
		if o.Nod[i], err = FindNode(info.Nodes, nid, pos); err != nil {
			return
		}
		if o.Nod[i].Ndim() != 2 {
			return inp.Errf(pos, "rod %d requires 2D nodes; node %d is %dD", o.Num, nid, o.Nod[i].Ndim())
		}
	}

	// geometry
	a, b := o.Nod[0], o.Nod[1]
	dx := b.X[0] - a.X[0]
	dy := b.X[1] - a.X[1]
	o.L = math.Sqrt(dx*dx + dy*dy)
	if o.L <= 0 {
		return inp.Errf(s.Pos(), "rod %d has zero length", o.Num)
	}

	// K matrix
	co := dx / o.L
	si := dy / o.L
	α := o.Mat.E * o.Mat.A / o.L
	o.K = [][]float64{
		{+α * co * co, +α * co * si, -α * co * co, -α * co * si},
		{+α * co * si, +α * si * si, -α * co * si, -α * si * si},
		{-α * co * co, -α * co * si, +α * co * co, +α * co * si},
		{-α * co * si, -α * si * si, +α * co * si, +α * si * si},
	}

	// degrees of freedom
	o.Nu = 4
	o.InitDofs(2, 2)
	return
}

// WriteData writes the token and payload
func (o *Rod) WriteData(buf *bytes.Buffer) {
	io.Ff(buf, "<rod> %d %d %d %d\n", o.Num, o.Mat.Num, o.Nod[0].Num, o.Nod[1].Num)
}

func init() {
	SetAllocator("rod", func() Object { return new(Rod) })
}
