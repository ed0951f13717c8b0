// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"bytes"

	"github.com/sankhesh/gofes/inp"

	"github.com/cpmech/gosl/io"
)

// Share records that one element references this node. Elem is the
// index of the element in the solver's collection and Pt is that
// element's local point index for this node.
type Share struct {
	Elem int
	Pt   int
}

// Node represents a physical point of the model
//  Payload: id ndim x0 ... x{ndim-1}
type Node struct {
	Num    int       // global number read from the stream
	X      []float64 // coordinates
	U      []float64 // displacements; filled by UpdateDisplacements after a solve
	Shares []Share   // membership cache; rebuilt at every DOF-assignment pass
}

// Id returns the global number
func (o *Node) Id() int { return o.Num }

// Category returns CatNode
func (o *Node) Category() Category { return CatNode }

// Ndim returns the space dimension
func (o *Node) Ndim() int { return len(o.X) }

// ClearShares empties the membership cache
func (o *Node) ClearShares() { o.Shares = o.Shares[:0] }

// AddShare records that element elem references this node at point pt
func (o *Node) AddShare(elem, pt int) {
	o.Shares = append(o.Shares, Share{elem, pt})
}

// ReadData reads the payload
func (o *Node) ReadData(s *inp.Scanner, info *ReadInfo) (err error) {
	if o.Num, err = s.Int(); err != nil {
		return
	}
	var ndim int
	pos := s.Pos()
	if ndim, err = s.Int(); err != nil {
		return
	}
	if ndim < 1 || ndim > 3 {
		return inp.Errf(pos, "node %d has invalid space dimension %d", o.Num, ndim)
	}
	o.X = make([]float64, ndim)
	for i := range o.X {
		if o.X[i], err = s.Float(); err != nil {
			return
		}
	}
	return
}

// WriteData writes the token and payload
func (o *Node) WriteData(buf *bytes.Buffer) {
	io.Ff(buf, "<node> %d %d", o.Num, len(o.X))
	for _, x := range o.X {
		io.Ff(buf, " %g", x)
	}
	io.Ff(buf, "\n")
}

func init() {
	SetAllocator("node", func() Object { return new(Node) })
}
