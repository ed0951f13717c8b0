// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"bytes"

	"github.com/sankhesh/gofes/inp"

	"github.com/cpmech/gosl/io"
)

// LoadGrav is an element load representing gravity (self-weight). Each
// targeted element converts it into a local force vector through Fe.
//  Payload: id nel elemId ... ndim g0 ... g{ndim-1}
// nel == 0 means the load applies to every element in the system. G
// holds one gravity value per solve dimension.
type LoadGrav struct {
	loadBase
	Num int       // global number read from the stream
	Els []Element // target elements; empty means all
	G   []float64 // gravity value per solve dimension
}

// Id returns the global number
func (o *LoadGrav) Id() int { return o.Num }

// Category returns CatLoad
func (o *LoadGrav) Category() Category { return CatLoad }

// Targets returns the target elements; empty means all
func (o *LoadGrav) Targets() []Element { return o.Els }

// ReadData reads the payload
func (o *LoadGrav) ReadData(s *inp.Scanner, info *ReadInfo) (err error) {
	if info == nil {
		return inp.Errf(s.Pos(), "gravity load requires the element collection to resolve references")
	}
	if o.Num, err = s.Int(); err != nil {
		return
	}
	pos := s.Pos()
	var nel int
	if nel, err = s.Int(); err != nil {
		return
	}
	if nel < 0 {
		return inp.Errf(pos, "gravity load %d has invalid number of elements %d", o.Num, nel)
	}
	o.Els = nil
	for i := 0; i < nel; i++ {
		pos = s.Pos()
		var eid int
		if eid, err = s.Int(); err != nil {
			return
		}
		var e Element
		if e, err = FindElement(info.Elems, eid, pos); err != nil {
			return
		}
		o.Els = append(o.Els, e)
	}
	pos = s.Pos()
	var ndim int
	if ndim, err = s.Int(); err != nil {
		return
	}
	if ndim < 1 {
		return inp.Errf(pos, "gravity load %d has invalid number of dimensions %d", o.Num, ndim)
	}
	o.G = make([]float64, ndim)
	for i := range o.G {
		if o.G[i], err = s.Float(); err != nil {
			return
		}
	}
	return
}

// WriteData writes the token and payload
func (o *LoadGrav) WriteData(buf *bytes.Buffer) {
	io.Ff(buf, "<load-grav> %d %d", o.Num, len(o.Els))
	for _, e := range o.Els {
		io.Ff(buf, " %d", e.Id())
	}
	io.Ff(buf, " %d", len(o.G))
	for _, g := range o.G {
		io.Ff(buf, " %g", g)
	}
	io.Ff(buf, "\n")
}

func init() {
	SetAllocator("load-grav", func() Object { return new(LoadGrav) })
}
