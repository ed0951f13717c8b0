// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"bytes"

	"github.com/sankhesh/gofes/inp"

	"github.com/cpmech/gosl/io"
)

// Material is the capability of material objects. Concrete materials
// carry the parameters their elements know how to interpret.
type Material interface {
	Object
}

// Elastic holds linear-elastic material parameters
//  Payload: id E A rho
type Elastic struct {
	Num int
	E   float64 // Young's modulus
	A   float64 // cross-sectional area
	Rho float64 // density of solids
}

// Id returns the global number
func (o *Elastic) Id() int { return o.Num }

// Category returns CatMaterial
func (o *Elastic) Category() Category { return CatMaterial }

// ReadData reads the payload
func (o *Elastic) ReadData(s *inp.Scanner, info *ReadInfo) (err error) {
	if o.Num, err = s.Int(); err != nil {
		return
	}
	if o.E, err = s.Float(); err != nil {
		return
	}
	if o.A, err = s.Float(); err != nil {
		return
	}
	o.Rho, err = s.Float()
	return
}

// WriteData writes the token and payload
func (o *Elastic) WriteData(buf *bytes.Buffer) {
	io.Ff(buf, "<elastic> %d %g %g %g\n", o.Num, o.E, o.A, o.Rho)
}

func init() {
	SetAllocator("elastic", func() Object { return new(Elastic) })
}
