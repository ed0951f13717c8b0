// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"bytes"

	"github.com/sankhesh/gofes/inp"

	"github.com/cpmech/gosl/io"
)

// MfcTerm is one (element, local DOF, coefficient) entry on the
// left-hand side of a multi-freedom constraint
type MfcTerm struct {
	El   Element
	Dof  int
	Coef float64
}

// LoadBCMFC implements a linear multi-freedom constraint
//
//	Σ_i Coef_i · u_i = Rhs[dim]
//
// enforced with one Lagrange multiplier, which augments the global
// system by one row and one column (kept symmetric).
//  Payload: id nterms {elemId dof coef} ... nrhs rhs0 ... rhs{nrhs-1}
type LoadBCMFC struct {
	loadBase
	Num   int        // global number read from the stream
	Lhs   []*MfcTerm // left-hand-side terms
	Rhs   []float64  // right-hand side, one value per solve dimension
	Index int        // 0-based augmentation index; recomputed at every AssembleK
}

// Id returns the global number
func (o *LoadBCMFC) Id() int { return o.Num }

// Category returns CatLoad
func (o *LoadBCMFC) Category() Category { return CatLoad }

// ReadData reads the payload
func (o *LoadBCMFC) ReadData(s *inp.Scanner, info *ReadInfo) (err error) {
	if info == nil {
		return inp.Errf(s.Pos(), "constraint requires the element collection to resolve references")
	}
	if o.Num, err = s.Int(); err != nil {
		return
	}
	pos := s.Pos()
	var nterms int
	if nterms, err = s.Int(); err != nil {
		return
	}
	if nterms < 1 {
		return inp.Errf(pos, "constraint %d has invalid number of terms %d", o.Num, nterms)
	}
	o.Lhs = make([]*MfcTerm, nterms)
	for i := range o.Lhs {
		t := new(MfcTerm)
		pos = s.Pos()
		var eid int
		if eid, err = s.Int(); err != nil {
			return
		}
		if t.El, err = FindElement(info.Elems, eid, pos); err != nil {
			return
		}
		pos = s.Pos()
		if t.Dof, err = s.Int(); err != nil {
			return
		}
		if t.Dof < 0 || t.Dof >= t.El.NumDofs() {
			return inp.Errf(pos, "constraint %d references local DOF %d but element %d has %d DOFs", o.Num, t.Dof, eid, t.El.NumDofs())
		}
		if t.Coef, err = s.Float(); err != nil {
			return
		}
		o.Lhs[i] = t
	}
	pos = s.Pos()
	var nrhs int
	if nrhs, err = s.Int(); err != nil {
		return
	}
	if nrhs < 1 {
		return inp.Errf(pos, "constraint %d has invalid number of right-hand-side values %d", o.Num, nrhs)
	}
	o.Rhs = make([]float64, nrhs)
	for i := range o.Rhs {
		if o.Rhs[i], err = s.Float(); err != nil {
			return
		}
	}
	return
}

// WriteData writes the token and payload
func (o *LoadBCMFC) WriteData(buf *bytes.Buffer) {
	io.Ff(buf, "<mfc> %d %d", o.Num, len(o.Lhs))
	for _, t := range o.Lhs {
		io.Ff(buf, "  %d %d %g", t.El.Id(), t.Dof, t.Coef)
	}
	io.Ff(buf, " %d", len(o.Rhs))
	for _, r := range o.Rhs {
		io.Ff(buf, " %g", r)
	}
	io.Ff(buf, "\n")
}

func init() {
	SetAllocator("mfc", func() Object { return new(LoadBCMFC) })
}
