// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fem assembles finite element systems: it reads typed model
// objects from a stream, assigns a global freedom number (GFN) to every
// independent degree of freedom, accumulates element stiffness into the
// backend matrix, augments it with Lagrange-multiplier rows/columns for
// multi-freedom constraints, assembles the force vector one spatial
// dimension at a time, and drives the backend solve.
//
// The required invocation order is
//
//	Read → GenerateGFN → AssembleK → AssembleF (per dimension) → Solve →
//	UpdateDisplacements
//
// A Solver is not safe for concurrent use; callers must serialise all
// access, and the backend is exclusively owned for one full solve cycle.
package fem

import (
	"bytes"

	"github.com/sankhesh/gofes/inp"
	"github.com/sankhesh/gofes/lin"
	"github.com/sankhesh/gofes/mdl"

	"github.com/cpmech/gosl/io"
)

// Solver holds the model collections and drives assembly. The
// collections preserve read order, and the order is meaningful: DOF
// numbering is deterministic for a fixed order.
type Solver struct {

	// model collections
	Nodes []*mdl.Node    // all nodes, in read order
	Mats  []mdl.Material // all materials, in read order
	Elems []mdl.Element  // all elements, in read order
	Loads []mdl.Load     // all loads, in read order

	// dimensions
	Ngfn int // total number of global DOFs; set by GenerateGFN
	Nmfc int // number of multi-freedom constraints; set by AssembleK

	// linear system
	Sys lin.System // backend; exclusively owned during a solve cycle

	// constraints collected during the last AssembleK
	mfcs []*mdl.LoadBCMFC
}

// NewSolver returns a solver bound to the given backend
func NewSolver(sys lin.System) *Solver {
	return &Solver{Sys: sys}
}

// ReadObject reads the next model object from the stream. It returns
// (nil, nil) at the end of the stream. A reserved <END> token is
// consumed and ignored. The object is handed a read context matching its
// category so that it can resolve cross-references while consuming its
// payload. On failure the stream position is restored to just before the
// offending token; objects that fail while reading their payload are
// discarded.
func (o *Solver) ReadObject(s *inp.Scanner) (mdl.Object, error) {
	for {
		if s.Eof() {
			return nil, nil
		}
		start := s.Pos()
		name, err := s.Token()
		if err != nil {
			s.SetPos(start)
			return nil, err
		}
		if name == "END" {
			continue
		}
		ob := mdl.New(name)
		if ob == nil {
			s.SetPos(start)
			return nil, inp.Errf(start, "cannot resolve object class %q", name)
		}
		var info *mdl.ReadInfo
		switch ob.Category() {
		case mdl.CatElement:
			info = &mdl.ReadInfo{Nodes: o.Nodes, Mats: o.Mats}
		case mdl.CatLoad:
			info = &mdl.ReadInfo{Nodes: o.Nodes, Elems: o.Elems}
		}
		if err = ob.ReadData(s, info); err != nil {
			return nil, err
		}
		return ob, nil
	}
}

// Read clears the model and reads the whole system (nodes, materials,
// elements and loads) from the stream. Each object is classified by its
// runtime category and appended to the matching collection. Collections
// populated before a failure are left as-is.
func (o *Solver) Read(s *inp.Scanner) error {
	o.Nodes = nil
	o.Mats = nil
	o.Elems = nil
	o.Loads = nil
	for {
		ob, err := o.ReadObject(s)
		if err != nil {
			return err
		}
		if ob == nil {
			return nil // end of stream; all was good
		}
		switch ob.Category() {
		case mdl.CatNode:
			n, ok := ob.(*mdl.Node)
			if !ok {
				return inp.Errf(s.Pos(), "object %d has node category but %T is not a node", ob.Id(), ob)
			}
			o.Nodes = append(o.Nodes, n)
		case mdl.CatMaterial:
			m, ok := ob.(mdl.Material)
			if !ok {
				return inp.Errf(s.Pos(), "object %d has material category but %T is not a material", ob.Id(), ob)
			}
			o.Mats = append(o.Mats, m)
		case mdl.CatElement:
			e, ok := ob.(mdl.Element)
			if !ok {
				return inp.Errf(s.Pos(), "object %d has element category but %T is not an element", ob.Id(), ob)
			}
			o.Elems = append(o.Elems, e)
		case mdl.CatLoad:
			l, ok := ob.(mdl.Load)
			if !ok {
				return inp.Errf(s.Pos(), "object %d has load category but %T is not a load", ob.Id(), ob)
			}
			o.Loads = append(o.Loads, l)
		default:
			return inp.Errf(s.Pos(), "object %d of kind %T has unknown category", ob.Id(), ob)
		}
	}
}

// ReadFile reads the whole system from a file. The returned error covers
// the stream contents only; an unreadable file panics, as io.ReadFile does.
func (o *Solver) ReadFile(fn string) error {
	return o.Read(inp.NewScanner(io.ReadFile(fn)))
}

// Write serialises the whole system in the fixed order nodes, materials,
// elements, loads, each section closed by an <END> terminator. The
// output is readable by Read; whitespace and comments of the source
// stream are not preserved.
func (o *Solver) Write(buf *bytes.Buffer) {
	for _, n := range o.Nodes {
		n.WriteData(buf)
	}
	io.Ff(buf, "<END> %% end of nodes\n\n")
	for _, m := range o.Mats {
		m.WriteData(buf)
	}
	io.Ff(buf, "<END> %% end of materials\n\n")
	for _, e := range o.Elems {
		e.WriteData(buf)
	}
	io.Ff(buf, "<END> %% end of elements\n\n")
	for _, l := range o.Loads {
		l.WriteData(buf)
	}
	io.Ff(buf, "<END> %% end of loads\n\n")
}

// GenerateGFN assigns a global freedom number to each DOF in the system.
// The node→element membership caches are rebuilt first; then elements
// are visited in collection order and each local DOF either reuses the
// number already assigned by another element sharing the same point, or
// claims a fresh one from the counter. Numbers start at 0 and
// Ngfn = highest assigned + 1. A model with zero elements yields
// Ngfn = 0 and the assembly phases become no-ops. The pass is
// idempotent: an unchanged model yields an unchanged numbering.
func (o *Solver) GenerateGFN() {

	// rebuild the membership cache of all nodes
	for _, n := range o.Nodes {
		n.ClearShares()
	}
	for i, e := range o.Elems {
		e.ClearDofs()
		for pt := 0; pt < e.NumPoints(); pt++ {
			e.Point(pt).AddShare(i, pt)
		}
	}

	// number the DOFs; the counter is owned by this invocation
	ctr := -1
	for _, e := range o.Elems {
		npp := e.NumDofsPerPoint()
		for pt := 0; pt < e.NumPoints(); pt++ {
			nod := e.Point(pt)
			for d := 0; d < npp; d++ {
				if e.DofAtPoint(pt, d) >= 0 {
					continue // claimed through a point shared with an earlier element
				}
				gfn := -1
				for _, sh := range nod.Shares {
					other := o.Elems[sh.Elem]
					if d >= other.NumDofsPerPoint() {
						continue
					}
					if g := other.DofAtPoint(sh.Pt, d); g >= 0 {
						gfn = g
						break
					}
				}
				if gfn < 0 {
					ctr++
					gfn = ctr
				}
				e.SetDofAtPoint(pt, d, gfn)
			}
		}
	}
	o.Ngfn = ctr + 1
}

// AssembleK assembles the global stiffness matrix and applies the
// multi-freedom constraints using Lagrange multipliers. Constraints are
// collected first: each one gets the next sequential augmentation index,
// valid for this assembly cycle only, and each adds one global DOF.
// Element contributions accumulate; constraint coefficients are written
// into mirrored entries so the augmented matrix stays symmetric.
func (o *Solver) AssembleK() error {

	// if no DOFs exist in the system, there is nothing to do
	if o.Ngfn <= 0 {
		return nil
	}

	// collect multi-freedom constraints
	o.Nmfc = 0
	o.mfcs = o.mfcs[:0]
	for _, ld := range o.Loads {
		if m, ok := ld.(*mdl.LoadBCMFC); ok {
			m.Index = o.Nmfc
			o.mfcs = append(o.mfcs, m)
			o.Nmfc++
		}
	}

	// size and reset the backend matrix
	o.Sys.SetSystemOrder(o.Ngfn + o.Nmfc)
	o.Sys.InitializeMatrix()

	// element contributions
	for _, e := range o.Elems {
		Ke := e.Ke()
		ne := e.NumDofs()
		for j := 0; j < ne; j++ {
			for k := 0; k < ne; k++ {
				J := e.Dof(j)
				K := e.Dof(k)
				if J < 0 || J >= o.Ngfn || K < 0 || K >= o.Ngfn {
					return consErr("illegal GFN (%d,%d) in element %d; must be in [0,%d)", J, K, e.Id(), o.Ngfn)
				}
				// skip zeros to avoid densifying sparse backends
				if Ke[j][k] != 0 {
					o.Sys.AddMatrixValue(J, K, Ke[j][k])
				}
			}
		}
	}

	// Lagrange-multiplier augmentation
	for _, m := range o.mfcs {
		for _, t := range m.Lhs {
			gfn := t.El.Dof(t.Dof)
			if gfn < 0 || gfn >= o.Ngfn {
				return consErr("illegal GFN %d in constraint %d; must be in [0,%d)", gfn, m.Id(), o.Ngfn)
			}
			o.Sys.SetMatrixValue(gfn, o.Ngfn+m.Index, t.Coef)
			o.Sys.SetMatrixValue(o.Ngfn+m.Index, gfn, t.Coef) // symmetric matrix
		}
	}
	return nil
}

// AssembleF assembles the global force vector for one spatial dimension.
// Every load first receives a reference to the backend so that
// solution-dependent loads can read results later. Loads are then
// dispatched by kind, first match wins: nodal, element, constraint;
// unrecognised kinds are skipped.
func (o *Solver) AssembleF(dim int) error {

	// if no DOFs exist in the system, there is nothing to do
	if o.Ngfn <= 0 {
		return nil
	}
	o.Sys.InitializeVector()

	for _, ld := range o.Loads {

		ld.SetSolution(o.Sys)

		switch l := ld.(type) {

		// forces applied directly to the DOFs of one point
		case mdl.NodalLoad:
			e, pt := l.Target()
			F := l.Values()
			npp := e.NumDofsPerPoint()
			if npp < 1 || len(F)%npp != 0 {
				return consErr("illegal size of force vector in nodal load %d: len=%d is not a multiple of %d", l.Id(), len(F), npp)
			}
			if (dim+1)*npp > len(F) {
				return consErr("nodal load %d has no values for dimension %d", l.Id(), dim)
			}
			for d := 0; d < npp; d++ {
				gfn := e.DofAtPoint(pt, d)
				if gfn < 0 || gfn >= o.Ngfn {
					return consErr("illegal GFN %d in nodal load %d; must be in [0,%d)", gfn, l.Id(), o.Ngfn)
				}
				o.Sys.AddVectorValue(gfn, F[d+npp*dim])
			}

		// loads converted to local force vectors by the elements
		case mdl.ElemLoad:
			targets := l.Targets()
			if len(targets) == 0 {
				targets = o.Elems // empty target list: apply to every element
			}
			for _, e := range targets {
				fe, err := e.Fe(l)
				if err != nil {
					return err
				}
				ne := e.NumDofs()
				if (dim+1)*ne > len(fe) {
					return consErr("element %d has no force slice for dimension %d", e.Id(), dim)
				}
				for j := 0; j < ne; j++ {
					gfn := e.Dof(j)
					if gfn < 0 || gfn >= o.Ngfn {
						return consErr("illegal GFN %d in element %d; must be in [0,%d)", gfn, e.Id(), o.Ngfn)
					}
					o.Sys.AddVectorValue(gfn, fe[j+dim*ne])
				}
			}

		// constraint right-hand sides land on the multiplier rows
		case *mdl.LoadBCMFC:
			if dim >= len(l.Rhs) {
				return consErr("constraint %d has no right-hand side for dimension %d", l.Num, dim)
			}
			o.Sys.SetVectorValue(o.Ngfn+l.Index, l.Rhs[dim])
		}
	}
	return nil
}

// DecomposeK is an extension point for factorising the stiffness matrix
// ahead of repeated solves; the default does nothing
func (o *Solver) DecomposeK() error { return nil }

// Solve initialises the backend solution vector and solves the system
func (o *Solver) Solve() error {
	o.Sys.InitializeSolution()
	return o.Sys.Solve()
}

// UpdateDisplacements copies the backend solution into the nodes'
// displacement slots, through each element's point/DOF table. Values
// reflect the dimension last assembled and solved.
func (o *Solver) UpdateDisplacements() {
	for _, e := range o.Elems {
		npp := e.NumDofsPerPoint()
		for pt := 0; pt < e.NumPoints(); pt++ {
			nod := e.Point(pt)
			if len(nod.U) != npp {
				nod.U = make([]float64, npp)
			}
			for d := 0; d < npp; d++ {
				nod.U[d] = o.Sys.GetSolution(e.DofAtPoint(pt, d))
			}
		}
	}
}
