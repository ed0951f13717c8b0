// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

// Element defines what all elements must implement. Global freedom
// numbers (GFNs) are cleared, assigned and looked up through the DofMap
// accessors; the assignment itself is driven by fem.Solver.GenerateGFN.
type Element interface {
	Object

	// geometry
	NumPoints() int     // number of points (nodes) the element touches
	Point(i int) *Node  // i-th point

	// degrees of freedom
	NumDofs() int                // total number of local DOFs
	NumDofsPerPoint() int        // number of DOFs per point
	ClearDofs()                  // unassigns all GFNs
	Dof(i int) int               // GFN of the i-th local DOF
	DofAtPoint(pt, dof int) int  // GFN of a DOF at a point; -1 if unassigned
	SetDofAtPoint(pt, dof, gfn int)

	// local matrices and vectors
	Ke() [][]float64                  // local stiffness matrix [NumDofs][NumDofs]
	Fe(ld ElemLoad) ([]float64, error) // local force vector for a given load
}

// DofMap stores the per-point global freedom numbers of one element.
// Concrete elements embed it to satisfy the DOF accessors of Element.
// Local DOF i maps to point i/npp, DOF i%npp.
type DofMap struct {
	gfn [][]int // [npoints][ndofsPerPoint]; -1 when unassigned
}

// InitDofs allocates the table and clears it
func (o *DofMap) InitDofs(npoints, ndofsPerPoint int) {
	o.gfn = make([][]int, npoints)
	for i := range o.gfn {
		o.gfn[i] = make([]int, ndofsPerPoint)
	}
	o.ClearDofs()
}

// ClearDofs unassigns all GFNs
func (o *DofMap) ClearDofs() {
	for i := range o.gfn {
		for j := range o.gfn[i] {
			o.gfn[i][j] = -1
		}
	}
}

// NumDofs returns the total number of local DOFs
func (o *DofMap) NumDofs() int {
	if len(o.gfn) == 0 {
		return 0
	}
	return len(o.gfn) * len(o.gfn[0])
}

// NumDofsPerPoint returns the number of DOFs per point
func (o *DofMap) NumDofsPerPoint() int {
	if len(o.gfn) == 0 {
		return 0
	}
	return len(o.gfn[0])
}

// DofAtPoint returns the GFN of a DOF at a point; -1 if unassigned
func (o *DofMap) DofAtPoint(pt, dof int) int { return o.gfn[pt][dof] }

// SetDofAtPoint assigns the GFN of a DOF at a point
func (o *DofMap) SetDofAtPoint(pt, dof, gfn int) { o.gfn[pt][dof] = gfn }

// Dof returns the GFN of the i-th local DOF
func (o *DofMap) Dof(i int) int {
	npp := len(o.gfn[0])
	return o.gfn[i/npp][i%npp]
}
