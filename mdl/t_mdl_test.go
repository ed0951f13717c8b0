// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import (
	"bytes"
	"testing"

	"github.com/sankhesh/gofes/inp"

	"github.com/cpmech/gosl/chk"
)

func Test_reg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("reg01. registry resolves the built-in kinds")

	kinds := map[string]Category{
		"node":      CatNode,
		"elastic":   CatMaterial,
		"rod":       CatElement,
		"load-node": CatLoad,
		"load-grav": CatLoad,
		"mfc":       CatLoad,
	}
	for name, cat := range kinds {
		ob := New(name)
		if ob == nil {
			tst.Errorf("allocator for %q is missing", name)
			return
		}
		chk.Int(tst, name+" category", int(ob.Category()), int(cat))
	}
	if New("banana") != nil {
		tst.Errorf("unregistered names must yield nil")
	}
}

func Test_node01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("node01. read and write")

	var nod Node
	err := nod.ReadData(inp.NewScannerString("3 2 0.5 -1.25"), nil)
	if err != nil {
		tst.Errorf("ReadData failed:\n%v", err)
		return
	}
	chk.Int(tst, "id", nod.Id(), 3)
	chk.Int(tst, "ndim", nod.Ndim(), 2)
	chk.Array(tst, "X", 1e-17, nod.X, []float64{0.5, -1.25})

	var buf bytes.Buffer
	nod.WriteData(&buf)
	chk.String(tst, buf.String(), "<node> 3 2 0.5 -1.25\n")

	// invalid dimension
	err = nod.ReadData(inp.NewScannerString("3 7 0 0 0 0 0 0 0"), nil)
	if err == nil {
		tst.Errorf("ReadData must fail for ndim=7")
	}
}

func Test_rod01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rod01. stiffness matrix of an inclined rod")

	// nodes (0,0) and (3,4): L=5, cos=0.6, sin=0.8; E=10, A=2 => EA/L=4
	s := inp.NewScannerString("0 2 0 0   1 2 3 4   0 10 2 1   7 0 0 1")
	var n0, n1 Node
	if err := n0.ReadData(s, nil); err != nil {
		tst.Errorf("node read failed:\n%v", err)
		return
	}
	if err := n1.ReadData(s, nil); err != nil {
		tst.Errorf("node read failed:\n%v", err)
		return
	}
	var m Elastic
	if err := m.ReadData(s, nil); err != nil {
		tst.Errorf("material read failed:\n%v", err)
		return
	}
	info := &ReadInfo{Nodes: []*Node{&n0, &n1}, Mats: []Material{&m}}
	var rod Rod
	if err := rod.ReadData(s, info); err != nil {
		tst.Errorf("rod read failed:\n%v", err)
		return
	}

	chk.Int(tst, "id", rod.Id(), 7)
	chk.Int(tst, "npoints", rod.NumPoints(), 2)
	chk.Int(tst, "ndofs", rod.NumDofs(), 4)
	chk.Int(tst, "ndofs per point", rod.NumDofsPerPoint(), 2)
	chk.Float64(tst, "L", 1e-15, rod.L, 5)
	chk.Deep2(tst, "K", 1e-14, rod.Ke(), [][]float64{
		{+1.44, +1.92, -1.44, -1.92},
		{+1.92, +2.56, -1.92, -2.56},
		{-1.44, -1.92, +1.44, +1.92},
		{-1.92, -2.56, +1.92, +2.56},
	})

	// DOFs start unassigned and can be cleared
	for i := 0; i < rod.NumDofs(); i++ {
		chk.Int(tst, "unassigned dof", rod.Dof(i), -1)
	}
	rod.SetDofAtPoint(1, 0, 9)
	chk.Int(tst, "dof(2)", rod.Dof(2), 9)
	rod.ClearDofs()
	chk.Int(tst, "dof(2) after clear", rod.Dof(2), -1)

	// lumped self-weight: w = rho*A*L/2 = 1*2*5/2 = 5
	grav := &LoadGrav{G: []float64{-10}}
	fe, err := rod.Fe(grav)
	if err != nil {
		tst.Errorf("Fe failed:\n%v", err)
		return
	}
	chk.Array(tst, "fe", 1e-15, fe, []float64{-50, -50, -50, -50})

	// two solve dimensions give two slices
	grav2 := &LoadGrav{G: []float64{-10, 3}}
	fe, err = rod.Fe(grav2)
	if err != nil {
		tst.Errorf("Fe failed:\n%v", err)
		return
	}
	chk.Array(tst, "fe 2 dims", 1e-15, fe, []float64{-50, -50, -50, -50, 15, 15, 15, 15})

	// unknown element-load kinds are not computable
	if _, err = rod.Fe(&strangeLoad{}); err == nil {
		tst.Errorf("Fe must fail for unknown load kinds")
	}
}

func Test_rod02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("rod02. invalid references")

	var n0, n1 Node
	n0.ReadData(inp.NewScannerString("0 2 0 0"), nil)
	n1.ReadData(inp.NewScannerString("1 2 1 0"), nil)
	var m Elastic
	m.ReadData(inp.NewScannerString("0 100 0.5 1"), nil)
	info := &ReadInfo{Nodes: []*Node{&n0, &n1}, Mats: []Material{&m}}

	// unknown material
	var rod Rod
	err := rod.ReadData(inp.NewScannerString("0 5 0 1"), info)
	if err == nil {
		tst.Errorf("ReadData must fail for an unknown material")
	}

	// unknown node
	err = rod.ReadData(inp.NewScannerString("0 0 0 9"), info)
	if err == nil {
		tst.Errorf("ReadData must fail for an unknown node")
	}

	// zero-length rod
	err = rod.ReadData(inp.NewScannerString("0 0 0 0"), info)
	if err == nil {
		tst.Errorf("ReadData must fail for a zero-length rod")
	}

	// missing read context
	err = rod.ReadData(inp.NewScannerString("0 0 0 1"), nil)
	if err == nil {
		tst.Errorf("ReadData must fail without the read context")
	}
}

// strangeLoad is an element load no element knows how to convert
type strangeLoad struct {
	loadBase
}

func (o *strangeLoad) Id() int                                       { return -1 }
func (o *strangeLoad) Category() Category                            { return CatLoad }
func (o *strangeLoad) ReadData(s *inp.Scanner, info *ReadInfo) error { return nil }
func (o *strangeLoad) WriteData(buf *bytes.Buffer)                   {}
func (o *strangeLoad) Targets() []Element                            { return nil }
