// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdl implements the model objects of a finite element system:
// nodes, materials, elements and loads. Every object kind registers an
// allocator by name so that a model stream can be turned back into typed
// objects (see the registry in this package and fem.Solver.ReadObject).
package mdl

import (
	"bytes"

	"github.com/sankhesh/gofes/inp"
)

// Category classifies model objects. The set is closed: the registry
// must only ever produce objects of these four categories.
type Category int

const (
	CatNode Category = iota
	CatMaterial
	CatElement
	CatLoad
)

// Object is the capability shared by all model objects
type Object interface {
	Id() int                                      // global number read from the stream
	Category() Category                           // runtime category for classification
	ReadData(s *inp.Scanner, info *ReadInfo) error // consumes the class-specific payload
	WriteData(buf *bytes.Buffer)                  // writes the token and payload back out
}

// ReadInfo carries the read context handed to an object while it
// consumes its payload. Elements receive the node and material
// collections; loads receive the node and element collections; other
// categories receive no extra context.
type ReadInfo struct {
	Nodes []*Node
	Mats  []Material
	Elems []Element
}

// FindNode returns the node with the given id
func FindNode(nodes []*Node, id, pos int) (*Node, error) {
	for _, n := range nodes {
		if n.Num == id {
			return n, nil
		}
	}
	return nil, inp.Errf(pos, "cannot find node with id=%d", id)
}

// FindMaterial returns the material with the given id
func FindMaterial(mats []Material, id, pos int) (Material, error) {
	for _, m := range mats {
		if m.Id() == id {
			return m, nil
		}
	}
	return nil, inp.Errf(pos, "cannot find material with id=%d", id)
}

// FindElement returns the element with the given id
func FindElement(elems []Element, id, pos int) (Element, error) {
	for _, e := range elems {
		if e.Id() == id {
			return e, nil
		}
	}
	return nil, inp.Errf(pos, "cannot find element with id=%d", id)
}
