// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mdl

import "github.com/cpmech/gosl/chk"

// Allocator defines a function that allocates a blank model object
type Allocator func() Object

// SetAllocator sets a new callback function to allocate a model object.
// Object kinds register themselves in their init functions.
func SetAllocator(name string, fcn Allocator) {
	if _, ok := allocators[name]; ok {
		chk.Panic("cannot set allocator for %q because object name exists already", name)
	}
	allocators[name] = fcn
}

// New returns a blank object of the named kind, or nil if the name is
// not registered
func New(name string) Object {
	if fcn, ok := allocators[name]; ok {
		return fcn()
	}
	return nil
}

// allocators holds all object allocators
var allocators = make(map[string]Allocator)
