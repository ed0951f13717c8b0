// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import "github.com/cpmech/gosl/io"

// ConsistencyError indicates that a global freedom number computed
// during assembly fell outside [0,NGFN), or that a load's value array is
// incompatible with its target. These errors mean the model is corrupted
// or the DOF assignment is stale; they are always fatal and never
// retried.
type ConsistencyError struct {
	Msg string
}

// Error returns the message
func (e *ConsistencyError) Error() string {
	return io.Sf("consistency error: %s", e.Msg)
}

// consErr returns a new ConsistencyError with a formatted message
func consErr(msg string, prm ...interface{}) *ConsistencyError {
	return &ConsistencyError{Msg: io.Sf(msg, prm...)}
}
