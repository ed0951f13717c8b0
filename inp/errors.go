// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "github.com/cpmech/gosl/io"

// FormatError indicates a malformed or unresolvable token in a model
// stream. Pos is the byte offset of the offending token; the scanner is
// left positioned there, so a caller could in principle resume reading
// at that boundary.
type FormatError struct {
	Pos int
	Msg string
}

// Error returns the message
func (e *FormatError) Error() string {
	return io.Sf("format error @ byte %d: %s", e.Pos, e.Msg)
}

// Errf returns a new FormatError with a formatted message
func Errf(pos int, msg string, prm ...interface{}) *FormatError {
	return &FormatError{Pos: pos, Msg: io.Sf(msg, prm...)}
}
