// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_scan01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scan01. tokens, comments and numbers")

	s := NewScannerString("  % header comment\n <node>  1 2 % trailing comment\n 0.5 -1e3\n")

	name, err := s.Token()
	if err != nil {
		tst.Errorf("Token failed:\n%v", err)
		return
	}
	chk.String(tst, name, "node")

	n, err := s.Int()
	if err != nil {
		tst.Errorf("Int failed:\n%v", err)
		return
	}
	chk.Int(tst, "first integer", n, 1)

	n, err = s.Int()
	if err != nil {
		tst.Errorf("Int failed:\n%v", err)
		return
	}
	chk.Int(tst, "second integer", n, 2)

	v, err := s.Float()
	if err != nil {
		tst.Errorf("Float failed:\n%v", err)
		return
	}
	chk.Float64(tst, "first number", 1e-17, v, 0.5)

	v, err = s.Float()
	if err != nil {
		tst.Errorf("Float failed:\n%v", err)
		return
	}
	chk.Float64(tst, "second number", 1e-17, v, -1000)

	if !s.Eof() {
		tst.Errorf("scanner must be at the end of the stream")
	}
}

func Test_scan02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scan02. token trimming and position restore")

	s := NewScannerString("<  rod   extra >  <mfc>")

	pos := s.Pos()
	name, err := s.Token()
	if err != nil {
		tst.Errorf("Token failed:\n%v", err)
		return
	}
	chk.String(tst, name, "rod")

	// rewind and read the same token again
	s.SetPos(pos)
	name, err = s.Token()
	if err != nil {
		tst.Errorf("Token failed:\n%v", err)
		return
	}
	chk.String(tst, name, "rod")

	name, err = s.Token()
	if err != nil {
		tst.Errorf("Token failed:\n%v", err)
		return
	}
	chk.String(tst, name, "mfc")
}

func Test_scan03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("scan03. malformed streams")

	// missing '<'
	s := NewScannerString("banana")
	_, err := s.Token()
	if err == nil {
		tst.Errorf("Token must fail when '<' is missing")
		return
	}
	if _, ok := err.(*FormatError); !ok {
		tst.Errorf("error must be a FormatError. got %T", err)
	}

	// unparsable number; the scanner must stay at the offending word
	s = NewScannerString("  xyz  ")
	_, err = s.Int()
	fe, ok := err.(*FormatError)
	if !ok {
		tst.Errorf("error must be a FormatError. got %T", err)
		return
	}
	chk.Int(tst, "error position", fe.Pos, 2)
	chk.Int(tst, "scanner position", s.Pos(), 2)

	// unterminated token
	s = NewScannerString("<node 0 1")
	_, err = s.Token()
	if err == nil {
		tst.Errorf("Token must fail for an unterminated token")
	}
}
