// Copyright 2018 The Gofes Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package inp implements the reading of model streams. A stream is a
// sequence of class tokens such as <node> or <rod>, each followed by a
// class-specific payload of numbers. Whitespace is insignificant and
// '%' starts a comment running to the end of the line.
package inp

import "strconv"

// Scanner reads tokens and numbers from a model stream. The whole input
// is held in memory so that the position can be saved before a token and
// restored if that token turns out to be unreadable.
type Scanner struct {
	data []byte
	pos  int
}

// NewScanner returns a scanner over data
func NewScanner(data []byte) *Scanner {
	return &Scanner{data: data}
}

// NewScannerString returns a scanner over the contents of s
func NewScannerString(s string) *Scanner {
	return &Scanner{data: []byte(s)}
}

// Pos returns the current byte offset
func (o *Scanner) Pos() int { return o.pos }

// SetPos rewinds (or advances) the scanner to a previously saved offset
func (o *Scanner) SetPos(pos int) { o.pos = pos }

// Eof reports whether only whitespace and comments remain
func (o *Scanner) Eof() bool {
	o.skipWhite()
	return o.pos >= len(o.data)
}

// Token reads the next class token. The token must start with '<' and
// run to the matching '>'; surrounding whitespace inside the brackets is
// trimmed. On failure the scanner is left at the offending position.
func (o *Scanner) Token() (name string, err error) {
	o.skipWhite()
	start := o.pos
	if o.pos >= len(o.data) {
		return "", Errf(start, "unexpected end of stream while looking for a token")
	}
	if o.data[o.pos] != '<' {
		return "", Errf(start, "expected '<' to open a token")
	}
	o.pos++
	b := o.pos
	for o.pos < len(o.data) && o.data[o.pos] != '>' {
		o.pos++
	}
	if o.pos >= len(o.data) {
		o.pos = start
		return "", Errf(start, "token opened at byte %d is never closed", start)
	}
	raw := o.data[b:o.pos]
	o.pos++ // consume '>'

	// trim whitespace and keep the first word only
	i := 0
	for i < len(raw) && isWhite(raw[i]) {
		i++
	}
	j := i
	for j < len(raw) && !isWhite(raw[j]) {
		j++
	}
	if i == j {
		o.pos = start
		return "", Errf(start, "empty token")
	}
	return string(raw[i:j]), nil
}

// Int reads the next integer
func (o *Scanner) Int() (int, error) {
	start, w := o.word()
	if w == "" {
		return 0, Errf(start, "unexpected end of stream while reading an integer")
	}
	n, err := strconv.Atoi(w)
	if err != nil {
		o.pos = start
		return 0, Errf(start, "cannot parse integer from %q", w)
	}
	return n, nil
}

// Float reads the next floating point number
func (o *Scanner) Float() (float64, error) {
	start, w := o.word()
	if w == "" {
		return 0, Errf(start, "unexpected end of stream while reading a number")
	}
	v, err := strconv.ParseFloat(w, 64)
	if err != nil {
		o.pos = start
		return 0, Errf(start, "cannot parse number from %q", w)
	}
	return v, nil
}

// word consumes and returns the next whitespace-delimited run of bytes,
// together with its starting offset. An empty word means end of stream.
func (o *Scanner) word() (start int, w string) {
	o.skipWhite()
	start = o.pos
	for o.pos < len(o.data) && !isWhite(o.data[o.pos]) && o.data[o.pos] != '%' {
		o.pos++
	}
	return start, string(o.data[start:o.pos])
}

// skipWhite advances over whitespace and '%' comments
func (o *Scanner) skipWhite() {
	for o.pos < len(o.data) {
		c := o.data[o.pos]
		if isWhite(c) {
			o.pos++
			continue
		}
		if c == '%' {
			for o.pos < len(o.data) && o.data[o.pos] != '\n' {
				o.pos++
			}
			continue
		}
		return
	}
}

func isWhite(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
