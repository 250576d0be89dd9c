// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package decode

import "unicode/utf8"

// maxUTF8PerByte is the worst-case expansion from one input byte to decoded
// UTF-8 output, across every supported charset: a single-byte codepoint can
// map to a rune of up to [utf8.UTFMax] bytes.
const maxUTF8PerByte = utf8.UTFMax

// scratch is the per-Decoder reusable output buffer. Its capacity only grows
// over the Decoder's lifetime; the write position is reset at the start of
// each decode. The readable window it returns stays valid until the next
// decode on the same Decoder, which is why materialization always copies.
type scratch struct {
	buf []byte
	pos int
}

// acquire prepares the buffer for a decode needing at least minCap bytes of
// capacity. An undersized buffer is replaced with one of exactly minCap (the
// old storage is left to the garbage collector); otherwise the existing
// storage is reused with the write position reset.
func (s *scratch) acquire(minCap int) {
	if cap(s.buf) < minCap {
		s.buf = make([]byte, minCap)
	} else {
		s.buf = s.buf[:cap(s.buf)]
	}
	s.pos = 0
}

// grow enlarges the buffer after a capacity misestimate, preserving the bytes
// written so far. Capacity at least doubles and never shrinks.
func (s *scratch) grow() {
	next := make([]byte, 2*cap(s.buf)+maxUTF8PerByte)
	copy(next, s.buf[:s.pos])
	s.buf = next
}

// window flips the buffer from write mode to read mode and returns the
// decoded bytes. The returned slice aliases scratch storage.
func (s *scratch) window() []byte { return s.buf[:s.pos] }

// capacity reports the current storage capacity. Diagnostic only.
func (s *scratch) capacity() int { return cap(s.buf) }
