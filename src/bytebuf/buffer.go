// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bytebuf

import (
	"io"
	"sync/atomic"
)

// Fragment is one discrete, independently reference-counted chunk of a larger
// logical byte stream.
//
// Len reports the readable length and must not change while a decode over the
// fragment is in progress. Contiguous returns a zero-copy view of the readable
// bytes when the underlying storage is directly addressable; callers must not
// mutate the returned slice, and must not mutate the fragment's storage while
// the view is in use. WriteTo copies the readable bytes out in order and is
// the fallback for storage without an addressable view.
type Fragment interface {
	// Retain increments the fragment's shared reference count.
	Retain()
	// Release decrements the reference count, freeing the underlying storage
	// when it reaches zero.
	Release()
	// Len returns the number of readable bytes.
	Len() int
	// Contiguous returns the readable bytes as a single zero-copy view,
	// or (nil, false) when the storage is not directly addressable.
	Contiguous() ([]byte, bool)

	io.WriterTo
}

// Buffer is the standard Fragment implementation: a reference-counted view
// over a byte slice with an optional free callback invoked once the last
// reference is released.
type Buffer struct {
	data []byte
	refs atomic.Int32
	free func([]byte)
}

// NewBuffer wraps data in a Buffer with a reference count of one. The data is
// not copied. If free is non-nil it is called exactly once, with the original
// slice, when the count drops to zero.
func NewBuffer(data []byte, free func([]byte)) *Buffer {
	b := &Buffer{data: data, free: free}
	b.refs.Store(1)
	return b
}

// Retain increments the reference count.
func (b *Buffer) Retain() {
	if b.refs.Add(1) <= 1 {
		panic("bytebuf: retain of released buffer")
	}
}

// Release decrements the reference count and frees the underlying storage
// when it reaches zero. Releasing an already-freed buffer panics: that is a
// use-after-release defect, not a runtime condition.
func (b *Buffer) Release() {
	switch n := b.refs.Add(-1); {
	case n == 0:
		data := b.data
		b.data = nil
		if b.free != nil {
			b.free(data)
		}
	case n < 0:
		panic("bytebuf: release of released buffer")
	}
}

// Refs returns the current reference count. Diagnostic only.
func (b *Buffer) Refs() int32 { return b.refs.Load() }

// Len returns the number of readable bytes.
func (b *Buffer) Len() int { return len(b.data) }

// Contiguous returns the readable bytes as a zero-copy view. The view aliases
// the buffer's storage directly; it stays valid only while the caller holds a
// reference.
func (b *Buffer) Contiguous() ([]byte, bool) {
	if b.refs.Load() <= 0 {
		panic("bytebuf: read of released buffer")
	}
	return b.data, true
}

// WriteTo copies the readable bytes to w.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	if b.refs.Load() <= 0 {
		panic("bytebuf: read of released buffer")
	}
	n, err := w.Write(b.data)
	return int64(n), err
}

// Indirect wraps a fragment and hides its contiguous view, forcing consumers
// through the copy path. It models storage that is not directly addressable,
// such as buffers owned by foreign memory.
type Indirect struct{ Fragment }

// Contiguous always reports no addressable view.
func (Indirect) Contiguous() ([]byte, bool) { return nil, false }

// Total returns the summed readable length of frags.
func Total(frags ...Fragment) int {
	total := 0
	for _, f := range frags {
		total += f.Len()
	}
	return total
}
