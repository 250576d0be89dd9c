// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bytebuf

import (
	"io"
	"sync/atomic"
)

// Composite is a temporary logical concatenation of several fragments.
//
// Construction takes one shared reference to every constituent; releasing the
// composite's last reference gives exactly those references back, regardless
// of how the surrounding operation ends. The composite never exclusively owns
// fragments the caller still holds.
type Composite struct {
	frags  []Fragment
	length int
	refs   atomic.Int32
}

// NewComposite builds a composite view over frags, retaining each one once.
// The fragments' readable lengths must not change for the composite's
// lifetime.
func NewComposite(frags ...Fragment) *Composite {
	c := &Composite{frags: frags}
	for _, f := range frags {
		f.Retain()
		c.length += f.Len()
	}
	c.refs.Store(1)
	return c
}

// Retain increments the composite's own reference count. The constituent
// fragments keep the single reference taken at construction.
func (c *Composite) Retain() {
	if c.refs.Add(1) <= 1 {
		panic("bytebuf: retain of released composite")
	}
}

// Release decrements the composite's reference count. When it reaches zero
// the construction-time reference on every constituent is given back, each
// exactly once.
func (c *Composite) Release() {
	switch n := c.refs.Add(-1); {
	case n == 0:
		for _, f := range c.frags {
			f.Release()
		}
		c.frags = nil
	case n < 0:
		panic("bytebuf: release of released composite")
	}
}

// Len returns the summed readable length of all constituents.
func (c *Composite) Len() int { return c.length }

// Contiguous returns a zero-copy view only when the composite reduces to a
// single fragment that has one itself.
func (c *Composite) Contiguous() ([]byte, bool) {
	if len(c.frags) == 1 {
		return c.frags[0].Contiguous()
	}
	return nil, false
}

// WriteTo copies the readable bytes of every constituent to w, in order.
func (c *Composite) WriteTo(w io.Writer) (int64, error) {
	if c.refs.Load() <= 0 {
		panic("bytebuf: read of released composite")
	}
	var written int64
	for _, f := range c.frags {
		n, err := f.WriteTo(w)
		written += n
		if err != nil {
			return written, err
		}
	}
	return written, nil
}
