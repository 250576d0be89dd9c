// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package decode

import (
	"errors"
	"unicode/utf8"

	"github.com/H0llyW00dzZ/bytebuf-decoder/src/bytebuf"
	"github.com/H0llyW00dzZ/bytebuf-decoder/src/internal/charsets"
	"github.com/H0llyW00dzZ/bytebuf-decoder/src/internal/helper/gc"
)

var (
	// ErrMalformedInput indicates input the requested charset cannot
	// interpret or represent. It is fatal: the call returns no output, and
	// retrying with the same input cannot succeed.
	ErrMalformedInput = errors.New("decode: malformed input")

	// ErrUnsupportedCharset indicates a charset name the registry does not
	// recognize.
	ErrUnsupportedCharset = charsets.ErrUnsupported
)

// Decoder decodes fragmented byte streams into text. It owns a scratch output
// buffer that is reused across calls, so one Decoder serves exactly one
// goroutine; concurrent use corrupts output. Construction is cheap — give
// each worker its own.
type Decoder struct {
	fast    fastPath
	scratch scratch
	staging gc.Pool
}

// New returns a Decoder with the UTF-8/US-ASCII fast path enabled and the
// default staging pool.
func New() *Decoder {
	return &Decoder{fast: utf8FastPath{}, staging: gc.Default}
}

// Bytes concatenates the readable bytes of frags in order, with no charset
// interpretation. Zero total length returns nil without allocating.
func (d *Decoder) Bytes(frags ...bytebuf.Fragment) []byte {
	total := bytebuf.Total(frags...)
	if total == 0 {
		return nil
	}

	out := newFixedBuffer(total)
	for _, f := range frags {
		// fixedBuffer writes cannot fail.
		_, _ = f.WriteTo(out)
	}
	return out.bytes()
}

// String decodes the readable bytes of frags under the named charset and
// returns them as a string. Zero total length returns "" without touching
// the decode engine.
func (d *Decoder) String(charset string, frags ...bytebuf.Fragment) (string, error) {
	window, err := d.decode(charset, frags)
	if err != nil {
		return "", err
	}
	// The one copy out of scratch storage.
	return string(window), nil
}

// Runes decodes the readable bytes of frags under the named charset and
// returns the decoded characters as a rune slice of exactly the decoded
// length.
func (d *Decoder) Runes(charset string, frags ...bytebuf.Fragment) ([]rune, error) {
	window, err := d.decode(charset, frags)
	if err != nil {
		return nil, err
	}
	if len(window) == 0 {
		return nil, nil
	}

	// The one copy out of scratch storage.
	runes := make([]rune, 0, utf8.RuneCount(window))
	for len(window) > 0 {
		r, size := utf8.DecodeRune(window)
		runes = append(runes, r)
		window = window[size:]
	}
	return runes, nil
}

// CanFastPath reports whether the named charset is served by the specialized
// fast-path decoder rather than the generic engine.
func (d *Decoder) CanFastPath(charset string) bool {
	return d.fast != nil && d.fast.CanDecode(charset)
}

// decode normalizes frags into a single logical source and runs one decode
// call over it. The returned window aliases scratch (or source) storage and
// is only valid until the next call on this Decoder; callers materialize it
// immediately.
func (d *Decoder) decode(charset string, frags []bytebuf.Fragment) ([]byte, error) {
	if bytebuf.Total(frags...) == 0 {
		return nil, nil
	}

	var src bytebuf.Fragment
	if len(frags) == 1 {
		src = frags[0]
	} else {
		composite := bytebuf.NewComposite(frags...)
		defer composite.Release()
		src = composite
	}

	// Fast-path dispatch happens on the charset name alone, before any
	// sizing or staging decisions.
	if d.fast != nil && d.fast.CanDecode(charset) {
		return d.withView(src, func(view []byte) ([]byte, error) {
			return d.fast.Decode(charset, view)
		})
	}

	enc, err := charsets.Lookup(charset)
	if err != nil {
		return nil, err
	}
	return d.withView(src, func(view []byte) ([]byte, error) {
		return d.transformAll(charset, enc, view)
	})
}

// withView hands fn a contiguous view of src's readable bytes: the zero-copy
// view when the source is addressable as one span, otherwise a pooled staging
// buffer filled fragment by fragment and returned to the pool on every exit
// path. A result produced on the staging path is moved into scratch before
// the staging buffer goes back to the pool: the fast path returns its input
// unchanged, and a window into pooled storage is dead the moment another
// goroutine gets the buffer.
func (d *Decoder) withView(src bytebuf.Fragment, fn func(view []byte) ([]byte, error)) ([]byte, error) {
	if view, ok := src.Contiguous(); ok {
		return fn(view)
	}

	staging := d.staging.Get()
	defer func() {
		staging.Reset()
		d.staging.Put(staging)
	}()

	if _, err := src.WriteTo(staging); err != nil {
		return nil, err
	}

	out, err := fn(staging.Bytes())
	if err != nil || len(out) == 0 {
		return nil, err
	}

	// Engine output already lives in scratch and this degenerates to a
	// self-copy; fast-path output aliases staging and must be rescued.
	d.scratch.acquire(len(out))
	d.scratch.pos = copy(d.scratch.buf, out)
	return d.scratch.window(), nil
}

// fixedBuffer is an append-only io.Writer over a preallocated slice, for the
// charset-free concatenation path.
type fixedBuffer struct{ b []byte }

func newFixedBuffer(capacity int) *fixedBuffer {
	return &fixedBuffer{b: make([]byte, 0, capacity)}
}

func (f *fixedBuffer) Write(p []byte) (int, error) {
	f.b = append(f.b, p...)
	return len(p), nil
}

func (f *fixedBuffer) bytes() []byte { return f.b }
