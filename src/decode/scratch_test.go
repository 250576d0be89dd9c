// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding"

	"github.com/H0llyW00dzZ/bytebuf-decoder/src/internal/charsets"
)

// mustLookup resolves a charset the registry is known to support.
func mustLookup(t *testing.T, name string) encoding.Encoding {
	t.Helper()
	enc, err := charsets.Lookup(name)
	require.NoError(t, err)
	return enc
}

func TestScratch(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "Acquire Allocates Exactly Once For A Size",
			testFunc: func(t *testing.T) {
				var s scratch

				s.acquire(64)
				assert.Equal(t, 64, s.capacity(), "first acquire allocates the requested capacity")

				first := &s.buf[0]
				s.acquire(64)
				assert.Same(t, first, &s.buf[0], "equal-size acquire must reuse the storage")
			},
		},
		{
			name: "Smaller Acquire Reuses Storage",
			testFunc: func(t *testing.T) {
				var s scratch

				s.acquire(128)
				first := &s.buf[0]

				s.acquire(16)
				assert.Same(t, first, &s.buf[0], "smaller acquire must not reallocate")
				assert.Equal(t, 128, s.capacity(), "capacity never shrinks")
			},
		},
		{
			name: "Larger Acquire Reallocates",
			testFunc: func(t *testing.T) {
				var s scratch

				s.acquire(16)
				s.acquire(256)

				assert.Equal(t, 256, s.capacity())
			},
		},
		{
			name: "Acquire Resets The Write Position",
			testFunc: func(t *testing.T) {
				var s scratch

				s.acquire(16)
				s.pos = 10

				s.acquire(16)
				assert.Equal(t, 0, s.pos, "acquire starts a fresh decode")
				assert.Empty(t, s.window())
			},
		},
		{
			name: "Grow Preserves Written Bytes",
			testFunc: func(t *testing.T) {
				var s scratch

				s.acquire(8)
				copy(s.buf, "abcdefgh")
				s.pos = 8
				before := s.capacity()

				s.grow()

				require.GreaterOrEqual(t, s.capacity(), 2*before, "grow at least doubles capacity")
				assert.Equal(t, []byte("abcdefgh"), s.window(), "written bytes survive growth")
			},
		},
		{
			name: "Grow From Zero Capacity",
			testFunc: func(t *testing.T) {
				var s scratch

				s.grow()

				assert.Greater(t, s.capacity(), 0, "growing an empty buffer must make progress")
			},
		},
		{
			name: "Window Returns Written Prefix",
			testFunc: func(t *testing.T) {
				var s scratch

				s.acquire(16)
				copy(s.buf, "hello")
				s.pos = 5

				assert.Equal(t, []byte("hello"), s.window())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}

func TestScratch_CapacityGrowsAcrossDecodes(t *testing.T) {
	dec := New()

	// A large engine decode sizes the scratch buffer.
	large := make([]byte, 1024)
	for i := range large {
		large[i] = 'a'
	}
	if _, err := dec.transformAll("iso-8859-1", mustLookup(t, "iso-8859-1"), large); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	after := dec.scratch.capacity()

	// A smaller decode afterwards reuses it without shrinking.
	if _, err := dec.transformAll("iso-8859-1", mustLookup(t, "iso-8859-1"), []byte("hi")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assert.Equal(t, after, dec.scratch.capacity(), "capacity must not shrink between decodes")
}
