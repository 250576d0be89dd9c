// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bytebuf_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/H0llyW00dzZ/bytebuf-decoder/src/bytebuf"
)

func TestBuffer(t *testing.T) {
	tests := []struct {
		name     string
		testFunc func(t *testing.T)
	}{
		{
			name: "New Buffer Starts With One Reference",
			testFunc: func(t *testing.T) {
				b := bytebuf.NewBuffer([]byte("hello"), nil)

				assert.Equal(t, int32(1), b.Refs(), "expected initial reference count of 1")
				assert.Equal(t, 5, b.Len(), "expected readable length of 5")
			},
		},
		{
			name: "Contiguous Returns Zero-Copy View",
			testFunc: func(t *testing.T) {
				data := []byte("hello")
				b := bytebuf.NewBuffer(data, nil)

				view, ok := b.Contiguous()
				require.True(t, ok, "buffer storage must be addressable")
				assert.Equal(t, data, view, "expected view over the original bytes")

				// Same backing array, not a copy.
				data[0] = 'H'
				assert.Equal(t, byte('H'), view[0], "view must alias the original storage")
			},
		},
		{
			name: "Free Callback Runs Once At Zero",
			testFunc: func(t *testing.T) {
				freed := 0
				b := bytebuf.NewBuffer([]byte("hello"), func([]byte) { freed++ })

				b.Retain()
				b.Release()
				assert.Equal(t, 0, freed, "free must not run while references remain")

				b.Release()
				assert.Equal(t, 1, freed, "free must run exactly once at zero")
			},
		},
		{
			name: "Free Callback Receives Original Slice",
			testFunc: func(t *testing.T) {
				data := []byte("hello")
				var got []byte
				b := bytebuf.NewBuffer(data, func(d []byte) { got = d })

				b.Release()

				require.NotNil(t, got, "free callback must receive the slice")
				assert.Equal(t, "hello", string(got), "free must receive the original slice")
			},
		},
		{
			name: "WriteTo Copies Readable Bytes",
			testFunc: func(t *testing.T) {
				b := bytebuf.NewBuffer([]byte("hello"), nil)

				var out bytes.Buffer
				n, err := b.WriteTo(&out)

				require.NoError(t, err)
				assert.Equal(t, int64(5), n, "expected 5 bytes written")
				assert.Equal(t, "hello", out.String())
			},
		},
		{
			name: "Retain After Release Panics",
			testFunc: func(t *testing.T) {
				b := bytebuf.NewBuffer([]byte("hello"), nil)
				b.Release()

				assert.Panics(t, func() { b.Retain() }, "retain of a released buffer must panic")
			},
		},
		{
			name: "Double Release Panics",
			testFunc: func(t *testing.T) {
				b := bytebuf.NewBuffer([]byte("hello"), nil)
				b.Release()

				assert.Panics(t, func() { b.Release() }, "release of a released buffer must panic")
			},
		},
		{
			name: "Read After Release Panics",
			testFunc: func(t *testing.T) {
				b := bytebuf.NewBuffer([]byte("hello"), nil)
				b.Release()

				assert.Panics(t, func() { b.Contiguous() }, "contiguous view of a released buffer must panic")
				assert.Panics(t, func() { b.WriteTo(&bytes.Buffer{}) }, "write from a released buffer must panic")
			},
		},
		{
			name: "Indirect Hides Contiguous View",
			testFunc: func(t *testing.T) {
				b := bytebuf.NewBuffer([]byte("hello"), nil)
				ind := bytebuf.Indirect{Fragment: b}

				view, ok := ind.Contiguous()
				assert.False(t, ok, "indirect fragment must not expose a view")
				assert.Nil(t, view)

				// The copy path still works.
				var out bytes.Buffer
				n, err := ind.WriteTo(&out)
				require.NoError(t, err)
				assert.Equal(t, int64(5), n)
				assert.Equal(t, "hello", out.String())
			},
		},
		{
			name: "Total Sums Fragment Lengths",
			testFunc: func(t *testing.T) {
				a := bytebuf.NewBuffer([]byte("he"), nil)
				b := bytebuf.NewBuffer([]byte("llo"), nil)

				assert.Equal(t, 5, bytebuf.Total(a, b))
				assert.Equal(t, 0, bytebuf.Total())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, tt.testFunc)
	}
}
