// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package decode

import (
	"fmt"
	"unicode/utf8"

	"github.com/H0llyW00dzZ/bytebuf-decoder/src/internal/charsets"
)

// fastPath is the capability interface for specialized decoders of common
// charsets. The dispatcher consults CanDecode before any buffer sizing work,
// so the check must stay a cheap name comparison.
type fastPath interface {
	// CanDecode reports whether this fast path handles the named charset.
	CanDecode(charset string) bool
	// Decode validates src under the named charset and returns the decoded
	// UTF-8 bytes. The result may alias src; callers copy on materialization.
	Decode(charset string, src []byte) ([]byte, error)
}

// utf8FastPath decodes UTF-8 and US-ASCII without running a charset
// transformer: both already are UTF-8 on the wire, so decoding reduces to
// strict validation plus the single materialization copy.
type utf8FastPath struct{}

// CanDecode reports whether the named charset is UTF-8 or US-ASCII under the
// usual aliases.
func (utf8FastPath) CanDecode(charset string) bool {
	switch charsets.Normalize(charset) {
	case "utf-8", "utf8", "us-ascii", "ascii":
		return true
	}
	return false
}

// Decode validates src and returns it unchanged. Malformed UTF-8, or bytes
// outside the 7-bit range for US-ASCII, fail with ErrMalformedInput.
func (utf8FastPath) Decode(charset string, src []byte) ([]byte, error) {
	switch charsets.Normalize(charset) {
	case "us-ascii", "ascii":
		for i, b := range src {
			if b >= utf8.RuneSelf {
				return nil, fmt.Errorf("%w: byte 0x%02x at offset %d is not US-ASCII", ErrMalformedInput, b, i)
			}
		}
	default:
		if !utf8.Valid(src) {
			return nil, fmt.Errorf("%w: invalid UTF-8 sequence", ErrMalformedInput)
		}
	}
	return src, nil
}
