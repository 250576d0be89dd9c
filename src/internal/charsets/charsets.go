// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package charsets

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
)

// ErrUnsupported indicates that no encoding is registered under the requested
// charset name.
var ErrUnsupported = errors.New("charsets: unsupported charset")

// Normalize canonicalizes a charset name for lookup and comparison: leading
// and trailing space is trimmed and the name is lower-cased. IANA charset
// names are defined to be case-insensitive.
func Normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup resolves a charset name to its encoding. Resolution order is the
// cache, then the IANA registry, then the WHATWG index for colloquial aliases
// the IANA table does not carry. Unknown names return ErrUnsupported.
func Lookup(name string) (encoding.Encoding, error) {
	key := Normalize(name)
	if key == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnsupported)
	}

	if enc, ok := cachedEncoding(key); ok {
		return enc, nil
	}

	enc, err := ianaindex.IANA.Encoding(key)
	if err != nil || enc == nil {
		// The IANA index declines some names (and returns a nil encoding for
		// registered-but-unimplemented ones); the WHATWG index knows the
		// aliases browsers use.
		enc, err = htmlindex.Get(key)
		if err != nil || enc == nil {
			return nil, fmt.Errorf("%w: %q", ErrUnsupported, name)
		}
	}

	storeEncoding(key, enc)
	return enc, nil
}

// Names returns the curated list of charset names this module advertises on
// its CLI and MCP listing surfaces. Any IANA or WHATWG name resolvable by
// Lookup works for decoding; this list is the supported, tested core.
func Names() []string {
	names := make([]string, len(supportedNames))
	copy(names, supportedNames)
	return names
}

var supportedNames = []string{
	"utf-8",
	"us-ascii",
	"utf-16be",
	"utf-16le",
	"iso-8859-1",
	"iso-8859-2",
	"iso-8859-5",
	"iso-8859-7",
	"iso-8859-15",
	"windows-1250",
	"windows-1251",
	"windows-1252",
	"windows-1256",
	"koi8-r",
	"shift_jis",
	"euc-jp",
	"euc-kr",
	"gbk",
	"gb18030",
	"big5",
}
