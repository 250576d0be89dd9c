// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// bytebuf-decoder is a command-line tool for decoding byte buffers into text
// under a named charset, with an optional fragmented decode path that splits
// the input into fixed-size chunks.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/bytebuf-decoder/cmd/bytebuf-decoder@latest
//
// # Usage
//
//	bytebuf-decoder INPUT_FILE [FLAGS]
//	bytebuf-decoder charsets
//
// # Flags
//
//	-c, --charset    Charset of the input bytes (default: utf-8)
//	-o, --output     Destination file (default: stdout)
//	    --chunk-size Split input into N-byte fragments before decoding
//	    --runes      Emit one decoded rune per line with its code point
//
// # Examples
//
// Decode a Shift JIS file to UTF-8 text:
//
//	bytebuf-decoder -c shift_jis input.txt -o output.txt
//
// Exercise the fragmented decode path with 4 KiB chunks:
//
//	bytebuf-decoder --chunk-size 4096 input.bin
//
// Inspect the code points of a UTF-16BE payload:
//
//	bytebuf-decoder -c utf-16be --runes payload.bin
//
// List the supported charsets:
//
//	bytebuf-decoder charsets
package main
