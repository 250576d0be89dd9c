// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package decode turns fragmented byte streams into text with as little
// copying as the input allows. Given one or more reference-counted
// [bytebuf.Fragment] values and a charset name, a [Decoder] produces a string
// or rune sequence: contiguous input is decoded straight from its zero-copy
// view, fragmented input is staged once through a pooled buffer, and decoded
// output accumulates in a per-Decoder scratch buffer that is reused across
// calls and only ever grows.
//
// UTF-8 and US-ASCII bypass the charset machinery entirely via a fast path
// that validates and copies; every other charset runs through an x/text
// decoder resolved from the IANA registry.
//
// A Decoder owns mutable scratch state and therefore serves one goroutine at
// a time. Give each worker its own Decoder; sharing one across concurrent
// calls corrupts output.
//
// Decoding is strict: input the charset cannot represent fails with
// [ErrMalformedInput] and produces no partial or replacement-character
// output.
package decode
