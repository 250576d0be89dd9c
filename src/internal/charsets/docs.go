// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package charsets resolves charset names to [encoding.Encoding] values using
// the IANA registry from golang.org/x/text, with a fallback to the WHATWG
// index for colloquial aliases. Resolved encodings are cached process-wide;
// the cache keeps basic hit/miss metrics and evicts in insertion order once
// it reaches its configured size.
package charsets
