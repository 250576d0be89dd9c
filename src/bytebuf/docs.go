// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package bytebuf provides reference-counted byte fragments and composite
// views over fragmented byte streams. A [Fragment] is one discrete chunk of a
// larger logical stream; a [Composite] concatenates several fragments into a
// single logical span while it holds one shared reference to each of them.
//
// Fragments follow a retain/release ownership discipline: every Retain must be
// balanced by exactly one Release, and the storage is handed back to its owner
// (via the free callback) when the last reference is dropped. Misuse, such as
// releasing a fragment twice or reading after the final release, is a
// programming defect and panics rather than returning an error.
package bytebuf
