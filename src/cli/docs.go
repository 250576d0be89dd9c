// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the command-line interface for the byte buffer decoder.
// It implements a Cobra-based CLI that decodes a file under a requested
// charset, optionally splitting the input into fixed-size fragments to drive
// the composite decode path, and a subcommand that lists supported charsets
// in a markdown table. The package handles file I/O, context cancellation,
// and integrates with the logger package for output and error reporting.
package cli
