// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver provides the [MCP] server for byte buffer decoding.
// It implements the Model Context Protocol ([MCP]) server with tools for
// decoding byte payloads under a named charset, inspecting raw bytes, and
// listing the supported charsets. The package uses a builder pattern for
// server construction and serves static resources for configuration and
// version discovery.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver
