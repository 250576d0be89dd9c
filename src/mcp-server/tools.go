// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createTools creates and returns all MCP tool definitions with their
// handlers. It organizes tools into two categories: those that don't require
// configuration and those whose parameter defaults come from the server
// configuration.
//
// The function defines the following tools:
//   - inspect_bytes: Reports length, encoding hints, and a hex preview of a payload
//   - list_charsets: Lists supported charsets as a markdown table or JSON
//   - decode_text: Decodes a payload under a named charset (config-backed defaults)
//
// Each tool includes parameter definitions, descriptions, and default values
// as required by the MCP specification.
func createTools() ([]ToolDefinition, []ToolDefinitionWithConfig) {
	// Tools that don't need config
	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool("inspect_bytes",
				mcp.WithDescription("Inspect a byte payload: length, UTF-8 validity, and a hex preview"),
				mcp.WithString("input",
					mcp.Required(),
					mcp.Description("File path or base64-encoded byte data"),
				),
				mcp.WithNumber("preview_bytes",
					mcp.Description("Number of bytes to include in the hex preview (default: 64)"),
					mcp.DefaultNumber(64),
				),
			),
			Handler: handleInspectBytes,
		},
		{
			Tool: mcp.NewTool("list_charsets",
				mcp.WithDescription("List the charsets supported by the decoder"),
				mcp.WithString("format",
					mcp.Description("Output format: 'markdown' or 'json' (default: markdown)"),
					mcp.DefaultString("markdown"),
				),
			),
			Handler: handleListCharsets,
		},
	}

	// Tools that need config
	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool("decode_text",
				mcp.WithDescription("Decode a byte payload into text under a named charset"),
				mcp.WithString("input",
					mcp.Required(),
					mcp.Description("File path or base64-encoded byte data"),
				),
				mcp.WithString("charset",
					mcp.Description("Charset of the input bytes (default: utf-8)"),
					mcp.DefaultString("utf-8"),
				),
				mcp.WithNumber("chunk_size",
					mcp.Description("Split input into N-byte fragments before decoding (default: 0, contiguous)"),
					mcp.DefaultNumber(0),
				),
				mcp.WithBoolean("runes",
					mcp.Description("Return one decoded rune per line with its code point (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: handleDecodeText,
		},
	}

	return tools, toolsWithConfig
}
