// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/H0llyW00dzZ/bytebuf-decoder/src/bytebuf"
	"github.com/H0llyW00dzZ/bytebuf-decoder/src/decode"
	"github.com/H0llyW00dzZ/bytebuf-decoder/src/internal/charsets"
)

// readByteInput resolves a tool input that is either a file path or
// base64-encoded byte data. File paths are checked first so payloads never
// need an explicit discriminator.
func readByteInput(input string) ([]byte, error) {
	if _, err := os.Stat(input); err == nil {
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, fmt.Errorf("failed to read input file: %w", err)
		}
		return data, nil
	}

	data, err := base64.StdEncoding.DecodeString(input)
	if err != nil {
		return nil, fmt.Errorf("input is not a valid file path or base64 data: %w", err)
	}
	return data, nil
}

// buildFragments wraps data in reference-counted buffers, splitting into
// chunks of at most size bytes when size is positive.
func buildFragments(data []byte, size int) []bytebuf.Fragment {
	if size <= 0 || size >= len(data) {
		return []bytebuf.Fragment{bytebuf.NewBuffer(data, nil)}
	}

	var frags []bytebuf.Fragment
	for start := 0; start < len(data); start += size {
		end := min(start+size, len(data))
		frags = append(frags, bytebuf.NewBuffer(data[start:end], nil))
	}
	return frags
}

// releaseFragments drops the handler's reference on every fragment.
func releaseFragments(frags []bytebuf.Fragment) {
	for _, f := range frags {
		f.Release()
	}
}

// handleDecodeText handles the decode_text tool call.
// It decodes a byte payload under the requested charset, optionally splitting
// the payload into fragments first, and returns the decoded text or one rune
// per line with its code point.
//
// Defaults for charset and chunk_size come from the server configuration when
// the call omits them.
func handleDecodeText(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("input parameter required: %v", err)), nil
	}

	defaultCharset := "utf-8"
	defaultChunkSize := 0
	maxInputBytes := 0
	if config != nil {
		defaultCharset = config.Defaults.Charset
		defaultChunkSize = config.Defaults.ChunkSize
		maxInputBytes = config.Defaults.MaxInputBytes
	}

	charset := request.GetString("charset", defaultCharset)
	chunkSize := request.GetInt("chunk_size", defaultChunkSize)
	emitRunes := request.GetBool("runes", false)

	data, err := readByteInput(input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if maxInputBytes > 0 && len(data) > maxInputBytes {
		return mcp.NewToolResultError(fmt.Sprintf("input exceeds configured limit of %d bytes", maxInputBytes)), nil
	}

	frags := buildFragments(data, chunkSize)
	defer releaseFragments(frags)

	dec := decode.New()

	if emitRunes {
		runes, err := dec.Runes(charset, frags...)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("decode failed: %v", err)), nil
		}
		var out bytes.Buffer
		for _, r := range runes {
			fmt.Fprintf(&out, "U+%04X\t%c\n", r, r)
		}
		return mcp.NewToolResultText(out.String()), nil
	}

	text, err := dec.String(charset, frags...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("decode failed: %v", err)), nil
	}
	return mcp.NewToolResultText(text), nil
}

// handleInspectBytes handles the inspect_bytes tool call.
// It materializes the payload through the fragment path and reports length,
// UTF-8 validity, whether the payload is pure ASCII, and a hex preview.
func handleInspectBytes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := request.RequireString("input")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("input parameter required: %v", err)), nil
	}

	previewBytes := request.GetInt("preview_bytes", 64)
	if previewBytes < 0 {
		previewBytes = 0
	}

	data, err := readByteInput(input)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	frags := buildFragments(data, 0)
	defer releaseFragments(frags)

	raw := decode.New().Bytes(frags...)

	asciiOnly := true
	for _, b := range raw {
		if b >= utf8.RuneSelf {
			asciiOnly = false
			break
		}
	}

	preview := raw
	if len(preview) > previewBytes {
		preview = preview[:previewBytes]
	}

	info := map[string]any{
		"length":     len(raw),
		"utf8Valid":  utf8.Valid(raw),
		"asciiOnly":  asciiOnly,
		"previewHex": hex.EncodeToString(preview),
	}

	jsonData, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal inspection result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleListCharsets handles the list_charsets tool call.
// It returns the supported charsets as a markdown table or a JSON array,
// marking the charsets served by the validation fast path.
func handleListCharsets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	format := request.GetString("format", "markdown")
	dec := decode.New()

	if format == "json" {
		type charsetInfo struct {
			Name     string `json:"name"`
			FastPath bool   `json:"fastPath"`
		}
		var list []charsetInfo
		for _, name := range charsets.Names() {
			list = append(list, charsetInfo{Name: name, FastPath: dec.CanFastPath(name)})
		}
		jsonData, err := json.MarshalIndent(list, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to marshal charset list: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonData)), nil
	}

	var buf bytes.Buffer
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{
			Streaming: true,
		})),
	)
	table.Header("Charset", "Fast Path")

	rows := make([][]string, 0, len(charsets.Names()))
	for _, name := range charsets.Names() {
		fast := ""
		if dec.CanFastPath(name) {
			fast = "yes"
		}
		rows = append(rows, []string{name, fast})
	}

	if err := table.Bulk(rows); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to build charset table: %v", err)), nil
	}
	if err := table.Render(); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to render charset table: %v", err)), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}
