// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/H0llyW00dzZ/bytebuf-decoder/src/cli"
	"github.com/H0llyW00dzZ/bytebuf-decoder/src/decode"
	"github.com/H0llyW00dzZ/bytebuf-decoder/src/logger"
)

const version = "1.3.3.7-testing"

func TestExecute_NoInputFile(t *testing.T) {
	ctx := context.Background()

	os.Args = []string{"cmd"}
	err := cli.Execute(ctx, version, logger.NewCLILogger())
	if !errors.Is(err, cli.ErrInputFileRequired) {
		t.Errorf("expected ErrInputFileRequired, got %v", err)
	}
}

func TestExecute_NonExistentFile(t *testing.T) {
	ctx := context.Background()

	os.Args = []string{"cmd", "/tmp/nonexistent-file-12345.txt"}
	err := cli.Execute(ctx, version, logger.NewCLILogger())
	if err == nil {
		t.Error("expected error for non-existent file")
	}
}

func TestExecute_DecodesFile(t *testing.T) {
	ctx := context.Background()

	tmpDir := t.TempDir()
	inFile := filepath.Join(tmpDir, "input.txt")
	outFile := filepath.Join(tmpDir, "output.txt")
	if err := os.WriteFile(inFile, []byte("hello, world"), 0644); err != nil {
		t.Fatal(err)
	}

	os.Args = []string{"cmd", inFile, "-o", outFile}
	if err := cli.Execute(ctx, version, logger.NewCLILogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "hello, world" {
		t.Errorf("expected decoded output, got %q", got)
	}
}

func TestExecute_FragmentedDecode(t *testing.T) {
	ctx := context.Background()

	tmpDir := t.TempDir()
	inFile := filepath.Join(tmpDir, "input.txt")
	outFile := filepath.Join(tmpDir, "output.txt")
	// Multi-byte runes split across chunk boundaries.
	if err := os.WriteFile(inFile, []byte("héllo wörld"), 0644); err != nil {
		t.Fatal(err)
	}

	os.Args = []string{"cmd", inFile, "-o", outFile, "--chunk-size", "3"}
	if err := cli.Execute(ctx, version, logger.NewCLILogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "héllo wörld" {
		t.Errorf("expected decoded output, got %q", got)
	}
}

func TestExecute_MalformedInput(t *testing.T) {
	ctx := context.Background()

	tmpDir := t.TempDir()
	inFile := filepath.Join(tmpDir, "input.bin")
	if err := os.WriteFile(inFile, []byte{0xff, 0xfe, 0xfd}, 0644); err != nil {
		t.Fatal(err)
	}

	os.Args = []string{"cmd", inFile, "-c", "utf-8"}
	err := cli.Execute(ctx, version, logger.NewCLILogger())
	if !errors.Is(err, decode.ErrMalformedInput) {
		t.Errorf("expected ErrMalformedInput, got %v", err)
	}
}

func TestExecute_CharsetsSubcommand(t *testing.T) {
	ctx := context.Background()

	os.Args = []string{"cmd", "charsets"}
	if err := cli.Execute(ctx, version, logger.NewCLILogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
