// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/bytebuf-decoder/src/bytebuf"
	"github.com/H0llyW00dzZ/bytebuf-decoder/src/decode"
	"github.com/H0llyW00dzZ/bytebuf-decoder/src/logger"
)

// ErrInputFileRequired indicates that the root command was invoked without an
// input file argument.
var ErrInputFileRequired = errors.New("cli: input file required")

var (
	charsetName string
	outputFile  string
	chunkSize   int
	emitRunes   bool
)

// OperationPerformed indicates whether a decode operation was attempted.
var OperationPerformed bool

// OperationPerformedSuccessfully indicates whether a decode operation
// completed without error.
var OperationPerformedSuccessfully bool

// Execute runs the root command, decoding the input file under the requested
// charset. The provided context cancels in-flight execution; log receives
// user-facing status output.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	rootCmd := &cobra.Command{
		Use:     "bytebuf-decoder [INPUT_FILE]",
		Short:   "Charset decoder for fragmented byte buffers",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execDecode(cmd, args, log)
		},
		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&charsetName, "charset", "c", "utf-8", "charset of the input bytes")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output to OUTPUT_FILE (default: stdout)")
	rootCmd.Flags().IntVar(&chunkSize, "chunk-size", 0, "split input into N-byte fragments and decode through the composite path")
	rootCmd.Flags().BoolVar(&emitRunes, "runes", false, "emit one decoded rune per line instead of plain text")

	rootCmd.AddCommand(newCharsetsCmd())

	return rootCmd.ExecuteContext(ctx)
}

// execDecode reads the input file, splits it into fragments when requested,
// decodes it under the selected charset, and writes the result to the output
// file or stdout.
func execDecode(cmd *cobra.Command, args []string, log logger.Logger) error {
	if len(args) == 0 {
		return ErrInputFileRequired
	}

	OperationPerformed = true

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("cli: reading input file: %w", err)
	}

	frags := fragmentsFor(data, chunkSize)
	defer func() {
		for _, f := range frags {
			f.Release()
		}
	}()

	dec := decode.New()

	var output string
	if emitRunes {
		runes, err := dec.Runes(charsetName, fragmentArgs(frags)...)
		if err != nil {
			return err
		}
		output = runesToLines(runes)
	} else {
		output, err = dec.String(charsetName, fragmentArgs(frags)...)
		if err != nil {
			return err
		}
	}

	if outputFile != "" {
		if err := os.WriteFile(outputFile, []byte(output), 0644); err != nil {
			return fmt.Errorf("cli: writing output file: %w", err)
		}
	} else {
		fmt.Fprint(cmd.OutOrStdout(), output)
	}

	if chunkSize > 0 {
		log.Printf("decoded %d bytes as %s through %d fragment(s)", len(data), charsetName, len(frags))
	}

	OperationPerformedSuccessfully = true
	return nil
}

// fragmentsFor wraps data in reference-counted buffers: one buffer when size
// is not positive, otherwise consecutive chunks of at most size bytes.
func fragmentsFor(data []byte, size int) []*bytebuf.Buffer {
	if size <= 0 || size >= len(data) {
		return []*bytebuf.Buffer{bytebuf.NewBuffer(data, nil)}
	}

	var frags []*bytebuf.Buffer
	for start := 0; start < len(data); start += size {
		end := min(start+size, len(data))
		frags = append(frags, bytebuf.NewBuffer(data[start:end], nil))
	}
	return frags
}

// fragmentArgs widens the concrete buffer slice to the Fragment interface for
// the variadic decode operations.
func fragmentArgs(frags []*bytebuf.Buffer) []bytebuf.Fragment {
	args := make([]bytebuf.Fragment, len(frags))
	for i, f := range frags {
		args[i] = f
	}
	return args
}

// runesToLines renders one decoded rune per line with its code point, e.g.
// "U+4E16\t世".
func runesToLines(runes []rune) string {
	out := make([]byte, 0, len(runes)*12)
	for _, r := range runes {
		out = fmt.Appendf(out, "U+%04X\t%c\n", r, r)
	}
	return string(out)
}
