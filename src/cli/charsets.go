// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"

	"github.com/H0llyW00dzZ/bytebuf-decoder/src/decode"
	"github.com/H0llyW00dzZ/bytebuf-decoder/src/internal/charsets"
)

// newCharsetsCmd builds the subcommand that lists the supported charsets as a
// markdown table, marking the ones served by the validation fast path.
func newCharsetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "charsets",
		Short: "List supported charsets",
		RunE: func(cmd *cobra.Command, args []string) error {
			dec := decode.New()

			table := tablewriter.NewTable(cmd.OutOrStdout(),
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
				return fmt.Errorf("cli: building charset table: %w", err)
			}
			if err := table.Render(); err != nil {
				return fmt.Errorf("cli: rendering charset table: %w", err)
			}
			return nil
		},
	}
}
