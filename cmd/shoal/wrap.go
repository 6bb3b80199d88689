// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"shoal-cli/internal/conv"

	"github.com/spf13/cobra"
)

var wrapCmd = &cobra.Command{
	Use:   "wrap <name>",
	Short: "Wrap values into a column",
	Long: `Wrap the input into a single-column table.

A list becomes one row per element; a single value becomes a one-row
table. The argument names the column.`,
	Example: `  echo '[1,2,3]' | shoal wrap num`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := readInput(cmd)
		if err != nil {
			return err
		}
		out := conv.Wrap(input, args[0], input.Span(), interrupt)
		writeOutput(cmd, out)
		return nil
	},
}
