// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"shoal-cli/internal/pipeline"
	"shoal-cli/pkg/cellpath"

	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <cellpath>",
	Short: "Read the value at a cell path",
	Long: `Resolve a dotted cell path against the input and print the
addressed sub-value. A path that does not match the input's shape is an
error for this invocation; nothing is partially applied.`,
	Example: `  echo '{"user":{"addrs":[{"city":"Oslo"}]}}' | shoal get user.addrs.0.city`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		paths, err := parsePaths(args)
		if err != nil {
			return err
		}
		input, err := readInput(cmd)
		if err != nil {
			return err
		}
		root := input.IntoValue(input.Span())
		v, err := cellpath.Follow(root, paths[0])
		if err != nil {
			return err
		}
		writeOutput(cmd, pipeline.FromValue(v))
		return nil
	},
}
