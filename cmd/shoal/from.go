// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"shoal-cli/internal/decode"
	"shoal-cli/internal/issue"
	"shoal-cli/internal/pipeline"
	"shoal-cli/pkg/value"

	"github.com/spf13/cobra"
)

var fromCmd = &cobra.Command{
	Use:       "from <format>",
	Short:     "Parse raw text as structured data",
	Long:      "Parse raw stdin text as structured data in the given format (json, yaml, or toml), regardless of the --input flag.",
	Example:   `  shoal run 'cat users.json' | shoal from json`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "toml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := decode.ParseFormat(args[0])
		if err != nil {
			return issue.WrapWithOperation(err, "parse input format")
		}
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return issue.WrapWithContext(err, "read input", "stdin")
		}
		span := value.Span{Start: 0, End: len(data)}
		v, err := decode.Decode(data, format, span)
		if err != nil {
			return issue.NewErrorContext().
				WithOperation("decode input").
				WithResource("stdin").
				WithSuggestion("Check that the data is valid " + string(format)).
				Wrap(err).
				BuildError()
		}
		writeOutput(cmd, pipeline.FromValue(v))
		return nil
	},
}
