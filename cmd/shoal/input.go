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

// readInput decodes the command's stdin into pipeline data using the
// --input format. Empty stdin yields the empty pipeline. A decode
// failure is an invocation-level error; no items are produced.
func readInput(cmd *cobra.Command) (pipeline.PipelineData, error) {
	format, err := decode.ParseFormat(inputFormat)
	if err != nil {
		return pipeline.PipelineData{}, issue.NewErrorContext().
			WithOperation("read input").
			WithSuggestion("Pass --input json, --input yaml, or --input toml").
			Wrap(err).
			BuildError()
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return pipeline.PipelineData{}, issue.WrapWithContext(err, "read input", "stdin")
	}

	span := value.Span{Start: 0, End: len(data)}
	v, err := decode.Decode(data, format, span)
	if err != nil {
		return pipeline.PipelineData{}, issue.NewErrorContext().
			WithOperation("decode input").
			WithResource("stdin").
			WithSuggestion("Check that the data matches the --input format").
			Wrap(err).
			BuildError()
	}
	return pipeline.FromValue(v), nil
}
