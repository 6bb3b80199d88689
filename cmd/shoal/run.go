// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"strings"

	"shoal-cli/internal/decode"
	"shoal-cli/internal/issue"
	"shoal-cli/internal/pipeline"
	"shoal-cli/pkg/value"

	"github.com/spf13/cobra"
)

var (
	runDecode string

	runCmd = &cobra.Command{
		Use:   "run <script...>",
		Short: "Run a script and capture its output",
		Long: `Execute a shell script with the embedded interpreter and carry its
output into the pipeline.

The output is captured as a string value; a non-zero exit becomes an
error value. With --decode the captured text is parsed as structured
data instead.`,
		Example: `  shoal run 'printf hello'
  shoal run --decode json 'cat users.json'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			script := strings.Join(args, " ")
			ext, err := pipeline.RunExternal(cmd.Context(), script, pipeline.ExternalOptions{
				Stderr: cmd.ErrOrStderr(),
			})
			if err != nil {
				return issue.WrapWithContext(err, "run script", script)
			}

			span := value.UnknownSpan()
			data := pipeline.FromExternal(ext, span)

			if runDecode != "" {
				format, err := decode.ParseFormat(runDecode)
				if err != nil {
					return issue.WrapWithOperation(err, "decode script output")
				}
				captured := data.IntoValue(span)
				if captured.IsError() {
					return exitErrorFor(ext, captured)
				}
				v, err := decode.Decode([]byte(captured.Str), format, span)
				if err != nil {
					return issue.WrapWithOperation(err, "decode script output")
				}
				writeOutput(cmd, pipeline.FromValue(v))
				return nil
			}

			captured := data.IntoValue(span)
			writeOutput(cmd, pipeline.FromValue(captured))
			if captured.IsError() {
				return exitErrorFor(ext, captured)
			}
			return nil
		},
	}
)

func init() {
	runCmd.Flags().StringVar(&runDecode, "decode", "", "parse the captured output as json, yaml, or toml")
}

// exitErrorFor propagates the script's exit status to the shell, keeping
// the error value's message as the displayed cause.
func exitErrorFor(ext *pipeline.External, captured value.Value) error {
	code, _ := ext.ExitCode()
	if code == 0 {
		code = 1
	}
	return &ExitError{Code: code, Err: captured.Err}
}
