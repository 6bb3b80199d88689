// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"os"

	"shoal-cli/internal/config"
	"shoal-cli/internal/pipeline"
	"shoal-cli/internal/render"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// writeOutput materializes the pipeline data and renders it to the
// command's stdout. This is the terminal stage of every pipeline: lazy
// streams are drained here, external output captured here.
func writeOutput(cmd *cobra.Command, data pipeline.PipelineData) {
	v := data.IntoValue(data.Span())
	out := render.Render(v, cfg.DisplayOptions(), outputStyles())
	fmt.Fprintln(cmd.OutOrStdout(), out)
}

// outputStyles picks render styles from the configured table style,
// falling back to plain output when stdout is not a terminal.
func outputStyles() render.Styles {
	switch cfg.TableStyle {
	case config.TableStyleColor:
		return render.DefaultStyles()
	case config.TableStylePlain:
		return render.PlainStyles()
	default:
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return render.DefaultStyles()
		}
		return render.PlainStyles()
	}
}
