// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"shoal-cli/internal/conv"
	"shoal-cli/internal/issue"
	"shoal-cli/pkg/cellpath"

	"github.com/spf13/cobra"
)

var (
	intoIntRadix int

	intoCmd = &cobra.Command{
		Use:   "into",
		Short: "Convert values between types",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	intoIntCmd = &cobra.Command{
		Use:   "int [cellpath...]",
		Short: "Convert values to integers",
		Long: `Convert values to integers.

Without arguments the whole input is converted: strings are parsed
(including 0b/0x literals), floats truncate toward zero, booleans map to
0 and 1, filesizes yield their byte count. With cell path arguments only
the addressed cells of each row are converted; a row that does not match
a path gets an error value in its place and the other rows pass through.`,
		Example: `  echo '"1101"' | shoal into int --radix 2
  echo '[{"num":"-5"},{"num":4},{"num":1.5}]' | shoal into int num`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := parsePaths(args)
			if err != nil {
				return err
			}
			input, err := readInput(cmd)
			if err != nil {
				return err
			}
			out, err := conv.IntoInt(input, intoIntRadix, paths, input.Span(), interrupt)
			if err != nil {
				return err
			}
			writeOutput(cmd, out)
			return nil
		},
	}

	intoStringCmd = &cobra.Command{
		Use:   "string [cellpath...]",
		Short: "Convert values to strings",
		Long: `Convert scalar values to their display strings.

Filesize values honor the filesize_metric and filesize_format
configuration keys, so 40000 bytes renders as "39.1 KiB" or "40.0 KB"
depending on the configured unit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths, err := parsePaths(args)
			if err != nil {
				return err
			}
			input, err := readInput(cmd)
			if err != nil {
				return err
			}
			out := conv.IntoString(input, paths, cfg.DisplayOptions(), input.Span(), interrupt)
			writeOutput(cmd, out)
			return nil
		},
	}
)

func init() {
	intoIntCmd.Flags().IntVarP(&intoIntRadix, "radix", "r", conv.DefaultRadix, "radix of integer (2 to 36)")
	intoCmd.AddCommand(intoIntCmd)
	intoCmd.AddCommand(intoStringCmd)
}

// parsePaths builds cell paths from trailing command arguments.
func parsePaths(args []string) ([]cellpath.CellPath, error) {
	paths := make([]cellpath.CellPath, 0, len(args))
	for _, arg := range args {
		p, err := cellpath.Parse(arg)
		if err != nil {
			return nil, issue.NewErrorContext().
				WithOperation("parse cell path").
				WithResource(arg).
				WithSuggestion("Use dotted segments, e.g. user.addrs.0.city").
				Wrap(err).
				BuildError()
		}
		paths = append(paths, p)
	}
	return paths, nil
}
