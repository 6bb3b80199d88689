// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"shoal-cli/internal/config"
	"shoal-cli/internal/issue"
	"shoal-cli/internal/pipeline"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string
	// inputFormat selects how stdin is decoded
	inputFormat string

	// cfg is the loaded configuration, available to all commands.
	cfg = config.DefaultConfig()

	// interrupt is the shared cancellation flag polled by every pipeline
	// stage. It is set when the execution context is canceled (Ctrl-C).
	interrupt = pipeline.NewInterrupt()

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "shoal",
		Short: "A structured-data pipeline shell core",
		Long: TitleStyle.Render("shoal") + SubtitleStyle.Render(" - A structured-data pipeline shell core") + `

shoal treats data as structured values rather than text. Commands read
JSON, YAML, or TOML from stdin, transform whole values or the cells
addressed by dotted paths, and render the result as a table.

A failed conversion of one row becomes an error value in that row's
place; the rest of the data is processed normally.

` + SubtitleStyle.Render("Examples:") + `
  echo '"FF"' | shoal into int --radix 16       Parse a hex string
  echo '[{"n":"4"},{"n":"7"}]' | shoal into int n  Convert a column
  echo '[1,2,3]' | shoal wrap num               Wrap a list into a table
  shoal run 'printf hello'                      Capture a script's output`,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			interrupt.WatchContext(cmd.Context())

			loaded, err := config.Load(cfgFile)
			if err != nil {
				// An explicitly requested config file must load; a broken
				// default-path file degrades to defaults with a warning.
				if cfgFile != "" {
					return err
				}
				fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err))
				loaded = config.DefaultConfig()
			}
			cfg = loaded
			if verbose {
				cfg.Verbose = true
			}
			if cfg.Verbose {
				slog.SetLogLoggerLevel(slog.LevelDebug)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/shoal/config.cue)")
	rootCmd.PersistentFlags().StringVarP(&inputFormat, "input", "i", "json", "stdin format: json, yaml, or toml")

	rootCmd.AddCommand(intoCmd)
	rootCmd.AddCommand(wrapCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(fromCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// fang cancels the command context on os.Interrupt; PersistentPreRunE
	// bridges that into the pipeline's shared interrupt flag.
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// formatErrorForDisplay renders invocation-level errors, expanding
// actionable context when available.
func formatErrorForDisplay(err error) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(cfg.Verbose)
	}
	return err.Error()
}
