// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"

	"shoal-cli/pkg/value"
)

const (
	// TableStyleAuto picks colored output on a terminal, plain otherwise.
	TableStyleAuto TableStyle = "auto"
	// TableStylePlain forces undecorated output.
	TableStylePlain TableStyle = "plain"
	// TableStyleColor forces colored output.
	TableStyleColor TableStyle = "color"
)

var (
	// ErrInvalidTableStyle is returned when a TableStyle value is not recognized.
	ErrInvalidTableStyle = errors.New("invalid table style")
	// ErrInvalidFilesizeFormat is returned when a filesize_format value is not recognized.
	ErrInvalidFilesizeFormat = errors.New("invalid filesize format")
)

type (
	// TableStyle selects how materialized values are decorated on output.
	TableStyle string

	// Config is the application configuration.
	Config struct {
		// FilesizeMetric selects 1000-based units for "auto" filesize display.
		FilesizeMetric bool `mapstructure:"filesize_metric"`
		// FilesizeFormat forces a filesize unit, or "auto".
		FilesizeFormat string `mapstructure:"filesize_format"`
		// TableStyle selects output decoration.
		TableStyle TableStyle `mapstructure:"table_style"`
		// Verbose enables verbose diagnostics.
		Verbose bool `mapstructure:"verbose"`
	}
)

var validFilesizeFormats = map[string]struct{}{
	"auto": {}, "b": {}, "kb": {}, "kib": {}, "mb": {}, "mib": {},
	"gb": {}, "gib": {}, "tb": {}, "tib": {},
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		FilesizeMetric: false,
		FilesizeFormat: "auto",
		TableStyle:     TableStyleAuto,
		Verbose:        false,
	}
}

// Validate checks constraints the CUE schema also expresses, for configs
// built programmatically rather than loaded from a file.
func (c *Config) Validate() error {
	switch c.TableStyle {
	case TableStyleAuto, TableStylePlain, TableStyleColor:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTableStyle, c.TableStyle)
	}
	if _, ok := validFilesizeFormats[c.FilesizeFormat]; !ok {
		return fmt.Errorf("%w: %q", ErrInvalidFilesizeFormat, c.FilesizeFormat)
	}
	return nil
}

// DisplayOptions derives the value-rendering options from the config.
func (c *Config) DisplayOptions() value.DisplayOptions {
	return value.DisplayOptions{
		FilesizeMetric: c.FilesizeMetric,
		FilesizeFormat: c.FilesizeFormat,
	}
}
