// SPDX-License-Identifier: MPL-2.0

// Package config handles application configuration using Viper with CUE as the file format.
//
// Configuration is loaded from ~/.config/shoal/config.cue (or XDG equivalent on Linux,
// ~/Library/Application Support/shoal/config.cue on macOS, %APPDATA%\shoal\config.cue
// on Windows). Settings cover display concerns: filesize rendering
// (filesize_metric, filesize_format), table styling, and verbosity.
//
// Configuration validation is performed against a CUE schema (config_schema.cue) to ensure
// type safety and provide clear error messages for invalid configurations.
package config
