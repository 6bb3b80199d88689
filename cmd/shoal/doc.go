// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for shoal.
//
// Commands read structured data (JSON, YAML, or TOML, selected with
// --input) from stdin, transform it through the pipeline core, and render
// the materialized result. `shoal run` instead produces data by executing
// a script with the embedded shell interpreter.
package cmd
