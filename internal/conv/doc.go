// SPDX-License-Identifier: MPL-2.0

// Package conv implements the value-transforming command cores: the `into`
// conversions and `wrap`.
//
// Every command here follows the same contract. Configuration problems
// (an out-of-range radix, a bad unit) fail the whole invocation before a
// single item is touched. Per-item problems (a string that does not parse,
// a cell path missing from one row) are captured as error values in that
// item's place and the rest of the stream is processed normally.
//
// Commands are built from two primitives: pipeline.PipelineData.Map for
// shape- and order-preserving iteration, and cellpath.Update for rewriting
// addressed sub-values when column paths are given.
package conv
