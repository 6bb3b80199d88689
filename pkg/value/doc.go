// SPDX-License-Identifier: MPL-2.0

// Package value defines the runtime datum type for shoal pipelines.
//
// Value is a closed tagged union: every datum flowing through a pipeline is
// one of a fixed set of kinds (scalars, List, Record, Error). Operations
// that dispatch on kind switch exhaustively over the Kind constants, so
// adding a kind forces every matcher to be revisited.
//
// Two properties are load-bearing for the rest of the system:
//   - Every Value carries a Span pointing back at the input that produced
//     it, used for diagnostics.
//   - Error is an ordinary value kind. A failed conversion of one table row
//     yields an Error value in that row's place and the surrounding
//     computation continues; nothing in this package panics or raises on a
//     kind mismatch.
package value
