// SPDX-License-Identifier: MPL-2.0

// Package decode parses raw text into value trees.
//
// It is the bridge between undifferentiated bytes (stdin, a materialized
// external command's output) and the structured values the pipeline
// operates on. JSON and YAML decoding preserve the key order of the
// source document; TOML decoding sorts keys, since the underlying decoder
// does not expose document order.
//
// A decode failure is an invocation-level error: no values exist yet for
// a per-item error to attach to.
package decode
