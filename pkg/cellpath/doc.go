// SPDX-License-Identifier: MPL-2.0

// Package cellpath addresses sub-values inside a value tree.
//
// A CellPath is an ordered list of members, each naming a record column or
// indexing a list position. Follow resolves a path read-only; Update
// rebuilds the tree from the addressed leaf back to the root with a
// transformed sub-value, leaving every sibling untouched (copy-on-write,
// never in-place mutation, so other holders of the original tree observe
// no change).
//
// A path that does not match the shape of a particular value fails with a
// PathError. Callers working item-by-item over a table typically turn that
// failure into an error value for the one mismatching row rather than
// aborting the whole stream; see internal/conv for the pattern.
package cellpath
