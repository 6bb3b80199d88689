// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// It is used for invocation-level failures only: a bad flag value, an
// unreadable config file, undecodable input. Per-item failures inside a
// pipeline never pass through here; those become error values in the data
// itself (see pkg/value).
package issue
