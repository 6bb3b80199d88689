// SPDX-License-Identifier: MPL-2.0

// Package cueutil provides shared CUE parsing utilities.
//
// shoal uses CUE as its configuration format; this package holds the
// pieces of that integration which are independent of any one schema:
// formatting CUE validation errors with JSON-path context, and guarding
// against oversized input files.
package cueutil
