// SPDX-License-Identifier: MPL-2.0

// Package render turns materialized values into terminal output.
//
// Lists of records render as aligned tables; plain records render as a
// field/value table; scalars render via their display string. Error
// values are never hidden: an error cell inside a table is rendered
// distinctly so a single failed row stays visible next to its healthy
// neighbors.
package render
