// SPDX-License-Identifier: MPL-2.0

package conv

import (
	"shoal-cli/internal/pipeline"
	"shoal-cli/pkg/cellpath"
	"shoal-cli/pkg/value"
)

// IntoString converts the input to display strings, either whole items or
// the sub-values addressed by paths. Filesize rendering follows the
// configured display options (filesize_metric, filesize_format).
func IntoString(input pipeline.PipelineData, paths []cellpath.CellPath, opts value.DisplayOptions, head value.Span, interrupt *pipeline.Interrupt) pipeline.PipelineData {
	return input.Map(func(v value.Value) value.Value {
		return applyAtPaths(v, paths, func(old value.Value) value.Value {
			return ToString(old, head, opts)
		})
	}, interrupt)
}

// ToString coerces a single scalar to its display string. Lists and
// records are containers, not text; converting them is unsupported, and
// error values pass through unchanged so they stay visible downstream.
func ToString(v value.Value, head value.Span, opts value.DisplayOptions) value.Value {
	switch v.Kind {
	case value.KindList, value.KindRecord:
		return value.Unsupported("into string", v.Kind, v.Span)
	case value.KindError:
		return v
	default:
		return value.NewString(v.IntoString(opts), head)
	}
}
