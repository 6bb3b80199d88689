// SPDX-License-Identifier: MPL-2.0

package conv

import (
	"shoal-cli/internal/pipeline"
	"shoal-cli/pkg/value"
)

// Wrap wraps the input into a single-column record shape, dispatching on
// the pipeline's shape:
//
//   - an eager list becomes a list of one-column records (a table)
//   - a lazy stream is wrapped lazily, one record per pulled item
//   - external output is materialized, then wrapped as one record
//   - any other single value becomes one record
func Wrap(input pipeline.PipelineData, name string, head value.Span, interrupt *pipeline.Interrupt) pipeline.PipelineData {
	wrapOne := func(v value.Value) value.Value {
		return value.NewRecord([]string{name}, []value.Value{v}, head)
	}

	if v, ok := input.Value(); ok && v.Kind == value.KindList {
		rows := make([]value.Value, 0, len(v.List))
		for _, item := range v.List {
			if interrupt.Triggered() {
				break
			}
			rows = append(rows, wrapOne(item))
		}
		return pipeline.FromValue(value.NewList(rows, head))
	}
	if s, ok := input.Stream(); ok {
		return pipeline.FromStream(s.Map(wrapOne), head)
	}
	if e, ok := input.External(); ok {
		return pipeline.FromValue(wrapOne(e.IntoValue(head)))
	}
	return pipeline.FromValue(wrapOne(input.IntoValue(head)))
}
