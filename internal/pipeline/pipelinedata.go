// SPDX-License-Identifier: MPL-2.0

package pipeline

import "shoal-cli/pkg/value"

// PipelineData is the transport between pipeline stages. Exactly one of
// the three shapes is populated: an eager value, a lazy value stream, or
// an external command's output. The zero PipelineData is the empty
// pipeline (eager Nothing).
type PipelineData struct {
	val      *value.Value
	stream   *ValueStream
	external *External
	span     value.Span
}

// FromValue returns eager pipeline data carrying v.
func FromValue(v value.Value) PipelineData {
	return PipelineData{val: &v, span: v.Span}
}

// FromStream returns lazy pipeline data backed by s.
func FromStream(s *ValueStream, span value.Span) PipelineData {
	return PipelineData{stream: s, span: span}
}

// FromExternal returns pipeline data backed by an external command's
// output.
func FromExternal(e *External, span value.Span) PipelineData {
	return PipelineData{external: e, span: span}
}

// Empty returns the empty pipeline.
func Empty(span value.Span) PipelineData {
	return FromValue(value.Nothing(span))
}

// Span returns the source span the data is bound to.
func (p PipelineData) Span() value.Span {
	return p.span
}

// Value returns the eager value and true when the data is eager.
func (p PipelineData) Value() (value.Value, bool) {
	if p.val == nil {
		return value.Value{}, false
	}
	return *p.val, true
}

// Stream returns the lazy stream and true when the data is lazy.
func (p PipelineData) Stream() (*ValueStream, bool) {
	if p.stream == nil {
		return nil, false
	}
	return p.stream, true
}

// External returns the external output and true when the data is an
// external command's output.
func (p PipelineData) External() (*External, bool) {
	if p.external == nil {
		return nil, false
	}
	return p.external, true
}

// IntoValue materializes the data into a single value: an eager value is
// returned as-is, a lazy stream is drained into a list, and an external
// command's output is captured as a string (or an error value on non-zero
// exit). This is the operation the display layer invokes before
// rendering.
func (p PipelineData) IntoValue(span value.Span) value.Value {
	switch {
	case p.val != nil:
		return *p.val
	case p.stream != nil:
		return value.NewList(p.stream.Collect(), span)
	case p.external != nil:
		return p.external.IntoValue(span)
	default:
		return value.Nothing(span)
	}
}

// Map applies f over the data, mirroring its shape:
//
//   - eager non-list value: one application, eager result
//   - eager list: per element in order, eager list result
//   - lazy stream: a new lazy stream applying f per pull
//   - external output: materialized first, then one application
//
// The interrupt flag is polled between items; when it fires mid-list the
// output simply ends at the items produced so far. Output order always
// equals input order.
func (p PipelineData) Map(f func(value.Value) value.Value, interrupt *Interrupt) PipelineData {
	switch {
	case p.stream != nil:
		mapped := p.stream
		if mapped.interrupt == nil {
			mapped.interrupt = interrupt
		}
		return FromStream(mapped.Map(f), p.span)
	case p.external != nil:
		return FromValue(f(p.external.IntoValue(p.span)))
	case p.val != nil && p.val.Kind == value.KindList:
		items := make([]value.Value, 0, len(p.val.List))
		for _, item := range p.val.List {
			if interrupt.Triggered() {
				break
			}
			items = append(items, f(item))
		}
		return FromValue(value.NewList(items, p.span))
	case p.val != nil:
		return FromValue(f(*p.val))
	default:
		return FromValue(f(value.Nothing(p.span)))
	}
}
