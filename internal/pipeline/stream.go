// SPDX-License-Identifier: MPL-2.0

package pipeline

import "shoal-cli/pkg/value"

// ValueStream is a lazy, single-pass sequence of values. Items are
// produced on demand by whoever pulls; once exhausted (or interrupted) a
// stream cannot be restarted.
type ValueStream struct {
	next      func() (value.Value, bool)
	interrupt *Interrupt
	done      bool
}

// NewValueStream wraps a pull function into a stream. The function returns
// the next value and true, or false when the sequence is exhausted. The
// interrupt flag is polled before every pull; a triggered flag ends the
// stream early without error.
func NewValueStream(next func() (value.Value, bool), interrupt *Interrupt) *ValueStream {
	return &ValueStream{next: next, interrupt: interrupt}
}

// StreamFromSlice returns a stream yielding the given values in order.
func StreamFromSlice(vals []value.Value, interrupt *Interrupt) *ValueStream {
	i := 0
	return NewValueStream(func() (value.Value, bool) {
		if i >= len(vals) {
			return value.Value{}, false
		}
		v := vals[i]
		i++
		return v, true
	}, interrupt)
}

// Next pulls the next value. It reports false once the stream is
// exhausted or the shared interrupt flag has been set.
func (s *ValueStream) Next() (value.Value, bool) {
	if s.done {
		return value.Value{}, false
	}
	if s.interrupt.Triggered() {
		s.done = true
		return value.Value{}, false
	}
	v, ok := s.next()
	if !ok {
		s.done = true
	}
	return v, ok
}

// Collect drains the stream into a slice, honoring interruption between
// pulls. The stream is exhausted afterwards.
func (s *ValueStream) Collect() []value.Value {
	var out []value.Value
	for {
		v, ok := s.Next()
		if !ok {
			return out
		}
		out = append(out, v)
	}
}

// Map returns a new lazy stream applying f to each pulled item. The
// source stream must not be consumed elsewhere afterwards.
func (s *ValueStream) Map(f func(value.Value) value.Value) *ValueStream {
	return NewValueStream(func() (value.Value, bool) {
		v, ok := s.Next()
		if !ok {
			return value.Value{}, false
		}
		return f(v), true
	}, s.interrupt)
}
