// SPDX-License-Identifier: MPL-2.0

package value

// Span is a half-open byte interval [Start, End) into the original user
// input. It identifies where a value came from for diagnostics; it carries
// no semantic meaning beyond that.
type Span struct {
	Start int
	End   int
}

// UnknownSpan returns the span used for values with no source location,
// such as values synthesized by a command rather than parsed from input.
func UnknownSpan() Span {
	return Span{}
}

// IsUnknown reports whether the span carries no source location.
func (s Span) IsUnknown() bool {
	return s.Start == 0 && s.End == 0
}
