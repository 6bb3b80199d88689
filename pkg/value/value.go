// SPDX-License-Identifier: MPL-2.0

package value

import (
	"time"
)

// Kind identifies which variant of the Value union is populated.
type Kind int

const (
	// KindNothing is the absence of a value (an empty pipeline).
	KindNothing Kind = iota
	// KindBool holds a boolean.
	KindBool
	// KindInt holds a 64-bit signed integer.
	KindInt
	// KindFloat holds a 64-bit float.
	KindFloat
	// KindFilesize holds a size in bytes.
	KindFilesize
	// KindDuration holds an elapsed time.
	KindDuration
	// KindDate holds a point in time.
	KindDate
	// KindString holds UTF-8 text.
	KindString
	// KindList holds an ordered, possibly heterogeneous sequence of values.
	KindList
	// KindRecord holds an ordered set of named columns.
	KindRecord
	// KindError holds an error as inert data.
	KindError
)

// String returns the user-facing name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNothing:
		return "nothing"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindFilesize:
		return "filesize"
	case KindDuration:
		return "duration"
	case KindDate:
		return "date"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindRecord:
		return "record"
	case KindError:
		return "error"
	default:
		return "unknown"
	}
}

// Value is the runtime datum. Exactly one payload field is meaningful,
// selected by Kind:
//
//	KindBool      → Bool
//	KindInt       → Int
//	KindFilesize  → Int (magnitude in bytes)
//	KindFloat     → Float
//	KindDuration  → Duration
//	KindDate      → Date
//	KindString    → Str
//	KindList      → List
//	KindRecord    → Cols + Vals (parallel slices, equal length, unique names)
//	KindError     → Err
//
// Values are treated as immutable: operations that "modify" a value build
// and return a new one (see pkg/cellpath). The zero Value is Nothing with
// an unknown span.
type Value struct {
	Kind Kind
	Span Span

	Bool     bool
	Int      int64
	Float    float64
	Duration time.Duration
	Date     time.Time
	Str      string
	List     []Value
	Cols     []string
	Vals     []Value
	Err      *Error
}

// Nothing returns the empty value.
func Nothing(span Span) Value {
	return Value{Kind: KindNothing, Span: span}
}

// NewBool returns a boolean value.
func NewBool(b bool, span Span) Value {
	return Value{Kind: KindBool, Span: span, Bool: b}
}

// NewInt returns an integer value.
func NewInt(i int64, span Span) Value {
	return Value{Kind: KindInt, Span: span, Int: i}
}

// NewFloat returns a float value.
func NewFloat(f float64, span Span) Value {
	return Value{Kind: KindFloat, Span: span, Float: f}
}

// NewFilesize returns a filesize value of the given magnitude in bytes.
func NewFilesize(bytes int64, span Span) Value {
	return Value{Kind: KindFilesize, Span: span, Int: bytes}
}

// NewDuration returns a duration value.
func NewDuration(d time.Duration, span Span) Value {
	return Value{Kind: KindDuration, Span: span, Duration: d}
}

// NewDate returns a date value.
func NewDate(t time.Time, span Span) Value {
	return Value{Kind: KindDate, Span: span, Date: t}
}

// NewString returns a string value.
func NewString(s string, span Span) Value {
	return Value{Kind: KindString, Span: span, Str: s}
}

// NewList returns a list value. Elements may be of heterogeneous kinds.
func NewList(vals []Value, span Span) Value {
	return Value{Kind: KindList, Span: span, List: vals}
}

// NewRecord returns a record value from parallel column-name and value
// slices. If the slices differ in length or a column name repeats, the
// record invariant cannot hold and an Error value is returned instead.
func NewRecord(cols []string, vals []Value, span Span) Value {
	if len(cols) != len(vals) {
		return NewError(&Error{
			Message: "record has mismatched column and value counts",
			Span:    span,
		})
	}
	seen := make(map[string]struct{}, len(cols))
	for _, c := range cols {
		if _, dup := seen[c]; dup {
			return NewError(&Error{
				Message: "record has duplicate column name " + c,
				Span:    span,
			})
		}
		seen[c] = struct{}{}
	}
	return Value{Kind: KindRecord, Span: span, Cols: cols, Vals: vals}
}

// NewError returns an error value. The error travels through the pipeline
// as ordinary data until a consumer inspects or renders it.
func NewError(err *Error) Value {
	return Value{Kind: KindError, Span: err.Span, Err: err}
}

// IsError reports whether the value is an error value.
func (v Value) IsError() bool {
	return v.Kind == KindError
}

// IsNothing reports whether the value is the empty value.
func (v Value) IsNothing() bool {
	return v.Kind == KindNothing
}

// RecordField returns the value of the named column and whether it exists.
// Calling it on a non-record value reports false.
func (v Value) RecordField(name string) (Value, bool) {
	if v.Kind != KindRecord {
		return Value{}, false
	}
	for i, c := range v.Cols {
		if c == name {
			return v.Vals[i], true
		}
	}
	return Value{}, false
}

// Equal reports deep structural equality between two values, ignoring
// spans. Error values compare by message. Used by tests and by consumers
// that need value identity rather than source identity.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch v.Kind {
	case KindNothing:
		return true
	case KindBool:
		return v.Bool == other.Bool
	case KindInt, KindFilesize:
		return v.Int == other.Int
	case KindFloat:
		return v.Float == other.Float
	case KindDuration:
		return v.Duration == other.Duration
	case KindDate:
		return v.Date.Equal(other.Date)
	case KindString:
		return v.Str == other.Str
	case KindList:
		if len(v.List) != len(other.List) {
			return false
		}
		for i := range v.List {
			if !v.List[i].Equal(other.List[i]) {
				return false
			}
		}
		return true
	case KindRecord:
		if len(v.Cols) != len(other.Cols) {
			return false
		}
		for i := range v.Cols {
			if v.Cols[i] != other.Cols[i] || !v.Vals[i].Equal(other.Vals[i]) {
				return false
			}
		}
		return true
	case KindError:
		return v.Err.Message == other.Err.Message
	default:
		return false
	}
}
