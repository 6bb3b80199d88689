// SPDX-License-Identifier: MPL-2.0

package conv

import (
	"strconv"
	"strings"

	"shoal-cli/internal/issue"
	"shoal-cli/internal/pipeline"
	"shoal-cli/pkg/cellpath"
	"shoal-cli/pkg/value"
)

const (
	// MinRadix is the smallest accepted numeric base.
	MinRadix = 2
	// MaxRadix is the largest accepted numeric base.
	MaxRadix = 36
	// DefaultRadix is used when no radix is configured.
	DefaultRadix = 10
)

// IntoInt converts the input to integers, either whole items or the
// sub-values addressed by paths. A radix outside [MinRadix, MaxRadix] is a
// configuration error raised before any item is processed.
func IntoInt(input pipeline.PipelineData, radix int, paths []cellpath.CellPath, head value.Span, interrupt *pipeline.Interrupt) (pipeline.PipelineData, error) {
	if radix < MinRadix || radix > MaxRadix {
		return pipeline.PipelineData{}, issue.NewErrorContext().
			WithOperation("convert to int").
			WithSuggestion("Pass a radix between 2 and 36, e.g. --radix 16").
			Wrap(strconv.ErrRange).
			BuildError()
	}
	return input.Map(func(v value.Value) value.Value {
		return applyAtPaths(v, paths, func(old value.Value) value.Value {
			return ToInt(old, head, radix)
		})
	}, interrupt), nil
}

// applyAtPaths applies f to the whole item when no paths are given, or to
// each addressed sub-value in turn. Paths are applied sequentially to the
// evolving item; the first path failure replaces the item with an error
// value and skips its remaining paths, leaving other items unaffected.
func applyAtPaths(item value.Value, paths []cellpath.CellPath, f func(value.Value) value.Value) value.Value {
	if len(paths) == 0 {
		return f(item)
	}
	current := item
	for _, path := range paths {
		updated, err := cellpath.Update(current, path, f)
		if err != nil {
			return value.NewError(&value.Error{Message: err.Error(), Span: item.Span})
		}
		current = updated
	}
	return current
}

// ToInt coerces a single value to an integer in the given radix:
//
//	int       identity at radix 10, otherwise reformat and reparse
//	filesize  its magnitude in bytes, radix ignored
//	float     truncation toward zero
//	bool      false → 0, true → 1
//	string    parsed, see intFromString and reparseInt
//
// Any other kind, and any parse failure, yields an error value.
func ToInt(v value.Value, head value.Span, radix int) value.Value {
	switch v.Kind {
	case value.KindInt:
		if radix == DefaultRadix {
			return v
		}
		return reparseInt(strconv.FormatInt(v.Int, 10), head, radix)
	case value.KindFilesize:
		return value.NewInt(v.Int, head)
	case value.KindFloat:
		return value.NewInt(int64(v.Float), head)
	case value.KindBool:
		if v.Bool {
			return value.NewInt(1, head)
		}
		return value.NewInt(0, head)
	case value.KindString:
		if radix == DefaultRadix {
			n, err := intFromString(v.Str)
			if err != nil {
				return value.CantConvert("int", err.Error(), head)
			}
			return value.NewInt(n, head)
		}
		return reparseInt(v.Str, head, radix)
	default:
		return value.Unsupported("into int", v.Kind, v.Span)
	}
}

// intFromString parses a base-10 integer-like string: 0b and 0x literal
// prefixes are recognized regardless of the configured radix, and a plain
// string falls back from integer to float parsing with truncation, so
// "5.9" converts to 5 rather than erroring.
func intFromString(s string) (int64, error) {
	trimmed := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(trimmed, "0b"):
		return strconv.ParseInt(strings.TrimPrefix(trimmed, "0b"), 2, 64)
	case strings.HasPrefix(trimmed, "0x"):
		return strconv.ParseInt(strings.TrimPrefix(trimmed, "0x"), 16, 64)
	default:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err == nil {
			return n, nil
		}
		f, ferr := strconv.ParseFloat(trimmed, 64)
		if ferr == nil {
			return int64(f), nil
		}
		return 0, err
	}
}

// reparseInt parses a digit string in a non-default radix. A 0b or 0x
// literal prefix is stripped and the remainder parsed in the requested
// radix.
func reparseInt(s string, head value.Span, radix int) value.Value {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimPrefix(trimmed, "0b")
	trimmed = strings.TrimPrefix(trimmed, "0x")
	n, err := strconv.ParseInt(trimmed, radix, 64)
	if err != nil {
		return value.CantConvert("int", err.Error(), head)
	}
	return value.NewInt(n, head)
}
