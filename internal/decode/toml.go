// SPDX-License-Identifier: MPL-2.0

package decode

import (
	"fmt"
	"time"

	"shoal-cli/pkg/value"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// decodeTOML unmarshals into map[string]any and converts. The decoder does
// not expose document order, so record columns are sorted by name for a
// deterministic result.
func decodeTOML(data []byte, span value.Span) (value.Value, error) {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return value.Value{}, fmt.Errorf("invalid TOML: %w", err)
	}
	return anyValue(raw, span)
}

func anyValue(raw any, span value.Span) (value.Value, error) {
	switch v := raw.(type) {
	case nil:
		return value.Nothing(span), nil
	case bool:
		return value.NewBool(v, span), nil
	case int64:
		return value.NewInt(v, span), nil
	case float64:
		return value.NewFloat(v, span), nil
	case string:
		return value.NewString(v, span), nil
	case time.Time:
		return value.NewDate(v, span), nil
	case []any:
		items := make([]value.Value, 0, len(v))
		for _, item := range v {
			converted, err := anyValue(item, span)
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, converted)
		}
		return value.NewList(items, span), nil
	case map[string]any:
		cols := maps.Keys(v)
		slices.Sort(cols)
		vals := make([]value.Value, 0, len(cols))
		for _, col := range cols {
			converted, err := anyValue(v[col], span)
			if err != nil {
				return value.Value{}, err
			}
			vals = append(vals, converted)
		}
		return value.NewRecord(cols, vals, span), nil
	case []map[string]any:
		items := make([]value.Value, 0, len(v))
		for _, item := range v {
			converted, err := anyValue(item, span)
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, converted)
		}
		return value.NewList(items, span), nil
	default:
		return value.Value{}, fmt.Errorf("unsupported TOML value of type %T", raw)
	}
}
