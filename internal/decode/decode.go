// SPDX-License-Identifier: MPL-2.0

package decode

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"shoal-cli/pkg/value"
)

// Format identifies a supported input text format.
type Format string

const (
	// FormatJSON decodes JSON documents.
	FormatJSON Format = "json"
	// FormatYAML decodes YAML documents.
	FormatYAML Format = "yaml"
	// FormatTOML decodes TOML documents.
	FormatTOML Format = "toml"
)

// ParseFormat validates a user-supplied format name.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatJSON:
		return FormatJSON, nil
	case FormatYAML:
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("unknown input format %q (expected json, yaml, or toml)", s)
	}
}

// Decode parses data in the given format into a value tree. The span is
// attached to every produced value so downstream diagnostics can point at
// the input.
func Decode(data []byte, format Format, span value.Span) (value.Value, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data, span)
	case FormatYAML:
		return decodeYAML(data, span)
	case FormatTOML:
		return decodeTOML(data, span)
	default:
		return value.Value{}, fmt.Errorf("unknown input format %q", format)
	}
}

// decodeJSON walks the token stream directly instead of unmarshalling
// into map[string]any, so that object key order survives into the record.
func decodeJSON(data []byte, span value.Span) (value.Value, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return value.Nothing(span), nil
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()
	v, err := jsonValue(dec, span)
	if err != nil {
		return value.Value{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return value.Value{}, fmt.Errorf("invalid JSON: trailing data after document")
	}
	return v, nil
}

func jsonValue(dec *json.Decoder, span value.Span) (value.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return value.Value{}, err
	}
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			var cols []string
			var vals []value.Value
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return value.Value{}, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return value.Value{}, fmt.Errorf("object key is not a string")
				}
				v, err := jsonValue(dec, span)
				if err != nil {
					return value.Value{}, err
				}
				cols = append(cols, key)
				vals = append(vals, v)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return value.Value{}, err
			}
			return value.NewRecord(cols, vals, span), nil
		case '[':
			var items []value.Value
			for dec.More() {
				v, err := jsonValue(dec, span)
				if err != nil {
					return value.Value{}, err
				}
				items = append(items, v)
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return value.Value{}, err
			}
			return value.NewList(items, span), nil
		default:
			return value.Value{}, fmt.Errorf("unexpected delimiter %v", t)
		}
	case string:
		return value.NewString(t, span), nil
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return value.NewInt(n, span), nil
		}
		f, err := t.Float64()
		if err != nil {
			return value.Value{}, fmt.Errorf("invalid number %q", t.String())
		}
		return value.NewFloat(f, span), nil
	case bool:
		return value.NewBool(t, span), nil
	case nil:
		return value.Nothing(span), nil
	default:
		return value.Value{}, fmt.Errorf("unexpected token %v", tok)
	}
}
