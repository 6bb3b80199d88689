// SPDX-License-Identifier: MPL-2.0

package decode

import (
	"fmt"
	"time"

	"shoal-cli/pkg/value"

	"gopkg.in/yaml.v3"
)

// decodeYAML parses via the yaml.Node API rather than map[string]any so
// that mapping key order survives into the record.
func decodeYAML(data []byte, span value.Span) (value.Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return value.Value{}, fmt.Errorf("invalid YAML: %w", err)
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return value.Nothing(span), nil
	}
	v, err := yamlValue(root.Content[0], span)
	if err != nil {
		return value.Value{}, fmt.Errorf("invalid YAML: %w", err)
	}
	return v, nil
}

func yamlValue(n *yaml.Node, span value.Span) (value.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return value.Nothing(span), nil
		}
		return yamlValue(n.Content[0], span)
	case yaml.AliasNode:
		return yamlValue(n.Alias, span)
	case yaml.MappingNode:
		var cols []string
		var vals []value.Value
		for i := 0; i+1 < len(n.Content); i += 2 {
			var key string
			if err := n.Content[i].Decode(&key); err != nil {
				return value.Value{}, fmt.Errorf("line %d: mapping key is not a string", n.Content[i].Line)
			}
			v, err := yamlValue(n.Content[i+1], span)
			if err != nil {
				return value.Value{}, err
			}
			cols = append(cols, key)
			vals = append(vals, v)
		}
		return value.NewRecord(cols, vals, span), nil
	case yaml.SequenceNode:
		items := make([]value.Value, 0, len(n.Content))
		for _, c := range n.Content {
			v, err := yamlValue(c, span)
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, v)
		}
		return value.NewList(items, span), nil
	case yaml.ScalarNode:
		return yamlScalar(n, span)
	default:
		return value.Value{}, fmt.Errorf("line %d: unsupported YAML node", n.Line)
	}
}

func yamlScalar(n *yaml.Node, span value.Span) (value.Value, error) {
	var raw any
	if err := n.Decode(&raw); err != nil {
		return value.Value{}, fmt.Errorf("line %d: %w", n.Line, err)
	}
	switch v := raw.(type) {
	case nil:
		return value.Nothing(span), nil
	case bool:
		return value.NewBool(v, span), nil
	case int:
		return value.NewInt(int64(v), span), nil
	case int64:
		return value.NewInt(v, span), nil
	case uint64:
		return value.NewInt(int64(v), span), nil
	case float64:
		return value.NewFloat(v, span), nil
	case string:
		return value.NewString(v, span), nil
	case time.Time:
		return value.NewDate(v, span), nil
	default:
		return value.Value{}, fmt.Errorf("line %d: unsupported YAML scalar %T", n.Line, raw)
	}
}
