// SPDX-License-Identifier: MPL-2.0

package cellpath

import (
	"fmt"

	"shoal-cli/pkg/value"
)

// Follow resolves the path against root and returns the addressed
// sub-value without modifying anything. The empty path returns root.
func Follow(root value.Value, path CellPath) (value.Value, error) {
	current := root
	for _, m := range path.Members {
		next, err := step(current, m, path)
		if err != nil {
			return value.Value{}, err
		}
		current = next
	}
	return current, nil
}

// Update locates the sub-value addressed by path, replaces it with
// f(located), and returns a new root with the replacement in place.
// Sibling values are carried over unchanged; the original root is never
// mutated. The empty path applies f to root itself. Any step that does
// not match the value's shape fails the whole operation with a PathError;
// Update never silently no-ops.
func Update(root value.Value, path CellPath, f func(value.Value) value.Value) (value.Value, error) {
	return updateAt(root, path, path.Members, f)
}

func updateAt(current value.Value, path CellPath, members []PathMember, f func(value.Value) value.Value) (value.Value, error) {
	if len(members) == 0 {
		return f(current), nil
	}

	m := members[0]
	if m.IsIndex {
		if current.Kind != value.KindList {
			return value.Value{}, &PathError{
				Path:   path,
				Reason: fmt.Sprintf("expected a list at index %d, found %s", m.Index, current.Kind),
				Span:   current.Span,
			}
		}
		if m.Index < 0 || m.Index >= len(current.List) {
			return value.Value{}, &PathError{
				Path:   path,
				Reason: fmt.Sprintf("index %d is out of range for a list of %d items", m.Index, len(current.List)),
				Span:   current.Span,
			}
		}
		replaced, err := updateAt(current.List[m.Index], path, members[1:], f)
		if err != nil {
			return value.Value{}, err
		}
		items := make([]value.Value, len(current.List))
		copy(items, current.List)
		items[m.Index] = replaced
		return value.NewList(items, current.Span), nil
	}

	if current.Kind != value.KindRecord {
		return value.Value{}, &PathError{
			Path:   path,
			Reason: fmt.Sprintf("expected a record with column %q, found %s", m.Field, current.Kind),
			Span:   current.Span,
		}
	}
	for i, col := range current.Cols {
		if col != m.Field {
			continue
		}
		replaced, err := updateAt(current.Vals[i], path, members[1:], f)
		if err != nil {
			return value.Value{}, err
		}
		vals := make([]value.Value, len(current.Vals))
		copy(vals, current.Vals)
		vals[i] = replaced
		return value.Value{
			Kind: value.KindRecord,
			Span: current.Span,
			Cols: current.Cols,
			Vals: vals,
		}, nil
	}
	return value.Value{}, &PathError{
		Path:   path,
		Reason: fmt.Sprintf("record has no column %q", m.Field),
		Span:   current.Span,
	}
}

func step(current value.Value, m PathMember, path CellPath) (value.Value, error) {
	if m.IsIndex {
		if current.Kind != value.KindList {
			return value.Value{}, &PathError{
				Path:   path,
				Reason: fmt.Sprintf("expected a list at index %d, found %s", m.Index, current.Kind),
				Span:   current.Span,
			}
		}
		if m.Index < 0 || m.Index >= len(current.List) {
			return value.Value{}, &PathError{
				Path:   path,
				Reason: fmt.Sprintf("index %d is out of range for a list of %d items", m.Index, len(current.List)),
				Span:   current.Span,
			}
		}
		return current.List[m.Index], nil
	}
	if current.Kind != value.KindRecord {
		return value.Value{}, &PathError{
			Path:   path,
			Reason: fmt.Sprintf("expected a record with column %q, found %s", m.Field, current.Kind),
			Span:   current.Span,
		}
	}
	if v, ok := current.RecordField(m.Field); ok {
		return v, nil
	}
	return value.Value{}, &PathError{
		Path:   path,
		Reason: fmt.Sprintf("record has no column %q", m.Field),
		Span:   current.Span,
	}
}
