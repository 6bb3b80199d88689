// SPDX-License-Identifier: MPL-2.0

package cellpath

import (
	"fmt"
	"strconv"
	"strings"

	"shoal-cli/pkg/value"
)

type (
	// PathMember is a single addressing step: a record column name or a
	// list index. IsIndex selects which field is meaningful.
	PathMember struct {
		Field   string
		Index   int
		IsIndex bool
	}

	// CellPath is an ordered sequence of addressing steps from the root of
	// a value tree. It is immutable once constructed; commands build one
	// from their trailing arguments and hand it to Follow or Update.
	CellPath struct {
		Members []PathMember
	}
)

// FieldMember returns a member addressing a record column.
func FieldMember(name string) PathMember {
	return PathMember{Field: name}
}

// IndexMember returns a member addressing a list position.
func IndexMember(i int) PathMember {
	return PathMember{Index: i, IsIndex: true}
}

// Parse builds a CellPath from a dotted argument string such as
// "user.addrs.0.city". Segments that are non-negative integers address
// list positions; everything else addresses record columns. An empty
// string yields the empty path, which addresses the root itself.
func Parse(raw string) (CellPath, error) {
	if raw == "" {
		return CellPath{}, nil
	}
	segments := strings.Split(raw, ".")
	members := make([]PathMember, 0, len(segments))
	for _, seg := range segments {
		if seg == "" {
			return CellPath{}, fmt.Errorf("cell path %q has an empty segment", raw)
		}
		if idx, err := strconv.Atoi(seg); err == nil && idx >= 0 {
			members = append(members, IndexMember(idx))
			continue
		}
		members = append(members, FieldMember(seg))
	}
	return CellPath{Members: members}, nil
}

// String renders the path back in dotted form.
func (p CellPath) String() string {
	var b strings.Builder
	for i, m := range p.Members {
		if i > 0 {
			b.WriteByte('.')
		}
		if m.IsIndex {
			b.WriteString(strconv.Itoa(m.Index))
		} else {
			b.WriteString(m.Field)
		}
	}
	return b.String()
}

// IsEmpty reports whether the path addresses the root itself.
func (p CellPath) IsEmpty() bool {
	return len(p.Members) == 0
}

// PathError reports a path that does not resolve against the shape of a
// value: a missing column, an out-of-range index, or a step applied to a
// kind that is not the expected container.
type PathError struct {
	// Path is the full path being resolved.
	Path CellPath
	// Reason describes the step that failed.
	Reason string
	// Span is the location of the value that did not match.
	Span value.Span
}

// Error implements the error interface.
func (e *PathError) Error() string {
	return fmt.Sprintf("cell path %q does not match: %s", e.Path.String(), e.Reason)
}
