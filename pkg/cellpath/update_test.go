// SPDX-License-Identifier: MPL-2.0

package cellpath

import (
	"errors"
	"strings"
	"testing"

	"shoal-cli/pkg/value"
)

func mustParse(t *testing.T, raw string) CellPath {
	t.Helper()
	p, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse(%q) error: %v", raw, err)
	}
	return p
}

// sample builds {user: {name: "ada", addrs: [{city: "Oslo"}, {city: "Bergen"}]}, n: 7}.
func sample() value.Value {
	span := value.UnknownSpan()
	addr := func(city string) value.Value {
		return value.NewRecord([]string{"city"}, []value.Value{value.NewString(city, span)}, span)
	}
	user := value.NewRecord(
		[]string{"name", "addrs"},
		[]value.Value{
			value.NewString("ada", span),
			value.NewList([]value.Value{addr("Oslo"), addr("Bergen")}, span),
		},
		span,
	)
	return value.NewRecord(
		[]string{"user", "n"},
		[]value.Value{user, value.NewInt(7, span)},
		span,
	)
}

func TestFollow(t *testing.T) {
	t.Parallel()

	root := sample()

	t.Run("nested path", func(t *testing.T) {
		t.Parallel()

		got, err := Follow(root, mustParse(t, "user.addrs.1.city"))
		if err != nil {
			t.Fatalf("Follow error: %v", err)
		}
		if got.Str != "Bergen" {
			t.Errorf("Follow = %q, want %q", got.Str, "Bergen")
		}
	})

	t.Run("empty path returns root", func(t *testing.T) {
		t.Parallel()

		got, err := Follow(root, CellPath{})
		if err != nil {
			t.Fatalf("Follow error: %v", err)
		}
		if !got.Equal(root) {
			t.Error("Follow with empty path did not return the root")
		}
	})

	t.Run("missing column", func(t *testing.T) {
		t.Parallel()

		_, err := Follow(root, mustParse(t, "user.age"))
		var pe *PathError
		if !errors.As(err, &pe) {
			t.Fatalf("error = %v, want *PathError", err)
		}
		if !strings.Contains(pe.Error(), "does not match") {
			t.Errorf("message %q lacks %q", pe.Error(), "does not match")
		}
	})
}

func TestUpdate(t *testing.T) {
	t.Parallel()

	span := value.UnknownSpan()
	upper := func(v value.Value) value.Value {
		return value.NewString(strings.ToUpper(v.Str), v.Span)
	}

	t.Run("replaces the addressed cell only", func(t *testing.T) {
		t.Parallel()

		root := sample()
		got, err := Update(root, mustParse(t, "user.addrs.0.city"), upper)
		if err != nil {
			t.Fatalf("Update error: %v", err)
		}

		changed, err := Follow(got, mustParse(t, "user.addrs.0.city"))
		if err != nil {
			t.Fatalf("Follow error: %v", err)
		}
		if changed.Str != "OSLO" {
			t.Errorf("updated cell = %q, want %q", changed.Str, "OSLO")
		}

		// Siblings at every level survive untouched.
		for _, path := range []string{"user.name", "user.addrs.1.city", "n"} {
			before, _ := Follow(root, mustParse(t, path))
			after, err := Follow(got, mustParse(t, path))
			if err != nil {
				t.Fatalf("Follow(%s) error: %v", path, err)
			}
			if !after.Equal(before) {
				t.Errorf("sibling %s changed: %+v", path, after)
			}
		}
	})

	t.Run("original root is not mutated", func(t *testing.T) {
		t.Parallel()

		root := sample()
		if _, err := Update(root, mustParse(t, "user.name"), upper); err != nil {
			t.Fatalf("Update error: %v", err)
		}
		orig, _ := Follow(root, mustParse(t, "user.name"))
		if orig.Str != "ada" {
			t.Errorf("original mutated: user.name = %q", orig.Str)
		}
	})

	t.Run("empty path applies to the root", func(t *testing.T) {
		t.Parallel()

		got, err := Update(value.NewString("x", span), CellPath{}, upper)
		if err != nil {
			t.Fatalf("Update error: %v", err)
		}
		if got.Str != "X" {
			t.Errorf("Update = %q, want %q", got.Str, "X")
		}
	})

	t.Run("shape mismatches fail the whole operation", func(t *testing.T) {
		t.Parallel()

		tests := []struct {
			name string
			path string
		}{
			{name: "missing column", path: "user.age"},
			{name: "index out of range", path: "user.addrs.5.city"},
			{name: "index into a record", path: "user.0"},
			{name: "field into a scalar", path: "n.x"},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				t.Parallel()

				_, err := Update(sample(), mustParse(t, tt.path), upper)
				var pe *PathError
				if !errors.As(err, &pe) {
					t.Fatalf("error = %v, want *PathError", err)
				}
			})
		}
	})
}
