// SPDX-License-Identifier: MPL-2.0

package render

import (
	"strings"
	"testing"

	"shoal-cli/pkg/value"
)

func TestTableColumns(t *testing.T) {
	t.Parallel()

	span := value.UnknownSpan()
	rec := func(cols ...string) value.Value {
		vals := make([]value.Value, len(cols))
		for i := range cols {
			vals[i] = value.NewInt(int64(i), span)
		}
		return value.NewRecord(cols, vals, span)
	}

	tests := []struct {
		name  string
		items []value.Value
		want  []string
	}{
		{
			name:  "union in first-seen order",
			items: []value.Value{rec("b", "a"), rec("a", "c")},
			want:  []string{"b", "a", "c"},
		},
		{
			name: "error rows tolerated",
			items: []value.Value{
				rec("x"),
				value.NewError(&value.Error{Message: "bad row", Span: span}),
			},
			want: []string{"x"},
		},
		{
			name:  "scalar element disqualifies the table",
			items: []value.Value{rec("x"), value.NewInt(1, span)},
			want:  nil,
		},
		{
			name:  "all-error list is not a table",
			items: []value.Value{value.NewError(&value.Error{Message: "e", Span: span})},
			want:  nil,
		},
		{
			name:  "empty list is not a table",
			items: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tableColumns(tt.items)
			if len(got) != len(tt.want) {
				t.Fatalf("tableColumns = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("column %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	span := value.UnknownSpan()
	opts := value.DefaultDisplayOptions()
	st := PlainStyles()

	t.Run("table of records", func(t *testing.T) {
		t.Parallel()

		rows := value.NewList([]value.Value{
			value.NewRecord([]string{"name", "size"},
				[]value.Value{value.NewString("a.txt", span), value.NewFilesize(2048, span)}, span),
			value.NewRecord([]string{"name", "size"},
				[]value.Value{value.NewString("b.txt", span), value.NewFilesize(100, span)}, span),
		}, span)

		got := Render(rows, opts, st)
		lines := strings.Split(got, "\n")
		if len(lines) != 3 {
			t.Fatalf("rendered %d lines, want 3:\n%s", len(lines), got)
		}
		if !strings.HasPrefix(lines[0], "name") {
			t.Errorf("header = %q, want it to start with %q", lines[0], "name")
		}
		if !strings.Contains(lines[1], "2.0 KiB") {
			t.Errorf("row 0 = %q, want filesize rendering", lines[1])
		}
	})

	t.Run("error row renders in the first column", func(t *testing.T) {
		t.Parallel()

		rows := value.NewList([]value.Value{
			value.NewRecord([]string{"n"}, []value.Value{value.NewInt(1, span)}, span),
			value.NewError(&value.Error{Message: "bad row", Span: span}),
		}, span)

		got := Render(rows, opts, st)
		if !strings.Contains(got, "error: bad row") {
			t.Errorf("output missing error row:\n%s", got)
		}
	})

	t.Run("scalar list renders with indexes", func(t *testing.T) {
		t.Parallel()

		items := value.NewList([]value.Value{
			value.NewInt(10, span),
			value.NewInt(20, span),
		}, span)

		got := Render(items, opts, st)
		lines := strings.Split(got, "\n")
		if len(lines) != 2 {
			t.Fatalf("rendered %d lines, want 2:\n%s", len(lines), got)
		}
		if !strings.HasPrefix(lines[0], "0") || !strings.Contains(lines[0], "10") {
			t.Errorf("line 0 = %q, want index and value", lines[0])
		}
	})

	t.Run("record renders one field per line", func(t *testing.T) {
		t.Parallel()

		rec := value.NewRecord(
			[]string{"name", "n"},
			[]value.Value{value.NewString("ada", span), value.NewInt(7, span)},
			span,
		)
		got := Render(rec, opts, st)
		lines := strings.Split(got, "\n")
		if len(lines) != 2 {
			t.Fatalf("rendered %d lines, want 2:\n%s", len(lines), got)
		}
		if !strings.Contains(lines[0], "ada") {
			t.Errorf("line 0 = %q, want the name field", lines[0])
		}
	})

	t.Run("top-level error value", func(t *testing.T) {
		t.Parallel()

		got := Render(value.NewError(&value.Error{Message: "boom", Span: span}), opts, st)
		if got != "error: boom" {
			t.Errorf("Render = %q, want %q", got, "error: boom")
		}
	})

	t.Run("scalar renders as display text", func(t *testing.T) {
		t.Parallel()

		if got := Render(value.NewInt(42, span), opts, st); got != "42" {
			t.Errorf("Render = %q, want %q", got, "42")
		}
	})
}
