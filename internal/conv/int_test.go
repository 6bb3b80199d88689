// SPDX-License-Identifier: MPL-2.0

package conv

import (
	"testing"
	"time"

	"shoal-cli/internal/pipeline"
	"shoal-cli/pkg/cellpath"
	"shoal-cli/pkg/value"
)

func TestToInt(t *testing.T) {
	t.Parallel()

	span := value.UnknownSpan()

	tests := []struct {
		name    string
		in      value.Value
		radix   int
		want    int64
		wantErr bool
	}{
		{name: "int identity at radix 10", in: value.NewInt(42, span), radix: 10, want: 42},
		{name: "int digits reparsed at radix 2", in: value.NewInt(1101, span), radix: 2, want: 13},
		{name: "filesize magnitude", in: value.NewFilesize(4000, span), radix: 10, want: 4000},
		{name: "filesize ignores radix", in: value.NewFilesize(4000, span), radix: 16, want: 4000},
		{name: "float truncates toward zero", in: value.NewFloat(5.9, span), radix: 10, want: 5},
		{name: "negative float truncates toward zero", in: value.NewFloat(-5.9, span), radix: 10, want: -5},
		{name: "bool false", in: value.NewBool(false, span), radix: 10, want: 0},
		{name: "bool true", in: value.NewBool(true, span), radix: 10, want: 1},
		{name: "decimal string", in: value.NewString("123", span), radix: 10, want: 123},
		{name: "string with spaces", in: value.NewString("  123  ", span), radix: 10, want: 123},
		{name: "negative decimal string", in: value.NewString("-17", span), radix: 10, want: -17},
		{name: "binary literal prefix", in: value.NewString("0b101", span), radix: 10, want: 5},
		{name: "hex literal prefix", in: value.NewString("0xFF", span), radix: 10, want: 255},
		{name: "float-looking string truncates", in: value.NewString("5.9", span), radix: 10, want: 5},
		{name: "binary digits at radix 2", in: value.NewString("1101", span), radix: 2, want: 13},
		{name: "hex digits at radix 16", in: value.NewString("FF", span), radix: 16, want: 255},
		{name: "prefixed hex at radix 16", in: value.NewString("0xFF", span), radix: 16, want: 255},
		{name: "prefixed binary at radix 2", in: value.NewString("0b101", span), radix: 2, want: 5},
		{name: "garbage string", in: value.NewString("36anra", span), radix: 10, wantErr: true},
		{name: "digits out of radix range", in: value.NewString("9", span), radix: 8, wantErr: true},
		{name: "date unsupported", in: value.NewDate(time.Now(), span), radix: 10, wantErr: true},
		{name: "list unsupported", in: value.NewList(nil, span), radix: 10, wantErr: true},
		{name: "nothing unsupported", in: value.Nothing(span), radix: 10, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ToInt(tt.in, span, tt.radix)
			if tt.wantErr {
				if !got.IsError() {
					t.Fatalf("ToInt = %+v, want error value", got)
				}
				return
			}
			if got.IsError() {
				t.Fatalf("ToInt returned error value: %s", got.Err.Message)
			}
			if got.Kind != value.KindInt || got.Int != tt.want {
				t.Errorf("ToInt = (%v, %d), want (int, %d)", got.Kind, got.Int, tt.want)
			}
		})
	}
}

func TestIntoIntRadixValidation(t *testing.T) {
	t.Parallel()

	span := value.UnknownSpan()
	for _, radix := range []int{0, 1, 37, -5} {
		input := pipeline.FromValue(value.NewList([]value.Value{
			value.NewString("10", span),
		}, span))
		if _, err := IntoInt(input, radix, nil, span, pipeline.NewInterrupt()); err == nil {
			t.Errorf("IntoInt(radix=%d) succeeded, want configuration error", radix)
		}
	}
}

func TestIntoIntList(t *testing.T) {
	t.Parallel()

	span := value.UnknownSpan()

	t.Run("mixed scalars convert per item", func(t *testing.T) {
		t.Parallel()

		input := pipeline.FromValue(value.NewList([]value.Value{
			value.NewBool(false, span),
			value.NewBool(true, span),
			value.NewString("7", span),
		}, span))
		out, err := IntoInt(input, DefaultRadix, nil, span, pipeline.NewInterrupt())
		if err != nil {
			t.Fatalf("IntoInt error: %v", err)
		}
		got := out.IntoValue(span)
		if len(got.List) != 3 {
			t.Fatalf("got %d items, want 3", len(got.List))
		}
		for i, want := range []int64{0, 1, 7} {
			if got.List[i].Int != want {
				t.Errorf("item %d = %d, want %d", i, got.List[i].Int, want)
			}
		}
	})

	t.Run("a failing item becomes an error value in place", func(t *testing.T) {
		t.Parallel()

		input := pipeline.FromValue(value.NewList([]value.Value{
			value.NewString("1", span),
			value.NewString("36anra", span),
			value.NewString("3", span),
		}, span))
		out, err := IntoInt(input, DefaultRadix, nil, span, pipeline.NewInterrupt())
		if err != nil {
			t.Fatalf("IntoInt error: %v", err)
		}
		got := out.IntoValue(span)
		if len(got.List) != 3 {
			t.Fatalf("got %d items, want 3", len(got.List))
		}
		if got.List[0].Int != 1 || got.List[2].Int != 3 {
			t.Errorf("neighbors of the failing item changed: %+v", got.List)
		}
		if !got.List[1].IsError() {
			t.Errorf("item 1 = %+v, want error value", got.List[1])
		}
	})
}

func TestIntoIntPaths(t *testing.T) {
	t.Parallel()

	span := value.UnknownSpan()
	path := func(t *testing.T, raw string) cellpath.CellPath {
		t.Helper()
		p, err := cellpath.Parse(raw)
		if err != nil {
			t.Fatalf("Parse(%q) error: %v", raw, err)
		}
		return p
	}

	t.Run("converts only the addressed cells", func(t *testing.T) {
		t.Parallel()

		row := func(n, label string) value.Value {
			return value.NewRecord(
				[]string{"n", "label"},
				[]value.Value{value.NewString(n, span), value.NewString(label, span)},
				span,
			)
		}
		input := pipeline.FromValue(value.NewList([]value.Value{
			row("4", "four"),
			row("7", "seven"),
		}, span))

		out, err := IntoInt(input, DefaultRadix, []cellpath.CellPath{path(t, "n")}, span, pipeline.NewInterrupt())
		if err != nil {
			t.Fatalf("IntoInt error: %v", err)
		}
		got := out.IntoValue(span)
		for i, want := range []int64{4, 7} {
			n, _ := got.List[i].RecordField("n")
			if n.Kind != value.KindInt || n.Int != want {
				t.Errorf("row %d n = %+v, want int %d", i, n, want)
			}
			label, _ := got.List[i].RecordField("label")
			if label.Kind != value.KindString {
				t.Errorf("row %d label changed kind: %v", i, label.Kind)
			}
		}
	})

	t.Run("a path miss fails only that row", func(t *testing.T) {
		t.Parallel()

		input := pipeline.FromValue(value.NewList([]value.Value{
			value.NewRecord([]string{"n"}, []value.Value{value.NewString("4", span)}, span),
			value.NewRecord([]string{"m"}, []value.Value{value.NewString("7", span)}, span),
		}, span))

		out, err := IntoInt(input, DefaultRadix, []cellpath.CellPath{path(t, "n")}, span, pipeline.NewInterrupt())
		if err != nil {
			t.Fatalf("IntoInt error: %v", err)
		}
		got := out.IntoValue(span)
		n, _ := got.List[0].RecordField("n")
		if n.Int != 4 {
			t.Errorf("row 0 n = %+v, want 4", n)
		}
		if !got.List[1].IsError() {
			t.Errorf("row 1 = %+v, want error value", got.List[1])
		}
	})

	t.Run("multiple paths apply to the same row", func(t *testing.T) {
		t.Parallel()

		input := pipeline.FromValue(value.NewRecord(
			[]string{"a", "b"},
			[]value.Value{value.NewString("1", span), value.NewString("2", span)},
			span,
		))
		out, err := IntoInt(input, DefaultRadix,
			[]cellpath.CellPath{path(t, "a"), path(t, "b")}, span, pipeline.NewInterrupt())
		if err != nil {
			t.Fatalf("IntoInt error: %v", err)
		}
		got := out.IntoValue(span)
		a, _ := got.RecordField("a")
		b, _ := got.RecordField("b")
		if a.Int != 1 || b.Int != 2 {
			t.Errorf("record = %+v, want a=1 b=2", got)
		}
	})
}
