// SPDX-License-Identifier: MPL-2.0

package conv

import (
	"testing"
	"time"

	"shoal-cli/internal/pipeline"
	"shoal-cli/pkg/value"
)

func TestToString(t *testing.T) {
	t.Parallel()

	span := value.UnknownSpan()
	opts := value.DefaultDisplayOptions()

	tests := []struct {
		name    string
		in      value.Value
		opts    value.DisplayOptions
		want    string
		wantErr bool
	}{
		{name: "int", in: value.NewInt(42, span), opts: opts, want: "42"},
		{name: "bool", in: value.NewBool(true, span), opts: opts, want: "true"},
		{name: "string identity", in: value.NewString("hi", span), opts: opts, want: "hi"},
		{name: "duration", in: value.NewDuration(time.Minute, span), opts: opts, want: "1m0s"},
		{
			name: "filesize follows configured unit",
			in:   value.NewFilesize(40000, span),
			opts: value.DisplayOptions{FilesizeFormat: "kb"},
			want: "40.0 KB",
		},
		{
			name: "filesize binary unit",
			in:   value.NewFilesize(40000, span),
			opts: value.DisplayOptions{FilesizeFormat: "kib"},
			want: "39.1 KiB",
		},
		{name: "list rejected", in: value.NewList(nil, span), opts: opts, wantErr: true},
		{
			name:    "record rejected",
			in:      value.NewRecord([]string{"a"}, []value.Value{value.NewInt(1, span)}, span),
			opts:    opts,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ToString(tt.in, span, tt.opts)
			if tt.wantErr {
				if !got.IsError() {
					t.Fatalf("ToString = %+v, want error value", got)
				}
				return
			}
			if got.Kind != value.KindString || got.Str != tt.want {
				t.Errorf("ToString = (%v, %q), want (string, %q)", got.Kind, got.Str, tt.want)
			}
		})
	}
}

func TestToStringErrorPassthrough(t *testing.T) {
	t.Parallel()

	span := value.UnknownSpan()
	errVal := value.NewError(&value.Error{Message: "upstream failure", Span: span})

	got := ToString(errVal, span, value.DefaultDisplayOptions())
	if !got.IsError() {
		t.Fatalf("ToString = %+v, want the error value unchanged", got)
	}
	if got.Err.Message != "upstream failure" {
		t.Errorf("message = %q, want %q", got.Err.Message, "upstream failure")
	}
}

func TestIntoStringList(t *testing.T) {
	t.Parallel()

	span := value.UnknownSpan()
	input := pipeline.FromValue(value.NewList([]value.Value{
		value.NewInt(1, span),
		value.NewFilesize(2048, span),
	}, span))

	out := IntoString(input, nil, value.DefaultDisplayOptions(), span, pipeline.NewInterrupt())
	got := out.IntoValue(span)
	if len(got.List) != 2 {
		t.Fatalf("got %d items, want 2", len(got.List))
	}
	if got.List[0].Str != "1" {
		t.Errorf("item 0 = %q, want %q", got.List[0].Str, "1")
	}
	if got.List[1].Str != "2.0 KiB" {
		t.Errorf("item 1 = %q, want %q", got.List[1].Str, "2.0 KiB")
	}
}
