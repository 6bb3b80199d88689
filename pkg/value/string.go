// SPDX-License-Identifier: MPL-2.0

package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DisplayOptions controls how scalar values are rendered as text.
// The filesize fields mirror the shoal configuration keys
// filesize_metric and filesize_format.
type DisplayOptions struct {
	// FilesizeMetric selects 1000-based units (KB, MB) instead of
	// 1024-based units (KiB, MiB) when the format is "auto".
	FilesizeMetric bool
	// FilesizeFormat forces a specific unit ("b", "kb", "kib", "mb",
	// "mib", "gb", "gib", "tb", "tib") or "auto" to pick one by magnitude.
	FilesizeFormat string
}

// DefaultDisplayOptions returns the rendering defaults used when no
// configuration is loaded.
func DefaultDisplayOptions() DisplayOptions {
	return DisplayOptions{FilesizeMetric: false, FilesizeFormat: "auto"}
}

type filesizeUnit struct {
	label   string
	divisor float64
}

var filesizeUnits = map[string]filesizeUnit{
	"b":   {label: "B", divisor: 1},
	"kb":  {label: "KB", divisor: 1e3},
	"mb":  {label: "MB", divisor: 1e6},
	"gb":  {label: "GB", divisor: 1e9},
	"tb":  {label: "TB", divisor: 1e12},
	"kib": {label: "KiB", divisor: 1 << 10},
	"mib": {label: "MiB", divisor: 1 << 20},
	"gib": {label: "GiB", divisor: 1 << 30},
	"tib": {label: "TiB", divisor: 1 << 40},
}

var (
	metricAutoUnits = []string{"tb", "gb", "mb", "kb"}
	binaryAutoUnits = []string{"tib", "gib", "mib", "kib"}
)

// FormatFilesize renders a byte count using the configured unit. An
// explicit unit in FilesizeFormat wins over FilesizeMetric; "auto" picks
// the largest unit whose value is at least one.
func FormatFilesize(bytes int64, opts DisplayOptions) string {
	format := strings.ToLower(strings.TrimSpace(opts.FilesizeFormat))
	if unit, ok := filesizeUnits[format]; ok {
		if unit.divisor == 1 {
			return fmt.Sprintf("%d B", bytes)
		}
		return fmt.Sprintf("%.1f %s", float64(bytes)/unit.divisor, unit.label)
	}

	candidates := binaryAutoUnits
	if opts.FilesizeMetric {
		candidates = metricAutoUnits
	}
	abs := bytes
	if abs < 0 {
		abs = -abs
	}
	for _, name := range candidates {
		unit := filesizeUnits[name]
		if float64(abs) >= unit.divisor {
			return fmt.Sprintf("%.1f %s", float64(bytes)/unit.divisor, unit.label)
		}
	}
	return fmt.Sprintf("%d B", bytes)
}

// IntoString renders the value as display text. Container kinds get a
// short summary; per-cell rendering of tables is the concern of
// internal/render, and converting containers with `into string` is
// rejected there, not here.
func (v Value) IntoString(opts DisplayOptions) string {
	switch v.Kind {
	case KindNothing:
		return ""
	case KindBool:
		return strconv.FormatBool(v.Bool)
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'f', -1, 64)
	case KindFilesize:
		return FormatFilesize(v.Int, opts)
	case KindDuration:
		return v.Duration.String()
	case KindDate:
		return v.Date.Format(time.RFC3339)
	case KindString:
		return v.Str
	case KindList:
		return fmt.Sprintf("[list %d items]", len(v.List))
	case KindRecord:
		return fmt.Sprintf("[record %d fields]", len(v.Cols))
	case KindError:
		return "error: " + v.Err.Message
	default:
		return ""
	}
}
