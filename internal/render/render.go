// SPDX-License-Identifier: MPL-2.0

package render

import (
	"strconv"
	"strings"

	"shoal-cli/pkg/value"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles applied to rendered output.
type Styles struct {
	Header    lipgloss.Style
	Cell      lipgloss.Style
	ErrorCell lipgloss.Style
}

// DefaultStyles returns the standard color palette.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")),
		Cell:      lipgloss.NewStyle(),
		ErrorCell: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444")),
	}
}

// PlainStyles returns styles with no decoration, for non-TTY output and
// tests.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{Header: plain, Cell: plain, ErrorCell: plain}
}

// Render produces the terminal representation of a materialized value.
func Render(v value.Value, opts value.DisplayOptions, st Styles) string {
	switch v.Kind {
	case value.KindList:
		if cols := tableColumns(v.List); cols != nil {
			return renderTable(cols, v.List, opts, st)
		}
		return renderPlainList(v.List, opts, st)
	case value.KindRecord:
		return renderRecord(v, opts, st)
	case value.KindError:
		return st.ErrorCell.Render("error: " + v.Err.Message)
	default:
		return st.Cell.Render(v.IntoString(opts))
	}
}

// tableColumns returns the union of record columns in first-seen order,
// or nil when the list is not a table (empty, or any element is neither a
// record nor an error value). Error rows are allowed so a failed row can
// sit inside an otherwise healthy table.
func tableColumns(items []value.Value) []string {
	if len(items) == 0 {
		return nil
	}
	var cols []string
	seen := make(map[string]struct{})
	records := 0
	for _, item := range items {
		switch item.Kind {
		case value.KindRecord:
			records++
			for _, c := range item.Cols {
				if _, ok := seen[c]; !ok {
					seen[c] = struct{}{}
					cols = append(cols, c)
				}
			}
		case value.KindError:
			// tolerated as a failed row
		default:
			return nil
		}
	}
	if records == 0 {
		return nil
	}
	return cols
}

func renderTable(cols []string, rows []value.Value, opts value.DisplayOptions, st Styles) string {
	cells := make([][]string, len(rows))
	errorCell := make([][]bool, len(rows))
	for i, row := range rows {
		cells[i] = make([]string, len(cols))
		errorCell[i] = make([]bool, len(cols))
		for j, col := range cols {
			switch row.Kind {
			case value.KindError:
				if j == 0 {
					cells[i][j] = "error: " + row.Err.Message
					errorCell[i][j] = true
				}
			default:
				cell, ok := row.RecordField(col)
				if !ok {
					continue
				}
				cells[i][j] = cellText(cell, opts)
				errorCell[i][j] = cell.IsError()
			}
		}
	}

	widths := make([]int, len(cols))
	for j, col := range cols {
		widths[j] = len(col)
		for i := range cells {
			if w := lipgloss.Width(cells[i][j]); w > widths[j] {
				widths[j] = w
			}
		}
	}

	var b strings.Builder
	for j, col := range cols {
		if j > 0 {
			b.WriteString("  ")
		}
		b.WriteString(st.Header.Render(pad(col, widths[j])))
	}
	b.WriteByte('\n')
	for i := range cells {
		for j := range cols {
			if j > 0 {
				b.WriteString("  ")
			}
			style := st.Cell
			if errorCell[i][j] {
				style = st.ErrorCell
			}
			b.WriteString(style.Render(pad(cells[i][j], widths[j])))
		}
		if i < len(cells)-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func renderPlainList(items []value.Value, opts value.DisplayOptions, st Styles) string {
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(st.Header.Render(strconv.Itoa(i)))
		b.WriteString("  ")
		style := st.Cell
		if item.IsError() {
			style = st.ErrorCell
		}
		b.WriteString(style.Render(cellText(item, opts)))
	}
	return b.String()
}

func renderRecord(v value.Value, opts value.DisplayOptions, st Styles) string {
	width := 0
	for _, c := range v.Cols {
		if len(c) > width {
			width = len(c)
		}
	}
	var b strings.Builder
	for i, c := range v.Cols {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(st.Header.Render(pad(c, width)))
		b.WriteString("  ")
		style := st.Cell
		if v.Vals[i].IsError() {
			style = st.ErrorCell
		}
		b.WriteString(style.Render(cellText(v.Vals[i], opts)))
	}
	return b.String()
}

// cellText renders a single cell. Nested containers collapse to their
// summary form; a full nested table inside a cell is out of scope here.
func cellText(v value.Value, opts value.DisplayOptions) string {
	return v.IntoString(opts)
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}
