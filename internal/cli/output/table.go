package output

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"text/tabwriter"
)

// Table represents tabular data.
type Table struct {
	Headers []string
	Rows    [][]string
}

// AddRow appends a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.Rows = append(t.Rows, cells)
}

// Render writes the table through a tabwriter with two-space padding.
func (t *Table) Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	if len(t.Headers) > 0 {
		for i, h := range t.Headers {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, h)
		}
		fmt.Fprintln(tw)
	}

	for _, row := range t.Rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}

// TableFormatter renders decoded payloads as text tables. A single
// object becomes a FIELD/VALUE listing, a slice of objects becomes
// one row per element with the union of keys as columns. Keys are
// sorted so output is deterministic.
type TableFormatter struct{}

// Format writes data as a table. Values that are neither a Table, an
// object nor a slice of objects fall back to their JSON rendering.
func (f *TableFormatter) Format(w io.Writer, data any) error {
	switch v := data.(type) {
	case *Table:
		return v.Render(w)
	case Table:
		return v.Render(w)
	case map[string]any:
		return objectTable(v).Render(w)
	case []map[string]any:
		return listTable(v).Render(w)
	default:
		jf := &JSONFormatter{}
		return jf.Format(w, data)
	}
}

// objectTable renders one object as FIELD/VALUE rows sorted by key.
func objectTable(obj map[string]any) *Table {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	t := &Table{Headers: []string{"FIELD", "VALUE"}}
	for _, k := range keys {
		t.AddRow(k, Cell(obj[k]))
	}
	return t
}

// listTable renders a slice of objects with the sorted union of their
// keys as columns.
func listTable(items []map[string]any) *Table {
	seen := make(map[string]bool)
	var keys []string
	for _, item := range items {
		for k := range item {
			if !seen[k] {
				seen[k] = true
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)

	t := &Table{Headers: make([]string, len(keys))}
	for i, k := range keys {
		t.Headers[i] = k
	}
	for _, item := range items {
		row := make([]string, len(keys))
		for i, k := range keys {
			row[i] = Cell(item[k])
		}
		t.AddRow(row...)
	}
	return t
}

// Cell formats a decoded JSON value for a table cell. Absent and
// empty values render as "-"; nested structures are summarized.
func Cell(v any) string {
	switch t := v.(type) {
	case nil:
		return "-"
	case string:
		if t == "" {
			return "-"
		}
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case []any:
		if len(t) == 0 {
			return "-"
		}
		return fmt.Sprintf("[%d items]", len(t))
	case map[string]any:
		if len(t) == 0 {
			return "-"
		}
		return fmt.Sprintf("{%d keys}", len(t))
	default:
		return fmt.Sprintf("%v", t)
	}
}
