package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders rows of data in aligned columns.
type Table struct {
	w       *tabwriter.Writer
	out     io.Writer
	headers []string
	rows    int
	empty   string
}

// NewTable creates a new table writer with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	t := &Table{w: tw, out: out, headers: headers}
	_, _ = fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return t
}

// EmptyMessage sets a line printed under the headers when no rows were added.
func (t *Table) EmptyMessage(msg string) *Table {
	t.empty = msg
	return t
}

// Row appends a row of values. The number of values should match the number of headers.
// Empty values are rendered as "-".
func (t *Table) Row(values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		s := fmt.Sprintf("%v", v)
		if s == "" {
			s = "-"
		}
		parts[i] = s
	}
	t.rows++
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

// Len returns the number of rows added.
func (t *Table) Len() int { return t.rows }

// Flush writes the buffered output.
func (t *Table) Flush() error {
	if err := t.w.Flush(); err != nil {
		return err
	}
	if t.rows == 0 && t.empty != "" {
		_, err := fmt.Fprintln(t.out, t.empty)
		return err
	}
	return nil
}
