package ui

import (
	"fmt"
	"io"
)

// Progress prints one line per processed entry with a running counter.
type Progress struct {
	out       io.Writer
	total     int
	completed int
}

// NewProgress creates a progress printer for n entries.
func NewProgress(out io.Writer, total int) *Progress {
	return &Progress{out: out, total: total}
}

// Done marks one entry as processed and prints label with the counter.
func (p *Progress) Done(label string) {
	p.completed++
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s\n", p.completed, p.total, label)
}

// Skip marks one entry as processed and prints label as a warning.
func (p *Progress) Skip(label string) {
	p.completed++
	_, _ = fmt.Fprintf(p.out, "[%d/%d] %s\n", p.completed, p.total, Warn.Render(label))
}

// Log prints an indented detail line for the current entry.
func (p *Progress) Log(format string, args ...any) {
	_, _ = fmt.Fprintf(p.out, "      "+format+"\n", args...)
}
