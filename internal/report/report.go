// Package report renders convergence checkpoints as the flat numeric table
// consumed by external plotting tools.
package report

import (
	"fmt"
	"io"

	"funcsamp/internal/estimate"
)

// Stride is the sample-count interval between reported checkpoints.
const Stride = 4

// Table streams checkpoints whose sample count is a multiple of Stride as
// `<sampleCount> <avgError>` lines, flushed after every line so the table
// can be piped into a live plot.
type Table struct {
	w          io.Writer
	includeMax bool
	err        error
}

// Option configures a Table.
type Option func(*Table)

// WithMaxError appends the max-error column to every line.
func WithMaxError() Option {
	return func(t *Table) {
		t.includeMax = true
	}
}

// NewTable constructs a Table writing to w.
func NewTable(w io.Writer, opts ...Option) *Table {
	t := &Table{w: w}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// OnCheckpoint writes one table line for checkpoints on the stride.
func (t *Table) OnCheckpoint(cp estimate.Checkpoint) {
	if t.err != nil || cp.SampleCount%Stride != 0 {
		return
	}
	if t.includeMax {
		_, t.err = fmt.Fprintf(t.w, "%d %s %s\n", cp.SampleCount, formatError(cp.AvgError), formatError(cp.MaxError))
	} else {
		_, t.err = fmt.Fprintf(t.w, "%d %s\n", cp.SampleCount, formatError(cp.AvgError))
	}
	if t.err == nil {
		t.err = flush(t.w)
	}
}

// Err returns the first write failure, if any.
func (t *Table) Err() error {
	return t.err
}

// flush pushes buffered output through writers that support it. Plain
// writers such as os.Stdout are unbuffered already.
func flush(w io.Writer) error {
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}
