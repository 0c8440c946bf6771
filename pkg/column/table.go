package column

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/csv"
)

// ErrEmptyInput is returned by ReadCSV when the input has no rows.
var ErrEmptyInput = errors.New("no rows in input")

// Table is a read-only set of equal-length named columns backed by an Arrow record.
type Table struct {
	rec arrow.Record
}

// NewTable assembles named columns into a table.
// Every column needs a unique non-empty name and all lengths must match.
func NewTable(cols ...*Column) (*Table, error) {
	if len(cols) == 0 {
		return nil, fmt.Errorf("table needs at least one column")
	}

	fields := make([]arrow.Field, len(cols))
	arrs := make([]arrow.Array, len(cols))
	seen := make(map[string]bool, len(cols))
	rows := cols[0].Len()

	for i, c := range cols {
		if c.Name() == "" {
			return nil, fmt.Errorf("column %d has no name", i)
		}
		if seen[c.Name()] {
			return nil, fmt.Errorf("duplicate column name %q", c.Name())
		}
		seen[c.Name()] = true
		if c.Len() != rows {
			return nil, fmt.Errorf("column %q has %d rows, want %d", c.Name(), c.Len(), rows)
		}
		fields[i] = arrow.Field{Name: c.Name(), Type: c.Type(), Nullable: true}
		arrs[i] = c.Array()
	}

	schema := arrow.NewSchema(fields, nil)
	return &Table{rec: array.NewRecord(schema, arrs, int64(rows))}, nil
}

// FromRecord wraps an Arrow record. The record is retained.
func FromRecord(rec arrow.Record) *Table {
	rec.Retain()
	return &Table{rec: rec}
}

// ReadCSV reads a CSV document with a header row, inferring column types.
// Empty cells become nulls. Input without data rows fails with ErrEmptyInput.
func ReadCSV(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if !hasDataRows(data) {
		return nil, ErrEmptyInput
	}

	rdr := csv.NewInferringReader(bytes.NewReader(data),
		csv.WithHeader(true),
		csv.WithChunk(-1),
		csv.WithNullReader(true, ""),
	)
	defer rdr.Release()

	if !rdr.Next() {
		if err := rdr.Err(); err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		return nil, ErrEmptyInput
	}
	rec := rdr.Record()
	if rec.NumRows() == 0 {
		return nil, ErrEmptyInput
	}
	return FromRecord(rec), nil
}

// hasDataRows reports whether anything but blank space follows the header line.
// The inferring reader cannot build a record when there is no row to infer from.
func hasDataRows(data []byte) bool {
	header, rest, found := bytes.Cut(data, []byte("\n"))
	if !found || len(bytes.TrimSpace(header)) == 0 {
		return false
	}
	return len(bytes.TrimSpace(rest)) > 0
}

// NumRows returns the row count.
func (t *Table) NumRows() int { return int(t.rec.NumRows()) }

// NumCols returns the column count.
func (t *Table) NumCols() int { return int(t.rec.NumCols()) }

// Names returns the column names in schema order.
func (t *Table) Names() []string {
	names := make([]string, t.NumCols())
	for i := range names {
		names[i] = t.rec.ColumnName(i)
	}
	return names
}

// Column returns the i-th column.
func (t *Table) Column(i int) *Column {
	return FromArrow(t.rec.ColumnName(i), t.rec.Column(i))
}

// Columns returns all columns in schema order.
func (t *Table) Columns() []*Column {
	cols := make([]*Column, t.NumCols())
	for i := range cols {
		cols[i] = t.Column(i)
	}
	return cols
}

// Lookup returns the column with the given name.
func (t *Table) Lookup(name string) (*Column, bool) {
	idx := t.rec.Schema().FieldIndices(name)
	if len(idx) == 0 {
		return nil, false
	}
	return t.Column(idx[0]), true
}

// Record returns the underlying Arrow record without retaining it.
func (t *Table) Record() arrow.Record { return t.rec }

// Release drops the reference on the underlying record.
func (t *Table) Release() { t.rec.Release() }
