package dataframe

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "sellincli/internal/errors"
)

// Frame is an in-memory table: an ordered list of named columns over an
// ordered list of rows. A nil cell marks a missing value. Column names are
// not required to be unique; raw spreadsheet exports regularly repeat them.
type Frame struct {
	names []string
	rows  [][]interface{}
}

// New builds a Frame from column names and row data, aligning everything to
// one width: the widest of the header and every row. Missing header slots
// get positional names ("0", "1", ...), short rows are padded with missing
// cells. The arguments are owned by the Frame afterwards.
func New(names []string, rows [][]interface{}) *Frame {
	width := len(names)
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	for i := len(names); i < width; i++ {
		names = append(names, strconv.Itoa(i))
	}
	for i, row := range rows {
		for len(row) < width {
			row = append(row, nil)
		}
		rows[i] = row
	}

	return &Frame{names: names, rows: rows}
}

// Columns returns a copy of the column names in positional order.
func (f *Frame) Columns() []string {
	out := make([]string, len(f.names))
	copy(out, f.names)
	return out
}

// Len returns the number of rows.
func (f *Frame) Len() int {
	return len(f.rows)
}

// Width returns the number of columns.
func (f *Frame) Width() int {
	return len(f.names)
}

// Row returns a copy of the row at the given 0-based position.
func (f *Frame) Row(i int) []interface{} {
	out := make([]interface{}, len(f.rows[i]))
	copy(out, f.rows[i])
	return out
}

// Column returns a copy of the values of the first column with the given
// name, or a COLUMN_NOT_FOUND error.
func (f *Frame) Column(name string) ([]interface{}, error) {
	idx := f.columnIndex(name)
	if idx < 0 {
		return nil, apperrors.NewColumnNotFound(name, f.names)
	}
	out := make([]interface{}, len(f.rows))
	for i, row := range f.rows {
		out[i] = row[idx]
	}
	return out, nil
}

// Value returns the cell at the given row position and column name (first
// occurrence for duplicated names).
func (f *Frame) Value(row int, column string) (interface{}, error) {
	idx := f.columnIndex(column)
	if idx < 0 {
		return nil, apperrors.NewColumnNotFound(column, f.names)
	}
	if row < 0 || row >= len(f.rows) {
		return nil, apperrors.NewInvalidArgument(
			fmt.Sprintf("row position %d out of range, frame has %d", row, len(f.rows)))
	}
	return f.rows[row][idx], nil
}

// columnIndex returns the position of the first column named name, or -1.
func (f *Frame) columnIndex(name string) int {
	for i, n := range f.names {
		if n == name {
			return i
		}
	}
	return -1
}

// copyRows deep-copies the row data so transforms can edit freely.
func (f *Frame) copyRows() [][]interface{} {
	rows := make([][]interface{}, len(f.rows))
	for i, row := range f.rows {
		rows[i] = make([]interface{}, len(row))
		copy(rows[i], row)
	}
	return rows
}

// CellString renders a cell for comparison and export. Missing cells render
// as the empty string.
func CellString(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// trimmedCell is CellString plus surrounding-whitespace removal, the form
// every value comparison in this package uses.
func trimmedCell(v interface{}) string {
	return strings.TrimSpace(CellString(v))
}
