package dataframe

import (
	"fmt"
	"strings"

	apperrors "sellincli/internal/errors"
)

// Mode selects how the positions given to RemoveRows and RemoveColumns are
// interpreted.
type Mode string

const (
	// ModeIndividual removes exactly the listed positions.
	ModeIndividual Mode = "individual"
	// ModeInterval removes a half-open range: one position n removes
	// [0, n), two positions a and b remove [a, b).
	ModeInterval Mode = "interval"
)

// removalSet expands mode+positions into the set of positions to drop.
// Positions refer to the frame's ordering at apply time, not to source row
// numbers.
func removalSet(mode Mode, limit int, positions []int, what string) (map[int]bool, error) {
	drop := make(map[int]bool)

	switch mode {
	case ModeInterval:
		var from, to int
		switch len(positions) {
		case 1:
			from, to = 0, positions[0]
		case 2:
			from, to = positions[0], positions[1]
		default:
			return nil, apperrors.NewInvalidArgument(
				fmt.Sprintf("interval mode takes one or two %s positions, got %d", what, len(positions)))
		}
		if from < 0 || to > limit || from > to {
			return nil, apperrors.NewInvalidArgument(
				fmt.Sprintf("%s interval [%d, %d) out of range, frame has %d", what, from, to, limit))
		}
		for i := from; i < to; i++ {
			drop[i] = true
		}
	case ModeIndividual:
		for _, p := range positions {
			if p < 0 || p >= limit {
				return nil, apperrors.NewInvalidArgument(
					fmt.Sprintf("%s position %d out of range, frame has %d", what, p, limit))
			}
			drop[p] = true
		}
	default:
		return nil, apperrors.NewInvalidArgument(
			fmt.Sprintf("mode must be %q or %q, got %q", ModeIndividual, ModeInterval, mode))
	}

	return drop, nil
}

// RemoveRows returns a Transform that deletes rows by 0-based position.
// Raw exports carry banner and subtotal rows at fixed positions; interval
// mode strips them in one step.
func RemoveRows(mode Mode, positions ...int) Transform {
	return func(f *Frame) (*Frame, error) {
		drop, err := removalSet(mode, f.Len(), positions, "row")
		if err != nil {
			return nil, err
		}

		rows := make([][]interface{}, 0, f.Len()-len(drop))
		for i, row := range f.copyRows() {
			if !drop[i] {
				rows = append(rows, row)
			}
		}
		return &Frame{names: f.Columns(), rows: rows}, nil
	}
}

// RemoveColumns returns a Transform that deletes whole columns by 0-based
// position, with the same individual/interval semantics as RemoveRows.
func RemoveColumns(mode Mode, positions ...int) Transform {
	return func(f *Frame) (*Frame, error) {
		drop, err := removalSet(mode, f.Width(), positions, "column")
		if err != nil {
			return nil, err
		}

		names := make([]string, 0, f.Width()-len(drop))
		for i, name := range f.names {
			if !drop[i] {
				names = append(names, name)
			}
		}

		rows := make([][]interface{}, len(f.rows))
		for r, row := range f.rows {
			kept := make([]interface{}, 0, len(names))
			for i, cell := range row {
				if !drop[i] {
					kept = append(kept, cell)
				}
			}
			rows[r] = kept
		}
		return &Frame{names: names, rows: rows}, nil
	}
}

// RenameColumns returns a Transform that replaces every column name, in
// positional order. The name count must match the frame's column count
// exactly; silent truncation would hide column drift in the monthly exports.
func RenameColumns(names ...string) Transform {
	return func(f *Frame) (*Frame, error) {
		if len(names) != f.Width() {
			return nil, apperrors.NewInvalidArgument(
				fmt.Sprintf("rename expects %d column names, got %d", f.Width(), len(names)))
		}
		renamed := make([]string, len(names))
		copy(renamed, names)
		return &Frame{names: renamed, rows: f.copyRows()}, nil
	}
}

// FilterRows returns a Transform that keeps only the rows whose value in
// column, after trimming surrounding whitespace, equals one of values.
// Missing cells never match. Fails with COLUMN_NOT_FOUND if the column is
// absent when the transform runs.
func FilterRows(column string, values ...string) Transform {
	return func(f *Frame) (*Frame, error) {
		idx := f.columnIndex(column)
		if idx < 0 {
			return nil, apperrors.NewColumnNotFound(column, f.names)
		}

		keep := make(map[string]bool, len(values))
		for _, v := range values {
			keep[v] = true
		}

		var rows [][]interface{}
		for _, row := range f.copyRows() {
			if row[idx] == nil {
				continue
			}
			if keep[trimmedCell(row[idx])] {
				rows = append(rows, row)
			}
		}
		return &Frame{names: f.Columns(), rows: rows}, nil
	}
}

// NormalizeKeys returns a Transform that normalizes the named columns for
// joining: every value becomes its trimmed, upper-cased string form, and the
// literals "NAN" and "NONE" left behind by earlier tooling become missing
// cells. Missing cells stay missing, so applying the transform twice equals
// applying it once.
func NormalizeKeys(columns ...string) Transform {
	return func(f *Frame) (*Frame, error) {
		idxs := make([]int, 0, len(columns))
		for _, col := range columns {
			idx := f.columnIndex(col)
			if idx < 0 {
				return nil, apperrors.NewColumnNotFound(col, f.names)
			}
			idxs = append(idxs, idx)
		}

		rows := f.copyRows()
		for _, idx := range idxs {
			for _, row := range rows {
				if row[idx] == nil {
					continue
				}
				s := strings.ToUpper(strings.TrimSpace(CellString(row[idx])))
				if s == "NAN" || s == "NONE" {
					row[idx] = nil
				} else {
					row[idx] = s
				}
			}
		}
		return &Frame{names: f.Columns(), rows: rows}, nil
	}
}
