package dataframe

import (
	"fmt"
	"strings"

	apperrors "sellincli/internal/errors"
)

// MatchMode selects which side of the reference list ExtractUnique keeps.
type MatchMode string

const (
	// MatchIn keeps only values present in the reference list.
	MatchIn MatchMode = "in"
	// MatchNotIn keeps only values absent from the reference list.
	MatchNotIn MatchMode = "not-in"
)

// Extractor pulls a derived value list out of a frame without changing it.
type Extractor func(*Frame) ([]string, error)

// ExtractUnique returns an Extractor that collects the distinct values of
// one column, in first-appearance order, filtered against a reference list.
// Cells are compared in trimmed string form and missing cells are skipped.
// Duplicate column headers are collapsed to their first occurrence and
// header whitespace is trimmed before the column is resolved, since the
// source exports frequently repeat and pad header labels.
func ExtractUnique(column string, mode MatchMode, values ...string) Extractor {
	return func(f *Frame) ([]string, error) {
		seen := make(map[string]bool, f.Width())
		var keepIdx []int
		var names []string
		for i, name := range f.names {
			if seen[name] {
				continue
			}
			seen[name] = true
			keepIdx = append(keepIdx, i)
			names = append(names, strings.TrimSpace(name))
		}

		target := -1
		for j, name := range names {
			if name == column {
				target = keepIdx[j]
				break
			}
		}
		if target < 0 {
			return nil, apperrors.NewColumnNotFound(column, names)
		}

		if mode != MatchIn && mode != MatchNotIn {
			return nil, apperrors.NewInvalidArgument(
				fmt.Sprintf("match mode must be %q or %q, got %q", MatchIn, MatchNotIn, mode))
		}

		ref := make(map[string]bool, len(values))
		for _, v := range values {
			ref[strings.TrimSpace(v)] = true
		}

		var out []string
		unique := make(map[string]bool)
		for _, row := range f.rows {
			cell := row[target]
			if cell == nil {
				continue
			}
			s := trimmedCell(cell)
			if unique[s] {
				continue
			}
			unique[s] = true
			if (mode == MatchIn && !ref[s]) || (mode == MatchNotIn && ref[s]) {
				continue
			}
			out = append(out, s)
		}
		return out, nil
	}
}
