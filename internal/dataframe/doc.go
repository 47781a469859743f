// Package dataframe holds the in-memory table model shared by the
// preprocessing pipeline and the composable transforms that clean it.
//
// A Frame is a rectangular snapshot of one spreadsheet: ordered column
// names plus rows of loosely typed cells, with nil marking a missing
// value. Transforms never mutate their input; each returns a fresh Frame
// so a failed pipeline step leaves the source intact.
package dataframe
