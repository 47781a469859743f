// Package exporter writes the preprocessed frames out as CSV files.
//
// CSVWriter anchors relative file names at the run's configured output
// directory and prefixes files with a UTF-8 BOM by default, since the
// resulting CSVs are re-opened in Excel by people whose customer names
// carry accents.
//
// Example usage:
//
//	writer := exporter.NewCSVWriter(settings.OutputDir())
//	err := writer.WriteFrame("sellin_tratado_p5.csv", frame, true)
//
// StreamWriter covers the consolidated base export, which is too large to
// hold as string records next to its frame.
package exporter
