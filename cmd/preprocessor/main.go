// Command preprocessor loads the SellinPulse configuration, checks that
// every configured workbook exists and is readable, and converts each one
// to a UTF-8 CSV snapshot in the configured output directory. Later stages
// of the pipeline consume the snapshots instead of the raw workbooks.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"sellincli/internal/config"
	apperrors "sellincli/internal/errors"
	"sellincli/internal/exporter"
	"sellincli/internal/fiscal"
	"sellincli/internal/infrastructure"
	"sellincli/internal/reader"
)

func main() {
	configFile := flag.String("config", config.DefaultConfigFile, "path to the YAML configuration (relative paths resolve against the executable)")
	month := flag.Int("month", 0, "calendar month used to stamp output files (defaults to the current month)")
	noHeader := flag.Bool("no-header", false, "treat the first spreadsheet row as data instead of column names")
	flag.Parse()

	settings, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		if appErr, ok := apperrors.AsAppError(err); ok {
			for _, field := range appErr.Fields {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field.Field, field.Message)
			}
		}
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(settings.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	ctx := infrastructure.ContextWithRunID(context.Background())
	logger = infrastructure.LoggerWithContext(ctx)

	period := fiscal.Current()
	if *month != 0 {
		period, err = fiscal.Period(*month)
		if err != nil {
			logger.Error("Invalid month flag",
				slog.Int("month", *month),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("Starting SellinPulse preprocessing",
		slog.String("version", config.AppVersion),
		slog.String("config", *configFile),
		slog.String("period", period),
		slog.String("output_dir", settings.OutputDir()))

	rd := reader.New(logger)
	writer := exporter.NewCSVWriter(settings.OutputDir())

	inputs := settings.Inputs()
	fmt.Printf("Found %d configured inputs\n", len(inputs))

	failures := processInputs(rd, writer, inputs, settings.FileNames(), period, *noHeader, logger)
	if failures > 0 {
		logger.Error("Preprocessing finished with errors",
			slog.Int("failed", failures),
			slog.Int("total", len(inputs)))
		os.Exit(1)
	}

	logger.Info("Preprocessing complete", slog.Int("processed", len(inputs)))
	fmt.Printf("Processing complete: %d files\n", len(inputs))
}

// processInputs converts each configured workbook to CSV and returns how
// many inputs failed. A failure on one input does not stop the others, so
// a single run reports every broken workbook at once.
func processInputs(rd *reader.Reader, writer *exporter.CSVWriter, inputs []config.Input, fileNames []string, period string, noHeader bool, logger *slog.Logger) int {
	failures := 0
	for i, input := range inputs {
		fmt.Printf("Processing file %d of %d: %s\n", i+1, len(inputs), input.Name)

		frame, err := rd.ReadSpreadsheet(input.Path, reader.ReadOptions{NoHeader: noHeader})
		if err != nil {
			logger.Error("Error reading input",
				slog.String("input", input.Name),
				slog.String("path", input.Path),
				slog.String("error", err.Error()))
			failures++
			continue
		}

		name := outputName(fileNames, i, input.Name, period)
		if err := writer.WriteFrame(name, frame, true); err != nil {
			logger.Error("Error writing snapshot",
				slog.String("input", input.Name),
				slog.String("file", name),
				slog.String("error", err.Error()))
			failures++
			continue
		}

		logger.Info("Input converted",
			slog.String("input", input.Name),
			slog.String("file", name),
			slog.Int("rows", frame.Len()),
			slog.Int("columns", frame.Width()))
	}
	return failures
}

// outputName picks the CSV name for the input at position i. Entries from
// outputs.file_name take precedence, in configuration order; inputs beyond
// the list fall back to "<input>_p<period>.csv".
func outputName(fileNames []string, i int, inputName, period string) string {
	name := ""
	if i < len(fileNames) {
		name = strings.TrimSpace(fileNames[i])
	}
	if name == "" {
		name = fmt.Sprintf("%s_p%s", inputName, period)
	}
	if !strings.HasSuffix(strings.ToLower(name), ".csv") {
		name += ".csv"
	}
	return name
}
