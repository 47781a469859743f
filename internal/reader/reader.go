// Package reader loads the monthly spreadsheet exports into frames,
// routing each file extension to the engine that understands its format.
package reader

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"sellincli/internal/dataframe"
	apperrors "sellincli/internal/errors"
)

// ReadOptions tunes a single ReadSpreadsheet call. The zero value reads the
// first sheet with the default engine for the extension and treats the
// first row as the header.
type ReadOptions struct {
	// Sheet names the worksheet to read; empty selects the first one.
	Sheet string
	// Engine overrides the extension-based engine choice.
	Engine string
	// NoHeader ingests every row as data with positional column names.
	// The raw sellin export opens with banner rows, so its header is
	// useless until the cleanup transforms run.
	NoHeader bool
}

// Reader validates and loads spreadsheet files.
type Reader struct {
	logger  *slog.Logger
	engines map[string]Engine
}

// New creates a Reader with every linked engine registered.
func New(logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.Default()
	}
	r := &Reader{
		logger:  logger,
		engines: make(map[string]Engine),
	}
	r.register(&excelizeEngine{})
	return r
}

func (r *Reader) register(e Engine) {
	r.engines[e.Name()] = e
}

// ValidateFile checks that path names an existing, readable regular file.
// It fails with FILE_NOT_FOUND or PERMISSION_DENIED so callers can tell an
// unmapped network drive from a credentials problem.
func (r *Reader) ValidateFile(path string) error {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		r.logger.Error("File does not exist",
			slog.String("file", path))
		return apperrors.NewFileNotFound(path)
	}
	if err != nil {
		if os.IsPermission(err) {
			r.logger.Error("File is not accessible",
				slog.String("file", path),
				slog.String("error", err.Error()))
			return apperrors.NewPermissionDenied(path)
		}
		r.logger.Error("Failed to stat file",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apperrors.NewReadError(path, err)
	}
	if info.IsDir() {
		r.logger.Error("Path is a directory, not a file",
			slog.String("path", path))
		return apperrors.NewFileNotFound(path)
	}

	f, err := os.Open(path)
	if err != nil {
		r.logger.Error("File is not readable",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return apperrors.NewPermissionDenied(path)
	}
	f.Close()

	r.logger.Debug("File validated",
		slog.String("file", path),
		slog.Int64("size", info.Size()))
	return nil
}

// ReadSpreadsheet validates path and loads it into a frame. The engine is
// picked from opts.Engine, falling back to the extension map; extensions
// nobody mapped get a warning and one attempt with the default engine. A
// mapped engine this build does not link fails with MISSING_DEPENDENCY
// naming the module that would provide it.
func (r *Reader) ReadSpreadsheet(path string, opts ReadOptions) (*dataframe.Frame, error) {
	if err := r.ValidateFile(path); err != nil {
		return nil, err
	}

	ext := strings.ToLower(filepath.Ext(path))
	name := opts.Engine
	if name == "" {
		mapped, ok := extensionEngines[ext]
		if !ok {
			r.logger.Warn("No engine mapped for extension, trying default",
				slog.String("file", path),
				slog.String("extension", ext),
				slog.String("engine", EngineExcelize))
			mapped = EngineExcelize
		}
		name = mapped
	}

	eng, ok := r.engines[name]
	if !ok {
		if pkg, known := engineProviders[name]; known {
			r.logger.Warn("Read engine not built in",
				slog.String("file", path),
				slog.String("engine", name),
				slog.String("provider", pkg))
			return nil, apperrors.NewMissingDependency(ext, pkg)
		}
		return nil, apperrors.NewInvalidArgument(
			fmt.Sprintf("unknown read engine %q", name))
	}

	grid, err := eng.Read(path, opts.Sheet)
	if err != nil {
		r.logger.Warn("Failed to read spreadsheet",
			slog.String("file", path),
			slog.String("engine", name),
			slog.String("error", err.Error()))
		return nil, apperrors.NewReadError(path, err)
	}

	frame := frameFromGrid(grid, opts.NoHeader)
	r.logger.Debug("Spreadsheet read",
		slog.String("file", path),
		slog.String("engine", name),
		slog.Int("rows", frame.Len()),
		slog.Int("columns", frame.Width()))
	return frame, nil
}

// frameFromGrid turns a raw cell grid into a frame, consuming the first row
// as the header unless noHeader is set.
func frameFromGrid(grid [][]interface{}, noHeader bool) *dataframe.Frame {
	if noHeader || len(grid) == 0 {
		return dataframe.New(nil, grid)
	}
	names := make([]string, len(grid[0]))
	for i, cell := range grid[0] {
		names[i] = dataframe.CellString(cell)
	}
	return dataframe.New(names, grid[1:])
}
