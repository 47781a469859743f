package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	apperrors "sellincli/internal/errors"
)

// Settings is the complete preprocessor configuration, loaded from a YAML
// file and overridable through SELLIN_* environment variables for the
// logging section.
type Settings struct {
	Paths   PathsSection   `yaml:"paths"`
	UI      UISection      `yaml:"ui"`
	Outputs OutputsSection `yaml:"outputs"`
	Logging LoggingConfig  `yaml:"logging"`
}

// PathsSection lists every spreadsheet the pipeline consumes plus the
// directory it writes to. Validation checks each one on disk before any
// work starts: a run must never die halfway through because the OEM desk
// renamed a file.
type PathsSection struct {
	Base           joinPath `yaml:"base" validate:"required,file"`
	Cadastro       joinPath `yaml:"cadastro" validate:"required,file"`
	GKAPorSegmento joinPath `yaml:"gka_por_segmento" validate:"required,file"`
	ListaGKA       joinPath `yaml:"lista_gka" validate:"required,file"`
	Portfolio      joinPath `yaml:"portfolio" validate:"required,file"`
	OEM            joinPath `yaml:"oem" validate:"required,file"`
	Sellin         joinPath `yaml:"sellin" validate:"required,file"`
	OutputPath     joinPath `yaml:"output_path" validate:"required,dir"`
}

// UISection holds presentation hints for report consumers.
type UISection struct {
	Colors []string `yaml:"colors"`
}

// OutputsSection names the CSV files a run produces, in pipeline order.
type OutputsSection struct {
	FileName []string `yaml:"file_name"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LOG_LEVEL"`
	Format   string `yaml:"format" envconfig:"LOG_FORMAT"`
	Output   string `yaml:"output" envconfig:"LOG_OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"LOG_FILE_PATH"`
}

// Input pairs a configured spreadsheet with its field name from the paths
// section, for logging and output naming.
type Input struct {
	Name string
	Path string
}

// Load reads, parses and validates the configuration at configFile
// (relative names resolve against the executable directory). Every failing
// path is reported in one CONFIG_VALIDATION error rather than one per run,
// since fixing the config usually means touching several lines at once.
func Load(configFile string) (*Settings, error) {
	logger := slog.Default()

	configPath, err := ResolveConfigPath(configFile)
	if err != nil {
		return nil, apperrors.NewConfigParse(configFile, err)
	}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		logger.Error("Configuration not found",
			slog.String("path", configPath))
		return nil, apperrors.NewConfigNotFound(configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		logger.Error("Failed to read configuration",
			slog.String("path", configPath),
			slog.String("error", err.Error()))
		return nil, apperrors.NewConfigParse(configPath, err)
	}

	s := Default()
	if err := yaml.Unmarshal(data, s); err != nil {
		logger.Error("Failed to parse configuration",
			slog.String("path", configPath),
			slog.String("error", err.Error()))
		return nil, apperrors.NewConfigParse(configPath, err)
	}

	// Environment wins over the file for the logging section.
	if err := envconfig.Process(EnvPrefix, &s.Logging); err != nil {
		return nil, apperrors.NewConfigParse(configPath, err)
	}

	if err := s.validatePaths(logger); err != nil {
		return nil, err
	}

	logger.Info("Configuration and files validated successfully",
		slog.String("config", configPath),
		slog.Int("colors", len(s.UI.Colors)),
		slog.Int("output_names", len(s.Outputs.FileName)))
	return s, nil
}

// Default returns the built-in configuration a file overlays.
func Default() *Settings {
	return &Settings{
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Format:   DefaultLogFormat,
			Output:   DefaultLogOutput,
			FilePath: DefaultLogFile,
		},
	}
}

// validatePaths checks every configured path on disk, accumulating all
// failures into a single CONFIG_VALIDATION error.
func (s *Settings) validatePaths(logger *slog.Logger) error {
	err := newPathValidator().Struct(&s.Paths)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperrors.NewAppError(apperrors.ErrTypeConfigValidation,
			"path validation failed", err)
	}

	fields := make([]apperrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		field := apperrors.FieldError{
			Field:   fe.Field(),
			Message: fieldMessage(fe),
		}
		fields = append(fields, field)
		logger.Error("Configured path failed validation",
			slog.String("field", field.Field),
			slog.String("reason", field.Message),
			slog.Any("value", fe.Value()))
	}
	return apperrors.NewConfigValidation(fields)
}

// newPathValidator builds a validator that reports fields by their YAML
// names, so errors read like the config file the user has open.
func newPathValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// fieldMessage formats path validation error messages
func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "path is not set in the configuration"
	case "file":
		return "file not found at the configured path"
	case "dir":
		return "directory not found at the configured path"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// BaseFile returns the absolute path of the consolidated base spreadsheet.
func (s *Settings) BaseFile() string {
	return resolvePath(string(s.Paths.Base))
}

// CadastroFile returns the absolute path of the customer registry export.
func (s *Settings) CadastroFile() string {
	return resolvePath(string(s.Paths.Cadastro))
}

// GKASegmentoFile returns the absolute path of the GKA-by-segment report.
func (s *Settings) GKASegmentoFile() string {
	return resolvePath(string(s.Paths.GKAPorSegmento))
}

// ListaGKAFile returns the absolute path of the GKA account list.
func (s *Settings) ListaGKAFile() string {
	return resolvePath(string(s.Paths.ListaGKA))
}

// PortfolioFile returns the absolute path of the product portfolio export.
func (s *Settings) PortfolioFile() string {
	return resolvePath(string(s.Paths.Portfolio))
}

// OEMFile returns the absolute path of the OEM sales report.
func (s *Settings) OEMFile() string {
	return resolvePath(string(s.Paths.OEM))
}

// SellinFile returns the absolute path of the raw sellin export.
func (s *Settings) SellinFile() string {
	return resolvePath(string(s.Paths.Sellin))
}

// OutputDir returns the absolute path of the directory runs write to.
func (s *Settings) OutputDir() string {
	return resolvePath(string(s.Paths.OutputPath))
}

// Colors returns the configured report palette.
func (s *Settings) Colors() []string {
	out := make([]string, len(s.UI.Colors))
	copy(out, s.UI.Colors)
	return out
}

// FileNames returns the configured output file names.
func (s *Settings) FileNames() []string {
	out := make([]string, len(s.Outputs.FileName))
	copy(out, s.Outputs.FileName)
	return out
}

// Inputs returns every configured spreadsheet with its config field name,
// in the order the pipeline processes them.
func (s *Settings) Inputs() []Input {
	return []Input{
		{Name: "base", Path: s.BaseFile()},
		{Name: "cadastro", Path: s.CadastroFile()},
		{Name: "gka_por_segmento", Path: s.GKASegmentoFile()},
		{Name: "lista_gka", Path: s.ListaGKAFile()},
		{Name: "portfolio", Path: s.PortfolioFile()},
		{Name: "oem", Path: s.OEMFile()},
		{Name: "sellin", Path: s.SellinFile()},
	}
}
