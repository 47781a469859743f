// Package config loads and validates the SellinPulse settings file and
// provides a type-safe API for the resolved paths used by the rest of the
// application.
//
// # Configuration Sources
//
// Settings are assembled from the following sources in order of precedence:
//
//	1. Environment variables (logging only, highest priority)
//	2. The YAML configuration file
//	3. Built-in defaults (lowest priority)
//
// # The Configuration File
//
// The file is YAML, looked up relative to the executable when the given
// path is not absolute, and supports the !join directive for building
// paths out of a shared anchor:
//
//	paths:
//	  root: &root //farm01/comercial/2026
//	  base:             !join [*root, /base/Base.xlsx]
//	  cadastro:         !join [*root, /cadastro/clientes.xlsx]
//	  gka_por_segmento: !join [*root, /gka/por_segmento.xlsx]
//	  lista_gka:        !join [*root, /gka/lista.xlsx]
//	  portfolio:        !join [*root, /portfolio/portfolio.xlsx]
//	  oem:              !join [*root, /oem/oem.xlsx]
//	  sellin:           !join [*root, /sellin/base_sellin.xlsx]
//	  output_path:      ./saida
//	ui:
//	  colors: ["#0A84FF", "#FF9F0A"]
//	outputs:
//	  file_name: [sellin_tratado, cadastro_tratado]
//
// # Validation
//
// Load validates the whole paths section before returning: every file
// field must name an existing file and output_path an existing directory.
// Validation does not stop at the first problem; the returned error
// carries one FieldError per failing field so a single run reports every
// broken path at once.
//
// # Environment Variables
//
// Logging settings may be overridden with SELLIN_* variables:
//
//	SELLIN_LOG_LEVEL=debug
//	SELLIN_LOG_FORMAT=text
//	SELLIN_LOG_OUTPUT=both
//	SELLIN_LOG_FILE_PATH=logs/preprocessor.log
//
// # Usage
//
// Load the settings once at startup:
//
//	settings, err := config.Load("config.yaml")
//	if err != nil {
//	    slog.Error("Failed to load configuration", "error", err)
//	    os.Exit(1)
//	}
//	frame, err := rd.ReadSpreadsheet(settings.SellinFile(), reader.ReadOptions{})
//
// Accessors return absolute paths with symlinks resolved, so downstream
// code never re-interprets relative segments.
package config
