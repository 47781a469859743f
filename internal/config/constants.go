package config

// Application constants for the SellinPulse preprocessing tools.
const (
	// Application Info
	AppName    = "SellinPulse"
	AppVersion = "1.4.0"

	// DefaultConfigFile is looked up next to the executable when no
	// explicit path is given on the command line.
	DefaultConfigFile = "config.yaml"

	// EnvPrefix namespaces environment overrides, e.g. SELLIN_LOG_LEVEL.
	EnvPrefix = "SELLIN"

	// Log Settings
	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
	DefaultLogOutput = "stdout"
	DefaultLogFile   = "logs/preprocessor.log"
)
