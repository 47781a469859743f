package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorType classifies every failure the preprocessor can report.
type ErrorType string

const (
	ErrTypeConfigNotFound    ErrorType = "CONFIG_NOT_FOUND"
	ErrTypeConfigParse       ErrorType = "CONFIG_PARSE"
	ErrTypeConfigValidation  ErrorType = "CONFIG_VALIDATION"
	ErrTypeFileNotFound      ErrorType = "FILE_NOT_FOUND"
	ErrTypePermissionDenied  ErrorType = "PERMISSION_DENIED"
	ErrTypeMissingDependency ErrorType = "MISSING_DEPENDENCY"
	ErrTypeRead              ErrorType = "READ_ERROR"
	ErrTypeColumnNotFound    ErrorType = "COLUMN_NOT_FOUND"
	ErrTypeInvalidArgument   ErrorType = "INVALID_ARGUMENT"
)

// FieldError is one failing configuration field with a human-readable reason.
type FieldError struct {
	Field   string
	Message string
}

// AppError is the application-specific error carried across package
// boundaries. Fields is populated only for configuration validation
// failures, which accumulate every bad field instead of stopping at the
// first one.
type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
	Fields  []FieldError
	Context map[string]interface{}
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap allows errors.Is and errors.As to work with AppError
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithContext adds context to the error
func (e *AppError) WithContext(key string, value interface{}) *AppError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewAppError creates a new application error
func NewAppError(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType reports whether err (or anything it wraps) is an AppError of the
// given type.
func IsType(err error, errType ErrorType) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type == errType
	}
	return false
}

// TypeOf returns the ErrorType carried by err, or "" for foreign errors.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Type
	}
	return ""
}

// AsAppError extracts the AppError wrapped anywhere in err's chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Constructors for the preprocessor's error taxonomy.

// NewConfigNotFound reports a missing configuration file.
func NewConfigNotFound(path string) *AppError {
	return NewAppError(ErrTypeConfigNotFound, fmt.Sprintf("configuration not found at %s", path), nil)
}

// NewConfigParse reports a malformed configuration file or an I/O failure
// while reading it.
func NewConfigParse(path string, cause error) *AppError {
	return NewAppError(ErrTypeConfigParse, fmt.Sprintf("unexpected error reading %s", path), cause)
}

// NewConfigValidation reports every failing configuration field at once.
// No partial configuration is ever constructed from a file that produced one.
func NewConfigValidation(fields []FieldError) *AppError {
	err := NewAppError(ErrTypeConfigValidation,
		fmt.Sprintf("data/path integrity check failed for %d field(s)", len(fields)), nil)
	err.Fields = fields
	return err
}

// NewFileNotFound reports a path that does not exist on disk.
func NewFileNotFound(path string) *AppError {
	return NewAppError(ErrTypeFileNotFound, fmt.Sprintf("file not found: %s", path), nil)
}

// NewPermissionDenied reports an existing file the process cannot read.
func NewPermissionDenied(path string) *AppError {
	return NewAppError(ErrTypePermissionDenied, fmt.Sprintf("no read permission for file: %s", path), nil)
}

// NewMissingDependency reports a spreadsheet extension whose decoding engine
// is not linked into this build, naming the package that provides it.
func NewMissingDependency(ext, pkg string) *AppError {
	err := NewAppError(ErrTypeMissingDependency,
		fmt.Sprintf("no engine available for %s files, reading them requires %s", ext, pkg), nil)
	return err.WithContext("extension", ext).WithContext("package", pkg)
}

// NewReadError wraps any other spreadsheet read failure with the file name.
func NewReadError(file string, cause error) *AppError {
	return NewAppError(ErrTypeRead, fmt.Sprintf("error reading %s", file), cause)
}

// NewColumnNotFound reports a column a transform required but the frame does
// not have. The available column names are listed so bad exports are easy to
// diagnose from the log alone.
func NewColumnNotFound(column string, available []string) *AppError {
	return NewAppError(ErrTypeColumnNotFound,
		fmt.Sprintf("column %q not found, available columns: [%s]", column, strings.Join(available, ", ")), nil)
}

// NewInvalidArgument reports a caller error such as an out-of-range month or
// an unknown filter mode.
func NewInvalidArgument(message string) *AppError {
	return NewAppError(ErrTypeInvalidArgument, message, nil)
}
