package xlreport

import (
	"errors"
	"fmt"
)

// ErrNoActiveSheet indicates a placement call before any sheet was
// created or activated.
var ErrNoActiveSheet = errors.New("no active sheet")

// ErrSheetNotFound indicates a reference to a sheet name that does not
// exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ConfigError represents an invalid theme document.
type ConfigError struct {
	Path string
	Key  string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("theme %q: missing required key %q (required: %v)", e.Path, e.Key, requiredThemeKeys)
	}
	return fmt.Sprintf("theme %q: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a ConfigError for a missing theme key.
func NewConfigError(path, key string) *ConfigError {
	return &ConfigError{Path: path, Key: key}
}

// UnsupportedValueError represents a table cell value that cannot be
// rendered as a number or string.
type UnsupportedValueError struct {
	Value any
}

func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("unsupported cell value of type %T", e.Value)
}
