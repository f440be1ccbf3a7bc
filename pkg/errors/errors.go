// Package errors provides custom error types for cafmerge.
// These errors enable programmatic error checking with errors.Is/errors.As
// and carry the path of the file that caused a failure.
package errors

import (
	"errors"
	"fmt"
)

// New returns an error that formats as the given text.
// It's an alias for the standard library errors.New for convenience.
var New = errors.New

// Is and As are re-exported so callers need a single errors import.
var (
	Is = errors.Is
	As = errors.As
)

// Common sentinel errors.
var (
	// ErrNotFound indicates that a requested file or entry was not found
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates that provided input was invalid
	ErrInvalidInput = errors.New("invalid input")

	// ErrLoad indicates that a resource definition source could not be loaded
	ErrLoad = errors.New("load failed")

	// ErrWrite indicates that the merged definitions could not be written
	ErrWrite = errors.New("write failed")
)

// LoadError reports a source that is missing, unreadable or not parseable
// as an array of resource definitions.
type LoadError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	if errors.Is(e.Err, ErrNotFound) {
		return fmt.Sprintf("error: %s does not exist", e.Path)
	}
	return fmt.Sprintf("error loading %s: %v", e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *LoadError) Is(target error) bool {
	return target == ErrLoad
}

// NewLoadError creates a new LoadError
func NewLoadError(path string, err error) *LoadError {
	return &LoadError{Path: path, Err: err}
}

// WriteError reports a destination that could not be created or written.
type WriteError struct {
	Path string
	Err  error
}

// Error implements the error interface
func (e *WriteError) Error() string {
	return fmt.Sprintf("error saving %s: %v", e.Path, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is support
func (e *WriteError) Is(target error) bool {
	return target == ErrWrite
}

// NewWriteError creates a new WriteError
func NewWriteError(path string, err error) *WriteError {
	return &WriteError{Path: path, Err: err}
}

// NotFoundError represents an error when a file or entry is not found
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Resource, e.ID)
}

// Is implements errors.Is support
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

// ValidationError represents a validation failure
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is support
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// NewValidationError creates a new ValidationError
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{Field: field, Value: value, Message: message}
}

// ConfigError represents a configuration error
type ConfigError struct {
	Component string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Component != "" {
		return fmt.Sprintf("configuration error in %s: %s", e.Component, msg)
	}
	return fmt.Sprintf("configuration error: %s", msg)
}

// Unwrap implements errors.Unwrap
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(component, message string, err error) *ConfigError {
	return &ConfigError{
		Component: component,
		Message:   message,
		Err:       err,
	}
}

// ParseError represents an error when parsing data formats
type ParseError struct {
	Format  string // "json" or "yaml"
	File    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("parse error in %s file %s: %s", e.Format, e.File, e.Message)
	}
	return fmt.Sprintf("%s parse error: %s", e.Format, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError creates a new ParseError
func NewParseError(format, file string, message string, err error) *ParseError {
	return &ParseError{
		Format:  format,
		File:    file,
		Message: message,
		Err:     err,
	}
}

// IOError represents an error during I/O operations
type IOError struct {
	Operation string // "read", "write", "create", "stat"
	Path      string
	Message   string
	Err       error
}

// Error implements the error interface
func (e *IOError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("IO error during %s of %s: %s", e.Operation, e.Path, e.Message)
	}
	return fmt.Sprintf("IO error during %s: %s", e.Operation, e.Message)
}

// Unwrap implements errors.Unwrap
func (e *IOError) Unwrap() error {
	return e.Err
}

// NewIOError creates a new IOError
func NewIOError(operation, path string, err error) *IOError {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &IOError{
		Operation: operation,
		Path:      path,
		Message:   message,
		Err:       err,
	}
}

// Helper functions for error checking

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsLoadError checks if an error happened while loading a source
func IsLoadError(err error) bool {
	return errors.Is(err, ErrLoad)
}

// IsWriteError checks if an error happened while writing the output
func IsWriteError(err error) bool {
	return errors.Is(err, ErrWrite)
}

// Helper wrapping functions for common patterns

// WrapIO wraps an error as an IOError
func WrapIO(operation, path string, err error) error {
	if err == nil {
		return nil
	}
	return NewIOError(operation, path, err)
}

// WrapParse wraps an error as a ParseError
func WrapParse(format, file string, err error) error {
	if err == nil {
		return nil
	}
	return NewParseError(format, file, err.Error(), err)
}

// WrapLoad wraps an error as a LoadError
func WrapLoad(path string, err error) error {
	if err == nil {
		return nil
	}
	return NewLoadError(path, err)
}

// WrapWrite wraps an error as a WriteError
func WrapWrite(path string, err error) error {
	if err == nil {
		return nil
	}
	return NewWriteError(path, err)
}
