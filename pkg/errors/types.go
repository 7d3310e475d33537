// Package errors provides structured error handling for the runtime SDK.
// It defines error types carrying stable numeric codes, a category and a
// severity, plus typed data payloads for programmatic handling.
package errors

import (
	"fmt"
)

// Category represents the type/category of an error for classification and handling
type Category string

const (
	CategoryValidation Category = "validation"
	CategoryConfig     Category = "config"
	CategoryPayload    Category = "payload"
	CategoryInternal   Category = "internal"
)

// Severity indicates how critical an error is
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityError    Severity = "error"
	SeverityCritical Severity = "critical"
)

// SDKError defines the interface for all runtime SDK errors
type SDKError interface {
	error

	// Code returns the stable SDK error code
	Code() int

	// Message returns a human-readable error message
	Message() string

	// Details returns detailed technical description for debugging
	Details() string

	// Data returns structured error data for programmatic handling
	Data() interface{}

	// Category returns the error category for classification
	Category() Category

	// Severity returns the error severity level
	Severity() Severity

	// WithDetail returns a new error with additional detail
	WithDetail(detail string) SDKError

	// WithData returns a new error with structured data
	WithData(data interface{}) SDKError

	// Unwrap returns the underlying error for error chain traversal
	Unwrap() error

	// ToJSON returns the error as a JSON-serializable map
	ToJSON() map[string]interface{}
}

// baseError implements the SDKError interface
type baseError struct {
	code     int
	message  string
	details  string
	data     interface{}
	category Category
	severity Severity
	cause    error
}

// Error implements the error interface
func (e *baseError) Error() string {
	if e.details != "" {
		return fmt.Sprintf("%s: %s", e.message, e.details)
	}
	return e.message
}

// Code returns the stable SDK error code
func (e *baseError) Code() int {
	return e.code
}

// Message returns the human-readable error message
func (e *baseError) Message() string {
	return e.message
}

// Details returns detailed technical description
func (e *baseError) Details() string {
	return e.details
}

// Data returns structured error data
func (e *baseError) Data() interface{} {
	return e.data
}

// Category returns the error category
func (e *baseError) Category() Category {
	return e.category
}

// Severity returns the error severity
func (e *baseError) Severity() Severity {
	return e.severity
}

// WithDetail returns a new error with additional detail
func (e *baseError) WithDetail(detail string) SDKError {
	newErr := *e
	newErr.details = detail
	return &newErr
}

// WithData returns a new error with structured data
func (e *baseError) WithData(data interface{}) SDKError {
	newErr := *e
	newErr.data = data
	return &newErr
}

// Unwrap returns the underlying cause
func (e *baseError) Unwrap() error {
	return e.cause
}

// ToJSON returns the error as a JSON-serializable map
func (e *baseError) ToJSON() map[string]interface{} {
	result := map[string]interface{}{
		"code":     e.code,
		"message":  e.message,
		"category": string(e.category),
		"severity": string(e.severity),
	}
	if e.details != "" {
		result["details"] = e.details
	}
	if e.data != nil {
		result["data"] = e.data
	}
	return result
}

// NewError creates a new SDKError with the given properties
func NewError(code int, message string, category Category, severity Severity) SDKError {
	return &baseError{
		code:     code,
		message:  message,
		category: category,
		severity: severity,
	}
}

// NewErrorf creates a new SDKError with a formatted message
func NewErrorf(code int, category Category, severity Severity, format string, args ...interface{}) SDKError {
	return NewError(code, fmt.Sprintf(format, args...), category, severity)
}

// WrapError wraps an existing error into an SDKError, preserving the cause
// for errors.Is / errors.As traversal
func WrapError(cause error, code int, message string, category Category, severity Severity) SDKError {
	return &baseError{
		code:     code,
		message:  message,
		category: category,
		severity: severity,
		cause:    cause,
	}
}
