package errors

import (
	"fmt"
)

// ParameterErrorData contains structured data for parameter-related errors
type ParameterErrorData struct {
	Parameter string      `json:"parameter"`
	Value     interface{} `json:"value,omitempty"`
	Required  bool        `json:"required,omitempty"`
	Reason    string      `json:"reason,omitempty"`
}

// DecodeErrorData contains structured data for payload decode errors
type DecodeErrorData struct {
	Payload string `json:"payload"`
	Key     string `json:"key,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// ValidationError creates a generic validation error
func ValidationError(message string) SDKError {
	return NewError(CodeValidationError, message, CategoryValidation, SeverityError)
}

// ValidationErrorf creates a generic validation error with formatting
func ValidationErrorf(format string, args ...interface{}) SDKError {
	return NewErrorf(CodeValidationError, CategoryValidation, SeverityError, format, args...)
}

// InvalidParameter creates an error for invalid parameter values
func InvalidParameter(param string, value interface{}, expected string) SDKError {
	return NewError(
		CodeInvalidParameter,
		fmt.Sprintf("Invalid parameter '%s': expected %s, got %v", param, expected, value),
		CategoryValidation,
		SeverityError,
	).WithData(&ParameterErrorData{
		Parameter: param,
		Value:     value,
		Reason:    fmt.Sprintf("expected %s", expected),
	})
}

// MissingParameter creates an error for missing required parameters
func MissingParameter(param string) SDKError {
	return NewError(
		CodeMissingParameter,
		fmt.Sprintf("Missing required parameter: %s", param),
		CategoryValidation,
		SeverityError,
	).WithData(&ParameterErrorData{
		Parameter: param,
		Required:  true,
	})
}

// ConfigLoadError creates an error for environment defaults that could not
// be loaded
func ConfigLoadError(cause error) SDKError {
	message := "Failed to load runtime defaults from environment"
	if cause != nil {
		message = fmt.Sprintf("%s: %s", message, cause.Error())
	}
	return WrapError(cause, CodeConfigLoadError, message, CategoryConfig, SeverityCritical)
}

// SerializationError creates an error for event payloads that could not be
// serialized
func SerializationError(cause error) SDKError {
	message := "Failed to serialize event payload"
	if cause != nil {
		message = fmt.Sprintf("%s: %s", message, cause.Error())
	}
	return WrapError(cause, CodeSerializationError, message, CategoryPayload, SeverityError)
}

// DecodeError creates an error for sidecar payloads that could not be
// decoded into the expected shape
func DecodeError(payload, key string, cause error) SDKError {
	message := fmt.Sprintf("Failed to decode %s", payload)
	if key != "" {
		message = fmt.Sprintf("Failed to decode %s '%s'", payload, key)
	}
	if cause != nil {
		message = fmt.Sprintf("%s: %s", message, cause.Error())
	}

	var reason string
	if cause != nil {
		reason = cause.Error()
	}

	return WrapError(
		cause,
		CodeDecodeError,
		message,
		CategoryPayload,
		SeverityError,
	).WithData(&DecodeErrorData{
		Payload: payload,
		Key:     key,
		Reason:  reason,
	})
}
