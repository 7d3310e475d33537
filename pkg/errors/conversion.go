package errors

import (
	stderrors "errors"
)

// AsSDKError extracts an SDKError from an error chain
func AsSDKError(err error) (SDKError, bool) {
	var sdkErr SDKError
	if stderrors.As(err, &sdkErr) {
		return sdkErr, true
	}
	return nil, false
}

// CodeOf returns the SDK error code of err, or 0 when err carries none
func CodeOf(err error) int {
	if sdkErr, ok := AsSDKError(err); ok {
		return sdkErr.Code()
	}
	return 0
}

// IsInvalidAddress reports whether err is an invalid-address parse failure
func IsInvalidAddress(err error) bool {
	return CodeOf(err) == CodeInvalidAddress
}

// IsInvalidPort reports whether err is an invalid-port parse failure
func IsInvalidPort(err error) bool {
	return CodeOf(err) == CodeInvalidPort
}
