package errors

// SDK error codes, grouped by concern. Codes are stable across releases so
// callers can switch on them programmatically.
const (
	// Address parsing errors (1000-1099)
	CodeInvalidAddress int = 1000 // Address string matches no recognized shape
	CodeInvalidPort    int = 1001 // Extracted port is not a valid port number

	// Validation errors (1100-1199)
	CodeValidationError  int = 1100 // Generic validation failure
	CodeInvalidParameter int = 1101 // Parameter value out of range or wrong type
	CodeMissingParameter int = 1102 // Required parameter absent

	// Configuration errors (1200-1299)
	CodeConfigLoadError int = 1200 // Environment defaults could not be loaded

	// Payload errors (1300-1399)
	CodeSerializationError int = 1300 // Event payload could not be serialized
	CodeDecodeError        int = 1301 // Sidecar payload could not be decoded
)
