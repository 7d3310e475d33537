package errors

import (
	"fmt"
)

// AddressErrorData contains structured data for endpoint address errors
type AddressErrorData struct {
	Address string `json:"address,omitempty"`
	Port    string `json:"port,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

// InvalidAddress creates an error for address strings that match no
// recognized host:port or IPv6 shape
func InvalidAddress(address string) SDKError {
	return NewError(
		CodeInvalidAddress,
		fmt.Sprintf("Invalid address: %s", address),
		CategoryValidation,
		SeverityError,
	).WithData(&AddressErrorData{
		Address: address,
		Reason:  "address matches no recognized host:port or IPv6 shape",
	})
}

// InvalidPort creates an error for port substrings that do not parse as a
// base-10 port number
func InvalidPort(port string) SDKError {
	return NewError(
		CodeInvalidPort,
		fmt.Sprintf("Invalid port: %s", port),
		CategoryValidation,
		SeverityError,
	).WithData(&AddressErrorData{
		Port:   port,
		Reason: "port is not a base-10 integer in [0, 65535]",
	})
}
