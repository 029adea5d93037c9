// Package httputil provides HTTP status-code utilities for the projector.
package httputil

import "strconv"

// HTTP status code constants
const (
	StatusCodeLength = 3   // Standard length of HTTP status codes (e.g., "200", "404")
	MinStatusCode    = 100 // Minimum valid HTTP status code
	MaxStatusCode    = 599 // Maximum valid HTTP status code

	// StatusSuccess is the generic success code attached to every projected
	// operation, including one-way operations with no output message.
	StatusSuccess = "200"

	// FaultCodeBase is the first status code synthesized for WSDL fault
	// messages. Each additional fault on an operation gets the next code.
	FaultCodeBase = 500
)

// FaultCode returns the synthesized status code for the i-th fault message
// of an operation (0-based). Codes are capped at 599 to stay within the
// valid HTTP range; operations with more than 100 faults share the cap.
func FaultCode(i int) string {
	code := FaultCodeBase + i
	if code > MaxStatusCode {
		code = MaxStatusCode
	}
	return strconv.Itoa(code)
}

// ValidateStatusCode checks if a status code string is a valid numeric HTTP
// status code or the "default" keyword.
func ValidateStatusCode(code string) bool {
	if code == "default" {
		return true
	}
	if len(code) != StatusCodeLength {
		return false
	}
	n, err := strconv.Atoi(code)
	if err != nil {
		return false
	}
	return n >= MinStatusCode && n <= MaxStatusCode
}
