// Package suggestion asks the vision-language model for pose and composition advice and
// normalizes its answer.
package suggestion

import "fmt"

// APICallError is returned when the vision model cannot be reached or refuses the request.
type APICallError struct {
	Message string
	Cause   error
}

func (e *APICallError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *APICallError) Unwrap() error {
	return e.Cause
}

// UpstreamFormatError is returned when the model's answer is not the expected JSON.
// Raw holds the answer as received.
type UpstreamFormatError struct {
	Message string
	Raw     string
	Cause   error
}

func (e *UpstreamFormatError) Error() string {
	msg := e.Message
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Cause)
	}
	return fmt.Sprintf("%s (raw response: %s)", msg, e.Raw)
}

func (e *UpstreamFormatError) Unwrap() error {
	return e.Cause
}
