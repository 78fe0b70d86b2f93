// Package diagram renders the preferred pose as a stick-figure image with an image-edit model.
package diagram

import (
	"errors"
	"fmt"
)

// ErrGenerationFailed matches every GenerationFailedError via errors.Is.
var ErrGenerationFailed = errors.New("pose diagram generation failed")

// GenerationFailedError carries what the image API reported about a failed call. StatusCode is
// zero when no HTTP response was received.
type GenerationFailedError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
	Cause      error
}

func (e *GenerationFailedError) Error() string {
	msg := fmt.Sprintf("%v - status: %d, code: %s, message: %s", ErrGenerationFailed, e.StatusCode, e.Code, e.Message)
	if e.RequestID != "" {
		msg += ", request_id: " + e.RequestID
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *GenerationFailedError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrGenerationFailed.
func (e *GenerationFailedError) Is(target error) bool {
	return target == ErrGenerationFailed
}
