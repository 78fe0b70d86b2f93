// Package server provides the HTTP API of the pose suggestion service.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/posesug/internal/pose"
	"github.com/jonathan/posesug/internal/suggestion"
)

// ValidationError indicates a malformed request. Message is returned to the caller verbatim.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// ErrorDetail returns the client-facing message for err.
func ErrorDetail(err error) string {
	var (
		validationErr *ValidationError
		formatErr     *suggestion.UpstreamFormatError
		missingErr    *pose.MissingFieldError
	)
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Message
	case errors.As(err, &formatErr):
		msg := formatErr.Message
		if formatErr.Cause != nil {
			msg = fmt.Sprintf("%s: %v", msg, formatErr.Cause)
		}
		return "姿势建议解析失败：" + msg
	case errors.As(err, &missingErr):
		return "姿势建议数据缺失字段：" + missingErr.Error()
	default:
		return "业务处理失败：" + err.Error()
	}
}
