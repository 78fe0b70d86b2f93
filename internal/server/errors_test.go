package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jonathan/posesug/internal/diagram"
	"github.com/jonathan/posesug/internal/pose"
	"github.com/jonathan/posesug/internal/suggestion"
	"github.com/stretchr/testify/assert"
)

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "sessionId", Message: "参数错误：sessionId不能为空"}
	assert.Equal(t, "validation error: sessionId - 参数错误：sessionId不能为空", err.Error())
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "validation", err: &ValidationError{Field: "meta"}, expected: http.StatusBadRequest},
		{name: "wrapped validation", err: fmt.Errorf("parse: %w", &ValidationError{Field: "image"}), expected: http.StatusBadRequest},
		{name: "upstream format", err: &suggestion.UpstreamFormatError{Message: "bad"}, expected: http.StatusInternalServerError},
		{name: "vision call", err: &suggestion.APICallError{Message: "down"}, expected: http.StatusInternalServerError},
		{name: "diagram", err: &diagram.GenerationFailedError{StatusCode: 400}, expected: http.StatusInternalServerError},
		{name: "empty poses", err: pose.ErrEmptyInput, expected: http.StatusInternalServerError},
		{name: "plain", err: errors.New("boom"), expected: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestErrorDetail(t *testing.T) {
	var syntaxErr error = &json.SyntaxError{}

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation message is passed through",
			err:      &ValidationError{Field: "meta", Message: "参数错误：meta不是合法的JSON字符串"},
			expected: "参数错误：meta不是合法的JSON字符串",
		},
		{
			name:     "format error hides the raw answer",
			err:      &suggestion.UpstreamFormatError{Message: "response is not valid JSON", Raw: "secret", Cause: syntaxErr},
			expected: "姿势建议解析失败：response is not valid JSON: " + syntaxErr.Error(),
		},
		{
			name:     "missing field",
			err:      fmt.Errorf("select: %w", &pose.MissingFieldError{Index: 1, Field: "priority"}),
			expected: `姿势建议数据缺失字段：pose candidate 1 is missing field "priority"`,
		},
		{
			name:     "anything else",
			err:      errors.New("boom"),
			expected: "业务处理失败：boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ErrorDetail(tt.err))
		})
	}
}
