package diagram

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationFailedError(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := fmt.Errorf("diagram: %w", &GenerationFailedError{Message: "http request failed", Cause: cause})

	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "status: 0")
	assert.Contains(t, err.Error(), "connection refused")
}

func TestGenerationFailedError_RequestID(t *testing.T) {
	err := &GenerationFailedError{StatusCode: 429, Code: "Throttling", Message: "Requests rate limit exceeded", RequestID: "abc"}
	assert.Equal(t,
		"pose diagram generation failed - status: 429, code: Throttling, message: Requests rate limit exceeded, request_id: abc",
		err.Error())
}
