package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const schemaPath = "../../schemas/pose_suggestions.schema.json"

func TestValidateJSON_SuggestionFiles(t *testing.T) {
	tests := []struct {
		name      string
		jsonFile  string
		wantError bool
	}{
		{name: "valid suggestion", jsonFile: "testdata/valid_suggestion.json"},
		{name: "missing voice guide", jsonFile: "testdata/missing_voice_guide.json", wantError: true},
		{name: "string priority", jsonFile: "testdata/string_priority.json", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(schemaPath, tt.jsonFile)
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "expected ValidationError, got %T: %v", err, err)
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	err := ValidateJSON("testdata/nonexistent_schema.json", "testdata/valid_suggestion.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, "testdata/nonexistent.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_MalformedJSON(t *testing.T) {
	malformed := filepath.Join(t.TempDir(), "malformed.json")
	require.NoError(t, os.WriteFile(malformed, []byte("{ invalid json }"), 0644))

	err := ValidateJSON(schemaPath, malformed)
	require.Error(t, err)
	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok, "expected SchemaLoadError, got %T", err)
}

func TestValidateSuggestion(t *testing.T) {
	data, err := os.ReadFile("testdata/valid_suggestion.json")
	require.NoError(t, err)
	assert.NoError(t, ValidateSuggestion(string(data)))

	data, err = os.ReadFile("testdata/missing_voice_guide.json")
	require.NoError(t, err)
	err = ValidateSuggestion(string(data))
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Contains(t, validationErr.Summary(), "voiceGuide")
}

func TestValidateSuggestion_NotJSON(t *testing.T) {
	err := ValidateSuggestion("here are some poses")
	require.Error(t, err)
	_, ok := err.(*SchemaLoadError)
	assert.True(t, ok)
}

func TestValidateJSONString_NestedField(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["guide"],
		"properties": {
			"guide": {
				"type": "object",
				"required": ["angle"],
				"properties": {"angle": {"type": "string"}}
			}
		}
	}`

	err := ValidateJSONString(schemaContent, `{"guide": {}}`)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.Len(t, validationErr.Errors, 1)
	assert.Contains(t, validationErr.Errors[0].Field, "guide")
	assert.Contains(t, validationErr.Errors[0].Message, "angle")
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "voiceGuide", Message: "is required"},
			{Field: "poseSuggestions.0.priority", Message: "must be an integer"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. voiceGuide: is required")
	assert.Contains(t, msg, "2. poseSuggestions.0.priority")
	assert.Equal(t, "voiceGuide: is required; poseSuggestions.0.priority: must be an integer", err.Summary())
}
