package suggestion

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	prompt, err := BuildPrompt("拍全身照，显腿长", json.RawMessage(`{ "iso": 100, "lens": "<wide>" }`))
	require.NoError(t, err)

	assert.Contains(t, prompt, "用户拍摄意图：拍全身照，显腿长")
	assert.Contains(t, prompt, `相机参数：{"iso":100,"lens":"<wide>"}`)
	assert.NotContains(t, prompt, "{{.")
	assert.Contains(t, prompt, `"compositionGuide"`)
}

func TestBuildPrompt_Placeholders(t *testing.T) {
	tests := []struct {
		name   string
		intent string
		meta   json.RawMessage
	}{
		{name: "absent", intent: "", meta: nil},
		{name: "blank intent and null meta", intent: "   ", meta: json.RawMessage("null")},
		{name: "empty object meta", intent: "", meta: json.RawMessage("{}")},
		{name: "invalid meta", intent: "", meta: json.RawMessage("{oops")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prompt, err := BuildPrompt(tt.intent, tt.meta)
			require.NoError(t, err)
			assert.Contains(t, prompt, "用户拍摄意图：无")
			assert.Contains(t, prompt, "相机参数：无")
		})
	}
}
