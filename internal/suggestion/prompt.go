package suggestion

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jonathan/posesug/internal/prompts"
)

// placeholder stands in for an absent intent or camera metadata.
const placeholder = "无"

// BuildPrompt renders the suggestion prompt for a shooting intent and camera metadata.
func BuildPrompt(userIntent string, meta json.RawMessage) (string, error) {
	intent := strings.TrimSpace(userIntent)
	if intent == "" {
		intent = placeholder
	}

	return prompts.Render(prompts.SuggestionFile, "pose-suggestion", map[string]string{
		"UserIntent": intent,
		"Meta":       formatMeta(meta),
	})
}

// formatMeta renders metadata as compact JSON. Empty, null and {} metadata count as absent,
// and so does metadata that is not valid JSON.
func formatMeta(meta json.RawMessage) string {
	if len(bytes.TrimSpace(meta)) == 0 {
		return placeholder
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, meta); err != nil {
		return placeholder
	}
	switch buf.String() {
	case "null", "{}", `""`:
		return placeholder
	}
	return buf.String()
}
