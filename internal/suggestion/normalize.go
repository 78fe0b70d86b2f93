package suggestion

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/jonathan/posesug/internal/llm"
	"github.com/jonathan/posesug/internal/pose"
	"github.com/jonathan/posesug/internal/schemas"
	"github.com/jonathan/posesug/internal/types"
)

// Normalize turns a raw model answer into the canonical suggestion document: poses sorted by
// priority and renumbered p001, p002, ..., serialized as indented JSON with non-ASCII text kept
// as is.
func Normalize(raw string) (string, error) {
	cleaned := llm.CleanJSONBlock(raw)
	if !json.Valid([]byte(cleaned)) {
		return "", &UpstreamFormatError{Message: "model response is not valid JSON", Raw: raw}
	}

	if err := schemas.ValidateSuggestion(cleaned); err != nil {
		return "", &UpstreamFormatError{Message: "model response does not match the suggestion format", Raw: raw, Cause: err}
	}

	var result types.SuggestionResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return "", &UpstreamFormatError{Message: "failed to decode model response", Raw: raw, Cause: err}
	}

	if len(result.PoseSuggestions) > 0 {
		sorted, err := pose.SortByPriority(result.PoseSuggestions)
		if err != nil {
			return "", &UpstreamFormatError{Message: "model response has an invalid pose list", Raw: raw, Cause: err}
		}
		for i := range sorted {
			sorted[i].ID = poseID(i)
		}
		result.PoseSuggestions = sorted
	} else {
		result.PoseSuggestions = []types.PoseCandidate{}
	}

	return marshalIndent(result)
}

func poseID(index int) string {
	return fmt.Sprintf("p%03d", index+1)
}

func marshalIndent(v interface{}) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("failed to encode suggestion: %w", err)
	}
	return string(bytes.TrimRight(buf.Bytes(), "\n")), nil
}
