// Package schemas holds the JSON Schema documents describing the model contracts.
package schemas

import "embed"

// PoseSuggestionsFile is the schema of the suggestion model's JSON answer.
const PoseSuggestionsFile = "pose_suggestions.schema.json"

//go:embed *.schema.json
var files embed.FS

// Read returns the raw content of an embedded schema file.
func Read(name string) ([]byte, error) {
	return files.ReadFile(name)
}

// PoseSuggestions returns the suggestion contract schema.
func PoseSuggestions() string {
	data, err := files.ReadFile(PoseSuggestionsFile)
	if err != nil {
		panic("embedded schema missing: " + PoseSuggestionsFile)
	}
	return string(data)
}
