package diagram

import (
	"github.com/jonathan/posesug/internal/pose"
	"github.com/jonathan/posesug/internal/prompts"
	"github.com/jonathan/posesug/internal/types"
)

// BuildPrompt renders the style-transfer instruction around a pose description. The orientation
// label is the one used in the description so the prompt can point at that line.
func BuildPrompt(description string, labels pose.Labels) (string, error) {
	return prompts.Render(prompts.DiagramFile, "style-transfer", map[string]string{
		"Description":      description,
		"OrientationLabel": labels.Parts[types.PartOrientation],
	})
}

// NegativePrompt lists what the generated image must not contain.
func NegativePrompt() (string, error) {
	return prompts.Get(prompts.DiagramFile, "negative-prompt")
}
