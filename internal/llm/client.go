package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned when a provider answers without any text.
var ErrEmptyResponse = errors.New("empty response from vision model")

// VisionRequest is one prompt about one image.
type VisionRequest struct {
	Prompt string
	// ImageDataURL is the image as a data URL, used by OpenAI-compatible providers.
	ImageDataURL string
	// Image and MIMEType carry the raw bytes for providers that take inline blobs.
	Image    []byte
	MIMEType string
	// Temperature is passed through when non-nil.
	Temperature *float32
	// Seed is passed through when non-nil and the provider supports it.
	Seed *int
}

// VisionClient answers a text prompt about an image.
type VisionClient interface {
	// GenerateFromImage returns the model's raw text answer.
	GenerateFromImage(ctx context.Context, req VisionRequest) (string, error)
	// Model returns the model name requests are sent to.
	Model() string
	// Close releases any resources held by the client.
	Close() error
}

// NewVisionClient creates the client for config.Provider.
func NewVisionClient(ctx context.Context, config *Config) (VisionClient, error) {
	if config == nil {
		config = DefaultConfig()
	}

	switch config.Provider {
	case ProviderGemini:
		return NewGeminiClient(ctx, config)
	case ProviderQwen, "":
		return NewQwenClient(config)
	default:
		return nil, fmt.Errorf("unsupported vision provider %q", config.Provider)
	}
}
