package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// QwenClient implements VisionClient over an OpenAI-compatible chat completions API.
type QwenClient struct {
	client *openai.Client
	model  string
}

// NewQwenClient creates a client for config.BaseURL.
func NewQwenClient(config *Config) (*QwenClient, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	model := config.Model
	if model == "" {
		model = DefaultQwenModel
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	clientConfig.BaseURL = config.BaseURL
	if clientConfig.BaseURL == "" {
		clientConfig.BaseURL = DefaultQwenBaseURL
	}

	return &QwenClient{
		client: openai.NewClientWithConfig(clientConfig),
		model:  model,
	}, nil
}

// GenerateFromImage sends the image followed by the prompt as a single user message.
func (c *QwenClient) GenerateFromImage(ctx context.Context, req VisionRequest) (string, error) {
	if req.ImageDataURL == "" {
		return "", fmt.Errorf("image data URL is required")
	}

	chatReq := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{
						Type:     openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{URL: req.ImageDataURL},
					},
					{
						Type: openai.ChatMessagePartTypeText,
						Text: req.Prompt,
					},
				},
			},
		},
		Seed: req.Seed,
	}
	if req.Temperature != nil {
		chatReq.Temperature = *req.Temperature
	}

	resp, err := c.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", ErrEmptyResponse
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// Model returns the model name.
func (c *QwenClient) Model() string {
	return c.model
}

// Close is a no-op; the HTTP client holds no resources that need releasing.
func (c *QwenClient) Close() error {
	return nil
}
