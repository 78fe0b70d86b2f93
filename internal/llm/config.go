// Package llm provides the vision-language model clients used to analyze photos.
// Providers are interchangeable behind VisionClient.
package llm

import "fmt"

// Provider identifies a vision model backend.
type Provider string

// Supported providers.
const (
	// ProviderQwen is Qwen-VL served through DashScope's OpenAI-compatible mode.
	ProviderQwen Provider = "qwen"
	// ProviderGemini is Google Gemini.
	ProviderGemini Provider = "gemini"
)

// Default endpoints and models.
const (
	DefaultQwenBaseURL = "https://dashscope.aliyuncs.com/compatible-mode/v1"
	DefaultQwenModel   = "qwen3-vl-plus"
	DefaultGeminiModel = "gemini-2.5-flash"
)

// Config selects and configures a provider.
type Config struct {
	Provider Provider
	Model    string
	// BaseURL is only used by OpenAI-compatible providers.
	BaseURL string
	APIKey  string
}

// DefaultConfig returns the Qwen configuration.
func DefaultConfig() *Config {
	return DefaultQwenConfig()
}

// DefaultQwenConfig returns the DashScope Qwen-VL configuration without credentials.
func DefaultQwenConfig() *Config {
	return &Config{
		Provider: ProviderQwen,
		Model:    DefaultQwenModel,
		BaseURL:  DefaultQwenBaseURL,
	}
}

// DefaultGeminiConfig returns the Gemini configuration without credentials.
func DefaultGeminiConfig() *Config {
	return &Config{
		Provider: ProviderGemini,
		Model:    DefaultGeminiModel,
	}
}

// ParseProvider maps a configuration string to a Provider.
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderQwen, "":
		return ProviderQwen, nil
	case ProviderGemini:
		return ProviderGemini, nil
	default:
		return "", fmt.Errorf("unknown vision provider %q (expected %q or %q)", s, ProviderQwen, ProviderGemini)
	}
}

// WithModel returns a copy of c using model.
func (c *Config) WithModel(model string) *Config {
	clone := *c
	clone.Model = model
	return &clone
}

// WithAPIKey returns a copy of c using key.
func (c *Config) WithAPIKey(key string) *Config {
	clone := *c
	clone.APIKey = key
	return &clone
}
