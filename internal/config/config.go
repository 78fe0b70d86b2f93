// Package config loads the service configuration from the environment, a .env file and an
// optional config file.
package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"

	"github.com/jonathan/posesug/internal/logger"
	"github.com/jonathan/posesug/internal/server/ratelimit"
)

// Config is the full service configuration. Environment variables override file values.
type Config struct {
	DashScope         DashScopeConfig  `json:"dashscope" yaml:"dashscope"`
	Vision            VisionConfig     `json:"vision" yaml:"vision"`
	Image             ImageConfig      `json:"image" yaml:"image"`
	Server            ServerConfig     `json:"server" yaml:"server"`
	Logger            logger.Config    `json:"log" yaml:"log"`
	RateLimit         ratelimit.Config `json:"rate_limit" yaml:"rate_limit"`
	DescriptionLocale string           `json:"description_locale" yaml:"description_locale" env:"DESCRIPTION_LOCALE" env-default:"zh"`
}

// DashScopeConfig holds the credential and endpoints of the model platform.
type DashScopeConfig struct {
	APIKey            string `json:"api_key" yaml:"api_key" env:"DASHSCOPE_API_KEY"`
	CompatibleBaseURL string `json:"compatible_base_url" yaml:"compatible_base_url" env:"DASHSCOPE_COMPATIBLE_BASE_URL" env-default:"https://dashscope.aliyuncs.com/compatible-mode/v1"`
	APIBaseURL        string `json:"api_base_url" yaml:"api_base_url" env:"DASHSCOPE_API_BASE_URL" env-default:"https://dashscope.aliyuncs.com/api/v1"`
}

// VisionConfig configures the suggestion model.
type VisionConfig struct {
	Provider     string        `json:"provider" yaml:"provider" env:"VISION_PROVIDER" env-default:"qwen"`
	Model        string        `json:"model" yaml:"model" env:"VISION_MODEL" env-default:"qwen3-vl-plus"`
	GeminiAPIKey string        `json:"gemini_api_key" yaml:"gemini_api_key" env:"GEMINI_API_KEY"`
	Temperature  float32       `json:"temperature" yaml:"temperature" env:"SUGGEST_TEMPERATURE" env-default:"0.95"`
	Timeout      time.Duration `json:"timeout" yaml:"timeout" env:"SUGGEST_TIMEOUT" env-default:"30s"`
}

// ImageConfig configures the diagram model.
type ImageConfig struct {
	Model              string        `json:"model" yaml:"model" env:"IMAGE_MODEL" env-default:"qwen-image-edit-plus"`
	ReferenceImagePath string        `json:"reference_image_path" yaml:"reference_image_path" env:"REFERENCE_IMAGE_PATH" env-default:"assets/reference.png"`
	Timeout            time.Duration `json:"timeout" yaml:"timeout" env:"DIAGRAM_TIMEOUT" env-default:"120s"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host           string `json:"host" yaml:"host" env:"HOST" env-default:"0.0.0.0"`
	Port           int    `json:"port" yaml:"port" env:"PORT" env-default:"9001"`
	MaxUploadBytes int64  `json:"max_upload_bytes" yaml:"max_upload_bytes" env:"MAX_UPLOAD_BYTES" env-default:"20971520"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// Load reads .env (if present), then the optional config file, then the environment.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("failed to read configuration from environment: %w", err)
		}
		return &cfg, nil
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks value ranges. Credentials are checked separately by RequireCredentials
// because offline commands run without them.
func (c *Config) Validate() error {
	switch c.Vision.Provider {
	case "qwen", "gemini":
	default:
		return fmt.Errorf("config error: 'vision.provider' must be qwen or gemini, got %q", c.Vision.Provider)
	}
	if c.Vision.Temperature < 0 || c.Vision.Temperature >= 2 {
		return fmt.Errorf("config error: 'vision.temperature' must be in [0, 2)")
	}
	if c.Vision.Timeout <= 0 {
		return fmt.Errorf("config error: 'vision.timeout' must be positive")
	}
	if c.Image.Timeout <= 0 {
		return fmt.Errorf("config error: 'image.timeout' must be positive")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("config error: 'server.port' must be between 1 and 65535")
	}
	if c.Server.MaxUploadBytes <= 0 {
		return fmt.Errorf("config error: 'server.max_upload_bytes' must be positive")
	}
	if c.RateLimit.Enabled && (c.RateLimit.DefaultLimit <= 0 || c.RateLimit.DefaultWindow <= 0) {
		return fmt.Errorf("config error: 'rate_limit.default_limit' and 'rate_limit.default_window' must be positive")
	}
	switch c.DescriptionLocale {
	case "zh", "en":
	default:
		return fmt.Errorf("config error: 'description_locale' must be zh or en, got %q", c.DescriptionLocale)
	}
	return nil
}

// RequireCredentials checks that the keys needed for remote model calls are set.
func (c *Config) RequireCredentials() error {
	if c.DashScope.APIKey == "" {
		return fmt.Errorf("config error: DASHSCOPE_API_KEY is required")
	}
	if c.Vision.Provider == "gemini" && c.Vision.GeminiAPIKey == "" {
		return fmt.Errorf("config error: GEMINI_API_KEY is required when the vision provider is gemini")
	}
	return nil
}

// RequireReferenceImage checks that the local reference image exists.
func (c *Config) RequireReferenceImage() error {
	if _, err := os.Stat(c.Image.ReferenceImagePath); err != nil {
		return fmt.Errorf("config error: reference image not found: %s", c.Image.ReferenceImagePath)
	}
	return nil
}
