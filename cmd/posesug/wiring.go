package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/jonathan/posesug/internal/config"
	"github.com/jonathan/posesug/internal/diagram"
	"github.com/jonathan/posesug/internal/llm"
	"github.com/jonathan/posesug/internal/logger"
	"github.com/jonathan/posesug/internal/suggestion"
	"github.com/jonathan/posesug/internal/types"
	"go.uber.org/zap"
)

// loadConfig reads and validates the configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logger.New(cfg.Logger)
}

// newVisionClient builds the suggestion model client for the configured provider.
func newVisionClient(ctx context.Context, cfg *config.Config) (llm.VisionClient, error) {
	provider, err := llm.ParseProvider(cfg.Vision.Provider)
	if err != nil {
		return nil, err
	}

	llmCfg := &llm.Config{
		Provider: provider,
		Model:    cfg.Vision.Model,
		BaseURL:  cfg.DashScope.CompatibleBaseURL,
		APIKey:   cfg.DashScope.APIKey,
	}
	if provider == llm.ProviderGemini {
		llmCfg.APIKey = cfg.Vision.GeminiAPIKey
		if llmCfg.Model == llm.DefaultQwenModel {
			llmCfg.Model = llm.DefaultGeminiModel
		}
	}
	return llm.NewVisionClient(ctx, llmCfg)
}

func newSuggestionClient(vision llm.VisionClient, cfg *config.Config, log *zap.Logger) *suggestion.Client {
	return suggestion.NewClient(vision,
		suggestion.WithTemperature(cfg.Vision.Temperature),
		suggestion.WithTimeout(cfg.Vision.Timeout),
		suggestion.WithLogger(log),
	)
}

func newDiagramClient(cfg *config.Config, log *zap.Logger) (*diagram.Client, error) {
	return diagram.NewClient(diagram.Config{
		APIKey:             cfg.DashScope.APIKey,
		BaseURL:            cfg.DashScope.APIBaseURL,
		Model:              cfg.Image.Model,
		ReferenceImagePath: cfg.Image.ReferenceImagePath,
		Timeout:            cfg.Image.Timeout,
		Locale:             cfg.DescriptionLocale,
	}, log)
}

// loadPoses reads a pose list from either a bare JSON array or a full suggestion object.
func loadPoses(path string) ([]types.PoseCandidate, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read poses file %s: %w", path, err)
	}

	trimmed := strings.TrimSpace(string(content))
	if strings.HasPrefix(trimmed, "[") {
		var poses []types.PoseCandidate
		if err := json.Unmarshal([]byte(trimmed), &poses); err != nil {
			return nil, fmt.Errorf("failed to unmarshal pose list JSON: %w", err)
		}
		return poses, nil
	}

	var result types.SuggestionResult
	if err := json.Unmarshal([]byte(trimmed), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suggestion JSON: %w", err)
	}
	return result.PoseSuggestions, nil
}
