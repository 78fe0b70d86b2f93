package diagram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jonathan/posesug/internal/imageenc"
	"github.com/jonathan/posesug/internal/logger"
	"github.com/jonathan/posesug/internal/observability"
	"github.com/jonathan/posesug/internal/pose"
	"github.com/jonathan/posesug/internal/types"
	"go.uber.org/zap"
)

// Defaults for Config.
const (
	DefaultBaseURL = "https://dashscope.aliyuncs.com/api/v1"
	DefaultModel   = "qwen-image-edit-plus"
	DefaultTimeout = 120 * time.Second

	generationPath = "/services/aigc/multimodal-generation/generation"
	maxErrorBody   = 4096
)

// Config configures the image-edit client.
type Config struct {
	APIKey             string
	BaseURL            string
	Model              string
	ReferenceImagePath string
	Timeout            time.Duration
	// Locale selects the description labels (see pose.LabelsFor).
	Locale string
}

// Options are per-call overrides.
type Options struct {
	// ReferenceImageURL replaces the configured reference file when non-empty. It may be an
	// http(s) URL or a data URL.
	ReferenceImageURL string
}

// Client calls the DashScope multimodal generation API.
type Client struct {
	cfg        Config
	labels     pose.Labels
	httpClient *http.Client
	logger     *zap.Logger
}

// NewClient validates cfg and fills in defaults.
func NewClient(cfg Config, log *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		cfg:        cfg,
		labels:     pose.LabelsFor(cfg.Locale),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger.OrNop(log),
	}, nil
}

type generationRequest struct {
	Model      string               `json:"model"`
	Input      generationInput      `json:"input"`
	Parameters generationParameters `json:"parameters"`
}

type generationInput struct {
	Messages []message `json:"messages"`
}

type message struct {
	Role    string        `json:"role"`
	Content []contentItem `json:"content"`
}

type contentItem struct {
	Image string `json:"image,omitempty"`
	Text  string `json:"text,omitempty"`
}

type generationParameters struct {
	N              int    `json:"n"`
	Watermark      bool   `json:"watermark"`
	NegativePrompt string `json:"negative_prompt"`
	PromptExtend   bool   `json:"prompt_extend"`
}

type generationResponse struct {
	RequestID string `json:"request_id"`
	Code      string `json:"code"`
	Message   string `json:"message"`
	Output    struct {
		Choices []struct {
			Message message `json:"message"`
		} `json:"choices"`
	} `json:"output"`
}

// Generate draws the highest-priority pose and returns the hosted image URL.
func (c *Client) Generate(ctx context.Context, poses []types.PoseCandidate, opts Options) (string, error) {
	selected, err := pose.SelectHighestPriority(poses)
	if err != nil {
		return "", err
	}
	description := pose.RenderDescriptionWith(selected, c.labels)

	reference := opts.ReferenceImageURL
	if reference == "" {
		reference, err = imageenc.EncodeFile(c.cfg.ReferenceImagePath)
		if err != nil {
			return "", fmt.Errorf("failed to load reference image: %w", err)
		}
	}

	prompt, err := BuildPrompt(description, c.labels)
	if err != nil {
		return "", err
	}
	negative, err := NegativePrompt()
	if err != nil {
		return "", err
	}

	log := c.logger.With(zap.String("pose_id", selected.ID), zap.String("model", c.cfg.Model))
	log.Debug("Generating pose diagram", zap.String("description", description))

	ctx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	start := time.Now()
	url, err := c.call(ctx, generationRequest{
		Model: c.cfg.Model,
		Input: generationInput{
			Messages: []message{
				{
					Role:    "user",
					Content: []contentItem{{Image: reference}, {Text: prompt}},
				},
			},
		},
		Parameters: generationParameters{
			N:              1,
			Watermark:      false,
			NegativePrompt: negative,
			PromptExtend:   true,
		},
	})
	observability.ObserveUpstream(observability.UpstreamDiagram, start, err)
	if err != nil {
		log.Error("Image model call failed", zap.Error(err))
		return "", err
	}

	log.Info("Pose diagram generated", zap.Duration("duration", time.Since(start)))
	return url, nil
}

func (c *Client) call(ctx context.Context, payload generationRequest) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+generationPath, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &GenerationFailedError{Message: "http request failed", Cause: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &GenerationFailedError{StatusCode: resp.StatusCode, Message: "failed to read response body", Cause: err}
	}

	var parsed generationResponse
	decodeErr := json.Unmarshal(respBody, &parsed)

	if resp.StatusCode != http.StatusOK {
		failure := &GenerationFailedError{
			StatusCode: resp.StatusCode,
			Code:       parsed.Code,
			Message:    parsed.Message,
			RequestID:  parsed.RequestID,
		}
		if decodeErr != nil || failure.Message == "" {
			failure.Message = truncate(string(respBody), maxErrorBody)
		}
		return "", failure
	}

	if decodeErr != nil {
		return "", &GenerationFailedError{StatusCode: resp.StatusCode, Message: "malformed response body", Cause: decodeErr}
	}
	if parsed.Code != "" {
		return "", &GenerationFailedError{StatusCode: resp.StatusCode, Code: parsed.Code, Message: parsed.Message, RequestID: parsed.RequestID}
	}

	if len(parsed.Output.Choices) > 0 {
		for _, item := range parsed.Output.Choices[0].Message.Content {
			if item.Image != "" {
				return item.Image, nil
			}
		}
	}
	return "", &GenerationFailedError{StatusCode: resp.StatusCode, Message: "response contains no image", RequestID: parsed.RequestID}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
