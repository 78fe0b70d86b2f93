package suggestion

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"time"

	"github.com/jonathan/posesug/internal/imageenc"
	"github.com/jonathan/posesug/internal/llm"
	"github.com/jonathan/posesug/internal/logger"
	"github.com/jonathan/posesug/internal/observability"
	"go.uber.org/zap"
)

// Defaults for the sampling parameters.
const (
	DefaultTemperature = 0.95
	DefaultTimeout     = 30 * time.Second
	maxSeed            = 1_000_000
)

// Options are the per-request inputs besides the image.
type Options struct {
	UserIntent string
	Meta       json.RawMessage
	// Seed fixes the sampling seed; a random seed in [1, 1000000] is drawn when nil.
	Seed *int
}

// Client produces normalized pose suggestions for photos.
type Client struct {
	vision      llm.VisionClient
	temperature float32
	timeout     time.Duration
	logger      *zap.Logger
	seed        func() int
}

// Option configures a Client.
type Option func(*Client)

// WithTemperature overrides DefaultTemperature.
func WithTemperature(t float32) Option {
	return func(c *Client) { c.temperature = t }
}

// WithTimeout overrides DefaultTimeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = logger.OrNop(l) }
}

// NewClient creates a Client backed by vision.
func NewClient(vision llm.VisionClient, opts ...Option) *Client {
	c := &Client{
		vision:      vision,
		temperature: DefaultTemperature,
		timeout:     DefaultTimeout,
		logger:      zap.NewNop(),
		seed:        func() int { return rand.IntN(maxSeed) + 1 },
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Suggest sends the photo and prompt to the model and returns the normalized suggestion JSON.
func (c *Client) Suggest(ctx context.Context, image []byte, opts Options) (string, error) {
	mime, err := imageenc.SniffMIME(image)
	if err != nil {
		return "", err
	}
	dataURL, err := imageenc.EncodeDataURL(image)
	if err != nil {
		return "", err
	}

	prompt, err := BuildPrompt(opts.UserIntent, opts.Meta)
	if err != nil {
		return "", err
	}

	seed := c.seed()
	if opts.Seed != nil {
		seed = *opts.Seed
	}
	temperature := c.temperature

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	raw, err := c.vision.GenerateFromImage(ctx, llm.VisionRequest{
		Prompt:       prompt,
		ImageDataURL: dataURL,
		Image:        image,
		MIMEType:     mime,
		Temperature:  &temperature,
		Seed:         &seed,
	})
	observability.ObserveUpstream(observability.UpstreamSuggestion, start, err)
	if err != nil {
		return "", &APICallError{Message: "vision model call failed", Cause: err}
	}

	c.logger.Debug("vision model answered",
		zap.String("model", c.vision.Model()),
		zap.Int("seed", seed),
		zap.Duration("duration", time.Since(start)),
		zap.Int("response_bytes", len(raw)),
	)

	return Normalize(raw)
}
