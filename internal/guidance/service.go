// Package guidance runs a photo through the suggestion and diagram models and assembles the
// answer returned to the camera client.
package guidance

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/jonathan/posesug/internal/diagram"
	"github.com/jonathan/posesug/internal/logger"
	"github.com/jonathan/posesug/internal/pose"
	"github.com/jonathan/posesug/internal/suggestion"
	"github.com/jonathan/posesug/internal/types"
	"go.uber.org/zap"
)

// Suggester returns the normalized suggestion JSON for a photo.
type Suggester interface {
	Suggest(ctx context.Context, image []byte, opts suggestion.Options) (string, error)
}

// DiagramGenerator returns the URL of a diagram of the preferred pose.
type DiagramGenerator interface {
	Generate(ctx context.Context, poses []types.PoseCandidate, opts diagram.Options) (string, error)
}

// Request is one photo with its session and shooting context.
type Request struct {
	SessionID  string
	Image      []byte
	UserIntent string
	Meta       json.RawMessage
}

// Service orchestrates one suggestion round trip.
type Service struct {
	suggester Suggester
	diagrams  DiagramGenerator
	locale    string
	logger    *zap.Logger
}

// NewService wires the two model clients. locale selects the guide text wording.
func NewService(suggester Suggester, diagrams DiagramGenerator, locale string, log *zap.Logger) *Service {
	return &Service{
		suggester: suggester,
		diagrams:  diagrams,
		locale:    locale,
		logger:    logger.OrNop(log),
	}
}

// Suggest runs suggestion then diagram generation. Any failure ends the request.
func (s *Service) Suggest(ctx context.Context, req Request) (*types.PosesugResponse, error) {
	log := s.logger.With(zap.String("session_id", req.SessionID))
	start := time.Now()

	raw, err := s.suggester.Suggest(ctx, req.Image, suggestion.Options{
		UserIntent: req.UserIntent,
		Meta:       req.Meta,
	})
	if err != nil {
		return nil, err
	}

	var result types.SuggestionResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return nil, &suggestion.UpstreamFormatError{Message: "failed to decode normalized suggestion", Raw: raw, Cause: err}
	}
	log.Info("Pose suggestions received",
		zap.Int("pose_count", len(result.PoseSuggestions)),
		zap.Duration("duration", time.Since(start)),
	)

	diagramStart := time.Now()
	imageURL, err := s.diagrams.Generate(ctx, result.PoseSuggestions, diagram.Options{})
	if err != nil {
		return nil, err
	}
	log.Info("Pose diagram ready", zap.Duration("duration", time.Since(diagramStart)))

	poses := result.PoseSuggestions
	if poses == nil {
		poses = []types.PoseCandidate{}
	}

	return &types.PosesugResponse{
		SessionID:       req.SessionID,
		PoseImageURL:    imageURL,
		GuideText:       ComposeGuideText(result.CompositionGuide, s.locale),
		VoiceAudioText:  result.VoiceGuide,
		PoseSuggestions: poses,
	}, nil
}

// ComposeGuideText joins the four composition fields into one sentence for display.
func ComposeGuideText(g types.CompositionGuide, locale string) string {
	if pose.NormalizeLocale(locale) == pose.LocaleEN {
		return strings.Join([]string{
			"Framing: " + g.Framing,
			"Angle: " + g.Angle,
			"Background: " + g.Background,
			"Balance: " + g.Symmetry,
		}, "; ")
	}
	return "构图建议：" + g.Framing +
		"；拍摄角度：" + g.Angle +
		"；背景处理：" + g.Background +
		"；构图平衡：" + g.Symmetry
}
