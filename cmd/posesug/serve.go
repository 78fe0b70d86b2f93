package main

import (
	"fmt"

	"github.com/jonathan/posesug/internal/guidance"
	"github.com/jonathan/posesug/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes POST /posesug (and its gateway alias POST /api/frame/analyze), /health and /metrics.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind (overrides HOST)")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveHost != "" {
		cfg.Server.Host = serveHost
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.RequireCredentials(); err != nil {
		return err
	}
	if err := cfg.RequireReferenceImage(); err != nil {
		return err
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	vision, err := newVisionClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to create vision client: %w", err)
	}
	defer vision.Close()

	diagrams, err := newDiagramClient(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create diagram client: %w", err)
	}

	svc := guidance.NewService(newSuggestionClient(vision, cfg, log), diagrams, cfg.DescriptionLocale, log)

	log.Info("Configuration loaded",
		zap.String("vision_provider", cfg.Vision.Provider),
		zap.String("vision_model", vision.Model()),
		zap.String("image_model", cfg.Image.Model),
		zap.String("locale", cfg.DescriptionLocale),
		zap.Bool("rate_limit", cfg.RateLimit.Enabled),
	)

	srv := server.New(server.Config{
		Addr:           cfg.Server.Addr(),
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		RateLimit:      &cfg.RateLimit,
	}, svc, log)

	return srv.Start(ctx)
}
