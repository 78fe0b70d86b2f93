package main

import (
	"fmt"

	"github.com/jonathan/posesug/internal/diagram"
	"github.com/jonathan/posesug/internal/observability"
	"github.com/spf13/cobra"
)

var diagramCmd = &cobra.Command{
	Use:   "diagram",
	Short: "Draw the preferred pose",
	Long:  "Selects the highest-priority pose from a pose JSON file and asks the image-edit model for a stick-figure diagram of it. Prints the image URL.",
	RunE:  runDiagram,
}

var (
	diagramPoses        string
	diagramReferenceURL string
)

func init() {
	diagramCmd.Flags().StringVarP(&diagramPoses, "poses", "p", "", "Path to the pose JSON file (required)")
	diagramCmd.Flags().StringVar(&diagramReferenceURL, "reference-url", "", "Style reference image URL (defaults to REFERENCE_IMAGE_PATH)")

	if err := diagramCmd.MarkFlagRequired("poses"); err != nil {
		panic(fmt.Sprintf("failed to mark poses flag as required: %v", err))
	}

	rootCmd.AddCommand(diagramCmd)
}

func runDiagram(cmd *cobra.Command, _ []string) error {
	poses, err := loadPoses(diagramPoses)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireCredentials(); err != nil {
		return err
	}
	if diagramReferenceURL == "" {
		if err := cfg.RequireReferenceImage(); err != nil {
			return err
		}
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	client, err := newDiagramClient(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to create diagram client: %w", err)
	}

	url, err := client.Generate(cmd.Context(), poses, diagram.Options{ReferenceImageURL: diagramReferenceURL})
	if err != nil {
		return err
	}

	observability.NewPrinter(cmd.OutOrStdout()).PrintDiagram(url)
	return nil
}
