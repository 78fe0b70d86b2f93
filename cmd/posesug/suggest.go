package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/posesug/internal/observability"
	"github.com/jonathan/posesug/internal/suggestion"
	"github.com/jonathan/posesug/internal/types"
	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest poses for a photo",
	Long:  "Sends a photo to the vision-language model and prints the normalized pose suggestion JSON (poses sorted by priority, ids p001, p002, ...).",
	RunE:  runSuggest,
}

var (
	suggestImage   string
	suggestIntent  string
	suggestMeta    string
	suggestSeed    int
	suggestOutput  string
	suggestSummary bool
)

func init() {
	suggestCmd.Flags().StringVarP(&suggestImage, "image", "i", "", "Path to the photo (required)")
	suggestCmd.Flags().StringVar(&suggestIntent, "intent", "", "Shooting intent, e.g. \"全身照 显腿长\"")
	suggestCmd.Flags().StringVar(&suggestMeta, "meta", "", "Camera metadata as a JSON string")
	suggestCmd.Flags().IntVar(&suggestSeed, "seed", 0, "Sampling seed (random when 0)")
	suggestCmd.Flags().StringVarP(&suggestOutput, "out", "o", "", "Write the JSON to this file instead of stdout")
	suggestCmd.Flags().BoolVar(&suggestSummary, "summary", false, "Also print a readable summary")

	if err := suggestCmd.MarkFlagRequired("image"); err != nil {
		panic(fmt.Sprintf("failed to mark image flag as required: %v", err))
	}

	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	if suggestMeta != "" && !json.Valid([]byte(suggestMeta)) {
		return fmt.Errorf("--meta is not valid JSON")
	}

	image, err := os.ReadFile(suggestImage)
	if err != nil {
		return fmt.Errorf("failed to read image file %s: %w", suggestImage, err)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.RequireCredentials(); err != nil {
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

	opts := suggestion.Options{UserIntent: suggestIntent}
	if suggestMeta != "" {
		opts.Meta = json.RawMessage(suggestMeta)
	}
	if suggestSeed != 0 {
		opts.Seed = &suggestSeed
	}

	result, err := newSuggestionClient(vision, cfg, log).Suggest(ctx, image, opts)
	if err != nil {
		return fmt.Errorf("failed to suggest poses: %w", err)
	}

	if suggestOutput != "" {
		if dir := filepath.Dir(suggestOutput); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(suggestOutput, []byte(result+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Wrote suggestions to %s\n", suggestOutput)
	} else {
		fmt.Fprintln(cmd.OutOrStdout(), result)
	}

	if suggestSummary {
		var parsed types.SuggestionResult
		if err := json.Unmarshal([]byte(result), &parsed); err != nil {
			return fmt.Errorf("failed to decode suggestions: %w", err)
		}
		observability.NewPrinter(cmd.OutOrStdout()).PrintSuggestion(&parsed)
	}
	return nil
}
