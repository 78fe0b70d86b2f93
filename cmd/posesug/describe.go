package main

import (
	"fmt"

	"github.com/jonathan/posesug/internal/observability"
	"github.com/jonathan/posesug/internal/pose"
	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Render the preferred pose as text",
	Long:  "Reads a pose list (a bare JSON array or a full suggestion object), selects the highest-priority pose and prints its body-part description. Runs offline.",
	RunE:  runDescribe,
}

var (
	describePoses  string
	describeLocale string
)

func init() {
	describeCmd.Flags().StringVarP(&describePoses, "poses", "p", "", "Path to the pose JSON file (required)")
	describeCmd.Flags().StringVar(&describeLocale, "locale", "", "Label set: zh or en (defaults to DESCRIPTION_LOCALE)")

	if err := describeCmd.MarkFlagRequired("poses"); err != nil {
		panic(fmt.Sprintf("failed to mark poses flag as required: %v", err))
	}

	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, _ []string) error {
	locale := describeLocale
	if locale == "" {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		locale = cfg.DescriptionLocale
	}

	poses, err := loadPoses(describePoses)
	if err != nil {
		return err
	}

	selected, err := pose.SelectHighestPriority(poses)
	if err != nil {
		return fmt.Errorf("failed to select pose: %w", err)
	}

	description := pose.RenderDescriptionWith(selected, pose.LabelsFor(locale))
	observability.NewPrinter(cmd.OutOrStdout()).PrintSelectedPose(selected, description)
	return nil
}
