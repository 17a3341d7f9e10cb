package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var qualityFormat string

var qualityCmd = &cobra.Command{
	Use:   "quality <export>",
	Short: "Assess component library quality",
	Long: `Assess the quality of the component library detected in a design
export: overall score, letter grade, sub-scores, and recommendations.

Examples:
  uilens quality export.json
  uilens quality design.zip --format human`,
	Args: cobra.ExactArgs(1),
	RunE: runQuality,
}

func init() {
	qualityCmd.Flags().StringVar(&qualityFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(qualityCmd)
}

func runQuality(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)
	format := outputFormat(cmd, qualityFormat, cfg)

	cat, _, err := analyzeExport(context.Background(), cfg, logger, args[0])
	if err != nil {
		return err
	}

	result := map[string]interface{}{
		"qualityAssessment": cat.QualityAssessment,
		"designSystem":      cat.DesignSystem,
		"recommendations":   cat.Recommendations,
	}
	if format == string(FormatHuman) {
		fmt.Println(formatQualityHuman(cat.QualityAssessment, cat.Recommendations))
		return nil
	}

	output, err := FormatResponse(result, OutputFormat(format))
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Println(output)
	return nil
}
