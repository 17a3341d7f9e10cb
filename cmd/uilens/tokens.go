package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var tokensFormat string

var tokensCmd = &cobra.Command{
	Use:   "tokens <export>",
	Short: "Show aggregated design tokens",
	Long: `Show the design tokens (colors, typography, spacing, effects)
aggregated across a design export, ranked by occurrence.

Examples:
  uilens tokens export.json
  uilens tokens design.zip --format human`,
	Args: cobra.ExactArgs(1),
	RunE: runTokens,
}

func init() {
	tokensCmd.Flags().StringVar(&tokensFormat, "format", "json", "Output format (json, human)")
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)
	format := outputFormat(cmd, tokensFormat, cfg)

	cat, _, err := analyzeExport(context.Background(), cfg, logger, args[0])
	if err != nil {
		return err
	}

	output, err := FormatResponse(cat.DesignTokens, OutputFormat(format))
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Println(output)
	return nil
}
