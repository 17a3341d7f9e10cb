package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"uilens/internal/components"
)

var (
	componentsFormat         string
	componentsCategory       string
	componentsMinReusability float64
	componentsLimit          int
)

var componentsCmd = &cobra.Command{
	Use:   "components <export>",
	Short: "List detected components",
	Long: `List the components detected in a design export, optionally filtered
by category or minimum reusability.

Examples:
  uilens components export.json
  uilens components export.json --category atoms
  uilens components export.json --min-reusability 0.5 --format human`,
	Args: cobra.ExactArgs(1),
	RunE: runComponents,
}

func init() {
	componentsCmd.Flags().StringVar(&componentsFormat, "format", "json", "Output format (json, human)")
	componentsCmd.Flags().StringVar(&componentsCategory, "category", "", "Filter by atomic-design category")
	componentsCmd.Flags().Float64Var(&componentsMinReusability, "min-reusability", 0, "Minimum reusability score (0-1)")
	componentsCmd.Flags().IntVar(&componentsLimit, "limit", 100, "Maximum components to return")
	rootCmd.AddCommand(componentsCmd)
}

func runComponents(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)
	format := outputFormat(cmd, componentsFormat, cfg)
	limit := componentLimit(cmd, componentsLimit, cfg)

	cat, _, err := analyzeExport(context.Background(), cfg, logger, args[0])
	if err != nil {
		return err
	}

	filtered := make([]components.DetectedComponent, 0, len(cat.DetectedComponents))
	for _, c := range cat.DetectedComponents {
		if componentsCategory != "" && c.Category != componentsCategory {
			continue
		}
		if c.ReusabilityScore < componentsMinReusability {
			continue
		}
		filtered = append(filtered, c)
		if len(filtered) >= limit {
			break
		}
	}

	output, err := FormatResponse(filtered, OutputFormat(format))
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Println(output)
	return nil
}
