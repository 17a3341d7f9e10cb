package main

import (
	"github.com/spf13/cobra"

	"uilens/internal/version"
)

var (
	// registryFlag is the CLI --registry flag value (path to a custom
	// signature registry file).
	registryFlag string
)

var rootCmd = &cobra.Command{
	Use:   "uilens",
	Short: "uilens - design export component catalog",
	Long: `uilens ingests a design-document export (files, pages, design objects)
and produces a catalog of reusable UI components: signature-based grouping,
multi-signal classification, reusability and complexity scoring, design-token
aggregation, and design-system maturity analysis.`,
	Version: version.Version,
}

func init() {
	rootCmd.SetVersionTemplate("uilens version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&registryFlag, "registry", "",
		"Path to a custom signature registry (.yaml or .toml)")
}
