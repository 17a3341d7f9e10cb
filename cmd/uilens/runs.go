package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"uilens/internal/storage"
)

var (
	runsFormat string
	runsLimit  int
	runsShow   string
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "List stored analysis runs",
	Long: `List analysis runs saved with 'uilens analyze --save', or print a
stored catalog.

Examples:
  uilens runs
  uilens runs --limit 5 --format human
  uilens runs --show <run-id>`,
	RunE: runRuns,
}

func init() {
	runsCmd.Flags().StringVar(&runsFormat, "format", "json", "Output format (json, human)")
	runsCmd.Flags().IntVar(&runsLimit, "limit", 20, "Maximum runs to list")
	runsCmd.Flags().StringVar(&runsShow, "show", "", "Print the stored catalog for a run id")
	rootCmd.AddCommand(runsCmd)
}

func runRuns(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)
	format := outputFormat(cmd, runsFormat, cfg)

	db, err := storage.Open(".", logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if runsShow != "" {
		data, err := db.GetCatalog(runsShow)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	runs, err := db.ListRuns(runsLimit)
	if err != nil {
		return err
	}
	if runs == nil {
		runs = []storage.Run{}
	}

	output, err := FormatResponse(runs, OutputFormat(format))
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Println(output)
	return nil
}
