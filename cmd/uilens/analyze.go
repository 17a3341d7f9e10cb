package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"uilens/internal/catalog"
	"uilens/internal/extract"
	"uilens/internal/logging"
	"uilens/internal/storage"
)

var (
	analyzeFormat string
	analyzeSave   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <export>",
	Short: "Analyze a design export",
	Long: `Analyze a design export and print the full component catalog.

The export may be a JSON document or a ZIP archive containing one.

Examples:
  uilens analyze export.json
  uilens analyze design.zip --format human
  uilens analyze export.json --save
  uilens analyze export.json --registry signatures.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFormat, "format", "json", "Output format (json, human)")
	analyzeCmd.Flags().BoolVar(&analyzeSave, "save", false, "Persist the run to the local run store")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	start := time.Now()
	cfg := loadConfig()
	logger := newLogger(cfg)
	format := outputFormat(cmd, analyzeFormat, cfg)

	cat, info, err := analyzeExport(context.Background(), cfg, logger, args[0])
	if err != nil {
		return err
	}

	output, err := FormatResponse(cat, OutputFormat(format))
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Println(output)

	if analyzeSave {
		if !shouldSaveRun(analyzeSave, cfg) {
			fmt.Fprintln(os.Stderr, "Warning: run store is disabled in config; run not saved")
		} else if err := saveRun(logger, cat, info); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to save run: %v\n", err)
		}
	}

	logger.Debug("Analysis completed", map[string]interface{}{
		"source":     info.Path,
		"components": cat.Summary.TotalComponents,
		"durationMs": time.Since(start).Milliseconds(),
	})
	return nil
}

func saveRun(logger *logging.Logger, cat *catalog.Catalog, info *extract.SourceInfo) error {
	db, err := storage.Open(".", logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	catalogJSON, err := json.Marshal(cat)
	if err != nil {
		return err
	}

	return db.SaveRun(storage.Run{
		ID:             uuid.NewString(),
		SourcePath:     info.Path,
		SourceDigest:   info.Digest,
		AnalyzedAt:     time.Now(),
		ObjectCount:    cat.Summary.TotalObjects,
		ComponentCount: cat.Summary.TotalComponents,
		OverallScore:   cat.QualityAssessment.OverallScore,
		Grade:          cat.QualityAssessment.Grade,
	}, catalogJSON)
}
