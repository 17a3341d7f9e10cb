package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"uilens/internal/catalog"
	"uilens/internal/config"
	"uilens/internal/engine"
	"uilens/internal/extract"
	"uilens/internal/logging"
	"uilens/internal/signature"
)

// loadConfig loads the project configuration, falling back to defaults
// when the file is missing or invalid.
func loadConfig() *config.Config {
	cfg, err := config.LoadConfig(".")
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fallback := config.DefaultConfig()
		newLogger(fallback).Warn("Failed to load config, using defaults", map[string]interface{}{
			"error": err.Error(),
		})
		return fallback
	}
	return cfg
}

// loggingConfig derives the logger settings from the configuration.
// UILENS_LOG_LEVEL overrides the configured level.
func loggingConfig(cfg *config.Config) logging.Config {
	format := logging.HumanFormat
	if cfg.Logging.Format == string(logging.JSONFormat) {
		format = logging.JSONFormat
	}
	level := cfg.Logging.Level
	if env := os.Getenv("UILENS_LOG_LEVEL"); env != "" {
		level = env
	}
	return logging.Config{Format: format, Level: logging.ParseLevel(level)}
}

func newLogger(cfg *config.Config) *logging.Logger {
	return logging.NewLogger(loggingConfig(cfg))
}

// outputFormat resolves a command's output format: an explicit --format
// flag wins over the configured default.
func outputFormat(cmd *cobra.Command, flagValue string, cfg *config.Config) string {
	if cmd.Flags().Changed("format") || cfg.Output.Format == "" {
		return flagValue
	}
	return cfg.Output.Format
}

// componentLimit resolves the component list cap the same way.
func componentLimit(cmd *cobra.Command, flagValue int, cfg *config.Config) int {
	if cmd.Flags().Changed("limit") || cfg.Output.ComponentLimit <= 0 {
		return flagValue
	}
	return cfg.Output.ComponentLimit
}

// shouldSaveRun reports whether analyze --save actually persists: the
// flag requests it and the configuration allows it.
func shouldSaveRun(saveFlag bool, cfg *config.Config) bool {
	return saveFlag && cfg.Storage.Enabled
}

// loadRegistry resolves the signature registry.
// Precedence: --registry flag > config registry path > built-in default.
func loadRegistry(cfg *config.Config) (*signature.Registry, error) {
	path := registryFlag
	if path == "" {
		path = cfg.Registry.Path
	}
	if path == "" {
		return signature.DefaultRegistry(), nil
	}
	return signature.LoadRegistry(path)
}

// analyzeExport runs the full pipeline against an export file and
// returns the catalog plus source bookkeeping.
func analyzeExport(ctx context.Context, cfg *config.Config, logger *logging.Logger, path string) (*catalog.Catalog, *extract.SourceInfo, error) {
	registry, err := loadRegistry(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load registry: %w", err)
	}

	doc, info, err := extract.ReadExport(path)
	if err != nil {
		return nil, nil, err
	}

	eng := engine.New(registry, logger)
	cat, err := eng.Analyze(ctx, doc)
	if err != nil {
		return nil, nil, err
	}
	return cat, info, nil
}
