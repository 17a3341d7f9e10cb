package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, want json", cfg.Output.Format)
	}
	if cfg.Output.ComponentLimit != 100 {
		t.Errorf("ComponentLimit = %d, want 100", cfg.Output.ComponentLimit)
	}
	if !cfg.Storage.Enabled {
		t.Error("Storage.Enabled should default to true")
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".uilens")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	content := `{
		"version": 1,
		"registry": {"path": "signatures.yaml"},
		"output": {"format": "human", "componentLimit": 25},
		"storage": {"enabled": false}
	}`
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if cfg.Registry.Path != "signatures.yaml" {
		t.Errorf("Registry.Path = %q", cfg.Registry.Path)
	}
	if cfg.Output.Format != "human" {
		t.Errorf("Output.Format = %q, want human", cfg.Output.Format)
	}
	if cfg.Output.ComponentLimit != 25 {
		t.Errorf("ComponentLimit = %d, want 25", cfg.Output.ComponentLimit)
	}
	if cfg.Storage.Enabled {
		t.Error("Storage.Enabled should be false from file")
	}
	// Unset sections keep their defaults.
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want default info", cfg.Logging.Level)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, ".uilens")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := LoadConfig(root); err == nil {
		t.Error("LoadConfig() should fail on malformed JSON")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	root := t.TempDir()

	cfg := DefaultConfig()
	cfg.Output.Format = "human"
	cfg.Registry.Path = "custom.toml"
	if err := cfg.Save(root); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if loaded.Output.Format != "human" {
		t.Errorf("Output.Format = %q, want human", loaded.Output.Format)
	}
	if loaded.Registry.Path != "custom.toml" {
		t.Errorf("Registry.Path = %q, want custom.toml", loaded.Registry.Path)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"empty format valid", func(c *Config) { c.Output.Format = "" }, false},
		{"human format valid", func(c *Config) { c.Output.Format = "human" }, false},
		{"bad version", func(c *Config) { c.Version = 2 }, true},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Field: "output.format", Message: "must be json or human"}
	want := "config error in field 'output.format': must be json or human"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
