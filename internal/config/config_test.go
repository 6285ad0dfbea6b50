package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"stockmeta/internal/config"
)

func TestLoadDefaultsUseEnvKeyAndExpandPaths(t *testing.T) {
	t.Setenv("STOCKMETA_API_KEY", "env-key")
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantData := filepath.Join(tempHome, ".local", "share", "stockmeta")
	if cfg.Paths.DataDir != wantData {
		t.Fatalf("unexpected data dir: got %q want %q", cfg.Paths.DataDir, wantData)
	}
	if cfg.Service.APIKey != "env-key" {
		t.Fatalf("expected service key from env, got %q", cfg.Service.APIKey)
	}
	if cfg.Service.BaseURL != config.Default().Service.BaseURL {
		t.Fatalf("unexpected service base url: %q", cfg.Service.BaseURL)
	}
	if cfg.Batch.ItemDelaySeconds != 2 {
		t.Fatalf("unexpected item delay: %d", cfg.Batch.ItemDelaySeconds)
	}
	if !cfg.Batch.SkipDuplicates {
		t.Fatal("expected duplicate skipping enabled by default")
	}
	if cfg.Server.Bind != "127.0.0.1:8974" {
		t.Fatalf("unexpected server bind: %q", cfg.Server.Bind)
	}
	if cfg.Notifications.NtfyTopic != "" {
		t.Fatalf("expected ntfy disabled by default, got %q", cfg.Notifications.NtfyTopic)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
}

func TestLoadParsesExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	contents := `
[service]
api_key = "file-key"
model = "custom-model"
timeout_seconds = 30

[batch]
item_delay_seconds = 5

[logging]
format = "JSON"
level = "DEBUG"
`
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected file at %q to be used, got %q exists=%v", path, resolved, exists)
	}
	if cfg.Service.APIKey != "file-key" {
		t.Fatalf("unexpected api key: %q", cfg.Service.APIKey)
	}
	if cfg.Service.Model != "custom-model" {
		t.Fatalf("unexpected model: %q", cfg.Service.Model)
	}
	if cfg.Batch.ItemDelaySeconds != 5 {
		t.Fatalf("unexpected delay: %d", cfg.Batch.ItemDelaySeconds)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("expected case-normalized logging values, got %+v", cfg.Logging)
	}
}

func TestLoadRejectsInvalidLogFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[logging]\nformat = \"xml\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for invalid log format")
	}
}

func TestLoadRejectsInvalidBaseURL(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[service]\nbase_url = \"ftp://nope\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, _, _, err := config.Load(path); err == nil {
		t.Fatal("expected error for non-http base url")
	}
}

func TestValidateRejectsNegativeDelay(t *testing.T) {
	cfg := config.Default()
	cfg.Batch.ItemDelaySeconds = -1
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative item delay")
	}
}

func TestCreateSampleWritesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample returned error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("sample config is empty")
	}

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("sample config failed to load: %v", err)
	}
	if !exists {
		t.Fatal("expected sample config to exist")
	}
	if cfg.Service.Model == "" {
		t.Fatal("sample config missing service model")
	}
}
