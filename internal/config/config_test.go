package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.BaseURL != "http://127.0.0.1:5000" {
		t.Errorf("default BaseURL = %q", cfg.BaseURL)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("default TimeoutSeconds = %d, want 30", cfg.TimeoutSeconds)
	}
	if cfg.Verbose {
		t.Error("Verbose should default to false")
	}
	if cfg.TUITheme != "portal" {
		t.Errorf("default TUITheme = %q, want %q", cfg.TUITheme, "portal")
	}
	if cfg.Markdown.Style != "dark" {
		t.Errorf("default markdown style = %q, want %q", cfg.Markdown.Style, "dark")
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvBaseURL, "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig with no file should use defaults, got error: %v", err)
	}
	if cfg.BaseURL != DefaultConfig().BaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.BaseURL)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvBaseURL, "")

	cfg := DefaultConfig()
	cfg.BaseURL = "https://services.example.gov"
	cfg.TimeoutSeconds = 10
	cfg.Verbose = true
	cfg.TUITheme = "tokyonight"

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig returned error: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if loaded.BaseURL != cfg.BaseURL {
		t.Errorf("BaseURL = %q, want %q", loaded.BaseURL, cfg.BaseURL)
	}
	if loaded.TimeoutSeconds != 10 {
		t.Errorf("TimeoutSeconds = %d, want 10", loaded.TimeoutSeconds)
	}
	if !loaded.Verbose {
		t.Error("Verbose should round-trip as true")
	}
	if loaded.TUITheme != "tokyonight" {
		t.Errorf("TUITheme = %q, want %q", loaded.TUITheme, "tokyonight")
	}
}

func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := DefaultConfig()
	cfg.BaseURL = "http://from-file:5000"
	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig returned error: %v", err)
	}

	t.Setenv(EnvBaseURL, "http://from-env:8080")

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if loaded.BaseURL != "http://from-env:8080" {
		t.Errorf("BaseURL = %q, env override should win", loaded.BaseURL)
	}
}

func TestLoadConfig_CorruptFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvBaseURL, "")

	dir := filepath.Join(home, ".govbot")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err == nil {
		t.Error("LoadConfig should report the parse error")
	}
	// Defaults must still be usable after a parse failure
	if cfg.BaseURL != DefaultConfig().BaseURL {
		t.Errorf("BaseURL = %q, want default after corrupt file", cfg.BaseURL)
	}
}

func TestLoadConfig_ZeroTimeout(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvBaseURL, "")

	dir := filepath.Join(home, ".govbot")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte(`{"timeout_seconds": 0}`), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, zero should fall back to default", cfg.TimeoutSeconds)
	}
}
