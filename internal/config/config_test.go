package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"kinonote/internal/config"
)

func TestLoadDefaultConfigUsesEnvAPIKeyAndExpandsPaths(t *testing.T) {
	t.Setenv("KINOPOISK_API_KEY", "test-key")
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

	if cfg.Paths.VaultDir != filepath.Join(tempHome, "vault") {
		t.Fatalf("unexpected vault dir: %q", cfg.Paths.VaultDir)
	}
	if cfg.MoviesPath() != filepath.Join(tempHome, "vault", "Movies") {
		t.Fatalf("unexpected movies path: %q", cfg.MoviesPath())
	}
	if cfg.SeriesPath() != filepath.Join(tempHome, "vault", "Series") {
		t.Fatalf("unexpected series path: %q", cfg.SeriesPath())
	}
	if cfg.AttachmentsPath() != filepath.Join(tempHome, "vault", "attachments") {
		t.Fatalf("unexpected attachments path: %q", cfg.AttachmentsPath())
	}
	if cfg.Kinopoisk.APIKey != "test-key" {
		t.Fatalf("expected API key from env, got %q", cfg.Kinopoisk.APIKey)
	}
	if cfg.Kinopoisk.BaseURL != config.Default().Kinopoisk.BaseURL {
		t.Fatalf("unexpected base url: %q", cfg.Kinopoisk.BaseURL)
	}
	if cfg.FileName.Format != "{{name}} ({{year}})" {
		t.Fatalf("unexpected filename format: %q", cfg.FileName.Format)
	}
	if cfg.Locale.Language != "en" {
		t.Fatalf("unexpected language: %q", cfg.Locale.Language)
	}
	if !cfg.Images.Enabled {
		t.Fatal("expected image downloads enabled by default")
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, dir := range []string{cfg.MoviesPath(), cfg.SeriesPath(), cfg.AttachmentsPath(), cfg.Paths.LogDir} {
		info, err := os.Stat(dir)
		if err != nil {
			t.Fatalf("expected directory %q to exist: %v", dir, err)
		}
		if !info.IsDir() {
			t.Fatalf("expected %q to be directory", dir)
		}
	}
}

func TestLoadCustomPath(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "kinonote.toml")

	type payload struct {
		Paths struct {
			VaultDir  string `toml:"vault_dir"`
			MoviesDir string `toml:"movies_dir"`
		} `toml:"paths"`
		Kinopoisk struct {
			APIKey  string `toml:"api_key"`
			BaseURL string `toml:"base_url"`
		} `toml:"kinopoisk"`
		Locale struct {
			Language string `toml:"language"`
		} `toml:"locale"`
	}
	custom := payload{}
	custom.Paths.VaultDir = filepath.Join(tempDir, "vault")
	custom.Paths.MoviesDir = "Films"
	custom.Kinopoisk.APIKey = "abc123"
	custom.Kinopoisk.BaseURL = "https://example.com/kp/"
	custom.Locale.Language = "RU"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected exists to be true")
	}
	if resolved != configPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, configPath)
	}
	if cfg.Kinopoisk.APIKey != "abc123" {
		t.Fatalf("expected API key from file, got %q", cfg.Kinopoisk.APIKey)
	}
	if cfg.Kinopoisk.BaseURL != "https://example.com/kp" {
		t.Fatalf("expected trailing slash trimmed, got %q", cfg.Kinopoisk.BaseURL)
	}
	if cfg.Paths.MoviesDir != "Films" {
		t.Fatalf("expected MoviesDir to be 'Films', got %q", cfg.Paths.MoviesDir)
	}
	if cfg.Locale.Language != "ru" {
		t.Fatalf("expected language lowered to ru, got %q", cfg.Locale.Language)
	}
}

func TestFileAPIKeyWinsOverEnv(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "kinonote.toml")

	type payload struct {
		Kinopoisk struct {
			APIKey string `toml:"api_key"`
		} `toml:"kinopoisk"`
	}
	custom := payload{}
	custom.Kinopoisk.APIKey = "file-key"
	data, err := toml.Marshal(custom)
	if err != nil {
		t.Fatalf("marshal custom config: %v", err)
	}
	if err := os.WriteFile(configPath, data, 0o644); err != nil {
		t.Fatalf("write custom config: %v", err)
	}

	t.Setenv("KINOPOISK_API_KEY", "env-key")
	cfg, _, _, err := config.Load(configPath)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Kinopoisk.APIKey != "file-key" {
		t.Fatalf("expected file key to win, got %q", cfg.Kinopoisk.APIKey)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.toml")
	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(contents), "your_kinopoisk_api_key_here") {
		t.Fatalf("sample config missing placeholder API key: %s", contents)
	}

	var cfg config.Config
	if err := toml.Unmarshal(contents, &cfg); err != nil {
		t.Fatalf("unmarshal sample: %v", err)
	}
	if cfg.Paths.VaultDir != "~/vault" {
		t.Fatalf("unexpected sample vault dir: %q", cfg.Paths.VaultDir)
	}
}

func TestValidateDetectsInvalidValues(t *testing.T) {
	cfg := config.Default()
	cfg.Kinopoisk.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing API key")
	}

	cfg = config.Default()
	cfg.Kinopoisk.APIKey = "key"
	cfg.Kinopoisk.SearchLimit = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero search limit")
	}

	cfg = config.Default()
	cfg.Kinopoisk.APIKey = "key"
	cfg.Paths.MoviesDir = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for empty movies dir")
	}

	cfg = config.Default()
	cfg.Kinopoisk.APIKey = "key"
	cfg.Paths.AttachmentsDir = "../outside"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for folder escaping the vault")
	}

	cfg = config.Default()
	cfg.Kinopoisk.APIKey = "key"
	cfg.Locale.Language = "not a tag"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid language tag")
	}

	cfg = config.Default()
	cfg.Kinopoisk.APIKey = "key"
	cfg.Images.DownloadTimeout = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for zero download timeout")
	}
}
