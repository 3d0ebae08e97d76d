// Package testsupport provides shared helpers for package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"kinonote/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config rooted in a unique temp vault per test.
// It defaults common fields, applies any provided options, and creates
// the vault layout.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.VaultDir = filepath.Join(base, "vault")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Kinopoisk.APIKey = "test"
	cfg.Kinopoisk.RequestTimeout = 5
	cfg.Images.Enabled = false

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithAPIBase points the catalog client at a test server.
func WithAPIBase(url string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Kinopoisk.BaseURL = url
	}
}

// WithImages enables image downloads with test-friendly settings.
func WithImages() ConfigOption {
	return func(cfg *config.Config) {
		cfg.Images.Enabled = true
		cfg.Images.DownloadTimeout = 5
		cfg.Images.Retries = 0
	}
}

// WithNameFormat sets the note file name format.
func WithNameFormat(format string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.FileName.Format = format
	}
}

// WithLanguage sets the locale language.
func WithLanguage(lang string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Locale.Language = lang
	}
}
