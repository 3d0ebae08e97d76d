package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains vault layout and log directory configuration. MoviesDir,
// SeriesDir, and AttachmentsDir are folder names relative to VaultDir.
type Paths struct {
	VaultDir       string `toml:"vault_dir"`
	MoviesDir      string `toml:"movies_dir"`
	SeriesDir      string `toml:"series_dir"`
	AttachmentsDir string `toml:"attachments_dir"`
	LogDir         string `toml:"log_dir"`
}

// Kinopoisk contains configuration for the kinopoisk.dev API.
type Kinopoisk struct {
	APIKey         string `toml:"api_key"`
	BaseURL        string `toml:"base_url"`
	RequestTimeout int    `toml:"request_timeout"`
	SearchLimit    int    `toml:"search_limit"`
}

// Templates points at note template files. Empty values select the
// built-in templates.
type Templates struct {
	Movie  string `toml:"movie"`
	Series string `toml:"series"`
}

// FileName contains configuration for generated note file names.
type FileName struct {
	Format string `toml:"format"`
}

// Locale selects the language used for labels, fallbacks, and CLI text.
type Locale struct {
	Language string `toml:"language"`
}

// Images contains configuration for poster and cover downloads.
type Images struct {
	Enabled         bool `toml:"enabled"`
	DownloadTimeout int  `toml:"download_timeout"`
	Retries         int  `toml:"retries"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for kinonote.
//
// Configuration sections by subsystem:
//   - Paths: vault location and note/attachment folder layout
//   - Kinopoisk: API credentials and connection settings
//   - Templates: optional note template overrides
//   - FileName: file name format for generated notes
//   - Locale: display language for labels and fallbacks
//   - Images: poster and cover download behavior
//   - Logging: log format and level
type Config struct {
	Paths     Paths     `toml:"paths"`
	Kinopoisk Kinopoisk `toml:"kinopoisk"`
	Templates Templates `toml:"templates"`
	FileName  FileName  `toml:"filename"`
	Locale    Locale    `toml:"locale"`
	Images    Images    `toml:"images"`
	Logging   Logging   `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/kinonote/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned config has all
// path fields expanded and normalized.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := expandPath("~/.config/kinonote/config.toml")
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("kinonote.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// MoviesPath returns the absolute directory that receives movie notes.
func (c *Config) MoviesPath() string {
	return filepath.Join(c.Paths.VaultDir, c.Paths.MoviesDir)
}

// SeriesPath returns the absolute directory that receives series notes.
func (c *Config) SeriesPath() string {
	return filepath.Join(c.Paths.VaultDir, c.Paths.SeriesDir)
}

// AttachmentsPath returns the absolute directory that receives downloaded images.
func (c *Config) AttachmentsPath() string {
	return filepath.Join(c.Paths.VaultDir, c.Paths.AttachmentsDir)
}

// EnsureDirectories creates the vault layout and log directory. The vault
// itself is created on a best-effort basis so validation-only commands can
// run when the vault lives on storage that is temporarily unavailable.
func (c *Config) EnsureDirectories() error {
	if strings.TrimSpace(c.Paths.VaultDir) != "" {
		_ = os.MkdirAll(c.Paths.VaultDir, 0o755)
	}
	for _, dir := range []string{c.MoviesPath(), c.SeriesPath(), c.AttachmentsPath(), c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

// ExpandPath exposes the repository path expansion rules for other packages.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	sample := sampleConfig

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}

	if err := os.WriteFile(path, []byte(sample), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
