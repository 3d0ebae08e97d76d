package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeKinopoisk(); err != nil {
		return err
	}
	if err := c.normalizeTemplates(); err != nil {
		return err
	}
	c.normalizeFileName()
	c.normalizeLocale()
	c.normalizeImages()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.VaultDir) == "" {
		c.Paths.VaultDir = defaultVaultDir
	}
	if c.Paths.VaultDir, err = expandPath(c.Paths.VaultDir); err != nil {
		return fmt.Errorf("paths.vault_dir: %w", err)
	}
	c.Paths.MoviesDir = strings.Trim(strings.TrimSpace(c.Paths.MoviesDir), "/")
	if c.Paths.MoviesDir == "" {
		c.Paths.MoviesDir = defaultMoviesDir
	}
	c.Paths.SeriesDir = strings.Trim(strings.TrimSpace(c.Paths.SeriesDir), "/")
	if c.Paths.SeriesDir == "" {
		c.Paths.SeriesDir = defaultSeriesDir
	}
	c.Paths.AttachmentsDir = strings.Trim(strings.TrimSpace(c.Paths.AttachmentsDir), "/")
	if c.Paths.AttachmentsDir == "" {
		c.Paths.AttachmentsDir = defaultAttachmentsDir
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeKinopoisk() error {
	c.Kinopoisk.APIKey = strings.TrimSpace(c.Kinopoisk.APIKey)
	if c.Kinopoisk.APIKey == "" {
		if value, ok := os.LookupEnv(apiKeyEnvVar); ok {
			c.Kinopoisk.APIKey = strings.TrimSpace(value)
		}
	}
	c.Kinopoisk.BaseURL = strings.TrimRight(strings.TrimSpace(c.Kinopoisk.BaseURL), "/")
	if c.Kinopoisk.BaseURL == "" {
		c.Kinopoisk.BaseURL = defaultKinopoiskBaseURL
	}
	if c.Kinopoisk.RequestTimeout <= 0 {
		c.Kinopoisk.RequestTimeout = defaultKinopoiskTimeout
	}
	if c.Kinopoisk.SearchLimit <= 0 {
		c.Kinopoisk.SearchLimit = defaultSearchLimit
	}
	return nil
}

// normalizeTemplates expands home prefixes only. Relative template
// paths stay vault-relative and resolve against the vault at read time.
func (c *Config) normalizeTemplates() error {
	var err error
	c.Templates.Movie = strings.TrimSpace(c.Templates.Movie)
	if strings.HasPrefix(c.Templates.Movie, "~") {
		if c.Templates.Movie, err = expandPath(c.Templates.Movie); err != nil {
			return fmt.Errorf("templates.movie: %w", err)
		}
	}
	c.Templates.Series = strings.TrimSpace(c.Templates.Series)
	if strings.HasPrefix(c.Templates.Series, "~") {
		if c.Templates.Series, err = expandPath(c.Templates.Series); err != nil {
			return fmt.Errorf("templates.series: %w", err)
		}
	}
	return nil
}

func (c *Config) normalizeFileName() {
	c.FileName.Format = strings.TrimSpace(c.FileName.Format)
	if c.FileName.Format == "" {
		c.FileName.Format = defaultFileNameFormat
	}
}

func (c *Config) normalizeLocale() {
	c.Locale.Language = strings.ToLower(strings.TrimSpace(c.Locale.Language))
	if c.Locale.Language == "" {
		c.Locale.Language = defaultLanguage
	}
}

func (c *Config) normalizeImages() {
	if c.Images.DownloadTimeout <= 0 {
		c.Images.DownloadTimeout = defaultImageTimeout
	}
	if c.Images.Retries < 0 {
		c.Images.Retries = 0
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	switch c.Logging.Format {
	case "", "console":
		c.Logging.Format = "console"
	case "json":
	default:
		c.Logging.Format = "console"
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
