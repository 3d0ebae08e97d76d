package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateKinopoisk(); err != nil {
		return err
	}
	if err := c.validatePaths(); err != nil {
		return err
	}
	if err := c.validateFileName(); err != nil {
		return err
	}
	if err := c.validateLocale(); err != nil {
		return err
	}
	if err := c.validateImages(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateKinopoisk() error {
	if c.Kinopoisk.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/kinonote/config.toml"
		}
		return fmt.Errorf("kinopoisk.api_key is required. Set %s env var or edit %s (create with 'kinonote config init')", apiKeyEnvVar, defaultPath)
	}
	if c.Kinopoisk.RequestTimeout <= 0 {
		return errors.New("kinopoisk.request_timeout must be positive (seconds)")
	}
	if c.Kinopoisk.SearchLimit <= 0 || c.Kinopoisk.SearchLimit > maxSearchLimit {
		return fmt.Errorf("kinopoisk.search_limit must be between 1 and %d", maxSearchLimit)
	}
	return nil
}

func (c *Config) validatePaths() error {
	if c.Paths.MoviesDir == "" {
		return errors.New("paths.movies_dir must be set")
	}
	if c.Paths.SeriesDir == "" {
		return errors.New("paths.series_dir must be set")
	}
	if c.Paths.AttachmentsDir == "" {
		return errors.New("paths.attachments_dir must be set")
	}
	for _, dir := range []string{c.Paths.MoviesDir, c.Paths.SeriesDir, c.Paths.AttachmentsDir} {
		if strings.Contains(dir, "..") {
			return fmt.Errorf("vault folder %q must stay inside the vault", dir)
		}
	}
	return nil
}

func (c *Config) validateFileName() error {
	if strings.TrimSpace(c.FileName.Format) == "" {
		return errors.New("filename.format must be set")
	}
	return nil
}

func (c *Config) validateLocale() error {
	if _, err := language.Parse(c.Locale.Language); err != nil {
		return fmt.Errorf("locale.language %q is not a valid language tag", c.Locale.Language)
	}
	return nil
}

func (c *Config) validateImages() error {
	if !c.Images.Enabled {
		return nil
	}
	if c.Images.DownloadTimeout <= 0 {
		return errors.New("images.download_timeout must be positive (seconds)")
	}
	if c.Images.Retries < 0 {
		return errors.New("images.retries must be >= 0")
	}
	return nil
}
