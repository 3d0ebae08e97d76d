package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"kinonote/internal/config"
	"kinonote/internal/i18n"
	"kinonote/internal/images"
	"kinonote/internal/kinopoisk"
	"kinonote/internal/logging"
	"kinonote/internal/vault"
	"kinonote/internal/workflow"
)

type commandContext struct {
	configFlag    *string
	logLevelFlag  *string
	logFormatFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
	loggerErr  error
}

func newCommandContext(configFlag, logLevelFlag, logFormatFlag *string) *commandContext {
	return &commandContext{
		configFlag:    configFlag,
		logLevelFlag:  logLevelFlag,
		logFormatFlag: logFormatFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// ensureLogger builds the CLI logger once, letting the persistent
// flags override the configured level and format.
func (c *commandContext) ensureLogger() (*slog.Logger, error) {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.loggerErr = err
			return
		}
		level := cfg.Logging.Level
		if v := strings.TrimSpace(*c.logLevelFlag); v != "" {
			level = v
		}
		format := cfg.Logging.Format
		if v := strings.TrimSpace(*c.logFormatFlag); v != "" {
			format = v
		}
		c.logger, c.loggerErr = logging.NewFromConfig(level, format)
	})
	return c.logger, c.loggerErr
}

func (c *commandContext) messages() (*i18n.Bundle, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return i18n.Load(cfg.Locale.Language)
}

func (c *commandContext) newClient() (*kinopoisk.Client, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return kinopoisk.New(
		cfg.Kinopoisk.APIKey,
		cfg.Kinopoisk.BaseURL,
		kinopoisk.WithTimeout(time.Duration(cfg.Kinopoisk.RequestTimeout)*time.Second),
	)
}

func (c *commandContext) newCreator() (*workflow.Creator, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	logger, err := c.ensureLogger()
	if err != nil {
		return nil, err
	}
	client, err := c.newClient()
	if err != nil {
		return nil, err
	}
	bundle, err := c.messages()
	if err != nil {
		return nil, err
	}

	store := vault.Open(cfg.Paths.VaultDir)
	var fetcher *images.Fetcher
	if cfg.Images.Enabled {
		fetcher = images.NewFetcher(store, cfg.Paths.AttachmentsDir, cfg.Images, logger)
	}
	return workflow.NewCreator(cfg, client, store, fetcher, bundle, logger), nil
}
