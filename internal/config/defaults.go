package config

const (
	defaultVaultDir            = "~/vault"
	defaultMoviesDir           = "Movies"
	defaultSeriesDir           = "Series"
	defaultAttachmentsDir      = "attachments"
	defaultLogDir              = "~/.local/share/kinonote/logs"
	defaultKinopoiskBaseURL    = "https://api.kinopoisk.dev"
	defaultKinopoiskTimeout    = 15
	defaultSearchLimit         = 10
	defaultFileNameFormat      = "{{name}} ({{year}})"
	defaultLanguage            = "en"
	defaultImagesEnabled       = true
	defaultImageTimeout        = 30
	defaultImageRetries        = 2
	defaultLogFormat           = "console"
	defaultLogLevel            = "info"
	apiKeyEnvVar               = "KINOPOISK_API_KEY"
	maxSearchLimit             = 250
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			VaultDir:       defaultVaultDir,
			MoviesDir:      defaultMoviesDir,
			SeriesDir:      defaultSeriesDir,
			AttachmentsDir: defaultAttachmentsDir,
			LogDir:         defaultLogDir,
		},
		Kinopoisk: Kinopoisk{
			BaseURL:        defaultKinopoiskBaseURL,
			RequestTimeout: defaultKinopoiskTimeout,
			SearchLimit:    defaultSearchLimit,
		},
		FileName: FileName{
			Format: defaultFileNameFormat,
		},
		Locale: Locale{
			Language: defaultLanguage,
		},
		Images: Images{
			Enabled:         defaultImagesEnabled,
			DownloadTimeout: defaultImageTimeout,
			Retries:         defaultImageRetries,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
