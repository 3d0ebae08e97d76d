package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// FormatConsole renders compact human-readable lines.
	FormatConsole = "console"
	// FormatJSON renders one JSON object per line.
	FormatJSON = "json"
)

// Options selects the level, format, and destinations for a logger.
type Options struct {
	// Level accepts debug, info, warn, or error. Defaults to info.
	Level string
	// Format accepts console or json. Defaults to console.
	Format string
	// OutputPaths lists destinations for log output. "stdout" and
	// "stderr" are recognized; anything else is opened as a file and
	// appended to. Defaults to stdout.
	OutputPaths []string
	// Development forces debug level and the console format.
	Development bool
}

// New constructs a logger from opts.
func New(opts Options) (*slog.Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	format := strings.ToLower(strings.TrimSpace(opts.Format))
	if format == "" {
		format = FormatConsole
	}
	if opts.Development {
		level = slog.LevelDebug
		format = FormatConsole
	}

	writer, err := openWriters(opts.OutputPaths)
	if err != nil {
		return nil, err
	}

	leveler := new(slog.LevelVar)
	leveler.Set(level)

	var handler slog.Handler
	switch format {
	case FormatConsole:
		handler = newConsoleHandler(writer, leveler)
	case FormatJSON:
		handler = newJSONHandler(writer, leveler)
	default:
		return nil, fmt.Errorf("unsupported log format %q", opts.Format)
	}
	return slog.New(handler), nil
}

// NewFromConfig builds a logger from the level and format strings kept
// in configuration, writing to stderr so command output stays clean.
func NewFromConfig(level, format string) (*slog.Logger, error) {
	return New(Options{
		Level:       level,
		Format:      format,
		OutputPaths: []string{"stderr"},
	})
}

func parseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
	}
}

func openWriters(paths []string) (io.Writer, error) {
	if len(paths) == 0 {
		return os.Stdout, nil
	}
	writers := make([]io.Writer, 0, len(paths))
	for _, path := range paths {
		switch path {
		case "stdout":
			writers = append(writers, os.Stdout)
		case "stderr":
			writers = append(writers, os.Stderr)
		default:
			file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
			if err != nil {
				return nil, fmt.Errorf("open log output %s: %w", path, err)
			}
			writers = append(writers, file)
		}
	}
	if len(writers) == 1 {
		return writers[0], nil
	}
	return io.MultiWriter(writers...), nil
}
