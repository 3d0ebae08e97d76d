package logging

import (
	"io"
	"log/slog"
	"strings"
)

func newJSONHandler(writer io.Writer, level *slog.LevelVar) slog.Handler {
	return slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, attr slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return attr
			}
			switch attr.Key {
			case slog.TimeKey:
				attr.Key = "ts"
				attr.Value = slog.StringValue(formatTimestamp(attr.Value.Time()))
			case slog.LevelKey:
				level, ok := attr.Value.Any().(slog.Level)
				if ok {
					attr.Value = slog.StringValue(strings.ToLower(level.String()))
				}
			case slog.MessageKey:
				attr.Key = "message"
			}
			return attr
		},
	})
}
