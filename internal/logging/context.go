package logging

import (
	"context"
	"log/slog"

	"kinonote/internal/services"
)

// Canonical attribute keys shared by the console and JSON handlers.
const (
	FieldComponent = "component"
	FieldMovieID   = "movie_id"
	FieldStage     = "stage"
	FieldRequestID = "request_id"
)

// ContextFields extracts the correlation attributes stored in ctx.
func ContextFields(ctx context.Context) []Attr {
	if ctx == nil {
		return nil
	}
	fields := make([]Attr, 0, 3)
	if id, ok := services.MovieIDFromContext(ctx); ok {
		fields = append(fields, Int64(FieldMovieID, id))
	}
	if stage, ok := services.StageFromContext(ctx); ok {
		fields = append(fields, String(FieldStage, stage))
	}
	if requestID, ok := services.RequestIDFromContext(ctx); ok {
		fields = append(fields, String(FieldRequestID, requestID))
	}
	return fields
}

// WithContext returns logger enriched with the correlation attributes
// found in ctx. The logger is returned unchanged when ctx carries none.
func WithContext(ctx context.Context, logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return NewNop()
	}
	fields := ContextFields(ctx)
	if len(fields) == 0 {
		return logger
	}
	args := make([]any, 0, len(fields))
	for _, field := range fields {
		args = append(args, field)
	}
	return logger.With(args...)
}
