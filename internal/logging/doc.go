// Package logging builds the slog loggers used across kinonote.
//
// Loggers are constructed once near process start from Options (usually
// derived from config) and handed down to components via
// NewComponentLogger. Two output formats exist: a compact console form
// for interactive use and JSON for anything that wants to parse logs.
// Helpers in this package also lift request correlation fields out of a
// context so component code never touches context keys directly.
package logging
