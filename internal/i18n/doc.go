// Package i18n resolves user-facing text from embedded message catalogs.
//
// Catalogs are TOML files keyed by dotted paths (fileName.unknown,
// mediaType.movie). Lookup falls back to English for keys a locale does
// not carry, and to the key itself when no catalog carries it, so callers
// always receive a printable string.
package i18n
