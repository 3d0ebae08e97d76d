// Package config loads, normalizes, and validates kinonote configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// KINOPOISK_API_KEY. The Config type centralizes every knob the CLI needs,
// allowing vault layout, API credentials, and note templates to be discovered
// in one pass.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
