// Package services defines the shared error taxonomy and context
// correlation helpers used across kinonote components.
//
// Errors raised by external collaborators (catalog API, vault IO, image
// downloads) are tagged with one of the exported sentinel markers via Wrap
// so callers can classify failures without string matching. Data-shaped
// problems (missing optional fields, malformed dates, unknown template
// placeholders) are never errors; those resolve to empty values or
// diagnostics per the normalization rules.
package services
