// Package kinopoisk provides a small client for the kinopoisk.dev API.
//
// Only the two endpoints kinonote needs are covered: title search and
// fetch-by-id. Responses decode into Movie, the loosely populated raw
// record that normalization turns into template-ready data. Every field
// except the identifier, a title, and the series flag may be absent.
package kinopoisk
