// Package fieldfmt converts raw catalog values into the presentation
// encodings used by note templates.
//
// Four encodings exist: plain short text, quoted long text, raw URLs,
// and quoted wiki links. Formatting is total: bad input yields an empty
// result, never an error. Output keeps one entry per surviving input
// value; rendering later comma-joins them into a single token, so the
// sequence length only ever distinguishes present from absent.
package fieldfmt

import "strings"

// DefaultMaxItems caps how many source values survive formatting.
const DefaultMaxItems = 15

// Mode selects the presentation encoding applied to each value.
type Mode int

const (
	// Plain strips colons and trims. Used for names, genres, and other
	// short text that lands in structured fields.
	Plain Mode = iota
	// Quoted collapses whitespace and wraps the value in double quotes.
	// Used for descriptions, slogans, and facts.
	Quoted
	// URL trims only. Colons survive because URLs need them.
	URL
	// Link wraps the cleaned value as a quoted wiki reference.
	Link
)

// Format runs the standard pipeline with DefaultMaxItems.
func Format(values []string, mode Mode) []string {
	return FormatWithLimit(values, mode, DefaultMaxItems)
}

// FormatWithLimit drops empty values, truncates to maxItems, and
// encodes each survivor per mode. A non-positive maxItems falls back
// to DefaultMaxItems.
func FormatWithLimit(values []string, mode Mode, maxItems int) []string {
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}
	kept := make([]string, 0, len(values))
	for _, value := range values {
		if strings.TrimSpace(value) == "" {
			continue
		}
		kept = append(kept, value)
		if len(kept) == maxItems {
			break
		}
	}

	encoded := make([]string, 0, len(kept))
	for _, value := range kept {
		switch mode {
		case Quoted:
			collapsed := CollapseWhitespace(value)
			if collapsed == "" {
				continue
			}
			encoded = append(encoded, Quote(collapsed))
		case URL:
			encoded = append(encoded, strings.TrimSpace(value))
		case Link:
			cleaned := cleanShort(value)
			if cleaned == "" {
				continue
			}
			encoded = append(encoded, Quote(WikiLink(cleaned)))
		default:
			cleaned := cleanShort(value)
			if cleaned == "" {
				continue
			}
			encoded = append(encoded, cleaned)
		}
	}

	if len(encoded) == 0 {
		return nil
	}
	return encoded
}

// cleanShort strips the colon, which breaks structured metadata lines,
// and trims the ends.
func cleanShort(value string) string {
	return strings.TrimSpace(strings.ReplaceAll(value, ":", ""))
}

// CollapseWhitespace folds runs of ASCII whitespace into single spaces
// and trims the ends. Non-breaking spaces count as content here, so
// decoded entity text keeps them.
func CollapseWhitespace(value string) string {
	return strings.Join(strings.FieldsFunc(value, isASCIISpace), " ")
}

func isASCIISpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

// Quote wraps value in double quotes without escaping.
func Quote(value string) string {
	return `"` + value + `"`
}

// WikiLink wraps value as a [[reference]] token.
func WikiLink(value string) string {
	return "[[" + value + "]]"
}

// IsQuoted reports whether value already carries wrapping double
// quotes. A deliberate prefix heuristic shared with template rendering.
func IsQuoted(value string) bool {
	return len(value) >= 2 && strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)
}

// IsWikiLink reports whether value is a bare [[reference]] token.
func IsWikiLink(value string) bool {
	return strings.HasPrefix(value, "[[") && strings.HasSuffix(value, "]]")
}

// Unquote strips one layer of wrapping double quotes when present.
func Unquote(value string) string {
	if IsQuoted(value) {
		return value[1 : len(value)-1]
	}
	return value
}
