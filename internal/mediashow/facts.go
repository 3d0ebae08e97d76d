package mediashow

import (
	"regexp"
	"strings"

	"kinonote/internal/kinopoisk"
)

var (
	markupTagPattern      = regexp.MustCompile(`<[^>]*>`)
	residualEntityPattern = regexp.MustCompile(`&#?[0-9a-zA-Z]+;`)
)

// entityReplacer decodes the encoded characters fact text is known to
// carry. Anything outside this table is dropped, not decoded; this is
// best-effort cleanup, not an HTML sanitizer.
var entityReplacer = strings.NewReplacer(
	"&laquo;", "«",
	"&raquo;", "»",
	"&ldquo;", "“",
	"&rdquo;", "”",
	"&lsquo;", "‘",
	"&rsquo;", "’",
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&nbsp;", "\u00a0",
	"&ndash;", "–",
	"&mdash;", "—",
	"&hellip;", "…",
)

// cleanFacts filters spoilers and empty entries, caps the list, and
// strips markup from the survivors.
func cleanFacts(facts []kinopoisk.Fact) []string {
	kept := make([]string, 0, maxFacts)
	for _, fact := range facts {
		if fact.Spoiler || strings.TrimSpace(fact.Value) == "" {
			continue
		}
		kept = append(kept, decodeFact(fact.Value))
		if len(kept) == maxFacts {
			break
		}
	}
	return kept
}

// decodeFact removes markup tags, decodes the known entity table, and
// drops any remaining encoded sequences.
func decodeFact(value string) string {
	value = markupTagPattern.ReplaceAllString(value, "")
	value = entityReplacer.Replace(value)
	value = residualEntityPattern.ReplaceAllString(value, "")
	return strings.TrimSpace(value)
}
