package i18n

import (
	"embed"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

//go:embed messages/*.toml
var catalogFS embed.FS

var supported = []language.Tag{
	language.English,
	language.Russian,
}

// Bundle resolves message keys for one locale with English fallback.
type Bundle struct {
	tag      language.Tag
	messages map[string]string
	fallback map[string]string
}

// Load builds a Bundle for the locale closest to lang. Unsupported
// locales fall back to English rather than failing.
func Load(lang string) (*Bundle, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return nil, fmt.Errorf("parse language %q: %w", lang, err)
	}
	matcher := language.NewMatcher(supported)
	_, index, _ := matcher.Match(tag)
	resolved := supported[index]

	fallback, err := loadCatalog(language.English)
	if err != nil {
		return nil, err
	}
	messages := fallback
	if resolved != language.English {
		messages, err = loadCatalog(resolved)
		if err != nil {
			return nil, err
		}
	}
	return &Bundle{tag: resolved, messages: messages, fallback: fallback}, nil
}

// Language reports the locale the bundle resolved to.
func (b *Bundle) Language() string {
	return b.tag.String()
}

// Lookup returns the message for a dotted key. Keys missing from the
// locale fall back to English, then to the key itself.
func (b *Bundle) Lookup(key string) string {
	if value, ok := b.messages[key]; ok {
		return value
	}
	if value, ok := b.fallback[key]; ok {
		return value
	}
	return key
}

// LookupParams resolves a key and substitutes {name} placeholders from
// params.
func (b *Bundle) LookupParams(key string, params map[string]string) string {
	message := b.Lookup(key)
	for name, value := range params {
		message = strings.ReplaceAll(message, "{"+name+"}", value)
	}
	return message
}

// MediaTypeLabel localizes a raw catalog media type code such as
// "tv-series". Unrecognized codes come back unchanged.
func (b *Bundle) MediaTypeLabel(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return ""
	}
	key := "mediaType." + code
	if label := b.Lookup(key); label != key {
		return label
	}
	return code
}

func loadCatalog(tag language.Tag) (map[string]string, error) {
	base, _ := tag.Base()
	name := fmt.Sprintf("messages/%s.toml", base.String())
	data, err := catalogFS.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", name, err)
	}
	var nested map[string]any
	if err := toml.Unmarshal(data, &nested); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", name, err)
	}
	flat := make(map[string]string)
	flatten("", nested, flat)
	return flat, nil
}

func flatten(prefix string, nested map[string]any, flat map[string]string) {
	for key, value := range nested {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}
		switch typed := value.(type) {
		case map[string]any:
			flatten(full, typed, flat)
		case string:
			flat[full] = typed
		default:
			flat[full] = fmt.Sprintf("%v", typed)
		}
	}
}
