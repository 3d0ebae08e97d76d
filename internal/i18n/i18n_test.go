package i18n_test

import (
	"testing"

	"kinonote/internal/i18n"
)

func TestLookupEnglish(t *testing.T) {
	bundle, err := i18n.Load("en")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := bundle.Lookup("fileName.unknown"); got != "Unknown" {
		t.Fatalf("fileName.unknown = %q, want Unknown", got)
	}
	if got := bundle.Lookup("fileName.copy"); got != "Copy" {
		t.Fatalf("fileName.copy = %q, want Copy", got)
	}
}

func TestLookupRussian(t *testing.T) {
	bundle, err := i18n.Load("ru")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := bundle.Lookup("fileName.unknown"); got != "Неизвестно" {
		t.Fatalf("fileName.unknown = %q, want Неизвестно", got)
	}
	if got := bundle.Lookup("fileName.copy"); got != "Копия" {
		t.Fatalf("fileName.copy = %q, want Копия", got)
	}
}

func TestUnsupportedLocaleFallsBackToEnglish(t *testing.T) {
	bundle, err := i18n.Load("de-DE")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if bundle.Language() != "en" {
		t.Fatalf("expected en fallback, got %q", bundle.Language())
	}
	if got := bundle.Lookup("fileName.unknown"); got != "Unknown" {
		t.Fatalf("fileName.unknown = %q, want Unknown", got)
	}
}

func TestRegionalVariantMatchesBase(t *testing.T) {
	bundle, err := i18n.Load("ru-RU")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := bundle.Lookup("fileName.copy"); got != "Копия" {
		t.Fatalf("fileName.copy = %q, want Копия", got)
	}
}

func TestLookupUnknownKeyReturnsKey(t *testing.T) {
	bundle, err := i18n.Load("en")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if got := bundle.Lookup("no.such.key"); got != "no.such.key" {
		t.Fatalf("unknown key lookup = %q", got)
	}
}

func TestLookupParams(t *testing.T) {
	bundle, err := i18n.Load("en")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	got := bundle.LookupParams("search.noResults", map[string]string{"query": "Dune"})
	if got != `Nothing found for "Dune"` {
		t.Fatalf("LookupParams = %q", got)
	}
}

func TestMediaTypeLabel(t *testing.T) {
	bundle, err := i18n.Load("ru")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	cases := []struct {
		code string
		want string
	}{
		{code: "movie", want: "Фильм"},
		{code: "tv-series", want: "Сериал"},
		{code: "animated-series", want: "Анимационный сериал"},
		{code: "unknown-kind", want: "unknown-kind"},
		{code: "", want: ""},
	}
	for _, tc := range cases {
		if got := bundle.MediaTypeLabel(tc.code); got != tc.want {
			t.Fatalf("MediaTypeLabel(%q) = %q, want %q", tc.code, got, tc.want)
		}
	}
}

func TestLoadRejectsGarbage(t *testing.T) {
	if _, err := i18n.Load("not a tag"); err == nil {
		t.Fatal("expected error for invalid language tag")
	}
}
