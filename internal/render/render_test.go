package render

import (
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"kinonote/internal/mediashow"
)

func TestRenderDualEncoding(t *testing.T) {
	show := &mediashow.MovieShow{
		Genres: []string{"Action", "Drama"},
	}
	template := "---\ngenre: {{genres}}\n---\nTop genres: {{genres}}."

	out, diags := Render(show, template)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := "---\ngenre: \"Action, Drama\"\n---\nTop genres: Action, Drama."
	if out != want {
		t.Fatalf("rendered:\n%s\nwant:\n%s", out, want)
	}
}

func TestRenderSingleElementHeader(t *testing.T) {
	show := &mediashow.MovieShow{
		Name:        []string{"Inception"},
		Description: []string{`"A thief who steals secrets."`},
		GenresLinks: []string{`"[[Action]]"`},
		Countries:   []string{"[[USA]]"},
	}
	template := "---\ntitle: {{name}}\ndescription: {{description}}\ngenreLinks: {{genresLinks}}\ncountry: {{countries}}\n---\n"

	out, diags := Render(show, template)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	lines := strings.Split(out, "\n")
	expect := map[int]string{
		1: "title: Inception",
		2: `description: "A thief who steals secrets."`,
		3: `genreLinks: "[[Action]]"`,
		4: `country: "[[USA]]"`,
	}
	for index, want := range expect {
		if lines[index] != want {
			t.Errorf("line %d = %q, want %q", index, lines[index], want)
		}
	}
}

func TestRenderBodyStripsQuotes(t *testing.T) {
	show := &mediashow.MovieShow{
		Description: []string{`"A thief who steals secrets."`},
		GenresLinks: []string{`"[[Action]]"`, `"[[Drama]]"`},
	}
	template := "{{description}}\n\nSee also: {{genresLinks}}"

	out, diags := Render(show, template)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := "A thief who steals secrets.\n\nSee also: [[Action]], [[Drama]]"
	if out != want {
		t.Fatalf("rendered:\n%s\nwant:\n%s", out, want)
	}
}

func TestRenderMultiElementHeaderEscapesQuotes(t *testing.T) {
	show := &mediashow.MovieShow{
		GenresLinks: []string{`"[[Action]]"`, `"[[Drama]]"`},
	}
	template := "---\ngenreLinks: {{genresLinks}}\n---\nx"

	out, _ := Render(show, template)
	want := `genreLinks: "\"[[Action]]\", \"[[Drama]]\""`
	if !strings.Contains(out, want) {
		t.Fatalf("rendered %q does not contain %q", out, want)
	}
}

func TestRenderScalars(t *testing.T) {
	show := &mediashow.MovieShow{
		ID:       301,
		Year:     2010,
		RatingKp: 8.7,
		IsSeries: true,
	}
	template := "id={{id}} year={{year}} rating={{ratingKp}} series={{isSeries}}"

	out, _ := Render(show, template)
	if out != "id=301 year=2010 rating=8.7 series=true" {
		t.Fatalf("rendered %q", out)
	}
}

func TestRenderCaseInsensitiveTokens(t *testing.T) {
	show := &mediashow.MovieShow{Name: []string{"Inception"}, Year: 2010}
	out, _ := Render(show, "{{NAME}} / {{Name}} / {{name}} ({{YEAR}})")
	if out != "Inception / Inception / Inception (2010)" {
		t.Fatalf("rendered %q", out)
	}
}

func TestRenderDeletesStrayTokens(t *testing.T) {
	show := &mediashow.MovieShow{Name: []string{"Inception"}}
	out, diags := Render(show, "{{name}} {{nonexistentField}}!")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if out != "Inception !" {
		t.Fatalf("rendered %q", out)
	}
}

func TestRenderDeletesTokensArrivingViaValues(t *testing.T) {
	show := &mediashow.MovieShow{Name: []string{"weird {{inner}} title"}}
	out, _ := Render(show, "{{name}}")
	if out != "weird  title" {
		t.Fatalf("rendered %q", out)
	}
}

func TestRenderValuesTakesPlainMaps(t *testing.T) {
	values := map[string]any{
		"tags":  []string{`"[[Sci-Fi]]"`, `"[[Heist]]"`},
		"count": 2,
	}
	template := "---\ntags: {{tags}}\n---\n{{count}} tags: {{tags}}"

	out, diags := RenderValues(values, template)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := "---\ntags: \"\\\"[[Sci-Fi]]\\\", \\\"[[Heist]]\\\"\"\n---\n2 tags: [[Sci-Fi]], [[Heist]]"
	if out != want {
		t.Fatalf("rendered:\n%s\nwant:\n%s", out, want)
	}
}

func TestRenderWithoutHeaderUsesBodyEncoding(t *testing.T) {
	show := &mediashow.MovieShow{Description: []string{`"Long text."`}}
	out, _ := Render(show, "{{description}}")
	if out != "Long text." {
		t.Fatalf("rendered %q", out)
	}
}

func TestRenderUnclosedFenceIsBody(t *testing.T) {
	show := &mediashow.MovieShow{Description: []string{`"Long text."`}}
	out, _ := Render(show, "---\ndescription: {{description}}")
	if out != "---\ndescription: Long text." {
		t.Fatalf("rendered %q", out)
	}
}

func TestRenderNilShowReturnsTemplate(t *testing.T) {
	template := "---\ntitle: {{name}}\n---"
	out, diags := Render(nil, template)
	if out != template {
		t.Fatalf("rendered %q, want original template", out)
	}
	if len(diags) != 1 {
		t.Fatalf("expected one diagnostic, got %v", diags)
	}
}

func TestRenderBodyIgnoresFence(t *testing.T) {
	show := &mediashow.MovieShow{NameForFile: "Inception", Year: 2010}
	out, diags := RenderBody(show, "{{nameForFile}} ({{year}})")
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if out != "Inception (2010)" {
		t.Fatalf("rendered %q", out)
	}
}

func TestEncodeFieldRecoversFromPanic(t *testing.T) {
	text, err := encodeField("boom", nil, func(any) string {
		panic("exploding encoder")
	})
	if err == nil {
		t.Fatal("expected error from panicking encoder")
	}
	if text != "" {
		t.Fatalf("expected empty text, got %q", text)
	}
}

func TestRenderedHeaderParsesAsYAML(t *testing.T) {
	show := &mediashow.MovieShow{
		Name:        []string{"Inception"},
		Year:        2010,
		RatingKp:    8.7,
		Genres:      []string{"Action", "Drama"},
		GenresLinks: []string{`"[[Action]]"`, `"[[Drama]]"`},
		Description: []string{`"A thief who steals corporate secrets."`},
	}
	template := "---\n" +
		"title: {{name}}\n" +
		"year: {{year}}\n" +
		"rating: {{ratingKp}}\n" +
		"genre: {{genres}}\n" +
		"genreLinks: {{genresLinks}}\n" +
		"description: {{description}}\n" +
		"---\n" +
		"{{description}}\n"

	out, diags := Render(show, template)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	match := frontmatterPattern.FindStringSubmatch(out + "\n")
	if match == nil {
		t.Fatalf("rendered output lost its frontmatter fence:\n%s", out)
	}
	var header map[string]any
	if err := yaml.Unmarshal([]byte(match[2]), &header); err != nil {
		t.Fatalf("frontmatter is not valid YAML: %v\n%s", err, match[2])
	}
	if header["title"] != "Inception" {
		t.Fatalf("title = %v", header["title"])
	}
	if header["year"] != 2010 {
		t.Fatalf("year = %v", header["year"])
	}
	if header["genre"] != "Action, Drama" {
		t.Fatalf("genre = %v", header["genre"])
	}
	if header["genreLinks"] != `"[[Action]]", "[[Drama]]"` {
		t.Fatalf("genreLinks = %v", header["genreLinks"])
	}
}
