package mediashow_test

import (
	"reflect"
	"testing"

	"kinonote/internal/mediashow"
)

func TestImageRef(t *testing.T) {
	cases := []struct {
		name     string
		location string
		want     []string
	}{
		{name: "remote", location: "https://img.example/x.jpg", want: []string{"![](https://img.example/x.jpg)"}},
		{name: "remote http", location: "http://img.example/x.jpg", want: []string{"![](http://img.example/x.jpg)"}},
		{name: "local path keeps only file name", location: "attachments/x.jpg", want: []string{"![[x.jpg]]"}},
		{name: "bare file name", location: "x.jpg", want: []string{"![[x.jpg]]"}},
		{name: "empty", location: "", want: nil},
		{name: "whitespace", location: "   ", want: nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mediashow.ImageRef(tc.location)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("ImageRef(%q) = %v, want %v", tc.location, got, tc.want)
			}
		})
	}
}

func TestApplyLocalImage(t *testing.T) {
	show := &mediashow.MovieShow{
		PosterURL:       []string{"https://img.example/x.jpg"},
		PosterImageLink: []string{"![](https://img.example/x.jpg)"},
	}

	show.ApplyLocalImage(mediashow.ImagePoster, "attachments/poster-301.jpg")

	if !reflect.DeepEqual(show.PosterImageLink, []string{"![[poster-301.jpg]]"}) {
		t.Fatalf("poster image link = %v", show.PosterImageLink)
	}
	if !reflect.DeepEqual(show.PosterURL, []string{"https://img.example/x.jpg"}) {
		t.Fatalf("poster url must stay remote, got %v", show.PosterURL)
	}

	// An empty path must not wipe the existing reference.
	show.ApplyLocalImage(mediashow.ImagePoster, "")
	if !reflect.DeepEqual(show.PosterImageLink, []string{"![[poster-301.jpg]]"}) {
		t.Fatalf("poster image link clobbered: %v", show.PosterImageLink)
	}
}

func TestPlaceholdersCoverFieldFamilies(t *testing.T) {
	show := &mediashow.MovieShow{
		ID:     301,
		Year:   2010,
		Name:   []string{"Начало"},
		Genres: []string{"фантастика", "боевик"},
	}
	placeholders := show.Placeholders()

	for _, key := range []string{
		"id", "year", "name", "alternativename", "enname",
		"nameforfile", "description", "ratingkp", "voteskp",
		"genres", "genreslinks", "actors", "actorslinks",
		"posterurl", "posterimagelink", "budget", "premiereworld",
		"facts", "seasonscount", "episodesperseason", "isseries",
	} {
		if _, ok := placeholders[key]; !ok {
			t.Errorf("placeholder %q missing", key)
		}
	}
	if placeholders["id"] != int64(301) {
		t.Fatalf("id placeholder = %v", placeholders["id"])
	}
	if !reflect.DeepEqual(placeholders["genres"], []string{"фантастика", "боевик"}) {
		t.Fatalf("genres placeholder = %v", placeholders["genres"])
	}
}
