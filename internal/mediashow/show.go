package mediashow

import (
	"path/filepath"
	"strings"
)

// ImageKind names one of the three artwork slots a show carries.
type ImageKind string

const (
	ImagePoster   ImageKind = "poster"
	ImageBackdrop ImageKind = "backdrop"
	ImageLogo     ImageKind = "logo"
)

// MovieShow is the normalized, template-ready record. It is built once
// by a Normalizer and afterwards mutated only through ApplyLocalImage,
// which swaps an embedded image reference from remote to local form.
type MovieShow struct {
	ID       int64
	Type     []string
	IsSeries bool
	Year     int

	Name            []string
	AlternativeName []string
	EnName          []string

	// Name variants with colons stripped, reserved for file naming.
	// Never quoted and never wrapped as links.
	NameForFile            string
	AlternativeNameForFile string
	EnNameForFile          string

	Description      []string
	ShortDescription []string
	Slogan           []string
	Status           []string

	RatingKp                 float64
	RatingImdb               float64
	RatingFilmCritics        float64
	RatingRussianFilmCritics float64
	VotesKp                  int64
	VotesImdb                int64
	VotesFilmCritics         int64
	VotesRussianFilmCritics  int64

	MovieLength       int
	SeriesLength      int
	TotalSeriesLength int
	RatingMpaa        []string
	AgeRating         int
	Top10             int
	Top250            int

	SeasonsCount      int
	EpisodesPerSeason int

	Genres                   []string
	GenresLinks              []string
	Countries                []string
	CountriesLinks           []string
	Director                 []string
	DirectorLinks            []string
	Actors                   []string
	ActorsLinks              []string
	Writers                  []string
	WritersLinks             []string
	Producers                []string
	ProducersLinks           []string
	Networks                 []string
	NetworksLinks            []string
	ProductionCompanies      []string
	ProductionCompaniesLinks []string
	SimilarMovies            []string
	SimilarMoviesLinks       []string
	SequelsAndPrequels       []string
	SequelsAndPrequelsLinks  []string

	PosterURL          []string
	PosterPreviewURL   []string
	PosterImageLink    []string
	BackdropURL        []string
	BackdropPreviewURL []string
	BackdropImageLink  []string
	LogoURL            []string
	LogoPreviewURL     []string
	LogoImageLink      []string

	Budget     []string
	FeesWorld  []string
	FeesRussia []string
	FeesUSA    []string

	PremiereWorld   []string
	PremiereRussia  []string
	PremiereDigital []string
	PremiereCinema  []string

	Facts    []string
	Trailers []string
}

// Placeholders exposes every template placeholder with its value.
// Keys are lowercase; template tokens match case-insensitively.
func (s *MovieShow) Placeholders() map[string]any {
	return map[string]any{
		"id":                       s.ID,
		"type":                     s.Type,
		"isseries":                 s.IsSeries,
		"year":                     s.Year,
		"name":                     s.Name,
		"alternativename":          s.AlternativeName,
		"enname":                   s.EnName,
		"nameforfile":              s.NameForFile,
		"alternativenameforfile":   s.AlternativeNameForFile,
		"ennameforfile":            s.EnNameForFile,
		"description":              s.Description,
		"shortdescription":         s.ShortDescription,
		"slogan":                   s.Slogan,
		"status":                   s.Status,
		"ratingkp":                 s.RatingKp,
		"ratingimdb":               s.RatingImdb,
		"ratingfilmcritics":        s.RatingFilmCritics,
		"ratingrussianfilmcritics": s.RatingRussianFilmCritics,
		"voteskp":                  s.VotesKp,
		"votesimdb":                s.VotesImdb,
		"votesfilmcritics":         s.VotesFilmCritics,
		"votesrussianfilmcritics":  s.VotesRussianFilmCritics,
		"movielength":              s.MovieLength,
		"serieslength":             s.SeriesLength,
		"totalserieslength":        s.TotalSeriesLength,
		"ratingmpaa":               s.RatingMpaa,
		"agerating":                s.AgeRating,
		"top10":                    s.Top10,
		"top250":                   s.Top250,
		"seasonscount":             s.SeasonsCount,
		"episodesperseason":        s.EpisodesPerSeason,
		"genres":                   s.Genres,
		"genreslinks":              s.GenresLinks,
		"countries":                s.Countries,
		"countrieslinks":           s.CountriesLinks,
		"director":                 s.Director,
		"directorlinks":            s.DirectorLinks,
		"actors":                   s.Actors,
		"actorslinks":              s.ActorsLinks,
		"writers":                  s.Writers,
		"writerslinks":             s.WritersLinks,
		"producers":                s.Producers,
		"producerslinks":           s.ProducersLinks,
		"networks":                 s.Networks,
		"networkslinks":            s.NetworksLinks,
		"productioncompanies":      s.ProductionCompanies,
		"productioncompanieslinks": s.ProductionCompaniesLinks,
		"similarmovies":            s.SimilarMovies,
		"similarmovieslinks":       s.SimilarMoviesLinks,
		"sequelsandprequels":       s.SequelsAndPrequels,
		"sequelsandprequelslinks":  s.SequelsAndPrequelsLinks,
		"posterurl":                s.PosterURL,
		"posterpreviewurl":         s.PosterPreviewURL,
		"posterimagelink":          s.PosterImageLink,
		"backdropurl":              s.BackdropURL,
		"backdroppreviewurl":       s.BackdropPreviewURL,
		"backdropimagelink":        s.BackdropImageLink,
		"logourl":                  s.LogoURL,
		"logopreviewurl":           s.LogoPreviewURL,
		"logoimagelink":            s.LogoImageLink,
		"budget":                   s.Budget,
		"feesworld":                s.FeesWorld,
		"feesrussia":               s.FeesRussia,
		"feesusa":                  s.FeesUSA,
		"premiereworld":            s.PremiereWorld,
		"premiererussia":           s.PremiereRussia,
		"premieredigital":          s.PremiereDigital,
		"premierecinema":           s.PremiereCinema,
		"facts":                    s.Facts,
		"trailers":                 s.Trailers,
	}
}

// ApplyLocalImage replaces the embedded reference of one artwork slot
// with a local-file reference. The other two reference forms (raw and
// preview URL) stay untouched so templates can still reach the source.
func (s *MovieShow) ApplyLocalImage(kind ImageKind, path string) {
	ref := ImageRef(path)
	if len(ref) == 0 {
		return
	}
	switch kind {
	case ImagePoster:
		s.PosterImageLink = ref
	case ImageBackdrop:
		s.BackdropImageLink = ref
	case ImageLogo:
		s.LogoImageLink = ref
	}
}

// ImageRef builds the embedded reference sequence for an image
// location. Remote URLs render as inline markdown images, anything
// else is treated as a local path and rendered as a file embed with
// the directory part dropped.
func ImageRef(location string) []string {
	location = strings.TrimSpace(location)
	if location == "" {
		return nil
	}
	if isRemote(location) {
		return []string{"![](" + location + ")"}
	}
	return []string{"![[" + filepath.Base(location) + "]]"}
}

func isRemote(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
