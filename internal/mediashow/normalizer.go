package mediashow

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"kinonote/internal/fieldfmt"
	"kinonote/internal/i18n"
	"kinonote/internal/kinopoisk"
)

const (
	maxFacts    = 5
	minDateYear = 1800
	maxDateYear = 2100
)

// Normalizer builds MovieShow records. The message bundle localizes
// media type labels.
type Normalizer struct {
	messages *i18n.Bundle
}

// NewNormalizer creates a Normalizer using the supplied message bundle.
func NewNormalizer(messages *i18n.Bundle) *Normalizer {
	return &Normalizer{messages: messages}
}

// Normalize projects one raw catalog record onto the flat schema. It
// fails only for a nil record; missing optional data resolves to empty
// values.
func (n *Normalizer) Normalize(raw *kinopoisk.Movie) (*MovieShow, error) {
	if raw == nil {
		return nil, errors.New("raw record is nil")
	}

	show := &MovieShow{
		ID:       raw.ID,
		IsSeries: raw.IsSeries,
		Year:     raw.Year,

		MovieLength:       raw.MovieLength,
		SeriesLength:      raw.SeriesLength,
		TotalSeriesLength: raw.TotalSeriesLength,
		AgeRating:         raw.AgeRating,
		Top10:             raw.Top10,
		Top250:            raw.Top250,
	}

	show.Type = fieldfmt.Format(one(n.typeLabel(raw.Type)), fieldfmt.Plain)
	show.Name = fieldfmt.Format(one(raw.Name), fieldfmt.Plain)
	show.AlternativeName = fieldfmt.Format(one(raw.AlternativeName), fieldfmt.Plain)
	show.EnName = fieldfmt.Format(one(raw.EnName), fieldfmt.Plain)
	show.NameForFile = nameForFile(raw.Name)
	show.AlternativeNameForFile = nameForFile(raw.AlternativeName)
	show.EnNameForFile = nameForFile(raw.EnName)

	show.Description = fieldfmt.Format(one(raw.Description), fieldfmt.Quoted)
	show.ShortDescription = fieldfmt.Format(one(raw.ShortDescription), fieldfmt.Quoted)
	show.Slogan = fieldfmt.Format(one(raw.Slogan), fieldfmt.Quoted)
	show.Status = fieldfmt.Format(one(raw.Status), fieldfmt.Plain)
	show.RatingMpaa = fieldfmt.Format(one(raw.RatingMPAA), fieldfmt.Plain)

	if raw.Rating != nil {
		show.RatingKp = raw.Rating.KP
		show.RatingImdb = raw.Rating.IMDB
		show.RatingFilmCritics = raw.Rating.FilmCritics
		show.RatingRussianFilmCritics = raw.Rating.RussianFilmCritics
	}
	if raw.Votes != nil {
		show.VotesKp = raw.Votes.KP
		show.VotesImdb = raw.Votes.IMDB
		show.VotesFilmCritics = raw.Votes.FilmCritics
		show.VotesRussianFilmCritics = raw.Votes.RussianFilmCritics
	}

	show.SeasonsCount, show.EpisodesPerSeason = seasonSummary(raw.SeasonsInfo)

	directors, actors, writers, producers := partitionPersons(raw.Persons)
	show.Director = fieldfmt.Format(directors, fieldfmt.Plain)
	show.DirectorLinks = fieldfmt.Format(directors, fieldfmt.Link)
	show.Actors = fieldfmt.Format(actors, fieldfmt.Plain)
	show.ActorsLinks = fieldfmt.Format(actors, fieldfmt.Link)
	show.Writers = fieldfmt.Format(writers, fieldfmt.Plain)
	show.WritersLinks = fieldfmt.Format(writers, fieldfmt.Link)
	show.Producers = fieldfmt.Format(producers, fieldfmt.Plain)
	show.ProducersLinks = fieldfmt.Format(producers, fieldfmt.Link)

	genres := itemNames(raw.Genres)
	show.Genres = fieldfmt.Format(genres, fieldfmt.Plain)
	show.GenresLinks = fieldfmt.Format(genres, fieldfmt.Link)
	countries := itemNames(raw.Countries)
	show.Countries = fieldfmt.Format(countries, fieldfmt.Plain)
	show.CountriesLinks = fieldfmt.Format(countries, fieldfmt.Link)

	networks := networkNames(raw.Networks)
	show.Networks = fieldfmt.Format(networks, fieldfmt.Plain)
	show.NetworksLinks = fieldfmt.Format(networks, fieldfmt.Link)
	companies := companyNames(raw.ProductionCompanies)
	show.ProductionCompanies = fieldfmt.Format(companies, fieldfmt.Plain)
	show.ProductionCompaniesLinks = fieldfmt.Format(companies, fieldfmt.Link)

	similar := linkedNames(raw.SimilarMovies)
	show.SimilarMovies = fieldfmt.Format(similar, fieldfmt.Plain)
	show.SimilarMoviesLinks = fieldfmt.Format(similar, fieldfmt.Link)
	sequels := linkedNames(raw.SequelsAndPrequels)
	show.SequelsAndPrequels = fieldfmt.Format(sequels, fieldfmt.Plain)
	show.SequelsAndPrequelsLinks = fieldfmt.Format(sequels, fieldfmt.Link)

	show.PosterURL = fieldfmt.Format(one(imageURL(raw.Poster)), fieldfmt.URL)
	show.PosterPreviewURL = fieldfmt.Format(one(imagePreview(raw.Poster)), fieldfmt.URL)
	show.PosterImageLink = ImageRef(imageURL(raw.Poster))
	show.BackdropURL = fieldfmt.Format(one(imageURL(raw.Backdrop)), fieldfmt.URL)
	show.BackdropPreviewURL = fieldfmt.Format(one(imagePreview(raw.Backdrop)), fieldfmt.URL)
	show.BackdropImageLink = ImageRef(imageURL(raw.Backdrop))
	show.LogoURL = fieldfmt.Format(one(imageURL(raw.Logo)), fieldfmt.URL)
	show.LogoPreviewURL = fieldfmt.Format(one(imagePreview(raw.Logo)), fieldfmt.URL)
	show.LogoImageLink = ImageRef(imageURL(raw.Logo))

	show.Budget = formatMoney(raw.Budget)
	if raw.Fees != nil {
		show.FeesWorld = formatMoney(raw.Fees.World)
		show.FeesRussia = formatMoney(raw.Fees.Russia)
		show.FeesUSA = formatMoney(raw.Fees.USA)
	}

	if raw.Premiere != nil {
		show.PremiereWorld = fieldfmt.Format(one(formatDate(raw.Premiere.World)), fieldfmt.Plain)
		show.PremiereRussia = fieldfmt.Format(one(formatDate(raw.Premiere.Russia)), fieldfmt.Plain)
		show.PremiereDigital = fieldfmt.Format(one(formatDate(raw.Premiere.Digital)), fieldfmt.Plain)
		show.PremiereCinema = fieldfmt.Format(one(formatDate(raw.Premiere.Cinema)), fieldfmt.Plain)
	}

	show.Facts = fieldfmt.FormatWithLimit(cleanFacts(raw.Facts), fieldfmt.Quoted, maxFacts)
	show.Trailers = fieldfmt.Format(trailerURLs(raw.Videos), fieldfmt.URL)

	return show, nil
}

func (n *Normalizer) typeLabel(code string) string {
	if n.messages == nil {
		return code
	}
	return n.messages.MediaTypeLabel(code)
}

// one lifts a scalar into the sequence representation, empty meaning
// absent.
func one(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return []string{value}
}

// nameForFile strips only the colon. The full illegal-character strip
// happens later against the rendered file name candidate.
func nameForFile(value string) string {
	return strings.TrimSpace(strings.ReplaceAll(value, ":", ""))
}

func seasonSummary(seasons []kinopoisk.SeasonInfo) (count, average int) {
	count = len(seasons)
	if count == 0 {
		return 0, 0
	}
	total := 0
	for _, season := range seasons {
		total += season.EpisodesCount
	}
	if total <= 0 {
		return count, 0
	}
	average = (total + count - 1) / count
	return count, average
}

// partitionPersons splits the flat credits list into the four buckets
// templates expose. The profession tag must match exactly; entries
// without a usable name or tag are dropped. Source order is kept.
func partitionPersons(persons []kinopoisk.Person) (directors, actors, writers, producers []string) {
	for _, person := range persons {
		name := strings.TrimSpace(person.Name)
		if name == "" {
			name = strings.TrimSpace(person.EnName)
		}
		if name == "" {
			continue
		}
		switch person.EnProfession {
		case "director":
			directors = append(directors, name)
		case "actor":
			actors = append(actors, name)
		case "writer":
			writers = append(writers, name)
		case "producer":
			producers = append(producers, name)
		}
	}
	return directors, actors, writers, producers
}

func itemNames(items []kinopoisk.NamedItem) []string {
	names := make([]string, 0, len(items))
	for _, item := range items {
		names = append(names, item.Name)
	}
	return names
}

func networkNames(networks *kinopoisk.Networks) []string {
	if networks == nil {
		return nil
	}
	names := make([]string, 0, len(networks.Items))
	for _, item := range networks.Items {
		names = append(names, item.Name)
	}
	return names
}

func companyNames(companies []kinopoisk.Company) []string {
	names := make([]string, 0, len(companies))
	for _, company := range companies {
		names = append(names, company.Name)
	}
	return names
}

func linkedNames(movies []kinopoisk.LinkedMovie) []string {
	names := make([]string, 0, len(movies))
	for _, movie := range movies {
		name := strings.TrimSpace(movie.Name)
		if name == "" {
			name = strings.TrimSpace(movie.AlternativeName)
		}
		if name == "" {
			name = strings.TrimSpace(movie.EnName)
		}
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func imageURL(image *kinopoisk.Image) string {
	if image == nil {
		return ""
	}
	return image.URL
}

func imagePreview(image *kinopoisk.Image) string {
	if image == nil {
		return ""
	}
	return image.PreviewURL
}

func formatMoney(amount *kinopoisk.Money) []string {
	if amount == nil || amount.Value <= 0 {
		return nil
	}
	text := strconv.FormatInt(amount.Value, 10)
	if currency := strings.TrimSpace(amount.Currency); currency != "" {
		text += " " + currency
	}
	return []string{text}
}

var dateLayouts = []string{
	"2006-01-02T15:04:05.000Z",
	time.RFC3339,
	"2006-01-02",
}

// formatDate renders an API date string as an ISO day. Unparseable
// input and years outside [1800, 2100] format to empty.
func formatDate(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		parsed, err := time.Parse(layout, value)
		if err != nil {
			continue
		}
		if parsed.Year() < minDateYear || parsed.Year() > maxDateYear {
			return ""
		}
		return parsed.Format("2006-01-02")
	}
	return ""
}

func trailerURLs(videos *kinopoisk.Videos) []string {
	if videos == nil {
		return nil
	}
	urls := make([]string, 0, len(videos.Trailers))
	for _, trailer := range videos.Trailers {
		if strings.TrimSpace(trailer.URL) == "" {
			continue
		}
		urls = append(urls, trailer.URL)
	}
	return urls
}
