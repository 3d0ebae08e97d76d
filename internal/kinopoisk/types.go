package kinopoisk

// NamedItem is a simple named entity such as a genre or country.
type NamedItem struct {
	Name string `json:"name"`
}

// Image carries the remote locations of one artwork kind.
type Image struct {
	URL        string `json:"url"`
	PreviewURL string `json:"previewUrl"`
}

// Rating groups scores per rating source.
type Rating struct {
	KP                 float64 `json:"kp"`
	IMDB               float64 `json:"imdb"`
	FilmCritics        float64 `json:"filmCritics"`
	RussianFilmCritics float64 `json:"russianFilmCritics"`
}

// Votes groups vote counts per rating source.
type Votes struct {
	KP                 int64 `json:"kp"`
	IMDB               int64 `json:"imdb"`
	FilmCritics        int64 `json:"filmCritics"`
	RussianFilmCritics int64 `json:"russianFilmCritics"`
}

// Person is one entry of the flat credits list. EnProfession carries
// the stable role tag (director, actor, writer, producer).
type Person struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	EnName       string `json:"enName"`
	Photo        string `json:"photo"`
	Profession   string `json:"profession"`
	EnProfession string `json:"enProfession"`
}

// Money is an amount with its currency symbol.
type Money struct {
	Value    int64  `json:"value"`
	Currency string `json:"currency"`
}

// Fees groups box office amounts per region.
type Fees struct {
	World  *Money `json:"world"`
	Russia *Money `json:"russia"`
	USA    *Money `json:"usa"`
}

// Premiere carries release dates per channel as API date strings.
type Premiere struct {
	World   string `json:"world"`
	Russia  string `json:"russia"`
	Digital string `json:"digital"`
	Cinema  string `json:"cinema"`
}

// SeasonInfo summarizes one season.
type SeasonInfo struct {
	Number        int `json:"number"`
	EpisodesCount int `json:"episodesCount"`
}

// Fact is one free-text trivia entry. Value may contain HTML markup.
type Fact struct {
	Value   string `json:"value"`
	Type    string `json:"type"`
	Spoiler bool   `json:"spoiler"`
}

// Video describes one trailer or teaser.
type Video struct {
	URL  string `json:"url"`
	Name string `json:"name"`
	Site string `json:"site"`
	Type string `json:"type"`
}

// Videos groups the video lists of a record.
type Videos struct {
	Trailers []Video `json:"trailers"`
}

// LinkedMovie references a related production.
type LinkedMovie struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	AlternativeName string `json:"alternativeName"`
	EnName          string `json:"enName"`
	Type            string `json:"type"`
}

// NetworkItem is one broadcasting network.
type NetworkItem struct {
	Name string `json:"name"`
	Logo *Image `json:"logo"`
}

// Networks wraps the network list the API nests under items.
type Networks struct {
	Items []NetworkItem `json:"items"`
}

// Company is a production company entry.
type Company struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	PreviewURL string `json:"previewUrl"`
}

// Movie is the raw catalog record as supplied by the API.
type Movie struct {
	ID                  int64         `json:"id"`
	Name                string        `json:"name"`
	AlternativeName     string        `json:"alternativeName"`
	EnName              string        `json:"enName"`
	Type                string        `json:"type"`
	Year                int           `json:"year"`
	Description         string        `json:"description"`
	ShortDescription    string        `json:"shortDescription"`
	Slogan              string        `json:"slogan"`
	Status              string        `json:"status"`
	Rating              *Rating       `json:"rating"`
	Votes               *Votes        `json:"votes"`
	MovieLength         int           `json:"movieLength"`
	SeriesLength        int           `json:"seriesLength"`
	TotalSeriesLength   int           `json:"totalSeriesLength"`
	RatingMPAA          string        `json:"ratingMpaa"`
	AgeRating           int           `json:"ageRating"`
	Poster              *Image        `json:"poster"`
	Backdrop            *Image        `json:"backdrop"`
	Logo                *Image        `json:"logo"`
	Videos              *Videos       `json:"videos"`
	Genres              []NamedItem   `json:"genres"`
	Countries           []NamedItem   `json:"countries"`
	Persons             []Person      `json:"persons"`
	Facts               []Fact        `json:"facts"`
	Budget              *Money        `json:"budget"`
	Fees                *Fees         `json:"fees"`
	Premiere            *Premiere     `json:"premiere"`
	SimilarMovies       []LinkedMovie `json:"similarMovies"`
	SequelsAndPrequels  []LinkedMovie `json:"sequelsAndPrequels"`
	Top10               int           `json:"top10"`
	Top250              int           `json:"top250"`
	SeasonsInfo         []SeasonInfo  `json:"seasonsInfo"`
	IsSeries            bool          `json:"isSeries"`
	Networks            *Networks     `json:"networks"`
	ProductionCompanies []Company     `json:"productionCompanies"`
}

// SearchResponse models the paginated search payload.
type SearchResponse struct {
	Docs  []Movie `json:"docs"`
	Total int     `json:"total"`
	Limit int     `json:"limit"`
	Page  int     `json:"page"`
	Pages int     `json:"pages"`
}
