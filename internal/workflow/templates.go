package workflow

import _ "embed"

// Built-in note templates, used when the configuration does not point
// at template files inside the vault.

//go:embed templates/movie.md
var defaultMovieTemplate string

//go:embed templates/series.md
var defaultSeriesTemplate string
