package workflow

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"kinonote/internal/config"
	"kinonote/internal/i18n"
	"kinonote/internal/images"
	"kinonote/internal/kinopoisk"
	"kinonote/internal/logging"
	"kinonote/internal/mediashow"
	"kinonote/internal/naming"
	"kinonote/internal/render"
	"kinonote/internal/services"
	"kinonote/internal/vault"
)

// Creator turns one catalog record into a written note.
type Creator struct {
	cfg      *config.Config
	catalog  kinopoisk.Catalog
	store    *vault.Vault
	fetcher  *images.Fetcher
	messages *i18n.Bundle
	logger   *slog.Logger
}

// CreateOptions adjusts a single create operation.
type CreateOptions struct {
	// SkipImages leaves remote artwork references in place even when
	// downloads are enabled in the configuration.
	SkipImages bool
}

// Result describes one finished create or preview operation.
type Result struct {
	Path        string
	Note        string
	Attachments []string
	Diagnostics []render.FieldError
}

// NewCreator wires a Creator from its collaborators. fetcher may be
// nil when image downloads are disabled.
func NewCreator(cfg *config.Config, catalog kinopoisk.Catalog, store *vault.Vault, fetcher *images.Fetcher, messages *i18n.Bundle, logger *slog.Logger) *Creator {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Creator{
		cfg:      cfg,
		catalog:  catalog,
		store:    store,
		fetcher:  fetcher,
		messages: messages,
		logger:   logging.NewComponentLogger(logger, "workflow"),
	}
}

// Create fetches the record with the given catalog ID and writes its
// note into the vault. The file name collision check and the note
// write happen under the vault lock so concurrent invocations cannot
// claim the same name.
func (c *Creator) Create(ctx context.Context, id int64, opts CreateOptions) (*Result, error) {
	start := time.Now()
	ctx = operationContext(ctx, id, "create")
	logger := logging.WithContext(ctx, c.logger)

	show, result, err := c.prepare(ctx, logger, id, !opts.SkipImages)
	if err != nil {
		return nil, err
	}

	folder := c.noteFolder(show)
	err = c.store.WithLock(ctx, func() error {
		name := naming.MakeFileName(show, c.cfg.FileName.Format, c.messages, func(candidate string) bool {
			return c.store.Exists(filepath.Join(folder, candidate))
		})
		result.Path = filepath.Join(folder, name)
		return c.store.WriteNote(result.Path, []byte(result.Note))
	})
	if err != nil {
		return nil, services.Wrap(services.ErrTransient, "workflow", "write note", "Failed to write note into vault", err)
	}

	logger.Info("note created",
		logging.String("path", result.Path),
		logging.Int("attachments", len(result.Attachments)),
		logging.Duration("duration", time.Since(start)))
	return result, nil
}

// Preview renders the note without touching the vault. The returned
// path is the name the note would receive right now.
func (c *Creator) Preview(ctx context.Context, id int64) (*Result, error) {
	ctx = operationContext(ctx, id, "preview")
	logger := logging.WithContext(ctx, c.logger)

	show, result, err := c.prepare(ctx, logger, id, false)
	if err != nil {
		return nil, err
	}

	folder := c.noteFolder(show)
	name := naming.MakeFileName(show, c.cfg.FileName.Format, c.messages, func(candidate string) bool {
		return c.store.Exists(filepath.Join(folder, candidate))
	})
	result.Path = filepath.Join(folder, name)
	return result, nil
}

func (c *Creator) prepare(ctx context.Context, logger *slog.Logger, id int64, withImages bool) (*mediashow.MovieShow, *Result, error) {
	raw, err := c.catalog.GetByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, kinopoisk.ErrNotFound):
			return nil, nil, services.Wrap(services.ErrNotFound, "workflow", "fetch record", fmt.Sprintf("Movie %d does not exist in the catalog", id), err)
		case errors.Is(err, kinopoisk.ErrUnauthorized):
			return nil, nil, services.Wrap(services.ErrConfiguration, "workflow", "fetch record", "Catalog rejected the API key", err)
		case errors.Is(err, context.DeadlineExceeded):
			return nil, nil, services.Wrap(services.ErrTimeout, "workflow", "fetch record", "Catalog request timed out", err)
		default:
			return nil, nil, services.Wrap(services.ErrTransient, "workflow", "fetch record", "Catalog request failed", err)
		}
	}

	show, err := mediashow.NewNormalizer(c.messages).Normalize(raw)
	if err != nil {
		return nil, nil, services.Wrap(services.ErrValidation, "workflow", "normalize record", "Catalog returned an unusable record", err)
	}

	result := &Result{}
	if withImages && c.cfg.Images.Enabled && c.fetcher != nil {
		result.Attachments = c.downloadImages(ctx, logger, show)
	}

	note, diags := render.Render(show, c.template(show))
	for _, diag := range diags {
		logger.Warn("field substitution failed",
			logging.String("field", diag.Field),
			logging.Error(diag.Err))
	}
	result.Note = note
	result.Diagnostics = diags
	return show, result, nil
}

// downloadImages fetches poster, backdrop, and logo one at a time. A
// failed download keeps the remote reference and never fails the
// operation.
func (c *Creator) downloadImages(ctx context.Context, logger *slog.Logger, show *mediashow.MovieShow) []string {
	stem := c.attachmentStem(show)
	var saved []string
	slots := []struct {
		kind mediashow.ImageKind
		urls []string
	}{
		{mediashow.ImagePoster, show.PosterURL},
		{mediashow.ImageBackdrop, show.BackdropURL},
		{mediashow.ImageLogo, show.LogoURL},
	}
	for _, slot := range slots {
		if len(slot.urls) == 0 {
			continue
		}
		rel, err := c.fetcher.Fetch(ctx, slot.urls[0], fmt.Sprintf("%s %s", stem, slot.kind))
		if err != nil {
			logger.Warn("image download failed, keeping remote reference",
				logging.String("kind", string(slot.kind)),
				logging.Error(err))
			continue
		}
		show.ApplyLocalImage(slot.kind, rel)
		saved = append(saved, rel)
	}
	return saved
}

// attachmentStem names attachments after the note the way it would be
// called without collisions, so artwork sorts next to its note.
func (c *Creator) attachmentStem(show *mediashow.MovieShow) string {
	name := naming.MakeFileName(show, c.cfg.FileName.Format, c.messages, func(string) bool { return false })
	return strings.TrimSuffix(name, ".md")
}

func (c *Creator) noteFolder(show *mediashow.MovieShow) string {
	if show.IsSeries {
		return c.cfg.SeriesPath()
	}
	return c.cfg.MoviesPath()
}

func (c *Creator) template(show *mediashow.MovieShow) string {
	path := c.cfg.Templates.Movie
	fallback := defaultMovieTemplate
	if show.IsSeries {
		path = c.cfg.Templates.Series
		fallback = defaultSeriesTemplate
	}
	if text := c.store.ReadTemplate(path); text != "" {
		return text
	}
	return fallback
}

func operationContext(ctx context.Context, id int64, stage string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = services.WithMovieID(ctx, id)
	ctx = services.WithStage(ctx, stage)
	return services.WithRequestID(ctx, uuid.NewString())
}
