// Package images downloads poster, backdrop, and logo artwork into the
// vault's attachments folder so notes can embed local copies instead of
// remote URLs.
package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/url"
	"path"
	"path/filepath"
	"strings"
	"time"

	"kinonote/internal/config"
	"kinonote/internal/logging"
	"kinonote/internal/vault"
)

var extensionByType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// Fetcher downloads images one at a time with bounded retry. Only GET
// requests are issued, so every attempt is safe to replay.
type Fetcher struct {
	client  *http.Client
	store   *vault.Vault
	folder  string
	retries int
	logger  *slog.Logger
	backoff func(attempt int) time.Duration
}

// NewFetcher builds a Fetcher storing downloads under folder, a
// vault-relative attachments directory.
func NewFetcher(store *vault.Vault, folder string, cfg config.Images, logger *slog.Logger) *Fetcher {
	if logger == nil {
		logger = logging.NewNop()
	}
	timeout := time.Duration(cfg.DownloadTimeout) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	retries := cfg.Retries
	if retries < 0 {
		retries = 0
	}
	return &Fetcher{
		client:  &http.Client{Timeout: timeout},
		store:   store,
		folder:  strings.Trim(folder, "/"),
		retries: retries,
		logger:  logging.NewComponentLogger(logger, "images"),
		backoff: jitteredBackoff,
	}
}

// Fetch downloads one image and saves it as base plus an extension
// derived from the response content type. base must already be a
// sanitized file name stem. On a name collision a numeric suffix is
// appended. Returns the vault-relative path of the saved file.
func (f *Fetcher) Fetch(ctx context.Context, rawURL, base string) (string, error) {
	if strings.TrimSpace(rawURL) == "" {
		return "", errors.New("empty image url")
	}
	data, contentType, err := f.download(ctx, rawURL)
	if err != nil {
		return "", err
	}

	rel := f.freePath(base, extensionFor(contentType, rawURL))
	if err := f.store.WriteAttachment(rel, data); err != nil {
		return "", err
	}
	f.logger.Debug("image saved",
		logging.String("path", rel),
		logging.Int("bytes", len(data)))
	return rel, nil
}

func (f *Fetcher) download(ctx context.Context, rawURL string) ([]byte, string, error) {
	var lastErr error
	for attempt := 0; attempt <= f.retries; attempt++ {
		if attempt > 0 {
			if err := wait(ctx, f.backoff(attempt)); err != nil {
				return nil, "", err
			}
			f.logger.Debug("retrying image download",
				logging.String("url", rawURL),
				logging.Int("attempt", attempt))
		}
		data, contentType, err := f.get(ctx, rawURL)
		if err == nil {
			return data, contentType, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, "", lastErr
}

func (f *Fetcher) get(ctx context.Context, rawURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, "", err
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", err
	}
	if len(data) == 0 {
		return nil, "", errors.New("empty response body")
	}
	return data, resp.Header.Get("Content-Type"), nil
}

// freePath returns an unused vault-relative path for base+ext inside
// the attachments folder.
func (f *Fetcher) freePath(base, ext string) string {
	rel := filepath.Join(f.folder, base+ext)
	if !f.store.Exists(rel) {
		return rel
	}
	for attempt := 1; ; attempt++ {
		rel = filepath.Join(f.folder, fmt.Sprintf("%s-%d%s", base, attempt, ext))
		if !f.store.Exists(rel) {
			return rel
		}
	}
}

func extensionFor(contentType, rawURL string) string {
	mediaType := contentType
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}
	if ext, ok := extensionByType[strings.ToLower(strings.TrimSpace(mediaType))]; ok {
		return ext
	}
	if u, err := url.Parse(rawURL); err == nil {
		if ext := strings.ToLower(path.Ext(u.Path)); ext != "" && len(ext) <= 5 {
			return ext
		}
	}
	return ".jpg"
}

func jitteredBackoff(attempt int) time.Duration {
	base := time.Duration(attempt) * 500 * time.Millisecond
	return base + time.Duration(rand.Int63n(int64(250*time.Millisecond)))
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
