// Package vault gives the rest of kinonote a narrow view of the note
// vault on disk: existence checks for collision-free naming, atomic
// note and attachment writes, template loading, and an advisory lock
// that keeps concurrent invocations from racing on the same name.
package vault

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/renameio/v2"
)

const lockRetryDelay = 100 * time.Millisecond

// Vault is rooted at the directory holding the notes. Paths passed to
// its methods may be vault-relative or absolute.
type Vault struct {
	root string
	lock *flock.Flock
}

// Open returns a Vault rooted at root. The directory is expected to
// exist; config.EnsureDirectories creates it.
func Open(root string) *Vault {
	root = filepath.Clean(root)
	return &Vault{
		root: root,
		lock: flock.New(filepath.Join(root, ".kinonote.lock")),
	}
}

// Root returns the vault root directory.
func (v *Vault) Root() string {
	return v.root
}

// Abs resolves a vault-relative path against the root. Absolute paths
// pass through unchanged.
func (v *Vault) Abs(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(v.root, path)
}

// Exists reports whether path already names a file or directory.
func (v *Vault) Exists(path string) bool {
	_, err := os.Stat(v.Abs(path))
	return err == nil
}

// WriteNote writes a rendered note, creating parent folders as needed.
// The write is atomic: readers never observe a partial note.
func (v *Vault) WriteNote(path string, content []byte) error {
	return v.write(path, content)
}

// WriteAttachment writes a downloaded image next to the notes.
func (v *Vault) WriteAttachment(path string, data []byte) error {
	return v.write(path, data)
}

func (v *Vault) write(path string, data []byte) error {
	abs := v.Abs(path)
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return fmt.Errorf("create parent directory: %w", err)
	}
	if err := renameio.WriteFile(abs, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(abs), err)
	}
	return nil
}

// ReadTemplate loads a note template. A missing or unreadable file
// yields the empty string so callers fall back to the built-in
// template.
func (v *Vault) ReadTemplate(path string) string {
	if path == "" {
		return ""
	}
	data, err := os.ReadFile(v.Abs(path))
	if err != nil {
		return ""
	}
	return string(data)
}

// WithLock runs fn while holding the vault's advisory file lock,
// retrying acquisition until ctx is done.
func (v *Vault) WithLock(ctx context.Context, fn func() error) error {
	locked, err := v.lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return fmt.Errorf("acquire vault lock: %w", err)
	}
	if !locked {
		return errors.New("vault lock unavailable")
	}
	defer func() {
		_ = v.lock.Unlock()
	}()
	return fn()
}
