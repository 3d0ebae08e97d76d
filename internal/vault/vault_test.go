package vault

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteNoteCreatesParentFolders(t *testing.T) {
	v := Open(t.TempDir())
	rel := filepath.Join("Movies", "Inception (2010).md")

	if err := v.WriteNote(rel, []byte("---\ntitle: Inception\n---\n")); err != nil {
		t.Fatalf("WriteNote: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(v.Root(), rel))
	if err != nil {
		t.Fatalf("read back note: %v", err)
	}
	if !strings.Contains(string(data), "title: Inception") {
		t.Fatalf("note content = %q", data)
	}
}

func TestExists(t *testing.T) {
	v := Open(t.TempDir())
	rel := filepath.Join("Movies", "Inception (2010).md")

	if v.Exists(rel) {
		t.Fatal("Exists reported a note that was never written")
	}
	if err := v.WriteNote(rel, []byte("x")); err != nil {
		t.Fatalf("WriteNote: %v", err)
	}
	if !v.Exists(rel) {
		t.Fatal("Exists missed a written note")
	}
	if !v.Exists(filepath.Join(v.Root(), rel)) {
		t.Fatal("Exists missed an absolute path")
	}
}

func TestAbsResolvesAgainstRoot(t *testing.T) {
	v := Open("/vault")
	if got := v.Abs("Movies/x.md"); got != filepath.Join("/vault", "Movies", "x.md") {
		t.Fatalf("Abs relative = %q", got)
	}
	if got := v.Abs("/elsewhere/x.md"); got != filepath.Join("/elsewhere", "x.md") {
		t.Fatalf("Abs absolute = %q", got)
	}
}

func TestReadTemplate(t *testing.T) {
	v := Open(t.TempDir())

	if got := v.ReadTemplate("missing.md"); got != "" {
		t.Fatalf("missing template = %q, want empty", got)
	}
	if got := v.ReadTemplate(""); got != "" {
		t.Fatalf("empty path = %q, want empty", got)
	}

	if err := v.WriteNote("templates/movie.md", []byte("{{name}}")); err != nil {
		t.Fatalf("WriteNote: %v", err)
	}
	if got := v.ReadTemplate("templates/movie.md"); got != "{{name}}" {
		t.Fatalf("template = %q", got)
	}
}

func TestWithLockRunsFunction(t *testing.T) {
	v := Open(t.TempDir())
	ran := false

	err := v.WithLock(context.Background(), func() error {
		ran = true
		return nil
	})
	if err != nil {
		t.Fatalf("WithLock: %v", err)
	}
	if !ran {
		t.Fatal("locked function never ran")
	}
}

func TestWithLockPropagatesFunctionError(t *testing.T) {
	v := Open(t.TempDir())
	boom := errors.New("boom")

	err := v.WithLock(context.Background(), func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("WithLock error = %v, want %v", err, boom)
	}
}

func TestWithLockReleasesLock(t *testing.T) {
	v := Open(t.TempDir())

	if err := v.WithLock(context.Background(), func() error { return nil }); err != nil {
		t.Fatalf("first WithLock: %v", err)
	}
	// A second acquisition succeeds only if the first released cleanly.
	if err := v.WithLock(context.Background(), func() error { return nil }); err != nil {
		t.Fatalf("second WithLock: %v", err)
	}
}
