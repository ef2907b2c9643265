package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/storage/jsonfile"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

func TestOpenMedium(t *testing.T) {
	dir := t.TempDir()

	mem, err := OpenMedium(":memory:")
	if err != nil {
		t.Fatalf("failed to open memory medium: %v", err)
	}
	if _, ok := mem.(*storage.MemoryMedium); !ok {
		t.Errorf("expected memory medium, got %T", mem)
	}

	js, err := OpenMedium(filepath.Join(dir, "data.JSON"))
	if err != nil {
		t.Fatalf("failed to open json medium: %v", err)
	}
	if _, ok := js.(*jsonfile.Medium); !ok {
		t.Errorf("expected json medium, got %T", js)
	}

	dbPath := filepath.Join(dir, "sub", "lifetrack.db")
	db, err := OpenMedium(dbPath)
	if err != nil {
		t.Fatalf("failed to open sqlite medium: %v", err)
	}
	defer db.Close()
	if _, ok := db.(*sqlite.Medium); !ok {
		t.Errorf("expected sqlite medium, got %T", db)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("expected database file to be created: %v", err)
	}
}

func TestOpenMediumFailure(t *testing.T) {
	// A regular file where the data directory should be
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0600); err != nil {
		t.Fatalf("failed to write blocker: %v", err)
	}

	m, err := OpenMedium(filepath.Join(blocker, "lifetrack.db"))
	if err == nil {
		t.Fatal("expected error opening under a file")
	}
	if m != nil {
		t.Errorf("expected nil medium on failure, got %T", m)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	if got := ExpandPath("~/.config/lifetrack/lifetrack.db"); got != filepath.Join(home, ".config/lifetrack/lifetrack.db") {
		t.Errorf("unexpected expansion %q", got)
	}
	if got := ExpandPath("/tmp/x.db"); got != "/tmp/x.db" {
		t.Errorf("absolute path changed: %q", got)
	}
	if got := DataDir(":memory:"); !strings.HasPrefix(got, home) {
		t.Errorf("expected memory data dir under home, got %q", got)
	}
}

func TestUseLocation(t *testing.T) {
	ctx := NewContext(storage.NewMemoryMedium(), ":memory:")
	loc := time.FixedZone("UTC+9", 9*3600)
	ctx.UseLocation(loc)

	if got := ctx.Tracker.Now().Location(); got != loc {
		t.Errorf("expected tracker clock in %v, got %v", loc, got)
	}
}
