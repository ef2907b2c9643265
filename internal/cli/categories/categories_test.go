package categories

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/tracker"
)

func setupTestContext(t *testing.T) (*cli.Context, *bytes.Buffer) {
	t.Helper()
	ctx := cli.NewContext(storage.NewMemoryMedium(), ":memory:")
	out := &bytes.Buffer{}
	ctx.Out = out
	ctx.Confirm = func(string) (bool, error) { return true, nil }
	return ctx, out
}

func TestCategoryAddListDelete(t *testing.T) {
	ctx, out := setupTestContext(t)

	if err := (&CategoryAddCmd{Name: "Spotify"}).Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out.String(), "(subscription)") {
		t.Errorf("expected subscription icon, got %q", out.String())
	}

	out.Reset()
	if err := (&CategoryListCmd{}).Run(ctx); err != nil {
		t.Fatalf("list failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 categories, got %d: %q", len(lines), out.String())
	}
	if !strings.Contains(lines[5], "Spotify") || !strings.Contains(lines[5], "custom") {
		t.Errorf("expected custom category last, got %q", lines[5])
	}

	id := ctx.Store.GetCustomCategories()[0].ID
	if err := (&CategoryDeleteCmd{ID: id}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if len(ctx.Store.GetCustomCategories()) != 0 {
		t.Error("expected custom category removed")
	}
}

func TestCategoryDeleteBuiltin(t *testing.T) {
	ctx, _ := setupTestContext(t)

	err := (&CategoryDeleteCmd{ID: "bills", Yes: true}).Run(ctx)
	if !errors.Is(err, tracker.ErrBuiltinCategory) {
		t.Errorf("expected ErrBuiltinCategory, got %v", err)
	}
}
