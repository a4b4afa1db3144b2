package out_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"pento/internal/modules/journal/adapter/out"
	"pento/internal/modules/journal/domain"
	apperrors "pento/internal/platform/errors"
)

func TestStatsStoreFailsSoft(t *testing.T) {
	dir := t.TempDir()
	store := out.NewFileStatsStore(dir, nil)
	ctx := context.Background()

	stats, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if stats.TotalSessions != 0 {
		t.Fatalf("missing file should load zero stats: %+v", stats)
	}

	if err := os.WriteFile(filepath.Join(dir, "stats.json"), []byte("{broken"), 0o644); err != nil {
		t.Fatalf("corrupt file: %v", err)
	}
	stats, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("load corrupt: %v", err)
	}
	if stats.TotalSessions != 0 {
		t.Fatalf("corrupt file should load zero stats: %+v", stats)
	}

	if err := store.Save(ctx, domain.UserStats{TotalSessions: 4, TotalWords: 900, CurrentStreak: 2}); err != nil {
		t.Fatalf("save: %v", err)
	}
	stats, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if stats.TotalSessions != 4 || stats.TotalWords != 900 {
		t.Fatalf("roundtrip mismatch: %+v", stats)
	}
}

func TestDraftStoreLifecycle(t *testing.T) {
	store := out.NewFileDraftStore(t.TempDir(), nil)
	ctx := context.Background()

	if _, err := store.Load(ctx); !errors.Is(err, apperrors.ErrNoDraft) {
		t.Fatalf("expected ErrNoDraft, got %v", err)
	}

	draft := domain.Draft{
		SessionID:  "session-001",
		SenseiID:   "kaze",
		PromptText: "Describe the wind",
		Content:    "a start",
		StartedAt:  time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC),
		LastSaved:  time.Date(2026, 3, 10, 9, 1, 0, 0, time.UTC),
	}
	if err := store.Save(ctx, draft); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.SessionID != draft.SessionID || loaded.Content != draft.Content {
		t.Fatalf("roundtrip mismatch: %+v", loaded)
	}

	if err := store.Clear(ctx); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if _, err := store.Load(ctx); !errors.Is(err, apperrors.ErrNoDraft) {
		t.Fatalf("expected ErrNoDraft after clear, got %v", err)
	}
}

func TestHistoryStoreRoundtrip(t *testing.T) {
	store := out.NewFileHistoryStore(t.TempDir(), nil)
	ctx := context.Background()

	history, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("fresh store should be empty: %+v", history)
	}

	sessions := []domain.WritingSession{
		{ID: "s2", SenseiID: "sora", WordCount: 200, CompletedAt: time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC)},
		{ID: "s1", SenseiID: "kaze", WordCount: 100, CompletedAt: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)},
	}
	if err := store.Save(ctx, sessions); err != nil {
		t.Fatalf("save: %v", err)
	}

	history, err = store.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if len(history) != 2 || history[0].ID != "s2" {
		t.Fatalf("order not preserved: %+v", history)
	}
}
