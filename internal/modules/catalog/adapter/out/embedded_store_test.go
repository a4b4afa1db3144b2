package out_test

import (
	"context"
	"testing"

	catalogout "pento/internal/modules/catalog/adapter/out"
)

func TestEmbeddedStoreLoadsSenseiCatalog(t *testing.T) {
	t.Parallel()
	store := catalogout.NewEmbeddedStore()
	senseis, err := store.Senseis(context.Background())
	if err != nil {
		t.Fatalf("load senseis: %v", err)
	}
	if len(senseis) != 3 {
		t.Fatalf("expected 3 senseis, got %d", len(senseis))
	}
	wantIDs := map[string]string{"kaze": "風", "sora": "空", "ryu": "龍"}
	for _, sensei := range senseis {
		kanji, ok := wantIDs[sensei.ID]
		if !ok {
			t.Fatalf("unexpected sensei id %s", sensei.ID)
		}
		if sensei.Kanji != kanji {
			t.Fatalf("sensei %s kanji = %s, want %s", sensei.ID, sensei.Kanji, kanji)
		}
		if len(sensei.Prompts) != 20 {
			t.Fatalf("sensei %s has %d prompts, want 20", sensei.ID, len(sensei.Prompts))
		}
	}
}

func TestEmbeddedStoreLoadsModesWithGonzoRestriction(t *testing.T) {
	t.Parallel()
	store := catalogout.NewEmbeddedStore()
	modes, err := store.Modes(context.Background())
	if err != nil {
		t.Fatalf("load modes: %v", err)
	}
	if len(modes) != 4 {
		t.Fatalf("expected 4 modes, got %d", len(modes))
	}
	for _, mode := range modes {
		if mode.ID != "gonzo" {
			continue
		}
		if mode.SenseiRestriction != "ryu" || !mode.ChaosPrompts {
			t.Fatalf("gonzo must be ryu-only with chaos prompts, got %+v", mode)
		}
		if mode.AllowsSensei("kaze") {
			t.Fatalf("gonzo must reject kaze")
		}
		if !mode.AllowsSensei("ryu") {
			t.Fatalf("gonzo must allow ryu")
		}
		return
	}
	t.Fatalf("gonzo mode missing")
}

func TestEmbeddedStoreLoadsAchievementDefs(t *testing.T) {
	t.Parallel()
	store := catalogout.NewEmbeddedStore()
	defs, err := store.Achievements(context.Background())
	if err != nil {
		t.Fatalf("load achievements: %v", err)
	}
	if len(defs) != 13 {
		t.Fatalf("expected 13 achievement defs, got %d", len(defs))
	}
	seen := map[string]bool{}
	for _, def := range defs {
		if seen[def.ID] {
			t.Fatalf("duplicate achievement id %s", def.ID)
		}
		seen[def.ID] = true
	}
	for _, id := range []string{"first-blood", "word-warrior-50k", "the-professional", "genre-hopper", "early-bird"} {
		if !seen[id] {
			t.Fatalf("achievement %s missing from catalog", id)
		}
	}
}
