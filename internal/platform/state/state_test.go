package state_test

import (
	"os"
	"path/filepath"
	"testing"

	"pento/internal/platform/state"
)

type payload struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSlotLoadMissingReturnsDefault(t *testing.T) {
	t.Parallel()
	slot := state.NewSlot[payload](t.TempDir(), "missing.json", nil)
	got := slot.Load(payload{Name: "default", Count: 7})
	if got.Name != "default" || got.Count != 7 {
		t.Fatalf("expected default payload, got %+v", got)
	}
	if slot.Exists() {
		t.Fatalf("missing slot must not exist")
	}
}

func TestSlotLoadMalformedFailsSoft(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write corrupt slot: %v", err)
	}
	slot := state.NewSlot[payload](dir, "bad.json", nil)
	got := slot.Load(payload{Name: "fallback"})
	if got.Name != "fallback" {
		t.Fatalf("malformed slot must yield default, got %+v", got)
	}
}

func TestSlotRoundTripAndClear(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	slot := state.NewSlot[payload](dir, "ok.json", nil)
	slot.Save(payload{Name: "kaze", Count: 3})
	if !slot.Exists() {
		t.Fatalf("saved slot must exist")
	}
	got := slot.Load(payload{})
	if got.Name != "kaze" || got.Count != 3 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
	slot.Clear()
	if slot.Exists() {
		t.Fatalf("cleared slot must not exist")
	}
	slot.Clear()
}
