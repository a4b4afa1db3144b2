package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"pento/internal/modules/journal/domain"
	journalout "pento/internal/modules/journal/port/out"
	"pento/internal/platform/markdown"
	"pento/internal/platform/slug"
)

// VaultNoteStore archives completed sessions as dated markdown notes
// under sessions/YYYY/MM/DD in the vault.
type VaultNoteStore struct {
	vaultPath string
}

func NewVaultNoteStore(vaultPath string) journalout.NoteStore {
	return &VaultNoteStore{vaultPath: vaultPath}
}

func (s *VaultNoteStore) Save(_ context.Context, session domain.WritingSession, senseiName string) (string, error) {
	date := session.CompletedAt
	dir := filepath.Join(s.vaultPath, "sessions", date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create session dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", date.Format("150405"), slug.Make(session.PromptText))
	path := filepath.Join(dir, name)

	meta := map[string]any{
		"schema_version": domain.SchemaVersion,
		"id":             session.ID,
		"sensei_id":      session.SenseiID,
		"word_count":     session.WordCount,
		"started_at":     session.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		"completed_at":   session.CompletedAt.Format("2006-01-02T15:04:05Z07:00"),
		"duration_sec":   session.DurationSec,
	}
	body := fmt.Sprintf("# %s\n\n- Sensei: %s\n- Words: %d\n\n%s\n", session.PromptText, senseiName, session.WordCount, session.Content)
	rendered, err := markdown.RenderFrontmatter(meta, body)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write session note: %w", err)
	}
	return path, nil
}
