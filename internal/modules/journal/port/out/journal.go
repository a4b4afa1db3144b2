package out

import (
	"context"

	"pento/internal/modules/journal/domain"
)

// StatsStore and HistoryStore fail soft: a missing or malformed slot loads
// as the zero value, and write failures are logged by the adapter and
// swallowed. The in-memory state stays authoritative either way.
type StatsStore interface {
	Load(ctx context.Context) (domain.UserStats, error)
	Save(ctx context.Context, stats domain.UserStats) error
}

type HistoryStore interface {
	Load(ctx context.Context) ([]domain.WritingSession, error)
	Save(ctx context.Context, history []domain.WritingSession) error
}

type DraftStore interface {
	Load(ctx context.Context) (domain.Draft, error)
	Save(ctx context.Context, draft domain.Draft) error
	Clear(ctx context.Context) error
}

// NoteStore archives a completed session as a vault markdown note.
type NoteStore interface {
	Save(ctx context.Context, session domain.WritingSession, senseiName string) (string, error)
}

// HistoryProjector mirrors history into a queryable index. Derived state
// only; it is rebuilt from the history slot on reindex and never consulted
// by achievement evaluation.
type HistoryProjector interface {
	Upsert(ctx context.Context, session domain.WritingSession) error
	Delete(ctx context.Context, id string) error
	Reset(ctx context.Context) error
	SenseiCounts(ctx context.Context) (map[string]int, error)
	WordsByDay(ctx context.Context, limit int) ([]domain.DayTotal, error)
}
