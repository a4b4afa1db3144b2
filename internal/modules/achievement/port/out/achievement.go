package out

import (
	"context"
	"time"

	"pento/internal/modules/achievement/domain"
)

// LedgerStore persists the unlock set: achievement id -> unlock time.
type LedgerStore interface {
	Load(ctx context.Context) (map[string]time.Time, error)
	Save(ctx context.Context, unlocked map[string]time.Time) error
}

// QueueStore persists the pending-notification mailbox.
type QueueStore interface {
	Load(ctx context.Context) ([]domain.Notification, error)
	Save(ctx context.Context, pending []domain.Notification) error
}
