package out

import (
	"context"
	"time"

	"go.uber.org/zap"

	"pento/internal/modules/achievement/domain"
	achievementout "pento/internal/modules/achievement/port/out"
	"pento/internal/platform/state"
)

type FileLedgerStore struct {
	slot *state.Slot[map[string]time.Time]
}

func NewFileLedgerStore(statePath string, logger *zap.Logger) achievementout.LedgerStore {
	return &FileLedgerStore{slot: state.NewSlot[map[string]time.Time](statePath, "achievements.json", logger)}
}

func (s *FileLedgerStore) Load(_ context.Context) (map[string]time.Time, error) {
	unlocked := s.slot.Load(nil)
	if unlocked == nil {
		unlocked = map[string]time.Time{}
	}
	return unlocked, nil
}

func (s *FileLedgerStore) Save(_ context.Context, unlocked map[string]time.Time) error {
	s.slot.Save(unlocked)
	return nil
}

type FileQueueStore struct {
	slot *state.Slot[[]domain.Notification]
}

func NewFileQueueStore(statePath string, logger *zap.Logger) achievementout.QueueStore {
	return &FileQueueStore{slot: state.NewSlot[[]domain.Notification](statePath, "recent-unlocks.json", logger)}
}

func (s *FileQueueStore) Load(_ context.Context) ([]domain.Notification, error) {
	return s.slot.Load(nil), nil
}

func (s *FileQueueStore) Save(_ context.Context, pending []domain.Notification) error {
	s.slot.Save(pending)
	return nil
}
