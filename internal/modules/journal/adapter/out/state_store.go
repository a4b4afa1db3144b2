package out

import (
	"context"

	"go.uber.org/zap"

	"pento/internal/modules/journal/domain"
	apperrors "pento/internal/platform/errors"
	"pento/internal/platform/state"
)

// FileStatsStore keeps the cumulative stats snapshot in stats.json.
type FileStatsStore struct {
	slot *state.Slot[domain.UserStats]
}

func NewFileStatsStore(dir string, logger *zap.Logger) *FileStatsStore {
	return &FileStatsStore{slot: state.NewSlot[domain.UserStats](dir, "stats.json", logger)}
}

func (s *FileStatsStore) Load(_ context.Context) (domain.UserStats, error) {
	return s.slot.Load(domain.UserStats{}), nil
}

func (s *FileStatsStore) Save(_ context.Context, stats domain.UserStats) error {
	s.slot.Save(stats)
	return nil
}

// FileHistoryStore keeps the session log in history.json, newest first.
type FileHistoryStore struct {
	slot *state.Slot[[]domain.WritingSession]
}

func NewFileHistoryStore(dir string, logger *zap.Logger) *FileHistoryStore {
	return &FileHistoryStore{slot: state.NewSlot[[]domain.WritingSession](dir, "history.json", logger)}
}

func (s *FileHistoryStore) Load(_ context.Context) ([]domain.WritingSession, error) {
	return s.slot.Load(nil), nil
}

func (s *FileHistoryStore) Save(_ context.Context, history []domain.WritingSession) error {
	if history == nil {
		history = []domain.WritingSession{}
	}
	s.slot.Save(history)
	return nil
}

// FileDraftStore keeps the single in-progress draft in draft.json. The
// file's absence means there is no draft, so Load reports that explicitly
// instead of failing soft.
type FileDraftStore struct {
	slot *state.Slot[domain.Draft]
}

func NewFileDraftStore(dir string, logger *zap.Logger) *FileDraftStore {
	return &FileDraftStore{slot: state.NewSlot[domain.Draft](dir, "draft.json", logger)}
}

func (s *FileDraftStore) Load(_ context.Context) (domain.Draft, error) {
	if !s.slot.Exists() {
		return domain.Draft{}, apperrors.ErrNoDraft
	}
	draft := s.slot.Load(domain.Draft{})
	if draft.SessionID == "" {
		return domain.Draft{}, apperrors.ErrNoDraft
	}
	return draft, nil
}

func (s *FileDraftStore) Save(_ context.Context, draft domain.Draft) error {
	s.slot.Save(draft)
	return nil
}

func (s *FileDraftStore) Clear(_ context.Context) error {
	s.slot.Clear()
	return nil
}
