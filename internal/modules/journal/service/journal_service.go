package service

import (
	"context"
	"fmt"
	"strings"

	"pento/internal/modules/journal/domain"
	journalout "pento/internal/modules/journal/port/out"
	"pento/internal/platform/clock"
	"pento/internal/platform/id"
	"pento/internal/platform/words"
)

type JournalService struct {
	clock clock.Clock
	idGen id.Generator
	stats journalout.StatsStore
}

func NewJournalService(clock clock.Clock, idGen id.Generator, stats journalout.StatsStore) *JournalService {
	return &JournalService{clock: clock, idGen: idGen, stats: stats}
}

func (s *JournalService) NewDraft(_ context.Context, senseiID, modeID, promptText string) (domain.Draft, error) {
	if strings.TrimSpace(senseiID) == "" {
		return domain.Draft{}, fmt.Errorf("sensei id is required")
	}
	now := s.clock.Now()
	return domain.Draft{
		SessionID:  s.idGen.New(),
		SenseiID:   senseiID,
		ModeID:     modeID,
		PromptText: promptText,
		StartedAt:  now,
		LastSaved:  now,
	}, nil
}

// UpdateDraft replaces the draft body and refreshes the autosave stamp.
func (s *JournalService) UpdateDraft(draft domain.Draft, content string) domain.Draft {
	draft.Content = content
	draft.LastSaved = s.clock.Now()
	return draft
}

// Complete seals the draft into an immutable session record. The word count
// is computed here so every downstream consumer sees the same number.
func (s *JournalService) Complete(_ context.Context, draft domain.Draft, content string) domain.WritingSession {
	completedAt := s.clock.Now()
	duration := int(completedAt.Sub(draft.StartedAt).Seconds())
	if duration < 0 {
		duration = 0
	}
	return domain.WritingSession{
		ID:          draft.SessionID,
		SenseiID:    draft.SenseiID,
		PromptText:  draft.PromptText,
		Content:     content,
		WordCount:   words.Count(content),
		StartedAt:   draft.StartedAt,
		CompletedAt: completedAt,
		DurationSec: duration,
	}
}

// RecordSession applies the session to the stats snapshot and persists the
// result. Readers only ever see the previous or the fully updated snapshot.
func (s *JournalService) RecordSession(ctx context.Context, session domain.WritingSession) (domain.UserStats, error) {
	stats, err := s.stats.Load(ctx)
	if err != nil {
		return domain.UserStats{}, err
	}
	updated := stats.Advance(session, s.clock.Now())
	if err := s.stats.Save(ctx, updated); err != nil {
		return domain.UserStats{}, err
	}
	return updated, nil
}

func (s *JournalService) Stats(ctx context.Context) (domain.UserStats, error) {
	return s.stats.Load(ctx)
}

func (s *JournalService) ResetStats(ctx context.Context) error {
	return s.stats.Save(ctx, domain.UserStats{})
}
