package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	achievementdto "pento/internal/modules/achievement/dto"
	achievementin "pento/internal/modules/achievement/port/in"
	billingin "pento/internal/modules/billing/port/in"
	catalogin "pento/internal/modules/catalog/port/in"
	"pento/internal/modules/journal/domain"
	"pento/internal/modules/journal/dto"
	journalout "pento/internal/modules/journal/port/out"
	"pento/internal/modules/journal/service"
	apperrors "pento/internal/platform/errors"
	"pento/internal/platform/tx"
	"pento/internal/platform/words"
)

// Interactor drives the session lifecycle. Completion is the critical
// sequence: stats advance first, then history, then the derived outputs
// (vault note, sqlite index, achievements). Derived failures are logged
// and swallowed so a broken index never loses a finished entry.
type Interactor struct {
	journal      *service.JournalService
	drafts       journalout.DraftStore
	history      journalout.HistoryStore
	notes        journalout.NoteStore
	projector    journalout.HistoryProjector
	catalog      catalogin.Usecase
	achievements achievementin.Usecase
	billing      billingin.Usecase
	tx           tx.Manager
	logger       *zap.Logger
}

func NewInteractor(
	journal *service.JournalService,
	drafts journalout.DraftStore,
	history journalout.HistoryStore,
	notes journalout.NoteStore,
	projector journalout.HistoryProjector,
	catalog catalogin.Usecase,
	achievements achievementin.Usecase,
	billing billingin.Usecase,
	txManager tx.Manager,
	logger *zap.Logger,
) *Interactor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Interactor{
		journal:      journal,
		drafts:       drafts,
		history:      history,
		notes:        notes,
		projector:    projector,
		catalog:      catalog,
		achievements: achievements,
		billing:      billing,
		tx:           txManager,
		logger:       logger,
	}
}

func (i *Interactor) Start(ctx context.Context, input dto.StartInput) (dto.StartOutput, error) {
	if err := i.billing.Authorize(); err != nil {
		return dto.StartOutput{}, err
	}
	if _, err := i.drafts.Load(ctx); err == nil {
		return dto.StartOutput{}, apperrors.ErrActiveDraftExists
	} else if !errors.Is(err, apperrors.ErrNoDraft) {
		return dto.StartOutput{}, err
	}

	prompt, err := i.catalog.RandomPrompt(ctx, input.SenseiID, input.ModeID)
	if err != nil {
		return dto.StartOutput{}, err
	}
	draft, err := i.journal.NewDraft(ctx, input.SenseiID, input.ModeID, prompt.Text)
	if err != nil {
		return dto.StartOutput{}, fmt.Errorf("%w: %v", apperrors.ErrInvalidInput, err)
	}
	if err := i.drafts.Save(ctx, draft); err != nil {
		return dto.StartOutput{}, err
	}
	return dto.StartOutput{
		SessionID:  draft.SessionID,
		SenseiID:   draft.SenseiID,
		ModeID:     draft.ModeID,
		PromptText: draft.PromptText,
		StartedAt:  draft.StartedAt,
		Remaining:  i.remaining(),
	}, nil
}

func (i *Interactor) Write(ctx context.Context, content string) (dto.DraftOutput, error) {
	draft, err := i.drafts.Load(ctx)
	if err != nil {
		return dto.DraftOutput{}, err
	}
	draft = i.journal.UpdateDraft(draft, content)
	if err := i.drafts.Save(ctx, draft); err != nil {
		return dto.DraftOutput{}, err
	}
	return toDraftOutput(draft), nil
}

func (i *Interactor) Complete(ctx context.Context, input dto.CompleteInput) (dto.CompleteOutput, error) {
	draft, err := i.drafts.Load(ctx)
	if err != nil {
		return dto.CompleteOutput{}, err
	}
	content := draft.Content
	if input.Content != "" {
		content = input.Content
	}

	var output dto.CompleteOutput
	err = i.tx.Within(ctx, func(ctx context.Context) error {
		session := i.journal.Complete(ctx, draft, content)

		stats, err := i.journal.RecordSession(ctx, session)
		if err != nil {
			return err
		}

		history, err := i.history.Load(ctx)
		if err != nil {
			return err
		}
		history = domain.Prepend(history, session)
		if err := i.history.Save(ctx, history); err != nil {
			return err
		}

		notePath := i.archiveNote(ctx, session)
		if err := i.projector.Upsert(ctx, session); err != nil {
			i.logger.Warn("history index update failed", zap.String("session_id", session.ID), zap.Error(err))
		}
		unlocked := i.evaluateAchievements(ctx, session, stats, history)

		if err := i.billing.RecordUsage(); err != nil {
			return err
		}
		if err := i.drafts.Clear(ctx); err != nil {
			return err
		}

		output = dto.CompleteOutput{
			SessionID:       session.ID,
			WordCount:       session.WordCount,
			DurationSec:     session.DurationSec,
			NotePath:        notePath,
			Stats:           toStatsOutput(stats),
			NewAchievements: unlocked,
			Remaining:       i.remaining(),
		}
		return nil
	})
	if err != nil {
		return dto.CompleteOutput{}, err
	}
	return output, nil
}

func (i *Interactor) Discard(ctx context.Context) error {
	if _, err := i.drafts.Load(ctx); err != nil {
		return err
	}
	return i.drafts.Clear(ctx)
}

func (i *Interactor) Current(ctx context.Context) (dto.DraftOutput, error) {
	draft, err := i.drafts.Load(ctx)
	if err != nil {
		return dto.DraftOutput{}, err
	}
	return toDraftOutput(draft), nil
}

func (i *Interactor) Stats(ctx context.Context) (dto.StatsOutput, error) {
	stats, err := i.journal.Stats(ctx)
	if err != nil {
		return dto.StatsOutput{}, err
	}
	return toStatsOutput(stats), nil
}

func (i *Interactor) StatsDetail(ctx context.Context) (dto.StatsDetailOutput, error) {
	stats, err := i.journal.Stats(ctx)
	if err != nil {
		return dto.StatsDetailOutput{}, err
	}
	output := dto.StatsDetailOutput{Stats: toStatsOutput(stats)}

	counts, err := i.projector.SenseiCounts(ctx)
	if err != nil {
		return dto.StatsDetailOutput{}, err
	}
	ids := make([]string, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		output.SenseiTotals = append(output.SenseiTotals, dto.SenseiTotal{SenseiID: id, Sessions: counts[id]})
	}

	days, err := i.projector.WordsByDay(ctx, 14)
	if err != nil {
		return dto.StatsDetailOutput{}, err
	}
	for _, day := range days {
		output.RecentDays = append(output.RecentDays, dto.DayTotalOutput{Day: day.Day, Sessions: day.Sessions, Words: day.Words})
	}
	return output, nil
}

func (i *Interactor) History(ctx context.Context, limit int) ([]dto.SessionOutput, error) {
	history, err := i.history.Load(ctx)
	if err != nil {
		return nil, err
	}
	if limit > 0 && limit < len(history) {
		history = history[:limit]
	}
	outputs := make([]dto.SessionOutput, len(history))
	for idx, session := range history {
		outputs[idx] = toSessionOutput(session)
	}
	return outputs, nil
}

func (i *Interactor) GetSession(ctx context.Context, id string) (dto.SessionOutput, error) {
	history, err := i.history.Load(ctx)
	if err != nil {
		return dto.SessionOutput{}, err
	}
	for _, session := range history {
		if session.ID == id {
			return toSessionOutput(session), nil
		}
	}
	return dto.SessionOutput{}, fmt.Errorf("%w: session %q", apperrors.ErrNotFound, id)
}

func (i *Interactor) DeleteSession(ctx context.Context, id string) error {
	history, err := i.history.Load(ctx)
	if err != nil {
		return err
	}
	kept := make([]domain.WritingSession, 0, len(history))
	found := false
	for _, session := range history {
		if session.ID == id {
			found = true
			continue
		}
		kept = append(kept, session)
	}
	if !found {
		return fmt.Errorf("%w: session %q", apperrors.ErrNotFound, id)
	}
	if err := i.history.Save(ctx, kept); err != nil {
		return err
	}
	if err := i.projector.Delete(ctx, id); err != nil {
		i.logger.Warn("history index delete failed", zap.String("session_id", id), zap.Error(err))
	}
	return nil
}

func (i *Interactor) ClearHistory(ctx context.Context) error {
	if err := i.history.Save(ctx, nil); err != nil {
		return err
	}
	return i.projector.Reset(ctx)
}

// Reindex rebuilds the sqlite projection from the history slot. The slot
// is the source of truth; the index is always safe to discard.
func (i *Interactor) Reindex(ctx context.Context) error {
	history, err := i.history.Load(ctx)
	if err != nil {
		return err
	}
	if err := i.projector.Reset(ctx); err != nil {
		return err
	}
	for _, session := range history {
		if err := i.projector.Upsert(ctx, session); err != nil {
			return fmt.Errorf("reindex session %s: %w", session.ID, err)
		}
	}
	return nil
}

// Reset wipes stats, history, the draft, the projection, and the unlock
// ledger. The billing entitlement is deliberately left alone.
func (i *Interactor) Reset(ctx context.Context) error {
	return i.tx.Within(ctx, func(ctx context.Context) error {
		if err := i.journal.ResetStats(ctx); err != nil {
			return err
		}
		if err := i.history.Save(ctx, nil); err != nil {
			return err
		}
		if err := i.drafts.Clear(ctx); err != nil {
			return err
		}
		if err := i.projector.Reset(ctx); err != nil {
			return err
		}
		return i.achievements.Reset(ctx)
	})
}

func (i *Interactor) archiveNote(ctx context.Context, session domain.WritingSession) string {
	senseiName := session.SenseiID
	if sensei, err := i.catalog.GetSensei(ctx, session.SenseiID); err == nil {
		senseiName = sensei.Name
	}
	notePath, err := i.notes.Save(ctx, session, senseiName)
	if err != nil {
		i.logger.Warn("session note write failed", zap.String("session_id", session.ID), zap.Error(err))
		return ""
	}
	return notePath
}

func (i *Interactor) evaluateAchievements(ctx context.Context, session domain.WritingSession, stats domain.UserStats, history []domain.WritingSession) []string {
	items := make([]achievementdto.HistoryItem, len(history))
	for idx, entry := range history {
		items[idx] = achievementdto.HistoryItem{SenseiID: entry.SenseiID}
	}
	unlocked, err := i.achievements.Evaluate(ctx, achievementdto.EvaluateInput{
		Session: achievementdto.SessionInput{ID: session.ID, SenseiID: session.SenseiID, WordCount: session.WordCount},
		Stats: achievementdto.StatsInput{
			TotalSessions: stats.TotalSessions,
			TotalWords:    stats.TotalWords,
			CurrentStreak: stats.CurrentStreak,
		},
		History: items,
	})
	if err != nil {
		i.logger.Warn("achievement evaluation failed", zap.String("session_id", session.ID), zap.Error(err))
		return nil
	}
	return unlocked
}

func (i *Interactor) remaining() int {
	plan, err := i.billing.Plan()
	if err != nil {
		return 0
	}
	return plan.Remaining
}

func toDraftOutput(draft domain.Draft) dto.DraftOutput {
	return dto.DraftOutput{
		SessionID:  draft.SessionID,
		SenseiID:   draft.SenseiID,
		ModeID:     draft.ModeID,
		PromptText: draft.PromptText,
		Content:    draft.Content,
		WordCount:  words.Count(draft.Content),
		StartedAt:  draft.StartedAt,
		LastSaved:  draft.LastSaved,
	}
}

func toStatsOutput(stats domain.UserStats) dto.StatsOutput {
	return dto.StatsOutput{
		TotalSessions:   stats.TotalSessions,
		TotalWords:      stats.TotalWords,
		TotalMinutes:    stats.TotalMinutes,
		CurrentStreak:   stats.CurrentStreak,
		LongestStreak:   stats.LongestStreak,
		LastWritingDate: stats.LastWritingDate,
	}
}

func toSessionOutput(session domain.WritingSession) dto.SessionOutput {
	return dto.SessionOutput{
		ID:          session.ID,
		SenseiID:    session.SenseiID,
		PromptText:  session.PromptText,
		Content:     session.Content,
		WordCount:   session.WordCount,
		StartedAt:   session.StartedAt,
		CompletedAt: session.CompletedAt,
		DurationSec: session.DurationSec,
	}
}
