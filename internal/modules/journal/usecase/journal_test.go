package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	achievementout "pento/internal/modules/achievement/adapter/out"
	achievementservice "pento/internal/modules/achievement/service"
	achievementusecase "pento/internal/modules/achievement/usecase"
	billingout "pento/internal/modules/billing/adapter/out"
	billingdomain "pento/internal/modules/billing/domain"
	billingservice "pento/internal/modules/billing/service"
	billingusecase "pento/internal/modules/billing/usecase"
	catalogout "pento/internal/modules/catalog/adapter/out"
	catalogin "pento/internal/modules/catalog/port/in"
	catalogservice "pento/internal/modules/catalog/service"
	catalogusecase "pento/internal/modules/catalog/usecase"
	journalout "pento/internal/modules/journal/adapter/out"
	"pento/internal/modules/journal/domain"
	"pento/internal/modules/journal/dto"
	"pento/internal/modules/journal/service"
	"pento/internal/modules/journal/usecase"
	apperrors "pento/internal/platform/errors"
	"pento/internal/platform/tx"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) advance(d time.Duration) {
	c.now = c.now.Add(d)
}

type seqID struct {
	n int
}

func (g *seqID) New() string {
	g.n++
	return fmt.Sprintf("session-%03d", g.n)
}

type memProjector struct {
	sessions map[string]domain.WritingSession
}

func newMemProjector() *memProjector {
	return &memProjector{sessions: map[string]domain.WritingSession{}}
}

func (p *memProjector) Upsert(_ context.Context, session domain.WritingSession) error {
	p.sessions[session.ID] = session
	return nil
}

func (p *memProjector) Delete(_ context.Context, id string) error {
	delete(p.sessions, id)
	return nil
}

func (p *memProjector) Reset(_ context.Context) error {
	p.sessions = map[string]domain.WritingSession{}
	return nil
}

func (p *memProjector) SenseiCounts(_ context.Context) (map[string]int, error) {
	counts := map[string]int{}
	for _, session := range p.sessions {
		counts[session.SenseiID]++
	}
	return counts, nil
}

func (p *memProjector) WordsByDay(_ context.Context, limit int) ([]domain.DayTotal, error) {
	byDay := map[string]*domain.DayTotal{}
	for _, session := range p.sessions {
		day := session.CompletedAt.Format(domain.DateLayout)
		total, ok := byDay[day]
		if !ok {
			total = &domain.DayTotal{Day: day}
			byDay[day] = total
		}
		total.Sessions++
		total.Words += session.WordCount
	}
	totals := make([]domain.DayTotal, 0, len(byDay))
	for _, total := range byDay {
		totals = append(totals, *total)
	}
	if limit > 0 && limit < len(totals) {
		totals = totals[:limit]
	}
	return totals, nil
}

type fixture struct {
	journal   *usecase.Interactor
	clock     *fakeClock
	projector *memProjector
	catalog   catalogin.Usecase
	vaultPath string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	vaultPath := t.TempDir()
	statePath := filepath.Join(vaultPath, ".pento")
	logger := zap.NewNop()
	clk := &fakeClock{now: time.Date(2026, 3, 10, 10, 0, 0, 0, time.Local)}

	catalog := catalogusecase.NewInteractor(catalogservice.NewCatalogService(catalogout.NewEmbeddedStore()))

	achievements := achievementusecase.NewInteractor(
		achievementservice.NewAchievementService(
			clk,
			achievementout.NewFileLedgerStore(statePath, logger),
			achievementout.NewFileQueueStore(statePath, logger),
		),
		catalog,
	)

	billing := billingusecase.NewInteractor(billingservice.NewBillingService(
		billingout.NewFileEntitlementStore(statePath, logger),
		billingout.NewFileManifestStore(statePath, logger),
		nil,
	))

	stats := journalout.NewFileStatsStore(statePath, logger)
	history := journalout.NewFileHistoryStore(statePath, logger)
	drafts := journalout.NewFileDraftStore(statePath, logger)
	notes := journalout.NewVaultNoteStore(vaultPath)
	projector := newMemProjector()

	journal := usecase.NewInteractor(
		service.NewJournalService(clk, &seqID{}, stats),
		drafts,
		history,
		notes,
		projector,
		catalog,
		achievements,
		billing,
		tx.NoopManager{},
		logger,
	)
	return &fixture{journal: journal, clock: clk, projector: projector, catalog: catalog, vaultPath: vaultPath}
}

func (f *fixture) completeSession(t *testing.T, senseiID string, wordCount int, duration time.Duration) dto.CompleteOutput {
	t.Helper()
	ctx := context.Background()
	if _, err := f.journal.Start(ctx, dto.StartInput{SenseiID: senseiID, ModeID: "sprint"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	f.clock.advance(duration)
	content := strings.Repeat("word ", wordCount)
	output, err := f.journal.Complete(ctx, dto.CompleteInput{Content: content})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	return output
}

func TestFirstSessionFromFreshState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	started, err := f.journal.Start(ctx, dto.StartInput{SenseiID: "kaze", ModeID: "sprint"})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if started.PromptText == "" {
		t.Fatalf("expected a prompt")
	}
	if started.Remaining != billingdomain.FreeSessionLimit {
		t.Fatalf("remaining = %d, want %d", started.Remaining, billingdomain.FreeSessionLimit)
	}

	f.clock.advance(5 * time.Minute)
	output, err := f.journal.Complete(ctx, dto.CompleteInput{Content: strings.Repeat("word ", 500)})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}

	if output.WordCount != 500 {
		t.Fatalf("word count = %d, want 500", output.WordCount)
	}
	if output.DurationSec != 300 {
		t.Fatalf("duration = %d, want 300", output.DurationSec)
	}
	if output.Stats.TotalSessions != 1 || output.Stats.TotalWords != 500 || output.Stats.TotalMinutes != 5 {
		t.Fatalf("unexpected stats: %+v", output.Stats)
	}
	if output.Stats.CurrentStreak != 1 || output.Stats.LongestStreak != 1 {
		t.Fatalf("unexpected streaks: %+v", output.Stats)
	}
	if len(output.NewAchievements) != 1 || output.NewAchievements[0] != "first-blood" {
		t.Fatalf("new achievements = %v, want [first-blood]", output.NewAchievements)
	}
	if output.Remaining != billingdomain.FreeSessionLimit-1 {
		t.Fatalf("remaining = %d, want %d", output.Remaining, billingdomain.FreeSessionLimit-1)
	}

	if output.NotePath == "" {
		t.Fatalf("expected a note path")
	}
	raw, err := os.ReadFile(output.NotePath)
	if err != nil {
		t.Fatalf("read note: %v", err)
	}
	if !strings.Contains(string(raw), "sensei_id: kaze") {
		t.Fatalf("note missing sensei frontmatter:\n%s", raw)
	}

	history, err := f.journal.History(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 || history[0].ID != "session-001" {
		t.Fatalf("unexpected history: %+v", history)
	}

	if _, err := f.journal.Current(ctx); !errors.Is(err, apperrors.ErrNoDraft) {
		t.Fatalf("draft should be cleared after completion, got %v", err)
	}
}

func TestStartRejectsSecondDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.journal.Start(ctx, dto.StartInput{SenseiID: "sora", ModeID: "deep"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if _, err := f.journal.Start(ctx, dto.StartInput{SenseiID: "kaze", ModeID: "sprint"}); !errors.Is(err, apperrors.ErrActiveDraftExists) {
		t.Fatalf("expected ErrActiveDraftExists, got %v", err)
	}
}

func TestWriteAutosavesDraft(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.journal.Start(ctx, dto.StartInput{SenseiID: "ryu", ModeID: "gonzo"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	f.clock.advance(30 * time.Second)

	draft, err := f.journal.Write(ctx, "three short words")
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if draft.WordCount != 3 {
		t.Fatalf("word count = %d, want 3", draft.WordCount)
	}
	if !draft.LastSaved.After(draft.StartedAt) {
		t.Fatalf("last saved should advance past start")
	}

	current, err := f.journal.Current(ctx)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if current.Content != "three short words" {
		t.Fatalf("draft content not persisted: %q", current.Content)
	}
}

func TestGonzoModeRequiresRyu(t *testing.T) {
	f := newFixture(t)

	_, err := f.journal.Start(context.Background(), dto.StartInput{SenseiID: "kaze", ModeID: "gonzo"})
	if !errors.Is(err, apperrors.ErrSenseiRestricted) {
		t.Fatalf("expected ErrSenseiRestricted, got %v", err)
	}
}

func TestDiscardDropsDraftWithoutTouchingStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	if _, err := f.journal.Start(ctx, dto.StartInput{SenseiID: "kaze", ModeID: "sprint"}); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := f.journal.Discard(ctx); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if err := f.journal.Discard(ctx); !errors.Is(err, apperrors.ErrNoDraft) {
		t.Fatalf("expected ErrNoDraft, got %v", err)
	}

	stats, err := f.journal.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSessions != 0 {
		t.Fatalf("discard must not count a session: %+v", stats)
	}
}

func TestFreeQuotaBlocksFourthSession(t *testing.T) {
	f := newFixture(t)

	for i := 0; i < billingdomain.FreeSessionLimit; i++ {
		f.completeSession(t, "kaze", 50, time.Minute)
		f.clock.advance(time.Minute)
	}

	_, err := f.journal.Start(context.Background(), dto.StartInput{SenseiID: "kaze", ModeID: "sprint"})
	if !errors.Is(err, apperrors.ErrSessionLimit) {
		t.Fatalf("expected ErrSessionLimit, got %v", err)
	}
}

func TestStreakAcrossConsecutiveDays(t *testing.T) {
	f := newFixture(t)

	first := f.completeSession(t, "kaze", 100, time.Minute)
	if first.Stats.CurrentStreak != 1 {
		t.Fatalf("streak = %d, want 1", first.Stats.CurrentStreak)
	}

	f.clock.advance(24 * time.Hour)
	second := f.completeSession(t, "sora", 100, time.Minute)
	if second.Stats.CurrentStreak != 2 {
		t.Fatalf("streak = %d, want 2", second.Stats.CurrentStreak)
	}

	f.clock.advance(72 * time.Hour)
	third := f.completeSession(t, "ryu", 100, time.Minute)
	if third.Stats.CurrentStreak != 1 {
		t.Fatalf("streak after gap = %d, want 1", third.Stats.CurrentStreak)
	}
	if third.Stats.LongestStreak != 2 {
		t.Fatalf("longest streak = %d, want 2", third.Stats.LongestStreak)
	}
}

func TestDeleteSessionKeepsStats(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	output := f.completeSession(t, "kaze", 100, time.Minute)

	if err := f.journal.DeleteSession(ctx, output.SessionID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := f.journal.DeleteSession(ctx, output.SessionID); !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	history, err := f.journal.History(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("history should be empty: %+v", history)
	}

	stats, err := f.journal.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSessions != 1 || stats.TotalWords != 100 {
		t.Fatalf("stats must survive history deletion: %+v", stats)
	}
}

func TestReindexRebuildsProjection(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.completeSession(t, "kaze", 100, time.Minute)
	f.clock.advance(time.Minute)
	f.completeSession(t, "sora", 200, time.Minute)

	if err := f.projector.Reset(ctx); err != nil {
		t.Fatalf("reset projector: %v", err)
	}
	if err := f.journal.Reindex(ctx); err != nil {
		t.Fatalf("reindex: %v", err)
	}

	detail, err := f.journal.StatsDetail(ctx)
	if err != nil {
		t.Fatalf("stats detail: %v", err)
	}
	if len(detail.SenseiTotals) != 2 {
		t.Fatalf("sensei totals = %+v", detail.SenseiTotals)
	}
	if len(detail.RecentDays) != 1 || detail.RecentDays[0].Words != 300 {
		t.Fatalf("recent days = %+v", detail.RecentDays)
	}
}

func TestResetClearsDerivedState(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.completeSession(t, "kaze", 1500, 10*time.Minute)

	if err := f.journal.Reset(ctx); err != nil {
		t.Fatalf("reset: %v", err)
	}

	stats, err := f.journal.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalSessions != 0 || stats.CurrentStreak != 0 {
		t.Fatalf("stats not cleared: %+v", stats)
	}

	history, err := f.journal.History(ctx, 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("history not cleared: %+v", history)
	}

	// The quota already consumed stays consumed after a data reset.
	next := f.completeSession(t, "kaze", 10, time.Minute)
	if next.Remaining != billingdomain.FreeSessionLimit-2 {
		t.Fatalf("remaining = %d, want %d", next.Remaining, billingdomain.FreeSessionLimit-2)
	}
}
