package service_test

import (
	"context"
	"testing"
	"time"

	achievementout "pento/internal/modules/achievement/adapter/out"
	"pento/internal/modules/achievement/domain"
	"pento/internal/modules/achievement/dto"
	"pento/internal/modules/achievement/service"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func newService(t *testing.T, now time.Time) (*service.AchievementService, *fakeClock) {
	t.Helper()
	dir := t.TempDir()
	clk := &fakeClock{now: now}
	svc := service.NewAchievementService(clk, achievementout.NewFileLedgerStore(dir, nil), achievementout.NewFileQueueStore(dir, nil))
	return svc, clk
}

func daytime() time.Time {
	return time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
}

func TestUnlockReturnsTrueExactlyOnceAndKeepsTimestamp(t *testing.T) {
	t.Parallel()
	svc, clk := newService(t, daytime())

	fresh, err := svc.Unlock(context.Background(), domain.IDMarathon)
	if err != nil {
		t.Fatalf("first unlock: %v", err)
	}
	if !fresh {
		t.Fatalf("first unlock must report true")
	}
	firstAt := clk.now

	clk.now = clk.now.Add(48 * time.Hour)
	fresh, err = svc.Unlock(context.Background(), domain.IDMarathon)
	if err != nil {
		t.Fatalf("second unlock: %v", err)
	}
	if fresh {
		t.Fatalf("second unlock must report false")
	}
	unlocked, err := svc.Unlocked(context.Background())
	if err != nil {
		t.Fatalf("load ledger: %v", err)
	}
	if !unlocked[domain.IDMarathon].Equal(firstAt) {
		t.Fatalf("unlock timestamp changed: %v vs %v", unlocked[domain.IDMarathon], firstAt)
	}
}

func TestEvaluateFirstSessionScenario(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, daytime())
	newly, err := svc.Evaluate(context.Background(), dto.EvaluateInput{
		Session: dto.SessionInput{ID: "s1", SenseiID: "kaze", WordCount: 500},
		Stats:   dto.StatsInput{TotalSessions: 1, TotalWords: 500, CurrentStreak: 1},
		History: []dto.HistoryItem{{SenseiID: "kaze"}},
	}, 3)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(newly) != 1 || newly[0] != domain.IDFirstBlood {
		t.Fatalf("expected only first-blood, got %v", newly)
	}
}

func TestEvaluateCrossingSeveralWordThresholdsUnlocksAll(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, daytime())
	newly, err := svc.Evaluate(context.Background(), dto.EvaluateInput{
		Session: dto.SessionInput{ID: "s1", SenseiID: "sora", WordCount: 52000},
		Stats:   dto.StatsInput{TotalSessions: 4, TotalWords: 52000, CurrentStreak: 1},
		History: []dto.HistoryItem{{SenseiID: "sora"}},
	}, 3)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	want := map[string]bool{
		domain.IDWordWarrior1K:  true,
		domain.IDWordWarrior10K: true,
		domain.IDWordWarrior50K: true,
		domain.IDMarathon:       true,
	}
	if len(newly) != len(want) {
		t.Fatalf("expected %d unlocks, got %v", len(want), newly)
	}
	for _, id := range newly {
		if !want[id] {
			t.Fatalf("unexpected unlock %s in %v", id, newly)
		}
	}
}

func TestEvaluateSenseiMilestoneAndGenreHopper(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, daytime())
	history := make([]dto.HistoryItem, 0, 12)
	for i := 0; i < 10; i++ {
		history = append(history, dto.HistoryItem{SenseiID: "ryu"})
	}
	history = append(history, dto.HistoryItem{SenseiID: "kaze"}, dto.HistoryItem{SenseiID: "sora"})
	newly, err := svc.Evaluate(context.Background(), dto.EvaluateInput{
		Session: dto.SessionInput{ID: "s12", SenseiID: "ryu", WordCount: 80},
		Stats:   dto.StatsInput{TotalSessions: 12, TotalWords: 960, CurrentStreak: 2},
		History: history,
	}, 3)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	got := map[string]bool{}
	for _, id := range newly {
		got[id] = true
	}
	if !got["fearless"] {
		t.Fatalf("expected fearless for 10 ryu sessions, got %v", newly)
	}
	if !got[domain.IDGenreHopper] {
		t.Fatalf("expected genre-hopper with all senseis present, got %v", newly)
	}
	if got["precision"] || got["flow-state"] {
		t.Fatalf("single sessions must not unlock other sensei milestones: %v", newly)
	}
}

func TestEvaluateStreakAchievements(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, daytime())
	newly, err := svc.Evaluate(context.Background(), dto.EvaluateInput{
		Session: dto.SessionInput{ID: "s", SenseiID: "kaze", WordCount: 10},
		Stats:   dto.StatsInput{TotalSessions: 31, TotalWords: 310, CurrentStreak: 30},
		History: []dto.HistoryItem{{SenseiID: "kaze"}},
	}, 3)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	got := map[string]bool{}
	for _, id := range newly {
		got[id] = true
	}
	if !got[domain.IDHabit] || !got[domain.IDProfessional] {
		t.Fatalf("streak of 30 must unlock both streak achievements, got %v", newly)
	}
}

func TestEvaluateClockWindows(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name string
		hour int
		want string
	}{
		{name: "late night", hour: 23, want: domain.IDNightOwl},
		{name: "small hours", hour: 2, want: domain.IDNightOwl},
		{name: "early", hour: 5, want: domain.IDEarlyBird},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			svc, _ := newService(t, time.Date(2026, 3, 10, tc.hour, 30, 0, 0, time.Local))
			newly, err := svc.Evaluate(context.Background(), dto.EvaluateInput{
				Session: dto.SessionInput{ID: "s", SenseiID: "kaze", WordCount: 10},
				Stats:   dto.StatsInput{TotalSessions: 2, TotalWords: 20, CurrentStreak: 1},
				History: []dto.HistoryItem{{SenseiID: "kaze"}},
			}, 3)
			if err != nil {
				t.Fatalf("evaluate: %v", err)
			}
			found := false
			for _, id := range newly {
				if id == tc.want {
					found = true
				}
				if id == domain.IDNightOwl && tc.want != domain.IDNightOwl {
					t.Fatalf("night-owl must not unlock at hour %d", tc.hour)
				}
			}
			if !found {
				t.Fatalf("expected %s at hour %d, got %v", tc.want, tc.hour, newly)
			}
		})
	}
}

func TestEvaluateQueuesNotificationsUntilDrained(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, daytime())
	if _, err := svc.Evaluate(context.Background(), dto.EvaluateInput{
		Session: dto.SessionInput{ID: "s1", SenseiID: "kaze", WordCount: 1200},
		Stats:   dto.StatsInput{TotalSessions: 1, TotalWords: 1200, CurrentStreak: 1},
		History: []dto.HistoryItem{{SenseiID: "kaze"}},
	}, 3); err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	pending, err := svc.Pending(context.Background())
	if err != nil {
		t.Fatalf("pending: %v", err)
	}
	if len(pending) != 3 {
		t.Fatalf("expected first-blood, word-warrior-1k and marathon queued, got %v", pending)
	}
	if err := svc.Drain(context.Background()); err != nil {
		t.Fatalf("drain: %v", err)
	}
	pending, err = svc.Pending(context.Background())
	if err != nil {
		t.Fatalf("pending after drain: %v", err)
	}
	if len(pending) != 0 {
		t.Fatalf("queue must be empty after drain, got %v", pending)
	}
}

func TestResetClearsLedgerSoUnlockFiresAgain(t *testing.T) {
	t.Parallel()
	svc, _ := newService(t, daytime())
	if _, err := svc.Unlock(context.Background(), domain.IDMarathon); err != nil {
		t.Fatalf("unlock: %v", err)
	}
	if err := svc.Reset(context.Background()); err != nil {
		t.Fatalf("reset: %v", err)
	}
	fresh, err := svc.Unlock(context.Background(), domain.IDMarathon)
	if err != nil {
		t.Fatalf("unlock after reset: %v", err)
	}
	if !fresh {
		t.Fatalf("unlock after reset must report true again")
	}
}
