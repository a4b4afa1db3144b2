package domain_test

import (
	"fmt"
	"testing"
	"time"

	"pento/internal/modules/journal/domain"
)

func session(words, durationSec int) domain.WritingSession {
	return domain.WritingSession{ID: "s", SenseiID: "kaze", WordCount: words, DurationSec: durationSec}
}

func TestAdvanceFreshStats(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	stats := domain.UserStats{}.Advance(session(500, 300), now)
	want := domain.UserStats{
		TotalSessions:   1,
		TotalWords:      500,
		TotalMinutes:    5,
		CurrentStreak:   1,
		LongestStreak:   1,
		LastWritingDate: "2026-03-10",
	}
	if stats != want {
		t.Fatalf("got %+v, want %+v", stats, want)
	}
}

func TestAdvanceSameDayNeverMovesStreak(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.Local)
	stats := domain.UserStats{}.Advance(session(100, 60), now)
	first := stats.CurrentStreak
	for n := 2; n <= 5; n++ {
		stats = stats.Advance(session(100, 60), now.Add(time.Duration(n)*time.Hour))
		if stats.CurrentStreak != first {
			t.Fatalf("streak changed on same-day session %d: %d", n, stats.CurrentStreak)
		}
	}
	if stats.TotalSessions != 5 || stats.TotalWords != 500 {
		t.Fatalf("totals must still advance, got %+v", stats)
	}
}

func TestAdvanceConsecutiveDaysExtendStreakByOne(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 1, 20, 0, 0, 0, time.Local)
	stats := domain.UserStats{}
	for i := 0; i < 9; i++ {
		stats = stats.Advance(session(10, 0), day.AddDate(0, 0, i))
		if stats.CurrentStreak != i+1 {
			t.Fatalf("day %d: streak = %d, want %d", i, stats.CurrentStreak, i+1)
		}
	}
	if stats.LongestStreak != 9 {
		t.Fatalf("longest = %d, want 9", stats.LongestStreak)
	}
}

func TestAdvanceGapResetsToOneButKeepsLongest(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 3, 1, 12, 0, 0, 0, time.Local)
	stats := domain.UserStats{}
	for i := 0; i < 4; i++ {
		stats = stats.Advance(session(10, 0), day.AddDate(0, 0, i))
	}
	stats = stats.Advance(session(10, 0), day.AddDate(0, 0, 6))
	if stats.CurrentStreak != 1 {
		t.Fatalf("two-day gap must reset streak, got %d", stats.CurrentStreak)
	}
	if stats.LongestStreak != 4 {
		t.Fatalf("longest streak must survive the reset, got %d", stats.LongestStreak)
	}
}

func TestAdvanceLongestStreakMonotone(t *testing.T) {
	t.Parallel()
	day := time.Date(2026, 1, 1, 12, 0, 0, 0, time.Local)
	stats := domain.UserStats{}
	offsets := []int{0, 1, 2, 5, 6, 6, 9, 10, 11, 12, 20}
	prev := 0
	for _, off := range offsets {
		stats = stats.Advance(session(50, 120), day.AddDate(0, 0, off))
		if stats.LongestStreak < prev {
			t.Fatalf("longest streak decreased: %d -> %d", prev, stats.LongestStreak)
		}
		prev = stats.LongestStreak
	}
}

func TestAdvanceZeroDurationCountsSessionAndWords(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 10, 14, 0, 0, 0, time.Local)
	stats := domain.UserStats{}.Advance(session(42, 0), now)
	if stats.TotalMinutes != 0 {
		t.Fatalf("zero duration must contribute 0 minutes, got %d", stats.TotalMinutes)
	}
	if stats.TotalSessions != 1 || stats.TotalWords != 42 || stats.CurrentStreak != 1 {
		t.Fatalf("session must still count, got %+v", stats)
	}
}

func TestPrependCapsHistoryMostRecentFirst(t *testing.T) {
	t.Parallel()
	history := []domain.WritingSession{}
	for i := 1; i <= domain.HistoryLimit+1; i++ {
		history = domain.Prepend(history, domain.WritingSession{ID: fmt.Sprintf("s-%d", i)})
	}
	if len(history) != domain.HistoryLimit {
		t.Fatalf("history length = %d, want %d", len(history), domain.HistoryLimit)
	}
	if history[0].ID != "s-101" {
		t.Fatalf("newest entry must be first, got %s", history[0].ID)
	}
	if history[len(history)-1].ID != "s-2" {
		t.Fatalf("oldest surviving entry must be s-2, got %s", history[len(history)-1].ID)
	}
	for _, item := range history {
		if item.ID == "s-1" {
			t.Fatalf("oldest original entry must be discarded")
		}
	}
}
