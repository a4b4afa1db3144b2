package dto

import "time"

// EvaluateInput is the snapshot the evaluator runs against: the
// just-completed session, the post-update stats, and the full history
// including that session.
type EvaluateInput struct {
	Session SessionInput
	Stats   StatsInput
	History []HistoryItem
}

type SessionInput struct {
	ID        string
	SenseiID  string
	WordCount int
}

type StatsInput struct {
	TotalSessions int
	TotalWords    int
	CurrentStreak int
}

type HistoryItem struct {
	SenseiID string
}

type StatusOutput struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    string
	Unlocked    bool
	UnlockedAt  time.Time
}

type NotificationOutput struct {
	AchievementID string
	Name          string
	Icon          string
	UnlockedAt    time.Time
}
