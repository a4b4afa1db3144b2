package dto

import "time"

type StartInput struct {
	SenseiID string
	ModeID   string
}

type StartOutput struct {
	SessionID  string
	SenseiID   string
	ModeID     string
	PromptText string
	StartedAt  time.Time
	Remaining  int
}

type DraftOutput struct {
	SessionID  string
	SenseiID   string
	ModeID     string
	PromptText string
	Content    string
	WordCount  int
	StartedAt  time.Time
	LastSaved  time.Time
}

type CompleteInput struct {
	Content string
}

type StatsOutput struct {
	TotalSessions   int
	TotalWords      int
	TotalMinutes    int
	CurrentStreak   int
	LongestStreak   int
	LastWritingDate string
}

type CompleteOutput struct {
	SessionID       string
	WordCount       int
	DurationSec     int
	NotePath        string
	Stats           StatsOutput
	NewAchievements []string
	Remaining       int
}

type SessionOutput struct {
	ID          string
	SenseiID    string
	PromptText  string
	Content     string
	WordCount   int
	StartedAt   time.Time
	CompletedAt time.Time
	DurationSec int
}

type SenseiTotal struct {
	SenseiID string
	Sessions int
}

type DayTotalOutput struct {
	Day      string
	Sessions int
	Words    int
}

type StatsDetailOutput struct {
	Stats        StatsOutput
	SenseiTotals []SenseiTotal
	RecentDays   []DayTotalOutput
}
