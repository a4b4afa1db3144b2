package domain

import "time"

const (
	SchemaVersion = 1

	// HistoryLimit bounds the session log; older entries are discarded.
	HistoryLimit = 100

	// DateLayout is the calendar-day key used for streak continuity.
	DateLayout = "2006-01-02"
)

// WritingSession is written exactly once to history when a session
// completes and never mutated afterwards.
type WritingSession struct {
	ID          string    `json:"id"`
	SenseiID    string    `json:"sensei_id"`
	PromptText  string    `json:"prompt_text"`
	Content     string    `json:"content"`
	WordCount   int       `json:"word_count"`
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at,omitzero"`
	DurationSec int       `json:"duration_sec,omitempty"`
}

// UserStats carries the cumulative totals and streak state. Totals and
// LongestStreak only ever grow; LastWritingDate is a date-only string in
// the writer's local time.
type UserStats struct {
	TotalSessions   int    `json:"total_sessions"`
	TotalWords      int    `json:"total_words"`
	TotalMinutes    int    `json:"total_minutes"`
	CurrentStreak   int    `json:"current_streak"`
	LongestStreak   int    `json:"longest_streak"`
	LastWritingDate string `json:"last_writing_date,omitempty"`
}

// Draft is the single in-progress entry, overwritten wholesale on save.
type Draft struct {
	SessionID  string    `json:"session_id"`
	SenseiID   string    `json:"sensei_id"`
	ModeID     string    `json:"mode_id"`
	PromptText string    `json:"prompt_text"`
	Content    string    `json:"content"`
	StartedAt  time.Time `json:"started_at"`
	LastSaved  time.Time `json:"last_saved"`
}

// DayTotal is a per-calendar-day aggregate from the history projection.
type DayTotal struct {
	Day      string
	Sessions int
	Words    int
}

// Advance folds one completed session into the stats. A completion on the
// same calendar day leaves the streak alone, the day after the last writing
// date extends it, and anything else starts over at 1.
func (s UserStats) Advance(session WritingSession, now time.Time) UserStats {
	today := now.Format(DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)

	streak := s.CurrentStreak
	switch s.LastWritingDate {
	case today:
	case yesterday:
		streak++
	default:
		streak = 1
	}

	longest := s.LongestStreak
	if streak > longest {
		longest = streak
	}

	return UserStats{
		TotalSessions:   s.TotalSessions + 1,
		TotalWords:      s.TotalWords + session.WordCount,
		TotalMinutes:    s.TotalMinutes + session.DurationSec/60,
		CurrentStreak:   streak,
		LongestStreak:   longest,
		LastWritingDate: today,
	}
}

// Prepend inserts session at the head of history and truncates to
// HistoryLimit entries, most recent first.
func Prepend(history []WritingSession, session WritingSession) []WritingSession {
	out := make([]WritingSession, 0, len(history)+1)
	out = append(out, session)
	out = append(out, history...)
	if len(out) > HistoryLimit {
		out = out[:HistoryLimit]
	}
	return out
}
