package domain

import "time"

// Achievement ids. The catalog carries the display metadata; the predicate
// battery is fixed code, so the ids live here too.
const (
	IDFirstBlood     = "first-blood"
	IDWordWarrior1K  = "word-warrior-1k"
	IDWordWarrior10K = "word-warrior-10k"
	IDWordWarrior50K = "word-warrior-50k"
	IDMarathon       = "marathon"
	IDHabit          = "the-habit"
	IDProfessional   = "the-professional"
	IDGenreHopper    = "genre-hopper"
	IDNightOwl       = "night-owl"
	IDEarlyBird      = "early-bird"
)

const (
	MarathonWords      = 1000
	HabitStreakDays    = 7
	ProfessionalStreak = 30
	SenseiSessionGoal  = 10

	// QueueLimit bounds the pending-notification mailbox.
	QueueLimit = 20
)

// WordMilestones maps cumulative word thresholds to their achievement ids.
// Each threshold is checked independently on every evaluation, so a single
// session crossing several unlocks all of them.
var WordMilestones = map[int]string{
	1000:  IDWordWarrior1K,
	10000: IDWordWarrior10K,
	50000: IDWordWarrior50K,
}

// SenseiMilestones maps a sensei id to the achievement unlocked after
// SenseiSessionGoal completed sessions with that sensei.
var SenseiMilestones = map[string]string{
	"kaze": "precision",
	"sora": "flow-state",
	"ryu":  "fearless",
}

// Night window: [22,24) and [0,4). Early window: [4,7). Both read the
// local clock at evaluation time, not the session's own timestamps.
func InNightWindow(hour int) bool {
	return hour >= 22 || hour < 4
}

func InEarlyWindow(hour int) bool {
	return hour >= 4 && hour < 7
}

// Notification is one pending unlock announcement awaiting acknowledgement.
type Notification struct {
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}
