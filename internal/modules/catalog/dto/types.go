package dto

type PromptOutput struct {
	PromptID string
	Text     string
	Chaos    bool
}

type SenseiOutput struct {
	ID          string
	Name        string
	Kanji       string
	Meaning     string
	Philosophy  string
	PromptCount int
}

type SenseiDetailOutput struct {
	SenseiOutput
	SamplePrompt string
}

type ModeOutput struct {
	ID                string
	Name              string
	Description       string
	DurationSec       int
	Timer             bool
	Countdown         bool
	Backspace         bool
	ChaosPrompts      bool
	SenseiRestriction string
}

type AchievementDefOutput struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Category    string
}
