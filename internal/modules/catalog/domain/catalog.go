package domain

import (
	"fmt"
	"strings"
)

const SchemaVersion = 1

type Prompt struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}

type Sensei struct {
	ID         string   `yaml:"id"`
	Name       string   `yaml:"name"`
	Kanji      string   `yaml:"kanji"`
	Meaning    string   `yaml:"meaning"`
	Philosophy string   `yaml:"philosophy"`
	Prompts    []Prompt `yaml:"prompts"`
}

// WritingMode describes how a session runs: the countdown, whether the
// editor permits backspace, and whether prompts come from the chaos
// generator. DurationSec of zero means unlimited.
type WritingMode struct {
	ID                string `yaml:"id"`
	Name              string `yaml:"name"`
	Description       string `yaml:"description"`
	DurationSec       int    `yaml:"duration_sec"`
	Timer             bool   `yaml:"timer"`
	Countdown         bool   `yaml:"countdown"`
	Backspace         bool   `yaml:"backspace"`
	WordGoal          int    `yaml:"word_goal"`
	ChaosPrompts      bool   `yaml:"chaos_prompts"`
	SenseiRestriction string `yaml:"sensei_restriction"`
}

type Category string

const (
	CategoryMilestone Category = "milestone"
	CategoryStreak    Category = "streak"
	CategorySensei    Category = "sensei"
	CategorySpecial   Category = "special"
)

type AchievementDef struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Icon        string   `yaml:"icon"`
	Category    Category `yaml:"category"`
}

func (s Sensei) Validate() error {
	if strings.TrimSpace(s.ID) == "" {
		return fmt.Errorf("sensei id is required")
	}
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("sensei name is required")
	}
	if len(s.Prompts) == 0 {
		return fmt.Errorf("sensei %s has no prompts", s.ID)
	}
	return nil
}

func (m WritingMode) Validate() error {
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("mode id is required")
	}
	if m.DurationSec < 0 {
		return fmt.Errorf("mode %s has negative duration", m.ID)
	}
	return nil
}

// AllowsSensei reports whether the mode may be used with the given sensei.
func (m WritingMode) AllowsSensei(senseiID string) bool {
	return m.SenseiRestriction == "" || m.SenseiRestriction == senseiID
}

func (c Category) Validate() error {
	switch c {
	case CategoryMilestone, CategoryStreak, CategorySensei, CategorySpecial:
		return nil
	default:
		return fmt.Errorf("unknown achievement category: %s", c)
	}
}

func (a AchievementDef) Validate() error {
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("achievement id is required")
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("achievement %s has no name", a.ID)
	}
	return a.Category.Validate()
}
