package domain

import "fmt"

// Chaos prompts are assembled from a setting, a constraint, and a mood.
// Gonzo mode is the only consumer.
var (
	ChaosSettings = []string{
		"A hospital waiting room",
		"The last subway car",
		"A funeral you crashed",
		"Your childhood bedroom",
		"A burning building",
		"The edge of a cliff",
		"A stranger's wedding",
		"An interrogation room",
		"The moment before impact",
		"A place that no longer exists",
	}
	ChaosConstraints = []string{
		"Only questions",
		"No adjectives",
		"Present tense only",
		"Second person",
		"One continuous sentence",
		"Under 100 words",
		"No dialogue",
		"Every sentence starts with I",
		"Backwards chronology",
		"Only what you can see",
	}
	ChaosMoods = []string{
		"Furious",
		"Terrified",
		"Deliriously happy",
		"Deeply ashamed",
		"Paranoid",
		"Heartbroken",
		"Manic",
		"Numb",
		"Desperate",
		"Triumphant",
	}
)

func ChaosPrompt(setting, constraint, mood int) string {
	return fmt.Sprintf("%s. %s. %s.",
		ChaosSettings[setting%len(ChaosSettings)],
		ChaosConstraints[constraint%len(ChaosConstraints)],
		ChaosMoods[mood%len(ChaosMoods)],
	)
}
