package bargain

import "math/rand"

// PersonalityTraits defines the tunable parameters of a merchant.
type PersonalityTraits struct {
	Name             string  `json:"name"`
	TargetMargin     float64 `json:"targetMargin"`     // % profit they aim for
	Patience         int     `json:"patience"`         // rounds before frustration
	ConcessionRate   float64 `json:"concessionRate"`   // fraction of the gap conceded per round
	BluffSensitivity float64 `json:"bluffSensitivity"` // how easily offended by bluffs
	MoodVolatility   float64 `json:"moodVolatility"`   // mood swing magnitude

	// Background is optional flavor attached by external tooling. It never
	// influences the rule engine.
	Background *Background `json:"background,omitempty"`
}

// Background is a typed bundle of extended personality data.
type Background struct {
	Backstory     string   `json:"backstory,omitempty"`
	SpeakingStyle string   `json:"speakingStyle,omitempty"`
	Catchphrases  []string `json:"catchphrases,omitempty"`
}

// The three stock personalities.
var (
	Greedy = PersonalityTraits{
		Name:             "Greedy",
		TargetMargin:     40,
		Patience:         6,
		ConcessionRate:   0.03,
		BluffSensitivity: 0.6,
		MoodVolatility:   8,
	}

	Honest = PersonalityTraits{
		Name:             "Honest",
		TargetMargin:     15,
		Patience:         5,
		ConcessionRate:   0.07,
		BluffSensitivity: 0.9,
		MoodVolatility:   5,
	}

	Impulsive = PersonalityTraits{
		Name:             "Impulsive",
		TargetMargin:     25,
		Patience:         3,
		ConcessionRate:   0.12,
		BluffSensitivity: 1.2,
		MoodVolatility:   15,
	}
)

// Presets returns the stock personalities in a stable order.
func Presets() []PersonalityTraits {
	return []PersonalityTraits{Greedy, Honest, Impulsive}
}

// RandomTraits picks one of the stock personalities.
func RandomTraits(rng *rand.Rand) PersonalityTraits {
	presets := Presets()
	return presets[rng.Intn(len(presets))]
}
