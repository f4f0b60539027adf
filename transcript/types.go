// Package transcript replays a scripted negotiation through a fresh
// session and records the per-round outcomes. Specs are JSON so they can
// live as fixtures; identical specs always produce identical tapes.
package transcript

import "bargain-lite/bargain"

type Spec struct {
	Seed     int64        `json:"seed"`
	Mode     string       `json:"mode"` // "BUY" or "SELL"
	HardMode bool         `json:"hard_mode,omitempty"`
	Merchant MerchantSpec `json:"merchant"`
	Item     ItemSpec     `json:"item"`
	Offers   []int64      `json:"offers"`
}

type MerchantSpec struct {
	Name string `json:"name,omitempty"`
	// Personality names a registered profile ("Greedy", "Honest",
	// "Impulsive" or a custom one); Traits overrides it entirely.
	Personality string                     `json:"personality,omitempty"`
	Traits      *bargain.PersonalityTraits `json:"traits,omitempty"`
	Mood        float64                    `json:"mood"`
	Trust       float64                    `json:"trust"`
}

type ItemSpec struct {
	Name      string `json:"name"`
	BasePrice int64  `json:"base_price"`
	Rarity    string `json:"rarity"`
	Condition string `json:"condition"`
}

type Tape struct {
	TapeVersion int     `json:"tape_version"`
	SessionID   string  `json:"session_id"`
	FairPrice   int64   `json:"fair_price"`
	Events      []Event `json:"events"`
}

// Event is one negotiation round as seen from outside the engine.
type Event struct {
	Round        int     `json:"round"`
	Offer        int64   `json:"offer"`
	Action       string  `json:"action"`
	CounterOffer int64   `json:"counter_offer,omitempty"`
	Mood         float64 `json:"mood"`
	Trust        float64 `json:"trust"`
	Bluffing     bool    `json:"bluffing,omitempty"`
	Reasoning    string  `json:"reasoning,omitempty"`
}
