package item

import (
	"math"
	"math/rand"
)

// Item is a tradeable item with a hidden fair price. Immutable after
// construction except IsEquipped, which belongs to the inventory subsystem.
//
// FairPrice is the ground truth the merchant negotiates around; MarketHint
// is the deliberately noisy figure shown to the player. The gap between the
// two is the game's information asymmetry.
type Item struct {
	Name        string
	Description string
	Category    Category
	Rarity      Rarity
	Condition   Condition
	FairPrice   int64
	MarketHint  int64

	// Wearable-only fields, zero for everything else.
	Slot       WearableSlot
	MoodBonus  int
	IsEquipped bool
}

// New builds an item from a template. The rng feeds the market hint noise:
// one draw for the noise magnitude, one for its direction.
func New(tpl Template, rarity Rarity, condition Condition, rng *rand.Rand) *Item {
	it := &Item{
		Name:        tpl.Name,
		Description: tpl.Description,
		Category:    tpl.Category,
		Rarity:      rarity,
		Condition:   condition,
		Slot:        tpl.Slot,
		MoodBonus:   tpl.MoodBonus,
	}
	it.FairPrice = fairPrice(tpl.BasePrice, rarity, condition)
	it.MarketHint = marketHint(it.FairPrice, rng)
	return it
}

func fairPrice(basePrice int64, rarity Rarity, condition Condition) int64 {
	return int64(math.Round(float64(basePrice) * rarity.Multiplier() * condition.Multiplier()))
}

// marketHint applies ±15–30% noise to the fair price.
func marketHint(fair int64, rng *rand.Rand) int64 {
	noise := 0.15 + rng.Float64()*0.15
	direction := 1.0
	if rng.Float64() <= 0.5 {
		direction = -1.0
	}
	return int64(math.Round(float64(fair) * (1 + direction*noise)))
}
