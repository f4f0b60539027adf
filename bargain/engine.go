package bargain

import (
	"fmt"
	"math"

	"bargain-lite/item"
)

// Result is the outcome of one negotiation round. Immutable once produced.
type Result struct {
	Action       Action
	CounterOffer int64 // meaningful only when Action == ActionCounter
	MoodChange   float64
	TrustChange  float64
	Reasoning    string
}

// Engine is the rule-based decision core. Merchant, item and mode are fixed
// at construction; the engine tracks the round counter and its own last
// counteroffer, which anchors the next concession.
type Engine struct {
	merchant *Merchant
	item     *item.Item
	mode     Mode

	round     int
	maxRounds int

	lastOffer int64 // last merchant counteroffer
	hasOffer  bool
}

// NewEngine creates an engine. Hard mode caps the negotiation at 4 rounds
// instead of 6.
func NewEngine(merchant *Merchant, it *item.Item, mode Mode, hardMode bool) *Engine {
	maxRounds := DefaultMaxRounds
	if hardMode {
		maxRounds = HardModeMaxRounds
	}
	return &Engine{
		merchant:  merchant,
		item:      it,
		mode:      mode,
		round:     1,
		maxRounds: maxRounds,
	}
}

func (e *Engine) Round() int     { return e.round }
func (e *Engine) MaxRounds() int { return e.maxRounds }

// AdvanceRound moves to the next round. Called by the session after the
// round's result has been fully applied.
func (e *Engine) AdvanceRound() { e.round++ }

// LastMerchantOffer returns the anchor for the next counteroffer, if any.
func (e *Engine) LastMerchantOffer() (int64, bool) {
	return e.lastOffer, e.hasOffer
}

// AcceptableRange derives the merchant's private threshold band from the
// fair price, target margin, mood, trust and round pressure. The band
// loosens as the round limit approaches.
func (e *Engine) AcceptableRange() (min, max float64) {
	fair := float64(e.item.FairPrice)
	margin := e.merchant.Personality().TargetMargin / 100
	moodMod := e.merchant.MoodModifier()
	trustMod := e.merchant.TrustModifier()
	roundPressure := 1 + (float64(e.round)/float64(e.maxRounds))*0.3

	if e.mode == ModeBuy {
		// Merchant is selling and wants a price above fair.
		baseMin := fair * (1 + margin)
		return baseMin / (moodMod * trustMod * roundPressure), fair * 2
	}
	// Merchant is buying and wants a price below fair.
	baseMax := fair * (1 - margin)
	return 0, baseMax * moodMod * trustMod * roundPressure
}

// Decide implements Decider. It never fails: every offer yields a
// well-formed result.
func (e *Engine) Decide(playerOffer int64) (Result, error) {
	return e.EvaluateOffer(playerOffer), nil
}

// EvaluateOffer turns a player offer into accept/counter/reject plus the
// mood and trust deltas the session applies afterwards.
func (e *Engine) EvaluateOffer(playerOffer int64) Result {
	// Walk-away trumps everything, including a perfect offer.
	if e.ShouldWalkAway() {
		return Result{
			Action:      ActionReject,
			MoodChange:  -10,
			TrustChange: -5,
			Reasoning:   "walked away due to frustration or exceeded patience",
		}
	}

	fair := float64(e.item.FairPrice)
	min, max := e.AcceptableRange()

	// Offer quality from the merchant's side of the table.
	var ratio float64
	if e.mode == ModeBuy {
		ratio = float64(playerOffer) / fair
	} else {
		ratio = fair / float64(playerOffer)
	}

	offer := float64(playerOffer)
	if offer >= min && offer <= max {
		return e.acceptOffer(playerOffer, ratio)
	}

	counter := e.generateCounteroffer(playerOffer)

	moodChange := 0.0
	volatility := e.merchant.Personality().MoodVolatility
	switch {
	case ratio < 0.5:
		moodChange = -15 * (volatility / 10)
	case ratio < 0.7:
		moodChange = -8 * (volatility / 10)
	case ratio < 0.9:
		moodChange = -3
	case ratio > 1.2:
		moodChange = 10
	}

	return Result{
		Action:       ActionCounter,
		CounterOffer: counter,
		MoodChange:   moodChange,
		TrustChange:  0,
		Reasoning:    fmt.Sprintf("offer %.2fx fair, counter at %d", ratio, counter),
	}
}

// generateCounteroffer concedes part of the gap between the current anchor
// and the player's offer. Chaining anchors round to round keeps counters
// converging toward the player instead of snapping back to fair price.
func (e *Engine) generateCounteroffer(playerOffer int64) int64 {
	fair := float64(e.item.FairPrice)
	concessionRate := e.merchant.Personality().ConcessionRate
	trustMod := e.merchant.TrustModifier()

	anchor := float64(e.lastOffer)
	if !e.hasOffer {
		if e.mode == ModeBuy {
			anchor = fair * 1.4 // open high when selling
		} else {
			anchor = fair * 0.6 // open low when buying
		}
	}

	direction := -1.0
	if float64(playerOffer) > anchor {
		direction = 1.0
	}
	gap := math.Abs(float64(playerOffer) - anchor)
	concession := gap * concessionRate * trustMod

	counter := int64(math.Round(anchor + direction*concession))
	e.lastOffer = counter
	e.hasOffer = true
	return counter
}

func (e *Engine) acceptOffer(playerOffer int64, ratio float64) Result {
	trustChange := 0.0
	if ratio >= 0.9 && ratio <= 1.1 {
		// Fair deal earns a trust bonus.
		trustChange = 5
	}
	return Result{
		Action:      ActionAccept,
		MoodChange:  20,
		TrustChange: trustChange,
		Reasoning:   fmt.Sprintf("accepted offer of %d", playerOffer),
	}
}

// ShouldWalkAway reports whether the merchant abandons the negotiation:
// mood below -60 or the round count past their patience.
func (e *Engine) ShouldWalkAway() bool {
	return e.merchant.Mood() < -60 || e.round > e.merchant.Personality().Patience
}
