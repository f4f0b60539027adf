package bargain

// Decider is the per-round decision step of a session. The rule Engine is
// the only implementation shipped here; a network-bound decider can be
// substituted through Config.Decider.
//
// Decide must be all-or-nothing: either return a well-formed Result, or an
// error with no partial effect. When it errors the session rolls the round
// back completely — merchant state, bluff history and the round counter are
// left exactly as they were.
type Decider interface {
	// Decide evaluates the player's offer for the current round.
	Decide(playerOffer int64) (Result, error)
	// Round is the current round, starting at 1.
	Round() int
	// MaxRounds is the round limit for this negotiation.
	MaxRounds() int
	// AdvanceRound is called once the round's result is fully applied.
	AdvanceRound()
}

var _ Decider = (*Engine)(nil)
