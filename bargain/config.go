package bargain

// Config parameterizes a negotiation session.
type Config struct {
	// Direction of the trade from the player's point of view.
	Mode Mode

	// HardMode shortens the negotiation to 4 rounds instead of 6.
	HardMode bool

	// Decider overrides the per-round decision step. Nil selects the
	// built-in rule engine.
	Decider Decider
}

func (c Config) validate() error {
	if c.Mode != ModeBuy && c.Mode != ModeSell {
		return InvalidConfigError("mode must be BUY or SELL")
	}
	return nil
}

func (c Config) maxRounds() int {
	if c.HardMode {
		return HardModeMaxRounds
	}
	return DefaultMaxRounds
}
