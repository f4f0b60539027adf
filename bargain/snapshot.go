package bargain

// MerchantSnapshot is a read-only projection of merchant state, shaped for
// rendering and external persistence. Restoring one through
// NewMerchantWithState yields a valid starting merchant for a new session.
type MerchantSnapshot struct {
	Name        string            `json:"name"`
	Personality PersonalityTraits `json:"personality"`
	Mood        float64           `json:"mood"`
	Trust       float64           `json:"trust"`
}

// Snapshot captures the merchant state.
func (m *Merchant) Snapshot() MerchantSnapshot {
	return MerchantSnapshot{
		Name:        m.Name,
		Personality: m.personality,
		Mood:        m.mood,
		Trust:       m.trust,
	}
}

// RestoreMerchant rebuilds a merchant from a snapshot, clamping mood and
// trust back into range.
func RestoreMerchant(snap MerchantSnapshot) *Merchant {
	return NewMerchantWithState(snap.Name, snap.Personality, snap.Mood, snap.Trust)
}

// SessionSnapshot is a read-only projection of a session.
type SessionSnapshot struct {
	ID        string `json:"id"`
	Mode      Mode   `json:"mode"`
	Round     int    `json:"round"`
	MaxRounds int    `json:"maxRounds"`
	Complete  bool   `json:"complete"`

	ItemName   string `json:"itemName"`
	FairPrice  int64  `json:"fairPrice"`
	MarketHint int64  `json:"marketHint"`

	Merchant MerchantSnapshot `json:"merchant"`
	History  []RoundRecord    `json:"history"`
}

// Snapshot captures the current session state.
func (s *Session) Snapshot() SessionSnapshot {
	return SessionSnapshot{
		ID:         s.ID,
		Mode:       s.mode,
		Round:      s.decider.Round(),
		MaxRounds:  s.decider.MaxRounds(),
		Complete:   s.IsComplete(),
		ItemName:   s.item.Name,
		FairPrice:  s.item.FairPrice,
		MarketHint: s.item.MarketHint,
		Merchant:   s.merchant.Snapshot(),
		History:    s.History(),
	}
}
