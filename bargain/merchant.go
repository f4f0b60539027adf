package bargain

import "math/rand"

var (
	namePrefixes = []string{"Zyx", "Kron", "Vex", "Nyx", "Qor", "Jax", "Mek", "Rax"}
	nameSuffixes = []string{"ar", "ix", "or", "el", "ak", "us", "an", "ex"}
)

// Merchant is the mutable negotiation counterpart: a personality plus the
// short-term mood and long-term trust the engine reads and writes.
//
// Mood decays toward 0 by 2 on every adjustment; trust never decays.
// A merchant persists across negotiations until explicitly replaced.
type Merchant struct {
	Name string

	personality PersonalityTraits
	mood        float64 // [-100, 100]
	trust       float64 // [0, 100]
}

// NewMerchant creates a merchant with neutral mood and trust and a
// generated name.
func NewMerchant(traits PersonalityTraits, rng *rand.Rand) *Merchant {
	return &Merchant{
		Name:        generateName(rng),
		personality: traits,
		mood:        0,
		trust:       50,
	}
}

// NewMerchantWithState creates a merchant from externally stored state,
// e.g. a restored save. Mood and trust are clamped to their valid ranges.
func NewMerchantWithState(name string, traits PersonalityTraits, mood, trust float64) *Merchant {
	return &Merchant{
		Name:        name,
		personality: traits,
		mood:        clamp(mood, MoodMin, MoodMax),
		trust:       clamp(trust, TrustMin, TrustMax),
	}
}

func (m *Merchant) Personality() PersonalityTraits { return m.personality }
func (m *Merchant) Mood() float64                  { return m.mood }
func (m *Merchant) Trust() float64                 { return m.trust }

// AdjustMood applies a volatility-scaled delta, clamps, then decays the
// result by 2 toward neutral. The decay rides on every adjustment, so the
// observable change is always the two-step value.
func (m *Merchant) AdjustMood(delta float64) {
	adjusted := delta * (m.personality.MoodVolatility / 10)
	m.mood = clamp(m.mood+adjusted, MoodMin, MoodMax)

	if m.mood > 0 {
		m.mood = max(0, m.mood-2)
	} else if m.mood < 0 {
		m.mood = min(0, m.mood+2)
	}
}

// AdjustTrust applies a raw delta clamped to [0, 100]. No decay.
func (m *Merchant) AdjustTrust(delta float64) {
	m.trust = clamp(m.trust+delta, TrustMin, TrustMax)
}

// MoodModifier maps mood [-100, 100] to [0.8, 1.2].
func (m *Merchant) MoodModifier() float64 {
	return 1.0 + m.mood/500
}

// TrustModifier maps trust [0, 100] to [0.7, 1.3].
func (m *Merchant) TrustModifier() float64 {
	return 0.7 + (m.trust/100)*0.6
}

// setState restores a previously captured mood/trust pair. Used by the
// session to undo a round whose decision step failed.
func (m *Merchant) setState(mood, trust float64) {
	m.mood = mood
	m.trust = trust
}

func generateName(rng *rand.Rand) string {
	return namePrefixes[rng.Intn(len(namePrefixes))] + nameSuffixes[rng.Intn(len(nameSuffixes))]
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
