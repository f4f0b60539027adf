package bargain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubDecider is a scriptable Decider for exercising the session pipeline.
type stubDecider struct {
	round     int
	maxRounds int
	result    Result
	fail      error
}

func newStubDecider(result Result) *stubDecider {
	return &stubDecider{round: 1, maxRounds: DefaultMaxRounds, result: result}
}

func (d *stubDecider) Decide(offer int64) (Result, error) {
	if d.fail != nil {
		return Result{}, d.fail
	}
	return d.result, nil
}

func (d *stubDecider) Round() int     { return d.round }
func (d *stubDecider) MaxRounds() int { return d.maxRounds }
func (d *stubDecider) AdvanceRound()  { d.round++ }

func newTestSession(t *testing.T, traits PersonalityTraits, mode Mode, hardMode bool) (*Session, *Merchant) {
	t.Helper()
	m := NewMerchantWithState("Vexar", traits, 0, 50)
	s, err := NewSession(m, fairItem(t), Config{Mode: mode, HardMode: hardMode})
	require.NoError(t, err)
	return s, m
}

func TestNewSessionValidation(t *testing.T) {
	m := NewMerchantWithState("Vexar", Honest, 0, 50)
	it := fairItem(t)

	_, err := NewSession(nil, it, Config{Mode: ModeBuy})
	assert.Error(t, err)

	_, err = NewSession(m, nil, Config{Mode: ModeBuy})
	assert.Error(t, err)

	_, err = NewSession(m, it, Config{Mode: ModeNone})
	var cfgErr InvalidConfigError
	assert.ErrorAs(t, err, &cfgErr)

	s, err := NewSession(m, it, Config{Mode: ModeBuy})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, 1, s.Round())
	assert.Equal(t, DefaultMaxRounds, s.MaxRounds())
	assert.False(t, s.IsComplete())
}

func TestSessionRejectsNonPositiveOffer(t *testing.T) {
	s, m := newTestSession(t, Honest, ModeBuy, false)

	_, err := s.SubmitOffer(0)
	require.ErrorIs(t, err, ErrInvalidOffer)
	_, err = s.SubmitOffer(-50)
	require.ErrorIs(t, err, ErrInvalidOffer)

	assert.Empty(t, s.History())
	assert.Equal(t, 1, s.Round())
	assert.InDelta(t, 0.0, m.Mood(), 1e-9)
	assert.InDelta(t, 50.0, m.Trust(), 1e-9)
}

func TestSessionAcceptCompletes(t *testing.T) {
	s, m := newTestSession(t, Honest, ModeBuy, true)

	result, err := s.SubmitOffer(1090)
	require.NoError(t, err)
	require.Equal(t, ActionAccept, result.Action)

	assert.True(t, s.IsComplete())
	// Mood: +20 scaled by volatility 5 → +10, then decay 2 → 8.
	assert.InDelta(t, 8.0, m.Mood(), 1e-9)
	assert.InDelta(t, 55.0, m.Trust(), 1e-9)

	history := s.History()
	require.Len(t, history, 1)
	assert.Equal(t, 1, history[0].Round)
	assert.EqualValues(t, 1090, history[0].Offer)

	_, err = s.SubmitOffer(900)
	assert.ErrorIs(t, err, ErrSessionComplete)
}

func TestSessionRoundExhaustion(t *testing.T) {
	s, _ := newTestSession(t, Honest, ModeBuy, true)

	// Four steady offers below the acceptance floor burn all four rounds.
	for _, offer := range []int64{700, 710, 720, 730} {
		result, err := s.SubmitOffer(offer)
		require.NoError(t, err)
		require.Equal(t, ActionCounter, result.Action)
	}

	assert.True(t, s.IsComplete(), "round limit exceeded")
	assert.Len(t, s.History(), 4)

	_, err := s.SubmitOffer(1090)
	assert.ErrorIs(t, err, ErrSessionComplete)
}

func TestSessionWalkAwayPastPatience(t *testing.T) {
	s, m := newTestSession(t, Impulsive, ModeBuy, false)

	// Offers at 90% of fair stay outside the greedy band but keep the mood
	// at zero, so only the round counter can trigger the walk-away.
	for _, offer := range []int64{900, 910, 920} {
		result, err := s.SubmitOffer(offer)
		require.NoError(t, err)
		require.Equal(t, ActionCounter, result.Action)
	}

	result, err := s.SubmitOffer(930)
	require.NoError(t, err)
	assert.Equal(t, ActionReject, result.Action)
	assert.True(t, s.IsComplete())

	// Reject: mood -10 scaled by volatility 15 → -15, decay → -13.
	assert.InDelta(t, -13.0, m.Mood(), 1e-9)
	assert.InDelta(t, 45.0, m.Trust(), 1e-9)
}

func TestSessionBluffPenaltyFeedsTheSameRound(t *testing.T) {
	s, m := newTestSession(t, Greedy, ModeBuy, false)

	offers := []int64{10, 1000, 10, 1000}
	for _, offer := range offers {
		result, err := s.SubmitOffer(offer)
		require.NoError(t, err)
		require.Equal(t, ActionCounter, result.Action)
	}

	assert.True(t, s.IsBluffing())
	// Two bluffing rounds, each -10 * sensitivity 0.6.
	assert.InDelta(t, 38.0, m.Trust(), 1e-9)

	// Reading the flag again must not mutate the detector.
	assert.True(t, s.IsBluffing())
	assert.InDelta(t, 38.0, m.Trust(), 1e-9)
	assert.Len(t, s.History(), 4)
}

func TestSessionIsBluffingBeforeAnyOffer(t *testing.T) {
	s, _ := newTestSession(t, Greedy, ModeBuy, false)
	assert.False(t, s.IsBluffing())
}

func TestSessionRollsBackFailedDecision(t *testing.T) {
	m := NewMerchantWithState("Vexar", Greedy, 0, 50)
	stub := newStubDecider(Result{Action: ActionCounter, CounterOffer: 1200})
	s, err := NewSession(m, fairItem(t), Config{Mode: ModeBuy, Decider: stub})
	require.NoError(t, err)

	// First lowball lands normally: one extreme offer, no penalty yet.
	_, err = s.SubmitOffer(100)
	require.NoError(t, err)
	require.Len(t, s.History(), 1)

	// Second lowball would cross the bluff line, but the decision fails:
	// the trust penalty and the offer itself must both be undone.
	stub.fail = errors.New("decider offline")
	_, err = s.SubmitOffer(150)
	require.Error(t, err)

	assert.Len(t, s.History(), 1)
	assert.Equal(t, 2, s.Round(), "failed round is not consumed")
	assert.InDelta(t, 0.0, m.Mood(), 1e-9)
	assert.InDelta(t, 50.0, m.Trust(), 1e-9)
	assert.False(t, s.IsBluffing(), "metrics rolled back to the first offer")

	// The same round can be retried once the decider recovers.
	stub.fail = nil
	_, err = s.SubmitOffer(150)
	require.NoError(t, err)
	assert.Len(t, s.History(), 2)
	assert.True(t, s.IsBluffing())
	assert.InDelta(t, 44.0, m.Trust(), 1e-9)
}

func TestSessionHistoryIsACopy(t *testing.T) {
	s, _ := newTestSession(t, Honest, ModeBuy, false)

	_, err := s.SubmitOffer(700)
	require.NoError(t, err)

	history := s.History()
	history[0].Offer = 999999

	assert.EqualValues(t, 700, s.History()[0].Offer)
}
