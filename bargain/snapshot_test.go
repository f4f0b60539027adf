package bargain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerchantSnapshotRoundTrip(t *testing.T) {
	m := NewMerchantWithState("Kronix", Greedy, -20, 65)

	snap := m.Snapshot()
	assert.Equal(t, "Kronix", snap.Name)
	assert.InDelta(t, -20.0, snap.Mood, 1e-9)
	assert.InDelta(t, 65.0, snap.Trust, 1e-9)
	assert.Equal(t, Greedy, snap.Personality)

	restored := RestoreMerchant(snap)
	assert.Equal(t, m.Name, restored.Name)
	assert.InDelta(t, m.Mood(), restored.Mood(), 1e-9)
	assert.InDelta(t, m.Trust(), restored.Trust(), 1e-9)
}

func TestRestoreMerchantClampsTamperedState(t *testing.T) {
	snap := NewMerchantWithState("Kronix", Greedy, 0, 50).Snapshot()
	snap.Mood = 150
	snap.Trust = -10

	restored := RestoreMerchant(snap)
	assert.InDelta(t, 100.0, restored.Mood(), 1e-9)
	assert.InDelta(t, 0.0, restored.Trust(), 1e-9)
}

func TestSessionSnapshot(t *testing.T) {
	s, _ := newTestSession(t, Honest, ModeBuy, true)

	_, err := s.SubmitOffer(700)
	require.NoError(t, err)

	snap := s.Snapshot()
	assert.Equal(t, s.ID, snap.ID)
	assert.Equal(t, ModeBuy, snap.Mode)
	assert.Equal(t, 2, snap.Round)
	assert.Equal(t, HardModeMaxRounds, snap.MaxRounds)
	assert.False(t, snap.Complete)
	assert.Equal(t, "Plasma Cutter", snap.ItemName)
	assert.EqualValues(t, 1000, snap.FairPrice)
	assert.Equal(t, "Vexar", snap.Merchant.Name)
	require.Len(t, snap.History, 1)
	assert.EqualValues(t, 700, snap.History[0].Offer)
}
