package bargain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBluffDetectorExtremeLowballs(t *testing.T) {
	d := NewBluffDetector()

	m := d.AnalyzeOffer(100, 1000, ModeBuy)
	assert.Equal(t, 1, m.ExtremeOffers)
	assert.False(t, d.IsBluffing(m), "one extreme offer is still tolerated")

	m = d.AnalyzeOffer(150, 1000, ModeBuy)
	assert.Equal(t, 2, m.ExtremeOffers)
	assert.True(t, d.IsBluffing(m))
	assert.InDelta(t, 0.15, m.LastOfferRatio, 1e-9)
}

func TestBluffDetectorAlternatingSequence(t *testing.T) {
	// The classic probe: lowball, snap to fair, lowball again.
	d := NewBluffDetector()

	offers := []int64{10, 1000, 10, 1000}
	var m BluffMetrics
	for _, offer := range offers {
		m = d.AnalyzeOffer(offer, 1000, ModeBuy)
	}

	assert.Equal(t, 2, m.ExtremeOffers)
	assert.Equal(t, 3, m.Oscillations)
	assert.True(t, d.IsBluffing(m))
}

func TestBluffDetectorOscillationsAlone(t *testing.T) {
	d := NewBluffDetector()

	// No offer dips below 40% of fair; the swings alone cross the line.
	offers := []int64{700, 1000, 650, 1000}
	var m BluffMetrics
	for _, offer := range offers {
		m = d.AnalyzeOffer(offer, 1000, ModeBuy)
	}

	assert.Equal(t, 0, m.ExtremeOffers)
	assert.Equal(t, 3, m.Oscillations)
	assert.True(t, d.IsBluffing(m))
}

func TestBluffDetectorSellSideExtremes(t *testing.T) {
	d := NewBluffDetector()

	d.AnalyzeOffer(1700, 1000, ModeSell)
	m := d.AnalyzeOffer(1800, 1000, ModeSell)

	assert.Equal(t, 2, m.ExtremeOffers)
	assert.True(t, d.IsBluffing(m))
}

func TestBluffDetectorSteadyOffersAreClean(t *testing.T) {
	d := NewBluffDetector()

	var m BluffMetrics
	for _, offer := range []int64{700, 750, 800} {
		m = d.AnalyzeOffer(offer, 1000, ModeBuy)
	}

	assert.Equal(t, 0, m.ExtremeOffers)
	assert.Equal(t, 0, m.Oscillations)
	assert.False(t, d.IsBluffing(m))
}

func TestBluffDetectorLastMetrics(t *testing.T) {
	d := NewBluffDetector()

	_, ok := d.LastMetrics()
	require.False(t, ok, "no metrics before the first analysis")

	want := d.AnalyzeOffer(500, 1000, ModeBuy)

	got, ok := d.LastMetrics()
	require.True(t, ok)
	assert.Equal(t, want, got)

	// Reading must not count as a new offer.
	again, _ := d.LastMetrics()
	assert.Equal(t, got, again)
}

func TestBluffDetectorReset(t *testing.T) {
	d := NewBluffDetector()
	d.AnalyzeOffer(10, 1000, ModeBuy)
	d.AnalyzeOffer(1000, 1000, ModeBuy)

	d.Reset()

	_, ok := d.LastMetrics()
	assert.False(t, ok)

	// A fresh sequence carries no oscillation against the old offers.
	m := d.AnalyzeOffer(500, 1000, ModeBuy)
	assert.Equal(t, 0, m.Oscillations)
	assert.Equal(t, 0, m.ExtremeOffers)
}
