package bargain

import "math"

// Bluff detection thresholds.
const (
	extremeBuyRatio   = 0.4 // BUY offer below 40% of fair
	extremeSellRatio  = 1.6 // SELL ask above 160% of fair
	oscillationSwing  = 0.3 // >30% jump between consecutive offers
	bluffExtremeLimit = 1   // more than 1 extreme offer
	bluffOscillLimit  = 2   // more than 2 oscillations
	bluffTrustPenalty = -10 // scaled by BluffSensitivity
)

// BluffMetrics is derived from the full offer history on every analysis.
type BluffMetrics struct {
	ExtremeOffers  int
	Oscillations   int
	LastOfferRatio float64
}

// BluffDetector watches the running sequence of player offers for
// manipulation patterns. O(n) per call; rounds are capped at 6.
type BluffDetector struct {
	offers  []int64
	last    BluffMetrics
	hasLast bool
}

func NewBluffDetector() *BluffDetector {
	return &BluffDetector{}
}

// AnalyzeOffer appends the offer to the history and recomputes the metrics.
func (d *BluffDetector) AnalyzeOffer(offer, fairPrice int64, mode Mode) BluffMetrics {
	d.offers = append(d.offers, offer)

	d.last = BluffMetrics{
		ExtremeOffers:  d.countExtremeOffers(fairPrice, mode),
		Oscillations:   d.countOscillations(),
		LastOfferRatio: float64(offer) / float64(fairPrice),
	}
	d.hasLast = true
	return d.last
}

func (d *BluffDetector) countExtremeOffers(fairPrice int64, mode Mode) int {
	count := 0
	for _, offer := range d.offers {
		ratio := float64(offer) / float64(fairPrice)
		if mode == ModeBuy && ratio < extremeBuyRatio {
			count++
		}
		if mode == ModeSell && ratio > extremeSellRatio {
			count++
		}
	}
	return count
}

func (d *BluffDetector) countOscillations() int {
	count := 0
	for i := 1; i < len(d.offers); i++ {
		prev := float64(d.offers[i-1])
		curr := float64(d.offers[i])
		if math.Abs(curr-prev)/prev > oscillationSwing {
			count++
		}
	}
	return count
}

// IsBluffing reports whether the metrics cross a bluff threshold:
// at least 2 extreme offers, or at least 3 oscillations.
func (d *BluffDetector) IsBluffing(m BluffMetrics) bool {
	return m.ExtremeOffers > bluffExtremeLimit || m.Oscillations > bluffOscillLimit
}

// LastMetrics returns the metrics of the most recent analysis without
// re-appending the offer.
func (d *BluffDetector) LastMetrics() (BluffMetrics, bool) {
	return d.last, d.hasLast
}

// Reset clears the history. Only used between sessions.
func (d *BluffDetector) Reset() {
	d.offers = d.offers[:0]
	d.last = BluffMetrics{}
	d.hasLast = false
}

// unwind drops the newest offer after a failed decision step so the
// round leaves no trace.
func (d *BluffDetector) unwind(prev BluffMetrics, hadPrev bool) {
	if len(d.offers) > 0 {
		d.offers = d.offers[:len(d.offers)-1]
	}
	d.last = prev
	d.hasLast = hadPrev
}
