package bargain

import (
	"fmt"

	"github.com/oklog/ulid/v2"

	"bargain-lite/item"
)

// RoundRecord is one (round, offer, result) entry of the session history.
type RoundRecord struct {
	Round  int
	Offer  int64
	Result Result
}

// Session orchestrates one multi-round negotiation over a single item.
// Each offer flows through the bluff detector, the decider, and back into
// merchant state, strictly in that order. A session is discarded once the
// negotiation terminates; the merchant lives on.
type Session struct {
	ID string

	merchant *Merchant
	item     *item.Item
	mode     Mode

	detector *BluffDetector
	decider  Decider
	history  []RoundRecord
}

// NewSession creates a session for one negotiation attempt.
func NewSession(merchant *Merchant, it *item.Item, cfg Config) (*Session, error) {
	if merchant == nil {
		return nil, InvalidConfigError("merchant must not be nil")
	}
	if it == nil {
		return nil, InvalidConfigError("item must not be nil")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	decider := cfg.Decider
	if decider == nil {
		decider = NewEngine(merchant, it, cfg.Mode, cfg.HardMode)
	}

	return &Session{
		ID:       ulid.Make().String(),
		merchant: merchant,
		item:     it,
		mode:     cfg.Mode,
		detector: NewBluffDetector(),
		decider:  decider,
	}, nil
}

// SubmitOffer runs one round of the pipeline:
//
//  1. bluff analysis over the full offer history
//  2. trust penalty if the player is bluffing
//  3. decision
//  4. mood/trust deltas from the result
//  5. history append
//  6. round advance
//
// A failed decision step (possible only with an injected decider) undoes
// steps 1-2 and returns the error; the round can be retried.
func (s *Session) SubmitOffer(offer int64) (Result, error) {
	if offer <= 0 {
		return Result{}, ErrInvalidOffer
	}
	if s.IsComplete() {
		return Result{}, ErrSessionComplete
	}

	prevMetrics, hadMetrics := s.detector.LastMetrics()
	prevMood, prevTrust := s.merchant.Mood(), s.merchant.Trust()

	metrics := s.detector.AnalyzeOffer(offer, s.item.FairPrice, s.mode)
	if s.detector.IsBluffing(metrics) {
		s.merchant.AdjustTrust(bluffTrustPenalty * s.merchant.Personality().BluffSensitivity)
	}

	result, err := s.decider.Decide(offer)
	if err != nil {
		s.detector.unwind(prevMetrics, hadMetrics)
		s.merchant.setState(prevMood, prevTrust)
		return Result{}, fmt.Errorf("decide offer: %w", err)
	}

	s.merchant.AdjustMood(result.MoodChange)
	s.merchant.AdjustTrust(result.TrustChange)

	s.history = append(s.history, RoundRecord{
		Round:  s.decider.Round(),
		Offer:  offer,
		Result: result,
	})
	s.decider.AdvanceRound()

	return result, nil
}

// IsComplete reports whether the negotiation has terminated: the round
// limit was exceeded, or the last result was not a counteroffer.
func (s *Session) IsComplete() bool {
	if len(s.history) == 0 {
		return false
	}
	last := s.history[len(s.history)-1]
	return s.decider.Round() > s.decider.MaxRounds() || last.Result.Action != ActionCounter
}

// IsBluffing re-derives the bluff flag from the last analyzed offer.
func (s *Session) IsBluffing() bool {
	metrics, ok := s.detector.LastMetrics()
	return ok && s.detector.IsBluffing(metrics)
}

// History returns a copy of the per-round records so far.
func (s *Session) History() []RoundRecord {
	out := make([]RoundRecord, len(s.history))
	copy(out, s.history)
	return out
}

func (s *Session) Merchant() *Merchant { return s.merchant }
func (s *Session) Item() *item.Item    { return s.item }
func (s *Session) Mode() Mode          { return s.mode }
func (s *Session) Round() int          { return s.decider.Round() }
func (s *Session) MaxRounds() int      { return s.decider.MaxRounds() }
