package transcript

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"os"

	"bargain-lite/bargain"
	"bargain-lite/item"
)

const tapeVersion = 1

// LoadSpec reads a replay spec from a JSON file.
func LoadSpec(path string) (Spec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Spec{}, fmt.Errorf("read spec file: %w", err)
	}
	var spec Spec
	if err := json.Unmarshal(data, &spec); err != nil {
		return Spec{}, fmt.Errorf("parse spec JSON: %w", err)
	}
	return spec, nil
}

// Run replays the spec through a fresh session and returns the tape.
func Run(spec Spec) (*Tape, error) {
	ns, err := normalizeSpec(spec)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(ns.seed))
	it := item.New(ns.template, ns.rarity, ns.condition, rng)
	merchant := bargain.NewMerchantWithState(ns.name, ns.traits, ns.mood, ns.trust)

	session, err := bargain.NewSession(merchant, it, bargain.Config{
		Mode:     ns.mode,
		HardMode: ns.hardMode,
	})
	if err != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "session_init_failed", Message: err.Error()}
	}

	tape := &Tape{
		TapeVersion: tapeVersion,
		SessionID:   session.ID,
		FairPrice:   it.FairPrice,
		Events:      make([]Event, 0, len(ns.offers)),
	}

	for stepIdx, offer := range ns.offers {
		if session.IsComplete() {
			return nil, &ReplayError{
				StepIndex: stepIdx,
				Reason:    "session_complete",
				Message:   "negotiation already ended; no further offers are allowed",
			}
		}

		result, err := session.SubmitOffer(offer)
		if err != nil {
			if errors.Is(err, bargain.ErrSessionComplete) {
				return nil, &ReplayError{StepIndex: stepIdx, Reason: "session_complete", Message: err.Error()}
			}
			return nil, &ReplayError{StepIndex: stepIdx, Reason: "offer_apply_failed", Message: err.Error()}
		}

		tape.Events = append(tape.Events, Event{
			Round:        session.Round() - 1, // round was advanced after apply
			Offer:        offer,
			Action:       result.Action.String(),
			CounterOffer: result.CounterOffer,
			Mood:         merchant.Mood(),
			Trust:        merchant.Trust(),
			Bluffing:     session.IsBluffing(),
			Reasoning:    result.Reasoning,
		})
	}

	return tape, nil
}
