package transcript

import (
	"fmt"
	"strings"

	"bargain-lite/bargain"
	"bargain-lite/item"
)

const defaultMerchantName = "replay_merchant"

type normalizedSpec struct {
	seed      int64
	mode      bargain.Mode
	hardMode  bool
	name      string
	traits    bargain.PersonalityTraits
	mood      float64
	trust     float64
	template  item.Template
	rarity    item.Rarity
	condition item.Condition
	offers    []int64
}

func normalizeSpec(spec Spec) (*normalizedSpec, error) {
	mode, err := parseMode(spec.Mode)
	if err != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "bad_mode", Message: err.Error()}
	}

	traits, err := resolveTraits(spec.Merchant)
	if err != nil {
		return nil, &ReplayError{StepIndex: -1, Reason: "bad_personality", Message: err.Error()}
	}

	if spec.Item.Name == "" || spec.Item.BasePrice <= 0 {
		return nil, &ReplayError{StepIndex: -1, Reason: "bad_item", Message: "item needs a name and a positive base price"}
	}
	rarity := item.Rarity(strings.ToLower(spec.Item.Rarity))
	condition := item.Condition(strings.ToLower(spec.Item.Condition))
	if !item.ValidRarity(rarity) {
		return nil, &ReplayError{StepIndex: -1, Reason: "bad_item", Message: fmt.Sprintf("unknown rarity %q", spec.Item.Rarity)}
	}
	if !item.ValidCondition(condition) {
		return nil, &ReplayError{StepIndex: -1, Reason: "bad_item", Message: fmt.Sprintf("unknown condition %q", spec.Item.Condition)}
	}

	if len(spec.Offers) == 0 {
		return nil, &ReplayError{StepIndex: -1, Reason: "no_offers", Message: "spec contains no offers"}
	}
	for i, offer := range spec.Offers {
		if offer <= 0 {
			return nil, &ReplayError{StepIndex: i, Reason: "bad_offer", Message: fmt.Sprintf("offer %d must be positive", offer)}
		}
	}

	name := spec.Merchant.Name
	if name == "" {
		name = defaultMerchantName
	}
	seed := spec.Seed
	if seed == 0 {
		seed = 1
	}

	return &normalizedSpec{
		seed:     seed,
		mode:     mode,
		hardMode: spec.HardMode,
		name:     name,
		traits:   traits,
		mood:     spec.Merchant.Mood,
		trust:    spec.Merchant.Trust,
		template: item.Template{
			Name:      spec.Item.Name,
			Category:  item.CategoryArtifact,
			BasePrice: spec.Item.BasePrice,
		},
		rarity:    rarity,
		condition: condition,
		offers:    spec.Offers,
	}, nil
}

func parseMode(s string) (bargain.Mode, error) {
	switch strings.ToUpper(s) {
	case "BUY":
		return bargain.ModeBuy, nil
	case "SELL":
		return bargain.ModeSell, nil
	default:
		return bargain.ModeNone, fmt.Errorf("unknown mode %q", s)
	}
}

func resolveTraits(spec MerchantSpec) (bargain.PersonalityTraits, error) {
	if spec.Traits != nil {
		if spec.Traits.Name == "" {
			return bargain.PersonalityTraits{}, fmt.Errorf("inline traits need a name")
		}
		return *spec.Traits, nil
	}
	if spec.Personality == "" {
		return bargain.Honest, nil
	}
	traits, ok := bargain.NewRegistry().Get(spec.Personality)
	if !ok {
		return bargain.PersonalityTraits{}, fmt.Errorf("unknown personality %q", spec.Personality)
	}
	return traits, nil
}
