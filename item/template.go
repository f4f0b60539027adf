package item

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Template is one entry of the item catalog. The catalog is external data:
// the built-in set below matches the stock catalog, and LoadTemplates can
// replace it from a YAML file.
type Template struct {
	Name        string       `yaml:"name" json:"name"`
	Description string       `yaml:"description" json:"description"`
	Category    Category     `yaml:"category" json:"category"`
	BasePrice   int64        `yaml:"base_price" json:"basePrice"`
	Slot        WearableSlot `yaml:"slot,omitempty" json:"slot,omitempty"`
	MoodBonus   int          `yaml:"mood_bonus,omitempty" json:"moodBonus,omitempty"`
}

func (t Template) validate() error {
	if t.Name == "" {
		return fmt.Errorf("template name must not be empty")
	}
	if t.BasePrice <= 0 {
		return fmt.Errorf("template %q: base price must be > 0", t.Name)
	}
	switch t.Category {
	case CategoryWeapon, CategoryTech, CategoryArtifact, CategoryConsumable, CategoryWearable:
	default:
		return fmt.Errorf("template %q: unknown category %q", t.Name, t.Category)
	}
	return nil
}

// LoadTemplates reads an item catalog from a YAML file.
func LoadTemplates(path string) ([]Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	var list []Template
	if err := yaml.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("parse catalog YAML: %w", err)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("catalog %s is empty", path)
	}
	for _, t := range list {
		if err := t.validate(); err != nil {
			return nil, err
		}
	}
	return list, nil
}

// Templates is the stock catalog (32 items).
var Templates = []Template{
	// WEAPONS (8)
	{Name: "Plasma Rifle", Description: "Military-grade energy weapon", Category: CategoryWeapon, BasePrice: 450},
	{Name: "Neural Disruptor", Description: "Non-lethal incapacitation device", Category: CategoryWeapon, BasePrice: 320},
	{Name: "Mono-Blade", Description: "Monomolecular edge sword", Category: CategoryWeapon, BasePrice: 280},
	{Name: "Gravity Hammer", Description: "Crushes targets with localized gravity fields", Category: CategoryWeapon, BasePrice: 550},
	{Name: "Arc Pistol", Description: "Compact electrical discharge sidearm", Category: CategoryWeapon, BasePrice: 180},
	{Name: "Photon Lance", Description: "Long-range beam weapon", Category: CategoryWeapon, BasePrice: 720},
	{Name: "Sonic Stunner", Description: "Area-effect sound weapon", Category: CategoryWeapon, BasePrice: 240},
	{Name: "Nano-Swarm Grenade", Description: "Deploys destructive nanobots", Category: CategoryWeapon, BasePrice: 390},

	// TECH (10)
	{Name: "Quantum Processor", Description: "Advanced computing core", Category: CategoryTech, BasePrice: 680},
	{Name: "Holo-Projector", Description: "3D holographic display system", Category: CategoryTech, BasePrice: 220},
	{Name: "Neural Interface", Description: "Direct brain-computer connection", Category: CategoryTech, BasePrice: 510},
	{Name: "Fusion Cell", Description: "Compact power source", Category: CategoryTech, BasePrice: 340},
	{Name: "Stealth Field Generator", Description: "Personal cloaking device", Category: CategoryTech, BasePrice: 890},
	{Name: "Gravity Boots", Description: "Walk on any surface", Category: CategoryTech, BasePrice: 420},
	{Name: "Translator Implant", Description: "Universal language decoder", Category: CategoryTech, BasePrice: 290},
	{Name: "Repair Nanites", Description: "Self-healing technology", Category: CategoryTech, BasePrice: 460},
	{Name: "Data Spike", Description: "Hacking tool for electronic systems", Category: CategoryTech, BasePrice: 310},
	{Name: "Bio-Scanner", Description: "Life-form detection and analysis", Category: CategoryTech, BasePrice: 270},

	// ARTIFACTS (7)
	{Name: "Precursor Orb", Description: "Ancient alien artifact of unknown purpose", Category: CategoryArtifact, BasePrice: 950},
	{Name: "Psionic Crystal", Description: "Amplifies mental abilities", Category: CategoryArtifact, BasePrice: 770},
	{Name: "Time Shard", Description: "Fragment from a collapsed timeline", Category: CategoryArtifact, BasePrice: 1100},
	{Name: "Void Stone", Description: "Absorbs exotic radiation", Category: CategoryArtifact, BasePrice: 640},
	{Name: "Star Chart", Description: "Ancient navigation data", Category: CategoryArtifact, BasePrice: 530},
	{Name: "Memory Crystal", Description: "Contains lost civilization's knowledge", Category: CategoryArtifact, BasePrice: 820},
	{Name: "Harmonic Resonator", Description: "Emits reality-bending frequencies", Category: CategoryArtifact, BasePrice: 710},

	// CONSUMABLES (7)
	{Name: "Stim Pack", Description: "Emergency medical injection", Category: CategoryConsumable, BasePrice: 85},
	{Name: "Ration Bar", Description: "Nutritionally complete food", Category: CategoryConsumable, BasePrice: 25},
	{Name: "Anti-Radiation Serum", Description: "Protects against ionizing radiation", Category: CategoryConsumable, BasePrice: 140},
	{Name: "Oxygen Canister", Description: "Emergency life support", Category: CategoryConsumable, BasePrice: 60},
	{Name: "Boost Injectable", Description: "Temporary physical enhancement", Category: CategoryConsumable, BasePrice: 110},
	{Name: "Mind Shield Pill", Description: "Blocks psionic intrusion", Category: CategoryConsumable, BasePrice: 95},
	{Name: "Cryo Capsule", Description: "Suspended animation pod", Category: CategoryConsumable, BasePrice: 380},
}

// WearableTemplates are shop wearables. They give a mood bonus when equipped;
// the equip/shop flow lives outside this module.
var WearableTemplates = []Template{
	{Name: "Silk Trader Hat", Description: "An elegant hat worn by successful merchants across the galaxy", Category: CategoryWearable, BasePrice: 150, Slot: SlotHead, MoodBonus: 10},
	{Name: "Neural Crown", Description: "Sophisticated headwear with subtle psionic enhancers", Category: CategoryWearable, BasePrice: 300, Slot: SlotHead, MoodBonus: 15},
	{Name: "Captain's Beret", Description: "A distinguished military beret that commands respect", Category: CategoryWearable, BasePrice: 200, Slot: SlotHead, MoodBonus: 12},
	{Name: "Business Suit", Description: "Professional attire that makes you look trustworthy", Category: CategoryWearable, BasePrice: 250, Slot: SlotBody, MoodBonus: 12},
	{Name: "Smuggler's Coat", Description: "A long coat with a reputation sewn into the lining", Category: CategoryWearable, BasePrice: 320, Slot: SlotBody, MoodBonus: 14},
	{Name: "Lucky Charm", Description: "A trinket said to sweeten any deal", Category: CategoryWearable, BasePrice: 90, Slot: SlotAccessory, MoodBonus: 6},
	{Name: "Chrono Ring", Description: "A ring that always shows the right time to close", Category: CategoryWearable, BasePrice: 180, Slot: SlotAccessory, MoodBonus: 9},
}
