package item

import (
	"fmt"
	"math/rand"
	"time"
)

// Generator creates random items from a catalog of templates.
// Rarity is weighted 60/30/10 (common/rare/epic) and condition
// 50/30/20 (new/used/damaged).
type Generator struct {
	templates []Template
	rng       *rand.Rand
}

// NewGenerator creates a generator over the stock catalog.
// Seed 0 means time-based.
func NewGenerator(seed int64) *Generator {
	g, _ := NewGeneratorWith(Templates, seed)
	return g
}

// NewGeneratorWith creates a generator over a custom catalog.
func NewGeneratorWith(templates []Template, seed int64) (*Generator, error) {
	if len(templates) == 0 {
		return nil, fmt.Errorf("generator needs at least one template")
	}
	for _, t := range templates {
		if err := t.validate(); err != nil {
			return nil, err
		}
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		templates: templates,
		rng:       rand.New(rand.NewSource(seed)),
	}, nil
}

// Generate draws a random template, rarity and condition.
func (g *Generator) Generate() *Item {
	tpl := g.templates[g.rng.Intn(len(g.templates))]
	rarity := g.randomRarity()
	condition := g.randomCondition()
	return New(tpl, rarity, condition, g.rng)
}

func (g *Generator) randomRarity() Rarity {
	roll := g.rng.Float64()
	switch {
	case roll < 0.6:
		return RarityCommon
	case roll < 0.9:
		return RarityRare
	default:
		return RarityEpic
	}
}

func (g *Generator) randomCondition() Condition {
	roll := g.rng.Float64()
	switch {
	case roll < 0.5:
		return ConditionNew
	case roll < 0.8:
		return ConditionUsed
	default:
		return ConditionDamaged
	}
}
